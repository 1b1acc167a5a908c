package profile

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Profile(context.Context) (marketplace.Profile, error) {
	return marketplace.Profile{}, apperrors.EK(apperrors.KindUnavailable, "web.error.fixtures_unavailable", "profile data is not configured")
}
