package rules

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Rules(context.Context) (marketplace.Rules, error) {
	return marketplace.Rules{}, apperrors.EK(apperrors.KindUnavailable, "web.error.fixtures_unavailable", "rules content is not configured")
}
