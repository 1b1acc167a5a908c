package catalog

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) CatalogListings(context.Context) ([]marketplace.Listing, error) {
	return nil, apperrors.EK(apperrors.KindUnavailable, "web.error.fixtures_unavailable", "catalog data is not configured")
}
