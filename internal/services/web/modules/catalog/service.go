package catalog

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
)

// CatalogGateway loads the listings every catalog page starts from.
type CatalogGateway interface {
	CatalogListings(context.Context) ([]marketplace.Listing, error)
}

// catalogPage is one rendered state of a catalog page instance.
type catalogPage struct {
	ID       string
	Query    string
	Category marketplace.Category
	Listings []marketplace.Listing
}

type service struct {
	gateway CatalogGateway
	pages   *pagestate.Store[marketplace.Catalog]
}

func newService(gateway CatalogGateway, opts ...pagestate.Option) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, pages: pagestate.New[marketplace.Catalog](opts...)}
}

// loadPage returns the filtered listings of the instance pageID, seeding a new
// instance when pageID is unknown or expired.
func (s service) loadPage(ctx context.Context, pageID string, query string, category marketplace.Category) (catalogPage, error) {
	return s.apply(ctx, pageID, query, category, nil)
}

// toggleFavorite flips one favorite flag. A toggle against an expired instance
// lands on the freshly seeded one.
func (s service) toggleFavorite(ctx context.Context, pageID string, listingID int, query string, category marketplace.Category) (catalogPage, error) {
	return s.apply(ctx, pageID, query, category, func(c *marketplace.Catalog) {
		c.ToggleFavorite(listingID)
	})
}

func (s service) apply(ctx context.Context, pageID string, query string, category marketplace.Category, mutate func(*marketplace.Catalog)) (catalogPage, error) {
	page := catalogPage{Query: query, Category: category}
	id, _, err := s.pages.Acquire(pageID, func() (marketplace.Catalog, error) {
		listings, err := s.gateway.CatalogListings(ctx)
		if err != nil {
			return marketplace.Catalog{}, err
		}
		return *marketplace.NewCatalog(listings), nil
	}, func(c *marketplace.Catalog) {
		if mutate != nil {
			mutate(c)
		}
		page.Listings = c.Filter(query, category)
	})
	if err != nil {
		return catalogPage{}, err
	}
	page.ID = id
	return page, nil
}
