package favorites

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
)

// FavoritesGateway loads the saved listings every favorites page starts from.
type FavoritesGateway interface {
	FavoriteListings(context.Context) ([]marketplace.Listing, error)
}

type favoritesPage struct {
	ID       string
	Listings []marketplace.Listing
}

type service struct {
	gateway FavoritesGateway
	pages   *pagestate.Store[marketplace.Favorites]
}

func newService(gateway FavoritesGateway, opts ...pagestate.Option) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway, pages: pagestate.New[marketplace.Favorites](opts...)}
}

func (s service) loadPage(ctx context.Context, pageID string) (favoritesPage, error) {
	return s.apply(ctx, pageID, nil)
}

// removeListing drops listingID from the instance. Removing from an expired
// instance applies to a freshly seeded one.
func (s service) removeListing(ctx context.Context, pageID string, listingID int) (favoritesPage, error) {
	return s.apply(ctx, pageID, func(f *marketplace.Favorites) {
		f.Remove(listingID)
	})
}

func (s service) apply(ctx context.Context, pageID string, mutate func(*marketplace.Favorites)) (favoritesPage, error) {
	var page favoritesPage
	id, _, err := s.pages.Acquire(pageID, func() (marketplace.Favorites, error) {
		listings, err := s.gateway.FavoriteListings(ctx)
		if err != nil {
			return marketplace.Favorites{}, err
		}
		return *marketplace.NewFavorites(listings), nil
	}, func(f *marketplace.Favorites) {
		if mutate != nil {
			mutate(f)
		}
		page.Listings = f.Listings()
	})
	if err != nil {
		return favoritesPage{}, err
	}
	page.ID = id
	return page, nil
}
