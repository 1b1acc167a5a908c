package profile

import (
	"context"

	"github.com/louisbranch/gametrade/internal/marketplace"
)

// ProfileGateway loads the profile record.
type ProfileGateway interface {
	Profile(context.Context) (marketplace.Profile, error)
}

// profileSummary is the profile with its listings split by status.
type profileSummary struct {
	Profile marketplace.Profile
	Active  []marketplace.Listing
	Closed  []marketplace.Listing
}

type service struct {
	gateway ProfileGateway
}

func newService(gateway ProfileGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) loadProfile(ctx context.Context) (profileSummary, error) {
	profile, err := s.gateway.Profile(ctx)
	if err != nil {
		return profileSummary{}, err
	}
	active, closed := marketplace.Partition(profile.Listings)
	return profileSummary{Profile: profile, Active: active, Closed: closed}, nil
}
