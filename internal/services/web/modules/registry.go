package modules

import (
	"github.com/louisbranch/gametrade/internal/services/web/modules/catalog"
	"github.com/louisbranch/gametrade/internal/services/web/modules/composer"
	"github.com/louisbranch/gametrade/internal/services/web/modules/favorites"
	"github.com/louisbranch/gametrade/internal/services/web/modules/profile"
	"github.com/louisbranch/gametrade/internal/services/web/modules/register"
	"github.com/louisbranch/gametrade/internal/services/web/modules/rules"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
	"go.uber.org/zap"
)

// DefaultModules returns the marketplace page modules.
func DefaultModules(deps Dependencies) []Module {
	base := modulehandler.NewBase(deps.ResolveLanguage)
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	pageState := []pagestate.Option{pagestate.WithTTL(deps.PageTTL)}

	var (
		catalogGateway   catalog.CatalogGateway
		favoritesGateway favorites.FavoritesGateway
		profileGateway   profile.ProfileGateway
		rulesGateway     rules.RulesGateway
	)
	if deps.Fixtures != nil {
		catalogGateway = deps.Fixtures
		favoritesGateway = deps.Fixtures
		profileGateway = deps.Fixtures
		rulesGateway = deps.Fixtures
	}

	return []Module{
		catalog.New(catalog.WithGateway(catalogGateway), catalog.WithBase(base), catalog.WithPageState(pageState...)),
		favorites.New(favorites.WithGateway(favoritesGateway), favorites.WithBase(base), favorites.WithPageState(pageState...)),
		composer.New(
			composer.WithBase(base),
			composer.WithLogger(logger.Named("composer")),
			composer.WithMaxUploadBytes(deps.MaxUploadBytes),
			composer.WithPageState(pageState...),
		),
		profile.New(profile.WithGateway(profileGateway), profile.WithBase(base)),
		register.New(register.WithBase(base), register.WithLogger(logger.Named("register"))),
		rules.New(rules.WithGateway(rulesGateway), rules.WithBase(base)),
	}
}
