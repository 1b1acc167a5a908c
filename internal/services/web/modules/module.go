// Package modules defines web module registry helpers.
package modules

import (
	"time"

	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/modules/catalog"
	"github.com/louisbranch/gametrade/internal/services/web/modules/favorites"
	"github.com/louisbranch/gametrade/internal/services/web/modules/profile"
	"github.com/louisbranch/gametrade/internal/services/web/modules/rules"
	"go.uber.org/zap"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Fixtures is the seed data source of the page modules. Each field of the
// union is the narrow gateway defined by the consuming module.
type Fixtures interface {
	catalog.CatalogGateway
	favorites.FavoritesGateway
	profile.ProfileGateway
	rules.RulesGateway
}

// Dependencies carries the shared config required to compose the web module
// registry.
type Dependencies struct {
	// Fixtures seeds every page instance. Nil leaves the data-backed modules
	// in degraded mode.
	Fixtures Fixtures

	Logger          *zap.Logger
	ResolveLanguage module.ResolveLanguage

	// PageTTL is the idle lifetime of stateful page instances.
	PageTTL time.Duration
	// MaxUploadBytes bounds one composer request body.
	MaxUploadBytes int64
}
