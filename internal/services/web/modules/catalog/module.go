package catalog

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// Option configures a catalog module.
type Option func(*Module)

// WithGateway sets the catalog seed gateway.
func WithGateway(g CatalogGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithPageState sets the page instance store options.
func WithPageState(opts ...pagestate.Option) Option {
	return func(m *Module) { m.pageOpts = append(m.pageOpts, opts...) }
}

// Module serves the listings catalog at the site root. It also owns the
// catch-all route, so unknown paths render the app not-found page.
type Module struct {
	gateway  CatalogGateway
	base     modulehandler.Base
	pageOpts []pagestate.Option
}

// New returns a catalog module configured by the given options.
// Without a gateway the module starts in degraded mode.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "catalog" }

// Healthy reports whether the catalog module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires catalog route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	svc := newService(m.gateway, m.pageOpts...)
	registerRoutes(mux, newHandlers(svc, m.base))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
