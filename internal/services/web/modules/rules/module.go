package rules

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// Option configures a rules module.
type Option func(*Module)

// WithGateway sets the rules content gateway.
func WithGateway(g RulesGateway) Option {
	return func(m *Module) { m.gateway = g }
}

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// Module provides the platform rules page. FAQ expansion state lives in the
// page URL.
type Module struct {
	gateway RulesGateway
	base    modulehandler.Base
}

// New returns a rules module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "rules" }

// Healthy reports whether the rules module has an operational gateway.
func (m Module) Healthy() bool {
	if m.gateway == nil {
		return false
	}
	_, unavailable := m.gateway.(unavailableGateway)
	return !unavailable
}

// Mount wires rules route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway), m.base))
	return module.Mount{Prefix: routepath.RulesPrefix, Handler: mux}, nil
}
