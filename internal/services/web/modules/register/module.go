package register

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	"go.uber.org/zap"
)

// Option configures a registration module.
type Option func(*Module)

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithLogger sets the logger that records accepted sign-ups.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// Module provides the sign-up form. Accepted forms are logged and discarded.
type Module struct {
	base   modulehandler.Base
	logger *zap.Logger
}

// New returns a registration module configured by the given options.
func New(opts ...Option) Module {
	var m Module
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "register" }

// Healthy reports true; registration has no upstream dependency.
func (Module) Healthy() bool { return true }

// Mount wires registration route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.base, m.logger))
	return module.Mount{Prefix: routepath.RegisterPrefix, Handler: mux}, nil
}
