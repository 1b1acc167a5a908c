package composer

import (
	"net/http"

	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/gametrade/internal/services/web/platform/pagestate"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	"go.uber.org/zap"
)

// DefaultMaxUploadBytes bounds one composer request body.
const DefaultMaxUploadBytes int64 = 32 << 20

// Option configures a composer module.
type Option func(*Module)

// WithBase sets the handler base.
func WithBase(b modulehandler.Base) Option {
	return func(m *Module) { m.base = b }
}

// WithLogger sets the logger that records submitted drafts.
func WithLogger(logger *zap.Logger) Option {
	return func(m *Module) { m.logger = logger }
}

// WithMaxUploadBytes bounds the request body of composer posts. Non-positive
// values keep the default.
func WithMaxUploadBytes(n int64) Option {
	return func(m *Module) {
		if n > 0 {
			m.maxUploadBytes = n
		}
	}
}

// WithPageState sets the page instance store options.
func WithPageState(opts ...pagestate.Option) Option {
	return func(m *Module) { m.pageOpts = append(m.pageOpts, opts...) }
}

// Module provides the listing composer. Drafts and their uploaded photos live
// only in the page instance.
type Module struct {
	base           modulehandler.Base
	logger         *zap.Logger
	maxUploadBytes int64
	pageOpts       []pagestate.Option
}

// New returns a composer module configured by the given options.
func New(opts ...Option) Module {
	m := Module{maxUploadBytes: DefaultMaxUploadBytes}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "composer" }

// Healthy reports true; the composer has no upstream dependency.
func (Module) Healthy() bool { return true }

// Mount wires composer route handlers.
func (m Module) Mount() (module.Mount, error) {
	logger := m.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mux := http.NewServeMux()
	svc := newService(m.pageOpts...)
	registerRoutes(mux, newHandlers(svc, m.base, logger, m.maxUploadBytes))
	return module.Mount{Prefix: routepath.CreatePrefix, Handler: mux}, nil
}
