package web

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/gametrade/internal/platform/i18n"
	"github.com/louisbranch/gametrade/internal/platform/timeouts"
	"github.com/louisbranch/gametrade/internal/services/web/app"
	"github.com/louisbranch/gametrade/internal/services/web/modules"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	"github.com/louisbranch/gametrade/internal/services/web/platform/observability"
	"github.com/louisbranch/gametrade/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	"github.com/louisbranch/gametrade/internal/services/web/static"
	"go.uber.org/zap"
)

// Config defines the inputs for the marketplace web server.
type Config struct {
	HTTPAddr string
	// PageTTL is the idle lifetime of stateful page instances.
	PageTTL time.Duration
	// MaxUploadBytes bounds one composer request body.
	MaxUploadBytes int64
	// DefaultLanguage is used when neither the query, the cookie nor
	// Accept-Language selects a supported locale.
	DefaultLanguage     string
	TrustForwardedProto bool
	Fixtures            modules.Fixtures
	Logger              *zap.Logger
}

// Server hosts the marketplace HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *zap.Logger
}

// NewHandler builds the root handler: page modules, static assets and the
// health probe behind request id, tracing, logging and panic recovery.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	defaultLang, err := resolveDefaultLanguage(config.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	pages, err := app.BuildRootHandler(app.Config{
		Dependencies: modules.Dependencies{
			Fixtures:        config.Fixtures,
			Logger:          logger,
			ResolveLanguage: func(*http.Request) string { return defaultLang },
			PageTTL:         config.PageTTL,
			MaxUploadBytes:  config.MaxUploadBytes,
		},
		RequestSchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: config.TrustForwardedProto},
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(static.FS))))
	mux.HandleFunc("GET "+routepath.Health, handleHealth)
	mux.Handle(routepath.Root, pages)

	return httpx.Chain(mux,
		httpx.RequestID(),
		observability.Tracing(),
		observability.RequestLogger(logger.Named("http")),
		httpx.RecoverPanic(logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok"))
}

func resolveDefaultLanguage(value string) (string, error) {
	if strings.TrimSpace(value) == "" {
		return platformi18n.Lang(platformi18n.DefaultTag()), nil
	}
	tag, ok := platformi18n.ParseTag(value)
	if !ok {
		return "", fmt.Errorf("unsupported default language %q", value)
	}
	return platformi18n.Lang(tag), nil
}

// NewServer validates config and builds the HTTP server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if config.Fixtures == nil {
		return nil, errors.New("fixtures are required")
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	config.Logger = logger

	handler, err := NewHandler(config)
	if err != nil {
		return nil, fmt.Errorf("build handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
			ErrorLog:          zap.NewStdLog(logger.Named("http_server")),
		},
	}, nil
}

// ListenAndServe serves HTTP until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve is ListenAndServe over an existing listener.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Info("web listening", zap.String("addr", listener.Addr().String()))
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		<-serveErr
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Warn("close http server", zap.Error(err))
	}
}
