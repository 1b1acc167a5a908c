// Package web parses web command flags and composes the marketplace server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/louisbranch/gametrade/internal/marketplace/fixtures"
	entrypoint "github.com/louisbranch/gametrade/internal/platform/cmd"
	"github.com/louisbranch/gametrade/internal/platform/logging"
	"github.com/louisbranch/gametrade/internal/services/web"
	"go.uber.org/zap"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"WEB_HTTP_ADDR"             envDefault:"localhost:8080"`
	PageTTL             time.Duration `env:"WEB_PAGE_TTL"              envDefault:"30m"`
	MaxUploadBytes      int64         `env:"WEB_MAX_UPLOAD_BYTES"      envDefault:"33554432"`
	FixturesPath        string        `env:"WEB_FIXTURES_PATH"`
	DefaultLanguage     string        `env:"WEB_DEFAULT_LANG"          envDefault:"en"`
	TrustForwardedProto bool          `env:"WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	LogLevel            string        `env:"LOG_LEVEL"                 envDefault:"info"`
	LogDevelopment      bool          `env:"LOG_DEV"                   envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.PageTTL, "page-ttl", cfg.PageTTL, "idle lifetime of page instances")
	fs.Int64Var(&cfg.MaxUploadBytes, "max-upload-bytes", cfg.MaxUploadBytes, "maximum composer request body in bytes")
	fs.StringVar(&cfg.FixturesPath, "fixtures", cfg.FixturesPath, "YAML seed file (empty uses the embedded seed)")
	fs.StringVar(&cfg.DefaultLanguage, "default-lang", cfg.DefaultLanguage, "fallback UI language")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "trust X-Forwarded-Proto for origin checks")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.LogDevelopment, "log-dev", cfg.LogDevelopment, "human-readable development logs")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the seed data and serves the marketplace until ctx is canceled.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Development: cfg.LogDevelopment})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		return fmt.Errorf("load fixtures: %w", err)
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{Logger: logger}, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			PageTTL:             cfg.PageTTL,
			MaxUploadBytes:      cfg.MaxUploadBytes,
			DefaultLanguage:     cfg.DefaultLanguage,
			TrustForwardedProto: cfg.TrustForwardedProto,
			Fixtures:            store,
			Logger:              logger.With(zap.String("service", entrypoint.ServiceWeb)),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
