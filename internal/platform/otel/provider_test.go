package otel_test

import (
	"context"
	"testing"

	"github.com/louisbranch/gametrade/internal/platform/otel"
)

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		settings otel.Settings
		want     bool
	}{
		{name: "empty", settings: otel.Settings{}, want: false},
		{name: "endpoint", settings: otel.Settings{Endpoint: "http://localhost:4318"}, want: true},
		{name: "disabled", settings: otel.Settings{Endpoint: "http://localhost:4318", Enabled: "FALSE"}, want: false},
		{name: "blank endpoint", settings: otel.Settings{Endpoint: "  ", Enabled: "true"}, want: false},
	}
	for _, tc := range tests {
		if got := tc.settings.Active(); got != tc.want {
			t.Fatalf("%s: Active() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	t.Setenv("GAMETRADE_OTEL_ENDPOINT", "")
	t.Setenv("GAMETRADE_OTEL_ENABLED", "")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenExplicitlyDisabled(t *testing.T) {
	t.Setenv("GAMETRADE_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("GAMETRADE_OTEL_ENABLED", "false")

	shutdown, err := otel.Setup(context.Background(), "test-service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetupWithSettings_CreatesProvider(t *testing.T) {
	// Non-routable address so nothing is exported.
	shutdown, err := otel.SetupWithSettings(context.Background(), "test-service", otel.Settings{Endpoint: "http://192.0.2.1:4318"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}
