package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerLogsMethodAndPath(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/favorites", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" || fields["path"] != "/favorites" || fields["request_id"] != "req-123" {
		t.Fatalf("log fields = %v", fields)
	}
	if fields["status"] != int64(http.StatusNoContent) {
		t.Fatalf("status field = %v, want %d", fields["status"], http.StatusNoContent)
	}
}

func TestRequestLoggerCapturesImplicitStatusOKAndBytes(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	h := RequestLogger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	fields := logs.All()[0].ContextMap()
	if fields["status"] != int64(http.StatusOK) || fields["bytes"] != int64(2) {
		t.Fatalf("log fields = %v, want status 200 and 2 bytes", fields)
	}
	if _, ok := fields["latency"]; !ok {
		t.Fatalf("log fields = %v, want latency", fields)
	}
	if fields["request_id"] != "-" {
		t.Fatalf("request_id = %v, want -", fields["request_id"])
	}
}

func TestRequestLoggerNilSafety(t *testing.T) {
	t.Parallel()

	h := RequestLogger(nil)(nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

// Tracing reads the global provider, so these subtests do not run in parallel.
func TestTracingRecordsServerSpan(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() {
		otel.SetTracerProvider(previous)
		_ = provider.Shutdown(context.Background())
	})

	var inner trace.SpanContext
	h := Tracing()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanContextFromContext(r.Context())
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rules", nil))
	if !inner.IsValid() {
		t.Fatalf("handler context has no span")
	}
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))

	spans := recorder.Ended()
	if len(spans) != 2 {
		t.Fatalf("ended spans = %d, want 2", len(spans))
	}
	if got := spans[0].Name(); got != "GET /rules" {
		t.Fatalf("span name = %q, want %q", got, "GET /rules")
	}
	if got := spans[0].SpanKind(); got != trace.SpanKindServer {
		t.Fatalf("span kind = %v, want server", got)
	}
	if got := spans[1].Status().Code; got != codes.Error {
		t.Fatalf("5xx span status = %v, want error", got)
	}
}
