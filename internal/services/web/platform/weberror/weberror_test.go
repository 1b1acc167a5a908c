package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/louisbranch/gametrade/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/gametrade/internal/services/web/platform/i18n"
)

type fixedLanguage string

func (l fixedLanguage) ResolveRequestLanguage(*http.Request) string { return string(l) }

func TestWriteModuleErrorRendersAppErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/favorites/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindNotFound, "missing"), nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="app-error-state"`) || !strings.Contains(body, "<html") {
		t.Fatalf("body missing app error state marker: %q", body)
	}
}

func TestWriteModuleErrorRendersUnavailableAsAppError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindUnavailable, "fixtures are not configured"), fixedLanguage("ru"))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="app-error-state"`) || strings.Contains(body, "<html") {
		t.Fatalf("htmx body = %q, want error fragment only", body)
	}
	if strings.Contains(body, "not configured") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/create", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.E(apperrors.KindInvalidInput, "bad form"), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	body := rr.Body.String()
	if !strings.Contains(body, http.StatusText(http.StatusBadRequest)) {
		t.Fatalf("body = %q, want generic bad-request message", body)
	}
	if strings.Contains(body, "bad form") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorLocalizesKeyedBadRequest(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/listings/abc/favorite?lang=ru", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_listing_id", "listing id must be numeric"), nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if body := rr.Body.String(); !strings.Contains(body, "числом") {
		t.Fatalf("body = %q, want russian message", body)
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	loc, _ := webi18n.ResolveLocalizer(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
	if got := PublicMessage(loc, errors.New("boom")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(untyped) = %q", got)
	}
	if got := PublicMessage(loc, apperrors.EK(apperrors.KindInvalidInput, "web.error.unknown_key", "x")); got != http.StatusText(http.StatusBadRequest) {
		t.Fatalf("PublicMessage(unknown key) = %q, want status text", got)
	}
	if got := PublicMessage(loc, apperrors.EK(apperrors.KindInvalidInput, "web.error.invalid_form", "x")); got != "The form could not be read." {
		t.Fatalf("PublicMessage(invalid_form) = %q", got)
	}
}

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	for status, want := range map[int]bool{
		http.StatusBadRequest:          false,
		http.StatusUnprocessableEntity: false,
		http.StatusNotFound:            true,
		http.StatusServiceUnavailable:  true,
		http.StatusInternalServerError: true,
	} {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}
