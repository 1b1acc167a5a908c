package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	webi18n "github.com/louisbranch/gametrade/internal/services/web/i18n"
)

func russianFallback(*http.Request) string { return "ru" }

func TestResolveTagUsesFallbackLast(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ResolveTag(req, russianFallback); got.String() != "ru-RU" {
		t.Fatalf("ResolveTag() = %s, want ru-RU", got)
	}
	if got := ResolveTag(req, nil); got != webi18n.Default() {
		t.Fatalf("ResolveTag(nil resolver) = %s, want default", got)
	}
	if got := ResolveTag(req, func(*http.Request) string { return " " }); got != webi18n.Default() {
		t.Fatalf("ResolveTag(blank) = %s, want default", got)
	}

	req.Header.Set("Accept-Language", "en")
	if got := ResolveTag(req, russianFallback); got.String() != "en-US" {
		t.Fatalf("ResolveTag(Accept-Language en) = %s, want en-US", got)
	}
}

func TestResolveLocalizerPersistsQueryChoice(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules?lang=ru", nil)
	loc, tag := ResolveLocalizer(rr, req, nil)
	if tag.String() != "ru-RU" {
		t.Fatalf("tag = %s, want ru-RU", tag)
	}
	if got := loc.Sprintf("core.nav.favorites"); got != "Избранное" {
		t.Fatalf("localized = %q, want Избранное", got)
	}
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != webi18n.LangCookieName || cookies[0].Value != "ru-RU" {
		t.Fatalf("cookies = %v, want language cookie", cookies)
	}
}

func TestResolveLocalizerDoesNotPersistWithoutQuery(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rules", nil)
	_, tag := ResolveLocalizer(rr, req, nil)
	if tag != webi18n.Default() {
		t.Fatalf("tag = %s, want default", tag)
	}
	if cookies := rr.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none", cookies)
	}
}
