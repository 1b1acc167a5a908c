package pagerender

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
)

type fixedLanguage string

func (l fixedLanguage) ResolveRequestLanguage(*http.Request) string { return string(l) }

func textComponent(value string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, value)
		return err
	})
}

func TestWriteModulePageRendersHTMXFragmentWithStatus(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/favorites/2/remove", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:      "Favorites",
		StatusCode: http.StatusCreated,
		Fragment:   textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusCreated)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="fragment-root"`) || !strings.Contains(body, `id="main"`) {
		t.Fatalf("body missing fragment marker: %q", body)
	}
	if strings.Contains(strings.ToLower(body), "<!doctype html") || strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without full document wrapper")
	}
}

func TestWriteModulePageRendersFullPageWithAppShell(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/favorites?page=abc", nil)
	rr := httptest.NewRecorder()

	err := WriteModulePage(rr, req, nil, ModulePage{
		Title:    "Favorites",
		Fragment: textComponent(`<section id="fragment-root">ok</section>`),
	})
	if err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("content-type = %q, want %q", got, "text/html; charset=utf-8")
	}
	body := rr.Body.String()
	for _, marker := range []string{`<html lang="en">`, `id="main"`, `id="fragment-root"`, `href="/favorites?lang=ru&amp;page=abc"`, `aria-current="page"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModulePageUsesResolverFallbackLanguage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/rules", nil)
	rr := httptest.NewRecorder()
	if err := WriteModulePage(rr, req, fixedLanguage("ru"), ModulePage{Title: "Правила"}); err != nil {
		t.Fatalf("WriteModulePage() error = %v", err)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `<html lang="ru">`) || !strings.Contains(body, "Избранное") {
		t.Fatalf("body not localized to ru: %q", body)
	}
}

func TestWriteModulePageReturnsRenderError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rr := httptest.NewRecorder()
	err := WriteModulePage(rr, httptest.NewRequest(http.MethodGet, "/", nil), nil, ModulePage{
		Fragment: templ.ComponentFunc(func(context.Context, io.Writer) error { return boom }),
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteModulePage() error = %v, want %v", err, boom)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("partial body written: %q", rr.Body.String())
	}
}

func TestWriteModulePageNilWriter(t *testing.T) {
	t.Parallel()

	if err := WriteModulePage(nil, nil, nil, ModulePage{}); err != nil {
		t.Fatalf("WriteModulePage(nil) error = %v", err)
	}
}
