// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/platform/i18n"
	weblocale "github.com/louisbranch/gametrade/internal/services/web/i18n"
	"github.com/louisbranch/gametrade/internal/services/web/module"
	"github.com/louisbranch/gametrade/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/gametrade/internal/services/web/platform/i18n"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
	"golang.org/x/text/language"
)

// RequestResolver resolves request-scoped language state.
type RequestResolver interface {
	ResolveRequestLanguage(r *http.Request) string
}

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page inside the app shell, or only the main
// content for HTMX requests.
func WriteModulePage(w http.ResponseWriter, r *http.Request, resolver RequestResolver, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	var component templ.Component
	if httpx.IsHTMXRequest(r) {
		component = webtemplates.AppMainContent()
	} else {
		var resolveLanguage module.ResolveLanguage
		if resolver != nil {
			resolveLanguage = resolver.ResolveRequestLanguage
		}
		tag := webi18n.ResolveTag(r, resolveLanguage)
		component = webtemplates.AppLayout(layoutView(r, page.Title, tag), weblocale.Printer(tag))
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

func layoutView(r *http.Request, title string, tag language.Tag) webtemplates.LayoutView {
	path, query := "/", ""
	if r != nil && r.URL != nil {
		path, query = r.URL.Path, r.URL.RawQuery
	}
	options := weblocale.LanguageOptions(tag, path, query)
	languages := make([]webtemplates.LanguageLink, 0, len(options))
	for _, option := range options {
		languages = append(languages, webtemplates.LanguageLink{
			LabelKey: option.LabelKey,
			URL:      option.URL,
			Active:   option.Active,
		})
	}
	return webtemplates.LayoutView{
		Title:      title,
		Lang:       i18n.Lang(tag),
		ActivePath: path,
		Languages:  languages,
	}
}
