package templates

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
)

// LanguageLink is one entry of the language switcher.
type LanguageLink struct {
	LabelKey string
	URL      string
	Active   bool
}

// LayoutView carries the shared chrome of every page.
type LayoutView struct {
	Title      string
	Lang       string
	ActivePath string
	Languages  []LanguageLink
}

type navItem struct {
	path     string
	labelKey string
}

var navItems = []navItem{
	{path: routepath.Root, labelKey: "core.nav.catalog"},
	{path: routepath.Create, labelKey: "core.nav.create"},
	{path: routepath.Favorites, labelKey: "core.nav.favorites"},
	{path: routepath.Profile, labelKey: "core.nav.profile"},
	{path: routepath.Rules, labelKey: "core.nav.rules"},
	{path: routepath.Register, labelKey: "core.nav.register"},
}

// AppLayout renders the full document around the children in ctx.
func AppLayout(view LayoutView, loc Localizer) templ.Component {
	lang := strings.TrimSpace(view.Lang)
	if lang == "" {
		lang = "en"
	}
	title := T(loc, "core.app_name")
	if view.Title != "" {
		title = view.Title + " | " + title
	}
	return group(
		templ.Raw("<!DOCTYPE html>"),
		el("html", attrs{at("lang", lang)},
			el("head", nil,
				el("meta", attrs{at("charset", "utf-8")}),
				el("meta", attrs{at("name", "viewport"), at("content", "width=device-width, initial-scale=1")}),
				el("title", nil, text(title)),
				el("link", attrs{at("rel", "stylesheet"), href(routepath.StaticPrefix + "app.css")}),
			),
			el("body", nil,
				appHeader(view, loc),
				AppMainContent(),
				el("footer", attrs{class("app-footer")},
					el("p", nil, text(T(loc, "core.tagline"))),
				),
			),
		),
	)
}

// AppMainContent renders the main landmark around the children in ctx. HTMX
// requests receive only this fragment.
func AppMainContent() templ.Component {
	return el("main", attrs{at("id", "main"), class("app-main")}, children())
}

func appHeader(view LayoutView, loc Localizer) templ.Component {
	links := make([]templ.Component, 0, len(navItems))
	for _, item := range navItems {
		cls := "nav-link"
		current := attr{}
		if isActivePath(view.ActivePath, item.path) {
			cls += " is-active"
			current = at("aria-current", "page")
		}
		links = append(links, el("a", attrs{href(item.path), class(cls), current}, text(T(loc, item.labelKey))))
	}
	return el("header", attrs{class("app-header")},
		el("a", attrs{href(routepath.Root), class("brand")}, text(T(loc, "core.app_name"))),
		el("nav", attrs{class("app-nav")}, links...),
		languageSwitcher(view.Languages, loc),
	)
}

func languageSwitcher(languages []LanguageLink, loc Localizer) templ.Component {
	if len(languages) == 0 {
		return nil
	}
	items := make([]templ.Component, 0, len(languages))
	for _, option := range languages {
		cls := "lang-link"
		if option.Active {
			cls += " is-active"
		}
		items = append(items, el("a", attrs{href(option.URL), class(cls)}, text(T(loc, option.LabelKey))))
	}
	return el("div", attrs{class("lang-switch"), at("aria-label", T(loc, "core.lang.label"))}, items...)
}

func isActivePath(current string, item string) bool {
	current = strings.TrimSpace(current)
	if item == routepath.Root {
		return current == routepath.Root || strings.HasPrefix(current, routepath.ListingsPrefix)
	}
	return current == item || strings.HasPrefix(current, item+"/")
}
