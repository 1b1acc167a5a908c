// Package i18n resolves the request localizer shared by module handlers and
// page rendering.
package i18n

import (
	"net/http"
	"strings"

	"github.com/louisbranch/gametrade/internal/services/web/i18n"
	"github.com/louisbranch/gametrade/internal/services/web/module"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer is the printer used by templates.
type Localizer = *message.Printer

// ResolveTag returns the effective language tag for the request. resolveLanguage
// supplies the fallback consulted after the query, cookie and Accept-Language.
func ResolveTag(r *http.Request, resolveLanguage module.ResolveLanguage) language.Tag {
	tag, _ := i18n.ResolveTag(r, fallbackTag(r, resolveLanguage))
	return tag
}

// ResolveLocalizer resolves the request language, persists an explicit
// ?lang= choice as a cookie and returns the printer with the tag.
func ResolveLocalizer(w http.ResponseWriter, r *http.Request, resolveLanguage module.ResolveLanguage) (Localizer, language.Tag) {
	tag, persist := i18n.ResolveTag(r, fallbackTag(r, resolveLanguage))
	if persist {
		i18n.SetLanguageCookie(w, tag)
	}
	return i18n.Printer(tag), tag
}

func fallbackTag(r *http.Request, resolveLanguage module.ResolveLanguage) language.Tag {
	if resolveLanguage == nil || r == nil {
		return i18n.Default()
	}
	lang := strings.TrimSpace(resolveLanguage(r))
	if lang == "" {
		return i18n.Default()
	}
	return i18n.NormalizeTag(lang)
}
