// Package i18n resolves the request locale and prints localized UI copy for
// the web service.
package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	platformi18n "github.com/louisbranch/gametrade/internal/platform/i18n"
	"github.com/louisbranch/gametrade/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the user's language preference.
	LangCookieName = "gt_lang"
)

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag      string
	LabelKey string
	URL      string
	Active   bool
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// NormalizeTag coerces unknown tags to the default supported language.
func NormalizeTag(value string) language.Tag {
	if tag, ok := platformi18n.ParseTag(value); ok {
		return tag
	}
	return platformi18n.DefaultTag()
}

// Printer returns a message printer for the supplied tag backed by the
// embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(tag)
}

// ResolveTag determines the best language tag for the request, consulting the
// lang query param, the language cookie and Accept-Language before fallback.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request, fallback language.Tag) (language.Tag, bool) {
	if r == nil {
		return fallback, false
	}

	if langValue := strings.TrimSpace(r.URL.Query().Get(LangParam)); langValue != "" {
		if tag, ok := platformi18n.ParseTag(langValue); ok {
			return tag, true
		}
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			if tag, ok := platformi18n.MatchTags(tags); ok {
				return tag, false
			}
		}
	}

	return fallback, false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns the current URL with the language param updated.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// LanguageOptions builds the language switcher entries for the current URL.
func LanguageOptions(active language.Tag, path string, rawQuery string) []LanguageOption {
	supported := Supported()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		lang := platformi18n.Lang(tag)
		options = append(options, LanguageOption{
			Tag:      lang,
			LabelKey: "core.lang." + lang,
			URL:      LanguageURL(path, rawQuery, lang),
			Active:   tag == active,
		})
	}
	return options
}
