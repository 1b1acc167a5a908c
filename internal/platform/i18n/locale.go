// Package i18n defines the locales the marketplace UI is translated into.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	supportedTags = []language.Tag{
		language.MustParse("en-US"),
		language.MustParse("ru-RU"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// SupportedTags returns the supported locale tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supportedTags...)
}

// DefaultTag returns the locale used when negotiation finds no match.
func DefaultTag() language.Tag {
	return supportedTags[0]
}

// ParseTag maps a raw tag such as "ru" or "en-GB" to a supported locale.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	_, idx, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Tag{}, false
	}
	return supportedTags[idx], true
}

// MatchTags picks the best supported locale for an ordered preference list.
// The bool is false when none of the tags is supported.
func MatchTags(tags []language.Tag) (language.Tag, bool) {
	if len(tags) == 0 {
		return DefaultTag(), false
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultTag(), false
	}
	return supportedTags[idx], true
}

// Lang returns the two-letter language code of tag, e.g. "ru" for ru-RU.
func Lang(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}
