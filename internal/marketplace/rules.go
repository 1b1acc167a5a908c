package marketplace

import (
	"slices"
	"strings"
)

// DefaultLanguage is the language used when a text has no translation for
// the requested one.
const DefaultLanguage = "en"

// Text is a piece of copy keyed by two-letter language code.
type Text map[string]string

// In returns the text for lang, falling back to DefaultLanguage.
func (t Text) In(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if len(lang) > 2 {
		lang = lang[:2]
	}
	if value, ok := t[lang]; ok && value != "" {
		return value
	}
	return t[DefaultLanguage]
}

// RuleSection is one titled block of platform rules.
type RuleSection struct {
	ID    string
	Icon  string
	Title Text
	Items []Text
}

// FAQItem is one expandable question.
type FAQItem struct {
	ID       string
	Question Text
	Answer   Text
}

// Rules is the static platform rules content.
type Rules struct {
	Sections []RuleSection
	FAQ      []FAQItem
}

// FAQState is the set of expanded FAQ items.
type FAQState map[string]bool

// NewFAQState keeps the ids that name an item in faq.
func NewFAQState(faq []FAQItem, open []string) FAQState {
	state := FAQState{}
	for _, id := range open {
		id = strings.TrimSpace(id)
		for _, item := range faq {
			if item.ID == id {
				state[id] = true
				break
			}
		}
	}
	return state
}

// Open reports whether id is expanded.
func (s FAQState) Open(id string) bool {
	return s[id]
}

// Toggle returns a copy of s with id flipped. Other items keep their state.
func (s FAQState) Toggle(id string) FAQState {
	out := make(FAQState, len(s)+1)
	for key, open := range s {
		if open {
			out[key] = true
		}
	}
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}

// IDs returns the expanded ids in sorted order.
func (s FAQState) IDs() []string {
	out := make([]string, 0, len(s))
	for id, open := range s {
		if open {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}
