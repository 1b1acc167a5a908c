package templates

import "github.com/a-h/templ"

// RuleSectionView is one titled block of rules.
type RuleSectionView struct {
	ID    string
	Icon  string
	Title string
	Items []string
}

// FAQItemView is one collapsible question.
type FAQItemView struct {
	ID        string
	Question  string
	Answer    string
	Open      bool
	ToggleURL string
}

// RulesPageView is the rules page model.
type RulesPageView struct {
	Sections []RuleSectionView
	FAQ      []FAQItemView
}

// RulesFragment renders the rules page body.
func RulesFragment(view RulesPageView, loc Localizer) templ.Component {
	sections := make([]templ.Component, 0, len(view.Sections))
	for _, section := range view.Sections {
		items := make([]templ.Component, 0, len(section.Items))
		for _, item := range section.Items {
			items = append(items, el("li", nil, text(item)))
		}
		sections = append(sections, el("article", attrs{class("rule-section"), at("id", section.ID), at("data-icon", section.Icon)},
			el("h2", nil, text(section.Title)),
			el("ul", nil, items...),
		))
	}

	faq := make([]templ.Component, 0, len(view.FAQ))
	for _, item := range view.FAQ {
		expanded := "false"
		if item.Open {
			expanded = "true"
		}
		faq = append(faq, el("div", attrs{class("faq-item"), at("id", "faq-"+item.ID)},
			el("h3", nil,
				el("a", attrs{href(item.ToggleURL + "#faq-" + item.ID), class("faq-trigger"), at("aria-expanded", expanded)}, text(item.Question)),
			),
			when(item.Open, el("p", attrs{class("faq-answer muted")}, text(item.Answer))),
		))
	}

	return el("section", attrs{class("rules"), at("id", "rules")},
		el("header", attrs{class("page-header")},
			el("h1", nil, text(T(loc, "web.rules.title"))),
			el("p", attrs{class("muted")}, text(T(loc, "web.rules.subtitle"))),
		),
		group(sections...),
		el("section", attrs{class("faq")},
			el("h2", nil, text(T(loc, "web.rules.faq_title"))),
			group(faq...),
		),
	)
}
