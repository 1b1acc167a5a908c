package rules

import (
	"context"
	"net/url"

	"github.com/louisbranch/gametrade/internal/marketplace"
	"github.com/louisbranch/gametrade/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/gametrade/internal/services/web/templates"
)

// RulesGateway loads the rules content.
type RulesGateway interface {
	Rules(context.Context) (marketplace.Rules, error)
}

type service struct {
	gateway RulesGateway
}

func newService(gateway RulesGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// loadPage localizes the rules into lang and expands the FAQ items named by
// open. Each FAQ entry links to the page with only its own state flipped.
func (s service) loadPage(ctx context.Context, lang string, open []string) (webtemplates.RulesPageView, error) {
	rules, err := s.gateway.Rules(ctx)
	if err != nil {
		return webtemplates.RulesPageView{}, err
	}
	state := marketplace.NewFAQState(rules.FAQ, open)

	view := webtemplates.RulesPageView{
		Sections: make([]webtemplates.RuleSectionView, 0, len(rules.Sections)),
		FAQ:      make([]webtemplates.FAQItemView, 0, len(rules.FAQ)),
	}
	for _, section := range rules.Sections {
		items := make([]string, 0, len(section.Items))
		for _, item := range section.Items {
			items = append(items, item.In(lang))
		}
		view.Sections = append(view.Sections, webtemplates.RuleSectionView{
			ID:    section.ID,
			Icon:  section.Icon,
			Title: section.Title.In(lang),
			Items: items,
		})
	}
	for _, item := range rules.FAQ {
		view.FAQ = append(view.FAQ, webtemplates.FAQItemView{
			ID:        item.ID,
			Question:  item.Question.In(lang),
			Answer:    item.Answer.In(lang),
			Open:      state.Open(item.ID),
			ToggleURL: routepath.WithQuery(routepath.Rules, url.Values{routepath.OpenParam: state.Toggle(item.ID).IDs()}),
		})
	}
	return view, nil
}
