// Package fixtures loads the seed data each marketplace page starts from.
package fixtures

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/louisbranch/gametrade/internal/marketplace"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embeddedSeed []byte

type seedDocument struct {
	Catalog   []listingDocument `yaml:"catalog"`
	Favorites []listingDocument `yaml:"favorites"`
	Profile   profileDocument   `yaml:"profile"`
	Rules     rulesDocument     `yaml:"rules"`
}

type listingDocument struct {
	ID          int      `yaml:"id"`
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Images      []string `yaml:"images"`
	Owner       string   `yaml:"owner"`
	Favorite    bool     `yaml:"favorite"`
	Status      string   `yaml:"status"`
	Views       int      `yaml:"views"`
}

type profileDocument struct {
	DisplayName  string            `yaml:"display_name"`
	Email        string            `yaml:"email"`
	ListingCount int               `yaml:"listing_count"`
	TotalViews   int               `yaml:"total_views"`
	Listings     []listingDocument `yaml:"listings"`
}

type rulesDocument struct {
	Sections []sectionDocument `yaml:"sections"`
	FAQ      []faqDocument     `yaml:"faq"`
}

type sectionDocument struct {
	ID    string              `yaml:"id"`
	Icon  string              `yaml:"icon"`
	Title map[string]string   `yaml:"title"`
	Items []map[string]string `yaml:"items"`
}

type faqDocument struct {
	ID       string            `yaml:"id"`
	Question map[string]string `yaml:"question"`
	Answer   map[string]string `yaml:"answer"`
}

// Store serves independent copies of the seed data.
type Store struct {
	catalog   []marketplace.Listing
	favorites []marketplace.Listing
	profile   marketplace.Profile
	rules     marketplace.Rules
}

// Embedded returns a store over the seed compiled into the binary.
func Embedded() (*Store, error) {
	return Parse(embeddedSeed)
}

// Load reads a seed file from path. An empty path selects the embedded seed.
func Load(path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures %s: %w", path, err)
	}
	store, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fixtures %s: %w", path, err)
	}
	return store, nil
}

// Parse decodes and validates a YAML seed document.
func Parse(data []byte) (*Store, error) {
	var doc seedDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}

	catalog, err := toListings("catalog", doc.Catalog)
	if err != nil {
		return nil, err
	}
	favorites, err := toListings("favorites", doc.Favorites)
	if err != nil {
		return nil, err
	}
	profileListings, err := toListings("profile", doc.Profile.Listings)
	if err != nil {
		return nil, err
	}
	for _, listing := range profileListings {
		if listing.Status != marketplace.StatusActive && listing.Status != marketplace.StatusClosed {
			return nil, fmt.Errorf("profile listing %d: status %q is not active or closed", listing.ID, listing.Status)
		}
	}
	if strings.TrimSpace(doc.Profile.DisplayName) == "" {
		return nil, errors.New("profile: display name is required")
	}
	rules, err := toRules(doc.Rules)
	if err != nil {
		return nil, err
	}

	return &Store{
		catalog:   catalog,
		favorites: favorites,
		profile: marketplace.Profile{
			DisplayName:  strings.TrimSpace(doc.Profile.DisplayName),
			Email:        strings.TrimSpace(doc.Profile.Email),
			ListingCount: doc.Profile.ListingCount,
			TotalViews:   doc.Profile.TotalViews,
			Listings:     profileListings,
		},
		rules: rules,
	}, nil
}

func toListings(group string, docs []listingDocument) ([]marketplace.Listing, error) {
	out := make([]marketplace.Listing, 0, len(docs))
	for idx, doc := range docs {
		category, ok := marketplace.ParseCategory(doc.Category)
		if !ok {
			return nil, fmt.Errorf("%s listing %d: unknown category %q", group, idx, doc.Category)
		}
		if len(doc.Images) > marketplace.MaxImages {
			return nil, fmt.Errorf("%s listing %d: %d images exceed the limit of %d", group, idx, len(doc.Images), marketplace.MaxImages)
		}
		if doc.Views < 0 {
			return nil, fmt.Errorf("%s listing %d: views must not be negative", group, idx)
		}
		out = append(out, marketplace.Listing{
			ID:          doc.ID,
			Title:       strings.TrimSpace(doc.Title),
			Description: strings.TrimSpace(doc.Description),
			Category:    category,
			Images:      append([]string(nil), doc.Images...),
			Owner:       strings.TrimSpace(doc.Owner),
			Favorite:    doc.Favorite,
			Status:      marketplace.Status(strings.TrimSpace(doc.Status)),
			Views:       doc.Views,
		})
	}
	return out, nil
}

func toRules(doc rulesDocument) (marketplace.Rules, error) {
	rules := marketplace.Rules{
		Sections: make([]marketplace.RuleSection, 0, len(doc.Sections)),
		FAQ:      make([]marketplace.FAQItem, 0, len(doc.FAQ)),
	}
	for _, section := range doc.Sections {
		if strings.TrimSpace(section.ID) == "" {
			return marketplace.Rules{}, errors.New("rules: section id is required")
		}
		items := make([]marketplace.Text, 0, len(section.Items))
		for _, item := range section.Items {
			items = append(items, marketplace.Text(item))
		}
		rules.Sections = append(rules.Sections, marketplace.RuleSection{
			ID:    section.ID,
			Icon:  section.Icon,
			Title: marketplace.Text(section.Title),
			Items: items,
		})
	}
	seen := make(map[string]struct{}, len(doc.FAQ))
	for _, item := range doc.FAQ {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return marketplace.Rules{}, errors.New("rules: faq id is required")
		}
		if _, dup := seen[id]; dup {
			return marketplace.Rules{}, fmt.Errorf("rules: duplicate faq id %q", id)
		}
		seen[id] = struct{}{}
		rules.FAQ = append(rules.FAQ, marketplace.FAQItem{
			ID:       id,
			Question: marketplace.Text(item.Question),
			Answer:   marketplace.Text(item.Answer),
		})
	}
	return rules, nil
}

// CatalogListings returns a fresh copy of the catalog seed.
func (s *Store) CatalogListings(ctx context.Context) ([]marketplace.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneListings(s.catalog), nil
}

// FavoriteListings returns a fresh copy of the favorites seed.
func (s *Store) FavoriteListings(ctx context.Context) ([]marketplace.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return cloneListings(s.favorites), nil
}

// Profile returns a fresh copy of the profile seed.
func (s *Store) Profile(ctx context.Context) (marketplace.Profile, error) {
	if err := ctx.Err(); err != nil {
		return marketplace.Profile{}, err
	}
	profile := s.profile
	profile.Listings = cloneListings(s.profile.Listings)
	return profile, nil
}

// Rules returns a fresh copy of the rules content.
func (s *Store) Rules(ctx context.Context) (marketplace.Rules, error) {
	if err := ctx.Err(); err != nil {
		return marketplace.Rules{}, err
	}
	out := marketplace.Rules{
		Sections: make([]marketplace.RuleSection, len(s.rules.Sections)),
		FAQ:      make([]marketplace.FAQItem, len(s.rules.FAQ)),
	}
	for i, section := range s.rules.Sections {
		items := make([]marketplace.Text, len(section.Items))
		for j, item := range section.Items {
			items[j] = cloneText(item)
		}
		out.Sections[i] = marketplace.RuleSection{ID: section.ID, Icon: section.Icon, Title: cloneText(section.Title), Items: items}
	}
	for i, item := range s.rules.FAQ {
		out.FAQ[i] = marketplace.FAQItem{ID: item.ID, Question: cloneText(item.Question), Answer: cloneText(item.Answer)}
	}
	return out, nil
}

func cloneListings(in []marketplace.Listing) []marketplace.Listing {
	out := make([]marketplace.Listing, len(in))
	for i, listing := range in {
		out[i] = listing.Clone()
	}
	return out
}

func cloneText(in marketplace.Text) marketplace.Text {
	out := make(marketplace.Text, len(in))
	for lang, value := range in {
		out[lang] = value
	}
	return out
}
