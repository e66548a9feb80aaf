// Package view projects search state onto a render tree and draws that tree
// for a terminal.
package view

import (
	"fmt"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

const (
	Title              = "GitHub Repositories Search"
	ProfilePlaceholder = "Fetching user..."
	LabelSearch        = "Search"
	LabelSubmitting    = "Fetching Repos..."
	QueryPlaceholder   = "javascript"
)

// Field IDs, in form order.
const (
	FieldQuery = "query"
	FieldSort  = "sort"
	FieldOrder = "order"
)

// State is everything the page depends on.
type State struct {
	Criteria   domain.SearchCriteria
	Submitting bool
	// Disabled is the submit predicate computed by the form controller.
	Disabled bool
	Records  []domain.RepositoryRecord
	Profile  *domain.UserProfile
	Err      error
}

// Field is one form control. Options is empty for the text input.
type Field struct {
	ID          string
	Label       string
	Value       string
	Placeholder string
	Required    bool
	Options     []domain.Option
}

// Button is the submit control.
type Button struct {
	Label    string
	Disabled bool
}

// Card is one rendered repository.
type Card struct {
	ID        int64
	AvatarURL string
	AvatarAlt string
	Name      string
	Stars     string
	Forks     string
	Issues    string
	Updated   string
	Href      string
}

// Page is the render tree for the whole screen.
type Page struct {
	Title   string
	Profile string
	Fields  []Field
	Button  Button
	Cards   []Card
	Error   string
}

// Render is a pure projection from s to a Page.
func Render(s State) Page {
	p := Page{
		Title:   Title,
		Profile: ProfileText(s.Profile),
		Fields: []Field{
			{ID: FieldQuery, Label: "Keywords", Value: s.Criteria.Query, Placeholder: QueryPlaceholder, Required: true},
			{ID: FieldSort, Label: "Sort", Value: string(s.Criteria.Sort), Options: domain.SortOptions},
			{ID: FieldOrder, Label: "Order", Value: string(s.Criteria.Order), Options: domain.OrderOptions},
		},
		Button: Button{Label: LabelSearch, Disabled: s.Disabled},
		Cards:  RenderCards(s.Records),
	}
	if s.Submitting {
		p.Button.Label = LabelSubmitting
	}
	if s.Err != nil {
		p.Error = fmt.Sprintf("Search failed: %v", s.Err)
	}
	return p
}

// RenderCards maps records to cards, keeping their order.
func RenderCards(records []domain.RepositoryRecord) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, Card{
			ID:        r.ID,
			AvatarURL: r.OwnerAvatarURL,
			AvatarAlt: r.Name,
			Name:      r.Name,
			Stars:     fmt.Sprintf("%d stars", r.StarCount),
			Forks:     fmt.Sprintf("%d forks", r.ForkCount),
			Issues:    fmt.Sprintf("%d open issues", r.OpenIssueCount),
			Updated:   fmt.Sprintf("updated last %s", r.UpdatedAt),
			Href:      r.HTMLURL,
		})
	}
	return cards
}

// ProfileText is the greeting slot: a placeholder until the profile arrives.
func ProfileText(p *domain.UserProfile) string {
	if p == nil {
		return ProfilePlaceholder
	}
	return fmt.Sprintf("Hello, %s! (%s)", p.Username, p.Email)
}
