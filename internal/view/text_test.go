package view

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

func TestText(t *testing.T) {
	p := Render(State{
		Criteria: domain.SearchCriteria{Query: "react", Sort: domain.SortHelpWantedIssues, Order: domain.OrderAsc},
		Records:  testRecords,
		Profile:  &domain.UserProfile{Username: "ada", Email: "a@x.com"},
	})
	out := Text(p, TextOptions{})

	for _, want := range []string{
		"GitHub Repositories Search",
		"Hello, ada! (a@x.com)",
		"Keywords: react",
		"Sort: < Help Wanted Issues >",
		"Order: < Asc >",
		"[ Search ]",
	} {
		assert.Contains(t, out, want)
	}
	for _, c := range p.Cards {
		for _, want := range []string{c.Name, c.Stars, c.Forks, c.Issues, c.Updated} {
			assert.Contains(t, out, want)
		}
	}
	assert.Equal(t, len(testRecords), strings.Count(out, " open issues"))
}

func TestText_PlaceholderAndError(t *testing.T) {
	p := Render(State{Criteria: domain.NewSearchCriteria(), Disabled: true})
	p.Error = "Search failed: boom"
	out := Text(p, TextOptions{Focus: FieldQuery})

	assert.Contains(t, out, "Fetching user...")
	assert.Contains(t, out, "javascript")
	assert.Contains(t, out, "Sort: < Best Match >")
	assert.Contains(t, out, "Order: < Desc >")
	assert.Contains(t, out, "Search failed: boom")
}
