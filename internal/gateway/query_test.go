package gateway

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

func TestQueryBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		builder  QueryBuilder
		criteria domain.SearchCriteria
		expected string
	}{
		{
			name:     "default base url",
			criteria: domain.SearchCriteria{Query: "react", Sort: domain.SortForks, Order: domain.OrderAsc},
			expected: "https://api.github.com/search/repositories?q=react&sort=forks&order=asc",
		},
		{
			name:     "empty sort is inserted verbatim",
			criteria: domain.NewSearchCriteria(),
			expected: "https://api.github.com/search/repositories?q=&sort=&order=desc",
		},
		{
			name:     "trailing slash on base is dropped",
			builder:  QueryBuilder{BaseURL: "http://localhost:8080/"},
			criteria: domain.SearchCriteria{Query: "go", Sort: domain.SortStars, Order: domain.OrderDesc},
			expected: "http://localhost:8080/search/repositories?q=go&sort=stars&order=desc",
		},
		{
			// Compatibility: the keyword term is not percent-encoded by default.
			name:     "query is not encoded by default",
			criteria: domain.SearchCriteria{Query: "a b&c=d", Sort: domain.SortUpdated, Order: domain.OrderDesc},
			expected: "https://api.github.com/search/repositories?q=a b&c=d&sort=updated&order=desc",
		},
		{
			name:     "EncodeQuery escapes the keyword term",
			builder:  QueryBuilder{EncodeQuery: true},
			criteria: domain.SearchCriteria{Query: "a b&c=d", Sort: domain.SortUpdated, Order: domain.OrderDesc},
			expected: "https://api.github.com/search/repositories?q=a+b%26c%3Dd&sort=updated&order=desc",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.builder.Build(tc.criteria))
		})
	}
}

func TestQueryBuilder_Build_SubstitutesQueryVerbatim(t *testing.T) {
	for _, q := range []string{"react", "language:go", "c++", "naïve", "100%", "x y z"} {
		url := QueryBuilder{}.Build(domain.SearchCriteria{Query: q, Order: domain.OrderDesc})
		assert.True(t, strings.HasPrefix(url, "https://api.github.com/search/repositories?q="+q+"&sort="), url)
	}
}

func TestWireSafe(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"https://h/search/repositories?q=react&sort=&order=desc", "https://h/search/repositories?q=react&sort=&order=desc"},
		{"https://h/s?q=a b", "https://h/s?q=a%20b"},
		{`https://h/s?q="x"<y>`, "https://h/s?q=%22x%22%3Cy%3E"},
		{"https://h/s?q=c#", "https://h/s?q=c%23"},
		{"https://h/s?q=é", "https://h/s?q=%C3%A9"},
		{"https://h/s?q=a+b%20c", "https://h/s?q=a+b%20c"},
		{"https://h/no-query", "https://h/no-query"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, wireSafe(tc.in))
	}
}
