package gateway

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// DefaultAPIBaseURL is the public GitHub REST API root.
const DefaultAPIBaseURL = "https://api.github.com"

// QueryBuilder turns search criteria into a repository search URL.
type QueryBuilder struct {
	// BaseURL is the API root; DefaultAPIBaseURL when empty.
	BaseURL string
	// EncodeQuery percent-encodes the keyword term. When false the term is
	// substituted verbatim, which is what existing callers of the search
	// page expect (qualifiers such as "language:go" or "a+b" pass through).
	EncodeQuery bool
}

// Build returns <base>/search/repositories?q=<query>&sort=<sort>&order=<order>.
// Empty sort and order values are inserted as empty strings.
func (b QueryBuilder) Build(c domain.SearchCriteria) string {
	base := b.BaseURL
	if base == "" {
		base = DefaultAPIBaseURL
	}
	base = strings.TrimSuffix(base, "/")

	q := c.Query
	if b.EncodeQuery {
		q = url.QueryEscape(q)
	}
	return fmt.Sprintf("%s/search/repositories?q=%s&sort=%s&order=%s", base, q, c.Sort, c.Order)
}

// wireSafe percent-encodes the bytes of rawURL's query and fragment that may
// not appear on an HTTP request line (controls, space, quotes, angle brackets,
// backtick and non-ASCII). Everything else, including '&', '=', '+' and '%',
// is left as built.
func wireSafe(rawURL string) string {
	i := strings.IndexByte(rawURL, '?')
	if i < 0 {
		return rawURL
	}
	var sb strings.Builder
	sb.Grow(len(rawURL))
	sb.WriteString(rawURL[:i+1])
	for j := i + 1; j < len(rawURL); j++ {
		c := rawURL[j]
		switch {
		case c <= ' ', c >= 0x7f, c == '"', c == '\'', c == '<', c == '>', c == '`', c == '#':
			fmt.Fprintf(&sb, "%%%02X", c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
