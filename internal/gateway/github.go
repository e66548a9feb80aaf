// Package gateway provides a gateway to the GitHub search API and the profile
// GraphQL endpoint, abstracting away the underlying REST and GraphQL clients.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// RepositorySearcher defines the behavior of a gateway that runs repository searches.
type RepositorySearcher interface {
	SearchRepositories(ctx context.Context, url string) ([]domain.RepositoryRecord, error)
}

// GitHubGateway is the concrete implementation of RepositorySearcher.
type GitHubGateway struct {
	restClient *github.Client
	logger     *logrus.Logger
}

// searchRepositoriesResponse is the subset of the search payload we read.
type searchRepositoriesResponse struct {
	Items []struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Owner struct {
			AvatarURL string `json:"avatar_url"`
		} `json:"owner"`
		StargazersCount int    `json:"stargazers_count"`
		ForksCount      int    `json:"forks_count"`
		OpenIssuesCount int    `json:"open_issues_count"`
		UpdatedAt       string `json:"updated_at"`
		HTMLURL         string `json:"html_url"`
	} `json:"items"`
}

// NewHTTPClient returns an http.Client that sends token as a bearer token
// when it is non-empty. A zero timeout means requests never time out.
func NewHTTPClient(token string, timeout time.Duration) *http.Client {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		httpClient.Transport = &oauth2.Transport{
			Base:   http.DefaultTransport,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return httpClient
}

// NewGitHubGateway creates a new instance of GitHubGateway on top of httpClient.
func NewGitHubGateway(httpClient *http.Client, logger *logrus.Logger) *GitHubGateway {
	return &GitHubGateway{
		restClient: github.NewClient(httpClient),
		logger:     logger,
	}
}

// SearchRepositories sends exactly one GET to url and returns the "items"
// array in the order the API produced it. Failures are wrapped in
// ErrNetwork, ErrUnexpectedStatus or ErrMalformedResponse.
func (g *GitHubGateway) SearchRepositories(ctx context.Context, url string) ([]domain.RepositoryRecord, error) {
	g.logger.WithField("url", url).Debug("Searching repositories...")

	req, err := g.restClient.NewRequest(http.MethodGet, wireSafe(url), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	var payload searchRepositoriesResponse
	if _, err := g.restClient.Do(ctx, req, &payload); err != nil {
		err = classifySearchError(err)
		g.logger.WithError(err).Warn("Repository search failed.")
		return nil, fmt.Errorf("failed to search repositories: %w", err)
	}
	if payload.Items == nil {
		return nil, fmt.Errorf("failed to search repositories: %w: no items array", ErrMalformedResponse)
	}

	records := make([]domain.RepositoryRecord, 0, len(payload.Items))
	for _, item := range payload.Items {
		records = append(records, domain.RepositoryRecord{
			ID:             item.ID,
			Name:           item.Name,
			OwnerAvatarURL: item.Owner.AvatarURL,
			StarCount:      item.StargazersCount,
			ForkCount:      item.ForksCount,
			OpenIssueCount: item.OpenIssuesCount,
			UpdatedAt:      item.UpdatedAt,
			HTMLURL:        item.HTMLURL,
		})
	}
	g.logger.WithField("count", len(records)).Debug("Completed repository search.")
	return records, nil
}
