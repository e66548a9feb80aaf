package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// ProfileFetcher defines the behavior of a gateway that loads the greeting profile.
type ProfileFetcher interface {
	FetchUser(ctx context.Context) (domain.UserProfile, error)
}

// ProfileGateway loads a user profile from a GraphQL endpoint.
type ProfileGateway struct {
	graphqlClient *githubv4.Client
	userID        string
	logger        *logrus.Logger
}

// userQuery is the parameterized USER(id) query.
type userQuery struct {
	User struct {
		Username githubv4.String
		Email    githubv4.String
	} `graphql:"user(id: $id)"`
}

// NewProfileGateway points a GraphQL client at endpoint. An empty endpoint
// produces a gateway whose FetchUser always returns ErrProfileDisabled.
func NewProfileGateway(endpoint, userID string, httpClient *http.Client, logger *logrus.Logger) *ProfileGateway {
	g := &ProfileGateway{userID: userID, logger: logger}
	if endpoint != "" {
		g.graphqlClient = githubv4.NewEnterpriseClient(endpoint, httpClient)
	}
	return g
}

// FetchUser runs the user query once.
func (g *ProfileGateway) FetchUser(ctx context.Context) (domain.UserProfile, error) {
	if g.graphqlClient == nil {
		return domain.UserProfile{}, ErrProfileDisabled
	}
	g.logger.WithField("id", g.userID).Debug("Fetching user profile...")

	var q userQuery
	variables := map[string]interface{}{"id": githubv4.String(g.userID)}
	if err := g.graphqlClient.Query(ctx, &q, variables); err != nil {
		return domain.UserProfile{}, fmt.Errorf("failed to execute GraphQL query for user: %w", err)
	}
	if q.User.Username == "" {
		return domain.UserProfile{}, fmt.Errorf("user %q not found", g.userID)
	}

	g.logger.Debug("Completed fetching user profile.")
	return domain.UserProfile{
		Username: string(q.User.Username),
		Email:    string(q.User.Email),
	}, nil
}
