package usecase

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// mockSearcher is a mock implementation of the gateway.RepositorySearcher interface.
type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) SearchRepositories(ctx context.Context, url string) ([]domain.RepositoryRecord, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RepositoryRecord), args.Error(1)
}

// mockProfileFetcher is a mock implementation of the gateway.ProfileFetcher interface.
type mockProfileFetcher struct {
	mock.Mock
}

func (m *mockProfileFetcher) FetchUser(ctx context.Context) (domain.UserProfile, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.UserProfile), args.Error(1)
}

func discardLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

var (
	firstResults = []domain.RepositoryRecord{
		{ID: 1, Name: "react", StarCount: 10, ForkCount: 2, OpenIssueCount: 1, UpdatedAt: "2019-01-01T00:00:00Z", HTMLURL: "https://github.com/facebook/react"},
		{ID: 2, Name: "redux", StarCount: 5, ForkCount: 1, OpenIssueCount: 0, UpdatedAt: "2019-02-01T00:00:00Z", HTMLURL: "https://github.com/reduxjs/redux"},
	}
	secondResults = []domain.RepositoryRecord{
		{ID: 3, Name: "vue", StarCount: 8, ForkCount: 4, OpenIssueCount: 2, UpdatedAt: "2019-03-01T00:00:00Z", HTMLURL: "https://github.com/vuejs/vue"},
	}
)
