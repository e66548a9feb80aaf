package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/naka-gawa/github-repo-search/internal/domain"
	"github.com/naka-gawa/github-repo-search/internal/gateway"
)

// TestPage_Run uses a table-driven approach to test the one-shot page run.
func TestPage_Run(t *testing.T) {
	testCases := []struct {
		name            string
		query           string
		mockRecords     []domain.RepositoryRecord
		mockSearchErr   error
		mockProfile     domain.UserProfile
		mockProfileErr  error
		expectSearch    bool
		expectedCards   int
		expectedProfile string
		expectedButton  string
		expectError     bool
	}{
		{
			name:            "happy path - search and profile both resolve",
			query:           "react",
			mockRecords:     firstResults,
			mockProfile:     domain.UserProfile{Username: "ada", Email: "a@x.com"},
			expectSearch:    true,
			expectedCards:   2,
			expectedProfile: "Hello, ada! (a@x.com)",
			expectedButton:  "Search",
		},
		{
			name:            "profile failure does not affect the search",
			query:           "react",
			mockRecords:     firstResults,
			mockProfileErr:  errors.New("graphql down"),
			expectSearch:    true,
			expectedCards:   2,
			expectedProfile: "Fetching user...",
			expectedButton:  "Search",
		},
		{
			name:            "error case - search fails",
			query:           "react",
			mockSearchErr:   gateway.ErrNetwork,
			mockProfile:     domain.UserProfile{Username: "ada", Email: "a@x.com"},
			expectSearch:    true,
			expectedProfile: "Hello, ada! (a@x.com)",
			expectedButton:  "Search",
			expectError:     true,
		},
		{
			name:            "empty query - no request",
			query:           "",
			mockProfile:     domain.UserProfile{Username: "ada", Email: "a@x.com"},
			expectedProfile: "Hello, ada! (a@x.com)",
			expectedButton:  "Search",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			logger := discardLogger()
			searcher := new(mockSearcher)
			if tc.expectSearch {
				searcher.On("SearchRepositories", mock.Anything, mock.Anything).Return(tc.mockRecords, tc.mockSearchErr).Once()
			}
			fetcher := new(mockProfileFetcher)
			fetcher.On("FetchUser", mock.Anything).Return(tc.mockProfile, tc.mockProfileErr).Once()

			form := NewFormController(searcher, gateway.QueryBuilder{}, logger)
			form.SetQuery(tc.query)
			page := NewPage(form, NewProfileSlot(fetcher, logger), logger)

			// --- Act ---
			rendered, err := page.Run(context.Background())

			// --- Assert ---
			if tc.expectError {
				assert.Error(t, err)
				assert.NotEmpty(t, rendered.Error)
			} else {
				require.NoError(t, err)
				assert.Empty(t, rendered.Error)
			}
			assert.Len(t, rendered.Cards, tc.expectedCards)
			assert.Equal(t, tc.expectedProfile, rendered.Profile)
			assert.Equal(t, tc.expectedButton, rendered.Button.Label)
			assert.Equal(t, StateIdle, form.State())

			searcher.AssertExpectations(t)
			fetcher.AssertExpectations(t)
			if !tc.expectSearch {
				searcher.AssertNotCalled(t, "SearchRepositories", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestPage_Render_WhileSubmitting(t *testing.T) {
	logger := discardLogger()
	form := NewFormController(new(mockSearcher), gateway.QueryBuilder{}, logger)
	page := NewPage(form, NewProfileSlot(new(mockProfileFetcher), logger), logger)

	assert.True(t, page.Render().Button.Disabled)

	form.SetQuery("react")
	assert.False(t, page.Render().Button.Disabled)

	_, ok := form.Begin()
	require.True(t, ok)
	rendered := page.Render()
	assert.Equal(t, "Fetching Repos...", rendered.Button.Label)
	assert.True(t, rendered.Button.Disabled)
	assert.Equal(t, "Fetching user...", rendered.Profile)
}
