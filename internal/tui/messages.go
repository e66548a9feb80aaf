// Package tui runs the search page as a Bubble Tea program.
package tui

import "github.com/naka-gawa/github-repo-search/internal/domain"

// searchDoneMsg is emitted when a repository search finishes.
type searchDoneMsg struct {
	Records []domain.RepositoryRecord
	Err     error
}

// profileDoneMsg is emitted when the profile query finishes.
type profileDoneMsg struct {
	Profile domain.UserProfile
	Err     error
}

// navigatedMsg is emitted after a card has been opened.
type navigatedMsg struct {
	URL string
	Err error
}
