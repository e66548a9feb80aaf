package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naka-gawa/github-repo-search/internal/usecase"
	"github.com/naka-gawa/github-repo-search/internal/view"
)

// Run blocks until the user quits the page.
func Run(ctx context.Context, page *usecase.Page, nav view.Navigator) error {
	program := tea.NewProgram(New(ctx, page, nav), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run interactive page: %w", err)
	}
	return nil
}
