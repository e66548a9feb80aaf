package view

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// Summarize describes the star distribution of records in one line.
// It returns an error for an empty list.
func Summarize(records []domain.RepositoryRecord) (string, error) {
	stars := make(stats.Float64Data, 0, len(records))
	for _, r := range records {
		stars = append(stars, float64(r.StarCount))
	}
	median, err := stars.Median()
	if err != nil {
		return "", fmt.Errorf("failed to summarize results: %w", err)
	}
	mean, err := stars.Mean()
	if err != nil {
		return "", fmt.Errorf("failed to summarize results: %w", err)
	}
	return fmt.Sprintf("%d repositories, median %.0f stars, mean %.1f stars", len(records), median, mean), nil
}
