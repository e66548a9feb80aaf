package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	line, err := Summarize(testRecords)
	require.NoError(t, err)
	assert.Equal(t, "3 repositories, median 77 stars, mean 3026.0 stars", line)

	_, err = Summarize(nil)
	assert.Error(t, err)
}
