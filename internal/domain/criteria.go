// Package domain contains the core data structures and domain logic for the application.
package domain

import "fmt"

// Sort is the ordering key sent to the repository search API.
// The empty value means GitHub's "best match" ranking.
type Sort string

const (
	SortBestMatch        Sort = ""
	SortStars            Sort = "stars"
	SortForks            Sort = "forks"
	SortHelpWantedIssues Sort = "help-wanted-issues"
	SortUpdated          Sort = "updated"
)

// Order is the sort direction sent to the repository search API.
type Order string

const (
	OrderDesc Order = "desc"
	OrderAsc  Order = "asc"
)

// Option pairs a selector's visible label with the value it submits.
type Option struct {
	Label string
	Value string
}

// SortOptions is the exhaustive, ordered list of sort choices.
var SortOptions = []Option{
	{Label: "Best Match", Value: string(SortBestMatch)},
	{Label: "Stars", Value: string(SortStars)},
	{Label: "Forks", Value: string(SortForks)},
	{Label: "Help Wanted Issues", Value: string(SortHelpWantedIssues)},
	{Label: "Updated", Value: string(SortUpdated)},
}

// OrderOptions is the exhaustive, ordered list of order choices.
var OrderOptions = []Option{
	{Label: "Desc", Value: string(OrderDesc)},
	{Label: "Asc", Value: string(OrderAsc)},
}

// SearchCriteria is the three-field search input collected by the form.
type SearchCriteria struct {
	Query string `json:"query"`
	Sort  Sort   `json:"sort"`
	Order Order  `json:"order"`
}

// NewSearchCriteria returns the criteria a freshly mounted form starts with.
func NewSearchCriteria() SearchCriteria {
	return SearchCriteria{Query: "", Sort: SortBestMatch, Order: OrderDesc}
}

// HasQuery reports whether the keyword field passes the presence check.
func (c SearchCriteria) HasQuery() bool {
	return c.Query != ""
}

// ParseSort validates s against SortOptions.
func ParseSort(s string) (Sort, error) {
	if indexOf(SortOptions, s) < 0 {
		return "", fmt.Errorf("invalid sort %q", s)
	}
	return Sort(s), nil
}

// ParseOrder validates s against OrderOptions.
func ParseOrder(s string) (Order, error) {
	if indexOf(OrderOptions, s) < 0 {
		return "", fmt.Errorf("invalid order %q", s)
	}
	return Order(s), nil
}

// Step returns the value delta positions away from current in options,
// wrapping around at both ends. An unknown current value starts from the first option.
func Step(options []Option, current string, delta int) string {
	if len(options) == 0 {
		return current
	}
	i := indexOf(options, current)
	if i < 0 {
		i = 0
	}
	n := len(options)
	return options[((i+delta)%n+n)%n].Value
}

// LabelOf returns the visible label for value, or value itself when it is not listed.
func LabelOf(options []Option, value string) string {
	if i := indexOf(options, value); i >= 0 {
		return options[i].Label
	}
	return value
}

func indexOf(options []Option, value string) int {
	for i, o := range options {
		if o.Value == value {
			return i
		}
	}
	return -1
}
