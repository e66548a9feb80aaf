package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/naka-gawa/github-repo-search/internal/domain"
)

// Focus targets that are not form fields.
const (
	FocusButton  = "button"
	FocusResults = "results"
)

// TextOptions controls interactive decorations. The zero value draws a
// static page with no focus and no selected card.
type TextOptions struct {
	// Focus is a field ID, FocusButton or FocusResults.
	Focus string
	// Selected is the index of the highlighted card when Focus is FocusResults.
	Selected int
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	faintStyle    = lipgloss.NewStyle().Faint(true)
	focusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedStyle = cardStyle.BorderForeground(lipgloss.Color("205"))
)

// Text draws p for a terminal.
func Text(p Page, opts TextOptions) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(p.Title))
	sb.WriteString("\n")
	sb.WriteString(p.Profile)
	sb.WriteString("\n\n")

	for _, f := range p.Fields {
		sb.WriteString(fieldLine(f, opts.Focus == f.ID))
		sb.WriteString("\n")
	}

	button := "[ " + p.Button.Label + " ]"
	switch {
	case p.Button.Disabled:
		button = faintStyle.Render(button)
	case opts.Focus == FocusButton:
		button = focusStyle.Render(button)
	}
	sb.WriteString(button)
	sb.WriteString("\n")

	if p.Error != "" {
		sb.WriteString(errorStyle.Render(p.Error))
		sb.WriteString("\n")
	}

	for i, c := range p.Cards {
		style := cardStyle
		if opts.Focus == FocusResults && opts.Selected == i {
			style = selectedStyle
		}
		sb.WriteString(style.Render(cardText(c)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func fieldLine(f Field, focused bool) string {
	label := f.Label + ": "
	if focused {
		label = focusStyle.Render(label)
	}
	if len(f.Options) == 0 {
		value := f.Value
		if value == "" {
			value = faintStyle.Render(f.Placeholder)
		}
		if focused {
			value += "_"
		}
		return label + value
	}
	return label + "< " + domain.LabelOf(f.Options, f.Value) + " >"
}

func cardText(c Card) string {
	return strings.Join([]string{
		c.Name,
		faintStyle.Render(c.AvatarURL),
		c.Stars,
		c.Forks,
		c.Issues,
		c.Updated,
	}, "\n")
}
