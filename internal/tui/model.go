package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/naka-gawa/github-repo-search/internal/domain"
	"github.com/naka-gawa/github-repo-search/internal/usecase"
	"github.com/naka-gawa/github-repo-search/internal/view"
)

// focus order: keywords, sort, order, button, results.
var focusOrder = []string{view.FieldQuery, view.FieldSort, view.FieldOrder, view.FocusButton, view.FocusResults}

// Model is the Bubble Tea model for the search page. All state changes
// happen in Update, on the program's event loop; network calls run in
// commands and report back through messages.
type Model struct {
	ctx  context.Context
	page *usecase.Page
	nav  view.Navigator

	focus    int
	selected int
	status   string
}

// New creates a Model around page. ctx bounds every request the page issues.
func New(ctx context.Context, page *usecase.Page, nav view.Navigator) Model {
	return Model{ctx: ctx, page: page, nav: nav}
}

// Init starts the one-time profile fetch.
func (m Model) Init() tea.Cmd {
	profile := m.page.Profile()
	ctx := m.ctx
	return func() tea.Msg {
		p, err := profile.Fetch(ctx)
		return profileDoneMsg{Profile: p, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileDoneMsg:
		if msg.Err != nil {
			m.page.Profile().Fail(msg.Err)
		} else {
			m.page.Profile().Resolve(msg.Profile)
		}
		return m, nil

	case searchDoneMsg:
		form := m.page.Form()
		if msg.Err != nil {
			form.Reject(msg.Err)
			return m, nil
		}
		form.Resolve(msg.Records)
		m.selected = 0
		m.status = ""
		return m, nil

	case navigatedMsg:
		if msg.Err != nil {
			m.status = "Could not open " + msg.URL + ": " + msg.Err.Error()
		} else {
			m.status = "Opened " + msg.URL
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	form := m.page.Form()
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyTab:
		m.moveFocus(1)
		return m, nil
	case tea.KeyShiftTab:
		m.moveFocus(-1)
		return m, nil
	}

	switch m.Focus() {
	case view.FieldQuery:
		switch msg.Type {
		case tea.KeyRunes, tea.KeySpace:
			form.SetQuery(form.Criteria().Query + string(msg.Runes))
		case tea.KeyBackspace:
			if q := []rune(form.Criteria().Query); len(q) > 0 {
				form.SetQuery(string(q[:len(q)-1]))
			}
		case tea.KeyEnter:
			return m.submit()
		}
	case view.FieldSort:
		switch msg.Type {
		case tea.KeyLeft, tea.KeyRight:
			_ = form.SetSort(domain.Step(domain.SortOptions, string(form.Criteria().Sort), stepOf(msg)))
		case tea.KeyEnter:
			return m.submit()
		}
	case view.FieldOrder:
		switch msg.Type {
		case tea.KeyLeft, tea.KeyRight:
			_ = form.SetOrder(domain.Step(domain.OrderOptions, string(form.Criteria().Order), stepOf(msg)))
		case tea.KeyEnter:
			return m.submit()
		}
	case view.FocusButton:
		switch msg.Type {
		case tea.KeyEnter, tea.KeySpace:
			return m.submit()
		}
	case view.FocusResults:
		cards := len(form.Records())
		switch msg.Type {
		case tea.KeyUp:
			if m.selected > 0 {
				m.selected--
			}
		case tea.KeyDown:
			if m.selected < cards-1 {
				m.selected++
			}
		case tea.KeyEnter:
			return m, m.open()
		}
	}
	return m, nil
}

// submit passes the validation gate and dispatches exactly one search.
func (m Model) submit() (tea.Model, tea.Cmd) {
	form := m.page.Form()
	url, ok := form.Begin()
	if !ok {
		return m, nil
	}
	ctx := m.ctx
	return m, func() tea.Msg {
		records, err := form.Fetch(ctx, url)
		return searchDoneMsg{Records: records, Err: err}
	}
}

func (m Model) open() tea.Cmd {
	cards := m.page.Render().Cards
	if m.selected < 0 || m.selected >= len(cards) {
		return nil
	}
	card, nav := cards[m.selected], m.nav
	return func() tea.Msg {
		return navigatedMsg{URL: card.Href, Err: card.Click(nav)}
	}
}

// moveFocus cycles focus, skipping the result list while it is empty.
func (m *Model) moveFocus(delta int) {
	n := len(focusOrder)
	for i := 0; i < n; i++ {
		m.focus = ((m.focus+delta)%n + n) % n
		if focusOrder[m.focus] != view.FocusResults || len(m.page.Form().Records()) > 0 {
			return
		}
	}
}

// Focus returns the ID of the focused control.
func (m Model) Focus() string {
	return focusOrder[m.focus]
}

func (m Model) View() string {
	out := view.Text(m.page.Render(), view.TextOptions{Focus: m.Focus(), Selected: m.selected})
	if m.status != "" {
		out += m.status + "\n"
	}
	return out + helpText
}

const helpText = "tab: next field • ←/→: change option • enter: search / open • esc: quit\n"

func stepOf(msg tea.KeyMsg) int {
	if msg.Type == tea.KeyLeft {
		return -1
	}
	return 1
}
