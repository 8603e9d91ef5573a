// Cinematch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Recommender is the TUI-facing subset of the recommender.
type Recommender interface {
	Recommend(title string, k int) ([]recommend.Recommendation, error)
	DefaultK() int
}

// Model is the Bubble Tea model for the interactive browser.
type Model struct {
	rec         Recommender
	input       textinput.Model
	results     []recommend.Recommendation
	suggestions []string
	status      string
	cursor      int
	lastQuery   string
	catalogSize int
	width       int
}

// New creates a browser over rec. catalogSize is shown in the header.
func New(rec Recommender, catalogSize int) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a movie title and press Enter"
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		rec:         rec,
		input:       ti,
		catalogSize: catalogSize,
		status:      "Type a title to get recommendations.",
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(20, msg.Width-boxStyle.GetHorizontalFrameSize()-len(m.input.Prompt)-1)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				title = m.selected()
			}
			if title == "" {
				return m, nil
			}
			m = m.query(title)
			m.input.Reset()
			return m, nil

		case tea.KeyUp:
			if n := len(m.items()); n > 0 {
				m.cursor = (m.cursor - 1 + n) % n
			}
			return m, nil

		case tea.KeyDown:
			if n := len(m.items()); n > 0 {
				m.cursor = (m.cursor + 1) % n
			}
			return m, nil

		case tea.KeyTab:
			if title := m.selected(); title != "" {
				m.input.SetValue(title)
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// query runs a recommendation for title and replaces the list.
func (m Model) query(title string) Model {
	m.lastQuery = title
	m.cursor = 0
	m.results = nil
	m.suggestions = nil

	recs, err := m.rec.Recommend(title, m.rec.DefaultK())
	var notFound *recommend.NotFoundError
	switch {
	case errors.As(err, &notFound):
		m.suggestions = notFound.Suggestions
		if len(m.suggestions) == 0 {
			m.status = fmt.Sprintf("No movie titled '%s' and no close matches.", title)
		} else {
			m.status = fmt.Sprintf("No movie titled '%s'. Did you mean:", title)
		}
	case err != nil:
		m.status = "Error: " + err.Error()
	case len(recs) == 0:
		m.status = fmt.Sprintf("No recommendations for '%s'.", title)
	default:
		m.results = recs
		m.status = fmt.Sprintf("Recommendations for '%s':", title)
	}
	return m
}

// items returns the titles of the list currently shown.
func (m Model) items() []string {
	if len(m.results) > 0 {
		titles := make([]string, len(m.results))
		for i, r := range m.results {
			titles[i] = r.Title
		}
		return titles
	}
	return m.suggestions
}

// selected returns the highlighted title, or "" when the list is empty.
func (m Model) selected() string {
	items := m.items()
	if len(items) == 0 {
		return ""
	}
	return items[m.cursor]
}

// View renders the header, the list, the input box and a key help line.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Cinematch"))
	b.WriteString(" ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d movies", m.catalogSize)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	if lines := m.renderList(); lines != "" {
		b.WriteString(boxStyle.Render(lines))
		b.WriteString("\n")
	}

	b.WriteString(boxStyle.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("enter: recommend  up/down: move  tab: copy title  esc: quit"))
	return b.String()
}

func (m Model) renderList() string {
	var lines []string
	switch {
	case len(m.results) > 0:
		for i, r := range m.results {
			lines = append(lines, m.renderLine(i, fmt.Sprintf("%d. %s (similarity: %.3f)", i+1, r.Title, r.Score)))
		}
	case len(m.suggestions) > 0:
		for i, s := range m.suggestions {
			lines = append(lines, m.renderLine(i, "- "+s))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderLine(i int, text string) string {
	if i == m.cursor {
		return selectedStyle.Render("> " + text)
	}
	return "  " + text
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
