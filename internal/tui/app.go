// ABOUTME: Main Bubble Tea application model
// ABOUTME: Coordinates three-pane calendar browser and navigation

package tui

import (
	"database/sql"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Pane represents which pane is focused
type Pane int

const (
	CalendarsPane Pane = iota
	PostsPane
	ThreadPane
)

// Model is the main application state
type Model struct {
	db         *sql.DB
	campaignID uuid.UUID
	activePane Pane
	width      int
	height     int
	calendars  CalendarsModel
	posts      PostsModel
	thread     ThreadModel
	err        error
}

// NewModel creates a new TUI model browsing one campaign's calendars
func NewModel(db *sql.DB, campaignID uuid.UUID) Model {
	return Model{
		db:         db,
		campaignID: campaignID,
		activePane: CalendarsPane,
		calendars:  NewCalendarsModel(db, campaignID),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.calendars.LoadCalendars()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateNavigation(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case CalendarsLoadedMsg:
		m.calendars.SetCalendars(msg.Calendars)
		return m, nil

	case error:
		m.err = msg
		return m, nil
	}

	return m, nil
}

func (m Model) updateNavigation(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.activePane = (m.activePane + 1) % 3
		return m, nil

	case "shift+tab":
		m.activePane = (m.activePane + 2) % 3
		return m, nil

	case "j", "down":
		switch m.activePane {
		case CalendarsPane:
			m.calendars.MoveDown()
		case PostsPane:
			m.posts.MoveDown()
		case ThreadPane:
			m.thread.MoveDown()
		}
		return m, nil

	case "k", "up":
		switch m.activePane {
		case CalendarsPane:
			m.calendars.MoveUp()
		case PostsPane:
			m.posts.MoveUp()
		case ThreadPane:
			m.thread.MoveUp()
		}
		return m, nil

	case "enter":
		switch m.activePane {
		case CalendarsPane:
			if rec := m.calendars.Selected(); rec != nil {
				m.activePane = PostsPane
				m.posts.SetCalendar(rec.Calendar)
			}
		case PostsPane:
			if post := m.posts.Selected(); post != nil {
				m.activePane = ThreadPane
				m.thread.SetThread(*post, m.posts.CommentsFor(post.ID))
			}
		}
		return m, nil

	case "r":
		return m, m.calendars.LoadCalendars()
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Calculate pane widths
	calendarsWidth := m.width / 4
	postsWidth := m.width / 4
	threadWidth := m.width - calendarsWidth - postsWidth

	// Styles
	activeStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("86"))

	inactiveStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	calendarsStyle := inactiveStyle
	postsStyle := inactiveStyle
	threadStyle := inactiveStyle

	switch m.activePane {
	case CalendarsPane:
		calendarsStyle = activeStyle
	case PostsPane:
		postsStyle = activeStyle
	case ThreadPane:
		threadStyle = activeStyle
	}

	calendarsView := calendarsStyle.Width(calendarsWidth - 2).Height(m.height - 4).Render(m.calendars.View())
	postsView := postsStyle.Width(postsWidth - 2).Height(m.height - 4).Render(m.posts.View())
	threadView := threadStyle.Width(threadWidth - 2).Height(m.height - 4).Render(m.thread.View())

	main := lipgloss.JoinHorizontal(lipgloss.Top, calendarsView, postsView, threadView)

	// Status bar
	status := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render("[tab] switch pane  [j/k] navigate  [enter] select  [r] refresh  [q] quit")

	if m.err != nil {
		status = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Render("Error: " + m.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, status)
}

// Run starts the TUI
func Run(db *sql.DB, campaignID uuid.UUID) error {
	p := tea.NewProgram(NewModel(db, campaignID), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
