// ABOUTME: Calendars pane component
// ABOUTME: Lists generated weeks for the browsed campaign

package tui

import (
	"database/sql"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/harper/mastermind/internal/db"
)

type CalendarsLoadedMsg struct {
	Calendars []*db.CalendarRecord
}

type CalendarsModel struct {
	db         *sql.DB
	campaignID uuid.UUID
	calendars  []*db.CalendarRecord
	cursor     int
}

func NewCalendarsModel(database *sql.DB, campaignID uuid.UUID) CalendarsModel {
	return CalendarsModel{db: database, campaignID: campaignID, cursor: 0}
}

func (m *CalendarsModel) LoadCalendars() tea.Cmd {
	return func() tea.Msg {
		records, err := db.ListCalendars(m.db, m.campaignID.String())
		if err != nil {
			return err
		}
		return CalendarsLoadedMsg{Calendars: records}
	}
}

func (m *CalendarsModel) SetCalendars(calendars []*db.CalendarRecord) {
	m.calendars = calendars
	if m.cursor >= len(calendars) {
		m.cursor = len(calendars) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *CalendarsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *CalendarsModel) MoveDown() {
	if m.cursor < len(m.calendars)-1 {
		m.cursor++
	}
}

func (m *CalendarsModel) Selected() *db.CalendarRecord {
	if m.cursor >= 0 && m.cursor < len(m.calendars) {
		return m.calendars[m.cursor]
	}
	return nil
}

func (m CalendarsModel) View() string {
	if len(m.calendars) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("No calendars\n\nRun generate first")
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Render("Weeks") + "\n\n"

	for i, rec := range m.calendars {
		cursor := "  "
		style := lipgloss.NewStyle()

		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("86"))
		}

		label := fmt.Sprintf("Week %d · %s", rec.Calendar.WeekNumber, rec.Calendar.WeekStartDate.Format("Jan 2"))
		s += fmt.Sprintf("%s%s\n", cursor, style.Render(label))
		s += lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("   %d posts · score %d/10\n", len(rec.Calendar.Posts), rec.Calendar.QualityMetrics.OverallScore))
	}

	return s
}
