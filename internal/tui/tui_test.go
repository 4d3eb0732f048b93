// ABOUTME: Tests for TUI components
// ABOUTME: Verifies model initialization and pane state

package tui

import (
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/models"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.InitDB(":memory:")
	if err != nil {
		t.Fatalf("Failed to init test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestNewModel(t *testing.T) {
	conn := setupTestDB(t)

	model := NewModel(conn, uuid.New())
	if model.db == nil {
		t.Error("Model db should not be nil")
	}
	if model.activePane != CalendarsPane {
		t.Error("Model should start in the calendars pane")
	}
}

func TestModelInit(t *testing.T) {
	conn := setupTestDB(t)

	model := NewModel(conn, uuid.New())
	cmd := model.Init()
	if cmd == nil {
		t.Error("Init should return a command to load calendars")
	}
}

func TestPostsPaneCommentsFor(t *testing.T) {
	parent := "C1"
	var posts PostsModel
	posts.SetCalendar(models.Calendar{
		Posts: []models.Post{{ID: "P1"}, {ID: "P2"}},
		Comments: []models.Comment{
			{ID: "C1", PostID: "P1"},
			{ID: "C2", PostID: "P2"},
			{ID: "C3", PostID: "P1", ParentCommentID: &parent},
		},
	})

	comments := posts.CommentsFor("P1")
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments for P1, got %d", len(comments))
	}
	if comments[0].ID != "C1" || comments[1].ID != "C3" {
		t.Errorf("comments out of order: %v", comments)
	}
}

func TestCalendarsPaneCursorBounds(t *testing.T) {
	conn := setupTestDB(t)

	m := NewCalendarsModel(conn, uuid.New())
	m.MoveUp()
	m.MoveDown()
	if m.Selected() != nil {
		t.Error("empty pane should have no selection")
	}

	m.SetCalendars([]*db.CalendarRecord{
		{ID: uuid.New(), Calendar: models.Calendar{WeekNumber: 1, WeekStartDate: time.Now()}},
		{ID: uuid.New(), Calendar: models.Calendar{WeekNumber: 2, WeekStartDate: time.Now()}},
	})
	m.MoveDown()
	m.MoveDown()
	if sel := m.Selected(); sel == nil || sel.Calendar.WeekNumber != 2 {
		t.Error("cursor should clamp at the last calendar")
	}
}
