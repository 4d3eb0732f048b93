// ABOUTME: Posts pane component
// ABOUTME: Lists scheduled posts in the selected week

package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/mastermind/internal/models"
)

type PostsModel struct {
	calendar models.Calendar
	loaded   bool
	cursor   int
}

func (m *PostsModel) SetCalendar(cal models.Calendar) {
	m.calendar = cal
	m.loaded = true
	m.cursor = 0
}

func (m *PostsModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *PostsModel) MoveDown() {
	if m.cursor < len(m.calendar.Posts)-1 {
		m.cursor++
	}
}

func (m *PostsModel) Selected() *models.Post {
	if m.cursor >= 0 && m.cursor < len(m.calendar.Posts) {
		return &m.calendar.Posts[m.cursor]
	}
	return nil
}

// CommentsFor returns the week's comments belonging to one post, in order.
func (m *PostsModel) CommentsFor(postID string) []models.Comment {
	var comments []models.Comment
	for _, c := range m.calendar.Comments {
		if c.PostID == postID {
			comments = append(comments, c)
		}
	}
	return comments
}

func (m PostsModel) View() string {
	if !m.loaded {
		return lipgloss.NewStyle().Faint(true).Render("No posts\n\nSelect a week")
	}
	if len(m.calendar.Posts) == 0 {
		return lipgloss.NewStyle().Faint(true).Render("Empty week")
	}

	var s string
	s += lipgloss.NewStyle().Bold(true).Render("Posts") + "\n\n"

	for i, post := range m.calendar.Posts {
		cursor := "  "
		style := lipgloss.NewStyle()

		if i == m.cursor {
			cursor = "> "
			style = style.Foreground(lipgloss.Color("86"))
		}

		s += fmt.Sprintf("%s%s\n", cursor, style.Render(post.Title))
		s += lipgloss.NewStyle().Faint(true).Render(
			fmt.Sprintf("   %s · u/%s · %s\n", post.Community, post.AuthorUsername, post.Timestamp.Format("Mon 15:04")))
	}

	return s
}
