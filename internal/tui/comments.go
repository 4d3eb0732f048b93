// ABOUTME: Thread pane component
// ABOUTME: Displays the comment thread under the selected post

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/mastermind/internal/models"
)

type ThreadModel struct {
	post     models.Post
	comments []models.Comment
	loaded   bool
	scroll   int
}

func (m *ThreadModel) SetThread(post models.Post, comments []models.Comment) {
	m.post = post
	m.comments = comments
	m.loaded = true
	m.scroll = 0
}

func (m *ThreadModel) MoveUp() {
	if m.scroll > 0 {
		m.scroll--
	}
}

func (m *ThreadModel) MoveDown() {
	if m.scroll < len(m.comments)-1 {
		m.scroll++
	}
}

func (m ThreadModel) View() string {
	if !m.loaded {
		return lipgloss.NewStyle().Faint(true).Render("No thread\n\nSelect a post")
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	faintStyle := lipgloss.NewStyle().Faint(true)

	var s string
	s += lipgloss.NewStyle().Bold(true).Render(m.post.Title) + "\n"
	s += faintStyle.Render(fmt.Sprintf("%s · u/%s · %s\n\n",
		m.post.Community, m.post.AuthorUsername, m.post.Timestamp.Format("Mon Jan 2 15:04")))

	// Body (truncate long posts)
	body := m.post.Body
	if len(body) > 300 {
		body = body[:300] + "..."
	}
	s += body + "\n\n"
	s += faintStyle.Render(strings.Repeat("─", 20)) + "\n\n"

	if len(m.comments) == 0 {
		s += faintStyle.Render("No comments this week")
		return s
	}

	for i, comment := range m.comments {
		if i < m.scroll {
			continue
		}

		indent := ""
		if comment.ParentCommentID != nil {
			indent = "  "
		}

		mark := ""
		if comment.MentionsProduct {
			mark = " ●"
		}

		s += indent + headerStyle.Render("u/"+comment.Username)
		s += faintStyle.Render(fmt.Sprintf(" · %s · %s%s\n",
			comment.Timestamp.Format("15:04"), comment.SentimentType, mark))
		s += indent + comment.CommentText + "\n\n"
	}

	return s
}
