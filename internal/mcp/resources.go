// ABOUTME: MCP resource implementations
// ABOUTME: Read-only campaign and calendar views via MCP resources

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/models"
)

func (s *Server) registerResources() {
	s.mcp.AddResource(&mcp.Resource{
		URI:         "mastermind://campaigns",
		Name:        "All Campaigns",
		Description: "List of all campaigns with their companies",
		MIMEType:    "application/json",
	}, s.handleCampaignsResource)

	s.mcp.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "mastermind://calendars/{calendar}",
		Name:        "Calendar Week",
		Description: "One generated week rendered as markdown",
		MIMEType:    "text/markdown",
	}, s.handleCalendarResource)
}

func (s *Server) handleCampaignsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	campaigns, err := db.ListCampaigns(s.db)
	if err != nil {
		return nil, err
	}

	type item struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		CompanyName string `json:"company_name"`
		Personas    int    `json:"personas"`
		Communities int    `json:"communities"`
	}
	items := make([]item, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, item{
			ID:          c.ID.String(),
			Name:        c.Name,
			CompanyName: c.CompanyName,
			Personas:    len(c.Definition.Personas),
			Communities: len(c.Definition.Communities),
		})
	}

	data, _ := json.MarshalIndent(items, "", "  ")
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "mastermind://campaigns",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCalendarResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	// Extract calendar id from URI
	parts := strings.Split(req.Params.URI, "/")
	if len(parts) < 4 {
		return nil, fmt.Errorf("invalid URI")
	}
	calendarID := parts[3]

	rec, err := db.GetCalendar(s.db, calendarID)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     RenderCalendarMarkdown(rec.Calendar),
		}},
	}, nil
}

// RenderCalendarMarkdown formats a week as a readable markdown document:
// posts in schedule order, each followed by its comment thread.
func RenderCalendarMarkdown(cal models.Calendar) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Week %d (%s – %s)\n\n",
		cal.WeekNumber,
		cal.WeekStartDate.Format("Jan 2"),
		cal.WeekEndDate.Format("Jan 2, 2006")))
	sb.WriteString(fmt.Sprintf("Overall %d/10 · naturalness %d · diversity %d · keyword coverage %.0f%%\n\n",
		cal.QualityMetrics.OverallScore,
		cal.QualityMetrics.Naturalness,
		cal.QualityMetrics.DiversityScore,
		cal.QualityMetrics.KeywordCoverage))

	for _, w := range cal.QualityMetrics.Warnings {
		sb.WriteString(fmt.Sprintf("> ⚠ %s\n", w))
	}
	if len(cal.QualityMetrics.Warnings) > 0 {
		sb.WriteString("\n")
	}

	for _, post := range cal.Posts {
		sb.WriteString(fmt.Sprintf("## %s · %s\n\n", post.Community, post.Title))
		sb.WriteString(fmt.Sprintf("*%s by u/%s · %s*\n\n",
			post.Timestamp.Format("Mon Jan 2 15:04"),
			post.AuthorUsername,
			post.EngagementType))
		sb.WriteString(post.Body)
		sb.WriteString("\n\n")

		for _, comment := range cal.Comments {
			if comment.PostID != post.ID {
				continue
			}
			indent := ""
			if comment.ParentCommentID != nil {
				indent = "  "
			}
			sb.WriteString(fmt.Sprintf("%s- **u/%s** (%s): %s\n",
				indent, comment.Username, comment.SentimentType, comment.CommentText))
		}
		sb.WriteString("\n---\n\n")
	}

	return sb.String()
}
