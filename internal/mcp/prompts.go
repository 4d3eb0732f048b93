// ABOUTME: MCP prompt templates
// ABOUTME: Guided workflows for reviewing and refining calendars

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "review-week",
		Description: "Review a generated week for authenticity problems",
		Arguments: []*mcp.PromptArgument{
			{Name: "calendar_id", Description: "Calendar ID to review", Required: true},
		},
	}, s.handleReviewWeekPrompt)

	s.mcp.AddPrompt(&mcp.Prompt{
		Name:        "plan-next-week",
		Description: "Generate and summarize next week's calendar for a campaign",
		Arguments: []*mcp.PromptArgument{
			{Name: "campaign", Description: "Campaign name or id", Required: true},
		},
	}, s.handlePlanNextWeekPrompt)
}

func (s *Server) handleReviewWeekPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	calendarID := req.Params.Arguments["calendar_id"]

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Review calendar %s", calendarID),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: fmt.Sprintf(`Review the generated posting calendar %s.

First, use the show_calendar tool to read it, then assess:
1. Would these posts read as organic to a subreddit regular?
2. Are any personas or communities overused?
3. Do the comment threads feel scripted or natural?
4. Which quality warnings are worth acting on?

Suggest concrete edits for anything that would stand out.`, calendarID),
				},
			},
		},
	}, nil
}

func (s *Server) handlePlanNextWeekPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	campaign := req.Params.Arguments["campaign"]

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Plan next week for %s", campaign),
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: fmt.Sprintf(`Plan next week's posting calendar for campaign %s.

Use the show_history tool to see what has already been covered, then the
generate_calendar tool to produce the new week. Summarize the schedule
(day, community, author, title) and flag anything that repeats recent
topics too closely.`, campaign),
				},
			},
		},
	}, nil
}
