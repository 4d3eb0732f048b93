// ABOUTME: MCP tool implementations
// ABOUTME: Calendar generation and inspection exposed as MCP tools

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/mastermind/internal/calendar"
	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/identity"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "generate_calendar",
		Description: "Generate next week's posting calendar for a campaign and persist it",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"campaign":{"type":"string","description":"Campaign name or id"},"seed":{"type":"integer","description":"Seed for reproducible output"},"week_start":{"type":"string","description":"Week start date (YYYY-MM-DD)"},"agent_name":{"type":"string"}},"required":["campaign"]}`),
	}, s.handleGenerateCalendar)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_campaigns",
		Description: "List all campaigns",
		InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
	}, s.handleListCampaigns)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "list_calendars",
		Description: "List generated calendars for a campaign",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"campaign":{"type":"string"}},"required":["campaign"]}`),
	}, s.handleListCalendars)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "show_calendar",
		Description: "Show one generated calendar in full",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"calendar_id":{"type":"string"}},"required":["calendar_id"]}`),
	}, s.handleShowCalendar)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "show_history",
		Description: "Show a campaign's cross-week history",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"campaign":{"type":"string"}},"required":["campaign"]}`),
	}, s.handleShowHistory)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "reset_history",
		Description: "Clear a campaign's cross-week history",
		InputSchema: json.RawMessage(`{"type":"object","properties":{"campaign":{"type":"string"}},"required":["campaign"]}`),
	}, s.handleResetHistory)
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
		IsError: true,
	}
}

func toolText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func (s *Server) handleGenerateCalendar(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Campaign  string `json:"campaign"`
		Seed      *int64 `json:"seed"`
		WeekStart string `json:"week_start"`
		AgentName string `json:"agent_name"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	camp, err := db.GetCampaign(s.db, args.Campaign)
	if err != nil {
		return toolError(err), nil
	}

	weekStart := time.Now()
	if args.WeekStart != "" {
		weekStart, err = time.Parse("2006-01-02", args.WeekStart)
		if err != nil {
			return toolError(fmt.Errorf("week_start must be YYYY-MM-DD")), nil
		}
	}

	seed := time.Now().UnixNano()
	if args.Seed != nil {
		seed = *args.Seed
	}

	hist, err := db.GetHistory(s.db, camp.ID, camp.CompanyName)
	if err != nil {
		return toolError(err), nil
	}

	cal, next, err := calendar.New(seed).Generate(camp.Definition.Input(weekStart, 0), hist)
	if err != nil {
		return toolError(err), nil
	}

	creator := identity.GetIdentity(args.AgentName, "mcp")
	rec := db.NewCalendarRecord(camp.ID, cal, creator)
	if err := db.CreateCalendar(s.db, rec); err != nil {
		return toolError(err), nil
	}
	if err := db.SaveHistory(s.db, camp.ID, next); err != nil {
		return toolError(err), nil
	}

	return toolText(fmt.Sprintf("Generated week %d for %s: %d posts, %d comments, score %d/10 (ID: %s)",
		cal.WeekNumber, camp.Name, len(cal.Posts), len(cal.Comments),
		cal.QualityMetrics.OverallScore, rec.ID.String()[:8])), nil
}

func (s *Server) handleListCampaigns(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	campaigns, err := db.ListCampaigns(s.db)
	if err != nil {
		return toolError(err), nil
	}

	type item struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		CompanyName string `json:"company_name"`
	}
	items := make([]item, 0, len(campaigns))
	for _, c := range campaigns {
		items = append(items, item{ID: c.ID.String(), Name: c.Name, CompanyName: c.CompanyName})
	}

	result, _ := json.Marshal(items)
	return toolText(string(result)), nil
}

func (s *Server) handleListCalendars(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Campaign string `json:"campaign"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	camp, err := db.GetCampaign(s.db, args.Campaign)
	if err != nil {
		return toolError(err), nil
	}

	records, err := db.ListCalendars(s.db, camp.ID.String())
	if err != nil {
		return toolError(err), nil
	}

	type item struct {
		ID        string    `json:"id"`
		Week      int       `json:"week"`
		WeekStart time.Time `json:"week_start"`
		Posts     int       `json:"posts"`
		Score     int       `json:"score"`
	}
	items := make([]item, 0, len(records))
	for _, rec := range records {
		items = append(items, item{
			ID:        rec.ID.String(),
			Week:      rec.Calendar.WeekNumber,
			WeekStart: rec.Calendar.WeekStartDate,
			Posts:     len(rec.Calendar.Posts),
			Score:     rec.Calendar.QualityMetrics.OverallScore,
		})
	}

	result, _ := json.Marshal(items)
	return toolText(string(result)), nil
}

func (s *Server) handleShowCalendar(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		CalendarID string `json:"calendar_id"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	rec, err := db.GetCalendar(s.db, args.CalendarID)
	if err != nil {
		return toolError(err), nil
	}

	result, _ := json.Marshal(rec.Calendar)
	return toolText(string(result)), nil
}

func (s *Server) handleShowHistory(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Campaign string `json:"campaign"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	camp, err := db.GetCampaign(s.db, args.Campaign)
	if err != nil {
		return toolError(err), nil
	}

	hist, err := db.GetHistory(s.db, camp.ID, camp.CompanyName)
	if err != nil {
		return toolError(err), nil
	}

	summary := struct {
		CompanyName     string         `json:"company_name"`
		Weeks           int            `json:"weeks"`
		UsedTopics      []string       `json:"used_topics"`
		CommunityCounts map[string]int `json:"community_counts"`
	}{
		CompanyName:     hist.CompanyName,
		Weeks:           len(hist.Calendars),
		UsedTopics:      hist.UsedTopics,
		CommunityCounts: hist.UsedCommunityPostCounts,
	}
	result, _ := json.Marshal(summary)
	return toolText(string(result)), nil
}

func (s *Server) handleResetHistory(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var args struct {
		Campaign string `json:"campaign"`
	}
	json.Unmarshal(req.Params.Arguments, &args)

	camp, err := db.GetCampaign(s.db, args.Campaign)
	if err != nil {
		return toolError(err), nil
	}

	if err := db.ResetHistory(s.db, camp.ID); err != nil {
		return toolError(err), nil
	}

	return toolText(fmt.Sprintf("History reset for %s", camp.Name)), nil
}
