// ABOUTME: HTTP API server exposing calendar generation and retrieval
// ABOUTME: Fiber application with stateless and stored-campaign generation modes

package api

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/harper/mastermind/internal/calendar"
	"github.com/harper/mastermind/internal/db"
	"github.com/harper/mastermind/internal/history"
	"github.com/harper/mastermind/internal/models"
)

// Config wraps the knobs that impact runtime behavior.
type Config struct {
	Addr string
	// Identity is recorded as created_by on rows written through the API.
	Identity string
}

// Server exposes the Fiber application.
type Server struct {
	app *fiber.App
	db  *sql.DB
	cfg Config
}

// NewServer wires handlers and middleware. The database handle may be nil,
// which disables the stored-campaign endpoints.
func NewServer(cfg Config, database *sql.DB) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          15 * time.Second,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Format: "${time} | ${status} | ${latency} | ${method} ${path}\n"}))
	app.Use(cors.New())

	srv := &Server{app: app, db: database, cfg: cfg}
	srv.registerRoutes()
	return srv
}

// App returns the underlying Fiber application, for in-process testing.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run starts listening for HTTP traffic until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.app.Shutdown()
	}()

	log.Printf("mastermind api listening on %s", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := s.app.Group("/api/v1")
	api.Post("/generate", s.handleGenerate)
	api.Get("/campaigns", s.handleListCampaigns)
	api.Get("/calendars", s.handleListCalendars)
	api.Get("/calendars/:id", s.handleGetCalendar)
}

// generateRequest accepts either a full inline input (stateless mode) or a
// stored campaign reference. Seed is optional; omitted means time-derived.
type generateRequest struct {
	Campaign  string                `json:"campaign,omitempty"`
	Input     *models.CalendarInput `json:"input,omitempty"`
	History   *models.History       `json:"history,omitempty"`
	Seed      *int64                `json:"seed,omitempty"`
	WeekStart string                `json:"weekStart,omitempty"`
}

type generateResponse struct {
	Calendar models.Calendar `json:"calendar"`
	History  models.History  `json:"history"`
}

func (s *Server) handleGenerate(c *fiber.Ctx) error {
	var req generateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	seed := time.Now().UnixNano()
	if req.Seed != nil {
		seed = *req.Seed
	}
	gen := calendar.New(seed)

	if req.Campaign != "" {
		return s.generateForCampaign(c, gen, req)
	}

	if req.Input == nil {
		return fiber.NewError(fiber.StatusBadRequest, "either campaign or input is required")
	}

	hist := history.CreateEmpty(req.Input.Company.Name)
	if req.History != nil {
		hist = *req.History
	}

	cal, next, err := gen.Generate(*req.Input, hist)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(generateResponse{Calendar: cal, History: next})
}

func (s *Server) generateForCampaign(c *fiber.Ctx, gen *calendar.Generator, req generateRequest) error {
	if s.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no database configured")
	}

	camp, err := db.GetCampaign(s.db, req.Campaign)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	weekStart := time.Now()
	if req.WeekStart != "" {
		weekStart, err = time.Parse("2006-01-02", req.WeekStart)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "weekStart must be YYYY-MM-DD")
		}
	}

	hist, err := db.GetHistory(s.db, camp.ID, camp.CompanyName)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("load history: %v", err))
	}

	cal, next, err := gen.Generate(camp.Definition.Input(weekStart, 0), hist)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	rec := db.NewCalendarRecord(camp.ID, cal, s.cfg.Identity)
	if err := db.CreateCalendar(s.db, rec); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("store calendar: %v", err))
	}
	if err := db.SaveHistory(s.db, camp.ID, next); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("store history: %v", err))
	}

	return c.JSON(fiber.Map{
		"id":       rec.ID.String(),
		"calendar": cal,
		"history":  next,
	})
}

func (s *Server) handleListCampaigns(c *fiber.Ctx) error {
	if s.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no database configured")
	}
	campaigns, err := db.ListCampaigns(s.db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list campaigns: %v", err))
	}

	type item struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		CompanyName string    `json:"companyName"`
		CreatedAt   time.Time `json:"createdAt"`
	}
	items := make([]item, 0, len(campaigns))
	for _, camp := range campaigns {
		items = append(items, item{
			ID:          camp.ID.String(),
			Name:        camp.Name,
			CompanyName: camp.CompanyName,
			CreatedAt:   camp.CreatedAt,
		})
	}
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleListCalendars(c *fiber.Ctx) error {
	if s.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no database configured")
	}
	campaignRef := c.Query("campaign")
	if campaignRef == "" {
		return fiber.NewError(fiber.StatusBadRequest, "campaign query parameter is required")
	}
	camp, err := db.GetCampaign(s.db, campaignRef)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	records, err := db.ListCalendars(s.db, camp.ID.String())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("list calendars: %v", err))
	}

	type item struct {
		ID        string    `json:"id"`
		Week      int       `json:"week"`
		WeekStart time.Time `json:"weekStart"`
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
	return c.JSON(fiber.Map{"data": items, "meta": fiber.Map{"count": len(items)}})
}

func (s *Server) handleGetCalendar(c *fiber.Ctx) error {
	if s.db == nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "no database configured")
	}
	rec, err := db.GetCalendar(s.db, c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return c.JSON(fiber.Map{"data": rec.Calendar})
}
