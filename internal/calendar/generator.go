// ABOUTME: Calendar generation orchestrator
// ABOUTME: Validates input and composes planner, content, threads, scoring

package calendar

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/harper/mastermind/internal/content"
	"github.com/harper/mastermind/internal/history"
	"github.com/harper/mastermind/internal/models"
	"github.com/harper/mastermind/internal/planner"
	"github.com/harper/mastermind/internal/scoring"
	"github.com/harper/mastermind/internal/thread"
)

// Generator produces one calendar per call. All nondeterminism flows from
// the seeded source, so the same (seed, input, history) reproduces an
// identical calendar.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator seeded with seed.
func New(seed int64) *Generator {
	return NewWithRand(rand.New(rand.NewSource(seed)))
}

// NewWithRand creates a Generator drawing from an existing source.
func NewWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate plans, renders, and scores one week, then folds it into history.
// The input history is never mutated; the returned history is the value to
// persist for next week. A history belonging to a different company is
// discarded first.
func (g *Generator) Generate(input models.CalendarInput, hist models.History) (models.Calendar, models.History, error) {
	if err := validate(input); err != nil {
		return models.Calendar{}, hist, err
	}
	input = normalize(input)

	hist = history.ForCompany(hist, input.Company.Name)
	if hist.CompanyName == "" {
		hist.CompanyName = input.Company.Name
	}

	weekStart := models.StartOfWeek(input.WeekStartDate)
	weekNumber := input.WeekNumber
	if weekNumber < 1 {
		weekNumber = len(hist.Calendars) + 1
	}

	plans := planner.New(g.rng).Plan(input, hist)
	posts := g.renderPosts(plans, input, hist, weekStart)
	comments := g.buildThreads(posts, input)
	metrics := scoring.Score(posts, comments, input)

	cal := models.Calendar{
		WeekNumber:     weekNumber,
		WeekStartDate:  weekStart,
		WeekEndDate:    weekStart.AddDate(0, 0, 6),
		Posts:          posts,
		Comments:       comments,
		QualityMetrics: metrics,
	}

	return cal, history.Fold(hist, cal), nil
}

// renderPosts turns plan entries into concrete posts, jittering timestamps
// and threading the used-title set through each render.
func (g *Generator) renderPosts(plans []planner.Entry, input models.CalendarInput, hist models.History, weekStart time.Time) []models.Post {
	gen := content.New(g.rng)
	usedTitles := hist.TopicSet()

	posts := make([]models.Post, 0, len(plans))
	for i, plan := range plans {
		base := weekStart.AddDate(0, 0, plan.DayOfWeek).Add(time.Duration(plan.HourOfDay) * time.Hour)
		jitter := time.Duration(g.intInRange(-15, 25)) * time.Minute

		draft := gen.Render(plan, input, usedTitles)
		usedTitles[strings.ToLower(draft.Title)] = true

		keywordIDs := make([]string, len(plan.Keywords))
		for j, k := range plan.Keywords {
			keywordIDs[j] = k.ID
		}

		posts = append(posts, models.Post{
			ID:             fmt.Sprintf("P%d", i+1),
			Community:      plan.Community,
			Title:          draft.Title,
			Body:           draft.Body,
			AuthorUsername: plan.Author.Username,
			Timestamp:      base.Add(jitter),
			KeywordIDs:     keywordIDs,
			EngagementType: plan.EngagementType,
		})
	}
	return posts
}

func (g *Generator) buildThreads(posts []models.Post, input models.CalendarInput) []models.Comment {
	gen := thread.New(g.rng)
	comments := []models.Comment{}
	nextID := 1
	for _, post := range posts {
		threadComments := gen.BuildThread(post, input, nextID)
		comments = append(comments, threadComments...)
		nextID += len(threadComments)
	}
	return comments
}

// intInRange draws uniformly from [min, max] inclusive.
func (g *Generator) intInRange(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// normalize drops blank communities and personas without usernames so the
// selection loops never see them.
func normalize(input models.CalendarInput) models.CalendarInput {
	communities := make([]string, 0, len(input.Communities))
	for _, c := range input.Communities {
		if strings.TrimSpace(c) != "" {
			communities = append(communities, c)
		}
	}
	personas := make([]models.Persona, 0, len(input.Personas))
	for _, p := range input.Personas {
		if strings.TrimSpace(p.Username) != "" {
			personas = append(personas, p)
		}
	}
	input.Communities = communities
	input.Personas = personas
	return input
}

func validate(input models.CalendarInput) error {
	if input.PostsPerWeek < 1 {
		return errors.New("postsPerWeek must be at least 1")
	}
	if len(input.Personas) < 2 {
		return errors.New("at least 2 personas required")
	}
	usable := 0
	for _, p := range input.Personas {
		if strings.TrimSpace(p.Username) != "" {
			usable++
		}
	}
	if usable < 2 {
		return errors.New("at least 2 personas with usernames required")
	}
	communities := 0
	for _, c := range input.Communities {
		if strings.TrimSpace(c) != "" {
			communities++
		}
	}
	if communities == 0 {
		return errors.New("at least one community required")
	}
	if len(input.Keywords) == 0 {
		return errors.New("at least one keyword required")
	}
	return nil
}
