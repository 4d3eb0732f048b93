// ABOUTME: Template-based post content generation
// ABOUTME: Renders a plan entry into a title and body, avoiding reused titles

package content

import (
	"math/rand"
	"strings"

	"github.com/harper/mastermind/internal/models"
	"github.com/harper/mastermind/internal/planner"
)

// Draft is the rendered content for one planned post.
type Draft struct {
	Title            string
	Body             string
	PrimaryKeywordID string
}

// Generator renders plan entries through engagement-type template families.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Render produces a title and body for the entry. usedTitles holds
// lower-cased titles already taken this week or in prior weeks; the caller
// must add the returned title (lower-cased) before rendering the next post.
func (g *Generator) Render(entry planner.Entry, input models.CalendarInput, usedTitles map[string]bool) Draft {
	var primaryID string
	if len(entry.Keywords) > 0 {
		primaryID = entry.Keywords[0].ID
	}

	candidates := templatesFor(entry, input.Company)
	picked := g.pickTemplate(candidates, usedTitles)
	return Draft{Title: picked.title, Body: picked.body, PrimaryKeywordID: primaryID}
}

type template struct {
	title string
	body  string
}

// templatesFor dispatches on the engagement type. The switch is exhaustive
// over the closed type set; each case carries its own template table.
func templatesFor(entry planner.Entry, company models.CompanyInfo) []template {
	raw := "tool"
	if len(entry.Keywords) > 0 && entry.Keywords[0].Keyword != "" {
		raw = entry.Keywords[0].Keyword
	}

	switch entry.EngagementType {
	case models.EngagementQuestion:
		return questionTemplates(cleanKeyword(raw))
	case models.EngagementRecommendation:
		keyword := cleanKeyword(raw)
		return recommendationTemplates(keyword, extractCoreTopic(keyword))
	case models.EngagementComparison:
		return comparisonTemplates(raw, entry.Community, company)
	case models.EngagementDiscussion:
		return discussionTemplates(extractCoreTopic(cleanKeyword(raw)))
	default:
		return questionTemplates(cleanKeyword(raw))
	}
}

// pickTemplate shuffles the candidates and returns the first whose title
// isn't taken. If every candidate collides, the first shuffled one is
// returned with a forced-unique suffix.
func (g *Generator) pickTemplate(templates []template, usedTitles map[string]bool) template {
	shuffled := make([]template, len(templates))
	copy(shuffled, templates)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(usedTitles) == 0 {
		return shuffled[0]
	}
	for _, tpl := range shuffled {
		if !usedTitles[strings.ToLower(tpl.title)] {
			return tpl
		}
	}

	fallback := shuffled[0]
	fallback.title += " (new take)"
	return fallback
}

// fillerPrefixes are common keyword prefixes that would read doubled inside
// the templates ("Best best slide maker?").
var fillerPrefixes = []string{
	"best ",
	"how to ",
	"what is ",
	"what's ",
	"top ",
	"need help with ",
	"looking for ",
}

func cleanKeyword(keyword string) string {
	cleaned := strings.ToLower(keyword)
	for _, prefix := range fillerPrefixes {
		if strings.HasPrefix(cleaned, prefix) {
			cleaned = cleaned[len(prefix):]
			break
		}
	}
	return cleaned
}

// extractCoreTopic shortens a long keyword phrase to its first three words
// so titles stay readable.
func extractCoreTopic(keyword string) string {
	words := strings.Fields(keyword)
	if len(words) <= 3 {
		return keyword
	}
	return strings.Join(words[:3], " ")
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
