// ABOUTME: Tests for content generation
// ABOUTME: Verifies template dispatch, title dedup, and keyword cleaning

package content

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/harper/mastermind/internal/models"
	"github.com/harper/mastermind/internal/planner"
)

func entryFor(engagement models.EngagementType, keyword, community string) planner.Entry {
	return planner.Entry{
		Community:      community,
		Author:         models.Persona{Username: "maya_builds"},
		Keywords:       []models.Keyword{{ID: "K1", Keyword: keyword}},
		EngagementType: engagement,
	}
}

func testInput() models.CalendarInput {
	return models.CalendarInput{Company: models.CompanyInfo{Name: "SlideForge"}}
}

func TestRenderProducesTitleAndBody(t *testing.T) {
	g := New(rand.New(rand.NewSource(1)))
	for _, engagement := range models.EngagementCycle {
		draft := g.Render(entryFor(engagement, "ai slide maker", "r/SaaS"), testInput(), nil)
		if draft.Title == "" || draft.Body == "" {
			t.Errorf("%s: empty title or body", engagement)
		}
		if draft.PrimaryKeywordID != "K1" {
			t.Errorf("%s: expected primary keyword K1, got %s", engagement, draft.PrimaryKeywordID)
		}
	}
}

func TestRenderAvoidsUsedTitles(t *testing.T) {
	g := New(rand.New(rand.NewSource(2)))
	entry := entryFor(models.EngagementQuestion, "ai slide maker", "r/SaaS")

	used := make(map[string]bool)
	for i := 0; i < 4; i++ {
		draft := g.Render(entry, testInput(), used)
		lower := strings.ToLower(draft.Title)
		if used[lower] {
			t.Fatalf("render %d repeated title %q", i, draft.Title)
		}
		used[lower] = true
	}
}

func TestRenderForcedUniqueFallback(t *testing.T) {
	g := New(rand.New(rand.NewSource(3)))
	entry := entryFor(models.EngagementQuestion, "ai slide maker", "r/SaaS")

	// Exhaust the whole question family, then render once more.
	used := make(map[string]bool)
	for i := 0; i < 4; i++ {
		draft := g.Render(entry, testInput(), used)
		used[strings.ToLower(draft.Title)] = true
	}
	draft := g.Render(entry, testInput(), used)
	if !strings.HasSuffix(draft.Title, " (new take)") {
		t.Errorf("expected forced-unique suffix, got %q", draft.Title)
	}
}

func TestCleanKeywordStripsFillerPrefix(t *testing.T) {
	cases := map[string]string{
		"best ai slide maker":   "ai slide maker",
		"how to make slides":    "make slides",
		"Top pitch deck tools":  "pitch deck tools",
		"ai slide maker":        "ai slide maker",
		"looking for deck help": "deck help",
	}
	for in, want := range cases {
		if got := cleanKeyword(in); got != want {
			t.Errorf("cleanKeyword(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExtractCoreTopicShortensLongPhrases(t *testing.T) {
	if got := extractCoreTopic("ai presentation maker for startup founders"); got != "ai presentation maker" {
		t.Errorf("expected first three words, got %q", got)
	}
	if got := extractCoreTopic("pitch decks"); got != "pitch decks" {
		t.Errorf("short phrase should pass through, got %q", got)
	}
}

func TestComparisonKeywordAlreadyVersus(t *testing.T) {
	g := New(rand.New(rand.NewSource(4)))
	entry := entryFor(models.EngagementComparison, "canva vs figma", "r/Canva")
	draft := g.Render(entry, testInput(), nil)
	if !strings.Contains(strings.ToLower(draft.Title), "canva vs figma") {
		t.Errorf("vs-keyword should be used directly, got %q", draft.Title)
	}
	if strings.Contains(draft.Title, "SlideForge") {
		t.Errorf("vs-keyword must skip competitor substitution, got %q", draft.Title)
	}
}

func TestComparisonExcludesOwnCompany(t *testing.T) {
	input := testInput()
	input.Company.Name = "Canva"
	for seed := int64(0); seed < 20; seed++ {
		g := New(rand.New(rand.NewSource(seed)))
		entry := entryFor(models.EngagementComparison, "design tool", "r/Canva")
		draft := g.Render(entry, input, nil)
		if strings.Contains(draft.Title, "Canva vs Canva") {
			t.Fatalf("company compared against itself: %q", draft.Title)
		}
	}
}

func TestComparisonUnknownCommunityFallsBackGeneric(t *testing.T) {
	g := New(rand.New(rand.NewSource(5)))
	entry := entryFor(models.EngagementComparison, "crm software", "r/smallbusiness")
	draft := g.Render(entry, testInput(), nil)
	if strings.Contains(draft.Title, " vs ") && strings.Contains(draft.Title, "SlideForge") {
		t.Errorf("unmapped community should use generic phrasing, got %q", draft.Title)
	}
	if draft.Body == "" {
		t.Error("generic comparison should still have a body")
	}
}

func TestRenderEmptyKeywordListUsesPlaceholder(t *testing.T) {
	g := New(rand.New(rand.NewSource(6)))
	entry := planner.Entry{EngagementType: models.EngagementQuestion}
	draft := g.Render(entry, testInput(), nil)
	if !strings.Contains(strings.ToLower(draft.Title), "tool") {
		t.Errorf("expected placeholder keyword, got %q", draft.Title)
	}
	if draft.PrimaryKeywordID != "" {
		t.Errorf("expected empty primary id, got %q", draft.PrimaryKeywordID)
	}
}
