// ABOUTME: Tests for quality scoring
// ABOUTME: Verifies warnings, coverage math, and score penalties

package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/harper/mastermind/internal/models"
)

var weekStart = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func post(id, community, author, title string, keywordIDs ...string) models.Post {
	return models.Post{
		ID:             id,
		Community:      community,
		AuthorUsername: author,
		Title:          title,
		Timestamp:      weekStart.Add(9 * time.Hour),
		KeywordIDs:     keywordIDs,
		EngagementType: models.EngagementQuestion,
	}
}

func topComment(id, postID, username string, minutesAfter int) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    postID,
		Username:  username,
		Timestamp: weekStart.Add(9*time.Hour + time.Duration(minutesAfter)*time.Minute),
	}
}

func inputWithKeywords(n int) models.CalendarInput {
	input := models.CalendarInput{}
	for i := 0; i < n; i++ {
		input.Keywords = append(input.Keywords, models.Keyword{ID: "K" + string(rune('1'+i))})
	}
	return input
}

func hasWarning(metrics models.QualityMetrics, fragment string) bool {
	for _, w := range metrics.Warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}

func TestHighPostingFrequencyWarning(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1"),
		post("P2", "r/SaaS", "tom", "b", "K2"),
		post("P3", "r/SaaS", "maya", "c", "K1"),
	}
	metrics := Score(posts, nil, inputWithKeywords(2))
	if !hasWarning(metrics, "High posting frequency in r/SaaS") {
		t.Errorf("expected high posting frequency warning, got %v", metrics.Warnings)
	}
	if metrics.CommunityDistribution["r/SaaS"] != 3 {
		t.Errorf("expected distribution 3, got %d", metrics.CommunityDistribution["r/SaaS"])
	}
}

func TestKeywordCoverageExact(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1"),
		post("P2", "r/startups", "tom", "b", "K2"),
	}
	metrics := Score(posts, nil, inputWithKeywords(2))
	if metrics.KeywordCoverage != 100 {
		t.Errorf("expected 100%% coverage, got %v", metrics.KeywordCoverage)
	}
	if hasWarning(metrics, "Low keyword coverage") {
		t.Error("full coverage should not warn")
	}
}

func TestLowKeywordCoverageWarning(t *testing.T) {
	posts := []models.Post{post("P1", "r/SaaS", "maya", "a", "K1")}
	metrics := Score(posts, nil, inputWithKeywords(4))
	if metrics.KeywordCoverage != 25 {
		t.Errorf("expected 25%% coverage, got %v", metrics.KeywordCoverage)
	}
	if !hasWarning(metrics, "Low keyword coverage") {
		t.Errorf("expected low coverage warning, got %v", metrics.Warnings)
	}
}

func TestRepeatedPrimaryKeywordWarning(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1", "K2"),
		post("P2", "r/startups", "tom", "b", "K1"),
	}
	metrics := Score(posts, nil, inputWithKeywords(2))
	if !hasWarning(metrics, "Repeated primary keywords") {
		t.Errorf("expected repeated primary warning, got %v", metrics.Warnings)
	}
}

func TestPersonaImbalanceWarning(t *testing.T) {
	posts := []models.Post{post("P1", "r/SaaS", "maya", "a", "K1")}
	var comments []models.Comment
	for i := 0; i < 7; i++ {
		comments = append(comments, topComment("C"+string(rune('1'+i)), "P1", "maya", 20+i))
	}
	comments = append(comments, topComment("C9", "P1", "tom", 30))
	metrics := Score(posts, comments, inputWithKeywords(1))
	if !hasWarning(metrics, "unbalanced") {
		t.Errorf("expected persona imbalance warning, got %v", metrics.Warnings)
	}
}

func TestNaturalnessDuplicateTitlePenalty(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "Best slide tool?", "K1"),
		post("P2", "r/startups", "tom", "best slide tool?", "K2"),
	}
	metrics := Score(posts, nil, inputWithKeywords(2))
	if metrics.Naturalness != 8 {
		t.Errorf("expected naturalness 8 after duplicate-title penalty, got %d", metrics.Naturalness)
	}
}

func TestNaturalnessSelfReplyPenalty(t *testing.T) {
	posts := []models.Post{post("P1", "r/SaaS", "maya", "a", "K1")}
	comments := []models.Comment{topComment("C1", "P1", "maya", 20)}
	metrics := Score(posts, comments, inputWithKeywords(1))
	if metrics.Naturalness != 8 {
		t.Errorf("expected naturalness 8 after self-reply penalty, got %d", metrics.Naturalness)
	}
}

func TestNaturalnessGapPenalty(t *testing.T) {
	posts := []models.Post{post("P1", "r/SaaS", "maya", "a", "K1")}
	// First reply after five minutes: outside the [10,60] window.
	comments := []models.Comment{topComment("C1", "P1", "tom", 5)}
	metrics := Score(posts, comments, inputWithKeywords(1))
	if metrics.Naturalness != 9 {
		t.Errorf("expected naturalness 9 after timing penalty, got %d", metrics.Naturalness)
	}

	// A 30-minute gap is natural.
	comments = []models.Comment{topComment("C1", "P1", "tom", 30)}
	metrics = Score(posts, comments, inputWithKeywords(1))
	if metrics.Naturalness != 10 {
		t.Errorf("expected naturalness 10 for a natural gap, got %d", metrics.Naturalness)
	}
}

func TestNaturalnessClampedAtOne(t *testing.T) {
	// Five self-replies push the intermediate score to zero; the final
	// clamp floors it at 1.
	var posts []models.Post
	var comments []models.Comment
	for i := 0; i < 5; i++ {
		id := "P" + string(rune('1'+i))
		posts = append(posts, post(id, "r/SaaS", "maya", "title "+id, "K1"))
		comments = append(comments, topComment("C"+string(rune('1'+i)), id, "maya", 20))
	}
	metrics := Score(posts, comments, inputWithKeywords(1))
	if metrics.Naturalness != 1 {
		t.Errorf("expected naturalness clamped to 1, got %d", metrics.Naturalness)
	}
}

func TestDiversityCommunityPenalty(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1"),
		post("P2", "r/SaaS", "tom", "b", "K2"),
		post("P3", "r/SaaS", "maya", "c", "K1"),
		post("P4", "r/SaaS", "tom", "d", "K2"),
	}
	metrics := Score(posts, nil, inputWithKeywords(2))
	if metrics.DiversityScore > 8 {
		t.Errorf("expected community-concentration penalty, got %d", metrics.DiversityScore)
	}
}

func TestDiversityEngagementTypePenalty(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1"),
		post("P2", "r/startups", "tom", "b", "K2"),
	}
	// Both posts share the question type from the helper.
	metrics := Score(posts, nil, inputWithKeywords(2))
	if metrics.DiversityScore != 9 {
		t.Errorf("expected diversity 9 with one engagement type, got %d", metrics.DiversityScore)
	}
}

func TestOverallScoreFormula(t *testing.T) {
	posts := []models.Post{
		post("P1", "r/SaaS", "maya", "a", "K1"),
		post("P2", "r/startups", "tom", "b", "K2"),
	}
	posts[1].EngagementType = models.EngagementDiscussion
	metrics := Score(posts, nil, inputWithKeywords(2))
	// naturalness 10, diversity 10, coverage 100 => round((10+10+10)/3) = 10
	if metrics.OverallScore != 10 {
		t.Errorf("expected overall 10, got %d", metrics.OverallScore)
	}
}

func TestScoreDeterministic(t *testing.T) {
	posts := []models.Post{post("P1", "r/SaaS", "maya", "a", "K1")}
	comments := []models.Comment{topComment("C1", "P1", "tom", 25)}
	a := Score(posts, comments, inputWithKeywords(2))
	b := Score(posts, comments, inputWithKeywords(2))
	if a.OverallScore != b.OverallScore || a.Naturalness != b.Naturalness || a.DiversityScore != b.DiversityScore {
		t.Error("scoring must be deterministic for identical inputs")
	}
}
