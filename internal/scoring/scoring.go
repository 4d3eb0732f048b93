// ABOUTME: Quality scoring for a generated week
// ABOUTME: Distribution tables, warnings, naturalness and diversity scores

package scoring

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/harper/mastermind/internal/models"
)

// Heuristic weights. Empirical, not derived from a model; tune with care
// since downstream consumers compare scores across weeks.
const (
	maxCommunityPostsPerWeek = 2
	personaImbalanceLimit    = 5
	minKeywordCoverage       = 50.0
	personaStdDevLimit       = 3.0
	minCommentGapMinutes     = 10.0
	maxCommentGapMinutes     = 60.0
)

// Score computes QualityMetrics for the week. Pure and deterministic.
func Score(posts []models.Post, comments []models.Comment, input models.CalendarInput) models.QualityMetrics {
	warnings := []string{}

	communityDist := make(map[string]int)
	for _, p := range posts {
		communityDist[p.Community]++
	}
	for community, count := range communityDist {
		if count > maxCommunityPostsPerWeek {
			warnings = append(warnings, fmt.Sprintf("High posting frequency in %s: %d posts this week", community, count))
		}
	}

	personaDist := make(map[string]int)
	for _, p := range posts {
		personaDist[p.AuthorUsername]++
	}
	for _, c := range comments {
		personaDist[c.Username]++
	}
	if imbalanced(personaDist) {
		warnings = append(warnings, "Persona usage is unbalanced - consider rotating more evenly")
	}

	coverage := keywordCoverage(posts, input.Keywords)
	if coverage < minKeywordCoverage {
		warnings = append(warnings, fmt.Sprintf("Low keyword coverage: only %.0f%% of keywords used", coverage))
	}

	if repeatedPrimaries(posts) {
		warnings = append(warnings, "Repeated primary keywords detected; coverage could improve")
	}

	naturalness := naturalnessScore(posts, comments)
	diversity := diversityScore(communityDist, personaDist, posts)
	overall := clamp(int(math.Round((float64(naturalness) + float64(diversity) + coverage/10) / 3)))

	return models.QualityMetrics{
		OverallScore:          overall,
		Naturalness:           naturalness,
		DiversityScore:        diversity,
		CommunityDistribution: communityDist,
		PersonaDistribution:   personaDist,
		KeywordCoverage:       coverage,
		Warnings:              warnings,
	}
}

func imbalanced(personaDist map[string]int) bool {
	if len(personaDist) == 0 {
		return false
	}
	max, min := 0, math.MaxInt
	for _, count := range personaDist {
		if count > max {
			max = count
		}
		if count < min {
			min = count
		}
	}
	return max-min > personaImbalanceLimit
}

func keywordCoverage(posts []models.Post, keywords []models.Keyword) float64 {
	if len(keywords) == 0 {
		return 0
	}
	used := make(map[string]bool)
	for _, p := range posts {
		for _, id := range p.KeywordIDs {
			used[id] = true
		}
	}
	return float64(len(used)) / float64(len(keywords)) * 100
}

func repeatedPrimaries(posts []models.Post) bool {
	seen := make(map[string]bool)
	for _, p := range posts {
		if len(p.KeywordIDs) == 0 || p.KeywordIDs[0] == "" {
			continue
		}
		if seen[p.KeywordIDs[0]] {
			return true
		}
		seen[p.KeywordIDs[0]] = true
	}
	return false
}

// naturalnessScore starts at 10 and subtracts for patterns a reader would
// notice: duplicate titles, mechanical comment timing, and OPs who answer
// their own posts.
func naturalnessScore(posts []models.Post, comments []models.Comment) int {
	score := 10

	titles := make(map[string]bool)
	duplicate := false
	for _, p := range posts {
		lower := strings.ToLower(p.Title)
		if titles[lower] {
			duplicate = true
		}
		titles[lower] = true
	}
	if duplicate {
		score -= 2
	}

	if gap, ok := averageFirstCommentGap(posts, comments); ok {
		if gap < minCommentGapMinutes || gap > maxCommentGapMinutes {
			score--
		}
	}

	postAuthors := make(map[string]string, len(posts))
	for _, p := range posts {
		postAuthors[p.ID] = p.AuthorUsername
	}
	for _, c := range comments {
		if c.ParentCommentID == nil && postAuthors[c.PostID] == c.Username {
			score -= 2
		}
	}

	return clamp(score)
}

// averageFirstCommentGap returns the mean minutes between each post and its
// earliest top-level comment. ok is false when no post has a thread.
func averageFirstCommentGap(posts []models.Post, comments []models.Comment) (float64, bool) {
	firstReply := make(map[string]time.Time)
	for _, c := range comments {
		if c.ParentCommentID != nil {
			continue
		}
		if t, ok := firstReply[c.PostID]; !ok || c.Timestamp.Before(t) {
			firstReply[c.PostID] = c.Timestamp
		}
	}

	var total float64
	var n int
	for _, p := range posts {
		if t, ok := firstReply[p.ID]; ok {
			total += t.Sub(p.Timestamp).Minutes()
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return total / float64(n), true
}

func diversityScore(communityDist, personaDist map[string]int, posts []models.Post) int {
	score := 10

	if float64(len(communityDist)) < float64(len(posts))*0.5 {
		score -= 2
	}

	if stdDev(personaDist) > personaStdDevLimit {
		score -= 2
	}

	engagementTypes := make(map[models.EngagementType]bool)
	for _, p := range posts {
		engagementTypes[p.EngagementType] = true
	}
	if len(engagementTypes) < 2 {
		score--
	}

	return clamp(score)
}

func stdDev(dist map[string]int) float64 {
	if len(dist) == 0 {
		return 0
	}
	var sum float64
	for _, v := range dist {
		sum += float64(v)
	}
	mean := sum / float64(len(dist))

	var squares float64
	for _, v := range dist {
		d := float64(v) - mean
		squares += d * d
	}
	return math.Sqrt(squares / float64(len(dist)))
}

func clamp(score int) int {
	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
