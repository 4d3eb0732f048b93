// ABOUTME: Cross-week history tracking
// ABOUTME: Folds calendars forward and resets when the company changes

package history

import (
	"strings"

	"github.com/harper/mastermind/internal/models"
)

// CreateEmpty returns a fresh history for the named company.
func CreateEmpty(companyName string) models.History {
	return models.History{
		CompanyName:             companyName,
		Calendars:               []models.Calendar{},
		UsedTopics:              []string{},
		UsedCommunityPostCounts: map[string]int{},
	}
}

// ForCompany returns h unchanged when it already belongs to the company,
// otherwise a fresh history. History is namespaced per company and must
// never mix campaigns.
func ForCompany(h models.History, companyName string) models.History {
	if h.CompanyName == companyName {
		return h
	}
	return CreateEmpty(companyName)
}

// Fold returns a new history with the calendar appended: its titles union
// into the used-topics set and its per-community post counts accumulate.
// The input history is not mutated.
func Fold(h models.History, cal models.Calendar) models.History {
	folded := models.History{
		CompanyName: h.CompanyName,
		Calendars:   make([]models.Calendar, 0, len(h.Calendars)+1),
	}
	folded.Calendars = append(folded.Calendars, h.Calendars...)
	folded.Calendars = append(folded.Calendars, cal)

	topics := h.TopicSet()
	for _, p := range cal.Posts {
		topics[strings.ToLower(p.Title)] = true
	}
	folded.UsedTopics = models.SortedTopics(topics)

	folded.UsedCommunityPostCounts = make(map[string]int, len(h.UsedCommunityPostCounts))
	for community, count := range h.UsedCommunityPostCounts {
		folded.UsedCommunityPostCounts[community] = count
	}
	for _, p := range cal.Posts {
		folded.UsedCommunityPostCounts[p.Community]++
	}

	return folded
}
