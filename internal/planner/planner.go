// ABOUTME: Week planning for post distribution
// ABOUTME: Picks day, hour, community, author, keywords, and engagement type

package planner

import (
	"math/rand"

	"github.com/harper/mastermind/internal/models"
)

// peakHours are the posting hours with the best engagement.
var peakHours = []int{9, 10, 11, 14, 15, 18, 19, 20}

// Entry is one planned post before any content exists.
type Entry struct {
	DayOfWeek      int // 0 = Monday
	HourOfDay      int
	Community      string
	Author         models.Persona
	Keywords       []models.Keyword
	EngagementType models.EngagementType
}

// Planner distributes a week of posts across days, communities, and authors.
// All randomness comes from the injected source so a fixed seed reproduces
// an identical plan.
type Planner struct {
	rng *rand.Rand
}

// New creates a Planner drawing from rng.
func New(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// Plan produces one Entry per post for the week. It never mutates history;
// per-week usage is tracked locally.
func (p *Planner) Plan(input models.CalendarInput, history models.History) []Entry {
	communityUsage := make(map[string]int)
	personaUsage := make(map[string]int)
	chosenThisWeek := make(map[string]bool)

	days := p.distributeDays(input.PostsPerWeek)
	entries := make([]Entry, 0, input.PostsPerWeek)

	for i := 0; i < input.PostsPerWeek; i++ {
		community := p.selectCommunity(input.Communities, communityUsage, history, chosenThisWeek, input.PostsPerWeek)
		communityUsage[community]++
		chosenThisWeek[community] = true

		author := p.selectAuthor(input.Personas, community, personaUsage)
		personaUsage[author.Username]++

		entries = append(entries, Entry{
			DayOfWeek:      days[i],
			HourOfDay:      peakHours[p.rng.Intn(len(peakHours))],
			Community:      community,
			Author:         author,
			Keywords:       p.selectKeywords(input.Keywords, i),
			EngagementType: models.EngagementCycle[i%len(models.EngagementCycle)],
		})
	}

	return entries
}

// distributeDays spreads posts round-robin over the five weekdays, then
// shuffles so the week doesn't always start heaviest on Monday.
func (p *Planner) distributeDays(postsPerWeek int) []int {
	days := make([]int, postsPerWeek)
	for i := range days {
		days[i] = i % 5
	}
	p.rng.Shuffle(len(days), func(i, j int) {
		days[i], days[j] = days[j], days[i]
	})
	return days
}

// selectCommunity scores candidates by how little they've been used, this
// week and across history. When enough distinct communities exist, repeats
// within the week are excluded outright.
func (p *Planner) selectCommunity(communities []string, usage map[string]int, history models.History, chosenThisWeek map[string]bool, postsPerWeek int) string {
	unique := make(map[string]bool, len(communities))
	for _, c := range communities {
		unique[c] = true
	}
	allowRepeats := len(unique) < postsPerWeek

	type scored struct {
		community string
		score     int
	}
	var candidates []scored
	for _, c := range communities {
		if !allowRepeats && chosenThisWeek[c] {
			continue
		}
		score := 100 - usage[c]*20 - history.UsedCommunityPostCounts[c]*5
		candidates = append(candidates, scored{community: c, score: score})
	}
	if len(candidates) == 0 {
		// Every community was already chosen this week; fall back to the
		// full pool rather than failing the plan.
		for _, c := range communities {
			score := 100 - usage[c]*20 - history.UsedCommunityPostCounts[c]*5
			candidates = append(candidates, scored{community: c, score: score})
		}
	}

	sortStableByScore(candidates, func(s scored) int { return s.score })
	top := candidates[:min(5, len(candidates))]
	return top[p.rng.Intn(len(top))].community
}

// selectAuthor favors lightly-used personas and ones with an affinity for
// the community, then picks between the top two.
func (p *Planner) selectAuthor(personas []models.Persona, community string, usage map[string]int) models.Persona {
	type scored struct {
		persona models.Persona
		score   int
	}
	candidates := make([]scored, 0, len(personas))
	for _, persona := range personas {
		score := 100 - usage[persona.Username]*15
		if persona.HasAffinity(community) {
			score += 30
		}
		candidates = append(candidates, scored{persona: persona, score: score})
	}

	sortStableByScore(candidates, func(s scored) int { return s.score })
	top := candidates[:min(2, len(candidates))]
	return top[p.rng.Intn(len(top))].persona
}

// selectKeywords round-robins the primary keyword by post index into a
// shuffled list, then attaches up to two distinct extras from an offset.
func (p *Planner) selectKeywords(keywords []models.Keyword, postIndex int) []models.Keyword {
	shuffled := make([]models.Keyword, len(keywords))
	copy(shuffled, keywords)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	primary := shuffled[postIndex%len(shuffled)]
	picked := []models.Keyword{primary}

	cursor := (postIndex*2 + 1) % len(shuffled)
	// Bounded walk: duplicate ids in the input must not hang the plan.
	for steps := 0; len(picked) < 3 && len(picked) < len(keywords) && steps < 2*len(shuffled); steps++ {
		candidate := shuffled[cursor%len(shuffled)]
		cursor++
		if candidate.ID == primary.ID || containsKeyword(picked, candidate.ID) {
			continue
		}
		picked = append(picked, candidate)
	}

	return picked
}

func containsKeyword(keywords []models.Keyword, id string) bool {
	for _, k := range keywords {
		if k.ID == id {
			return true
		}
	}
	return false
}

// sortStableByScore orders descending by score without disturbing the
// relative order of ties; tie-breaking is left to the random draw.
func sortStableByScore[T any](items []T, score func(T) int) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && score(items[j]) > score(items[j-1]); j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
