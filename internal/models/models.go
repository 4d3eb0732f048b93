// ABOUTME: Core data models for campaigns, posts, comments, and calendars
// ABOUTME: Defines the JSON interchange shapes shared by every surface

package models

import (
	"sort"
	"strings"
	"time"
)

// EngagementType is the rhetorical shape of a post. The set is closed;
// content generation switches over it exhaustively.
type EngagementType string

const (
	EngagementQuestion       EngagementType = "question"
	EngagementRecommendation EngagementType = "recommendation-seeking"
	EngagementComparison     EngagementType = "comparison"
	EngagementDiscussion     EngagementType = "discussion"
)

// EngagementCycle is the order posts rotate through engagement types.
var EngagementCycle = [4]EngagementType{
	EngagementQuestion,
	EngagementRecommendation,
	EngagementComparison,
	EngagementDiscussion,
}

// SentimentType is the tone tag applied to a comment.
type SentimentType string

const (
	SentimentSupportive  SentimentType = "supportive"
	SentimentNeutral     SentimentType = "neutral"
	SentimentCurious     SentimentType = "curious"
	SentimentAddsContext SentimentType = "adds-context"
)

// CompanyInfo describes the company a campaign promotes.
type CompanyInfo struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Description string `json:"description"`
	ICP         string `json:"icp"`
}

// Persona is a synthetic author identity with topical affinities.
type Persona struct {
	Username            string   `json:"username"`
	Background          string   `json:"background"`
	Expertise           []string `json:"expertise"`
	WritingStyle        string   `json:"writingStyle"`
	CommunityAffinities []string `json:"communityAffinities"`
}

// HasAffinity reports whether the persona lists the community as a natural fit.
func (p Persona) HasAffinity(community string) bool {
	for _, c := range p.CommunityAffinities {
		if c == community {
			return true
		}
	}
	return false
}

// Keyword is a target search phrase with a stable id.
type Keyword struct {
	ID      string `json:"id"`
	Keyword string `json:"keyword"`
}

// CalendarInput is everything the generator needs for one week.
type CalendarInput struct {
	Company       CompanyInfo `json:"company"`
	Personas      []Persona   `json:"personas"`
	Communities   []string    `json:"communities"`
	Keywords      []Keyword   `json:"keywords"`
	PostsPerWeek  int         `json:"postsPerWeek"`
	WeekStartDate time.Time   `json:"weekStartDate"`
	WeekNumber    int         `json:"weekNumber,omitempty"`
}

// Post is one scheduled submission. Created once; the optional external
// polishing step may replace title/body but never id or metadata.
type Post struct {
	ID             string         `json:"id"`
	Community      string         `json:"community"`
	Title          string         `json:"title"`
	Body           string         `json:"body"`
	AuthorUsername string         `json:"authorUsername"`
	Timestamp      time.Time      `json:"timestamp"`
	KeywordIDs     []string       `json:"keywordIds"`
	EngagementType EngagementType `json:"engagementType"`
}

// Comment is one reply in a post's thread. ParentCommentID is nil for a
// direct reply to the post; the tree never exceeds depth 2.
type Comment struct {
	ID              string        `json:"id"`
	PostID          string        `json:"postId"`
	ParentCommentID *string       `json:"parentCommentId"`
	CommentText     string        `json:"commentText"`
	Username        string        `json:"username"`
	Timestamp       time.Time     `json:"timestamp"`
	MentionsProduct bool          `json:"mentionsProduct"`
	SentimentType   SentimentType `json:"sentimentType"`
}

// QualityMetrics scores one week's calendar.
type QualityMetrics struct {
	OverallScore          int            `json:"overallScore"`
	Naturalness           int            `json:"naturalness"`
	DiversityScore        int            `json:"diversityScore"`
	CommunityDistribution map[string]int `json:"communityDistribution"`
	PersonaDistribution   map[string]int `json:"personaDistribution"`
	KeywordCoverage       float64        `json:"keywordCoverage"`
	Warnings              []string       `json:"warnings"`
}

// Calendar is one generated week: posts, comment threads, and scores.
type Calendar struct {
	WeekNumber     int            `json:"weekNumber"`
	WeekStartDate  time.Time      `json:"weekStartDate"`
	WeekEndDate    time.Time      `json:"weekEndDate"`
	Posts          []Post         `json:"posts"`
	Comments       []Comment      `json:"comments"`
	QualityMetrics QualityMetrics `json:"qualityMetrics"`
}

// History carries cross-week state so later weeks avoid repeating topics or
// over-using a community. It is namespaced per company.
type History struct {
	CompanyName             string         `json:"companyName"`
	Calendars               []Calendar     `json:"calendars"`
	UsedTopics              []string       `json:"usedTopics"`
	UsedCommunityPostCounts map[string]int `json:"usedCommunityPostCounts"`
}

// TopicSet returns the used-topics list as a lookup set, lower-cased.
func (h History) TopicSet() map[string]bool {
	set := make(map[string]bool, len(h.UsedTopics))
	for _, t := range h.UsedTopics {
		set[strings.ToLower(t)] = true
	}
	return set
}

// SortedTopics returns a sorted copy of a topic set, for stable JSON output.
func SortedTopics(set map[string]bool) []string {
	topics := make([]string, 0, len(set))
	for t := range set {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// StartOfWeek returns the Monday at local midnight of t's week.
func StartOfWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}
