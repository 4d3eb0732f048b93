// ABOUTME: Tests for core model helpers
// ABOUTME: Verifies week normalization, affinity lookup, and topic sets

package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStartOfWeekIsMonday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
	}{
		{"wednesday", time.Date(2025, 3, 12, 17, 30, 0, 0, time.UTC)},
		{"monday", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"sunday", time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)},
	}
	want := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, tc := range cases {
		got := StartOfWeek(tc.in)
		if !got.Equal(want) {
			t.Errorf("%s: expected %v, got %v", tc.name, want, got)
		}
		if got.Weekday() != time.Monday {
			t.Errorf("%s: expected Monday, got %v", tc.name, got.Weekday())
		}
	}
}

func TestHasAffinity(t *testing.T) {
	p := Persona{Username: "sam", CommunityAffinities: []string{"r/SaaS", "r/startups"}}
	if !p.HasAffinity("r/SaaS") {
		t.Error("expected affinity for r/SaaS")
	}
	if p.HasAffinity("r/golang") {
		t.Error("did not expect affinity for r/golang")
	}
}

func TestTopicSetLowercases(t *testing.T) {
	h := History{UsedTopics: []string{"Best slide tool?", "best slide tool?"}}
	set := h.TopicSet()
	if len(set) != 1 {
		t.Fatalf("expected 1 distinct topic, got %d", len(set))
	}
	if !set["best slide tool?"] {
		t.Error("expected lower-cased topic in set")
	}
}

func TestSortedTopicsStable(t *testing.T) {
	set := map[string]bool{"b": true, "a": true, "c": true}
	got := SortedTopics(set)
	want := []string{"a", "b", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestCommentJSONRoundTrip(t *testing.T) {
	parent := "C1"
	c := Comment{
		ID:              "C2",
		PostID:          "P1",
		ParentCommentID: &parent,
		CommentText:     "+1",
		Username:        "sam",
		Timestamp:       time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC),
		MentionsProduct: true,
		SentimentType:   SentimentSupportive,
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Comment
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ParentCommentID == nil || *got.ParentCommentID != "C1" {
		t.Error("parentCommentId did not survive the round trip")
	}
	if !got.Timestamp.Equal(c.Timestamp) {
		t.Errorf("timestamp changed: %v != %v", got.Timestamp, c.Timestamp)
	}
}
