package usecase

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"timeflow/internal/resolver"
)

func TestNormalize(t *testing.T) {
	base := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	allowed := []string{"work", "food"}

	t.Run("Drops Tags Outside Vocabulary", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Build AI project", StartTime: base, EndTime: base.Add(time.Hour), Tags: []string{"work", "ai", "hustle"}},
		}
		out, err := normalize(events, allowed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(out[0].Tags, []string{"work"}) {
			t.Errorf("expected tags filtered to vocabulary, got %v", out[0].Tags)
		}
	})

	t.Run("Sorts By Start Time Stable", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Later", StartTime: base.Add(time.Hour), EndTime: base.Add(2 * time.Hour)},
			{Title: "First A", StartTime: base, EndTime: base.Add(30 * time.Minute)},
			{Title: "First B", StartTime: base, EndTime: base.Add(45 * time.Minute)},
		}
		out, err := normalize(events, allowed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got := []string{out[0].Title, out[1].Title, out[2].Title}
		want := []string{"First A", "First B", "Later"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected stable chronological order %v, got %v", want, got)
		}
		for i := 1; i < len(out); i++ {
			if out[i].StartTime.Before(out[i-1].StartTime) {
				t.Errorf("start times not non-decreasing at index %d", i)
			}
		}
	})

	t.Run("Recomputes Duration", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Eat", StartTime: base, EndTime: base.Add(20 * time.Minute), DurationMinutes: 999},
		}
		out, err := normalize(events, allowed)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].DurationMinutes != 20 {
			t.Errorf("expected 20 minute duration, got %d", out[0].DurationMinutes)
		}
	})

	t.Run("Rejects Zero Length Span", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Blink", StartTime: base, EndTime: base},
		}
		if _, err := normalize(events, allowed); !errors.Is(err, resolver.ErrDegenerateSpan) {
			t.Errorf("expected ErrDegenerateSpan, got %v", err)
		}
	})

	t.Run("Rejects Inverted Span", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Rewind", StartTime: base.Add(time.Hour), EndTime: base},
		}
		if _, err := normalize(events, allowed); !errors.Is(err, resolver.ErrDegenerateSpan) {
			t.Errorf("expected ErrDegenerateSpan, got %v", err)
		}
	})

	t.Run("One Bad Span Rejects Whole Result", func(t *testing.T) {
		events := []resolver.ProposedEvent{
			{Title: "Fine", StartTime: base, EndTime: base.Add(time.Hour)},
			{Title: "Broken", StartTime: base, EndTime: base},
		}
		if _, err := normalize(events, allowed); !errors.Is(err, resolver.ErrDegenerateSpan) {
			t.Errorf("expected ErrDegenerateSpan for whole result, got %v", err)
		}
	})
}

func TestSanitizeJSONResponse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Plain JSON", `[{"title":"Eat"}]`, `[{"title":"Eat"}]`},
		{"Fenced JSON", "```json\n[{\"title\":\"Eat\"}]\n```", `[{"title":"Eat"}]`},
		{"Fenced No Language", "```\n{\"title\":\"Eat\"}\n```", `{"title":"Eat"}`},
		{"Surrounding Prose", "Here you go: [{\"title\":\"Eat\"}] hope that helps", `[{"title":"Eat"}]`},
		{"No JSON At All", "sorry, cannot help", "sorry, cannot help"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sanitizeJSONResponse(tc.in); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}
