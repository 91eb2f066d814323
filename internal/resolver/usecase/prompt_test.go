package usecase

import (
	"strings"
	"testing"
	"time"
)

func TestBuildPrompt(t *testing.T) {
	ref := time.Date(2024, 1, 1, 20, 9, 49, 0, time.UTC)
	prompt := buildPrompt("I ate after lunch", ref, "UTC", []string{"work", "food"})

	t.Run("Embeds Reference Instant", func(t *testing.T) {
		if !strings.Contains(prompt, "2024-01-01T20:09:49Z") {
			t.Errorf("prompt missing reference instant")
		}
	})

	t.Run("Embeds Timezone And Input", func(t *testing.T) {
		if !strings.Contains(prompt, "the UTC timezone") {
			t.Errorf("prompt missing timezone")
		}
		if !strings.Contains(prompt, "Input: I ate after lunch") {
			t.Errorf("prompt missing user text")
		}
	})

	t.Run("Lists Allowed Tags", func(t *testing.T) {
		if !strings.Contains(prompt, "- work\n- food") {
			t.Errorf("prompt missing tag vocabulary")
		}
		if !strings.Contains(prompt, "only use tags from the list above") {
			t.Errorf("prompt missing closed-vocabulary directive")
		}
	})

	// The anchor rule: a bare duration means the activity just finished,
	// so the current instant is an end, never a start.
	t.Run("Anchor Rule Present", func(t *testing.T) {
		if !strings.Contains(prompt, "The current time is the END time of the event") {
			t.Errorf("prompt missing duration-anchor directive")
		}
		if !strings.Contains(prompt, "NEVER use the current time as a start time") {
			t.Errorf("prompt missing now-is-not-a-start directive")
		}
	})

	t.Run("Explicit Time Rule Present", func(t *testing.T) {
		if !strings.Contains(prompt, "you MUST use those times verbatim") {
			t.Errorf("prompt missing explicit-time directive")
		}
	})

	t.Run("Backward Chaining Rule Present", func(t *testing.T) {
		if !strings.Contains(prompt, "walk backward from the most recent activity") {
			t.Errorf("prompt missing backward-chaining directive")
		}
	})

	t.Run("Cross Midnight Rule Present", func(t *testing.T) {
		if !strings.Contains(prompt, "interpret the start as PM and the end as AM of the following day") {
			t.Errorf("prompt missing cross-midnight directive")
		}
	})

	t.Run("Contextual Fallback Rule Present", func(t *testing.T) {
		if !strings.Contains(prompt, "get_logged_events") {
			t.Errorf("prompt missing lookup tool directive")
		}
		if !strings.Contains(prompt, "DO NOT ask for more information") {
			t.Errorf("prompt missing best-guess fallback directive")
		}
		if !strings.Contains(prompt, "PRECISELY as they are returned") {
			t.Errorf("prompt missing exact-timestamp directive")
		}
	})

	t.Run("Empty Vocabulary Placeholder", func(t *testing.T) {
		p := buildPrompt("read a book", ref, "UTC", nil)
		if !strings.Contains(p, "(none)") {
			t.Errorf("expected placeholder for empty vocabulary")
		}
	})
}
