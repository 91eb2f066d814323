package resolver

import "time"

// ResolveInput is one user submission: free text plus the reference "now"
// the policy anchors relative times against. It is built once and never
// mutated during a resolution.
type ResolveInput struct {
	Text          string
	ReferenceTime time.Time
	Timezone      string   // IANA zone name; empty means the configured default
	AllowedTags   []string // nil means load the current tag vocabulary
}

// ProposedEvent is a single resolved activity. Instances are immutable once
// returned; they become persisted events only when the caller saves them.
type ProposedEvent struct {
	Title           string
	StartTime       time.Time
	EndTime         time.Time
	Tags            []string
	DurationMinutes int
}

// ResolveOutput carries the ordered events plus the exact prompt/response
// pair for the debug view.
type ResolveOutput struct {
	Events      []ProposedEvent
	Prompt      string
	RawResponse string
}
