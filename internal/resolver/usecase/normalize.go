package usecase

import (
	"sort"
	"time"

	"timeflow/internal/resolver"
	"timeflow/internal/tag"
)

// normalize applies the vocabulary gate to every event's tags, orders the
// sequence by start time (stable, so emission order breaks ties) and
// recomputes durations. Any zero or negative span rejects the whole
// result; coercing such events to a default length is caller policy.
func normalize(events []resolver.ProposedEvent, allowedTags []string) ([]resolver.ProposedEvent, error) {
	out := make([]resolver.ProposedEvent, len(events))
	for i, ev := range events {
		if !ev.EndTime.After(ev.StartTime) {
			return nil, resolver.ErrDegenerateSpan
		}
		ev.Tags = tag.Filter(ev.Tags, allowedTags)
		ev.DurationMinutes = int(ev.EndTime.Sub(ev.StartTime).Round(time.Minute) / time.Minute)
		out[i] = ev
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})

	return out, nil
}
