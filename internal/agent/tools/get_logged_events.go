package tools

import (
	"context"
	"fmt"
	"time"

	"timeflow/internal/agent"
	"timeflow/internal/event"
)

// GetLoggedEventsTool lets the extraction model look up previously logged
// events so it can anchor phrases like "after my last meeting".
type GetLoggedEventsTool struct {
	lookup event.Lookup
}

// NewGetLoggedEventsTool creates a new logged-events lookup tool.
func NewGetLoggedEventsTool(lookup event.Lookup) agent.Tool {
	return &GetLoggedEventsTool{lookup: lookup}
}

func (t *GetLoggedEventsTool) Name() string {
	return "get_logged_events"
}

func (t *GetLoggedEventsTool) Description() string {
	return "Get the events already logged in a time range. Use this to anchor phrases that refer to existing events. Returns each event's title with its exact start and end timestamps."
}

func (t *GetLoggedEventsTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"start_time": map[string]interface{}{
				"type":        "string",
				"description": "Range start, ISO 8601 timestamp",
			},
			"end_time": map[string]interface{}{
				"type":        "string",
				"description": "Range end, ISO 8601 timestamp",
			},
		},
		"required": []string{"start_time", "end_time"},
	}
}

func (t *GetLoggedEventsTool) Execute(ctx context.Context, params map[string]interface{}) (interface{}, error) {
	from, err := parseTimeParam(params, "start_time")
	if err != nil {
		return nil, err
	}
	to, err := parseTimeParam(params, "end_time")
	if err != nil {
		return nil, err
	}

	logged, err := t.lookup.LoggedEvents(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("lookup failed: %w", err)
	}

	// Timestamps go back verbatim in RFC3339 UTC so the model can reuse
	// them as exact anchors.
	events := make([]map[string]interface{}, 0, len(logged))
	for _, ev := range logged {
		events = append(events, map[string]interface{}{
			"title":     ev.Title,
			"startTime": ev.StartTime.UTC().Format(time.RFC3339),
			"endTime":   ev.EndTime.UTC().Format(time.RFC3339),
		})
	}

	return map[string]interface{}{
		"events": events,
	}, nil
}

func parseTimeParam(params map[string]interface{}, key string) (time.Time, error) {
	raw, ok := params[key].(string)
	if !ok || raw == "" {
		return time.Time{}, fmt.Errorf("%s parameter is required", key)
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be an ISO 8601 timestamp: %w", key, err)
	}
	return ts, nil
}
