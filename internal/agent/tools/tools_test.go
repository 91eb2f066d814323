package tools_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"timeflow/internal/agent/tools"
	"timeflow/internal/event"
)

// mockLookup
type mockLookup struct {
	events []event.LoggedEvent
	err    error
}

func (m *mockLookup) LoggedEvents(ctx context.Context, from, to time.Time) ([]event.LoggedEvent, error) {
	return m.events, m.err
}

func TestGetLoggedEventsTool(t *testing.T) {
	start := time.Date(2024, 1, 1, 18, 49, 49, 0, time.UTC)
	end := time.Date(2024, 1, 1, 19, 9, 49, 0, time.UTC)

	t.Run("Missing Parameter Error", func(t *testing.T) {
		tool := tools.NewGetLoggedEventsTool(&mockLookup{})
		_, err := tool.Execute(context.Background(), map[string]interface{}{
			"start_time": "2024-01-01T00:00:00Z",
		})
		if err == nil {
			t.Errorf("expected error for missing end_time")
		}
	})

	t.Run("Invalid Timestamp Error", func(t *testing.T) {
		tool := tools.NewGetLoggedEventsTool(&mockLookup{})
		_, err := tool.Execute(context.Background(), map[string]interface{}{
			"start_time": "yesterday",
			"end_time":   "2024-01-01T00:00:00Z",
		})
		if err == nil {
			t.Errorf("expected error for non-ISO timestamp")
		}
	})

	t.Run("Lookup Error Propagates", func(t *testing.T) {
		tool := tools.NewGetLoggedEventsTool(&mockLookup{err: errors.New("range inverted")})
		_, err := tool.Execute(context.Background(), map[string]interface{}{
			"start_time": "2024-01-01T00:00:00Z",
			"end_time":   "2024-01-02T00:00:00Z",
		})
		if err == nil {
			t.Errorf("expected lookup error to propagate")
		}
	})

	t.Run("Echoes Exact Timestamps", func(t *testing.T) {
		tool := tools.NewGetLoggedEventsTool(&mockLookup{
			events: []event.LoggedEvent{{Title: "Eat", StartTime: start, EndTime: end}},
		})
		out, err := tool.Execute(context.Background(), map[string]interface{}{
			"start_time": "2024-01-01T00:00:00Z",
			"end_time":   "2024-01-02T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result := out.(map[string]interface{})
		events := result["events"].([]map[string]interface{})
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		if events[0]["startTime"] != "2024-01-01T18:49:49Z" {
			t.Errorf("expected verbatim start timestamp, got %v", events[0]["startTime"])
		}
		if events[0]["endTime"] != "2024-01-01T19:09:49Z" {
			t.Errorf("expected verbatim end timestamp, got %v", events[0]["endTime"])
		}
	})

	t.Run("Empty Range Returns Empty List", func(t *testing.T) {
		tool := tools.NewGetLoggedEventsTool(&mockLookup{events: []event.LoggedEvent{}})
		out, err := tool.Execute(context.Background(), map[string]interface{}{
			"start_time": "2024-01-01T00:00:00Z",
			"end_time":   "2024-01-02T00:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		result := out.(map[string]interface{})
		if events := result["events"].([]map[string]interface{}); len(events) != 0 {
			t.Errorf("expected empty events list, got %d", len(events))
		}
	})
}
