package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

type mockProvider struct {
	name      string
	failTimes int
	calls     int
	response  *Response
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.calls++
	if m.calls <= m.failTimes {
		return nil, errors.New("mock failure")
	}
	if m.response != nil {
		return m.response, nil
	}
	return &Response{
		Content:      Message{Role: "model", Parts: []Part{{Text: "ok from " + m.name}}},
		ProviderName: m.name,
		Usage:        &Usage{},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return "mock-model" }

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                  {}
func (nopLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Info(ctx context.Context, args ...any)                   {}
func (nopLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Warn(ctx context.Context, args ...any)                   {}
func (nopLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (nopLogger) Error(ctx context.Context, args ...any)                  {}
func (nopLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) DPanic(ctx context.Context, args ...any)                 {}
func (nopLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (nopLogger) Panic(ctx context.Context, args ...any)                  {}
func (nopLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                  {}
func (nopLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func TestManager_GenerateContent(t *testing.T) {
	req := &Request{Messages: []Message{{Role: "user", Parts: []Part{{Text: "hi"}}}}}

	t.Run("no providers", func(t *testing.T) {
		m := NewManager(nil, &Config{RetryAttempts: 1}, nopLogger{})
		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrNoProvidersConfigured) {
			t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
		}
	})

	t.Run("first provider succeeds", func(t *testing.T) {
		p1 := &mockProvider{name: "p1"}
		p2 := &mockProvider{name: "p2"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: true}, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "p1" {
			t.Errorf("expected p1, got %s", resp.ProviderName)
		}
		if p2.calls != 0 {
			t.Errorf("p2 should not have been called")
		}
	})

	t.Run("fallback to second provider", func(t *testing.T) {
		p1 := &mockProvider{name: "p1", failTimes: 10}
		p2 := &mockProvider{name: "p2"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: true}, nopLogger{})

		resp, err := m.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.ProviderName != "p2" {
			t.Errorf("expected fallback to p2, got %s", resp.ProviderName)
		}
	})

	t.Run("fallback disabled stops after first", func(t *testing.T) {
		p1 := &mockProvider{name: "p1", failTimes: 10}
		p2 := &mockProvider{name: "p2"}
		m := NewManager([]Provider{p1, p2}, &Config{RetryAttempts: 1, FallbackEnabled: false}, nopLogger{})

		if _, err := m.GenerateContent(context.Background(), req); !errors.Is(err, ErrAllProvidersFailed) {
			t.Errorf("expected ErrAllProvidersFailed, got %v", err)
		}
		if p2.calls != 0 {
			t.Errorf("p2 should not have been called with fallback disabled")
		}
	})

	t.Run("retry within provider", func(t *testing.T) {
		p1 := &mockProvider{name: "p1", failTimes: 2}
		m := NewManager([]Provider{p1}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, nopLogger{})

		if _, err := m.GenerateContent(context.Background(), req); err != nil {
			t.Fatalf("expected success on third attempt, got %v", err)
		}
		if p1.calls != 3 {
			t.Errorf("expected 3 calls, got %d", p1.calls)
		}
	})
}
