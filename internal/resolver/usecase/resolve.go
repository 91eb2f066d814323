package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"timeflow/internal/resolver"
	"timeflow/pkg/llmprovider"
)

// Resolve runs one extraction call with a bounded tool loop and returns the
// normalized, chronologically ordered events. It never writes to storage.
func (uc *implUseCase) Resolve(ctx context.Context, input resolver.ResolveInput) (resolver.ResolveOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		return resolver.ResolveOutput{}, resolver.ErrEmptyInput
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = uc.timezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return resolver.ResolveOutput{}, resolver.ErrInvalidTimezone
	}

	allowedTags := input.AllowedTags
	if allowedTags == nil {
		allowedTags, err = uc.tags.Vocabulary(ctx)
		if err != nil {
			uc.l.Errorf(ctx, "resolver.usecase.Resolve: %v", err)
			return resolver.ResolveOutput{}, err
		}
	}

	ref := input.ReferenceTime
	if ref.IsZero() {
		ref = time.Now()
	}

	prompt := buildPrompt(input.Text, ref.In(loc), timezone, allowedTags)

	rawResponse, err := uc.runExtraction(ctx, prompt)
	if err != nil {
		return resolver.ResolveOutput{}, err
	}

	events, err := parseResult(rawResponse, loc)
	if err != nil {
		uc.l.Errorf(ctx, "resolver.usecase.Resolve: %v (raw=%q)", err, rawResponse)
		return resolver.ResolveOutput{}, err
	}

	normalized, err := normalize(events, allowedTags)
	if err != nil {
		return resolver.ResolveOutput{}, err
	}

	return resolver.ResolveOutput{
		Events:      normalized,
		Prompt:      prompt,
		RawResponse: rawResponse,
	}, nil
}

// runExtraction drives the tool loop: the model may consult
// get_logged_events a bounded number of times before emitting its final
// payload.
func (uc *implUseCase) runExtraction(ctx context.Context, prompt string) (string, error) {
	req := &llmprovider.Request{
		Messages: []llmprovider.Message{
			{Role: "user", Parts: []llmprovider.Part{{Text: prompt}}},
		},
		Tools:       uc.registry.ToFunctionDefinitions(),
		Temperature: 0.2,
		MaxTokens:   2048,
	}

	toolCalls := 0
	for {
		resp, err := uc.llm.GenerateContent(ctx, req)
		if err != nil {
			return "", fmt.Errorf("extraction call failed: %w", err)
		}
		if len(resp.Content.Parts) == 0 {
			return "", resolver.ErrSchemaViolation
		}

		part := resp.Content.Parts[0]
		if part.FunctionCall == nil {
			return part.Text, nil
		}

		toolCalls++
		if toolCalls > uc.maxToolCalls {
			uc.l.Warnf(ctx, "resolver.usecase.runExtraction: tool call limit (%d) exceeded", uc.maxToolCalls)
			return "", resolver.ErrToolLoopExceeded
		}

		name := part.FunctionCall.Name
		uc.l.Infof(ctx, "resolver.usecase.runExtraction: tool call %d/%d: %s", toolCalls, uc.maxToolCalls, name)

		var result interface{}
		tool, ok := uc.registry.Get(name)
		if !ok {
			result = map[string]string{"error": "tool not found"}
		} else if res, err := tool.Execute(ctx, part.FunctionCall.Args); err != nil {
			// Tool errors go back to the model rather than aborting: it is
			// instructed to fall back to a best guess.
			uc.l.Warnf(ctx, "resolver.usecase.runExtraction: tool %s failed: %v", name, err)
			result = map[string]string{"error": err.Error()}
		} else {
			result = res
		}

		req.Messages = append(req.Messages,
			llmprovider.Message{
				Role:  "model",
				Parts: []llmprovider.Part{{FunctionCall: part.FunctionCall}},
			},
			llmprovider.Message{
				Role: "function",
				Parts: []llmprovider.Part{{
					FunctionResponse: &llmprovider.FunctionResponse{
						Name:     name,
						Response: result,
					},
				}},
			},
		)
	}
}

// proposedEventPayload is the wire shape the model is asked to emit.
type proposedEventPayload struct {
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Tags      []string `json:"tags"`
	Duration  int      `json:"duration"`
}

// parseResult validates the model output against the result schema. A
// single object is accepted as a one-element sequence; anything else that
// fails to decode is a schema violation, never coerced. Zone-less
// timestamps are read in loc, the zone the prompt told the model to use.
func parseResult(raw string, loc *time.Location) ([]resolver.ProposedEvent, error) {
	cleaned := sanitizeJSONResponse(raw)

	var payloads []proposedEventPayload
	if err := json.Unmarshal([]byte(cleaned), &payloads); err != nil {
		var single proposedEventPayload
		if err := json.Unmarshal([]byte(cleaned), &single); err != nil {
			return nil, resolver.ErrSchemaViolation
		}
		payloads = []proposedEventPayload{single}
	}
	if len(payloads) == 0 {
		return nil, resolver.ErrSchemaViolation
	}

	events := make([]resolver.ProposedEvent, 0, len(payloads))
	for _, p := range payloads {
		if strings.TrimSpace(p.Title) == "" {
			return nil, resolver.ErrSchemaViolation
		}
		start, err := parseISOTime(p.StartTime, loc)
		if err != nil {
			return nil, resolver.ErrSchemaViolation
		}
		end, err := parseISOTime(p.EndTime, loc)
		if err != nil {
			return nil, resolver.ErrSchemaViolation
		}
		events = append(events, resolver.ProposedEvent{
			Title:     p.Title,
			StartTime: start,
			EndTime:   end,
			Tags:      p.Tags,
		})
	}

	return events, nil
}

func parseISOTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	if ts, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc); err == nil {
		return ts, nil
	}
	return time.Time{}, fmt.Errorf("not an ISO timestamp: %q", value)
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models often add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	matches := re.FindStringSubmatch(text)
	if len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
