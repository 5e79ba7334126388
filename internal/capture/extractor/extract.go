package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"todosplus/internal/capture"
	"todosplus/pkg/llmclient"
)

// wireTask mirrors the JSON schema the prompt asks the model for.
type wireTask struct {
	Title    string   `json:"title"`
	Notes    string   `json:"notes"`
	Project  string   `json:"project"`
	Labels   []string `json:"labels"`
	Priority int      `json:"priority"`
	Due      string   `json:"due"`
}

func (e *implExtractor) Extract(ctx context.Context, req capture.ExtractRequest) ([]capture.ExtractedTask, error) {
	system, user := buildPrompt(req)

	resp, err := e.chat.ChatCompletion(ctx, &llmclient.Request{
		Messages: []llmclient.Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		Temperature: 0,
	})
	if err != nil {
		e.l.Warnf(ctx, "extractor.Extract.ChatCompletion: %v", err)
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("extractor: empty completion")
	}

	raw := stripCodeFences(resp.Choices[0].Message.Content)

	var wire []wireTask
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		e.l.Warnf(ctx, "extractor.Extract.Unmarshal: %v", err)
		return nil, fmt.Errorf("extractor: malformed JSON from model: %w", err)
	}

	tasks := make([]capture.ExtractedTask, 0, len(wire))
	for _, w := range wire {
		tasks = append(tasks, capture.ExtractedTask{
			Title:       strings.TrimSpace(w.Title),
			Notes:       w.Notes,
			ProjectHint: w.Project,
			Labels:      w.Labels,
			Priority:    w.Priority,
			DueISO:      strings.TrimSpace(w.Due),
		})
	}
	return tasks, nil
}

// stripCodeFences tolerates models that wrap the array in ```json fences
// despite the prompt.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
