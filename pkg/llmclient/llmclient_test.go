package llmclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"todosplus/pkg/llmclient"
)

func TestNewValidation(t *testing.T) {
	if _, err := llmclient.New(llmclient.Config{}); err == nil {
		t.Fatal("expected error for missing API key")
	}

	c, err := llmclient.New(llmclient.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != llmclient.DefaultModel {
		t.Errorf("Model() = %q, want default %q", c.Model(), llmclient.DefaultModel)
	}
}

func TestClient_ChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key"}}`))
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req llmclient.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Messages[len(req.Messages)-1].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 3, "completion_tokens": 1, "total_tokens": 4}
		}`))
	}))
	defer ts.Close()

	client, err := llmclient.New(llmclient.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resp, err := client.ChatCompletion(context.Background(), &llmclient.Request{
		Messages: []llmclient.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Message.Content != "hello" {
		t.Errorf("unexpected choices: %+v", resp.Choices)
	}
	if resp.Model != llmclient.DefaultModel {
		t.Errorf("request model not defaulted, got %q", resp.Model)
	}

	if _, err := client.ChatCompletion(context.Background(), &llmclient.Request{
		Messages: []llmclient.Message{{Role: "user", Content: "cause_500"}},
	}); err == nil {
		t.Fatal("expected error on 500")
	}
}
