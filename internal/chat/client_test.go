package chat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/karafilm/go-sitecms/internal/chat"
)

func TestHTTPClientComplete(t *testing.T) {
	var captured struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	var authHeader string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		authHeader = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "پاسخ"}},
			},
		})
	}))
	defer server.Close()

	client := chat.NewHTTPClient(server.URL+"/", "secret", server.Client())
	text, err := client.Complete(context.Background(), "model-x", "system", "user question")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if text != "پاسخ" {
		t.Fatalf("text = %q", text)
	}
	if authHeader != "Bearer secret" {
		t.Fatalf("auth = %q", authHeader)
	}
	if captured.Model != "model-x" {
		t.Fatalf("model = %q", captured.Model)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" || captured.Messages[1].Content != "user question" {
		t.Fatalf("messages = %+v", captured.Messages)
	}
}

func TestHTTPClientErrorStatuses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := chat.NewHTTPClient(server.URL, "k", server.Client())
	if _, err := client.Complete(context.Background(), "m", "s", "u"); !errors.Is(err, chat.ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable, got %v", err)
	}
}

func TestHTTPClientEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := chat.NewHTTPClient(server.URL, "k", server.Client())
	if _, err := client.Complete(context.Background(), "m", "s", "u"); !errors.Is(err, chat.ErrCompletionUnavailable) {
		t.Fatalf("expected ErrCompletionUnavailable, got %v", err)
	}
}
