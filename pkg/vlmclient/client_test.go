package vlmclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testClient(t *testing.T, endpoint string) *Client {
	t.Helper()
	return New(Config{
		Endpoint:       endpoint,
		Model:          "test-model",
		MaxTokens:      128,
		ConnectTimeout: time.Second,
		RequestTimeout: 2 * time.Second,
	})
}

func TestDescribeReturnsModelContent(t *testing.T) {
	var gotBody chatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("failed to decode request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{
			Choices: []struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			}{{Message: struct {
				Content string `json:"content"`
			}{Content: "a terminal showing a login prompt"}}},
		})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	desc, err := client.Describe(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47}, "describe this")
	if err != nil {
		t.Fatalf("Describe() error = %v", err)
	}
	if desc != "a terminal showing a login prompt" {
		t.Fatalf("Describe() = %q, want %q", desc, "a terminal showing a login prompt")
	}

	if gotBody.Model != "test-model" {
		t.Fatalf("request model = %q, want %q", gotBody.Model, "test-model")
	}
	if len(gotBody.Messages) != 1 || len(gotBody.Messages[0].Content) != 2 {
		t.Fatalf("unexpected request shape: %+v", gotBody)
	}
	if !strings.HasPrefix(gotBody.Messages[0].Content[0].ImageURL.URL, "data:image/png;base64,") {
		t.Fatalf("image_url = %q, want a data URL", gotBody.Messages[0].Content[0].ImageURL.URL)
	}
}

func TestDescribeNonOKStatusReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Describe(context.Background(), []byte("png"), "describe this")
	if err == nil {
		t.Fatal("Describe() error = nil, want an error for a 500 response")
	}
}

func TestDescribeEmptyChoicesReturnsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatResponse{})
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	_, err := client.Describe(context.Background(), []byte("png"), "describe this")
	if err == nil {
		t.Fatal("Describe() error = nil, want an error for an empty choices list")
	}
}

func TestDescribeContextCancellationPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := testClient(t, server.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Describe(ctx, []byte("png"), "describe this")
	if err == nil {
		t.Fatal("Describe() error = nil, want an error for a cancelled context")
	}
}
