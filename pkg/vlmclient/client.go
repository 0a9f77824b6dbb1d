// Package vlmclient posts a captured image to a vision-language-model
// chat-completions endpoint and returns its text response. It is a
// pure consumer of capture output: nothing here imports pkg/vtterm,
// pkg/rasterize, or pkg/ptycap.
package vlmclient

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Config mirrors the original implementation's VlmConfig: endpoint,
// model, response size, and the two timeouts that matter for an
// interactive capture-then-describe loop.
type Config struct {
	Endpoint       string
	Model          string
	MaxTokens      int
	ConnectTimeout time.Duration
	RequestTimeout time.Duration
}

// Client posts images to one configured VLM endpoint.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// New builds a Client. A dedicated *http.Client is constructed per
// Client so its transport's dial timeout can be tied to
// cfg.ConnectTimeout independently of the overall request timeout.
func New(cfg Config) *Client {
	transport := &http.Transport{
		DialContext: (&netDialer{timeout: cfg.ConnectTimeout}).dialContext,
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.RequestTimeout,
		},
	}
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type message struct {
	Role    string    `json:"role"`
	Content []content `json:"content"`
}

type content struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Describe posts png under the configured prompt and returns the
// model's text response.
func (c *Client) Describe(ctx context.Context, png []byte, prompt string) (string, error) {
	dataURL := "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)

	reqBody := chatRequest{
		Model: c.cfg.Model,
		Messages: []message{{
			Role: "user",
			Content: []content{
				{Type: "image_url", ImageURL: &imageURL{URL: dataURL}},
				{Type: "text", Text: prompt},
			},
		}},
		MaxTokens: c.cfg.MaxTokens,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("vlmclient: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("vlmclient: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("vlmclient: request to %s failed: %w", c.cfg.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vlmclient: endpoint returned status %d", resp.StatusCode)
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("vlmclient: failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("vlmclient: response contained no choices")
	}
	return out.Choices[0].Message.Content, nil
}
