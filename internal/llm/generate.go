package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// DefaultBaseURL points at a local Ollama-style inference service.
const DefaultBaseURL = "http://localhost:11434"

// GenerateClient implements Provider against the native /api/generate
// endpoint of an Ollama-style server.
type GenerateClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
	NumPredict  int     `json:"num_predict"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate POSTs a non-streaming completion request and returns the raw
// response text, which may contain prose around the model's JSON.
func (c *GenerateClient) Generate(ctx context.Context, model, prompt string) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	body, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: samplingTemperature,
			TopP:        samplingTopP,
			NumPredict:  samplingMaxTokens,
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	url := strings.TrimRight(base, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("generate status: %d", resp.StatusCode)
	}
	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	return strings.TrimSpace(gr.Response), nil
}
