package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"wishlink/internal/pkg/config"
	"wishlink/internal/pkg/errs"
)

// Client calls the native generateContent endpoint. It holds no state beyond
// configuration and is safe for concurrent use.
type Client struct {
	cfg        config.GeminiConfig
	httpClient *http.Client
}

func NewClient(cfg config.GeminiConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

const generationTemperature = 0.7

// Generate sends a single-turn user prompt and returns the model's text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errs.ErrAPIKeyMissing
	}

	reqBody := Request{
		Contents: []Content{
			{Role: "user", Parts: []Part{{Text: prompt}}},
		},
		GenerationConfig: &GenerationConfig{
			Temperature: generationTemperature,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", errs.Wrap(err, "failed to marshal generation request")
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.cfg.BaseURL, c.cfg.Model, c.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", errs.Wrap(err, "failed to create generation request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "failed to call generation API")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Wrap(err, "failed to read generation response")
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return "", errs.New(fmt.Sprintf("generation API error (%d): %s", resp.StatusCode, apiErr.Error.Message))
		}
		return "", errs.New(fmt.Sprintf("generation API returned status %d", resp.StatusCode))
	}

	var genResp Response
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", errs.Wrap(err, "failed to decode generation response")
	}

	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", errs.New("generation response contained no candidates")
	}
	return genResp.Candidates[0].Content.Parts[0].Text, nil
}
