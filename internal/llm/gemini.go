// Package llm produces the optional legal narrative through the
// Gemini generateContent API. The narrative never influences the
// rule-based score; a missing key or a failed call degrades to a
// fixed placeholder upstream.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNotConfigured is returned when no API key was resolved at startup.
var ErrNotConfigured = errors.New("gemini api key not configured")

// Truncation applied to the original contract when comparing against
// an amendment, measured in runes to keep accented text intact.
const baselineMaxRunes = 3000

type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 180 * time.Second,
		},
	}
}

// Configured reports whether a key was resolved. Callers decide what
// a missing key means; the client itself only refuses to call out.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// Analyze returns the full contract narrative for the given text.
func (c *Client) Analyze(ctx context.Context, text string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(contractPrompt, text))
}

// AnalyzeAmendment reviews an amendment, optionally against the
// original contract it modifies.
func (c *Client) AnalyzeAmendment(ctx context.Context, amendment, original string) (string, error) {
	if original == "" {
		return c.generate(ctx, fmt.Sprintf(amendmentPrompt, amendment))
	}
	return c.generate(ctx, fmt.Sprintf(amendmentWithBaselinePrompt, truncateRunes(original, baselineMaxRunes), amendment))
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	body, _ := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	})

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("Gemini error: %s", string(b))
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini error: empty response")
	}
	return result.Candidates[0].Content.Parts[0].Text, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
