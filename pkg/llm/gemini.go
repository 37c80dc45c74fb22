package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// All harm categories are relaxed to BLOCK_NONE. Financial and political
// headlines trip the default thresholds often enough that the service would
// otherwise return empty candidates for legitimate market news.
var geminiSafetySettings = []geminiSafetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func NewGeminiClient(apiKey string, tier Tier) *GeminiClient {
	model := "gemini-2.5-flash"
	if tier == TierPro {
		model = "gemini-2.5-pro"
	}

	return &GeminiClient{
		apiKey:     apiKey,
		model:      model,
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *GeminiClient) ModelName() string {
	return c.model
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents:       []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		SafetySettings: geminiSafetySettings,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("gemini encode: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini call: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini call: unexpected status %d", resp.StatusCode)
	}

	var raw geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", fmt.Errorf("gemini decode: %w", err)
	}

	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}

	return raw.Candidates[0].Content.Parts[0].Text, nil
}

type geminiRequest struct {
	Contents       []geminiContent       `json:"contents"`
	SafetySettings []geminiSafetySetting `json:"safetySettings"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiSafetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}
