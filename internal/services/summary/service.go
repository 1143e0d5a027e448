// Package summary produces a natural-language recap of the daily sales
// stats through the Gemini API. It is an optional collaborator: without an
// API key the service simply reports itself unavailable.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// Service calls the text-generation endpoint with the daily stat sequence.
type Service struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// New creates a summary service. An empty key yields an unavailable service.
func New(apiKey string) *Service {
	return &Service{
		apiKey:   apiKey,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Available reports whether an API credential is configured.
func (s *Service) Available() bool {
	return s.apiKey != ""
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Summarize sends the daily stats and returns the generated recap.
func (s *Service) Summarize(stats []models.DailyStat) (string, error) {
	if !s.Available() {
		return "", fmt.Errorf("no API key configured")
	}
	if len(stats) == 0 {
		return "", fmt.Errorf("no daily stats to summarize")
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: buildPrompt(stats)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create summary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("summary request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read summary response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("summary request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var genResp generateResponse
	if err := json.Unmarshal(body, &genResp); err != nil {
		return "", fmt.Errorf("failed to parse summary response: %w", err)
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("summary response contained no text")
	}

	return strings.TrimSpace(genResp.Candidates[0].Content.Parts[0].Text), nil
}

// buildPrompt renders the stat sequence as a compact table for the model.
func buildPrompt(stats []models.DailyStat) string {
	var b strings.Builder
	b.WriteString("You are a sales analyst. Summarize the following daily sales data ")
	b.WriteString("in 3-4 sentences: overall trend, best and worst day, anything notable. ")
	b.WriteString("Amounts are VND.\n\ndate,orders,revenue\n")
	for _, st := range stats {
		fmt.Fprintf(&b, "%s,%d,%.0f\n", st.Date, st.OrderCount, st.Revenue)
	}
	return b.String()
}
