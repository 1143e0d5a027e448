package summary

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

var testStats = []models.DailyStat{
	{Date: "2024-07-20", OrderCount: 3, Revenue: 1500000},
	{Date: "2024-07-21", OrderCount: 1, Revenue: 500000},
}

func TestAvailable(t *testing.T) {
	if New("").Available() {
		t.Error("service without key should be unavailable")
	}
	if !New("key").Available() {
		t.Error("service with key should be available")
	}
}

func TestSummarize(t *testing.T) {
	var gotBody generateRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("api key header = %q", r.Header.Get("x-goog-api-key"))
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": "Doanh thu giảm nhẹ.\n"}}}},
			},
		})
	}))
	defer server.Close()

	s := New("test-key")
	s.endpoint = server.URL

	got, err := s.Summarize(testStats)
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if got != "Doanh thu giảm nhẹ." {
		t.Errorf("summary = %q", got)
	}

	prompt := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "2024-07-20,3,1500000") {
		t.Errorf("prompt missing stat row:\n%s", prompt)
	}
}

func TestSummarizeErrors(t *testing.T) {
	if _, err := New("").Summarize(testStats); err == nil {
		t.Error("Summarize() without key should fail")
	}
	if _, err := New("key").Summarize(nil); err == nil {
		t.Error("Summarize() without stats should fail")
	}
}

func TestSummarizeHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":"quota"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	s := New("key")
	s.endpoint = server.URL

	if _, err := s.Summarize(testStats); err == nil || !strings.Contains(err.Error(), "429") {
		t.Errorf("Summarize() error = %v, want status 429 mention", err)
	}
}

func TestSummarizeEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	s := New("key")
	s.endpoint = server.URL

	if _, err := s.Summarize(testStats); err == nil {
		t.Error("Summarize() with empty candidates should fail")
	}
}
