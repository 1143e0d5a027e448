package info

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/app"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		SheetURL:        "https://docs.google.com/spreadsheets/d/e/test/pub?output=csv",
		DatabasePath:    "/tmp/refresh.db",
		RefreshInterval: 5 * time.Minute,
		MockDays:        30,
	}
}

func TestNew(t *testing.T) {
	m := New(app.NewState(), testConfig())
	if m == nil {
		t.Fatal("New returned nil")
	}
	if m.Init() != nil {
		t.Error("Init should return nil")
	}
}

func TestView_Config(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(100, 40)

	view := m.View()
	for _, want := range []string{
		"Configuration",
		"docs.google.com",
		"/tmp/refresh.db",
		"5m0s",
		"GEMINI_API_KEY",
		"About Sales Dashboard TUI",
		"Orders loaded",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_LocalFileSource(t *testing.T) {
	cfg := testConfig()
	cfg.SheetURL = ""
	cfg.SheetFile = "orders.csv"

	m := New(app.NewState(), cfg)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "orders.csv (local file)") {
		t.Error("view should label the local file source")
	}
}

func TestView_SummaryAvailable(t *testing.T) {
	cfg := testConfig()
	cfg.GeminiAPIKey = "key"

	m := New(app.NewState(), cfg)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "available") {
		t.Error("view should report the summary as available")
	}
}

func TestView_NilConfig(t *testing.T) {
	m := New(app.NewState(), nil)
	m.SetSize(100, 40)

	if !strings.Contains(m.View(), "Configuration not loaded") {
		t.Error("view missing nil-config message")
	}
}

func TestUpdate_Scroll(t *testing.T) {
	m := New(app.NewState(), testConfig())
	m.SetSize(80, 10)
	m.View()

	tab, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if tab == nil {
		t.Error("Update returned nil tab")
	}
}
