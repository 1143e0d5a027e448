package source

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

const sheetBody = `Thời gian,Tên khách hàng,Số lượng,Tổng tiền
21/07/2024,An,1,"1.000.000"
22/07/2024,Bình,2,"2.000.000"
`

func TestFetchSheet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sheetBody))
	}))
	defer server.Close()

	body, err := FetchSheet(server.URL)
	if err != nil {
		t.Fatalf("FetchSheet() failed: %v", err)
	}
	if body != sheetBody {
		t.Errorf("body = %q, want the served CSV", body)
	}
}

func TestFetchSheetNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := FetchSheet(server.URL)
	if err == nil {
		t.Fatal("FetchSheet() should fail on 503")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status code = %d, want 503", fetchErr.StatusCode)
	}
}

func TestFetchSheetNetworkError(t *testing.T) {
	_, err := FetchSheet("http://127.0.0.1:1/unreachable")
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
	if fetchErr.StatusCode != 0 {
		t.Errorf("transport failure should carry status 0, got %d", fetchErr.StatusCode)
	}
}

func TestRefreshReplacesSnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sheetBody))
	}))
	defer server.Close()

	s := New(Config{SheetURL: server.URL})
	if s.Snapshot() != nil {
		t.Fatal("snapshot should be nil before first refresh")
	}

	snap, err := s.Refresh()
	if err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}
	if len(snap.Orders) != 2 {
		t.Errorf("snapshot has %d orders, want 2", len(snap.Orders))
	}
	if snap.Source != models.SourceSheet {
		t.Errorf("snapshot source = %s, want sheet", snap.Source)
	}
	if s.Snapshot() != snap {
		t.Error("Snapshot() should return the replaced dataset")
	}
}

func TestRefreshNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("chỉ có,header\n"))
	}))
	defer server.Close()

	s := New(Config{SheetURL: server.URL})
	_, err := s.Refresh()
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("Refresh() error = %v, want ErrNoData", err)
	}
	if s.Snapshot() != nil {
		t.Error("failed refresh must not touch the snapshot")
	}
}

func TestRefreshFetchErrorKeepsSnapshot(t *testing.T) {
	fail := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if fail {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(sheetBody))
	}))
	defer server.Close()

	s := New(Config{SheetURL: server.URL})
	first, err := s.Refresh()
	if err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	fail = true
	if _, err := s.Refresh(); err == nil {
		t.Fatal("Refresh() should fail when endpoint is down")
	}
	if s.Snapshot() != first {
		t.Error("fetch failure must keep the previous snapshot")
	}
}

func TestRefreshEvents(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sheetBody))
	}))
	defer server.Close()

	s := New(Config{SheetURL: server.URL})
	if _, err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() failed: %v", err)
	}

	var types []EventType
	for len(s.Events()) > 0 {
		types = append(types, (<-s.eventChan).Type)
	}

	if len(types) != 2 || types[0] != EventRefreshing || types[1] != EventSnapshotReplaced {
		t.Errorf("event sequence = %v, want [refreshing, replaced]", types)
	}
}

func TestRefreshFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte(sheetBody), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(Config{SheetFile: path})
	snap, err := s.Refresh()
	if err != nil {
		t.Fatalf("Refresh() from file failed: %v", err)
	}
	if snap.Source != models.SourceFile {
		t.Errorf("snapshot source = %s, want file", snap.Source)
	}
	if len(snap.Orders) != 2 {
		t.Errorf("snapshot has %d orders, want 2", len(snap.Orders))
	}
}

func TestRefreshFromMissingFile(t *testing.T) {
	s := New(Config{SheetFile: filepath.Join(t.TempDir(), "missing.csv")})
	_, err := s.Refresh()
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("error type = %T, want *FetchError", err)
	}
}

func TestReplaceSnapshot(t *testing.T) {
	s := New(Config{})
	orders := []models.Order{{ID: "mock-1", CustomerName: "An", Quantity: 1}}

	snap := s.ReplaceSnapshot(orders, models.SourceMock)
	if s.Snapshot() != snap {
		t.Error("ReplaceSnapshot() should install the new dataset")
	}
	if snap.Source != models.SourceMock {
		t.Errorf("source = %s, want mock", snap.Source)
	}
	if snap.FetchedAt.IsZero() {
		t.Error("FetchedAt not set")
	}
}

func TestPollerStopIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sheetBody))
	}))
	defer server.Close()

	s := New(Config{SheetURL: server.URL})
	p := s.StartPolling(time.Hour)

	// Wait for the initial refresh.
	deadline := time.Now().Add(5 * time.Second)
	for s.Snapshot() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if s.Snapshot() == nil {
		t.Fatal("initial poll refresh never completed")
	}

	p.Stop()
	p.Stop() // must not panic
}

func TestWatchFileTriggersRefresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales.csv")
	if err := os.WriteFile(path, []byte("header,only\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := New(Config{SheetFile: path})
	if err := s.WatchFile(); err != nil {
		t.Fatalf("WatchFile() failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := os.WriteFile(path, []byte(sheetBody), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for s.Snapshot() == nil && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	if snap := s.Snapshot(); snap == nil || len(snap.Orders) != 2 {
		t.Fatal("file change did not trigger a re-ingest")
	}
}

func TestWatchFileRequiresConfig(t *testing.T) {
	s := New(Config{SheetURL: "https://example.com"})
	if err := s.WatchFile(); err == nil {
		t.Error("WatchFile() without SHEET_FILE should fail")
	}
}
