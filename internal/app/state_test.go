package app

import (
	"testing"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

func TestNewState(t *testing.T) {
	s := NewState()
	if s == nil {
		t.Fatal("NewState returned nil")
	}
	if !s.IsInitialLoading() {
		t.Error("new state should start in initial loading")
	}
	if s.GetSnapshot() != nil {
		t.Error("new state should have no snapshot")
	}
}

func TestState_SetLoading(t *testing.T) {
	s := NewState()
	s.SetLoading("initial", false)

	if s.AnyLoading() {
		t.Error("nothing should be loading")
	}

	s.SetLoading("data", true)
	if !s.AnyLoading() {
		t.Error("data loading should be reported")
	}

	s.SetLoading("summary", true)
	s.SetLoading("data", false)
	if !s.AnyLoading() {
		t.Error("summary loading should be reported")
	}
}

func TestState_SetData(t *testing.T) {
	s := NewState()

	snap := &models.Snapshot{
		Orders: []models.Order{
			{ID: "1", CustomerName: "An", Amount: 100000, Quantity: 1},
		},
		Source:    models.SourceSheet,
		FetchedAt: time.Now(),
	}
	daily := []models.DailyStat{{Date: "2024-07-21", OrderCount: 1, Revenue: 100000}}
	totals := models.SummaryTotals{TotalRevenue: 100000, TotalOrders: 1, AverageOrderValue: 100000}

	s.SetLastError("previous failure")
	s.SetData(snap, snap.Orders, daily, nil, totals)

	if s.GetSnapshot() != snap {
		t.Error("snapshot not stored")
	}
	if s.OrderCount() != 1 {
		t.Errorf("OrderCount = %d, want 1", s.OrderCount())
	}
	if got := s.GetTotals(); got.TotalRevenue != 100000 {
		t.Errorf("totals revenue = %v, want 100000", got.TotalRevenue)
	}
	if s.GetLastError() != "" {
		t.Error("SetData should clear the last error")
	}
	if s.GetLastUpdated().IsZero() {
		t.Error("SetData should stamp LastUpdated")
	}
}

func TestState_GettersCopy(t *testing.T) {
	s := NewState()
	daily := []models.DailyStat{{Date: "2024-07-21", OrderCount: 1, Revenue: 100000}}
	s.SetData(&models.Snapshot{}, nil, daily, nil, models.SummaryTotals{})

	got := s.GetDaily()
	got[0].Revenue = 0

	if s.GetDaily()[0].Revenue != 100000 {
		t.Error("GetDaily should return a copy")
	}
}

func TestState_Filter(t *testing.T) {
	s := NewState()
	if !s.GetFilter().IsZero() {
		t.Error("default filter should be unbounded")
	}

	start := time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local)
	s.SetFilter(analytics.DateRange{Start: &start})
	if s.GetFilter().IsZero() {
		t.Error("filter with a start bound is not zero")
	}
}

func TestState_Notifications(t *testing.T) {
	s := NewState()

	id := s.AddNotification(NotificationSuccess, "done", time.Minute)
	if id == "" {
		t.Fatal("AddNotification returned empty ID")
	}
	if len(s.GetNotifications()) != 1 {
		t.Fatalf("notifications = %d, want 1", len(s.GetNotifications()))
	}

	s.RemoveNotification(id)
	if len(s.GetNotifications()) != 0 {
		t.Error("notification was not removed")
	}
}

func TestState_NotificationExpiry(t *testing.T) {
	s := NewState()
	s.AddNotification(NotificationInfo, "fleeting", time.Nanosecond)
	time.Sleep(time.Millisecond)

	if len(s.GetNotifications()) != 0 {
		t.Error("expired notification still visible")
	}

	s.AddNotification(NotificationInfo, "sticky", 0)
	if len(s.GetNotifications()) != 1 {
		t.Error("zero-duration notifications never expire")
	}
}

func TestState_NotificationCap(t *testing.T) {
	s := NewState()
	for n := 0; n < 15; n++ {
		s.AddNotification(NotificationInfo, "n", time.Minute)
	}
	if got := len(s.GetNotifications()); got != 10 {
		t.Errorf("notifications = %d, want capped at 10", got)
	}
}

func TestState_LoadingNotification(t *testing.T) {
	s := NewState()

	s.SetLoadingNotification("Refreshing...")
	s.SetLoadingNotification("Still refreshing...")

	notifs := s.GetNotifications()
	if len(notifs) != 1 {
		t.Fatalf("loading notifications = %d, want 1", len(notifs))
	}
	if notifs[0].Message != "Still refreshing..." {
		t.Errorf("message = %q", notifs[0].Message)
	}

	s.ClearLoadingNotification()
	if len(s.GetNotifications()) != 0 {
		t.Error("loading notification not cleared")
	}
}

func TestNotificationType_String(t *testing.T) {
	cases := map[NotificationType]string{
		NotificationSuccess: "success",
		NotificationError:   "error",
		NotificationWarning: "warning",
		NotificationInfo:    "info",
	}
	for typ, want := range cases {
		if got := typ.String(); got != want {
			t.Errorf("String(%d) = %q, want %q", typ, got, want)
		}
	}
}

func TestState_Records(t *testing.T) {
	s := NewState()
	s.SetRecords([]models.RefreshRecord{{ID: 1, Source: models.SourceSheet, RowCount: 3}})

	got := s.GetRecords()
	if len(got) != 1 || got[0].RowCount != 3 {
		t.Errorf("records = %+v", got)
	}

	got[0].RowCount = 0
	if s.GetRecords()[0].RowCount != 3 {
		t.Error("GetRecords should return a copy")
	}
}
