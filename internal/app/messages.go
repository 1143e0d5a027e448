package app

import (
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/db"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/services"
)

// TickMsg is sent periodically to trigger state refresh.
type TickMsg struct {
	Time time.Time
}

// StartLoadingMsg signals that a resource is starting to load.
type StartLoadingMsg struct {
	Resource string
}

// StopLoadingMsg signals that a resource has finished loading.
type StopLoadingMsg struct {
	Resource string
}

// InitialLoadCompleteMsg signals that initial data loading is complete.
type InitialLoadCompleteMsg struct{}

// DataLoadedMsg carries the snapshot and every derived view for the
// active date range.
type DataLoadedMsg struct {
	Snapshot *models.Snapshot
	Grouped  []models.Order
	Daily    []models.DailyStat
	Top      []models.TopCustomer
	Totals   models.SummaryTotals
}

// RefreshResultMsg contains the outcome of a manual refresh.
type RefreshResultMsg struct {
	Error error
}

// MockDataLoadedMsg signals that synthetic data replaced the snapshot.
type MockDataLoadedMsg struct {
	Snapshot *models.Snapshot
}

// SummaryResultMsg contains the AI summary outcome.
type SummaryResultMsg struct {
	Text  string
	Error error
}

// HistoryLoadedMsg contains the refresh log and its aggregate counts.
type HistoryLoadedMsg struct {
	Records []models.RefreshRecord
	Stats   db.RefreshStats
	Error   error
}

// RefreshMsg requests a refresh of the sheet data.
type RefreshMsg struct{}

// UseMockDataMsg requests switching to synthetic fallback data.
type UseMockDataMsg struct{}

// RequestSummaryMsg requests an AI summary for the active range.
type RequestSummaryMsg struct{}

// SetDateRangeMsg changes the active date range filter.
type SetDateRangeMsg struct {
	Range analytics.DateRange
	Label string
}

// AddNotificationMsg requests adding a new notification.
type AddNotificationMsg struct {
	Type     NotificationType
	Message  string
	Duration time.Duration
}

// RemoveNotificationMsg requests removal of a notification.
type RemoveNotificationMsg struct {
	ID string
}

// ClearNotificationsMsg requests clearing all notifications.
type ClearNotificationsMsg struct{}

// ServiceEventMsg wraps a service event from the service manager.
type ServiceEventMsg struct {
	Event services.ServiceEvent
}

// SubscriptionEventMsg is the callback wrapper for service subscription.
type SubscriptionEventMsg struct {
	Channel chan services.ServiceEvent
}

// ErrorMsg represents a general error.
type ErrorMsg struct {
	Error   error
	Context string
}

// QuitMsg requests the application to quit.
type QuitMsg struct{}

// TabSwitchMsg requests switching to a specific tab.
type TabSwitchMsg struct {
	Tab TabID
}

// ToggleHelpMsg toggles the help display.
type ToggleHelpMsg struct{}

// ClearExpiredNotificationsMsg triggers clearing of expired notifications.
type ClearExpiredNotificationsMsg struct{}
