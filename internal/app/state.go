// Package app provides the main Bubble Tea application model and state management.
package app

import (
	"sync"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// NotificationType defines the type of notification.
type NotificationType int

const (
	// NotificationSuccess represents a success notification.
	NotificationSuccess NotificationType = iota
	// NotificationError represents an error notification.
	NotificationError
	// NotificationWarning represents a warning notification.
	NotificationWarning
	// NotificationInfo represents an informational notification.
	NotificationInfo
	// NotificationLoading represents a loading notification with spinner.
	NotificationLoading
)

const (
	// LoadingNotificationID is the fixed ID for loading notifications.
	LoadingNotificationID = "__loading__"
)

// String returns the string representation of a NotificationType.
func (n NotificationType) String() string {
	switch n {
	case NotificationSuccess:
		return "success"
	case NotificationError:
		return "error"
	case NotificationWarning:
		return "warning"
	case NotificationInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Notification represents a user-facing notification message.
type Notification struct {
	ID        string
	Type      NotificationType
	Message   string
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns true if the notification has expired.
func (n *Notification) IsExpired() bool {
	if n.Duration <= 0 {
		return false
	}
	return time.Since(n.CreatedAt) > n.Duration
}

// LoadingState tracks loading states for different resources.
type LoadingState struct {
	Initial bool
	Data    bool
	Summary bool
	History bool
}

// State is the shared application state read by all tabs. The derived views
// (grouped orders, daily stats, top customers, totals) are stored alongside
// the snapshot so tabs never recompute them during render.
type State struct {
	mu sync.RWMutex

	Snapshot    *models.Snapshot
	Grouped     []models.Order
	Daily       []models.DailyStat
	Top         []models.TopCustomer
	Totals      models.SummaryTotals
	Filter      analytics.DateRange
	Summary     string
	LastError   string
	LastRecords []models.RefreshRecord

	Loading LoadingState

	LastUpdated time.Time

	notifications   []Notification
	notificationSeq int
}

// NewState creates an empty application state.
func NewState() *State {
	return &State{
		notifications: make([]Notification, 0),
		Loading: LoadingState{
			Initial: true,
		},
	}
}

// SetLoading sets the loading state for a specific resource.
func (s *State) SetLoading(resource string, loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch resource {
	case "initial":
		s.Loading.Initial = loading
	case "data":
		s.Loading.Data = loading
	case "summary":
		s.Loading.Summary = loading
	case "history":
		s.Loading.History = loading
	}
}

// AnyLoading returns true if any resource is currently loading.
func (s *State) AnyLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Loading.Initial ||
		s.Loading.Data ||
		s.Loading.Summary ||
		s.Loading.History
}

// IsInitialLoading returns true if initial data is still loading.
func (s *State) IsInitialLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Loading.Initial
}

// SetData replaces the snapshot and all derived views in one step.
func (s *State) SetData(snap *models.Snapshot, grouped []models.Order, daily []models.DailyStat, top []models.TopCustomer, totals models.SummaryTotals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Snapshot = snap
	s.Grouped = grouped
	s.Daily = daily
	s.Top = top
	s.Totals = totals
	s.LastError = ""
	s.LastUpdated = time.Now()
	s.Loading.Initial = false
	s.Loading.Data = false
}

// GetSnapshot returns the current snapshot, nil before the first load.
func (s *State) GetSnapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Snapshot
}

// GetGrouped returns a copy of the per-customer merged orders.
func (s *State) GetGrouped() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grouped := make([]models.Order, len(s.Grouped))
	copy(grouped, s.Grouped)
	return grouped
}

// GetDaily returns a copy of the daily stats.
func (s *State) GetDaily() []models.DailyStat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	daily := make([]models.DailyStat, len(s.Daily))
	copy(daily, s.Daily)
	return daily
}

// GetTop returns a copy of the top customer ranking.
func (s *State) GetTop() []models.TopCustomer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	top := make([]models.TopCustomer, len(s.Top))
	copy(top, s.Top)
	return top
}

// GetTotals returns the headline metrics.
func (s *State) GetTotals() models.SummaryTotals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Totals
}

// OrderCount returns the number of individual orders in the snapshot.
func (s *State) OrderCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.Snapshot == nil {
		return 0
	}
	return len(s.Snapshot.Orders)
}

// SetFilter updates the active date range.
func (s *State) SetFilter(r analytics.DateRange) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Filter = r
}

// GetFilter returns the active date range.
func (s *State) GetFilter() analytics.DateRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Filter
}

// SetSummary stores the AI-generated recap text.
func (s *State) SetSummary(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Summary = text
}

// GetSummary returns the AI-generated recap text, empty if none.
func (s *State) GetSummary() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Summary
}

// SetLastError records the most recent refresh failure for display.
func (s *State) SetLastError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastError = msg
}

// GetLastError returns the most recent refresh failure, empty if none.
func (s *State) GetLastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastError
}

// SetRecords stores the refresh history for the history tab.
func (s *State) SetRecords(records []models.RefreshRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.LastRecords = records
}

// GetRecords returns a copy of the refresh history.
func (s *State) GetRecords() []models.RefreshRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]models.RefreshRecord, len(s.LastRecords))
	copy(records, s.LastRecords)
	return records
}

// AddNotification adds a new notification and returns its ID.
func (s *State) AddNotification(notifType NotificationType, message string, duration time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notificationSeq++
	id := time.Now().Format("20060102150405") + "-" + string(rune('A'+s.notificationSeq%26))

	notification := Notification{
		ID:        id,
		Type:      notifType,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  duration,
	}

	s.notifications = append(s.notifications, notification)

	// Keep only the last 10 notifications
	if len(s.notifications) > 10 {
		s.notifications = s.notifications[len(s.notifications)-10:]
	}

	return id
}

// RemoveNotification removes a notification by ID.
func (s *State) RemoveNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// ClearExpiredNotifications removes all expired notifications.
func (s *State) ClearExpiredNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}
	s.notifications = active
}

// GetNotifications returns a copy of all active notifications.
func (s *State) GetNotifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Clear expired inline when reading
	active := make([]Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if !n.IsExpired() {
			active = append(active, n)
		}
	}

	return active
}

// ClearAllNotifications removes all notifications.
func (s *State) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = make([]Notification, 0)
}

// SetLoadingNotification sets a loading notification message.
func (s *State) SetLoadingNotification(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications[i].Message = message
			return
		}
	}

	s.notifications = append(s.notifications, Notification{
		ID:        LoadingNotificationID,
		Type:      NotificationLoading,
		Message:   message,
		CreatedAt: time.Now(),
		Duration:  0,
	})
}

// ClearLoadingNotification removes the loading notification.
func (s *State) ClearLoadingNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.notifications {
		if n.ID == LoadingNotificationID {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return
		}
	}
}

// GetLastUpdated returns the last time the state was updated.
func (s *State) GetLastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastUpdated
}

// TimeSinceUpdate returns the duration since the last update.
func (s *State) TimeSinceUpdate() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.LastUpdated.IsZero() {
		return 0
	}
	return time.Since(s.LastUpdated)
}
