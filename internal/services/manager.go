// Package services provides service orchestration for the TUI.
package services

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/analytics"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/config"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/db"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/logger"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/services/mockdata"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/services/source"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/services/summary"
)

type (
	// SnapshotReplacedEvent is emitted when a refresh replaced the dataset.
	SnapshotReplacedEvent struct {
		Snapshot *models.Snapshot
	}

	// NoDataEvent is emitted when a fetch succeeded but yielded zero rows.
	NoDataEvent struct {
		Record models.RefreshRecord
	}

	// FetchErrorEvent is emitted when a refresh failed at the fetch level.
	FetchErrorEvent struct {
		Record models.RefreshRecord
		Error  error
	}

	// RefreshingEvent is emitted when a refresh starts.
	RefreshingEvent struct{}
)

// ServiceEvent is the interface implemented by all service events.
type ServiceEvent interface {
	isServiceEvent()
}

func (SnapshotReplacedEvent) isServiceEvent() {}
func (NoDataEvent) isServiceEvent()           {}
func (FetchErrorEvent) isServiceEvent()       {}
func (RefreshingEvent) isServiceEvent()       {}

// Manager orchestrates the data services and event routing.
type Manager struct {
	mu          sync.RWMutex
	cfg         *config.Config
	source      *source.Service
	summary     *summary.Service
	database    *db.DB
	poller      *source.Poller
	eventChan   chan ServiceEvent
	stopChan    chan struct{}
	subscribers []chan<- ServiceEvent

	lastFailed   bool
	lastRowCount int
}

// NewManager creates a new service manager and starts event routing. Call
// Start to begin periodic refreshing.
func NewManager(cfg *config.Config) (*Manager, error) {
	m := &Manager{
		cfg:       cfg,
		eventChan: make(chan ServiceEvent, 100),
		stopChan:  make(chan struct{}),
	}

	var err error
	m.database, err = db.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if cfg.LogRetention > 0 {
		if n, err := m.database.PruneRefreshLog(cfg.LogRetention); err != nil {
			logger.Warn("refresh log prune failed", "error", err)
		} else if n > 0 {
			logger.Info("pruned refresh log", "records", n)
		}
	}

	m.source = source.New(source.Config{
		SheetURL:  cfg.SheetURL,
		SheetFile: cfg.SheetFile,
	})
	m.summary = summary.New(cfg.GeminiAPIKey)

	if cfg.SheetFile != "" {
		if err := m.source.WatchFile(); err != nil {
			logger.Warn("sheet file watch unavailable", "error", err)
		}
	}

	go m.routeEvents()

	return m, nil
}

// Start launches the periodic refresh and returns the poll handle. The
// handle is also retained so Close can release it.
func (m *Manager) Start() *source.Poller {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.poller == nil {
		m.poller = m.source.StartPolling(m.cfg.RefreshInterval)
	}
	return m.poller
}

// routeEvents routes source events to subscribers and the refresh log.
func (m *Manager) routeEvents() {
	for {
		select {
		case event := <-m.source.Events():
			m.handleSourceEvent(event)

		case <-m.stopChan:
			return
		}
	}
}

func (m *Manager) handleSourceEvent(event source.Event) {
	switch event.Type {
	case source.EventRefreshing:
		m.broadcast(RefreshingEvent{})

	case source.EventSnapshotReplaced:
		m.logRefresh(event.Record)
		m.checkNotifications(len(event.Snapshot.Orders), false)
		m.broadcast(SnapshotReplacedEvent{Snapshot: event.Snapshot})

	case source.EventNoData:
		m.logRefresh(event.Record)
		m.broadcast(NoDataEvent{Record: event.Record})

	case source.EventFetchError:
		m.logRefresh(event.Record)
		m.checkNotifications(0, true)
		m.broadcast(FetchErrorEvent{Record: event.Record, Error: event.Error})
	}
}

// logRefresh persists one refresh attempt to the history log.
func (m *Manager) logRefresh(rec models.RefreshRecord) {
	if err := m.database.InsertRefresh(&rec); err != nil {
		logger.Error("failed to log refresh", "error", err)
	}
}

// checkNotifications raises a desktop notification on a success-to-failure
// transition and when a refresh brings in new rows.
func (m *Manager) checkNotifications(rowCount int, failed bool) {
	m.mu.Lock()
	wasFailed := m.lastFailed
	prevRows := m.lastRowCount
	m.lastFailed = failed
	if !failed {
		m.lastRowCount = rowCount
	}
	m.mu.Unlock()

	if failed && !wasFailed {
		_ = beeep.Notify("Sales dashboard", "Sheet refresh failed; showing last good data.", "")
		return
	}
	if !failed && prevRows > 0 && rowCount > prevRows {
		body := fmt.Sprintf("%d new orders since the last refresh.", rowCount-prevRows)
		_ = beeep.Notify("Sales dashboard", body, "")
	}
}

// broadcast sends an event to all subscribers.
func (m *Manager) broadcast(event ServiceEvent) {
	select {
	case m.eventChan <- event:
	default:
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subscribers {
		select {
		case sub <- event:
		default:
			// Subscriber channel full, skip
		}
	}
}

// Subscribe creates a channel for receiving service events.
// Returns a tea.Cmd that can be used in Bubble Tea's Init or Update.
func (m *Manager) Subscribe() (chan ServiceEvent, tea.Cmd) {
	ch := make(chan ServiceEvent, 50)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()

	return ch, WaitForEvent(ch)
}

// WaitForEvent returns a tea.Cmd for the next event on a channel.
func WaitForEvent(ch <-chan ServiceEvent) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

// Unsubscribe removes a subscriber channel.
func (m *Manager) Unsubscribe(ch chan ServiceEvent) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Snapshot returns the current dataset, nil before the first refresh.
func (m *Manager) Snapshot() *models.Snapshot {
	return m.source.Snapshot()
}

// Orders returns the individual orders of the current snapshot.
func (m *Manager) Orders() []models.Order {
	snap := m.source.Snapshot()
	if snap == nil {
		return nil
	}
	return snap.Orders
}

// Refresh forces an immediate refresh.
func (m *Manager) Refresh() error {
	_, err := m.source.Refresh()
	return err
}

// UseFallbackData replaces the dataset with synthetic orders. Used when the
// real source is unavailable or in demo mode.
func (m *Manager) UseFallbackData() *models.Snapshot {
	orders := mockdata.Generate(m.cfg.MockDays)
	snap := m.source.ReplaceSnapshot(orders, models.SourceMock)

	m.logRefresh(models.RefreshRecord{
		Timestamp: snap.FetchedAt,
		Source:    models.SourceMock,
		RowCount:  len(orders),
	})
	m.broadcast(SnapshotReplacedEvent{Snapshot: snap})

	return snap
}

// FilteredOrders returns the snapshot orders restricted to the range.
func (m *Manager) FilteredOrders(r analytics.DateRange) []models.Order {
	return analytics.FilterByDate(m.Orders(), r)
}

// GroupedOrders returns the per-customer merged view over the range.
func (m *Manager) GroupedOrders(r analytics.DateRange) []models.Order {
	return analytics.GroupByCustomer(m.FilteredOrders(r))
}

// DailyStats returns the per-day aggregates over the range.
func (m *Manager) DailyStats(r analytics.DateRange) []models.DailyStat {
	return analytics.DailyStats(m.FilteredOrders(r))
}

// TopCustomers returns the customer ranking over the range.
func (m *Manager) TopCustomers(r analytics.DateRange) []models.TopCustomer {
	return analytics.TopCustomers(m.GroupedOrders(r))
}

// Totals returns the derived headline metrics over the range.
func (m *Manager) Totals(r analytics.DateRange) models.SummaryTotals {
	return analytics.Totals(m.DailyStats(r))
}

// SummaryAvailable reports whether the AI summary collaborator can be used.
func (m *Manager) SummaryAvailable() bool {
	return m.summary.Available()
}

// Summarize produces the AI recap for the current range.
func (m *Manager) Summarize(r analytics.DateRange) (string, error) {
	return m.summary.Summarize(m.DailyStats(r))
}

// RefreshHistory returns the most recent refresh attempts.
func (m *Manager) RefreshHistory(limit int) ([]models.RefreshRecord, error) {
	return m.database.GetRecentRefreshes(limit)
}

// RefreshStats returns counts over the whole refresh log.
func (m *Manager) RefreshStats() (db.RefreshStats, error) {
	return m.database.GetRefreshStats()
}

// Database returns the database instance for direct access.
func (m *Manager) Database() *db.DB {
	return m.database
}

// Close stops polling, event routing and all services.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.poller != nil {
		m.poller.Stop()
		m.poller = nil
	}
	m.mu.Unlock()

	close(m.stopChan)

	m.mu.Lock()
	for _, sub := range m.subscribers {
		close(sub)
	}
	m.subscribers = nil
	m.mu.Unlock()

	var errs []error

	if err := m.source.Close(); err != nil {
		errs = append(errs, err)
	}
	if m.database != nil {
		if err := m.database.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
