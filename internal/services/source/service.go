package source

import (
	"errors"
	"os"
	"sync"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/logger"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/sheet"
)

// Event represents a source service event.
type Event struct {
	Type     EventType
	Snapshot *models.Snapshot
	Record   models.RefreshRecord
	Error    error
}

// EventType defines the type of source event.
type EventType int

const (
	// EventRefreshing indicates a refresh is in progress.
	EventRefreshing EventType = iota
	// EventSnapshotReplaced indicates a refresh succeeded and the dataset
	// was replaced.
	EventSnapshotReplaced
	// EventNoData indicates a fetch succeeded but yielded zero rows.
	EventNoData
	// EventFetchError indicates a refresh failed at the fetch level.
	EventFetchError
)

// Config holds configuration for the source service.
type Config struct {
	SheetURL  string
	SheetFile string
}

// Service fetches and parses the sales sheet and owns the current snapshot.
//
// Refreshes are not serialized: a slow fetch started earlier may complete
// after, and replace, a more recent one. The replacement itself is a single
// assignment under the mutex, so readers always see a complete dataset.
type Service struct {
	mu       sync.RWMutex
	config   Config
	snapshot *models.Snapshot

	eventChan chan Event
	watch     *fileWatcher
}

// New creates a new source service. Nothing is fetched until Refresh or
// StartPolling is called.
func New(config Config) *Service {
	return &Service{
		config:    config,
		eventChan: make(chan Event, 100),
	}
}

// Events returns the event channel.
func (s *Service) Events() <-chan Event {
	return s.eventChan
}

// Snapshot returns the current dataset, or nil before the first successful
// refresh.
func (s *Service) Snapshot() *models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// Refresh fetches the sheet, parses it and atomically replaces the current
// snapshot. Field-level problems inside rows never fail a refresh; only
// fetch failures and the zero-row condition do, and neither touches the
// existing snapshot.
func (s *Service) Refresh() (*models.Snapshot, error) {
	s.sendEvent(Event{Type: EventRefreshing})

	start := time.Now()
	body, src, err := s.loadBody()
	rec := models.RefreshRecord{
		Timestamp: start,
		Source:    src,
	}

	if err != nil {
		rec.DurationMs = time.Since(start).Milliseconds()
		rec.Error = err.Error()
		logger.Error("refresh failed", "source", src, "error", err)
		s.sendEvent(Event{Type: EventFetchError, Record: rec, Error: err})
		return nil, err
	}

	orders := sheet.Parse(body)
	rec.DurationMs = time.Since(start).Milliseconds()
	rec.RowCount = len(orders)

	if len(orders) == 0 {
		rec.Error = ErrNoData.Error()
		logger.Warn("refresh yielded no rows", "source", src)
		s.sendEvent(Event{Type: EventNoData, Record: rec, Error: ErrNoData})
		return nil, ErrNoData
	}

	snap := s.ReplaceSnapshot(orders, src)
	logger.Info("snapshot replaced", "source", src, "rows", len(orders), "duration_ms", rec.DurationMs)
	s.sendEvent(Event{Type: EventSnapshotReplaced, Snapshot: snap, Record: rec})

	return snap, nil
}

// ReplaceSnapshot installs a new dataset in one assignment and returns it.
// Used by Refresh and by the synthetic fallback collaborator.
func (s *Service) ReplaceSnapshot(orders []models.Order, src models.DataSource) *models.Snapshot {
	snap := &models.Snapshot{
		Orders:    orders,
		Source:    src,
		FetchedAt: time.Now(),
	}

	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()

	return snap
}

// loadBody reads the raw sheet text. A configured local file takes
// precedence over the remote endpoint.
func (s *Service) loadBody() (string, models.DataSource, error) {
	if s.config.SheetFile != "" {
		data, err := os.ReadFile(s.config.SheetFile)
		if err != nil {
			return "", models.SourceFile, &FetchError{Message: err.Error()}
		}
		return string(data), models.SourceFile, nil
	}

	body, err := FetchSheet(s.config.SheetURL)
	return body, models.SourceSheet, err
}

// sendEvent sends an event non-blocking, dropping the oldest on overflow.
func (s *Service) sendEvent(event Event) {
	select {
	case s.eventChan <- event:
	default:
		select {
		case <-s.eventChan:
		default:
		}
		select {
		case s.eventChan <- event:
		default:
		}
	}
}

// Close stops the file watcher if one is running.
func (s *Service) Close() error {
	if s.watch != nil {
		return s.watch.stop()
	}
	return nil
}

// Poller is the handle returned by StartPolling. Stopping it releases the
// underlying timer; Stop is idempotent.
type Poller struct {
	stopChan chan struct{}
	once     sync.Once
}

// Stop ends the periodic refresh.
func (p *Poller) Stop() {
	p.once.Do(func() { close(p.stopChan) })
}

// StartPolling refreshes immediately and then on every interval tick until
// the returned handle is stopped. Each refresh runs in the polling
// goroutine and never blocks callers of Snapshot.
func (s *Service) StartPolling(interval time.Duration) *Poller {
	p := &Poller{stopChan: make(chan struct{})}

	go func() {
		if _, err := s.Refresh(); err != nil && !errors.Is(err, ErrNoData) {
			logger.Error("initial refresh failed", "error", err)
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				_, _ = s.Refresh()
			case <-p.stopChan:
				return
			}
		}
	}()

	return p
}
