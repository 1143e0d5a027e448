// Package analytics computes grouped, filtered and aggregated views over an
// order snapshot. Every function is a pure transformation; nothing here
// holds state between refresh cycles.
package analytics

import (
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// DateRange is an optional inclusive calendar-day range. A nil bound is
// open-ended on that side.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start == nil && r.End == nil
}

// FilterByDate returns the orders whose date falls inside the range,
// expanded to [start 00:00:00.000, end 23:59:59.999]. With no bounds set the
// input is returned unchanged.
func FilterByDate(orders []models.Order, r DateRange) []models.Order {
	if r.IsZero() {
		return orders
	}

	var from, to time.Time
	if r.Start != nil {
		from = startOfDay(*r.Start)
	}
	if r.End != nil {
		to = endOfDay(*r.End)
	}

	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if r.Start != nil && o.Date.Before(from) {
			continue
		}
		if r.End != nil && o.Date.After(to) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999_000_000, t.Location())
}
