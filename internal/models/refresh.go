package models

import "time"

// RefreshRecord is one logged refresh attempt. Only the attempt metadata is
// persisted; the order data itself lives in the in-memory snapshot.
type RefreshRecord struct {
	ID         int64
	Timestamp  time.Time
	Source     DataSource
	RowCount   int
	DurationMs int64
	Error      string
}

// Succeeded reports whether the refresh completed without error.
func (r RefreshRecord) Succeeded() bool {
	return r.Error == ""
}
