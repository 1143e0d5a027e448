package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// InsertRefresh logs one refresh attempt.
func (db *DB) InsertRefresh(rec *models.RefreshRecord) error {
	query := `
		INSERT INTO refresh_log (timestamp, source, row_count, duration_ms, error)
		VALUES (?, ?, ?, ?, ?)
	`

	timestamp := rec.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	result, err := db.ExecContext(context.Background(), query,
		timestamp.Format("2006-01-02 15:04:05"),
		string(rec.Source),
		rec.RowCount,
		rec.DurationMs,
		nullString(rec.Error),
	)
	if err != nil {
		return fmt.Errorf("failed to insert refresh record: %w", err)
	}

	if id, err := result.LastInsertId(); err == nil {
		rec.ID = id
	}
	return nil
}

// GetRecentRefreshes returns the most recent refresh attempts, newest first.
func (db *DB) GetRecentRefreshes(limit int) ([]models.RefreshRecord, error) {
	query := `
		SELECT id, timestamp, source, row_count, duration_ms, error
		FROM refresh_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`

	rows, err := db.QueryContext(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query refresh log: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []models.RefreshRecord
	for rows.Next() {
		var rec models.RefreshRecord
		var source string
		var errStr sql.NullString

		if err := rows.Scan(&rec.ID, &rec.Timestamp, &source, &rec.RowCount, &rec.DurationMs, &errStr); err != nil {
			return nil, fmt.Errorf("failed to scan refresh record: %w", err)
		}

		rec.Source = models.DataSource(source)
		rec.Error = errStr.String
		records = append(records, rec)
	}

	return records, rows.Err()
}

// RefreshStats summarizes the refresh log.
type RefreshStats struct {
	Total     int
	Failed    int
	LastError string
}

// GetRefreshStats returns counts over the whole refresh log.
func (db *DB) GetRefreshStats() (RefreshStats, error) {
	var stats RefreshStats

	query := `
		SELECT COUNT(*),
		       SUM(CASE WHEN error IS NOT NULL AND error != '' THEN 1 ELSE 0 END)
		FROM refresh_log
	`
	var failed sql.NullInt64
	if err := db.QueryRowContext(context.Background(), query).Scan(&stats.Total, &failed); err != nil {
		return stats, fmt.Errorf("failed to query refresh stats: %w", err)
	}
	stats.Failed = int(failed.Int64)

	row := db.QueryRowContext(context.Background(), `
		SELECT error FROM refresh_log
		WHERE error IS NOT NULL AND error != ''
		ORDER BY timestamp DESC, id DESC LIMIT 1
	`)
	var lastErr sql.NullString
	if err := row.Scan(&lastErr); err != nil && err != sql.ErrNoRows {
		return stats, fmt.Errorf("failed to query last error: %w", err)
	}
	stats.LastError = lastErr.String

	return stats, nil
}

// PruneRefreshLog deletes records older than the retention window.
func (db *DB) PruneRefreshLog(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention).Format("2006-01-02 15:04:05")
	result, err := db.ExecContext(context.Background(),
		`DELETE FROM refresh_log WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune refresh log: %w", err)
	}
	n, _ := result.RowsAffected()
	return n, nil
}

// nullString converts an empty string to a NULL value.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
