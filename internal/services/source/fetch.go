// Package source ingests the sales sheet: it fetches the published-CSV
// body, parses it into a snapshot and refreshes on an explicit poll handle.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoData marks a fetch that succeeded but produced zero data rows. It is
// surfaced as a distinct user-visible condition, not a network failure.
var ErrNoData = errors.New("sheet contains no data rows")

// FetchError is a failed fetch of the published-CSV endpoint. StatusCode is
// zero for transport-level failures.
type FetchError struct {
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("sheet fetch failed (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("sheet fetch failed: %s", e.Message)
}

// fetchTimeout bounds one HTTP fetch. An in-flight fetch is not cancellable
// beyond this timeout.
const fetchTimeout = 30 * time.Second

// FetchSheet retrieves the raw delimited-text body from the published-CSV
// endpoint. Any 2xx status with a body is a success; anything else returns a
// *FetchError carrying the status code.
func FetchSheet(url string) (string, error) {
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{Message: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", &FetchError{Message: err.Error()}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			StatusCode: resp.StatusCode,
			Message:    http.StatusText(resp.StatusCode),
		}
	}

	return string(body), nil
}
