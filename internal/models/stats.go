package models

import "time"

// DailyStat aggregates individual (ungrouped) orders for one calendar day.
// OrderCount is quantity-weighted: an order with quantity 3 counts as 3.
type DailyStat struct {
	Date       string  `json:"date"` // YYYY-MM-DD
	OrderCount int     `json:"orderCount"`
	Revenue    float64 `json:"revenue"`
}

// SummaryTotals are the derived headline metrics over a DailyStat sequence.
type SummaryTotals struct {
	TotalRevenue      float64 `json:"totalRevenue"`
	TotalOrders       int     `json:"totalOrders"`
	AverageOrderValue float64 `json:"averageOrderValue"`
}

// Snapshot is one complete ingested dataset. A successful refresh replaces
// the previous snapshot wholesale; nothing is carried over between cycles.
type Snapshot struct {
	Orders    []Order
	Source    DataSource
	FetchedAt time.Time
}

// DataSource identifies where a snapshot came from.
type DataSource string

const (
	// SourceSheet marks data fetched from the published-CSV endpoint.
	SourceSheet DataSource = "sheet"
	// SourceFile marks data read from a local CSV file.
	SourceFile DataSource = "file"
	// SourceMock marks synthetic fallback data.
	SourceMock DataSource = "mock"
)
