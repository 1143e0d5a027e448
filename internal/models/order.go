// Package models defines data structures and domain types.
package models

import (
	"strings"
	"time"
)

// Order is the canonical sales record produced by the sheet parser.
// A grouped order additionally carries SubOrders: the individual orders
// that were merged into it, in ascending date order.
type Order struct {
	ID           string            `json:"id"`
	Date         time.Time         `json:"date"`
	Amount       float64           `json:"amount"`
	Quantity     int               `json:"quantity"`
	CustomerName string            `json:"customerName"`
	Details      string            `json:"details"`
	FacebookLink string            `json:"facebookLink,omitempty"`
	OriginalData map[string]string `json:"originalData,omitempty"`
	SubOrders    []Order           `json:"subOrders,omitempty"`
}

// CustomerKey returns the normalized grouping key for the order's customer:
// trimmed, lower-cased display name.
func (o Order) CustomerKey() string {
	return strings.ToLower(strings.TrimSpace(o.CustomerName))
}

// DayKey returns the calendar-day bucket key for the order date (YYYY-MM-DD).
func (o Order) DayKey() string {
	return o.Date.Format("2006-01-02")
}

// IsGrouped reports whether the order is a merged per-customer aggregate.
func (o Order) IsGrouped() bool {
	return len(o.SubOrders) > 0
}

// TopCustomer is the dashboard projection of a grouped order.
type TopCustomer struct {
	Name          string    `json:"name"`
	TotalOrders   int       `json:"totalOrders"`
	TotalRevenue  float64   `json:"totalRevenue"`
	LastOrderDate time.Time `json:"lastOrderDate"`
}
