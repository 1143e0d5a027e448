package analytics

import (
	"sort"
	"strings"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// GroupByCustomer merges orders sharing a customer identity (trimmed,
// lower-cased name) into one aggregate order each, carrying the constituent
// orders as SubOrders. Orders are processed in ascending date order, ties
// kept in input order. The result is sorted descending by merged amount;
// equal amounts keep first-seen customer order.
func GroupByCustomer(orders []models.Order) []models.Order {
	sorted := make([]models.Order, len(orders))
	copy(sorted, orders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	grouped := make(map[string]models.Order, len(sorted))
	var keys []string

	for _, o := range sorted {
		key := o.CustomerKey()
		if existing, ok := grouped[key]; ok {
			grouped[key] = mergeOrder(existing, o)
		} else {
			grouped[key] = seedGroup(o)
			keys = append(keys, key)
		}
	}

	result := make([]models.Order, 0, len(keys))
	for _, key := range keys {
		result = append(result, grouped[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount > result[j].Amount
	})

	return result
}

// seedGroup starts a grouped record from the customer's first order. The
// detail line is reformatted to the dash-prefixed style used when later
// orders append theirs.
func seedGroup(o models.Order) models.Order {
	g := o
	if d := strings.TrimSpace(o.Details); d != "" {
		g.Details = "- " + d
	}
	g.SubOrders = []models.Order{o}
	return g
}

// mergeOrder folds one later order into a grouped record and returns a
// fresh record; neither input is mutated and the sub-order slice is copied,
// never aliased.
func mergeOrder(g, o models.Order) models.Order {
	merged := g
	merged.Amount = g.Amount + o.Amount
	merged.Quantity = g.Quantity + o.Quantity

	// Orders arrive in ascending date order, so the incoming order always
	// carries the latest date and display name.
	merged.Date = o.Date
	merged.CustomerName = o.CustomerName

	if d := strings.TrimSpace(o.Details); d != "" {
		if merged.Details == "" {
			merged.Details = "- " + d
		} else {
			merged.Details = merged.Details + "\n- " + d
		}
	}

	if merged.FacebookLink == "" {
		merged.FacebookLink = o.FacebookLink
	}

	merged.SubOrders = make([]models.Order, 0, len(g.SubOrders)+1)
	merged.SubOrders = append(merged.SubOrders, g.SubOrders...)
	merged.SubOrders = append(merged.SubOrders, o)

	return merged
}
