package analytics

import (
	"sort"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// TopCustomerLimit caps the customer ranking length.
const TopCustomerLimit = 5

// DailyStats buckets individual (ungrouped) orders by calendar day. Order
// counts are quantity-weighted. The result is sorted ascending by date.
func DailyStats(orders []models.Order) []models.DailyStat {
	buckets := make(map[string]*models.DailyStat)

	for _, o := range orders {
		key := o.DayKey()
		stat, ok := buckets[key]
		if !ok {
			stat = &models.DailyStat{Date: key}
			buckets[key] = stat
		}
		stat.OrderCount += o.Quantity
		stat.Revenue += o.Amount
	}

	stats := make([]models.DailyStat, 0, len(buckets))
	for _, stat := range buckets {
		stats = append(stats, *stat)
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Date < stats[j].Date
	})

	return stats
}

// TopCustomers projects the highest-revenue grouped orders into the ranking
// shown on the dashboard. The input must already be sorted descending by
// amount, as GroupByCustomer returns it.
func TopCustomers(grouped []models.Order) []models.TopCustomer {
	n := min(len(grouped), TopCustomerLimit)

	top := make([]models.TopCustomer, 0, n)
	for _, g := range grouped[:n] {
		top = append(top, models.TopCustomer{
			Name:          g.CustomerName,
			TotalOrders:   g.Quantity,
			TotalRevenue:  g.Amount,
			LastOrderDate: g.Date,
		})
	}
	return top
}

// Totals derives the headline metrics from a daily stat sequence.
func Totals(stats []models.DailyStat) models.SummaryTotals {
	var t models.SummaryTotals
	for _, s := range stats {
		t.TotalRevenue += s.Revenue
		t.TotalOrders += s.OrderCount
	}
	if t.TotalOrders > 0 {
		t.AverageOrderValue = t.TotalRevenue / float64(t.TotalOrders)
	}
	return t
}
