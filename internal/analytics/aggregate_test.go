package analytics

import (
	"testing"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

func TestDailyStats(t *testing.T) {
	orders := []models.Order{
		{Date: day(2024, 7, 20), Amount: 100, Quantity: 2},
		{Date: day(2024, 7, 20), Amount: 50, Quantity: 1},
		{Date: day(2024, 7, 21), Amount: 300, Quantity: 1},
	}

	stats := DailyStats(orders)
	if len(stats) != 2 {
		t.Fatalf("got %d buckets, want 2", len(stats))
	}

	if stats[0].Date != "2024-07-20" || stats[1].Date != "2024-07-21" {
		t.Errorf("buckets not ascending by date: %v", stats)
	}
	if stats[0].Revenue != 150 {
		t.Errorf("first bucket revenue = %v, want 150", stats[0].Revenue)
	}
	if stats[0].OrderCount != 3 {
		t.Errorf("first bucket count = %d, want quantity-weighted 3", stats[0].OrderCount)
	}
	if stats[1].Revenue != 300 || stats[1].OrderCount != 1 {
		t.Errorf("second bucket = %+v", stats[1])
	}
}

func TestDailyStatsEmpty(t *testing.T) {
	if got := DailyStats(nil); len(got) != 0 {
		t.Errorf("DailyStats(nil) = %v, want empty", got)
	}
}

func TestTopCustomers(t *testing.T) {
	var grouped []models.Order
	for i := 0; i < 8; i++ {
		grouped = append(grouped, models.Order{
			CustomerName: string(rune('A' + i)),
			Amount:       float64(800 - i*100),
			Quantity:     i + 1,
			Date:         day(2024, 7, 20+i),
		})
	}

	top := TopCustomers(grouped)
	if len(top) != TopCustomerLimit {
		t.Fatalf("got %d top customers, want %d", len(top), TopCustomerLimit)
	}
	for i := 1; i < len(top); i++ {
		if top[i].TotalRevenue > top[i-1].TotalRevenue {
			t.Fatalf("ranking not non-increasing: %v", top)
		}
	}
	if top[0].Name != "A" || top[0].TotalRevenue != 800 {
		t.Errorf("top customer = %+v", top[0])
	}
	if top[0].TotalOrders != 1 {
		t.Errorf("top customer orders = %d, want quantity 1", top[0].TotalOrders)
	}
}

func TestTopCustomersShortInput(t *testing.T) {
	grouped := []models.Order{{CustomerName: "An", Amount: 10}}
	if got := TopCustomers(grouped); len(got) != 1 {
		t.Errorf("got %d, want 1", len(got))
	}
	if got := TopCustomers(nil); len(got) != 0 {
		t.Errorf("got %d, want 0", len(got))
	}
}

func TestTotals(t *testing.T) {
	stats := []models.DailyStat{
		{Date: "2024-07-20", OrderCount: 3, Revenue: 150},
		{Date: "2024-07-21", OrderCount: 1, Revenue: 300},
	}

	totals := Totals(stats)
	if totals.TotalRevenue != 450 {
		t.Errorf("total revenue = %v, want 450", totals.TotalRevenue)
	}
	if totals.TotalOrders != 4 {
		t.Errorf("total orders = %d, want 4", totals.TotalOrders)
	}
	if totals.AverageOrderValue != 112.5 {
		t.Errorf("average order value = %v, want 112.5", totals.AverageOrderValue)
	}
}

func TestTotalsEmpty(t *testing.T) {
	totals := Totals(nil)
	if totals.AverageOrderValue != 0 || totals.TotalRevenue != 0 || totals.TotalOrders != 0 {
		t.Errorf("Totals(nil) = %+v, want zeros", totals)
	}
}

// Three orders for one customer across three days: one grouped record with
// summed amount and quantity, and one daily bucket per day.
func TestEndToEndAggregation(t *testing.T) {
	orders := []models.Order{
		{ID: "1", CustomerName: "X", Date: day(2024, 7, 20), Amount: 100, Quantity: 1},
		{ID: "2", CustomerName: "X", Date: day(2024, 7, 21), Amount: 200, Quantity: 1},
		{ID: "3", CustomerName: "X", Date: day(2024, 7, 22), Amount: 300, Quantity: 1},
	}

	grouped := GroupByCustomer(orders)
	if len(grouped) != 1 {
		t.Fatalf("got %d groups, want 1", len(grouped))
	}
	g := grouped[0]
	if g.Amount != 600 || g.Quantity != 3 || len(g.SubOrders) != 3 {
		t.Errorf("grouped record = amount %v quantity %d subOrders %d, want 600/3/3",
			g.Amount, g.Quantity, len(g.SubOrders))
	}

	stats := DailyStats(orders)
	if len(stats) != 3 {
		t.Fatalf("got %d daily buckets, want 3", len(stats))
	}
	wantRevenue := []float64{100, 200, 300}
	for i, s := range stats {
		if s.Revenue != wantRevenue[i] {
			t.Errorf("bucket %s revenue = %v, want %v", s.Date, s.Revenue, wantRevenue[i])
		}
	}

	totals := Totals(stats)
	if totals.TotalRevenue != 600 || totals.TotalOrders != 3 || totals.AverageOrderValue != 200 {
		t.Errorf("totals = %+v", totals)
	}
}
