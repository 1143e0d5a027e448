package analytics

import (
	"reflect"
	"testing"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.Local)
}

func testOrders() []models.Order {
	return []models.Order{
		{ID: "1", CustomerName: "An", Date: day(2024, 7, 20), Amount: 100, Quantity: 1},
		{ID: "2", CustomerName: "Bình", Date: day(2024, 7, 21), Amount: 200, Quantity: 2},
		{ID: "3", CustomerName: "Chi", Date: day(2024, 7, 22), Amount: 300, Quantity: 1},
	}
}

func TestFilterByDateIdentity(t *testing.T) {
	orders := testOrders()
	got := FilterByDate(orders, DateRange{})
	if !reflect.DeepEqual(got, orders) {
		t.Error("empty range should return input unchanged")
	}
}

func TestFilterByDateInclusiveBounds(t *testing.T) {
	orders := testOrders()

	start := day(2024, 7, 21)
	end := day(2024, 7, 21)
	got := FilterByDate(orders, DateRange{Start: &start, End: &end})

	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("single-day range returned %v, want order 2 only", got)
	}

	// An order late in the evening still falls inside the end day.
	late := []models.Order{{ID: "4", Date: time.Date(2024, 7, 21, 23, 59, 59, 0, time.Local)}}
	got = FilterByDate(late, DateRange{Start: &start, End: &end})
	if len(got) != 1 {
		t.Error("23:59:59 on the end day should be included")
	}
}

func TestFilterByDateOpenEnds(t *testing.T) {
	orders := testOrders()

	start := day(2024, 7, 21)
	got := FilterByDate(orders, DateRange{Start: &start})
	if len(got) != 2 {
		t.Errorf("start-only range returned %d orders, want 2", len(got))
	}

	end := day(2024, 7, 21)
	got = FilterByDate(orders, DateRange{End: &end})
	if len(got) != 2 {
		t.Errorf("end-only range returned %d orders, want 2", len(got))
	}
}
