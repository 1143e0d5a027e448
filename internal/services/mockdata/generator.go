// Package mockdata generates synthetic orders used as a demo fallback when
// the real sheet is unavailable. Generated orders satisfy the same
// invariants as parsed ones: non-negative amounts, positive quantities,
// non-empty customer names.
package mockdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

var customerNames = []string{
	"Nguyễn Văn An", "Trần Thị Bình", "Lê Hoàng Chi", "Phạm Minh Đức",
	"Hoàng Thu Hà", "Vũ Quang Huy", "Đặng Ngọc Lan", "Bùi Thanh Mai",
	"Đỗ Văn Nam", "Ngô Thị Oanh", "Dương Minh Phúc", "Lý Thu Quỳnh",
}

var products = []string{
	"Áo thun trắng", "Quần jean xanh", "Váy hoa nhí", "Áo khoác dù",
	"Giày sneaker", "Túi xách da", "Áo sơ mi kẻ", "Đầm maxi",
	"Set đồ bộ", "Áo len cổ lọ",
}

const (
	minOrdersPerDay = 1
	maxOrdersPerDay = 5
	minAmount       = 150_000
	maxAmount       = 2_500_000
)

// Generate produces randomized orders spread over the given number of days
// ending today.
func Generate(days int) []models.Order {
	return GenerateSeeded(time.Now().UnixNano(), days)
}

// GenerateSeeded is Generate with a fixed seed for reproducible output.
func GenerateSeeded(seed int64, days int) []models.Order {
	if days <= 0 {
		return nil
	}

	r := rand.New(rand.NewSource(seed))
	today := time.Now()

	var orders []models.Order
	seq := 0

	for d := days - 1; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		count := minOrdersPerDay + r.Intn(maxOrdersPerDay-minOrdersPerDay+1)

		for i := 0; i < count; i++ {
			seq++
			orders = append(orders, randomOrder(r, seq, day))
		}
	}

	return orders
}

func randomOrder(r *rand.Rand, seq int, day time.Time) models.Order {
	name := customerNames[r.Intn(len(customerNames))]
	product := products[r.Intn(len(products))]

	// Amounts land on thousand boundaries like real shop prices.
	amount := float64((minAmount + r.Intn(maxAmount-minAmount)) / 1000 * 1000)

	order := models.Order{
		ID:           fmt.Sprintf("mock-%d", seq),
		Date:         time.Date(day.Year(), day.Month(), day.Day(), 8+r.Intn(13), r.Intn(60), 0, 0, day.Location()),
		Amount:       amount,
		Quantity:     1 + r.Intn(3),
		CustomerName: name,
		Details:      product,
	}

	if r.Intn(2) == 0 {
		order.FacebookLink = fmt.Sprintf("https://facebook.com/user%d", r.Intn(9000)+1000)
	}

	return order
}
