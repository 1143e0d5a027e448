package sheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minhtq-dev/sales-dashboard-tui/internal/logger"
	"github.com/minhtq-dev/sales-dashboard-tui/internal/models"
)

// Parse turns a raw published-CSV body into canonical orders. The first
// non-blank line is the header row; every later non-blank line becomes one
// order. A body with fewer than two non-blank lines yields no orders, which
// is not an error at this layer.
func Parse(body string) []models.Order {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	if len(lines) < 2 {
		return nil
	}

	headers := SplitLine(lines[0])
	for i, h := range headers {
		headers[i] = strings.ToLower(h)
	}
	cols := MapColumns(headers)

	if len(cols) == 0 {
		logger.Warn("no recognizable columns in sheet header", "headers", len(headers))
	}

	orders := make([]models.Order, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := SplitLine(line)
		orders = append(orders, buildOrder(i+1, headers, cols, fields))
	}

	return orders
}

// buildOrder composes one canonical order from a raw row. Every malformed
// field degrades to its documented default; a row never fails.
func buildOrder(row int, headers []string, cols map[Field]int, fields []string) models.Order {
	value := func(f Field) string {
		idx, ok := cols[f]
		if !ok || idx >= len(fields) {
			return ""
		}
		return fields[idx]
	}

	name := strings.TrimSpace(value(FieldCustomerName))
	if name == "" {
		name = fmt.Sprintf("Customer %d", row)
	}

	original := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(fields) {
			original[h] = fields[i]
		}
	}

	return models.Order{
		ID:           strconv.Itoa(row),
		Date:         ParseDate(value(FieldDate)),
		Amount:       ParseCurrency(value(FieldAmount)),
		Quantity:     ParseQuantity(value(FieldQuantity)),
		CustomerName: name,
		Details:      value(FieldDetails),
		FacebookLink: value(FieldFacebookLink),
		OriginalData: original,
	}
}
