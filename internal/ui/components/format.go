package components

import (
	"fmt"
	"strings"
)

// FormatVND renders an amount with dot thousand separators the way the
// source sheets write Vietnamese dong, e.g. 1234567 -> "1.234.567 ₫".
func FormatVND(amount float64) string {
	return groupThousands(int64(amount)) + " ₫"
}

// FormatCompact renders an amount in a short form for tight columns,
// e.g. 1250000 -> "1.25M", 45000 -> "45K".
func FormatCompact(amount float64) string {
	switch {
	case amount >= 1_000_000_000:
		return trimZeros(fmt.Sprintf("%.2f", amount/1_000_000_000)) + "B"
	case amount >= 1_000_000:
		return trimZeros(fmt.Sprintf("%.2f", amount/1_000_000)) + "M"
	case amount >= 1_000:
		return trimZeros(fmt.Sprintf("%.1f", amount/1_000)) + "K"
	default:
		return fmt.Sprintf("%.0f", amount)
	}
}

func groupThousands(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := fmt.Sprintf("%d", n)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}

func trimZeros(s string) string {
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
