package sheet

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// currencyChars drops everything except digits and separators.
var currencyChars = regexp.MustCompile(`[^0-9.,]`)

// ParseCurrency normalizes a locale-formatted amount string to a number.
//
// Separator heuristics: only dots or only commas are thousands separators
// ("1.234.567" and "1,234,567" both mean 1234567); when both appear the
// European convention applies, dots are thousands separators and the final
// comma is the decimal point ("1.234,56" means 1234.56). Anything
// unparsable degrades to 0.
func ParseCurrency(raw string) float64 {
	s := currencyChars.ReplaceAllString(raw, "")
	if s == "" {
		return 0
	}

	hasDot := strings.Contains(s, ".")
	hasComma := strings.Contains(s, ",")

	switch {
	case hasDot && hasComma:
		s = strings.ReplaceAll(s, ".", "")
		if i := strings.LastIndex(s, ","); i >= 0 {
			s = strings.ReplaceAll(s[:i], ",", "") + "." + s[i+1:]
		}
	case hasDot:
		s = strings.ReplaceAll(s, ".", "")
	case hasComma:
		s = strings.ReplaceAll(s, ",", "")
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// ParseQuantity extracts an order quantity from a raw cell like "5 cái".
// Empty, non-numeric or zero input defaults to 1, never 0.
func ParseQuantity(raw string) int {
	s := nonDigits.ReplaceAllString(raw, "")
	if s == "" {
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil || n == 0 {
		return 1
	}
	return n
}

// dayMonthYear matches the sheet's native date format D/M/YYYY with optional
// . or - separators and an optional trailing time, which is ignored.
var dayMonthYear = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{4})`)

// fallbackLayouts are tried in order when the day-first pattern does not
// produce a valid date. Note the month-first layouts: an ambiguous string
// that fails day-first validation may be read US-style here, matching the
// original behavior of generic date parsing.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
}

// ParseDate normalizes a raw date cell to an instant. The day/month/year
// pattern is tried first, then the generic layout list; a string nothing can
// parse degrades to the current instant. ParseDate never fails.
func ParseDate(raw string) time.Time {
	s := strings.TrimSpace(raw)

	if m := dayMonthYear.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		// time.Date normalizes overflow (32/13 rolls into the next month),
		// so a round-trip mismatch means the components were invalid.
		if t.Day() == day && int(t.Month()) == month && t.Year() == year {
			return t
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}

	return time.Now()
}
