package sheet

import "strings"

// Field is one of the canonical order attributes a raw header can map onto.
type Field string

const (
	FieldDate         Field = "date"
	FieldCustomerName Field = "customerName"
	FieldQuantity     Field = "quantity"
	FieldAmount       Field = "amount"
	FieldDetails      Field = "details"
	FieldFacebookLink Field = "facebookLink"
)

// fieldKeywords holds the prioritized keyword lists used to recognize
// human-authored headers. Matching is substring-based over lower-cased
// header text.
var fieldKeywords = map[Field][]string{
	FieldDate:         {"thời gian", "ngày", "time", "date"},
	FieldCustomerName: {"tên khách", "khách hàng", "name"},
	FieldQuantity:     {"số đơn", "số lượng", "quantity"},
	FieldAmount:       {"tổng tiền", "doanh thu", "amount", "thành tiền"},
	FieldDetails:      {"chi tiết", "nội dung", "comment", "product"},
	FieldFacebookLink: {"link facebook", "facebook", "fb"},
}

// canonicalFields lists all mappable fields.
var canonicalFields = []Field{
	FieldDate, FieldCustomerName, FieldQuantity,
	FieldAmount, FieldDetails, FieldFacebookLink,
}

// MapColumns resolves each canonical field to a column index. Headers must
// already be lower-cased. The first header (left to right) containing any of
// the field's keywords wins; later headers that would also match are ignored,
// a known limitation of the heuristic. Fields with no matching header are
// absent from the result.
func MapColumns(headers []string) map[Field]int {
	cols := make(map[Field]int, len(canonicalFields))
	for _, field := range canonicalFields {
		if idx, ok := findColumn(headers, fieldKeywords[field]); ok {
			cols[field] = idx
		}
	}
	return cols
}

func findColumn(headers []string, keywords []string) (int, bool) {
	for i, header := range headers {
		for _, kw := range keywords {
			if strings.Contains(header, kw) {
				return i, true
			}
		}
	}
	return 0, false
}
