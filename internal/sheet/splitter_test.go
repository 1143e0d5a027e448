package sheet

import (
	"reflect"
	"testing"
)

func TestSplitLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"Simple", "a,b,c", []string{"a", "b", "c"}},
		{"QuotedDelimiter", `a,"b,c",d`, []string{"a", "b,c", "d"}},
		{"Whitespace", " a , b ,c ", []string{"a", "b", "c"}},
		{"QuotedWhitespace", `" a ",b`, []string{"a", "b"}},
		{"EmptyFields", "a,,c", []string{"a", "", "c"}},
		{"SingleField", "hello", []string{"hello"}},
		{"EmptyLine", "", []string{""}},
		{"TrailingDelimiter", "a,b,", []string{"a", "b", ""}},
		{"CurrencyInQuotes", `An,"1,234,567",2`, []string{"An", "1,234,567", "2"}},
		{"UnterminatedQuote", `a,"b,c`, []string{"a", `"b,c`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitLine(tt.line); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestCleanField(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"quoted"`, "quoted"},
		{`  "padded quoted"  `, "padded quoted"},
		{`"`, `"`},
		{`""`, ""},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := cleanField(tt.in); got != tt.want {
			t.Errorf("cleanField(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
