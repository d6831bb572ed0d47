package price

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0,00"},
		{"200", "200,00"},
		{"1234.5", "1.234,50"},
		{"1234.56", "1.234,56"},
		{"1234567.8", "1.234.567,80"},
		{"999", "999,00"},
		{"1000", "1.000,00"},
		{"-1234.56", "-1.234,56"},
	}
	for _, c := range cases {
		got := Format(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Fatalf("Format(%s): got %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(decimal.RequireFromString("200"))
	if got != "$200,00" {
		t.Fatalf("got %q, want %q", got, "$200,00")
	}
}
