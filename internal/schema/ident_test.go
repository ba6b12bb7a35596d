package schema

import "testing"

func TestQuoteIdent(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"users", "users"},
		{"order_items", "order_items"},
		{"_private", "_private"},
		{"user Order", `"user Order"`},
		{"UserOrder", `"UserOrder"`},
		{"1st", `"1st"`},
		{`we"ird`, `"we""ird"`},
	}
	for _, tc := range cases {
		if got := QuoteIdent(tc.in); got != tc.want {
			t.Errorf("QuoteIdent(%q): expected %s, got %s", tc.in, tc.want, got)
		}
	}
}
