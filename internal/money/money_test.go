package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	valid := []struct {
		name string
		in   string
		want string
	}{
		{"plain_integer", "600", "600"},
		{"two_decimals", "2503.50", "2503.5"},
		{"thousands_separator", "2,503.50", "2503.5"},
		{"currency_symbol", "$1,200.00", "1200"},
		{"currency_code_prefix", "USD 40", "40"},
		{"surrounding_spaces", " 12.30 ", "12.3"},
		{"rounds_to_two_decimals", "12.346", "12.35"},
		{"leading_decimal_point", ".75", "0.75"},
	}

	for _, tc := range valid {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.in)
			if err != nil {
				t.Fatalf("ParseAmount(%q) returned error: %v", tc.in, err)
			}
			want, _ := decimal.NewFromString(tc.want)
			if !got.Equal(want) {
				t.Errorf("ParseAmount(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}

	invalid := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"letters_only", "abc"},
		{"symbols_only", "$ ,"},
		{"two_decimal_points", "1.2.3"},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseAmount(tc.in); err == nil {
				t.Errorf("ParseAmount(%q) succeeded, want error", tc.in)
			}
		})
	}

	// The sign is formatting too: it gets stripped, matching the entry form.
	t.Run("minus_sign_is_stripped", func(t *testing.T) {
		got, err := ParseAmount("-5")
		if err != nil {
			t.Fatalf("ParseAmount(-5) returned error: %v", err)
		}
		if !got.Equal(decimal.NewFromInt(5)) {
			t.Errorf("ParseAmount(-5) = %s, want 5", got)
		}
	})
}

func TestIsValidAmount(t *testing.T) {
	if !IsValidAmount("1,000.00") {
		t.Error("expected 1,000.00 to be valid")
	}
	if IsValidAmount("not money") {
		t.Error("expected 'not money' to be invalid")
	}
}
