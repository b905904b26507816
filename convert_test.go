package currency

import (
	"errors"
	"math"
	"testing"
)

func TestConvert(t *testing.T) {
	c := newTestRateCache()

	t.Run("string", func(t *testing.T) {
		tests := []struct {
			amount, from, to, want string
		}{
			{"0.5", "BTC", "USD", "32000"},
			{"0.5", "TBTC", "usd", "32000"},
			{"32000", "USD", "BTC", "0.5"},
			{"100", "LTC", "BTC", "0.125"},
			{"not a number", "USD", "usd", "not a number"},
			{"1.2300", "EUR", "EUR", "1.2300"},
		}
		for _, tt := range tests {
			got, err := Convert(c, tt.amount, tt.from, tt.to)
			if err != nil {
				t.Errorf("Convert(%q, %q, %q) failed: %v", tt.amount, tt.from, tt.to, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Convert(%q, %q, %q) = %q, want %q", tt.amount, tt.from, tt.to, got, tt.want)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		tests := []struct {
			amount   float64
			from, to string
			want     float64
		}{
			{0.5, "BTC", "USD", 32000},
			{32000, "USD", "BTC", 0.5},
			{100, "LTC", "BTC", 0.125},
			{math.Pi, "GBP", "GBP", math.Pi},
		}
		for _, tt := range tests {
			got, err := Convert(c, tt.amount, tt.from, tt.to)
			if err != nil {
				t.Errorf("Convert(%v, %q, %q) failed: %v", tt.amount, tt.from, tt.to, err)
				continue
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %q, %q) = %v, want %v", tt.amount, tt.from, tt.to, got, tt.want)
			}
		}
	})

	t.Run("identity", func(t *testing.T) {
		empty := NewRateCache(RateCacheConfig{})
		for _, code := range []string{"BTC", "USD", "XMR", "UNKNOWN"} {
			got, err := Convert(empty, "12.5", code, code)
			if err != nil || got != "12.5" {
				t.Errorf("Convert(\"12.5\", %q, %q) = %q, %v, want %q", code, code, got, err, "12.5")
			}
		}
		got, err := Convert(empty, "1", "TBTC", "BTC")
		if err != nil || got != "1" {
			t.Errorf("Convert(\"1\", \"TBTC\", \"BTC\") = %q, %v, want %q", got, err, "1")
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := Convert(c, "1", "GBP", "USD"); !IsNoExchangeRateData(err) {
			t.Errorf("Convert(\"1\", \"GBP\", \"USD\") error = %v, want NoExchangeRateDataError", err)
		}
		if _, err := Convert(c, 1.0, "USD", "JPY"); !IsNoExchangeRateData(err) {
			t.Errorf("Convert(1, \"USD\", \"JPY\") error = %v, want NoExchangeRateDataError", err)
		}
		if _, err := Convert(c, "1", "", "USD"); err == nil {
			t.Errorf("Convert(\"1\", \"\", \"USD\") did not fail")
		}
		if _, err := Convert(c, "abc", "BTC", "USD"); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("Convert(\"abc\", \"BTC\", \"USD\") error = %v, want %v", err, ErrInvalidAmount)
		}
	})
}
