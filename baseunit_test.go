package currency

import (
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDecimalToInteger(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		tests := []struct {
			value string
			div   int
			want  string
		}{
			{"1", 8, "100000000"},
			{"0.00000001", 8, "1"},
			{"0.000000005", 8, "1"},
			{"0.000000004", 8, "0"},
			{"-0.000000005", 8, "-1"},
			{"0.123456789", 8, "12345679"},
			{"21000000", 8, "2100000000000000"},
			{"1.5", 18, "1500000000000000000"},
			{"12.345", 2, "1235"},
			{" 7 ", 2, "700"},
			{"123456789012345678901234567890", 8, "12345678901234567890123456789000000000"},
		}
		for _, tt := range tests {
			got, err := DecimalToInteger(tt.value, tt.div)
			if err != nil {
				t.Errorf("DecimalToInteger(%q, %v) failed: %v", tt.value, tt.div, err)
				continue
			}
			if got != tt.want {
				t.Errorf("DecimalToInteger(%q, %v) = %q, want %q", tt.value, tt.div, got, tt.want)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		tests := []struct {
			value float64
			div   int
			want  string
		}{
			{1, 8, "100000000"},
			{0.1 + 0.2, 8, "30000000"},
			{19.99, 2, "1999"},
			{1e-8, 8, "1"},
		}
		for _, tt := range tests {
			got, err := DecimalToInteger(tt.value, tt.div)
			if err != nil {
				t.Errorf("DecimalToInteger(%v, %v) failed: %v", tt.value, tt.div, err)
				continue
			}
			if got != tt.want {
				t.Errorf("DecimalToInteger(%v, %v) = %q, want %q", tt.value, tt.div, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := DecimalToInteger("1", 0); !errors.Is(err, ErrInvalidDivisibility) {
			t.Errorf("DecimalToInteger(\"1\", 0) error = %v, want %v", err, ErrInvalidDivisibility)
		}
		if _, err := DecimalToInteger("1", -2); !errors.Is(err, ErrInvalidDivisibility) {
			t.Errorf("DecimalToInteger(\"1\", -2) error = %v, want %v", err, ErrInvalidDivisibility)
		}
		for _, v := range []string{"", "abc", "1.2.3", "1,5"} {
			if _, err := DecimalToInteger(v, 8); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("DecimalToInteger(%q, 8) error = %v, want %v", v, err, ErrInvalidAmount)
			}
		}
		for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			if _, err := DecimalToInteger(v, 8); !errors.Is(err, ErrInvalidAmount) {
				t.Errorf("DecimalToInteger(%v, 8) error = %v, want %v", v, err, ErrInvalidAmount)
			}
		}
	})
}

func TestIntegerToDecimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			value string
			div   int
			want  string
		}{
			{"100000000", 8, "1"},
			{"1", 8, "0.00000001"},
			{"150000000", 8, "1.5"},
			{"123", 2, "1.23"},
			{"-250", 2, "-2.5"},
			{"0", 8, "0"},
			{"1500000000000000000", 18, "1.5"},
		}
		for _, tt := range tests {
			got, err := IntegerToDecimal(tt.value, tt.div)
			if err != nil {
				t.Errorf("IntegerToDecimal(%q, %v) failed: %v", tt.value, tt.div, err)
				continue
			}
			if got != tt.want {
				t.Errorf("IntegerToDecimal(%q, %v) = %q, want %q", tt.value, tt.div, got, tt.want)
			}
		}
	})

	t.Run("float64", func(t *testing.T) {
		got, err := IntegerToDecimal(150.0, 2)
		if err != nil {
			t.Fatalf("IntegerToDecimal(150.0, 2) failed: %v", err)
		}
		if got != "1.5" {
			t.Errorf("IntegerToDecimal(150.0, 2) = %q, want %q", got, "1.5")
		}
	})

	t.Run("error", func(t *testing.T) {
		if _, err := IntegerToDecimal("1", 0); !errors.Is(err, ErrInvalidDivisibility) {
			t.Errorf("IntegerToDecimal(\"1\", 0) error = %v, want %v", err, ErrInvalidDivisibility)
		}
		if _, err := IntegerToDecimal("x", 8); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("IntegerToDecimal(\"x\", 8) error = %v, want %v", err, ErrInvalidAmount)
		}
		if _, err := IntegerToDecimal(math.NaN(), 8); !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("IntegerToDecimal(NaN, 8) error = %v, want %v", err, ErrInvalidAmount)
		}
	})
}

func TestBaseUnits_RoundTrip(t *testing.T) {
	amounts := []string{
		"0", "1", "0.00000001", "0.5", "123.45", "21000000", "0.12345678",
		"99999999.99999999", "0.1", "3.14159265358979323846",
	}
	for _, div := range []int{2, 8, 18} {
		for _, a := range amounts {
			units, err := DecimalToInteger(a, div)
			if err != nil {
				t.Errorf("DecimalToInteger(%q, %v) failed: %v", a, div, err)
				continue
			}
			back, err := IntegerToDecimal(units, div)
			if err != nil {
				t.Errorf("IntegerToDecimal(%q, %v) failed: %v", units, div, err)
				continue
			}
			want := decimal.RequireFromString(a).Round(int32(div))
			if got := decimal.RequireFromString(back); !got.Equal(want) {
				t.Errorf("IntegerToDecimal(DecimalToInteger(%q, %v)) = %v, want %v", a, div, got, want)
			}
		}
	}
}

func TestIntegerToDecimalOrNone(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	log := zap.New(core)

	got, ok := IntegerToDecimalOrNone("100000000", 8, log)
	if !ok || got != "1" {
		t.Errorf("IntegerToDecimalOrNone(\"100000000\", 8) = %q, %v, want %q, %v", got, ok, "1", true)
	}
	if logs.Len() != 0 {
		t.Errorf("IntegerToDecimalOrNone logged %d entries on success", logs.Len())
	}

	got, ok = IntegerToDecimalOrNone("abc", 8, log)
	if ok || got != "" {
		t.Errorf("IntegerToDecimalOrNone(\"abc\", 8) = %q, %v, want %q, %v", got, ok, "", false)
	}
	if logs.Len() != 1 {
		t.Fatalf("IntegerToDecimalOrNone logged %d entries, want 1", logs.Len())
	}
	if e := logs.All()[0]; e.Level != zapcore.WarnLevel {
		t.Errorf("log level = %v, want %v", e.Level, zapcore.WarnLevel)
	}

	if _, ok := IntegerToDecimalOrNone(1.0, 0, nil); ok {
		t.Errorf("IntegerToDecimalOrNone(1, 0, nil) succeeded")
	}
}
