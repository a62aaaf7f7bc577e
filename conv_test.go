package fraction

import (
	"math"
	"testing"

	"github.com/govalues/decimal"
)

func TestFraction_Float64(t *testing.T) {
	tests := []struct {
		num, den int64
		want     float64
	}{
		{0, 1, 0},
		{1, 4, 0.25},
		{-3, 8, -0.375},
		{10, 4, 2.5},
		{math.MaxInt64, 1, math.MaxInt64},
	}
	for _, tt := range tests {
		f := MustNew(tt.num, tt.den)
		got := f.Float64()
		if got != tt.want {
			t.Errorf("%q.Float64() = %v, want %v", f, got, tt.want)
		}
	}
}

func TestFraction_Decimal(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			num, den int64
			want     string
		}{
			{0, 1, "0"},
			{1, 4, "0.25"},
			{-3, 8, "-0.375"},
			{7, 20, "0.35"},
			{5, 1, "5"},
			{-12, 5, "-2.4"},
			{math.MaxInt64, 1, "9223372036854775807"},
			{math.MinInt64, 1, "-9223372036854775808"},
		}
		for _, tt := range tests {
			f := MustNew(tt.num, tt.den)
			got, err := f.Decimal()
			if err != nil {
				t.Errorf("%q.Decimal() failed: %v", f, err)
				continue
			}
			want := decimal.MustParse(tt.want)
			if got.Cmp(want) != 0 {
				t.Errorf("%q.Decimal() = %v, want %v", f, got, want)
			}
		}
	})

	t.Run("unsigned", func(t *testing.T) {
		f := MustNew[uint8](200, 16)
		got, err := f.Decimal()
		if err != nil {
			t.Fatalf("%q.Decimal() failed: %v", f, err)
		}
		want := decimal.MustParse("12.5")
		if got.Cmp(want) != 0 {
			t.Errorf("%q.Decimal() = %v, want %v", f, got, want)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]Fraction[uint64]{
			"numerator overflow":   MustNew(uint64(math.MaxUint64), 1),
			"denominator overflow": MustNew(1, uint64(math.MaxUint64)),
			"both overflow":        MustNew(uint64(math.MaxUint64), math.MaxUint64-1),
		}
		for name, f := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := f.Decimal()
				if err == nil {
					t.Errorf("%q.Decimal() did not fail", f)
				}
			})
		}
	})
}

func TestFraction_MustDecimal(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		f := MustNew(uint64(math.MaxUint64), 1)
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("%q.MustDecimal() did not panic", f)
			}
		}()
		f.MustDecimal()
	})
}
