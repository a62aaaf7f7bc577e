package fraction

import (
	"fmt"
	"math"
	"testing"

	"golang.org/x/exp/constraints"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{48, 18, 6},
		{18, 48, 6},
		{56, 98, 14},
		{98, 56, 14},
		{1, 1, 1},
		{2, 3, 1},
		{6, 9, 3},
		{7, 360, 1},
		{24, 120, 24},
		{36, 120, 12},
		{3600, 216000, 3600},
		{123456789, 987654321, 9},
		{5, 0, 5},
		{0, 5, 5},
		{0, 0, 0},
		{-48, 18, 6},
		{48, -18, 6},
		{-48, -18, 6},
		{0, -5, 5},
		{math.MaxInt64, math.MaxInt64, math.MaxInt64},
		{math.MaxInt64, 1, 1},
	}
	for _, tt := range tests {
		got := GCD(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func testGCDType[T constraints.Integer](t *testing.T) {
	tests := []struct {
		a, b, want T
	}{
		{48, 18, 6},
		{56, 98, 14},
		{50, 100, 50},
		{85, 17, 17},
		{0, 9, 9},
		{13, 0, 13},
	}
	for _, tt := range tests {
		got := GCD(tt.a, tt.b)
		if got != tt.want {
			t.Errorf("GCD(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestGCD_IntegerTypes(t *testing.T) {
	t.Run("int16", testGCDType[int16])
	t.Run("int64", testGCDType[int64])
	t.Run("uint8", testGCDType[uint8])
	t.Run("uint32", testGCDType[uint32])
	t.Run("uint64", testGCDType[uint64])
	t.Run("uintptr", testGCDType[uintptr])
}

func TestGCD_Symmetry(t *testing.T) {
	for a := -25; a <= 25; a++ {
		for b := -25; b <= 25; b++ {
			t.Run(fmt.Sprintf("GCD(%d,%d)", a, b), func(t *testing.T) {
				g := GCD(a, b)
				if g != GCD(b, a) {
					t.Errorf("GCD(%v, %v) = %v, GCD(%v, %v) = %v", a, b, g, b, a, GCD(b, a))
				}
				if g < 0 {
					t.Errorf("GCD(%v, %v) = %v, want non-negative", a, b, g)
				}
				if g != 0 && (a%g != 0 || b%g != 0) {
					t.Errorf("GCD(%v, %v) = %v, does not divide both operands", a, b, g)
				}
			})
		}
	}
}

func BenchmarkGCD(b *testing.B) {
	for i := 0; i < b.N; i++ {
		GCD[int64](123456789, 987654321)
	}
}
