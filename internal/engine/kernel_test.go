package engine

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailyAverage(t *testing.T) {
	got, err := DailyAverage([]float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 2.5) {
		t.Fatalf("expected 2.5, got %v", got)
	}
}

func TestDailyAverageEmpty(t *testing.T) {
	_, err := DailyAverage(nil)
	if !IsKind(err, KindEmptySeries) {
		t.Fatalf("expected EMPTY_SERIES, got %v", err)
	}
}

func TestUsageVariance(t *testing.T) {
	got, err := UsageVariance([]float64{90, 100, 120}, []float64{100, 100, 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{-0.1, 0, 0.2}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("variance[%d]: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestUsageVarianceLengthMismatch(t *testing.T) {
	_, err := UsageVariance([]float64{1, 2}, []float64{1})
	if !IsKind(err, KindLengthMismatch) {
		t.Fatalf("expected LENGTH_MISMATCH, got %v", err)
	}
}

func TestUsageVarianceZeroStandard(t *testing.T) {
	_, err := UsageVariance([]float64{1, 2}, []float64{1, 0})
	if !IsKind(err, KindDivisionByZero) {
		t.Fatalf("expected DIVISION_BY_ZERO, got %v", err)
	}
}

func TestMarketLogShockLength(t *testing.T) {
	shocks, err := MarketLogShock([]float64{100, 102, 101, 105})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(shocks) != 3 {
		t.Fatalf("expected 3 shocks, got %d", len(shocks))
	}
}

func TestMarketLogShockRoundTrip(t *testing.T) {
	prices := []float64{100, 102, 101, 105, 98.5}
	shocks, err := MarketLogShock(prices)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rebuilt := prices[0]
	for i, shock := range shocks {
		rebuilt *= math.Exp(shock)
		if math.Abs(rebuilt-prices[i+1]) > 1e-9 {
			t.Fatalf("round trip diverged at %d: expected %v, got %v", i+1, prices[i+1], rebuilt)
		}
	}
}

func TestMarketLogShockNonPositive(t *testing.T) {
	_, err := MarketLogShock([]float64{100, 0, 105})
	if !IsKind(err, KindInvalidDomain) {
		t.Fatalf("expected INVALID_DOMAIN, got %v", err)
	}
}

func TestCAPMBeta(t *testing.T) {
	// Asset moves at half the market's amplitude, beta is 0.5.
	got, err := CAPMBeta([]float64{1, 2, 3}, []float64{2, 4, 6})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !almostEqual(got, 0.5) {
		t.Fatalf("expected 0.5, got %v", got)
	}
}

func TestCAPMBetaLengthMismatch(t *testing.T) {
	_, err := CAPMBeta([]float64{1, 2}, []float64{1, 2, 3})
	if !IsKind(err, KindLengthMismatch) {
		t.Fatalf("expected LENGTH_MISMATCH, got %v", err)
	}
}

func TestCAPMBetaZeroMarketVariance(t *testing.T) {
	_, err := CAPMBeta([]float64{1, 2, 3}, []float64{5, 5, 5})
	if !IsKind(err, KindDivisionByZero) {
		t.Fatalf("expected DIVISION_BY_ZERO, got %v", err)
	}
}

func TestApplyCap(t *testing.T) {
	cases := []struct {
		v, lo, hi  float64
		want       float64
		wantCapped bool
	}{
		{5, 0, 10, 5, false},
		{-1, 0, 10, 0, true},
		{11, 0, 10, 10, true},
		{0, 0, 10, 0, false},
		{10, 0, 10, 10, false},
	}
	for _, tc := range cases {
		got, capped := ApplyCap(tc.v, tc.lo, tc.hi)
		if got != tc.want || capped != tc.wantCapped {
			t.Fatalf("ApplyCap(%v, %v, %v) = (%v, %v), expected (%v, %v)",
				tc.v, tc.lo, tc.hi, got, capped, tc.want, tc.wantCapped)
		}
		if got < tc.lo || got > tc.hi {
			t.Fatalf("ApplyCap result %v outside [%v, %v]", got, tc.lo, tc.hi)
		}
	}
}

func TestRoundMoneyHalfToEven(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{2.345, 2.34},
		{2.355, 2.36},
		{2.125, 2.12},
		{-2.345, -2.34},
		{100, 100},
	}
	for _, tc := range cases {
		if got := RoundMoney(tc.in); got != tc.want {
			t.Fatalf("RoundMoney(%v) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}
