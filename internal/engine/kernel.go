package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

// Numeric kernel shared by every pipeline. All functions are pure and keep
// full float64 precision; rounding happens once, on the final figure.

// DailyAverage returns the arithmetic mean of the series.
func DailyAverage(series []float64) (float64, error) {
	if len(series) == 0 {
		return 0, emptySeriesErrorf("cannot average an empty series")
	}
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series)), nil
}

// UsageVariance returns (actual-standard)/standard per element.
func UsageVariance(actual, standard []float64) ([]float64, error) {
	if len(actual) != len(standard) {
		return nil, lengthMismatchErrorf("actual has %d periods, standard has %d", len(actual), len(standard))
	}
	out := make([]float64, len(actual))
	for i := range actual {
		if standard[i] == 0 {
			return nil, divisionByZeroErrorf("standard usage is zero at period %d", i)
		}
		out[i] = (actual[i] - standard[i]) / standard[i]
	}
	return out, nil
}

// MarketLogShock returns ln(p_t/p_{t-1}) for each adjacent pair. Output
// length is input length minus one.
func MarketLogShock(prices []float64) ([]float64, error) {
	if len(prices) == 0 {
		return nil, emptySeriesErrorf("price series is empty")
	}
	for i, p := range prices {
		if p <= 0 {
			return nil, invalidDomainErrorf("price at index %d is %v, logarithm requires positive prices", i, p)
		}
	}
	out := make([]float64, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		out = append(out, math.Log(prices[i]/prices[i-1]))
	}
	return out, nil
}

// CAPMBeta returns cov(asset, market)/var(market) over equal-length return
// series. Sample statistics with n-1 denominators.
func CAPMBeta(asset, market []float64) (float64, error) {
	if len(asset) != len(market) {
		return 0, lengthMismatchErrorf("asset returns have %d points, market returns have %d", len(asset), len(market))
	}
	if len(asset) < 2 {
		return 0, emptySeriesErrorf("beta estimation needs at least two return points, got %d", len(asset))
	}
	marketVar := sampleVariance(market)
	if marketVar == 0 {
		return 0, divisionByZeroErrorf("market return variance is zero")
	}
	return sampleCovariance(asset, market) / marketVar, nil
}

// ApplyCap clamps v into [lower, upper]. Capping is always observable via
// the returned flag, never silent.
func ApplyCap(v, lower, upper float64) (float64, bool) {
	if v < lower {
		return lower, true
	}
	if v > upper {
		return upper, true
	}
	return v, false
}

// RoundMoney rounds a final monetary figure to two places, half to even.
func RoundMoney(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).RoundBank(2).Float64()
	return f
}

func mean(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum / float64(len(series))
}

func sampleVariance(series []float64) float64 {
	m := mean(series)
	var sum float64
	for _, v := range series {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(series)-1)
}

func sampleCovariance(a, b []float64) float64 {
	ma, mb := mean(a), mean(b)
	var sum float64
	for i := range a {
		sum += (a[i] - ma) * (b[i] - mb)
	}
	return sum / float64(len(a)-1)
}

// isFlatSeries reports whether every value equals the first, meaning the
// series carries zero variance.
func isFlatSeries(series []float64) bool {
	for _, v := range series {
		if v != series[0] {
			return false
		}
	}
	return true
}

func sumSeries(series []float64) float64 {
	var sum float64
	for _, v := range series {
		sum += v
	}
	return sum
}

// safeLogRatio floors both terms at a small epsilon before taking the log,
// for pipelines whose inputs may legitimately touch zero.
func safeLogRatio(numerator, denominator float64) float64 {
	const eps = 1e-9
	if numerator <= eps {
		numerator = eps
	}
	if denominator <= eps {
		denominator = eps
	}
	return math.Log(numerator / denominator)
}
