package domain

import "math"

const cmPerInch = 2.54

// TotalsFromHourly computes the trailing 24h and 72h snowfall totals from an
// hourly series in centimeters, ordered oldest to newest and ending at the
// most recent modeled hour. The caller must already have truncated the slice
// to the overlapping length of the provider's time and snowfall arrays.
//
// An empty series yields null totals (no usable data). Nil, NaN, and ±Inf
// entries contribute zero so upstream gaps never propagate into the output.
// Totals are converted to inches and rounded to one decimal, half away
// from zero.
func TotalsFromHourly(snowfallCm []*float64) SnowTotals {
	n := len(snowfallCm)
	if n == 0 {
		return SnowTotals{}
	}
	t24 := roundInches(sumCm(snowfallCm[n-min(24, n):]))
	t72 := roundInches(sumCm(snowfallCm[n-min(72, n):]))
	return SnowTotals{Snow24hIn: &t24, Snow72hIn: &t72}
}

func sumCm(window []*float64) float64 {
	var sum float64
	for _, v := range window {
		if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
			continue
		}
		sum += *v
	}
	return sum
}

// roundInches converts centimeters to inches rounded to one decimal.
// math.Round rounds half away from zero, matching the static file's values.
func roundInches(cm float64) float64 {
	return math.Round(cm/cmPerInch*10) / 10
}
