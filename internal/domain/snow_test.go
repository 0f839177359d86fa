package domain_test

import (
	"math"
	"testing"

	"github.com/heynenm/snowreport/internal/domain"
)

func pf(f float64) *float64 { return &f }

func series(vals ...float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		v := vals[i]
		out[i] = &v
	}
	return out
}

func TestTotalsFromHourly_EmptySeries(t *testing.T) {
	got := domain.TotalsFromHourly(nil)
	if got.Snow24hIn != nil || got.Snow72hIn != nil {
		t.Fatalf("expected null totals for empty series, got %+v", got)
	}
}

func TestTotalsFromHourly_ExactInchConversion(t *testing.T) {
	// 2.54 cm over the window is exactly one inch, no rounding involved.
	got := domain.TotalsFromHourly(series(2.54))
	if got.Snow24hIn == nil || *got.Snow24hIn != 1.0 {
		t.Fatalf("24h: want 1.0, got %v", got.Snow24hIn)
	}
	if got.Snow72hIn == nil || *got.Snow72hIn != 1.0 {
		t.Fatalf("72h: want 1.0, got %v", got.Snow72hIn)
	}
}

func TestTotalsFromHourly_Windows(t *testing.T) {
	// 80 hours: first 8 hours carry 1 cm each, the rest zero. The trailing
	// 24h window sums 0 cm; the trailing 72h window catches no snow either
	// (snow fell in hours 0..7, which are outside the last 72).
	vals := make([]float64, 80)
	for i := 0; i < 8; i++ {
		vals[i] = 1.0
	}
	got := domain.TotalsFromHourly(series(vals...))
	if *got.Snow24hIn != 0.0 || *got.Snow72hIn != 0.0 {
		t.Fatalf("old snow leaked into windows: %+v", got)
	}

	// Move the snow into the last 24 hours: both windows must see it.
	vals = make([]float64, 80)
	for i := 70; i < 80; i++ {
		vals[i] = 2.54 // 10 in total
	}
	got = domain.TotalsFromHourly(series(vals...))
	if *got.Snow24hIn != 10.0 {
		t.Fatalf("24h: want 10.0, got %v", *got.Snow24hIn)
	}
	if *got.Snow72hIn != 10.0 {
		t.Fatalf("72h: want 10.0, got %v", *got.Snow72hIn)
	}
}

func TestTotalsFromHourly_ShortSeries(t *testing.T) {
	// 26 hours available: last 24 sum to 10.0 cm, all 26 sum to 15.0 cm.
	vals := make([]float64, 26)
	vals[0] = 2.5
	vals[1] = 2.5
	for i := 2; i < 26; i++ {
		vals[i] = 10.0 / 24.0
	}
	got := domain.TotalsFromHourly(series(vals...))
	if *got.Snow24hIn != 3.9 { // 10/2.54 = 3.937 -> 3.9
		t.Fatalf("24h: want 3.9, got %v", *got.Snow24hIn)
	}
	if *got.Snow72hIn != 5.9 { // 15/2.54 = 5.906 -> 5.9
		t.Fatalf("72h: want 5.9, got %v", *got.Snow72hIn)
	}
}

func TestTotalsFromHourly_RoundingBoundary(t *testing.T) {
	// math.Round is half away from zero: 1.049..in stays 1.0, 1.05in goes 1.1.
	got := domain.TotalsFromHourly(series(1.0499 * 2.54))
	if *got.Snow24hIn != 1.0 {
		t.Fatalf("want 1.0, got %v", *got.Snow24hIn)
	}
	got = domain.TotalsFromHourly(series(1.05 * 2.54))
	if *got.Snow24hIn != 1.1 {
		t.Fatalf("want 1.1, got %v", *got.Snow24hIn)
	}
}

func TestTotalsFromHourly_NonFiniteEntriesIgnored(t *testing.T) {
	in := []*float64{pf(2.54), nil, pf(math.NaN()), pf(math.Inf(1)), pf(math.Inf(-1)), pf(2.54)}
	got := domain.TotalsFromHourly(in)
	if got.Snow24hIn == nil || *got.Snow24hIn != 2.0 {
		t.Fatalf("want 2.0 from the two finite entries, got %v", got.Snow24hIn)
	}
	if math.IsNaN(*got.Snow72hIn) {
		t.Fatalf("NaN propagated into 72h total")
	}
}
