package impact

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestQuantile(t *testing.T) {
	series := []float64{1, 2, 3, 4}
	cases := []struct {
		q, want float64
	}{
		{0, 1},
		{1, 4},
		{0.5, 2.5},
		{0.25, 1.75},
		{0.05, 1.15},
		{0.95, 3.85},
	}
	for _, c := range cases {
		if got := quantile(series, c.q); !almost(got, c.want) {
			t.Errorf("quantile(%v): want %v, got %v", c.q, c.want, got)
		}
	}

	if got := quantile(nil, 0.5); got != 0 {
		t.Errorf("empty series: want 0, got %v", got)
	}
	if got := quantile([]float64{7}, 0.95); got != 7 {
		t.Errorf("single point: want 7, got %v", got)
	}
}

func TestWinsorBounds(t *testing.T) {
	b := winsorBounds([]float64{4, 1, 3, 2}, 0.05)
	if !almost(b.Lo, 1.15) || !almost(b.Hi, 3.85) {
		t.Errorf("want [1.15, 3.85], got [%v, %v]", b.Lo, b.Hi)
	}

	// Empty (and all-non-finite) series default to [0, 1].
	if b := winsorBounds(nil, 0.05); b.Lo != 0 || b.Hi != 1 {
		t.Errorf("empty: want [0, 1], got [%v, %v]", b.Lo, b.Hi)
	}
	if b := winsorBounds([]float64{math.NaN(), math.Inf(1)}, 0.05); b.Lo != 0 || b.Hi != 1 {
		t.Errorf("non-finite: want [0, 1], got [%v, %v]", b.Lo, b.Hi)
	}

	// A single point degenerates to a zero-width interval.
	if b := winsorBounds([]float64{5}, 0.05); b.Lo != 5 || b.Hi != 5 {
		t.Errorf("single point: want [5, 5], got [%v, %v]", b.Lo, b.Hi)
	}
}

func TestWinsorize(t *testing.T) {
	if got := winsorize(10, 1, 4); got != 4 {
		t.Errorf("above hi: want 4, got %v", got)
	}
	if got := winsorize(-3, 1, 4); got != 1 {
		t.Errorf("below lo: want 1, got %v", got)
	}
	if got := winsorize(math.NaN(), 1, 4); got != 1 {
		t.Errorf("NaN collapses to lo: want 1, got %v", got)
	}
}

func vectorWith(name string, kda float64) *playerVector {
	raw := make(map[string]float64, len(metricKeys))
	for _, k := range metricKeys {
		raw[k] = 0
	}
	raw[MetricKDA] = kda
	return &playerVector{Name: name, Games: 1, Raw: raw}
}

func TestNormalizeFlatPopulation(t *testing.T) {
	// Every player identical: no signal, everything maps to 0.5.
	pop := []*playerVector{vectorWith("a", 3), vectorWith("b", 3), vectorWith("c", 3)}
	ctx := buildNormContext(pop, 0.05)

	for _, k := range metricKeys {
		if got := ctx.Normalize(k, pop[0].Raw[k], false); got != 0.5 {
			t.Errorf("flat %s: want 0.5, got %v", k, got)
		}
	}
}

func TestNormalizeBoundsAndInvert(t *testing.T) {
	pop := []*playerVector{vectorWith("a", 2), vectorWith("b", 4)}
	ctx := buildNormContext(pop, 0.05)

	lo := ctx.Normalize(MetricKDA, 2, false)
	hi := ctx.Normalize(MetricKDA, 4, false)
	if lo != 0 || hi != 1 {
		t.Errorf("population extremes: want 0 and 1, got %v and %v", lo, hi)
	}

	// Outliers clamp to the winsorized scale instead of stretching it.
	if got := ctx.Normalize(MetricKDA, 100, false); got != 1 {
		t.Errorf("outlier high: want 1, got %v", got)
	}
	if got := ctx.Normalize(MetricKDA, -100, false); got != 0 {
		t.Errorf("outlier low: want 0, got %v", got)
	}

	if got := ctx.Normalize(MetricKDA, 4, true); got != 0 {
		t.Errorf("inverted high: want 0, got %v", got)
	}

	// An unknown metric normalizes against the [0, 1] default.
	if got := ctx.Normalize("nope", 0.3, false); !almost(got, 0.3) {
		t.Errorf("unknown metric: want 0.3, got %v", got)
	}
}
