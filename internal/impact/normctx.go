package impact

import (
	"math"
	"sort"
)

// winsorInterval is the symmetric outlier clamp for one metric: the p-th and
// (1-p)-th population quantiles.
type winsorInterval struct {
	Lo, Hi float64
}

// scaleRange is the min/max of one metric across the winsorized population.
type scaleRange struct {
	Min, Max float64
}

// normContext freezes what counts as low/high for every metric of one
// population. It is built once per population and must be reused verbatim
// when scoring any out-of-population vector, or scores stop being comparable.
type normContext struct {
	bounds map[string]winsorInterval
	scale  map[string]scaleRange
}

// buildNormContext derives the per-metric winsor bounds and scaling ranges
// from the given population at winsorization percentile p.
func buildNormContext(players []*playerVector, p float64) *normContext {
	ctx := &normContext{
		bounds: make(map[string]winsorInterval, len(metricKeys)),
		scale:  make(map[string]scaleRange, len(metricKeys)),
	}
	series := make([]float64, 0, len(players))
	for _, k := range metricKeys {
		series = series[:0]
		for _, pv := range players {
			series = append(series, pv.Raw[k])
		}
		b := winsorBounds(series, p)
		ctx.bounds[k] = b
		ctx.scale[k] = minmaxWinsorized(series, b)
	}
	return ctx
}

// Normalize maps a raw metric value into [0, 1] via winsorize-then-min-max.
// A flat population carries no signal and maps to 0.5. invert flips the scale
// for lower-is-better metrics.
func (c *normContext) Normalize(metric string, v float64, invert bool) float64 {
	b, ok := c.bounds[metric]
	if !ok {
		b = winsorInterval{Lo: 0, Hi: 1}
	}
	s, ok := c.scale[metric]
	if !ok {
		s = scaleRange{Min: 0, Max: 1}
	}

	w := clamp(winsorize(v, b.Lo, b.Hi), s.Min, s.Max)
	var x float64
	if s.Max == s.Min {
		x = 0.5
	} else {
		x = clamp((w-s.Min)/(s.Max-s.Min), 0, 1)
	}
	if invert {
		return 1 - x
	}
	return x
}

// quantile interpolates linearly between adjacent order statistics of a
// sorted series (the R-7 definition).
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	pos := float64(len(sorted)-1) * q
	base := int(math.Floor(pos))
	rest := pos - float64(base)
	if base+1 >= len(sorted) {
		return sorted[base]
	}
	return sorted[base] + rest*(sorted[base+1]-sorted[base])
}

// winsorBounds returns the [p, 1-p] quantile interval of the series. Empty
// input defaults to [0, 1].
func winsorBounds(series []float64, p float64) winsorInterval {
	v := make([]float64, 0, len(series))
	for _, x := range series {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			v = append(v, x)
		}
	}
	if len(v) == 0 {
		return winsorInterval{Lo: 0, Hi: 1}
	}
	sort.Float64s(v)
	return winsorInterval{Lo: quantile(v, p), Hi: quantile(v, 1-p)}
}

// winsorize clamps a value into the winsor interval; a non-finite value
// collapses to the lower bound.
func winsorize(x, lo, hi float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return lo
	}
	return clamp(x, lo, hi)
}

// minmaxWinsorized is the min/max of the series after winsorizing every value.
// Empty input defaults to [0, 1].
func minmaxWinsorized(series []float64, b winsorInterval) scaleRange {
	first := true
	var lo, hi float64
	for _, x := range series {
		w := winsorize(x, b.Lo, b.Hi)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			continue
		}
		if first {
			lo, hi = w, w
			first = false
			continue
		}
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	if first {
		return scaleRange{Min: 0, Max: 1}
	}
	return scaleRange{Min: lo, Max: hi}
}
