// Package stats implements the descriptive and paired-comparison statistics
// behind the analyzer report. Percentiles use linear interpolation between
// order statistics, not nearest rank; historical reports depend on this.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Percentile computes the p-th percentile (0-100) of values by linear
// interpolation between order statistics. Returns NaN for empty input.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	idx := (p / 100) * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := lower + 1
	if upper > len(sorted)-1 {
		upper = len(sorted) - 1
	}
	weight := idx - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Summary holds the quartile summary of one sample.
type Summary struct {
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

// Summarize computes the quartile summary, or nil for an empty sample.
func Summarize(values []float64) *Summary {
	if len(values) == 0 {
		return nil
	}
	return &Summary{
		Avg:    stat.Mean(values, nil),
		Median: Percentile(values, 50),
		P25:    Percentile(values, 25),
		P75:    Percentile(values, 75),
	}
}

// GroupStats holds per-group sample statistics with a Student-t confidence
// interval for the mean.
type GroupStats struct {
	N          int     `json:"n"`
	Mean       float64 `json:"mean"`
	Std        float64 `json:"std"`
	Variance   float64 `json:"variance"`
	StdErr     float64 `json:"std_err"`
	CILower    float64 `json:"ci_lower"`
	CIUpper    float64 `json:"ci_upper"`
	CILevel    float64 `json:"ci_level"`
	CoV        float64 `json:"cov"`
	CoVDefined bool    `json:"cov_defined"`
}

// Describe computes GroupStats with a two-sided (1-alpha) CI. Variance uses
// Bessel's correction. Returns nil when n < 2, where the interval is
// undefined.
func Describe(values []float64, alpha float64) *GroupStats {
	n := len(values)
	if n < 2 {
		return nil
	}
	mean := stat.Mean(values, nil)
	variance := stat.Variance(values, nil)
	std := math.Sqrt(variance)
	se := std / math.Sqrt(float64(n))
	tCrit := tCritical(alpha, float64(n-1))

	g := &GroupStats{
		N:        n,
		Mean:     mean,
		Std:      std,
		Variance: variance,
		StdErr:   se,
		CILower:  mean - tCrit*se,
		CIUpper:  mean + tCrit*se,
		CILevel:  (1 - alpha) * 100,
	}
	if mean != 0 {
		g.CoV = std / mean * 100
		g.CoVDefined = true
	}
	return g
}

// tCritical is the two-sided Student-t critical value at the given alpha and
// degrees of freedom.
func tCritical(alpha, df float64) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return dist.Quantile(1 - alpha/2)
}
