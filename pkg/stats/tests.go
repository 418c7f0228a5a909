package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// TestResult is the outcome of one significance test. Defined is false when
// the statistic does not exist for the input (for example a paired t-test
// with zero difference variance and a nonzero mean difference).
type TestResult struct {
	Statistic   float64 `json:"statistic"`
	PValue      float64 `json:"p_value"`
	Significant bool    `json:"significant"`
	Defined     bool    `json:"defined"`
}

// PairedTTest runs a two-sided paired Student's t-test on equal-length
// samples. Identical samples yield statistic 0 and p-value 1; a degenerate
// zero-variance difference with nonzero mean is reported as undefined.
func PairedTTest(candidate, baseline []float64, alpha float64) TestResult {
	n := len(candidate)
	diffs := make([]float64, n)
	for i := range candidate {
		diffs[i] = candidate[i] - baseline[i]
	}
	meanDiff := stat.Mean(diffs, nil)
	stdDiff := math.Sqrt(stat.Variance(diffs, nil))

	if stdDiff == 0 {
		if meanDiff == 0 {
			return TestResult{Statistic: 0, PValue: 1, Defined: true}
		}
		return TestResult{}
	}

	t := meanDiff / (stdDiff / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}
	p := 2 * dist.CDF(-math.Abs(t))
	return TestResult{
		Statistic:   t,
		PValue:      p,
		Significant: p < alpha,
		Defined:     true,
	}
}

// WilcoxonSignedRank runs a two-sided Wilcoxon signed-rank test on paired
// samples. Zero differences are dropped and tied absolute differences get
// midranks with the standard tie correction to the variance; the p-value uses
// the normal approximation, which is coarse for very small samples. The
// statistic is min(W+, W-). All-zero differences leave the test undefined.
func WilcoxonSignedRank(candidate, baseline []float64, alpha float64) TestResult {
	var diffs []float64
	for i := range candidate {
		if d := candidate[i] - baseline[i]; d != 0 {
			diffs = append(diffs, d)
		}
	}
	nr := len(diffs)
	if nr == 0 {
		return TestResult{}
	}

	abs := make([]float64, nr)
	for i, d := range diffs {
		abs[i] = math.Abs(d)
	}
	ranks, ties := midranks(abs)

	var wPlus, wMinus float64
	for i, d := range diffs {
		if d > 0 {
			wPlus += ranks[i]
		} else {
			wMinus += ranks[i]
		}
	}
	w := math.Min(wPlus, wMinus)

	fn := float64(nr)
	mu := fn * (fn + 1) / 4
	variance := fn*(fn+1)*(2*fn+1)/24 - tieCorrection(ties)/48
	if variance <= 0 {
		return TestResult{}
	}

	z := (w - mu) / math.Sqrt(variance)
	p := 2 * distuv.UnitNormal.CDF(-math.Abs(z))
	return TestResult{
		Statistic:   w,
		PValue:      p,
		Significant: p < alpha,
		Defined:     true,
	}
}

// MannWhitneyU runs a two-sided Mann-Whitney U test treating the samples as
// independent groups. Pooled ranks use midranks for ties; the p-value uses
// the tie-corrected, continuity-corrected normal approximation. The statistic
// is U for the first (candidate) group.
func MannWhitneyU(candidate, baseline []float64, alpha float64) TestResult {
	n1 := float64(len(candidate))
	n2 := float64(len(baseline))
	if n1 == 0 || n2 == 0 {
		return TestResult{}
	}

	pooled := make([]float64, 0, len(candidate)+len(baseline))
	pooled = append(pooled, candidate...)
	pooled = append(pooled, baseline...)
	ranks, ties := midranks(pooled)

	var r1 float64
	for i := range candidate {
		r1 += ranks[i]
	}
	u1 := r1 - n1*(n1+1)/2

	total := n1 + n2
	mu := n1 * n2 / 2
	variance := n1 * n2 / 12 * ((total + 1) - tieCorrection(ties)/(total*(total-1)))
	if variance <= 0 {
		return TestResult{}
	}

	// Continuity correction toward the mean.
	num := math.Abs(u1-mu) - 0.5
	if num < 0 {
		num = 0
	}
	z := num / math.Sqrt(variance)
	p := 2 * distuv.UnitNormal.CDF(-z)
	if p > 1 {
		p = 1
	}
	return TestResult{
		Statistic:   u1,
		PValue:      p,
		Significant: p < alpha,
		Defined:     true,
	}
}

// midranks assigns 1-based ranks to values, averaging ranks across ties, and
// returns the size of each tie group.
func midranks(values []float64) (ranks []float64, ties []int) {
	n := len(values)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return values[order[i]] < values[order[j]] })

	ranks = make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[order[j+1]] == values[order[i]] {
			j++
		}
		// Positions i..j share the average rank.
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[order[k]] = avg
		}
		ties = append(ties, j-i+1)
		i = j + 1
	}
	return ranks, ties
}

// tieCorrection is sum(t^3 - t) over tie-group sizes.
func tieCorrection(ties []int) float64 {
	var sum float64
	for _, t := range ties {
		ft := float64(t)
		sum += ft*ft*ft - ft
	}
	return sum
}
