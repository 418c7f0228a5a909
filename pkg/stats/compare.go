package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch means the two aligned samples differ in length; the
// comparison is skipped rather than attempted.
var ErrLengthMismatch = errors.New("stats: aligned samples have different lengths")

// ErrInsufficientData means fewer than two pairs are available, where the
// tests below are degenerate.
var ErrInsufficientData = errors.New("stats: need at least two pairs")

// MeanDifference describes the paired candidate-baseline difference with a
// Student-t confidence interval.
type MeanDifference struct {
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	StdErr  float64 `json:"std_err"`
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
	CILevel float64 `json:"ci_level"`
}

// EffectSize is Cohen's d for paired samples. Undefined when the difference
// std is zero with a nonzero mean difference.
type EffectSize struct {
	CohensD        float64 `json:"cohens_d"`
	Interpretation string  `json:"interpretation"`
	Defined        bool    `json:"defined"`
}

// HeadToHead counts per-pair outcomes.
type HeadToHead struct {
	N             int `json:"n"`
	CandidateWins int `json:"candidate_wins"`
	BaselineWins  int `json:"baseline_wins"`
	Ties          int `json:"ties"`
}

// WinMargins holds the average winning margin per side, defined only when
// that side won at least once.
type WinMargins struct {
	Candidate        float64 `json:"candidate"`
	CandidateDefined bool    `json:"candidate_defined"`
	Baseline         float64 `json:"baseline"`
	BaselineDefined  bool    `json:"baseline_defined"`
}

// Consistency compares group standard deviations. RelativePct is how much
// lower the leader's std is, as a percentage of the higher std.
type Consistency struct {
	Leader      string  `json:"leader,omitempty"`
	RelativePct float64 `json:"relative_pct"`
	Equal       bool    `json:"equal"`
}

// Comparison is the full paired-comparison result for one aligned sample
// pair. Wilcoxon and the paired t-test are the paired view; Mann-Whitney is a
// deliberate secondary view that treats the groups as independent.
type Comparison struct {
	N           int            `json:"n"`
	Alpha       float64        `json:"alpha"`
	Candidate   GroupStats     `json:"candidate"`
	Baseline    GroupStats     `json:"baseline"`
	Diff        MeanDifference `json:"mean_difference"`
	Effect      EffectSize     `json:"effect_size"`
	PairedT     TestResult     `json:"paired_t"`
	Wilcoxon    TestResult     `json:"wilcoxon"`
	MannWhitney TestResult     `json:"mannwhitney"`
	HeadToHead  HeadToHead     `json:"head_to_head"`
	Margins     WinMargins     `json:"win_margins"`
	Consistency Consistency    `json:"consistency"`
}

// Compare runs the paired comparison over two aligned samples. Candidate and
// baseline must be position-aligned on the same identifiers.
func Compare(candidate, baseline []float64, alpha float64) (*Comparison, error) {
	if len(candidate) != len(baseline) {
		return nil, ErrLengthMismatch
	}
	n := len(candidate)
	if n < 2 {
		return nil, ErrInsufficientData
	}

	diffs := make([]float64, n)
	for i := range candidate {
		diffs[i] = candidate[i] - baseline[i]
	}

	candStats := Describe(candidate, alpha)
	baseStats := Describe(baseline, alpha)

	meanDiff := stat.Mean(diffs, nil)
	stdDiff := math.Sqrt(stat.Variance(diffs, nil))
	seDiff := stdDiff / math.Sqrt(float64(n))
	tCrit := tCritical(alpha, float64(n-1))

	cmp := &Comparison{
		N:         n,
		Alpha:     alpha,
		Candidate: *candStats,
		Baseline:  *baseStats,
		Diff: MeanDifference{
			Mean:    meanDiff,
			Std:     stdDiff,
			StdErr:  seDiff,
			CILower: meanDiff - tCrit*seDiff,
			CIUpper: meanDiff + tCrit*seDiff,
			CILevel: (1 - alpha) * 100,
		},
		Effect:      effectSize(meanDiff, stdDiff),
		PairedT:     PairedTTest(candidate, baseline, alpha),
		Wilcoxon:    WilcoxonSignedRank(candidate, baseline, alpha),
		MannWhitney: MannWhitneyU(candidate, baseline, alpha),
		HeadToHead:  headToHead(diffs),
		Margins:     winMargins(diffs),
		Consistency: consistency(candStats.Std, baseStats.Std),
	}
	return cmp, nil
}

func effectSize(meanDiff, stdDiff float64) EffectSize {
	if stdDiff == 0 {
		if meanDiff == 0 {
			return EffectSize{CohensD: 0, Interpretation: interpretEffectSize(0), Defined: true}
		}
		return EffectSize{}
	}
	d := meanDiff / stdDiff
	return EffectSize{CohensD: d, Interpretation: interpretEffectSize(math.Abs(d)), Defined: true}
}

func interpretEffectSize(d float64) string {
	switch {
	case d < 0.2:
		return "negligible"
	case d < 0.5:
		return "small"
	case d < 0.8:
		return "medium"
	default:
		return "large"
	}
}

func headToHead(diffs []float64) HeadToHead {
	h := HeadToHead{N: len(diffs)}
	for _, d := range diffs {
		switch {
		case d > 0:
			h.CandidateWins++
		case d < 0:
			h.BaselineWins++
		default:
			h.Ties++
		}
	}
	return h
}

func winMargins(diffs []float64) WinMargins {
	var m WinMargins
	var candSum, baseSum float64
	var candCount, baseCount int
	for _, d := range diffs {
		if d > 0 {
			candSum += d
			candCount++
		} else if d < 0 {
			baseSum += -d
			baseCount++
		}
	}
	if candCount > 0 {
		m.Candidate = candSum / float64(candCount)
		m.CandidateDefined = true
	}
	if baseCount > 0 {
		m.Baseline = baseSum / float64(baseCount)
		m.BaselineDefined = true
	}
	return m
}

func consistency(candStd, baseStd float64) Consistency {
	switch {
	case candStd < baseStd:
		return Consistency{Leader: "candidate", RelativePct: (baseStd - candStd) / baseStd * 100}
	case baseStd < candStd:
		return Consistency{Leader: "baseline", RelativePct: (candStd - baseStd) / candStd * 100}
	default:
		return Consistency{Equal: true}
	}
}
