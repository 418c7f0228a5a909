package stats

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairedTTest(t *testing.T) {
	candidate := []float64{1, 2, 3, 4, 5}
	baseline := []float64{0, 0, 0, 0, 0}

	result := PairedTTest(candidate, baseline, 0.05)
	require.True(t, result.Defined)
	require.InDelta(t, 4.2426, result.Statistic, 1e-3)
	require.Greater(t, result.PValue, 0.01)
	require.Less(t, result.PValue, 0.02)
	require.True(t, result.Significant)
}

func TestPairedTTestIdentical(t *testing.T) {
	values := []float64{0.5, 0.6, 0.7}
	result := PairedTTest(values, values, 0.05)
	require.True(t, result.Defined)
	require.Equal(t, 0.0, result.Statistic)
	require.Equal(t, 1.0, result.PValue)
	require.False(t, result.Significant)
}

func TestPairedTTestConstantShift(t *testing.T) {
	// Zero variance in differences with a nonzero mean difference has no
	// finite t statistic.
	candidate := []float64{0.9, 0.9, 0.9}
	baseline := []float64{0.5, 0.5, 0.5}
	result := PairedTTest(candidate, baseline, 0.05)
	require.False(t, result.Defined)
}

func TestWilcoxonAllPositive(t *testing.T) {
	candidate := make([]float64, 10)
	baseline := make([]float64, 10)
	for i := range candidate {
		baseline[i] = float64(i)
		candidate[i] = float64(i) + float64(i+1)
	}

	result := WilcoxonSignedRank(candidate, baseline, 0.05)
	require.True(t, result.Defined)
	require.Equal(t, 0.0, result.Statistic)
	require.Less(t, result.PValue, 0.01)
	require.True(t, result.Significant)
}

func TestWilcoxonSymmetric(t *testing.T) {
	candidate := []float64{1, 0, 2, 0}
	baseline := []float64{0, 1, 0, 2}

	result := WilcoxonSignedRank(candidate, baseline, 0.05)
	require.True(t, result.Defined)
	// |d| = {1,1,2,2} with midranks {1.5,1.5,3.5,3.5}; both signed sums are 5.
	require.InDelta(t, 5, result.Statistic, 1e-12)
	require.InDelta(t, 1, result.PValue, 1e-9)
	require.False(t, result.Significant)
}

func TestWilcoxonAllZeroDifferences(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3}
	result := WilcoxonSignedRank(values, values, 0.05)
	require.False(t, result.Defined)
}

func TestMannWhitneySeparatedGroups(t *testing.T) {
	candidate := []float64{1, 2, 3}
	baseline := []float64{4, 5, 6}

	result := MannWhitneyU(candidate, baseline, 0.05)
	require.True(t, result.Defined)
	require.Equal(t, 0.0, result.Statistic)
	// Normal approximation with continuity correction: z = 4/sqrt(5.25).
	require.InDelta(t, 0.0809, result.PValue, 1e-3)
	require.False(t, result.Significant)
}

func TestMannWhitneyIdenticalGroups(t *testing.T) {
	values := []float64{1, 2, 3, 4}
	result := MannWhitneyU(values, values, 0.05)
	require.True(t, result.Defined)
	// U equals its mean n1*n2/2 under perfect overlap.
	require.InDelta(t, 8, result.Statistic, 1e-12)
	require.InDelta(t, 1, result.PValue, 1e-9)
}

func TestMannWhitneyAllTied(t *testing.T) {
	candidate := []float64{5, 5}
	baseline := []float64{5, 5}
	// Variance collapses to zero when every pooled value ties.
	result := MannWhitneyU(candidate, baseline, 0.05)
	require.False(t, result.Defined)
}

func TestMidranks(t *testing.T) {
	ranks, ties := midranks([]float64{10, 20, 20, 30})
	require.Equal(t, []float64{1, 2.5, 2.5, 4}, ranks)
	require.Equal(t, []int{1, 2, 1}, ties)
}
