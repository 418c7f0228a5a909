package analysis

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
)

func TestSummarizeEmpty(t *testing.T) {
	ov := Summarize(nil)
	require.Equal(t, 0, ov.Total)
	require.Nil(t, ov.Example)
	require.Empty(t, ov.Keys)
}

func TestSummarize(t *testing.T) {
	records := []record.Record{
		rec(map[string]any{
			"id":       "t1",
			"input":    "question one",
			"passAtK":  0.5,
			"k":        3.0,
			"score":    map[string]any{"pass": true, "score": 1.0},
			"trials":   []any{map[string]any{}, map[string]any{}},
			"metadata": map[string]any{"agent": "droid"},
			"timing":   map[string]any{"total": 10.0},
		}),
		rec(map[string]any{
			"id":       "t2",
			"score":    map[string]any{"pass": false, "score": 0.0},
			"trials":   []any{map[string]any{}},
			"metadata": map[string]any{"agent": "droid"},
			"timing":   map[string]any{"total": 20.0},
		}),
		rec(map[string]any{"id": "t3"}),
	}

	ov := Summarize(records)
	require.Equal(t, 3, ov.Total)

	require.NotNil(t, ov.Example)
	require.Equal(t, "t1", ov.Example.ID)
	require.Equal(t, "question one", ov.Example.Input)
	require.NotNil(t, ov.Example.PassAtK)
	require.Equal(t, 0.5, *ov.Example.PassAtK)
	require.NotNil(t, ov.Example.K)
	require.Equal(t, 3.0, *ov.Example.K)

	// Keys come from the first record, deduplicated and sorted.
	require.Equal(t, []string{
		"id", "input", "k", "metadata", "metadata.agent", "passAtK",
		"score", "score.pass", "score.score", "timing", "timing.total", "trials",
	}, ov.Keys)

	require.Equal(t, 2, ov.ScoredCount)
	require.Equal(t, 1, ov.PassCount)
	require.InDelta(t, 0.5, ov.PassRate(), 1e-12)
	require.InDelta(t, 0.5, ov.AvgScore, 1e-12)

	require.Equal(t, 2, ov.TrialRecords)
	require.Equal(t, 3, ov.TotalTrials)
	require.InDelta(t, 1.5, ov.AvgTrials(), 1e-12)

	require.Equal(t, map[string]int{"droid": 2}, ov.Agents)

	require.Equal(t, 2, ov.TimedCount)
	require.InDelta(t, 15.0, ov.AvgTotalTime, 1e-12)
}
