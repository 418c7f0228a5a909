package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/stats"
)

func sampleReport(t *testing.T) *analysis.Report {
	t.Helper()

	candidate := []record.Record{
		{"id": "a", "passAtK": 0.9, "input": "q1"},
		{"id": "b", "passAtK": 0.7},
		{"id": "c", "passAtK": 0.4},
	}
	baseline := []record.Record{
		{"id": "a", "passAtK": 0.5},
		{"id": "b", "passAtK": 0.8},
		{"id": "c", "passAtK": 0.4},
	}

	aligned := analysis.Align(candidate, baseline, "passAtK")
	cmp, err := stats.Compare(aligned.Candidate, aligned.Baseline, 0.05)
	require.NoError(t, err)

	return &analysis.Report{
		CandidateLabel:    "You",
		BaselineLabel:     "Builtin",
		CandidatePath:     "you.jsonl",
		BaselinePath:      "builtin.jsonl",
		Metric:            "passAtK",
		CandidateOverview: analysis.Summarize(candidate),
		BaselineOverview:  analysis.Summarize(baseline),
		MatchingIDs:       aligned.MatchingIDs,
		CandidateBetter:   aligned.CandidateBetter,
		AlignedPairs:      len(aligned.IDs),
		CandidateSummary:  stats.Summarize(aligned.Candidate),
		BaselineSummary:   stats.Summarize(aligned.Baseline),
		Comparison:        cmp,
	}
}

func TestTextReporterSections(t *testing.T) {
	var buf bytes.Buffer
	err := TextReporter{Writer: &buf}.Report(sampleReport(t))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "YOU (you.jsonl)")
	require.Contains(t, out, "BUILTIN (builtin.jsonl)")
	require.Contains(t, out, "Total instances: 3")
	require.Contains(t, out, "Keys in record structure:")
	require.Contains(t, out, "  - passAtK")
	require.Contains(t, out, "Example record (first one):")
	require.Contains(t, out, "COMPARISON: You vs Builtin (passAtK)")
	require.Contains(t, out, "Records with matching IDs: 3")
	require.Contains(t, out, "Records where You > Builtin: 1/3")
	require.Contains(t, out, "passAtK Statistics")
	require.Contains(t, out, "Individual Group Statistics")
	require.Contains(t, out, "Consistency Analysis:")
	require.Contains(t, out, "Mean Difference Analysis")
	require.Contains(t, out, "Head-to-Head Comparison Breakdown")
	require.Contains(t, out, "You > Builtin: 1/3 (33.3%)")
	require.Contains(t, out, "Builtin > You: 1/3 (33.3%)")
	require.Contains(t, out, "Ties (You == Builtin): 1/3 (33.3%)")
	require.Contains(t, out, "Why Average Differs from Head-to-Head Wins")
	require.Contains(t, out, "Statistical Significance Tests")
	require.Contains(t, out, "Paired t-test:")
	require.Contains(t, out, "Wilcoxon signed-rank test (non-parametric):")
	require.Contains(t, out, "Mann-Whitney U test (non-parametric, unpaired view):")
	require.Contains(t, out, "Cohen's d:")
}

func TestTextReporterSkipsComparisonSections(t *testing.T) {
	report := sampleReport(t)
	report.Comparison = nil
	report.CandidateSummary = nil
	report.BaselineSummary = nil

	var buf bytes.Buffer
	require.NoError(t, TextReporter{Writer: &buf}.Report(report))

	out := buf.String()
	require.Contains(t, out, "COMPARISON: You vs Builtin (passAtK)")
	require.NotContains(t, out, "Individual Group Statistics")
	require.NotContains(t, out, "Statistical Significance Tests")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSONReporter{Writer: &buf, Pretty: true}.Report(sampleReport(t)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "You", decoded["candidate_label"])
	require.Equal(t, "passAtK", decoded["metric"])

	cmp, ok := decoded["comparison"].(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 3, cmp["n"])
}

func TestMarkdownReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, MarkdownReporter{Writer: &buf}.Report(sampleReport(t)))

	out := buf.String()
	require.Contains(t, out, "# Comparison Report")
	require.Contains(t, out, "## passAtK Statistics")
	require.Contains(t, out, "## Paired Comparison (n=3)")
	require.Contains(t, out, "| Paired t-test |")
	require.Contains(t, out, "| Mann-Whitney U (unpaired view) |")
}

func TestWriteOverview(t *testing.T) {
	report := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, WriteOverview(&buf, "sample.jsonl (3 records)", report.CandidateOverview))

	out := buf.String()
	require.Contains(t, out, "sample.jsonl (3 records)")
	require.Contains(t, out, "Total instances: 3")
}
