package reporter

import (
	"fmt"
	"io"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/stats"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report *analysis.Report) error {
	candLabel := report.CandidateLabel
	if candLabel == "" {
		candLabel = "Candidate"
	}
	baseLabel := report.BaselineLabel
	if baseLabel == "" {
		baseLabel = "Baseline"
	}

	if _, err := fmt.Fprintf(r.Writer, "# Comparison Report\n\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- %s: %s (%d records)\n- %s: %s (%d records)\n- Metric: %s\n- Matching IDs: %d\n\n",
		candLabel, report.CandidatePath, report.CandidateOverview.Total,
		baseLabel, report.BaselinePath, report.BaselineOverview.Total,
		report.Metric, report.MatchingIDs); err != nil {
		return err
	}

	if report.CandidateSummary != nil && report.BaselineSummary != nil {
		if _, err := fmt.Fprintf(r.Writer, "## %s Statistics\n\n", report.Metric); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(r.Writer, "| Metric | %s | %s |\n|---|---|---|\n", candLabel, baseLabel); err != nil {
			return err
		}
		rows := []struct {
			Name       string
			Cand, Base float64
		}{
			{"Avg", report.CandidateSummary.Avg, report.BaselineSummary.Avg},
			{"Median", report.CandidateSummary.Median, report.BaselineSummary.Median},
			{"P25", report.CandidateSummary.P25, report.BaselineSummary.P25},
			{"P75", report.CandidateSummary.P75, report.BaselineSummary.P75},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(r.Writer, "| %s | %.4f | %.4f |\n", row.Name, row.Cand, row.Base); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(r.Writer, "\n"); err != nil {
			return err
		}
	}

	cmp := report.Comparison
	if cmp == nil {
		return nil
	}

	if _, err := fmt.Fprintf(r.Writer, "## Paired Comparison (n=%d)\n\n", cmp.N); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "- Mean difference (%s - %s): %.4f, %.0f%% CI [%.4f, %.4f]\n",
		candLabel, baseLabel, cmp.Diff.Mean, cmp.Diff.CILevel, cmp.Diff.CILower, cmp.Diff.CIUpper); err != nil {
		return err
	}
	if cmp.Effect.Defined {
		if _, err := fmt.Fprintf(r.Writer, "- Cohen's d: %.4f (%s)\n", cmp.Effect.CohensD, cmp.Effect.Interpretation); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(r.Writer, "- Cohen's d: undefined\n"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(r.Writer, "- Head-to-head: %d %s wins, %d %s wins, %d ties\n\n",
		cmp.HeadToHead.CandidateWins, candLabel, cmp.HeadToHead.BaselineWins, baseLabel, cmp.HeadToHead.Ties); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(r.Writer, "| Test | Statistic | p-value | Significant |\n|---|---|---|---|\n"); err != nil {
		return err
	}
	for _, test := range []struct {
		Name   string
		Result stats.TestResult
	}{
		{"Paired t-test", cmp.PairedT},
		{"Wilcoxon signed-rank", cmp.Wilcoxon},
		{"Mann-Whitney U (unpaired view)", cmp.MannWhitney},
	} {
		if _, err := fmt.Fprintf(r.Writer, "| %s | %s |\n", test.Name, testCells(test.Result)); err != nil {
			return err
		}
	}
	return nil
}

func testCells(t stats.TestResult) string {
	if !t.Defined {
		return "undefined | - | -"
	}
	return fmt.Sprintf("%.4f | %.4f | %v", t.Statistic, t.PValue, t.Significant)
}
