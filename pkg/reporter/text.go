package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/stats"
)

// TextReporter renders the full human-readable comparison report. Section
// headers are styled when the writer is a terminal.
type TextReporter struct {
	Writer io.Writer
}

func (r TextReporter) Report(report *analysis.Report) error {
	p := &textPrinter{w: r.Writer, styled: isTerminal(r.Writer)}

	candLabel := report.CandidateLabel
	if candLabel == "" {
		candLabel = "Candidate"
	}
	baseLabel := report.BaselineLabel
	if baseLabel == "" {
		baseLabel = "Baseline"
	}

	r.writeOverview(p, fmt.Sprintf("%s (%s)", strings.ToUpper(candLabel), report.CandidatePath), report.CandidateOverview)
	r.writeOverview(p, fmt.Sprintf("%s (%s)", strings.ToUpper(baseLabel), report.BaselinePath), report.BaselineOverview)

	p.section(fmt.Sprintf("COMPARISON: %s vs %s (%s)", candLabel, baseLabel, report.Metric))
	p.printf("Records with matching IDs: %d\n", report.MatchingIDs)
	p.printf("\nRecords where %s > %s: %d/%d\n", candLabel, baseLabel, report.CandidateBetter, report.MatchingIDs)

	if report.CandidateSummary != nil && report.BaselineSummary != nil {
		p.section(fmt.Sprintf("%s Statistics", report.Metric))
		p.summaryTable(candLabel, baseLabel, report.CandidateSummary, report.BaselineSummary)
	}

	if cmp := report.Comparison; cmp != nil {
		r.writeComparison(p, candLabel, baseLabel, cmp)
	}
	return p.err
}

func (r TextReporter) writeOverview(p *textPrinter, title string, ov analysis.Overview) {
	p.section(title)
	p.printf("Total instances: %d\n", ov.Total)
	if ov.Total == 0 {
		p.printf("No records found.\n")
		return
	}

	p.printf("\nKeys in record structure:\n")
	for _, key := range ov.Keys {
		p.printf("  - %s\n", key)
	}

	if ov.Example != nil {
		data, err := json.MarshalIndent(ov.Example, "", "  ")
		if err == nil {
			p.printf("\nExample record (first one):\n%s\n", data)
		}
	}

	p.printf("\nOverall Statistics:\n")
	if ov.ScoredCount > 0 {
		p.printf("  Records with scores: %d/%d\n", ov.ScoredCount, ov.Total)
		p.printf("  Pass rate: %d/%d (%.1f%%)\n", ov.PassCount, ov.ScoredCount, ov.PassRate()*100)
		p.printf("  Average score: %.2f\n", ov.AvgScore)
	}
	if ov.TrialRecords > 0 {
		p.printf("  Records with trials: %d/%d\n", ov.TrialRecords, ov.Total)
		p.printf("  Total trials: %d\n", ov.TotalTrials)
		p.printf("  Average trials per record: %.1f\n", ov.AvgTrials())
	}
	if len(ov.Agents) > 0 {
		p.printf("  Agents: %s\n", formatAgents(ov.Agents))
	}
	if ov.TimedCount > 0 {
		p.printf("  Average total time: %.2fs\n", ov.AvgTotalTime)
	}
}

func (r TextReporter) writeComparison(p *textPrinter, candLabel, baseLabel string, cmp *stats.Comparison) {
	p.section("Individual Group Statistics")
	p.groupTable(candLabel, baseLabel, cmp)

	p.printf("\nConsistency Analysis:\n")
	switch {
	case cmp.Consistency.Equal:
		p.printf("  Both have similar consistency\n")
	case cmp.Consistency.Leader == "candidate":
		p.printf("  %s is MORE consistent (std dev %.1f%% lower)\n", candLabel, cmp.Consistency.RelativePct)
	default:
		p.printf("  %s is MORE consistent (std dev %.1f%% lower)\n", baseLabel, cmp.Consistency.RelativePct)
	}

	p.section("Mean Difference Analysis")
	p.printf("Mean Difference (%s - %s): %.4f\n", candLabel, baseLabel, cmp.Diff.Mean)
	p.printf("%.0f%% CI for difference: [%.4f, %.4f]\n", cmp.Diff.CILevel, cmp.Diff.CILower, cmp.Diff.CIUpper)

	h := cmp.HeadToHead
	p.section("Head-to-Head Comparison Breakdown")
	p.printf("%s > %s: %d/%d (%.1f%%)\n", candLabel, baseLabel, h.CandidateWins, h.N, pct(h.CandidateWins, h.N))
	p.printf("%s > %s: %d/%d (%.1f%%)\n", baseLabel, candLabel, h.BaselineWins, h.N, pct(h.BaselineWins, h.N))
	p.printf("Ties (%s == %s): %d/%d (%.1f%%)\n", candLabel, baseLabel, h.Ties, h.N, pct(h.Ties, h.N))

	if h.CandidateWins > 0 && h.BaselineWins > 0 {
		p.section("Why Average Differs from Head-to-Head Wins")
		p.printf("When %s wins: average margin = %.4f\n", candLabel, cmp.Margins.Candidate)
		p.printf("When %s wins: average margin = %.4f\n", baseLabel, cmp.Margins.Baseline)
		p.printf("\nExplanation:\n")
		if cmp.Candidate.Mean >= cmp.Baseline.Mean {
			p.printf("  - %s has higher average (%.4f vs %.4f)\n", candLabel, cmp.Candidate.Mean, cmp.Baseline.Mean)
		} else {
			p.printf("  - %s has higher average (%.4f vs %.4f)\n", baseLabel, cmp.Baseline.Mean, cmp.Candidate.Mean)
		}
		if cmp.Candidate.Std < cmp.Baseline.Std {
			p.printf("  - %s is more consistent (std: %.4f vs %.4f)\n", candLabel, cmp.Candidate.Std, cmp.Baseline.Std)
		} else {
			p.printf("  - %s is more consistent (std: %.4f vs %.4f)\n", baseLabel, cmp.Baseline.Std, cmp.Candidate.Std)
		}
		p.printf("  - But %d records are tied, and %d records favor %s\n", h.Ties, h.BaselineWins, baseLabel)
	}

	p.section("Statistical Significance Tests")

	p.printf("\nPaired t-test:\n")
	if cmp.PairedT.Defined {
		p.printf("  t = %.4f, p = %.4f %s\n", cmp.PairedT.Statistic, cmp.PairedT.PValue, sigMarker(cmp.PairedT))
	} else {
		p.printf("  undefined (zero variance in differences)\n")
	}
	p.printf("  Tests if mean difference is significantly different from zero\n")

	p.printf("\nWilcoxon signed-rank test (non-parametric):\n")
	if cmp.Wilcoxon.Defined {
		p.printf("  W = %.4f, p = %.4f %s\n", cmp.Wilcoxon.Statistic, cmp.Wilcoxon.PValue, sigMarker(cmp.Wilcoxon))
	} else {
		p.printf("  undefined (all differences are zero)\n")
	}
	p.printf("  Tests if distributions differ (doesn't assume normality)\n")

	p.printf("\nMann-Whitney U test (non-parametric, unpaired view):\n")
	if cmp.MannWhitney.Defined {
		p.printf("  U = %.4f, p = %.4f %s\n", cmp.MannWhitney.Statistic, cmp.MannWhitney.PValue, sigMarker(cmp.MannWhitney))
	} else {
		p.printf("  undefined\n")
	}
	p.printf("  Treats the two groups as independent samples\n")

	p.printf("\nEffect Size:\n")
	if cmp.Effect.Defined {
		p.printf("  Cohen's d: %.4f (%s)\n", cmp.Effect.CohensD, cmp.Effect.Interpretation)
	} else {
		p.printf("  Cohen's d: undefined (zero variance in differences)\n")
	}
	p.printf("  Measures practical significance of the difference\n")

	p.printf("\n  *** p < %.2f (statistically significant)\n", cmp.Alpha)
}

func (p *textPrinter) summaryTable(candLabel, baseLabel string, cand, base *stats.Summary) {
	if p.err != nil {
		return
	}
	table := tablewriter.NewWriter(p.w)
	table.Header([]string{"Metric", candLabel, baseLabel})
	table.Append([]string{"Avg", fmt.Sprintf("%.4f", cand.Avg), fmt.Sprintf("%.4f", base.Avg)})
	table.Append([]string{"Median", fmt.Sprintf("%.4f", cand.Median), fmt.Sprintf("%.4f", base.Median)})
	table.Append([]string{"P25", fmt.Sprintf("%.4f", cand.P25), fmt.Sprintf("%.4f", base.P25)})
	table.Append([]string{"P75", fmt.Sprintf("%.4f", cand.P75), fmt.Sprintf("%.4f", base.P75)})
	table.Render()
}

func (p *textPrinter) groupTable(candLabel, baseLabel string, cmp *stats.Comparison) {
	if p.err != nil {
		return
	}
	table := tablewriter.NewWriter(p.w)
	table.Header([]string{"Metric", candLabel, baseLabel})
	table.Append([]string{"Mean", fmt.Sprintf("%.4f", cmp.Candidate.Mean), fmt.Sprintf("%.4f", cmp.Baseline.Mean)})
	table.Append([]string{
		fmt.Sprintf("%.0f%% CI", cmp.Candidate.CILevel),
		fmt.Sprintf("[%.4f, %.4f]", cmp.Candidate.CILower, cmp.Candidate.CIUpper),
		fmt.Sprintf("[%.4f, %.4f]", cmp.Baseline.CILower, cmp.Baseline.CIUpper),
	})
	table.Append([]string{"Std Deviation", fmt.Sprintf("%.4f", cmp.Candidate.Std), fmt.Sprintf("%.4f", cmp.Baseline.Std)})
	table.Append([]string{"Variance", fmt.Sprintf("%.4f", cmp.Candidate.Variance), fmt.Sprintf("%.4f", cmp.Baseline.Variance)})
	table.Append([]string{"Coeff of Variation", formatCoV(cmp.Candidate), formatCoV(cmp.Baseline)})
	table.Render()
}

// WriteOverview renders a single record-set overview, used by the inspect
// command.
func WriteOverview(w io.Writer, title string, ov analysis.Overview) error {
	p := &textPrinter{w: w, styled: isTerminal(w)}
	TextReporter{Writer: w}.writeOverview(p, title, ov)
	return p.err
}

// textPrinter accumulates the first write error so report sections read
// linearly.
type textPrinter struct {
	w      io.Writer
	styled bool
	err    error
}

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))

func (p *textPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *textPrinter) section(title string) {
	rule := strings.Repeat("=", 60)
	if p.styled {
		title = headerStyle.Render(title)
	}
	p.printf("\n%s\n%s\n%s\n", rule, title, rule)
}

func sigMarker(t stats.TestResult) string {
	if t.Significant {
		return "***"
	}
	return ""
}

func pct(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func formatCoV(g stats.GroupStats) string {
	if !g.CoVDefined {
		return "undefined"
	}
	return fmt.Sprintf("%.2f%%", g.CoV)
}

func formatAgents(agents map[string]int) string {
	names := make([]string, 0, len(agents))
	for name := range agents {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %d", name, agents[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
