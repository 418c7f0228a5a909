// Package analysis wires the reader, alignment, and comparison engine into
// the read, aggregate, compare pipeline behind the analyzer report.
package analysis

import (
	"go.uber.org/zap"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/stats"
)

// Config names the two input files and the comparison parameters.
type Config struct {
	CandidatePath  string
	BaselinePath   string
	CandidateLabel string
	BaselineLabel  string
	Metric         string
	Alpha          float64
}

// Report is everything the printers need: per-set overviews, quartile
// summaries, and the paired comparison (nil when fewer than two aligned
// pairs exist).
type Report struct {
	CandidateLabel string `json:"candidate_label"`
	BaselineLabel  string `json:"baseline_label"`
	CandidatePath  string `json:"candidate_path"`
	BaselinePath   string `json:"baseline_path"`
	Metric         string `json:"metric"`

	CandidateOverview Overview `json:"candidate_overview"`
	BaselineOverview  Overview `json:"baseline_overview"`

	MatchingIDs     int `json:"matching_ids"`
	CandidateBetter int `json:"candidate_better"`
	AlignedPairs    int `json:"aligned_pairs"`

	CandidateSummary *stats.Summary `json:"candidate_summary,omitempty"`
	BaselineSummary  *stats.Summary `json:"baseline_summary,omitempty"`

	Comparison *stats.Comparison `json:"comparison,omitempty"`
}

// Run executes the pipeline. Both files are read fully before any
// computation; a missing file fails the run. Degenerate statistical input
// (no aligned pairs, n < 2) drops the affected sections instead of failing.
func Run(cfg Config, logger *zap.Logger) (*Report, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	reader := record.Reader{Logger: logger}
	candidate, err := reader.ReadFile(cfg.CandidatePath)
	if err != nil {
		return nil, err
	}
	baseline, err := reader.ReadFile(cfg.BaselinePath)
	if err != nil {
		return nil, err
	}

	metric := cfg.Metric
	if metric == "" {
		metric = "passAtK"
	}
	alpha := cfg.Alpha
	if alpha <= 0 || alpha >= 1 {
		alpha = 0.05
	}

	aligned := Align(candidate, baseline, metric)

	report := &Report{
		CandidateLabel:    cfg.CandidateLabel,
		BaselineLabel:     cfg.BaselineLabel,
		CandidatePath:     cfg.CandidatePath,
		BaselinePath:      cfg.BaselinePath,
		Metric:            metric,
		CandidateOverview: Summarize(candidate),
		BaselineOverview:  Summarize(baseline),
		MatchingIDs:       aligned.MatchingIDs,
		CandidateBetter:   aligned.CandidateBetter,
		AlignedPairs:      len(aligned.IDs),
		CandidateSummary:  stats.Summarize(aligned.Candidate),
		BaselineSummary:   stats.Summarize(aligned.Baseline),
	}

	comparison, err := stats.Compare(aligned.Candidate, aligned.Baseline, alpha)
	if err != nil {
		logger.Debug("skipping paired comparison",
			zap.Int("pairs", len(aligned.IDs)),
			zap.Error(err))
	} else {
		report.Comparison = comparison
	}
	return report, nil
}
