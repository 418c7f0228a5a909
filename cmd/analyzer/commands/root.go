package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/reporter"
)

// Default input locations, overridable via config or positional args.
const (
	defaultCandidatePath = "data/results/candidate.jsonl"
	defaultBaselinePath  = "data/results/baseline.jsonl"
	defaultAlpha         = 0.05
)

var (
	appConfig  Config
	logger     *zap.Logger
	configPath string
	verbose    bool
)

func NewRootCommand() *cobra.Command {
	var (
		candidateLabel string
		baselineLabel  string
		metric         string
		alpha          float64
		format         string
		outputPath     string
	)

	root := &cobra.Command{
		Use:   "analyzer [candidate.jsonl] [baseline.jsonl]",
		Short: "Compare two JSONL evaluation result files",
		Long: "Reads candidate and baseline JSONL result files, aligns records by id, " +
			"and prints descriptive statistics and paired significance tests for a " +
			"shared numeric metric (pass@k by default).",
		Args: cobra.MaximumNArgs(2),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			appConfig = cfg

			if verbose {
				logger, _ = zap.NewDevelopment()
			} else {
				logger, _ = zap.NewProduction()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			candidatePath := appConfig.Candidate
			baselinePath := appConfig.Baseline
			if len(args) > 0 {
				candidatePath = args[0]
			}
			if len(args) > 1 {
				baselinePath = args[1]
			}
			if candidatePath == "" {
				candidatePath = defaultCandidatePath
			}
			if baselinePath == "" {
				baselinePath = defaultBaselinePath
			}

			for _, path := range []string{candidatePath, baselinePath} {
				if _, err := os.Stat(path); err != nil {
					return fmt.Errorf("file not found: %s", path)
				}
			}

			cfg := analysis.Config{
				CandidatePath:  candidatePath,
				BaselinePath:   baselinePath,
				CandidateLabel: resolveString(candidateLabel, appConfig.CandidateLabel),
				BaselineLabel:  resolveString(baselineLabel, appConfig.BaselineLabel),
				Metric:         resolveString(metric, appConfig.Metric),
				Alpha:          resolveFloat(alpha, appConfig.Alpha, defaultAlpha),
			}

			report, err := analysis.Run(cfg, logger)
			if err != nil {
				return err
			}

			writer := cmd.OutOrStdout()
			outputResolved := resolveString(outputPath, appConfig.Output)
			if outputResolved != "" {
				file, err := os.Create(outputResolved)
				if err != nil {
					return err
				}
				defer file.Close()
				writer = file
			}

			formatResolved := resolveString(format, appConfig.Format)
			if formatResolved == "" {
				formatResolved = reporter.FormatText
			}
			rep, err := buildReporter(formatResolved, writer)
			if err != nil {
				return err
			}
			return rep.Report(report)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file path")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")

	root.Flags().StringVar(&candidateLabel, "candidate-label", "", "display label for the candidate set")
	root.Flags().StringVar(&baselineLabel, "baseline-label", "", "display label for the baseline set")
	root.Flags().StringVar(&metric, "metric", "", "dotted metric path to compare (default passAtK)")
	root.Flags().Float64Var(&alpha, "alpha", 0, "significance level for tests and intervals")
	root.Flags().StringVar(&format, "format", "", "output format (text, json, markdown)")
	root.Flags().StringVar(&outputPath, "output", "", "output file path")

	root.AddCommand(newInspectCommand())

	return root
}

func buildReporter(format string, writer io.Writer) (reporter.Reporter, error) {
	switch format {
	case reporter.FormatText:
		return reporter.TextReporter{Writer: writer}, nil
	case reporter.FormatJSON:
		return reporter.JSONReporter{Writer: writer, Pretty: true}, nil
	case reporter.FormatMarkdown:
		return reporter.MarkdownReporter{Writer: writer}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

func resolveString(value string, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func resolveFloat(value float64, fallback float64, defaultValue float64) float64 {
	if value > 0 {
		return value
	}
	if fallback > 0 {
		return fallback
	}
	return defaultValue
}
