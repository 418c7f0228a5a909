package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
	"github.com/youdotcom-oss/web-search-agent-evals/pkg/reporter"
)

func newInspectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <results.jsonl>",
		Short: "Show the overview of a single result file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("file not found: %s", path)
			}

			reader := record.Reader{Logger: logger}
			records, err := reader.ReadFile(path)
			if err != nil {
				return err
			}

			overview := analysis.Summarize(records)
			title := fmt.Sprintf("%s (%d records)", filepath.Base(path), overview.Total)
			return reporter.WriteOverview(cmd.OutOrStdout(), title, overview)
		},
	}
	return cmd
}
