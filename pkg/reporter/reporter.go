package reporter

import "github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"

// Reporter renders a comparison report.
type Reporter interface {
	Report(report *analysis.Report) error
}

const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)
