package reporter

import (
	"encoding/json"
	"io"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/analysis"
)

type JSONReporter struct {
	Writer io.Writer
	Pretty bool
}

func (r JSONReporter) Report(report *analysis.Report) error {
	encoder := json.NewEncoder(r.Writer)
	if r.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(report)
}
