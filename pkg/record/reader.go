package record

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Reader loads JSONL result files. Malformed lines are logged and skipped;
// only an unopenable file is an error.
type Reader struct {
	Logger *zap.Logger
}

// ReadFile parses one JSONL file into records, preserving file order.
func (r Reader) ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var records []Record
	scanner := bufio.NewScanner(file)
	buf := make([]byte, 0, 1024*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			logger.Warn("skipping malformed line",
				zap.String("file", path),
				zap.Int("line", lineNum),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return records, nil
}
