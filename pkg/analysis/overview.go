package analysis

import (
	"sort"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
)

// Overview summarizes one record set for display.
type Overview struct {
	Total        int            `json:"total"`
	Keys         []string       `json:"keys,omitempty"`
	Example      *ExampleRecord `json:"example,omitempty"`
	ScoredCount  int            `json:"scored_count"`
	PassCount    int            `json:"pass_count"`
	AvgScore     float64        `json:"avg_score"`
	TrialRecords int            `json:"trial_records"`
	TotalTrials  int            `json:"total_trials"`
	Agents       map[string]int `json:"agents,omitempty"`
	AvgTotalTime float64        `json:"avg_total_time"`
	TimedCount   int            `json:"timed_count"`
}

// ExampleRecord is the subset of the first record shown in the report.
type ExampleRecord struct {
	ID      string   `json:"id"`
	Input   string   `json:"input"`
	PassAtK *float64 `json:"passAtK"`
	K       *float64 `json:"k"`
}

// Summarize builds an Overview from a record set. Key paths come from the
// first record only, deduplicated and sorted.
func Summarize(records []record.Record) Overview {
	ov := Overview{Total: len(records)}
	if len(records) == 0 {
		return ov
	}

	first := records[0]
	ov.Keys = uniqueSorted(record.Keys(first))
	ov.Example = exampleOf(first)

	var scoreSum float64
	for _, rec := range records {
		if pass, ok := rec.ScorePass(); ok {
			ov.ScoredCount++
			if pass {
				ov.PassCount++
			}
			value, _ := rec.ScoreValue()
			scoreSum += value
		}
		if trials, ok := rec.Trials(); ok {
			ov.TrialRecords++
			ov.TotalTrials += len(trials)
		}
		if agent, ok := rec.Agent(); ok {
			if ov.Agents == nil {
				ov.Agents = make(map[string]int)
			}
			ov.Agents[agent]++
		}
		if total, ok := rec.TimingTotal(); ok && total > 0 {
			ov.TimedCount++
			ov.AvgTotalTime += total
		}
	}
	if ov.ScoredCount > 0 {
		ov.AvgScore = scoreSum / float64(ov.ScoredCount)
	}
	if ov.TimedCount > 0 {
		ov.AvgTotalTime /= float64(ov.TimedCount)
	}
	return ov
}

// PassRate is the fraction of scored records that passed.
func (o Overview) PassRate() float64 {
	if o.ScoredCount == 0 {
		return 0
	}
	return float64(o.PassCount) / float64(o.ScoredCount)
}

// AvgTrials is the mean trial count per trial-bearing record.
func (o Overview) AvgTrials() float64 {
	if o.TrialRecords == 0 {
		return 0
	}
	return float64(o.TotalTrials) / float64(o.TrialRecords)
}

func exampleOf(rec record.Record) *ExampleRecord {
	ex := &ExampleRecord{ID: rec.ID(), Input: rec.Input()}
	if v, ok := rec.PassAtK(); ok {
		ex.PassAtK = &v
	}
	if v, ok := rec.K(); ok {
		ex.K = &v
	}
	return ex
}

func uniqueSorted(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
