package analysis

import (
	"sort"

	"github.com/youdotcom-oss/web-search-agent-evals/pkg/record"
)

// Alignment is a pair of equal-length metric vectors, position-aligned on the
// ids shared by both record sets.
type Alignment struct {
	// MatchingIDs counts ids present in both sets, whether or not both
	// sides carried the metric.
	MatchingIDs int
	// IDs, Candidate and Baseline are parallel: index i holds the metric
	// values for IDs[i] in each set.
	IDs       []string
	Candidate []float64
	Baseline  []float64
	// CandidateBetter counts pairs where the candidate value is strictly
	// higher.
	CandidateBetter int
}

// Align indexes both record sets by id (last occurrence wins) and extracts
// the metric for every id present in both with a value on both sides. Ids are
// sorted so a run is deterministic.
func Align(candidate, baseline []record.Record, metric string) Alignment {
	candByID := indexByID(candidate)
	baseByID := indexByID(baseline)

	var shared []string
	for id := range candByID {
		if _, ok := baseByID[id]; ok {
			shared = append(shared, id)
		}
	}
	sort.Strings(shared)

	a := Alignment{MatchingIDs: len(shared)}
	for _, id := range shared {
		candValue, candOK := candByID[id].Metric(metric)
		baseValue, baseOK := baseByID[id].Metric(metric)
		if !candOK || !baseOK {
			continue
		}
		a.IDs = append(a.IDs, id)
		a.Candidate = append(a.Candidate, candValue)
		a.Baseline = append(a.Baseline, baseValue)
		if candValue > baseValue {
			a.CandidateBetter++
		}
	}
	return a
}

func indexByID(records []record.Record) map[string]record.Record {
	byID := make(map[string]record.Record, len(records))
	for _, rec := range records {
		if id := rec.ID(); id != "" {
			byID[id] = rec
		}
	}
	return byID
}
