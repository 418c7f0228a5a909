package record

import (
	"strconv"
	"strings"
)

// Record is one parsed result line. Fields are conventional rather than
// schema-enforced; accessors are best-effort and report presence explicitly.
type Record map[string]any

// ID returns the record identifier as a string. Numeric ids are formatted
// without a trailing ".0" so they match their JSONL source text.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// Input returns the input prompt, if present.
func (r Record) Input() string {
	s, _ := r["input"].(string)
	return s
}

// PassAtK returns the pass@k metric value.
func (r Record) PassAtK() (float64, bool) {
	v, ok := r["passAtK"].(float64)
	return v, ok
}

// K returns the k used for pass@k.
func (r Record) K() (float64, bool) {
	v, ok := r["k"].(float64)
	return v, ok
}

// Metric resolves a dotted path ("passAtK", "score.score", "timing.total")
// to a numeric value.
func (r Record) Metric(path string) (float64, bool) {
	var cur any = map[string]any(r)
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return 0, false
		}
		cur, ok = m[part]
		if !ok {
			return 0, false
		}
	}
	v, ok := cur.(float64)
	return v, ok
}

// ScorePass reports whether the record carries a score object and whether it
// passed.
func (r Record) ScorePass() (bool, bool) {
	score, ok := r["score"].(map[string]any)
	if !ok {
		return false, false
	}
	pass, _ := score["pass"].(bool)
	return pass, true
}

// ScoreValue returns the numeric score inside the score object, defaulting to
// zero when the object exists without one.
func (r Record) ScoreValue() (float64, bool) {
	score, ok := r["score"].(map[string]any)
	if !ok {
		return 0, false
	}
	v, _ := score["score"].(float64)
	return v, true
}

// Trials returns the trials sequence.
func (r Record) Trials() ([]any, bool) {
	v, ok := r["trials"].([]any)
	return v, ok
}

// Agent returns metadata.agent.
func (r Record) Agent() (string, bool) {
	meta, ok := r["metadata"].(map[string]any)
	if !ok {
		return "", false
	}
	agent, ok := meta["agent"].(string)
	return agent, ok
}

// TimingTotal returns timing.total in seconds.
func (r Record) TimingTotal() (float64, bool) {
	timing, ok := r["timing"].(map[string]any)
	if !ok {
		return 0, false
	}
	v, ok := timing["total"].(float64)
	return v, ok
}
