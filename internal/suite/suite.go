// Package suite runs conformance corpora in the community JsonLogic test
// format: a JSON array whose entries are either a string comment or a
// [rule, data, expected] triple. Comments annotate the cases that follow
// them.
package suite

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/go-cmp/cmp"
	"github.com/rulekit/jsonlogic"
)

// Case is one rule/data/expected triple plus the comment of the section it
// appeared under and its position among the corpus's triples (comment
// entries are not counted).
type Case struct {
	Index    int
	Section  string
	Rule     any
	Data     any
	Expected any
}

// Result is the outcome of running one case.
type Result struct {
	Case
	Got    any
	Err    error
	Passed bool
	// Diff is a human-readable structural diff, populated on failure.
	Diff string
}

// Report aggregates a corpus run.
type Report struct {
	Results []Result
	Passed  int
	Failed  int
}

// Load decodes a corpus from r.
func Load(r io.Reader) ([]Case, error) {
	var entries []any
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode corpus: %w", err)
	}

	var cases []Case
	section := ""
	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			section = e
		case []any:
			if len(e) != 3 {
				return nil, fmt.Errorf("corpus entry %d: expected 3 elements [rule, data, expected], got %d elements", i, len(e))
			}
			cases = append(cases, Case{
				Index:    len(cases),
				Section:  section,
				Rule:     e[0],
				Data:     e[1],
				Expected: e[2],
			})
		default:
			return nil, fmt.Errorf("corpus entry %d: expected string or array, got %T", i, entry)
		}
	}
	return cases, nil
}

// LoadFile decodes a corpus from a file on disk.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Run evaluates every case with l and reports each outcome. A case passes
// when evaluation succeeds and the result is structurally equal to the
// expectation; numeric representations are unified before comparing.
func Run(l *jsonlogic.Logic, cases []Case) Report {
	report := Report{Results: make([]Result, 0, len(cases))}
	for _, c := range cases {
		res := Result{Case: c}
		res.Got, res.Err = l.Apply(c.Rule, c.Data)
		if res.Err == nil && equalJSON(c.Expected, res.Got) {
			res.Passed = true
			report.Passed++
		} else {
			if res.Err == nil {
				res.Diff = cmp.Diff(normalize(c.Expected), normalize(res.Got))
			}
			report.Failed++
		}
		report.Results = append(report.Results, res)
	}
	return report
}

// equalJSON compares two values through their canonical JSON encodings,
// which sorts object keys and collapses 1 and 1.0.
func equalJSON(a, b any) bool {
	ab, err := json.Marshal(normalize(a))
	if err != nil {
		return false
	}
	bb, err := json.Marshal(normalize(b))
	if err != nil {
		return false
	}
	return string(ab) == string(bb)
}

// normalize rewrites json.Number values to float64 so encodings and diffs
// compare like for like. Other values, including Go int types, pass through
// unchanged.
func normalize(v any) any {
	switch t := v.(type) {
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return string(t)
		}
		return f
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = normalize(e)
		}
		return out
	default:
		return v
	}
}
