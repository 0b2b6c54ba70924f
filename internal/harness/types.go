package harness

import "github.com/James-Coleman/Advent2018/internal/ir"

// CaseResult is the outcome of one case.
type CaseResult struct {
	Name string `json:"name"`
	Pass bool   `json:"pass"`

	// Checksum and Value are only meaningful when ErrorCode is empty.
	Checksum int `json:"checksum"`
	Value    int `json:"value"`

	// ErrorCode is the decode error code, if decoding failed.
	ErrorCode string `json:"error_code,omitempty"`

	// Digest is the tree digest of the decoded tree (see ir.TreeDigest).
	Digest string `json:"digest,omitempty"`

	// Errors lists expectation mismatches. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// Report is the outcome of a suite run.
type Report struct {
	Suite  string       `json:"suite"`
	Pass   bool         `json:"pass"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// add records a case result and updates the totals.
func (r *Report) add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if c.Pass {
		r.Passed++
	} else {
		r.Failed++
		r.Pass = false
	}
}

// Canonical renders the report as canonical JSON for golden comparison.
func (r *Report) Canonical() ([]byte, error) {
	return ir.MarshalCanonical(r.toCanonicalMap())
}

// toCanonicalMap converts a Report into plain maps, since canonical JSON
// only handles IR values and primitives.
func (r *Report) toCanonicalMap() map[string]any {
	cases := make([]any, len(r.Cases))
	for i, c := range r.Cases {
		m := map[string]any{
			"name":     c.Name,
			"pass":     c.Pass,
			"checksum": c.Checksum,
			"value":    c.Value,
		}
		if c.ErrorCode != "" {
			m["error_code"] = c.ErrorCode
		}
		if c.Digest != "" {
			m["digest"] = c.Digest
		}
		if len(c.Errors) > 0 {
			errs := make([]any, len(c.Errors))
			for j, e := range c.Errors {
				errs[j] = e
			}
			m["errors"] = errs
		}
		cases[i] = m
	}
	return map[string]any{
		"suite":  r.Suite,
		"pass":   r.Pass,
		"passed": r.Passed,
		"failed": r.Failed,
		"cases":  cases,
	}
}
