package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/James-Coleman/Advent2018/internal/ir"
	"github.com/James-Coleman/Advent2018/internal/licensetree"
)

// Harness runs suites.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for per-case diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness. Without options it logs nowhere.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a suite with a silent harness.
func Run(suite *Suite) (*Report, error) {
	return New().Run(suite)
}

// Run decodes every case and compares it against its expectations.
//
// A case whose input file cannot be read aborts the run with an error;
// decode failures and mismatches are recorded in the report instead.
func (h *Harness) Run(suite *Suite) (*Report, error) {
	report := &Report{Suite: suite.Name, Pass: true, Cases: []CaseResult{}}

	for _, c := range suite.Cases {
		input, err := suite.readInput(c)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}

		result := h.runCase(c, input)
		h.logger.Debug("case finished",
			"suite", suite.Name,
			"case", c.Name,
			"pass", result.Pass,
			"checksum", result.Checksum,
			"value", result.Value,
			"error_code", result.ErrorCode,
		)
		report.add(result)
	}

	return report, nil
}

func (h *Harness) runCase(c Case, input string) CaseResult {
	result := CaseResult{Name: c.Name, Pass: true}
	fail := func(format string, args ...any) {
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
		result.Pass = false
	}

	root, err := licensetree.DecodeTreeWithOptions(input, licensetree.Options{
		AllowTrailing: c.AllowTrailing,
		Logger:        h.logger,
	})
	if err != nil {
		result.ErrorCode = string(licensetree.CodeOf(err))
		switch {
		case c.Expect.Error == "":
			fail("unexpected error: %v", err)
		case c.Expect.Error != result.ErrorCode:
			fail("expected error %s, got %s", c.Expect.Error, result.ErrorCode)
		}
		return result
	}

	result.Checksum = licensetree.Checksum(root)
	result.Value = licensetree.Value(root)
	result.Digest, err = ir.TreeDigest(licensetree.Snapshot(root))
	if err != nil {
		fail("digest: %v", err)
	}

	if c.Expect.Error != "" {
		fail("expected error %s, decoded successfully", c.Expect.Error)
	}
	if c.Expect.Checksum != nil && *c.Expect.Checksum != result.Checksum {
		fail("checksum: expected %d, got %d", *c.Expect.Checksum, result.Checksum)
	}
	if c.Expect.Value != nil && *c.Expect.Value != result.Value {
		fail("value: expected %d, got %d", *c.Expect.Value, result.Value)
	}
	return result
}
