package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/James-Coleman/Advent2018/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // case filter (glob pattern)
	Golden string // golden file directory; empty disables comparison
}

// SuiteResult holds the result of a single suite file.
type SuiteResult struct {
	Name   string          `json:"name"`
	Path   string          `json:"path"`
	Pass   bool            `json:"pass"`
	Report *harness.Report `json:"report,omitempty"`
	Errors []string        `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Suites []SuiteResult `json:"suites"`
	Passed int           `json:"passed"`
	Failed int           `json:"failed"`
	Total  int           `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <suite.yaml>...",
		Short: "Run puzzle-case suites",
		Long: `Run YAML puzzle-case suites through the license-tree decoder.

Each case is decoded and its checksum, value or error code compared with
the expectations in the suite. With --golden, the canonical report of each
suite is compared with <dir>/<suite>.golden (or rewritten with --update).

Exit codes:
  0 - All suites passed
  1 - One or more cases failed or golden files differ
  2 - Command error (unreadable or invalid suite, unreadable input_file,
      bad filter)

Examples:
  advent2018 test suites/day8.yaml
  advent2018 test suites/*.yaml --filter "trailing_*"
  advent2018 test suites/day8.yaml --golden testdata/golden --update
  advent2018 test suites/day8.yaml --format json`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files (requires --golden)")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter cases by glob pattern")
	cmd.Flags().StringVar(&opts.Golden, "golden", "", "directory of golden report files")

	return cmd
}

func runTests(opts *TestOptions, paths []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if opts.Update && opts.Golden == "" {
		msg := "--update requires --golden"
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	// Load everything first so a bad suite is a command error, not a failure.
	suites := make([]*harness.Suite, 0, len(paths))
	for _, p := range paths {
		suite, err := harness.LoadSuite(p)
		if err != nil {
			_ = formatter.Error(ErrCodeSuiteInvalid, err.Error(), map[string]any{"path": p})
			return WrapExitError(ExitCommandError, "load suite "+p, err)
		}
		filtered, err := suite.Filter(opts.Filter)
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitCommandError, "filter", err)
		}
		suites = append(suites, filtered)
	}

	h := harness.New(harness.WithLogger(formatter.Logger))

	result := TestResult{
		Suites: make([]SuiteResult, 0, len(suites)),
		Total:  len(suites),
	}
	var goldenErr *goldenError

	for i, suite := range suites {
		sr := SuiteResult{Name: suite.Name, Path: paths[i]}

		// Only an unreadable input_file stops a run; that is a command error.
		report, err := h.Run(suite)
		if err != nil {
			_ = formatter.Error(ErrCodeInputNotFound, err.Error(), map[string]any{"path": paths[i]})
			return WrapExitError(ExitCommandError, "run suite "+paths[i], err)
		}
		sr.Report = report
		sr.Pass = report.Pass
		for _, c := range report.Cases {
			for _, e := range c.Errors {
				sr.Errors = append(sr.Errors, c.Name+": "+e)
			}
		}

		if opts.Golden != "" {
			if err := checkGolden(opts, suite.Name, sr.Report); err != nil {
				sr.Pass = false
				sr.Errors = append(sr.Errors, err.Error())
				if goldenErr == nil {
					goldenErr = err
				}
			}
		}

		formatter.VerboseLog("Suite %s: %d passed, %d failed", suite.Name, report.Passed, report.Failed)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
		result.Suites = append(result.Suites, sr)
	}

	if formatter.Format == "json" {
		return outputTestJSON(formatter, result, goldenErr)
	}
	return outputTestText(formatter, result, goldenErr)
}

// goldenError is a golden file failure tagged with its CLI error code.
type goldenError struct {
	code string
	err  error
}

func (e *goldenError) Error() string {
	return e.err.Error()
}

// checkGolden compares the canonical report with its golden file, or
// rewrites the file when opts.Update is set.
func checkGolden(opts *TestOptions, name string, report *harness.Report) *goldenError {
	path := filepath.Join(opts.Golden, name+".golden")

	got, err := report.Canonical()
	if err != nil {
		return &goldenError{code: ErrCodeGeneric, err: fmt.Errorf("canonicalize report: %w", err)}
	}

	if opts.Update {
		if err := os.MkdirAll(opts.Golden, 0o755); err != nil {
			return &goldenError{code: ErrCodeWriteFailed, err: fmt.Errorf("write golden %s: %w", path, err)}
		}
		if err := os.WriteFile(path, got, 0o644); err != nil {
			return &goldenError{code: ErrCodeWriteFailed, err: fmt.Errorf("write golden %s: %w", path, err)}
		}
		return nil
	}

	want, err := os.ReadFile(path)
	if err != nil {
		return &goldenError{code: ErrCodeGoldenMismatch, err: fmt.Errorf("read golden %s: %w", path, err)}
	}
	if !bytes.Equal(bytes.TrimSpace(want), got) {
		return &goldenError{code: ErrCodeGoldenMismatch, err: fmt.Errorf("golden mismatch: %s", path)}
	}
	return nil
}

// outputTestJSON outputs test results in JSON format.
func outputTestJSON(f *OutputFormatter, result TestResult, goldenErr *goldenError) error {
	if result.Failed == 0 {
		return f.Success(result)
	}

	code := ErrCodeCasesFailed
	if goldenErr != nil {
		code = goldenErr.code
	}
	if err := f.Error(code, fmt.Sprintf("%d of %d suites failed", result.Failed, result.Total), result); err != nil {
		return err
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d suites failed", result.Failed))
}

// outputTestText outputs test results in human-readable format.
func outputTestText(f *OutputFormatter, result TestResult, goldenErr *goldenError) error {
	w := f.Writer

	for _, sr := range result.Suites {
		if sr.Pass {
			fmt.Fprintf(w, "✓ %s (%d cases)\n", sr.Name, sr.Report.Passed)
			continue
		}
		fmt.Fprintf(w, "✗ %s\n", sr.Name)
		for _, e := range sr.Errors {
			fmt.Fprintf(w, "  %s\n", e)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)

	if result.Failed > 0 {
		if goldenErr != nil {
			return WrapExitError(ExitFailure, goldenErr.code, goldenErr)
		}
		return NewExitError(ExitFailure, fmt.Sprintf("%d suites failed", result.Failed))
	}
	return nil
}
