package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// RunWithGolden runs a suite and compares its canonical report against
// testdata/golden/{suite.Name}.golden.
//
// To regenerate golden files, run the calling package's tests with -update.
//
// Returns error if the suite cannot be run. Test failure (via goldie)
// occurs if the report doesn't match the golden file.
func RunWithGolden(t *testing.T, suite *Suite) (*Report, error) {
	t.Helper()

	report, err := Run(suite)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, suite.Name, report); err != nil {
		return nil, err
	}
	return report, nil
}

// AssertGolden compares an existing report against a golden file without
// re-running the suite.
func AssertGolden(t *testing.T, name string, report *Report) error {
	t.Helper()

	data, err := report.Canonical()
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
	return nil
}
