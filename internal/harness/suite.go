package harness

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Suite is a named set of puzzle cases.
type Suite struct {
	// Name identifies the suite and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what the suite covers.
	Description string `yaml:"description" json:"description"`

	// Cases are run in order.
	Cases []Case `yaml:"cases" json:"cases"`

	// Dir is the directory input_file paths are resolved against.
	Dir string `yaml:"-" json:"-"`
}

// Case is one puzzle input with its expected outcome.
type Case struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Input is the puzzle text inline. Exclusive with InputFile.
	Input string `yaml:"input,omitempty" json:"input,omitempty"`

	// InputFile is a path to the puzzle text, relative to the suite file.
	InputFile string `yaml:"input_file,omitempty" json:"input_file,omitempty"`

	// AllowTrailing tolerates integers left after the root node.
	AllowTrailing bool `yaml:"allow_trailing,omitempty" json:"allow_trailing,omitempty"`

	Expect Expect `yaml:"expect" json:"expect"`
}

// Expect is the expected outcome of a case: an error code, or metric
// values. Nil metrics are not checked.
type Expect struct {
	Checksum *int   `yaml:"checksum,omitempty" json:"checksum,omitempty"`
	Value    *int   `yaml:"value,omitempty" json:"value,omitempty"`
	Error    string `yaml:"error,omitempty" json:"error,omitempty"`
}

// LoadSuite reads and parses a suite YAML file.
// Returns an error if the file doesn't exist, is malformed, contains unknown
// fields (typos), or violates the suite schema.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, err
	}
	suite.Dir = filepath.Dir(path)
	return suite, nil
}

// ParseSuite parses suite YAML. input_file paths resolve against the
// current directory unless Dir is set afterwards.
func ParseSuite(data []byte) (*Suite, error) {
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}
	return &suite, nil
}

// validateSuite checks the rules the schema cannot express across fields,
// then runs the schema itself.
func validateSuite(s *Suite) error {
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true

		if (c.Input == "") == (c.InputFile == "") {
			return fmt.Errorf("cases[%d]: exactly one of input and input_file is required", i)
		}
		if c.Expect.Error != "" && (c.Expect.Checksum != nil || c.Expect.Value != nil) {
			return fmt.Errorf("cases[%d].expect: error is exclusive with checksum and value", i)
		}
		if c.Expect.Error == "" && c.Expect.Checksum == nil && c.Expect.Value == nil {
			return fmt.Errorf("cases[%d].expect: one of error, checksum or value is required", i)
		}
	}

	return validateSchema(s)
}

// Filter returns a copy of s holding only the cases whose name matches the
// glob pattern. An empty pattern matches everything.
func (s *Suite) Filter(pattern string) (*Suite, error) {
	out := *s
	if pattern == "" {
		return &out, nil
	}
	out.Cases = nil
	for _, c := range s.Cases {
		ok, err := path.Match(pattern, c.Name)
		if err != nil {
			return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
		}
		if ok {
			out.Cases = append(out.Cases, c)
		}
	}
	return &out, nil
}

// readInput returns the puzzle text for c.
func (s *Suite) readInput(c Case) (string, error) {
	if c.InputFile == "" {
		return c.Input, nil
	}
	p := c.InputFile
	if !filepath.IsAbs(p) {
		p = filepath.Join(s.Dir, p)
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return string(data), nil
}
