// Package harness runs suites of license-tree puzzle cases.
//
// # Suite Format
//
// Suites are YAML files:
//
//	name: day8
//	description: "License tree examples"
//	cases:
//	  - name: example
//	    input: "2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2"
//	    expect:
//	      checksum: 138
//	      value: 66
//	  - name: puzzle
//	    input_file: inputs/day8.txt
//	    expect:
//	      checksum: 42146
//	  - name: truncated
//	    input: "1 1"
//	    expect:
//	      error: MALFORMED_INPUT
//
// input_file paths are resolved relative to the suite file. A case sets
// exactly one of input and input_file, and expects either an error code or
// metric values, never both.
//
// Loaded suites are checked twice: strict YAML decoding rejects unknown
// fields, then the decoded suite is unified with an embedded CUE schema.
//
// # Golden Reports
//
// Report.Canonical renders a report as canonical JSON (see package ir).
// RunWithGolden compares it against testdata/golden/<suite>.golden.
package harness
