package cli

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/James-Coleman/Advent2018/internal/ir"
	"github.com/James-Coleman/Advent2018/internal/licensetree"
)

// Puzzle parts accepted by --part.
const (
	PartChecksum = "checksum"
	PartValue    = "value"
	PartBoth     = "both"
)

var validParts = []string{PartChecksum, PartValue, PartBoth}

// SolveOptions holds flags for the solve command.
type SolveOptions struct {
	*RootOptions
	Part          string
	AllowTrailing bool
}

// SolveResult is the answer to one or both puzzle parts.
type SolveResult struct {
	Checksum *int `json:"checksum,omitempty"`
	Value    *int `json:"value,omitempty"`

	// Integers counts the whole input, trailing data included;
	// TreeIntegers only those the decoded tree occupies.
	Integers     int    `json:"integers"`
	TreeIntegers int    `json:"tree_integers"`
	InputDigest  string `json:"input_digest"`
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve [input-file|-]",
		Short: "Solve day 8 for a license file",
		Long: `Decode a license file and print the metadata checksum (part 1)
and the root node value (part 2).

The input is read from the named file, or from stdin when the argument is
omitted or "-".

Exit codes:
  0 - Solved
  1 - Input could not be decoded
  2 - Command error (unreadable input, bad flags)

Examples:
  advent2018 solve input.txt
  advent2018 solve --part value input.txt
  cat input.txt | advent2018 solve --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Part, "part", PartBoth, "puzzle part to solve (checksum|value|both)")
	cmd.Flags().BoolVar(&opts.AllowTrailing, "allow-trailing", false, "ignore integers left after the root node")

	return cmd
}

func runSolve(opts *SolveOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	if !slices.Contains(validParts, opts.Part) {
		msg := fmt.Sprintf("invalid part %q: must be one of %v", opts.Part, validParts)
		_ = formatter.Error(ErrCodeGeneric, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	d, err := decodeInput(args, opts.AllowTrailing, formatter, cmd)
	if err != nil {
		return err
	}
	root := d.root

	result := SolveResult{
		Integers:     d.input.Len(),
		TreeIntegers: root.EncodedLen(),
		InputDigest:  ir.InputDigest(d.input.Ints()),
	}
	if opts.Part != PartValue {
		checksum := licensetree.Checksum(root)
		result.Checksum = &checksum
	}
	if opts.Part != PartChecksum {
		value := licensetree.Value(root)
		result.Value = &value
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	w := formatter.Writer
	if result.Checksum != nil {
		fmt.Fprintf(w, "checksum: %d\n", *result.Checksum)
	}
	if result.Value != nil {
		fmt.Fprintf(w, "value: %d\n", *result.Value)
	}
	return nil
}
