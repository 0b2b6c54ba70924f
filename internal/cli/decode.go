package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/James-Coleman/Advent2018/internal/ir"
	"github.com/James-Coleman/Advent2018/internal/licensetree"
)

// DecodeOptions holds flags for the decode command.
type DecodeOptions struct {
	*RootOptions
	AllowTrailing bool
}

// NewDecodeCommand creates the decode command.
func NewDecodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DecodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "decode [input-file|-]",
		Short: "Print the decoded license tree",
		Long: `Decode a license file and print its tree.

Text output lists one node per line, indented by depth. JSON output carries
the canonical tree snapshot and its digest.

Examples:
  advent2018 decode input.txt
  echo "2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2" | advent2018 decode --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.AllowTrailing, "allow-trailing", false, "ignore integers left after the root node")

	return cmd
}

func runDecode(opts *DecodeOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	d, err := decodeInput(args, opts.AllowTrailing, formatter, cmd)
	if err != nil {
		return err
	}
	root := d.root

	snapshot := licensetree.Snapshot(root)
	digest, err := ir.TreeDigest(snapshot)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "digest tree", err)
	}

	if formatter.Format == "json" {
		// The tree nests two JSON levels per node, so the payload is built in
		// one canonical pass instead of through encoding/json.
		data, err := ir.MarshalCanonical(map[string]any{
			"tree":     snapshot,
			"digest":   digest,
			"nodes":    root.Descendants() + 1,
			"depth":    root.Depth(),
			"integers": root.EncodedLen(),
		})
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitFailure, "encode tree", err)
		}
		return formatter.SuccessRaw(data)
	}

	if err := licensetree.Format(formatter.Writer, root); err != nil {
		return err
	}
	fmt.Fprintf(formatter.Writer, "digest: %s\n", digest)
	return nil
}
