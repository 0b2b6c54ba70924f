package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/James-Coleman/Advent2018/internal/licensetree"
)

// inputName returns a display name for the input argument.
func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>"
	}
	return args[0]
}

// readInput returns the puzzle text from the file named in args, or from
// stdin when args is empty or "-".
func readInput(args []string, cmd *cobra.Command) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decoded is a successfully decoded input.
type decoded struct {
	root *licensetree.Node

	// input is every integer read, including any tolerated trailing data.
	input licensetree.Stream
}

// decodeInput reads and decodes the input named in args. Failures are
// reported through formatter and returned as an *ExitError.
func decodeInput(args []string, allowTrailing bool, formatter *OutputFormatter, cmd *cobra.Command) (*decoded, error) {
	name := inputName(args)

	text, err := readInput(args, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeInputNotFound, fmt.Sprintf("cannot read input %s: %v", name, err), nil)
		return nil, WrapExitError(ExitCommandError, "cannot read input "+name, err)
	}
	formatter.VerboseLog("Read %d bytes from %s", len(text), name)

	d, err := decodeText(text, licensetree.Options{
		AllowTrailing: allowTrailing,
		Logger:        formatter.Logger,
	})
	if err != nil {
		var de *licensetree.DecodeError
		if errors.As(err, &de) {
			_ = formatter.Error(string(de.Code), de.Message, decodeErrorDetails(de))
		} else {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		}
		return nil, WrapExitError(ExitFailure, "decode "+name, err)
	}
	formatter.VerboseLog("Decoded %d node(s), depth %d", d.root.Descendants()+1, d.root.Depth())

	return d, nil
}

// decodeText tokenizes text once and decodes the tree from those tokens.
func decodeText(text string, opts licensetree.Options) (*decoded, error) {
	input, err := licensetree.Tokenize(text)
	if err != nil {
		return nil, err
	}
	root, err := licensetree.DecodeStream(input, opts)
	if err != nil {
		return nil, err
	}
	return &decoded{root: root, input: input}, nil
}

// decodeErrorDetails exposes where decoding stopped.
func decodeErrorDetails(de *licensetree.DecodeError) map[string]any {
	details := map[string]any{"offset": de.Offset}
	if de.Token != "" {
		details["token"] = de.Token
	}
	if de.Need > 0 {
		details["need"] = de.Need
	}
	if de.Code == licensetree.ErrCodeMalformedInput || de.Code == licensetree.ErrCodeTrailingData {
		details["have"] = de.Have
	}
	return details
}
