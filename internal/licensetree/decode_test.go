package licensetree

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/James-Coleman/Advent2018/internal/testutil"
)

const exampleInput = "2 3 0 3 10 11 12 1 1 0 1 99 2 1 1 2"

func TestDecodeTreeExample(t *testing.T) {
	root, err := DecodeTree(exampleInput)
	require.NoError(t, err)

	require.Equal(t, 2, root.ChildCount())
	assert.Equal(t, []int{1, 1, 2}, root.Metadata())

	b, c := root.Children()[0], root.Children()[1]
	assert.Equal(t, 0, b.ChildCount())
	assert.Equal(t, []int{10, 11, 12}, b.Metadata())

	require.Equal(t, 1, c.ChildCount())
	assert.Equal(t, []int{2}, c.Metadata())

	d := c.Children()[0]
	assert.Equal(t, 0, d.ChildCount())
	assert.Equal(t, []int{99}, d.Metadata())

	assert.Equal(t, 138, Checksum(root))
	assert.Equal(t, 66, Value(root))
}

func TestDecodeTreeChildlessRoot(t *testing.T) {
	root, err := DecodeTree("0 3 1 1 2")
	require.NoError(t, err)
	assert.Empty(t, root.Children())
	assert.Equal(t, []int{1, 1, 2}, root.Metadata())
	assert.Equal(t, 4, Checksum(root))
}

func TestDecodeTreeNoMetadata(t *testing.T) {
	root, err := DecodeTree("0 0")
	require.NoError(t, err)
	assert.Empty(t, root.Metadata())
	assert.Equal(t, 0, Checksum(root))
	assert.Equal(t, 0, Value(root))
}

func TestDecodeReturnsExactRemainder(t *testing.T) {
	// Two sibling subtrees back to back, then a stray integer.
	first := []int{1, 2, 1, 1, 0, 1, 5, 6, 7, 8}
	second := []int{0, 2, 3, 4}
	ints := append(append(append([]int{}, first...), second...), 42)

	node, rest, err := Decode(NewStream(ints...))
	require.NoError(t, err)
	assert.Equal(t, len(first), rest.Offset())
	assert.Equal(t, append(append([]int{}, second...), 42), rest.Ints())
	assert.Equal(t, len(first), node.EncodedLen())
	assert.Equal(t, 26, Checksum(node))

	sibling, rest, err := Decode(rest)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, sibling.Metadata())
	assert.Equal(t, []int{42}, rest.Ints())
}

func TestDecodeChildExtentDependsOnGrandchildren(t *testing.T) {
	// The second child of the root has its own child, so the root metadata
	// cannot be found by counting from either end.
	input := "2 3 1 3 0 1 98 10 11 12 1 1 0 1 99 2 1 1 2"
	root, err := DecodeTree(input)
	require.NoError(t, err)

	b := root.Children()[0]
	assert.Equal(t, []int{10, 11, 12}, b.Metadata())
	require.Equal(t, 1, b.ChildCount())
	assert.Equal(t, []int{98}, b.Children()[0].Metadata())
	assert.Equal(t, []int{1, 1, 2}, root.Metadata())
	assert.Equal(t, 138+98, Checksum(root))
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		offset  int
		message string
	}{
		{"child header missing", "1 1", 2, "expected 2 integers for header, found 0"},
		{"child header truncated", "1 1 0", 2, "expected 2 integers for header, found 1"},
		{"root header truncated", "3", 0, "expected 2 integers for header, found 1"},
		{"leaf metadata short", "0 3 1 1", 2, "expected 3 more integers for metadata, found 2"},
		{"parent metadata short", "1 2 0 1 5 9", 5, "expected 2 more integers for metadata, found 1"},
		{"second child missing", "2 1 0 1 5 7", 5, "expected 2 integers for header, found 1"},
		{"negative child count", "1 0 -2 0", 2, "negative child count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := DecodeTree(tt.input)
			require.Error(t, err)
			assert.Nil(t, root)
			assert.True(t, errors.Is(err, ErrMalformedInput))

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, tt.offset, de.Offset)
			assert.Contains(t, de.Message, tt.message)
		})
	}
}

func TestDecodeErrorLeavesStreamUntouched(t *testing.T) {
	s := NewStream(2, 1, 0, 0)
	node, rest, err := Decode(s)
	require.Error(t, err)
	assert.Nil(t, node)
	assert.Equal(t, s, rest)
}

func TestDecodeHugeDeclaredChildCount(t *testing.T) {
	// A hostile header must not trigger a giant allocation.
	_, err := DecodeTree("1000000000000 0 0 0")
	require.Error(t, err)
	assert.True(t, IsMalformed(err))
}

func TestDecodeTreeEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		_, err := DecodeTree(input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrEmptyInput))
		assert.Equal(t, ErrCodeEmptyInput, CodeOf(err))
	}
}

func TestDecodeTreeInvalidToken(t *testing.T) {
	_, err := DecodeTree("2 3 0 three")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidToken, CodeOf(err))
	assert.False(t, IsMalformed(err))
}

func TestDecodeTreeTrailingDataStrict(t *testing.T) {
	_, err := DecodeTree("0 1 5 8 9")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTrailingData))

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, 3, de.Offset)
	assert.Equal(t, 2, de.Have)
}

func TestDecodeTreeTrailingDataLenient(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	root, err := DecodeTreeWithOptions("0 1 5 8 9", Options{AllowTrailing: true, Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, 5, Checksum(root))
	assert.Contains(t, logs.String(), "ignoring trailing integers")
	assert.Contains(t, logs.String(), "trailing=2")
}

func TestDecodeStream(t *testing.T) {
	s, err := Tokenize("0 1 5 8 9")
	require.NoError(t, err)

	_, err = DecodeStream(s, Options{})
	assert.True(t, errors.Is(err, ErrTrailingData))

	root, err := DecodeStream(s, Options{AllowTrailing: true, Logger: slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))})
	require.NoError(t, err)
	assert.Equal(t, 5, Checksum(root))
	assert.Equal(t, 5, s.Len(), "stream is not consumed")

	_, err = DecodeStream(NewStream(), Options{})
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestDecodeDeepChain(t *testing.T) {
	for _, depth := range []int{1000, 200_000} {
		t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
			meta := func(i int) int { return i%7 + 1 }
			input := testutil.Join(testutil.EncodeChain(depth, meta))

			root, err := DecodeTree(input)
			require.NoError(t, err)
			assert.Equal(t, testutil.ChainChecksum(depth, meta), Checksum(root))
			assert.Equal(t, depth, root.Depth())
			assert.Equal(t, depth-1, root.Descendants())
		})
	}
}

func TestDecodeWide(t *testing.T) {
	root, err := DecodeTree(testutil.Join(testutil.EncodeWide(500, 1, 500, 501)))
	require.NoError(t, err)
	assert.Equal(t, 500, root.ChildCount())
	// 1..500 in the leaves plus the root's own metadata.
	assert.Equal(t, 500*501/2+1+500+501, Checksum(root))
	// Index 501 is out of range.
	assert.Equal(t, 1+500, Value(root))
}

func TestDecodeIsIdempotent(t *testing.T) {
	first, err := DecodeTree(exampleInput)
	require.NoError(t, err)
	second, err := DecodeTree(exampleInput)
	require.NoError(t, err)

	assert.Equal(t, Checksum(first), Checksum(second))
	assert.Equal(t, Value(first), Value(second))
	assert.Equal(t, Snapshot(first), Snapshot(second))
}

func TestDecodeErrorFormatting(t *testing.T) {
	_, err := DecodeTree("1 1")
	require.Error(t, err)
	assert.Equal(t, "MALFORMED_INPUT: expected 2 integers for header, found 0 (at integer 2)", err.Error())

	wrapped := fmt.Errorf("day 8: %w", err)
	assert.True(t, errors.Is(wrapped, ErrMalformedInput))
	assert.False(t, errors.Is(wrapped, ErrEmptyInput))
	assert.Equal(t, ErrCodeMalformedInput, CodeOf(wrapped))
}
