package licensetree

import (
	"strconv"
	"strings"
)

// Stream is the unconsumed remainder of an integer sequence.
//
// A Stream is a value: Header and Take return a new Stream and leave the
// receiver untouched, so a caller holding an earlier Stream can never observe
// a later consumption. The only way to shrink a Stream is to remove a prefix.
type Stream struct {
	ints []int
	off  int
}

// NewStream creates a Stream over ints. The slice is copied.
func NewStream(ints ...int) Stream {
	return Stream{ints: append([]int(nil), ints...)}
}

// Tokenize splits input on whitespace and parses every token as a base-10
// integer. A single bad token fails the whole call with INVALID_TOKEN.
//
// Tokenize does not reject an empty result; DecodeTree does.
func Tokenize(input string) (Stream, error) {
	fields := strings.Fields(input)
	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return Stream{}, newInvalidToken(i, f)
		}
		ints[i] = n
	}
	return Stream{ints: ints}, nil
}

// Len returns the number of unconsumed integers.
func (s Stream) Len() int {
	return len(s.ints) - s.off
}

// Offset returns how many integers have been consumed from the original
// sequence.
func (s Stream) Offset() int {
	return s.off
}

// Ints returns a copy of the unconsumed integers.
func (s Stream) Ints() []int {
	out := make([]int, s.Len())
	copy(out, s.ints[s.off:])
	return out
}

// Header reads a node header (child count, metadata count).
func (s Stream) Header() (childCount, metaCount int, rest Stream, err error) {
	if s.Len() < 2 {
		return 0, 0, s, newShortHeader(s.off, s.Len())
	}
	childCount, metaCount = s.ints[s.off], s.ints[s.off+1]
	if childCount < 0 {
		return 0, 0, s, newNegativeCount(s.off, "child count", childCount)
	}
	if metaCount < 0 {
		return 0, 0, s, newNegativeCount(s.off+1, "metadata count", metaCount)
	}
	return childCount, metaCount, Stream{ints: s.ints, off: s.off + 2}, nil
}

// Take removes the next n integers and returns them as a fresh slice.
func (s Stream) Take(n int) ([]int, Stream, error) {
	if n > s.Len() {
		return nil, s, newShortMetadata(s.off, n, s.Len())
	}
	taken := make([]int, n)
	copy(taken, s.ints[s.off:s.off+n])
	return taken, Stream{ints: s.ints, off: s.off + n}, nil
}
