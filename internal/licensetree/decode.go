package licensetree

import (
	"log/slog"
)

// Options controls top-level decoding.
type Options struct {
	// AllowTrailing tolerates integers left over after the root node.
	// When false (the default) leftovers fail with TRAILING_DATA.
	AllowTrailing bool

	// Logger receives the warning emitted for tolerated trailing data.
	// Defaults to slog.Default().
	Logger *slog.Logger
}

// frame is a node whose children are still being decoded.
type frame struct {
	node       *Node
	childCount int
	metaCount  int
}

// Decode reads one complete subtree from the front of s and returns it
// together with the remainder of s.
//
// Each child is decoded starting exactly where its previous sibling ended;
// nothing about a child's extent is predicted before it has been decoded.
// On error no node is returned and the remainder is s itself.
func Decode(s Stream) (*Node, Stream, error) {
	start := s

	childCount, metaCount, rest, err := s.Header()
	if err != nil {
		return nil, start, err
	}
	stack := []*frame{newFrame(childCount, metaCount, rest)}

	for {
		top := stack[len(stack)-1]
		if len(top.node.children) < top.childCount {
			childCount, metaCount, rest, err = rest.Header()
			if err != nil {
				return nil, start, err
			}
			stack = append(stack, newFrame(childCount, metaCount, rest))
			continue
		}

		top.node.metadata, rest, err = rest.Take(top.metaCount)
		if err != nil {
			return nil, start, err
		}

		stack = stack[:len(stack)-1]
		if len(stack) == 0 {
			return top.node, rest, nil
		}
		parent := stack[len(stack)-1].node
		parent.children = append(parent.children, top.node)
	}
}

// newFrame pre-sizes the child slice. Every child needs at least two
// integers, so capacity never exceeds what the stream could still hold.
func newFrame(childCount, metaCount int, rest Stream) *frame {
	capacity := childCount
	if limit := rest.Len() / 2; capacity > limit {
		capacity = limit
	}
	return &frame{
		node:       &Node{children: make([]*Node, 0, capacity)},
		childCount: childCount,
		metaCount:  metaCount,
	}
}

// DecodeTree tokenizes input and decodes exactly one tree from it.
// Leftover integers after the root fail with TRAILING_DATA.
func DecodeTree(input string) (*Node, error) {
	return DecodeTreeWithOptions(input, Options{})
}

// DecodeTreeWithOptions is DecodeTree with configurable trailing-data handling.
func DecodeTreeWithOptions(input string, opts Options) (*Node, error) {
	s, err := Tokenize(input)
	if err != nil {
		return nil, err
	}
	return DecodeStream(s, opts)
}

// DecodeStream decodes exactly one tree from an already tokenized stream.
// An empty stream fails with EMPTY_INPUT; leftovers are handled per opts.
func DecodeStream(s Stream, opts Options) (*Node, error) {
	if s.Len() == 0 {
		return nil, newEmptyInput()
	}

	root, rest, err := Decode(s)
	if err != nil {
		return nil, err
	}

	if rest.Len() > 0 {
		if !opts.AllowTrailing {
			return nil, newTrailingData(rest.Offset(), rest.Len())
		}
		logger := opts.Logger
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("ignoring trailing integers after root node",
			"offset", rest.Offset(),
			"trailing", rest.Len(),
		)
	}

	return root, nil
}
