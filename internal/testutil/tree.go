// Package testutil builds encoded license-tree fixtures and deterministic
// helpers shared by tests across packages.
package testutil

import (
	"strconv"
	"strings"
)

// EncodeChain returns the flat encoding of a right-nested chain of depth
// nodes. Every node has exactly one child except the last, and exactly one
// metadata entry, meta(i) for the node at level i (0 is the root).
//
// The encoding is built iteratively so depth can be arbitrarily large.
func EncodeChain(depth int, meta func(i int) int) []int {
	if depth <= 0 {
		return nil
	}
	out := make([]int, 0, 3*depth)
	for i := 0; i < depth; i++ {
		children := 1
		if i == depth-1 {
			children = 0
		}
		out = append(out, children, 1)
	}
	for i := depth - 1; i >= 0; i-- {
		out = append(out, meta(i))
	}
	return out
}

// ChainChecksum is the expected checksum of EncodeChain(depth, meta).
func ChainChecksum(depth int, meta func(i int) int) int {
	sum := 0
	for i := 0; i < depth; i++ {
		sum += meta(i)
	}
	return sum
}

// EncodeWide returns a root with n leaf children. Leaf i (1-based) carries
// the single metadata entry i. The root carries rootMeta.
func EncodeWide(n int, rootMeta ...int) []int {
	out := make([]int, 0, 2+3*n+len(rootMeta))
	out = append(out, n, len(rootMeta))
	for i := 1; i <= n; i++ {
		out = append(out, 0, 1, i)
	}
	return append(out, rootMeta...)
}

// Join renders ints as space-separated puzzle input text.
func Join(ints []int) string {
	parts := make([]string, len(ints))
	for i, n := range ints {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, " ")
}
