package licensetree

import (
	"fmt"
	"io"
	"strings"

	"github.com/James-Coleman/Advent2018/internal/ir"
)

// Encode serializes a tree back into its flat integer form.
// Decode(NewStream(Encode(root)...)) yields an equal tree with an empty remainder.
func Encode(root *Node) []int {
	if root == nil {
		return nil
	}
	out := make([]int, 0, root.EncodedLen())
	type item struct {
		n    *Node
		next int
	}
	out = append(out, len(root.children), len(root.metadata))
	stack := []*item{{n: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.next < len(top.n.children) {
			c := top.n.children[top.next]
			top.next++
			out = append(out, len(c.children), len(c.metadata))
			stack = append(stack, &item{n: c})
			continue
		}
		out = append(out, top.n.metadata...)
		stack = stack[:len(stack)-1]
	}
	return out
}

// Format writes an indented description of the tree to w, one node per line.
func Format(w io.Writer, root *Node) error {
	var err error
	walk(root, func(n *Node, depth int) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%snode children=%d metadata=%v\n",
			strings.Repeat("  ", depth-1), len(n.children), n.metadata)
	})
	return err
}

// String implements fmt.Stringer using Format.
func (n *Node) String() string {
	var b strings.Builder
	_ = Format(&b, n)
	return b.String()
}

// Snapshot converts a tree into its canonical IR form:
//
//	{"children": [...], "metadata": [...]}
//
// Snapshots feed golden files and ir.TreeDigest.
func Snapshot(root *Node) ir.IRObject {
	if root == nil {
		return ir.IRObject{}
	}
	objs := postOrder(root, func(n *Node, done map[*Node]ir.IRObject) ir.IRObject {
		children := make(ir.IRArray, len(n.children))
		for i, c := range n.children {
			children[i] = done[c]
		}
		metadata := make(ir.IRArray, len(n.metadata))
		for i, m := range n.metadata {
			metadata[i] = ir.IRInt(m)
		}
		return ir.IRObject{
			"children": children,
			"metadata": metadata,
		}
	})
	return objs[root]
}
