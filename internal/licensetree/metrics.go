package licensetree

// Checksum returns the sum of every metadata entry in the tree, root included.
// A nil root has checksum 0.
func Checksum(root *Node) int {
	sum := 0
	walk(root, func(n *Node, _ int) {
		for _, m := range n.metadata {
			sum += m
		}
	})
	return sum
}

// Value returns the value of root.
//
// A node without children is worth the sum of its metadata. A node with
// children treats each metadata entry as a 1-based child index and is worth
// the sum of the referenced children's values; indexes that are zero,
// negative or past the last child contribute nothing.
//
// Each node's value is computed once, bottom-up, no matter how many metadata
// entries reference it.
func Value(root *Node) int {
	if root == nil {
		return 0
	}
	values := postOrder(root, func(n *Node, values map[*Node]int) int {
		if len(n.children) == 0 {
			sum := 0
			for _, m := range n.metadata {
				sum += m
			}
			return sum
		}
		sum := 0
		for _, m := range n.metadata {
			if child, ok := n.Child(m); ok {
				sum += values[child]
			}
		}
		return sum
	})
	return values[root]
}

// postOrder evaluates fn for every node after all of its children have been
// evaluated and returns the per-node results.
func postOrder[T any](root *Node, fn func(n *Node, done map[*Node]T) T) map[*Node]T {
	done := make(map[*Node]T)
	type item struct {
		n        *Node
		expanded bool
	}
	stack := []item{{n: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := done[top.n]; ok {
			continue
		}
		if !top.expanded && len(top.n.children) > 0 {
			stack = append(stack, item{n: top.n, expanded: true})
			for i := len(top.n.children) - 1; i >= 0; i-- {
				stack = append(stack, item{n: top.n.children[i]})
			}
			continue
		}
		done[top.n] = fn(top.n, done)
	}
	return done
}
