package licensetree

// Node is one element of a decoded license tree.
//
// Child and metadata counts are fixed at construction. Accessors return
// copies so a decoded tree cannot be modified through them.
type Node struct {
	children []*Node
	metadata []int
}

// NewNode builds a node from already constructed children and its metadata.
// Both slices are copied. Nil children are dropped.
func NewNode(children []*Node, metadata ...int) *Node {
	n := &Node{metadata: append([]int(nil), metadata...)}
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
	return n
}

// Children returns the node's children in order.
func (n *Node) Children() []*Node {
	return append([]*Node(nil), n.children...)
}

// Metadata returns the node's metadata entries in order.
func (n *Node) Metadata() []int {
	return append([]int(nil), n.metadata...)
}

// ChildCount returns the number of immediate children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the i-th child using 1-based indexing, as metadata entries
// reference children. ok is false if i is out of range.
func (n *Node) Child(i int) (child *Node, ok bool) {
	if i < 1 || i > len(n.children) {
		return nil, false
	}
	return n.children[i-1], true
}

// Descendants returns the number of nodes below n, at any depth.
func (n *Node) Descendants() int {
	if n == nil {
		return 0
	}
	count := -1
	walk(n, func(*Node, int) { count++ })
	return count
}

// MetadataCount returns the number of metadata entries in the subtree rooted at n.
func (n *Node) MetadataCount() int {
	count := 0
	walk(n, func(m *Node, _ int) { count += len(m.metadata) })
	return count
}

// EncodedLen returns the number of integers the subtree occupies in its flat
// encoding: two header integers per node plus every metadata entry.
// A nil node encodes to nothing.
func (n *Node) EncodedLen() int {
	if n == nil {
		return 0
	}
	return 2*(n.Descendants()+1) + n.MetadataCount()
}

// Depth returns the number of levels in the subtree; a lone node has depth 1.
func (n *Node) Depth() int {
	max := 0
	walk(n, func(_ *Node, depth int) {
		if depth > max {
			max = depth
		}
	})
	return max
}

// walk visits every node of the subtree in pre-order without recursion.
// depth is 1 for root.
func walk(root *Node, visit func(n *Node, depth int)) {
	if root == nil {
		return
	}
	type item struct {
		n     *Node
		depth int
	}
	stack := []item{{root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(top.n, top.depth)
		for i := len(top.n.children) - 1; i >= 0; i-- {
			stack = append(stack, item{top.n.children[i], top.depth + 1})
		}
	}
}
