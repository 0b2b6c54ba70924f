package licensetree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func leaf(metadata ...int) *Node {
	return NewNode(nil, metadata...)
}

func TestChecksum(t *testing.T) {
	tests := []struct {
		name string
		root *Node
		want int
	}{
		{"nil root", nil, 0},
		{"bare root", leaf(), 0},
		{"leaf", leaf(1, 1, 2), 4},
		{"nested", NewNode([]*Node{leaf(10, 11, 12), NewNode([]*Node{leaf(99)}, 2)}, 1, 1, 2), 138},
		{"negative metadata", NewNode([]*Node{leaf(-5)}, 3), -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Checksum(tt.root))
		})
	}
}

func TestValue(t *testing.T) {
	a, b := leaf(3), leaf(4, 5)

	tests := []struct {
		name string
		root *Node
		want int
	}{
		{"nil root", nil, 0},
		{"leaf sums metadata", leaf(1, 2, 3), 6},
		{"index references child", NewNode([]*Node{a, b}, 2), 9},
		{"repeated reference", NewNode([]*Node{a, b}, 1, 1, 2), 15},
		{"zero index ignored", NewNode([]*Node{a}, 0, 1), 3},
		{"out of range ignored", NewNode([]*Node{a, b}, 3, 100), 0},
		{"negative index ignored", NewNode([]*Node{a}, -1), 0},
		{"parent without metadata", NewNode([]*Node{a, b}), 0},
		{"own metadata not summed", NewNode([]*Node{leaf(7)}, 1, 50), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.root))
		})
	}
}

func TestValueSharedSubtree(t *testing.T) {
	// Every level references its single child twice. Without memoization
	// this would evaluate the bottom leaf 2^30 times.
	n := leaf(1)
	for i := 0; i < 30; i++ {
		n = NewNode([]*Node{n}, 1, 1)
	}
	assert.Equal(t, 1<<30, Value(n))
}

func TestNewNodeDropsNilChildren(t *testing.T) {
	n := NewNode([]*Node{nil, leaf(1), nil})
	assert.Equal(t, 1, n.ChildCount())
}

func TestAccessorsReturnCopies(t *testing.T) {
	n := NewNode([]*Node{leaf(1)}, 5, 6)

	meta := n.Metadata()
	meta[0] = 100
	children := n.Children()
	children[0] = nil

	assert.Equal(t, []int{5, 6}, n.Metadata())
	assert.NotNil(t, n.Children()[0])
}

func TestChild(t *testing.T) {
	first, second := leaf(1), leaf(2)
	n := NewNode([]*Node{first, second})

	got, ok := n.Child(1)
	assert.True(t, ok)
	assert.Same(t, first, got)

	got, ok = n.Child(2)
	assert.True(t, ok)
	assert.Same(t, second, got)

	for _, i := range []int{-1, 0, 3} {
		_, ok = n.Child(i)
		assert.False(t, ok, "index %d", i)
	}
}
