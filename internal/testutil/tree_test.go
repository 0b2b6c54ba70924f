package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeChain(t *testing.T) {
	got := EncodeChain(3, func(i int) int { return i + 10 })
	assert.Equal(t, []int{1, 1, 1, 1, 0, 1, 12, 11, 10}, got)
	assert.Equal(t, 33, ChainChecksum(3, func(i int) int { return i + 10 }))
}

func TestEncodeChainEmpty(t *testing.T) {
	assert.Nil(t, EncodeChain(0, func(int) int { return 1 }))
}

func TestEncodeWide(t *testing.T) {
	assert.Equal(t, []int{2, 1, 0, 1, 1, 0, 1, 2, 2}, EncodeWide(2, 2))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "0 3 1 1 2", Join([]int{0, 3, 1, 1, 2}))
	assert.Equal(t, "", Join(nil))
}

func TestFixedIDGenerator(t *testing.T) {
	gen := NewFixedIDGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
