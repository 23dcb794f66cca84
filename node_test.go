package bst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	name string
}

func TestNodeLinks(t *testing.T) {
	tree := New[*record]()
	for _, k := range []int{5, 3, 8, 1, 4} {
		tree.Add(k, &record{name: "r"})
	}

	three, ok := tree.Get(3)
	require.True(t, ok)

	parent, ok := three.Parent()
	require.True(t, ok)
	assert.Equal(t, 5, parent.Value())
	assert.Equal(t, 1, three.Depth())

	left, ok := three.Left()
	require.True(t, ok)
	assert.Equal(t, 1, left.Value())
	assert.Equal(t, 2, left.Depth())

	right, ok := three.Right()
	require.True(t, ok)
	assert.Equal(t, 4, right.Value())

	leaf, ok := left.Left()
	assert.False(t, ok)
	assert.Nil(t, leaf)

	root, ok := tree.Root()
	require.True(t, ok)
	assert.Equal(t, 0, root.Depth())
	up, ok := root.Parent()
	assert.False(t, ok)
	assert.Nil(t, up)
}

func TestNodePayloadUntouchedByDuplicate(t *testing.T) {
	tree := New[*record]()
	original := &record{name: "first"}
	tree.Add(1, original)
	tree.Add(1, &record{name: "second"})

	n, ok := tree.Get(1)
	require.True(t, ok)
	assert.Same(t, original, n.Payload())
}

func TestNodeRefSurvivesGrowth(t *testing.T) {
	tree := New[int]()
	tree.Add(0, 100)
	n, ok := tree.Get(0)
	require.True(t, ok)

	// force the arena to reallocate several times
	for k := 1; k < 1000; k++ {
		tree.Add(k, k)
	}

	assert.Equal(t, 0, n.Value())
	assert.Equal(t, 100, n.Payload())
	right, ok := n.Right()
	require.True(t, ok)
	assert.Equal(t, 1, right.Value())
}

func TestNodeString(t *testing.T) {
	tree := New[string]()
	tree.Add(-42, "x")
	n, ok := tree.Get(-42)
	require.True(t, ok)
	assert.Equal(t, "-42", n.(interface{ String() string }).String())
}
