package bst

import "errors"

const (
	// handle of an absent node
	nullHandle handle = 0

	displaySep = ","
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")
)

type (
	// tree owns every node in an arena. Nodes are never moved or freed, so a
	// handle stays valid for the lifetime of the tree.
	tree[T any] struct {
		root  handle
		nodes []node[T]
	}

	// handle is a 1-based index into tree.nodes
	handle uint32

	node[T any] struct {
		value   int
		payload T
		// parent does not own; left and right do
		parent handle
		left   handle
		right  handle
	}

	// nodeRef is the public view of an arena slot
	nodeRef[T any] struct {
		tree *tree[T]
		h    handle
	}

	iterator[T any] struct {
		tree *tree[T]
		// path of nodes whose left subtree is being walked
		stack []handle
	}
)

func (t *tree[T]) node(h handle) *node[T] {
	return &t.nodes[h-1]
}

// alloc appends a detached node to the arena. Any *node taken before the call
// may point into the old backing array.
func (t *tree[T]) alloc(value int, payload T, parent handle) handle {
	t.nodes = append(t.nodes, node[T]{
		value:   value,
		payload: payload,
		parent:  parent,
	})
	return handle(len(t.nodes))
}

func (t *tree[T]) ref(h handle) (Node[T], bool) {
	if h == nullHandle {
		return nil, false
	}
	return nodeRef[T]{tree: t, h: h}, true
}
