package bst

import (
	"iter"
	"strconv"
	"strings"
)

func (t *tree[T]) Size() int {
	if t == nil {
		return 0
	}
	// nothing is ever removed, so the arena holds exactly the live nodes
	return len(t.nodes)
}

func (t *tree[T]) Add(value int, payload T) {
	parent, found := t.search(value)
	if found {
		return
	}

	h := t.alloc(value, payload, parent)
	switch {
	case parent == nullHandle:
		t.root = h
	case value < t.node(parent).value:
		t.node(parent).left = h
	default:
		t.node(parent).right = h
	}
}

// search descends from the root towards value. It returns the node holding
// value, or the last node visited when value is absent.
func (t *tree[T]) search(value int) (handle, bool) {
	last := nullHandle
	for curr := t.root; curr != nullHandle; {
		last = curr
		n := t.node(curr)
		switch {
		case value < n.value:
			curr = n.left
		case value > n.value:
			curr = n.right
		default:
			return curr, true
		}
	}
	return last, false
}

func (t *tree[T]) Get(value int) (Node[T], bool) {
	h, found := t.search(value)
	if !found {
		return nil, false
	}
	return t.ref(h)
}

func (t *tree[T]) Contains(value int) bool {
	_, found := t.search(value)
	return found
}

func (t *tree[T]) Root() (Node[T], bool) {
	return t.ref(t.root)
}

func (t *tree[T]) Traverse(visit func(n Node[T])) {
	for n := range t.All() {
		visit(n)
	}
}

func (t *tree[T]) All() iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		for it := t.Iterator(); it.HasNext(); {
			n, err := it.Next()
			if err != nil || !yield(n) {
				return
			}
		}
	}
}

func (t *tree[T]) Values() []int {
	values := make([]int, 0, t.Size())
	t.Traverse(func(n Node[T]) {
		values = append(values, n.Value())
	})
	return values
}

func (t *tree[T]) String() string {
	var sb strings.Builder
	t.Traverse(func(n Node[T]) {
		if sb.Len() > 0 {
			sb.WriteString(displaySep)
		}
		sb.WriteString(strconv.Itoa(n.Value()))
	})
	return sb.String()
}

func (t *tree[T]) Iterator() Iterator[T] {
	it := &iterator[T]{tree: t}
	it.descendLeft(t.root)
	return it
}

func (it *iterator[T]) HasNext() bool {
	return it != nil && len(it.stack) > 0
}

func (it *iterator[T]) Next() (Node[T], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	top := len(it.stack) - 1
	cur := it.stack[top]
	it.stack = it.stack[:top]
	it.descendLeft(it.tree.node(cur).right)
	return nodeRef[T]{tree: it.tree, h: cur}, nil
}

// descendLeft pushes h and its chain of left children, so the smallest key
// not yet visited ends up on top.
func (it *iterator[T]) descendLeft(h handle) {
	for h != nullHandle {
		it.stack = append(it.stack, h)
		h = it.tree.node(h).left
	}
}
