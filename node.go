package bst

import "strconv"

func (r nodeRef[T]) Value() int {
	return r.tree.node(r.h).value
}

func (r nodeRef[T]) Payload() T {
	return r.tree.node(r.h).payload
}

func (r nodeRef[T]) Parent() (Node[T], bool) {
	return r.tree.ref(r.tree.node(r.h).parent)
}

func (r nodeRef[T]) Left() (Node[T], bool) {
	return r.tree.ref(r.tree.node(r.h).left)
}

func (r nodeRef[T]) Right() (Node[T], bool) {
	return r.tree.ref(r.tree.node(r.h).right)
}

// Depth counts the hops from the node up to the root.
func (r nodeRef[T]) Depth() int {
	depth := 0
	for p := r.tree.node(r.h).parent; p != nullHandle; p = r.tree.node(p).parent {
		depth++
	}
	return depth
}

func (r nodeRef[T]) String() string {
	return strconv.Itoa(r.Value())
}
