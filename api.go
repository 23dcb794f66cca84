package bst

import "iter"

// Tree is an unbalanced binary search tree of unique int keys, each carrying
// a payload of type T. Its shape is fixed by insertion order.
type Tree[T any] interface {
	Add(value int, payload T)
	Get(value int) (Node[T], bool)
	Contains(value int) bool
	Root() (Node[T], bool)
	Traverse(visit func(n Node[T]))
	Iterator() Iterator[T]
	All() iter.Seq[Node[T]]
	Size() int
	Values() []int
	String() string
}

// Iterator walks a tree in ascending key order. It can not be rewound.
type Iterator[T any] interface {
	HasNext() bool
	Next() (Node[T], error)
}

type Node[T any] interface {
	Value() int
	Payload() T
	Parent() (Node[T], bool)
	Left() (Node[T], bool)
	Right() (Node[T], bool)
	Depth() int
}

// Step is a single insertion fed to Replay.
type Step[T any] struct {
	Value   int
	Payload T
}

func New[T any]() Tree[T] {
	return &tree[T]{}
}

// Replay adds steps to a new tree in order. When a key repeats, the payload
// of its first step is kept.
func Replay[T any](steps []Step[T]) Tree[T] {
	t := &tree[T]{nodes: make([]node[T], 0, len(steps))}
	for _, s := range steps {
		t.Add(s.Value, s.Payload)
	}
	return t
}
