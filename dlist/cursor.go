package dlist

import "go.expect.digital/container/internal/list"

// Direction selects the way a cursor walks the list.
type Direction interface {
	Forward | Reverse

	reversed() bool
}

// Forward cursors advance from head to tail.
type Forward struct{}

func (Forward) reversed() bool { return false }

// Reverse cursors advance from tail to head.
type Reverse struct{}

func (Reverse) reversed() bool { return true }

// Cursor is a read-only position in a list walking in direction D.
//
// A cursor past the last element (or before the first one) is a sentinel.
// Value, Next and Prev must not be called on a sentinel, and a cursor must
// not be used after the element it points at has been removed from the list.
type Cursor[T comparable, D Direction] struct {
	node *list.Node[T]
}

// Value returns the value at the cursor.
func (c Cursor[T, D]) Value() T { //nolint:ireturn
	return c.node.Value
}

// Valid reports whether the cursor points at an element.
func (c Cursor[T, D]) Valid() bool {
	return c.node != nil
}

// Next advances the cursor by one element in its direction.
func (c *Cursor[T, D]) Next() {
	c.node = step[T, D](c.node, false)
}

// Prev moves the cursor back by one element.
func (c *Cursor[T, D]) Prev() {
	c.node = step[T, D](c.node, true)
}

// Equal reports whether both cursors are sentinels or both point at equal values.
// Distinct positions holding equal values are equal; use Same to compare positions.
func (c Cursor[T, D]) Equal(o Cursor[T, D]) bool {
	return c.node.Equal(o.node)
}

// Same reports whether both cursors point at the same position.
func (c Cursor[T, D]) Same(o Cursor[T, D]) bool {
	return c.node == o.node
}

func step[T comparable, D Direction](n *list.Node[T], back bool) *list.Node[T] {
	var d D

	if d.reversed() != back {
		return n.Prev()
	}

	return n.Next()
}

// MutableCursor is a Cursor that can also modify the value it points at.
type MutableCursor[T comparable, D Direction] struct {
	Cursor[T, D]
}

// Set replaces the value at the cursor.
func (c MutableCursor[T, D]) Set(v T) {
	c.node.Value = v
}

// Ptr returns a pointer to the value at the cursor.
func (c MutableCursor[T, D]) Ptr() *T {
	return &c.node.Value
}

// Const returns the read-only view of c.
func (c MutableCursor[T, D]) Const() Cursor[T, D] {
	return c.Cursor
}

// Equal is Cursor.Equal for mutable cursors.
func (c MutableCursor[T, D]) Equal(o MutableCursor[T, D]) bool {
	return c.Cursor.Equal(o.Cursor)
}

// Same is Cursor.Same for mutable cursors.
func (c MutableCursor[T, D]) Same(o MutableCursor[T, D]) bool {
	return c.Cursor.Same(o.Cursor)
}

type (
	Iterator[T comparable]             = MutableCursor[T, Forward]
	ConstIterator[T comparable]        = Cursor[T, Forward]
	ReverseIterator[T comparable]      = MutableCursor[T, Reverse]
	ConstReverseIterator[T comparable] = Cursor[T, Reverse]
)

// Begin returns an iterator at the head.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{Cursor: ConstIterator[T]{node: l.head}}
}

// End returns the sentinel past the tail.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// RBegin returns a reverse iterator at the tail.
func (l *List[T]) RBegin() ReverseIterator[T] {
	return ReverseIterator[T]{Cursor: ConstReverseIterator[T]{node: l.tail}}
}

// REnd returns the sentinel before the head.
func (l *List[T]) REnd() ReverseIterator[T] {
	return ReverseIterator[T]{}
}

// CBegin is the read-only Begin.
func (l *List[T]) CBegin() ConstIterator[T] {
	return l.Begin().Const()
}

// CEnd is the read-only End.
func (l *List[T]) CEnd() ConstIterator[T] {
	return l.End().Const()
}

// CRBegin is the read-only RBegin.
func (l *List[T]) CRBegin() ConstReverseIterator[T] {
	return l.RBegin().Const()
}

// CREnd is the read-only REnd.
func (l *List[T]) CREnd() ConstReverseIterator[T] {
	return l.REnd().Const()
}
