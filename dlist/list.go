package dlist

import (
	"fmt"
	"iter"
	"strings"

	"go.expect.digital/container/internal/list"
)

// zeroValue returns the zero value of the type.
func zeroValue[T any]() (zero T) { //nolint:ireturn
	return
}

// List is a doubly linked list usable both as a stack and as a queue.
//
// The zero value is a ready to use empty list. A List is not safe for
// concurrent use.
type List[T comparable] struct {
	head *list.Node[T]
	tail *list.Node[T]
	n    int
}

// New returns a new list configured by options.
func New[T comparable](options ...Option[T]) *List[T] {
	l := new(List[T])

	for _, f := range options {
		f(l)
	}

	return l
}

// From returns a new list holding the values of seq in order.
func From[T comparable](seq iter.Seq[T]) *List[T] {
	return New(WithSeq(seq))
}

// Len returns the number of elements of the list.
func (l *List[T]) Len() int { return l.n }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool {
	return l.head == nil && l.tail == nil && l.n == 0
}

// PushFront inserts v at the head.
func (l *List[T]) PushFront(v T) {
	node := list.NewNode(v)

	if l.Empty() {
		l.head = node
		l.tail = node
	} else {
		l.head.LinkBefore(node)
		l.head = node
	}

	l.n++
}

// PushBack inserts v at the tail.
func (l *List[T]) PushBack(v T) {
	node := list.NewNode(v)

	if l.Empty() {
		l.head = node
		l.tail = node
	} else {
		l.tail.LinkAfter(node)
		l.tail = node
	}

	l.n++
}

// PopFront removes and returns the head value.
// It returns the zero value if the list is empty.
func (l *List[T]) PopFront() T { //nolint:ireturn
	v, _ := l.TryPopFront()

	return v
}

// PopBack removes and returns the tail value.
// It returns the zero value if the list is empty.
func (l *List[T]) PopBack() T { //nolint:ireturn
	v, _ := l.TryPopBack()

	return v
}

// TryPopFront removes and returns the head value.
// The boolean is false if the list is empty.
func (l *List[T]) TryPopFront() (T, bool) { //nolint:ireturn
	if l.Empty() {
		return zeroValue[T](), false
	}

	node := l.head
	_, next := node.Unlink()

	l.head = next
	if next == nil {
		l.tail = nil
	}

	l.n--

	return node.Value, true
}

// TryPopBack removes and returns the tail value.
// The boolean is false if the list is empty.
func (l *List[T]) TryPopBack() (T, bool) { //nolint:ireturn
	if l.Empty() {
		return zeroValue[T](), false
	}

	node := l.tail
	prev, _ := node.Unlink()

	l.tail = prev
	if prev == nil {
		l.head = nil
	}

	l.n--

	return node.Value, true
}

// PeekFront returns the head value without removing it.
// It returns the zero value if the list is empty.
func (l *List[T]) PeekFront() T { //nolint:ireturn
	v, _ := l.TryPeekFront()

	return v
}

// PeekBack returns the tail value without removing it.
// It returns the zero value if the list is empty.
func (l *List[T]) PeekBack() T { //nolint:ireturn
	v, _ := l.TryPeekBack()

	return v
}

// TryPeekFront returns the head value. The boolean is false if the list is empty.
func (l *List[T]) TryPeekFront() (T, bool) { //nolint:ireturn
	if l.Empty() {
		return zeroValue[T](), false
	}

	return l.head.Value, true
}

// TryPeekBack returns the tail value. The boolean is false if the list is empty.
func (l *List[T]) TryPeekBack() (T, bool) { //nolint:ireturn
	if l.Empty() {
		return zeroValue[T](), false
	}

	return l.tail.Value, true
}

// Clear removes all elements, unlinking them one by one from the head.
func (l *List[T]) Clear() {
	for l.head != nil {
		_, l.head = l.head.Unlink()
	}

	l.tail = nil
	l.n = 0
}

// Equal reports whether l and o hold equal values in the same order.
// A nil list equals an empty one.
func (l *List[T]) Equal(o *List[T]) bool {
	if l == nil || o == nil {
		return l.isEmpty() && o.isEmpty()
	}

	if l.n != o.n {
		return false
	}

	return list.ChainEqual(l.head, o.head)
}

func (l *List[T]) isEmpty() bool {
	return l == nil || l.Empty()
}

// Append pushes a copy of every value of o, head to tail, onto the tail of l
// and returns l. o is not modified; l.Append(l) doubles l.
func (l *List[T]) Append(o *List[T]) *List[T] {
	if o.isEmpty() {
		return l
	}

	// o may be l itself, bound the walk by its length before growing.
	node := o.head

	for range o.n {
		l.PushBack(node.Value)
		node = node.Next()
	}

	return l
}

// Concat returns a new list holding the values of a followed by the values of b.
// Neither a nor b is modified.
func Concat[T comparable](a, b *List[T]) *List[T] {
	return a.Clone().Append(b)
}

// Clone returns a deep copy of l. The copy shares no nodes with l.
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])

	if l != nil {
		c.Append(l)
	}

	return c
}

// Assign replaces the contents of l with a copy of src.
// The copy is built before l is touched.
func (l *List[T]) Assign(src *List[T]) {
	c := src.Clone()

	l.Swap(c)
}

// Move returns a new list that takes over the elements of l in O(1).
// l is left empty and ready for reuse.
func (l *List[T]) Move() *List[T] {
	m := new(List[T])

	m.Swap(l)

	return m
}

// MoveFrom releases the elements of l and takes over the elements of src.
// src is left empty and ready for reuse.
func (l *List[T]) MoveFrom(src *List[T]) {
	if l == src {
		return
	}

	l.Clear()

	if src != nil {
		l.Swap(src)
	}
}

// Swap exchanges the contents of l and o in O(1).
func (l *List[T]) Swap(o *List[T]) {
	l.head, o.head = o.head, l.head
	l.tail, o.tail = o.tail, l.tail
	l.n, o.n = o.n, l.n
}

// All returns an iterator over the values from head to tail.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head; node != nil; node = node.Next() {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.tail; node != nil; node = node.Prev() {
			if !yield(node.Value) {
				return
			}
		}
	}
}

// String formats the values from head to tail as "[v1 v2 ...]".
func (l *List[T]) String() string {
	var b strings.Builder

	b.WriteByte('[')

	sep := ""

	for v := range l.All() {
		b.WriteString(sep)
		fmt.Fprint(&b, v)

		sep = " "
	}

	b.WriteByte(']')

	return b.String()
}
