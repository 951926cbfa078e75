package list

// Node represents a list node.
//
// A linked node is kept alive by both of its neighbours. Nodes never touch
// the state of the list that owns them; all linking goes through LinkAfter,
// LinkBefore and Unlink.
type Node[T comparable] struct {
	Value T
	prev  *Node[T]
	next  *Node[T]
}

// NewNode returns a detached node holding v.
func NewNode[T comparable](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the next node or nil if n is the last node of its chain.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the previous node or nil if n is the first node of its chain.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Equal reports whether n and o hold equal values. Links are ignored.
// Two nil nodes are equal, a nil and a non-nil node are not.
func (n *Node[T]) Equal(o *Node[T]) bool {
	if n == nil || o == nil {
		return n == nil && o == nil
	}

	return n.Value == o.Value
}

// LinkAfter links the detached node s directly after n.
func (n *Node[T]) LinkAfter(s *Node[T]) {
	s.prev = n
	s.next = n.next

	if s.next != nil {
		s.next.prev = s
	}

	n.next = s
}

// LinkBefore links the detached node s directly before n.
func (n *Node[T]) LinkBefore(s *Node[T]) {
	s.next = n
	s.prev = n.prev

	if s.prev != nil {
		s.prev.next = s
	}

	n.prev = s
}

// Unlink detaches n from its chain, joins its former neighbours and returns them.
func (n *Node[T]) Unlink() (prev, next *Node[T]) {
	prev, next = n.prev, n.next

	if prev != nil {
		prev.next = next
	}

	if next != nil {
		next.prev = prev
	}

	n.prev = nil
	n.next = nil

	return prev, next
}

// ChainEqual reports whether the chains starting at a and b hold equal values
// in the same order, walking towards Next. It stops at the first mismatch.
func ChainEqual[T comparable](a, b *Node[T]) bool {
	for a != nil && b != nil {
		if a == b {
			// Same node, the rest of the chain is shared.
			return true
		}

		if !a.Equal(b) {
			return false
		}

		a, b = a.next, b.next
	}

	return a == nil && b == nil
}
