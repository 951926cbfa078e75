package dlist

import "iter"

type Option[T comparable] func(*List[T])

// WithValues pushes vs onto the back of the list in order.
func WithValues[T comparable](vs ...T) Option[T] {
	return func(l *List[T]) {
		for _, v := range vs {
			l.PushBack(v)
		}
	}
}

// WithSeq pushes every value yielded by seq onto the back of the list.
func WithSeq[T comparable](seq iter.Seq[T]) Option[T] {
	return func(l *List[T]) {
		for v := range seq {
			l.PushBack(v)
		}
	}
}
