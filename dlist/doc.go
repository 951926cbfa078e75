/*
Package dlist implements a doubly linked list that works both as a stack (LIFO) and as a queue (FIFO).

Insertion and removal at either end are O(1). The list is not safe for concurrent access.

# Example Usage

## Stack and queue

The head is the end affected by PushFront and PopFront, the tail is the end affected by
PushBack and PopBack.

	func stackAndQueue() {
		var l dlist.List[int] // The zero value is an empty list.

		l.PushBack(1)
		l.PushBack(2)
		l.PushBack(3)

		fmt.Println(l.String()) // [1 2 3]

		fmt.Println(l.PopFront()) // 1, queue order.
		fmt.Println(l.PopBack())  // 3, stack order.
		fmt.Println(l.Len())      // 1

		// Reading from an empty list returns the zero value.
		l.Clear()
		fmt.Println(l.PopFront()) // 0

		// Use the Try variants to tell an empty list from a stored zero value.
		if _, ok := l.TryPopFront(); !ok {
			// Handle empty list.
		}
	}

## Iteration

Four cursor flavours share one implementation: forward and reverse, each mutable or read-only.
A cursor compares equal to another when both are sentinels or both hold equal values.

	func iteration() {
		l := dlist.New(dlist.WithValues(1, 2, 3))

		for it := l.Begin(); !it.Equal(l.End()); it.Next() {
			it.Set(it.Value() * 10)
		}

		for it := l.CRBegin(); !it.Equal(l.CREnd()); it.Next() {
			fmt.Println(it.Value()) // 30, 20, 10
		}

		// Range over functions for the common case.
		for v := range l.All() {
			fmt.Println(v) // 10, 20, 30
		}
	}

## Copy, move and concatenation

	func values() {
		a := dlist.New(dlist.WithValues(1, 2))
		b := dlist.New(dlist.WithValues(3, 4))

		c := dlist.Concat(a, b) // [1 2 3 4], a and b are unchanged.
		a.Append(b)             // a is [1 2 3 4].

		d := c.Clone()  // Independent deep copy.
		e := d.Move()   // e owns the elements, d is empty.

		fmt.Println(a.Equal(c), d.Empty(), e.Equal(c)) // true true true
	}
*/
package dlist
