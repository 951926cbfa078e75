package dlist

import "testing"

func BenchmarkPushBackPopFront(b *testing.B) {
	var l List[int]

	b.ReportAllocs()
	b.ResetTimer()

	for i := range b.N {
		l.PushBack(i)
		l.PopFront()
	}
}

func BenchmarkIterate(b *testing.B) {
	l := New[int]()

	for i := range 1024 {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		for it := l.CBegin(); !it.Equal(l.CEnd()); it.Next() {
			_ = it.Value()
		}
	}
}

func BenchmarkClone(b *testing.B) {
	l := New[int]()

	for i := range 1024 {
		l.PushBack(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		_ = l.Clone()
	}
}
