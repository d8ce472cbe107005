package orderedbuffer

import (
	"sort"
)

type CompareFunc[T any] func(a, b T) int

// OrderedBuffer keeps its items sorted by compare.
// Items comparing equal keep their insertion order, so popping from the
// front is FIFO among ties.
//
// It is not safe for concurrent use; owners serialize access.
type OrderedBuffer[T any] struct {
	data    []T
	compare CompareFunc[T]
}

func NewOrderedBuffer[T any](initialCap int, cmp CompareFunc[T]) *OrderedBuffer[T] {
	if initialCap < 0 {
		initialCap = 0
	}
	return &OrderedBuffer[T]{
		data:    make([]T, 0, initialCap),
		compare: cmp,
	}
}

// Insert places val after every item that does not sort after it.
func (b *OrderedBuffer[T]) Insert(val T) {
	// binary search for the first strictly greater item
	idx := sort.Search(len(b.data), func(i int) bool {
		return b.compare(val, b.data[i]) < 0
	})

	b.data = append(b.data, val)
	copy(b.data[idx+1:], b.data[idx:])
	b.data[idx] = val
}

func (b *OrderedBuffer[T]) Peek() (T, bool) {
	if len(b.data) == 0 {
		var zero T
		return zero, false
	}
	return b.data[0], true
}

func (b *OrderedBuffer[T]) Pop() (T, bool) {
	head, ok := b.Peek()
	if !ok {
		return head, false
	}
	var zero T
	b.data[0] = zero
	b.data = b.data[1:]
	return head, true
}

// PopWhile pops items from the front as long as keep reports true.
func (b *OrderedBuffer[T]) PopWhile(keep func(T) bool) []T {
	n := 0
	for n < len(b.data) && keep(b.data[n]) {
		n++
	}
	if n == 0 {
		return nil
	}
	out := make([]T, n)
	copy(out, b.data[:n])
	clear(b.data[:n])
	b.data = b.data[n:]
	return out
}

func (b *OrderedBuffer[T]) Len() int {
	return len(b.data)
}
