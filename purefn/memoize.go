package purefn

import (
	"slices"
)

type memoEntry[R any] struct {
	canon []any
	value R
}

type memoTable[R any] struct {
	trie *Trie[[]memoEntry[R]]
}

func newMemoTable[R any](maxEntries uint32) memoTable[R] {
	return memoTable[R]{trie: NewTrie[[]memoEntry[R]](maxEntries)}
}

// call returns the cached result for args, running compute on a miss.
// compute may re-enter the memoized function (recursive definitions).
func (m memoTable[R]) call(args []any, compute func() R) R {
	key := keyOf(args)
	if v, ok := m.lookup(key); ok {
		return v
	}

	v := compute()
	bucket, _ := m.trie.Load(key.path)
	m.trie.Store(key.path, append(slices.Clip(bucket), memoEntry[R]{canon: key.canon, value: v}))
	return v
}

func (m memoTable[R]) lookup(key argumentKey) (R, bool) {
	bucket, _ := m.trie.Load(key.path)
	for _, e := range bucket {
		if slices.Equal(e.canon, key.canon) {
			return e.value, true
		}
	}
	var zero R
	return zero, false
}

func toAny[A any](args []A) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// Memoize caches fn's results by the canonical form of the whole argument
// list: argument values and argument count both distinguish entries.
//
// Comparable arguments (numbers, strings, structs of them, including
// unexported fields) key by ==, so pointers inside them key by identity.
// Maps, slices and other non-comparable values key by their %#v rendering,
// except fmt.Stringers, which key by String(): a String() that omits state
// makes values that differ only in that state share one entry. Channels,
// funcs and cyclic values panic with ErrUnserializableArgument. The cache is
// unbounded and private to the returned function.
func Memoize[A, R any](fn func(args ...A) R) func(args ...A) R {
	return MemoizeBounded(fn, 0)
}

// MemoizeBounded is Memoize with the cache rotated after maxEntries distinct
// argument lists; 0 means unbounded.
func MemoizeBounded[A, R any](fn func(args ...A) R, maxEntries uint32) func(args ...A) R {
	table := newMemoTable[R](maxEntries)
	return func(args ...A) R {
		return table.call(toAny(args), func() R {
			return fn(args...)
		})
	}
}

func Memoize1[I1, O any](fn func(I1) O) func(I1) O {
	table := newMemoTable[O](0)
	return func(i1 I1) O {
		return table.call([]any{i1}, func() O {
			return fn(i1)
		})
	}
}

func Memoize2[I1, I2, O any](fn func(I1, I2) O) func(I1, I2) O {
	table := newMemoTable[O](0)
	return func(i1 I1, i2 I2) O {
		return table.call([]any{i1, i2}, func() O {
			return fn(i1, i2)
		})
	}
}

func Memoize3[I1, I2, I3, O any](fn func(I1, I2, I3) O) func(I1, I2, I3) O {
	table := newMemoTable[O](0)
	return func(i1 I1, i2 I2, i3 I3) O {
		return table.call([]any{i1, i2, i3}, func() O {
			return fn(i1, i2, i3)
		})
	}
}
