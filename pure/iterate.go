package pure

import (
	"reflect"

	"github.com/on-the-ground/underbar_go/shared/helper"
)

// Identity returns its argument. Handy as a default key or iterator.
func Identity[T any](v T) T {
	return v
}

// Truthy reports whether v counts as true when no predicate is given:
// nil and zero values are false, everything else is true.
func Truthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return !reflect.ValueOf(v).IsZero()
}

// Each calls fn(value, index, xs) for every element, in order.
func Each[T any](xs []T, fn func(v T, i int, xs []T)) {
	for i, v := range xs {
		fn(v, i, xs)
	}
}

func Map[T, U any](xs []T, fn func(T) U) []U {
	out := make([]U, 0, len(xs))
	Each(xs, func(v T, _ int, _ []T) {
		out = append(out, fn(v))
	})
	return out
}

// Partition splits xs by position into the elements pred accepts and the
// ones it rejects. pred runs exactly once per element, so equal values are
// never confused with each other.
func Partition[T any](xs []T, pred func(T) bool) (kept, rejected []T) {
	kept = make([]T, 0, len(xs))
	rejected = make([]T, 0)
	for _, v := range xs {
		if pred(v) {
			kept = append(kept, v)
		} else {
			rejected = append(rejected, v)
		}
	}
	return kept, rejected
}

func Filter[T any](xs []T, pred func(T) bool) []T {
	kept, _ := Partition(xs, pred)
	return kept
}

// Reject is the exact complement of Filter.
func Reject[T any](xs []T, pred func(T) bool) []T {
	_, rejected := Partition(xs, pred)
	return rejected
}

// Reduce folds xs from the left.
//
// With an absent initial, xs[0] seeds the accumulator without being passed to
// fn, and folding starts at xs[1]. An empty xs with an absent initial yields
// an absent result. With a present initial, the first call is fn(initial, xs[0]).
func Reduce[T any](xs []T, fn func(acc, item T) T, initial Optional[T]) Optional[T] {
	acc, ok := initial.Get()
	rest := xs
	if !ok {
		if len(xs) == 0 {
			return Absent[T]()
		}
		acc, rest = xs[0], xs[1:]
	}
	return Present(ReduceInto(rest, fn, acc))
}

// ReduceInto folds xs into an accumulator of a different type, always starting from initial.
func ReduceInto[T, A any](xs []T, fn func(acc A, item T) A, initial A) A {
	acc := initial
	Each(xs, func(v T, _ int, _ []T) {
		acc = fn(acc, v)
	})
	return acc
}

func Contains[T comparable](xs []T, target T) bool {
	return ReduceInto(xs, func(found bool, v T) bool {
		return found || v == target
	}, false)
}

// Every stops at the first element failing pred. A nil pred tests Truthy.
func Every[T any](xs []T, pred func(T) bool) bool {
	test := predicateOrTruthy(pred)
	for _, v := range xs {
		if !test(v) {
			return false
		}
	}
	return true
}

// Some stops at the first element passing pred. A nil pred tests Truthy.
func Some[T any](xs []T, pred func(T) bool) bool {
	test := predicateOrTruthy(pred)
	for _, v := range xs {
		if test(v) {
			return true
		}
	}
	return false
}

func predicateOrTruthy[T any](pred func(T) bool) func(T) bool {
	if pred != nil {
		return pred
	}
	return func(v T) bool {
		return Truthy(v)
	}
}

// IndexOf returns the position of the first element equal to target, or -1.
func IndexOf[T comparable](xs []T, target T) int {
	for i, v := range xs {
		if v == target {
			return i
		}
	}
	return -1
}

func First[T any](xs []T) Optional[T] {
	if len(xs) == 0 {
		return Absent[T]()
	}
	return Present(xs[0])
}

// FirstN copies at most n leading elements.
func FirstN[T any](xs []T, n int) []T {
	n = min(max(n, 0), len(xs))
	out := make([]T, n)
	copy(out, xs[:n])
	return out
}

func Last[T any](xs []T) Optional[T] {
	if len(xs) == 0 {
		return Absent[T]()
	}
	return Present(xs[len(xs)-1])
}

// LastN copies at most n trailing elements.
func LastN[T any](xs []T, n int) []T {
	n = min(max(n, 0), len(xs))
	out := make([]T, n)
	copy(out, xs[len(xs)-n:])
	return out
}

// Pluck reads the field named key from every element. Elements lacking the
// field contribute the zero value; a field of another type than V panics.
func Pluck[T, V any](xs []T, key string) []V {
	return Map(xs, func(v T) V {
		res, _ := helper.MustGetTypedValue[V](func() (any, bool) {
			return lookupField(v, key)
		})
		return res
	})
}
