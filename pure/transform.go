package pure

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"reflect"
	"slices"

	"github.com/on-the-ground/underbar_go/shared/helper"
)

// Uniq keeps the first occurrence of every distinct value.
func Uniq[T comparable](xs []T) []T {
	seen := make(map[T]struct{}, len(xs))
	return Filter(xs, func(v T) bool {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
		return true
	})
}

// UniqSorted assumes xs is already grouped by key and drops every element
// whose key equals the key of the element kept just before it.
// Equal keys that are not adjacent both survive.
func UniqSorted[T any, K comparable](xs []T, key func(T) K) []T {
	out := make([]T, 0, len(xs))
	var last K
	for i, v := range xs {
		k := key(v)
		if i == 0 || k != last {
			out = append(out, v)
			last = k
		}
	}
	return out
}

// Criterion selects the sort key of an element, either by calling a function
// or by reading a named field.
type Criterion[T any, K cmp.Ordered] struct {
	fn    func(T) K
	field string
}

func ByFunc[T any, K cmp.Ordered](fn func(T) K) Criterion[T, K] {
	return Criterion[T, K]{fn: fn}
}

// ByField reads the key from the exported struct field, string map key or
// Mapping entry called name. Missing fields and keys of another type panic.
func ByField[T any, K cmp.Ordered](name string) Criterion[T, K] {
	return Criterion[T, K]{field: name}
}

func (c Criterion[T, K]) keyOf(v T) K {
	if c.fn != nil {
		return c.fn(v)
	}
	k, ok := helper.MustGetTypedValue[K](func() (any, bool) {
		return lookupField(v, c.field)
	})
	if !ok {
		panic(fmt.Errorf("%w: %q on %T", ErrUnknownField, c.field, v))
	}
	return k
}

type keyed[K cmp.Ordered, T any] struct {
	key K
	v   T
}

// SortBy returns a new slice stably sorted by ascending key.
// Each key is computed once.
func SortBy[T any, K cmp.Ordered](xs []T, c Criterion[T, K]) []T {
	ks := Map(xs, func(v T) keyed[K, T] {
		return keyed[K, T]{key: c.keyOf(v), v: v}
	})
	slices.SortStableFunc(ks, func(a, b keyed[K, T]) int {
		return cmp.Compare(a.key, b.key)
	})
	return Map(ks, func(k keyed[K, T]) T {
		return k.v
	})
}

// Zip groups the i-th elements of every input. The result is as long as the
// longest input; shorter inputs contribute Absent.
func Zip[T any](arrays ...[]T) [][]Optional[T] {
	longest := ReduceInto(arrays, func(n int, xs []T) int {
		return max(n, len(xs))
	}, 0)

	out := make([][]Optional[T], longest)
	for i := range out {
		row := make([]Optional[T], len(arrays))
		for j, xs := range arrays {
			if i < len(xs) {
				row[j] = Present(xs[i])
			}
		}
		out[i] = row
	}
	return out
}

// Flatten collapses arbitrarily nested slices and arrays into one slice,
// depth first, left to right. Byte slices and strings are kept whole.
//
// A slice reachable from itself panics with ErrCyclicStructure.
func Flatten(nested []any) []any {
	out := make([]any, 0, len(nested))
	return flattenInto(out, reflect.ValueOf(nested), make(map[sliceID]struct{}))
}

type sliceID struct {
	ptr uintptr
	len int
}

func flattenInto(out []any, rv reflect.Value, path map[sliceID]struct{}) []any {
	if rv.Kind() == reflect.Slice {
		if rv.Len() == 0 {
			return out
		}
		id := sliceID{ptr: rv.Pointer(), len: rv.Len()}
		if _, ok := path[id]; ok {
			panic(fmt.Errorf("%w: %s contains itself", ErrCyclicStructure, rv.Type()))
		}
		path[id] = struct{}{}
		defer delete(path, id)
	}

	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i)
		for elem.Kind() == reflect.Interface && !elem.IsNil() {
			elem = elem.Elem()
		}
		if nestable(elem) {
			out = flattenInto(out, elem, path)
			continue
		}
		out = append(out, elem.Interface())
	}
	return out
}

func nestable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Slice:
		return v.Type().Elem().Kind() != reflect.Uint8
	case reflect.Array:
		return true
	default:
		return false
	}
}

func setOf[T comparable](xs []T) map[T]struct{} {
	set := make(map[T]struct{}, len(xs))
	for _, v := range xs {
		set[v] = struct{}{}
	}
	return set
}

// Intersection keeps the elements of arrays[0] found in every other array.
// Order and repeats follow arrays[0].
func Intersection[T comparable](arrays ...[]T) []T {
	if len(arrays) == 0 {
		return []T{}
	}
	others := Map(arrays[1:], setOf[T])
	return Filter(arrays[0], func(v T) bool {
		return Every(others, func(set map[T]struct{}) bool {
			_, ok := set[v]
			return ok
		})
	})
}

// Difference keeps the elements of xs found in none of others, duplicates included.
func Difference[T comparable](xs []T, others ...[]T) []T {
	excluded := Map(others, setOf[T])
	return Reject(xs, func(v T) bool {
		return Some(excluded, func(set map[T]struct{}) bool {
			_, ok := set[v]
			return ok
		})
	})
}

// Selector picks what Invoke calls on each element: a method looked up by
// name, or a function receiving the element.
type Selector[T, R any] struct {
	method string
	fn     func(elem T, args ...any) R
}

func Method[T, R any](name string) Selector[T, R] {
	return Selector[T, R]{method: name}
}

func Func[T, R any](fn func(elem T, args ...any) R) Selector[T, R] {
	return Selector[T, R]{fn: fn}
}

func (s Selector[T, R]) call(v T, args []any) R {
	if s.fn != nil {
		return s.fn(v, args...)
	}
	outs := callMethod(v, s.method, args)
	if len(outs) == 0 {
		var zero R
		return zero
	}
	res, _ := helper.MustGetTypedValue[R](func() (any, bool) {
		return outs[0].Interface(), true
	})
	return res
}

// Invoke calls the selected method or function on every element with args
// and collects the first result of each call.
func Invoke[T, R any](xs []T, sel Selector[T, R], args ...any) []R {
	return Map(xs, func(v T) R {
		return sel.call(v, args)
	})
}

// Shuffle returns a uniformly random permutation of a copy of xs.
func Shuffle[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
