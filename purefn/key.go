package purefn

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

var ErrUnserializableArgument = errors.New("argument has no canonical form")

// rendered is the canonical form of an argument that cannot be compared
// directly. Its own type keeps it apart from a string argument with the
// same text.
type rendered string

// canonicalOf returns a comparable stand-in for arg. Comparable non-pointer
// values stand for themselves, so int(1) and "1" never collide and
// unexported fields count. Anything else is rendered as text: Stringers
// through String(), the rest through %#v (type, every field, sorted map keys).
func canonicalOf(arg any) any {
	if arg == nil {
		return nil
	}
	rv := reflect.ValueOf(arg)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		panic(fmt.Errorf("%w: %s", ErrUnserializableArgument, rv.Type()))
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			panic(fmt.Errorf("%w: NaN", ErrUnserializableArgument))
		}
		return arg
	case reflect.Pointer:
	default:
		if rv.Comparable() {
			return arg
		}
	}
	if s, ok := arg.(fmt.Stringer); ok {
		return rendered(fmt.Sprintf("%T:%s", arg, s.String()))
	}
	checkRenderable(rv, make(map[visit]struct{}))
	return rendered(fmt.Sprintf("%#v", arg))
}

type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// checkRenderable panics unless %#v of rv is finite and describes values
// rather than code: no cycles, no funcs, no channels.
func checkRenderable(rv reflect.Value, path map[visit]struct{}) {
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		panic(fmt.Errorf("%w: contains %s", ErrUnserializableArgument, rv.Type()))
	case reflect.Interface:
		if !rv.IsNil() {
			checkRenderable(rv.Elem(), path)
		}
		return
	case reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			checkRenderable(rv.Index(i), path)
		}
		return
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			checkRenderable(rv.Field(i), path)
		}
		return
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if rv.IsNil() || (rv.Kind() == reflect.Slice && rv.Len() == 0) {
			return
		}
	default:
		return
	}

	v := visit{ptr: rv.Pointer(), typ: rv.Type()}
	if rv.Kind() == reflect.Slice {
		v.len = rv.Len()
	}
	if _, ok := path[v]; ok {
		panic(fmt.Errorf("%w: cyclic %s", ErrUnserializableArgument, rv.Type()))
	}
	path[v] = struct{}{}
	defer delete(path, v)

	switch rv.Kind() {
	case reflect.Pointer:
		checkRenderable(rv.Elem(), path)
	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			checkRenderable(iter.Key(), path)
			checkRenderable(iter.Value(), path)
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			checkRenderable(rv.Index(i), path)
		}
	}
}

// argumentKey is the canonical form of one call's argument list.
// path walks the Trie: comparable arguments step by their own value, rendered
// ones by an xxhash digest of their text. canon settles digest collisions
// inside a bucket.
type argumentKey struct {
	path  []TrieKey
	canon []any
}

func keyOf(args []any) argumentKey {
	k := argumentKey{
		path:  make([]TrieKey, len(args)),
		canon: make([]any, len(args)),
	}
	for i, arg := range args {
		c := canonicalOf(arg)
		k.canon[i] = c
		if r, ok := c.(rendered); ok {
			k.path[i] = xxhash.Sum64String(string(r))
			continue
		}
		k.path[i] = c
	}
	return k
}
