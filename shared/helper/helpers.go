package helper

import (
	"errors"
	"fmt"
)

var ErrUnexpectedType = errors.New("unexpected type")

// GetTypedValueOf asserts the value produced by getFn to T.
// A lookup failure (ok == false) yields the zero value and false.
func GetTypedValueOf[T any](getFn func() (any, bool)) (res T, ok bool, err error) {
	var raw any
	if raw, ok = getFn(); !ok {
		return res, false, nil
	}
	if raw == nil {
		// untyped nil converts to the zero value of any nillable T
		return res, true, nil
	}
	if res, ok = raw.(T); !ok {
		return res, true, fmt.Errorf("%w: want %T, got %T", ErrUnexpectedType, res, raw)
	}
	return res, true, nil
}

// MustGetTypedValue is the panic-on-mismatch variant of GetTypedValueOf.
// Use when the caller broke the type contract (e.g. a sort key of the wrong kind).
func MustGetTypedValue[T any](getFn func() (any, bool)) (T, bool) {
	res, ok, err := GetTypedValueOf[T](getFn)
	if err != nil {
		panic(err)
	}
	return res, ok
}
