package pure

import (
	"fmt"
	"reflect"
)

// fieldLookup lets a container answer named lookups without reflection.
type fieldLookup interface {
	Lookup(key string) (any, bool)
}

// lookupField resolves name against exported struct fields, string-keyed
// maps and fieldLookup implementations, following pointers.
func lookupField(v any, name string) (any, bool) {
	if l, ok := v.(fieldLookup); ok {
		return l.Lookup(name)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		f := rv.FieldByName(name)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	case reflect.Map:
		keyType := rv.Type().Key()
		if keyType.Kind() != reflect.String {
			return nil, false
		}
		e := rv.MapIndex(reflect.ValueOf(name).Convert(keyType))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	default:
		return nil, false
	}
}

// callMethod invokes the method called name on v. A nil argument stands for
// the zero value of the matching parameter.
func callMethod(v any, name string, args []any) []reflect.Value {
	var m reflect.Value
	if v != nil {
		m = reflect.ValueOf(v).MethodByName(name)
	}
	if !m.IsValid() {
		panic(fmt.Errorf("%w: %s on %T", ErrUnknownMethod, name, v))
	}

	mt := m.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		if a != nil {
			in[i] = reflect.ValueOf(a)
			continue
		}
		switch {
		case mt.IsVariadic() && i >= mt.NumIn()-1:
			in[i] = reflect.Zero(mt.In(mt.NumIn() - 1).Elem())
		case i < mt.NumIn():
			in[i] = reflect.Zero(mt.In(i))
		default:
			panic(fmt.Errorf("%w: too many arguments for %s on %T", ErrUnexpectedType, name, v))
		}
	}
	return m.Call(in)
}
