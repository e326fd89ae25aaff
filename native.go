package dynamic

import (
	"math"
	"reflect"
)

// From converts a Go value to a Value.  Every operation that accepts a
// literal (Append, Index, Equal, Less, ...) goes through From, so
// v.Equal(5) and v.Equal(dynamic.Int(5)) behave identically.
//
// Accepted inputs:
//
//   - nil                         → Null
//   - Value, *Value               → the value itself (collections alias)
//   - bool                        → Bool
//   - any Go integer in int32     → Int
//   - float32, float64            → Double
//   - string                      → String
//   - []rune and []int32          → WString (copied), named types too
//   - slices and arrays           → new Vector, elements converted
//   - maps                        → new Map, keys and values converted
//   - pointers and interfaces     → the pointed-to value, nil → Null
//
// rune is an alias of int32, so every slice of int32 elements, named or
// not, becomes a wide string rather than a vector of ints.
//
// Anything else, and integers outside the 32-bit range, fail with
// ERR_TYPE_MISMATCH.
func From(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case *Value:
		if t == nil {
			return Null(), nil
		}
		return *t, nil
	case bool:
		return Bool(t), nil
	case int:
		return fromInt64(int64(t))
	case int32:
		return Int(t), nil
	case int64:
		return fromInt64(t)
	case float64:
		return Double(t), nil
	case string:
		return Str(t), nil
	case []rune:
		return WRunes(t), nil
	}
	return fromReflectValue(reflect.ValueOf(x))
}

// MustFrom is like From but panics with the *Error.
func MustFrom(x any) Value {
	v, err := From(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromInt64(n int64) (Value, error) {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return Value{}, newErrf(CodeTypeMismatch, "integer %d overflows int", n)
	}
	return Int(int32(n)), nil
}

func fromReflectValue(rv reflect.Value) (Value, error) {
	if !rv.IsValid() {
		return Null(), nil
	}

	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fromInt64(rv.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt32 {
			return Value{}, newErrf(CodeTypeMismatch, "integer %d overflows int", u)
		}
		return Int(int32(u)), nil

	case reflect.Float32, reflect.Float64:
		return Double(rv.Float()), nil

	case reflect.String:
		return Str(rv.String()), nil

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Int32 && rv.Kind() == reflect.Slice {
			// named []rune or []int32; reflect cannot tell them apart
			r := make([]rune, rv.Len())
			for i := range r {
				r[i] = rune(rv.Index(i).Int())
			}
			return Value{kind: KindWString, ws: r}, nil
		}
		v := newVector()
		for i := 0; i < rv.Len(); i++ {
			item, err := fromReflectValue(rv.Index(i))
			if err != nil {
				return Value{}, err
			}
			v.vec.Add(&item)
		}
		return v, nil

	case reflect.Map:
		v := newMap()
		iter := rv.MapRange()
		for iter.Next() {
			k, err := fromReflectValue(iter.Key())
			if err != nil {
				return Value{}, err
			}
			val, err := fromReflectValue(iter.Value())
			if err != nil {
				return Value{}, err
			}
			v.insert(k, val)
		}
		return v, nil

	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.CanInterface() {
			switch t := rv.Interface().(type) {
			case Value:
				return t, nil
			case *Value:
				return *t, nil
			}
		}
		return fromReflectValue(rv.Elem())

	case reflect.Struct:
		if rv.CanInterface() {
			if t, ok := rv.Interface().(Value); ok {
				return t, nil
			}
		}
	}
	return Value{}, newErrf(CodeTypeMismatch, "cannot convert Go type %s", rv.Type())
}
