// Package dynamic implements a dynamically typed value: a closed tagged
// union over null, bool, int, double, narrow and wide strings, vectors and
// ordered maps.
//
// Scalars and strings have value semantics.  Collections are held by
// reference: copying a Value that holds a vector or map (plain Go
// assignment, passing it by value) yields a second handle on the same
// collection, and mutations through either handle are visible through
// both.  Independently built collections never alias.
//
// Collections are built with a small chainable protocol:
//
//	v := dynamic.MakeVector(1).With("hello").With(10.5)
//	m := dynamic.MakeMap("a", 4).WithPair("b", 5.5).WithPair("c", "plover")
//	fmt.Println(m) // {'a':4 'b':5.5 'c':'plover'}
//
// Indexing a map with a non-int key inserts the key with a Null value when
// it is absent, so writes through Index always land:
//
//	p, _ := m.Index("d")
//	*p = dynamic.Str("new")
//
// Map keys are ordered by Compare: kind first (in Kind declaration order),
// then payload.
//
// Nothing in this package is safe for concurrent use.  Callers sharing a
// collection between goroutines must synchronise every access themselves.
package dynamic

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
)

// Kind is the active variant of a Value.  Declaration order is the order
// used for map keys of different kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDouble
	KindString
	KindWString
	KindVector
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindWString:
		return "wstring"
	case KindVector:
		return "vector"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is a dynamically typed value.  The zero Value is Null.
//
// Only the payload field matching kind is meaningful.  Vector elements and
// map entries are stored as *Value so Index can hand out stable, writable
// references.
type Value struct {
	kind Kind

	b  bool
	i  int32
	d  float64
	s  string
	ws []rune // never written after construction

	vec *arraylist.List // of *Value
	m   *treemap.Map    // *Value -> *Value, ordered by Compare
}

// ── Constructors ────────────────────────────────────────────

// Null returns a Null value.
func Null() Value {
	return Value{}
}

// Bool returns a bool value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an int value.
func Int(n int32) Value {
	return Value{kind: KindInt, i: n}
}

// Double returns a double value.
func Double(f float64) Value {
	return Value{kind: KindDouble, d: f}
}

// Str returns a narrow string value.
func Str(s string) Value {
	return Value{kind: KindString, s: s}
}

// WStr returns a wide string value holding the code points of s.
func WStr(s string) Value {
	return Value{kind: KindWString, ws: []rune(s)}
}

// WRunes returns a wide string value holding a private copy of r.
func WRunes(r []rune) Value {
	ws := make([]rune, len(r))
	copy(ws, r)
	return Value{kind: KindWString, ws: ws}
}

func newVector() Value {
	return Value{kind: KindVector, vec: arraylist.New()}
}

func newMap() Value {
	return Value{kind: KindMap, m: treemap.NewWith(keyComparator)}
}

// MakeVector returns a new vector seeded with items, in order.  It panics
// with an *Error if an item cannot be converted by From.
func MakeVector(items ...any) Value {
	v := newVector()
	for _, item := range items {
		v.With(item)
	}
	return v
}

// MakeMap returns a new map seeded with alternating keys and values.  A
// trailing key without a value maps to Null, so MakeMap(k) mirrors a
// one-key map and MakeMap(k, v) a one-pair map.  It panics with an *Error
// if an argument cannot be converted by From.
func MakeMap(keysAndValues ...any) Value {
	v := newMap()
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 == len(keysAndValues) {
			v.With(keysAndValues[i])
			break
		}
		v.WithPair(keysAndValues[i], keysAndValues[i+1])
	}
	return v
}

// Set assigns a literal to the value pointed at, replacing kind and payload.
func (v *Value) Set(x any) error {
	nv, err := From(x)
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

// ── Type queries ────────────────────────────────────────────

// Kind returns the active kind.
func (v Value) Kind() Kind { return v.kind }

// Name returns the active kind's name.
func (v Value) Name() string { return v.kind.String() }

func (v Value) IsNull() bool       { return v.kind == KindNull }
func (v Value) IsBool() bool       { return v.kind == KindBool }
func (v Value) IsInt() bool        { return v.kind == KindInt }
func (v Value) IsDouble() bool     { return v.kind == KindDouble }
func (v Value) IsNumeric() bool    { return v.IsInt() || v.IsDouble() }
func (v Value) IsString() bool     { return v.kind == KindString }
func (v Value) IsWString() bool    { return v.kind == KindWString }
func (v Value) IsStringType() bool { return v.IsString() || v.IsWString() }
func (v Value) IsVector() bool     { return v.kind == KindVector }
func (v Value) IsMap() bool        { return v.kind == KindMap }
func (v Value) IsCollection() bool { return v.IsVector() || v.IsMap() }

// IsList, IsDict and IsSet are kept for callers written against the older
// list/set/dict kinds, which vectors and maps replaced.
func (v Value) IsList() bool { return v.IsVector() }
func (v Value) IsDict() bool { return v.IsMap() }
func (v Value) IsSet() bool  { return v.IsMap() }

// ── Conversions ─────────────────────────────────────────────

func (v Value) mismatch(want Kind) error {
	return newErrf(CodeTypeMismatch, "cannot convert %s to %s", v.kind, want)
}

// AsBool returns the payload of a bool value.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, v.mismatch(KindBool)
	}
	return v.b, nil
}

// AsInt returns the payload of an int value.  Doubles are not converted.
func (v Value) AsInt() (int, error) {
	if v.kind != KindInt {
		return 0, v.mismatch(KindInt)
	}
	return int(v.i), nil
}

// AsDouble returns the payload of a double value.  Ints are not converted.
func (v Value) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, v.mismatch(KindDouble)
	}
	return v.d, nil
}

// AsString returns the payload of a narrow string value.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.s, nil
}

// AsWString returns the payload of a wide string value as a Go string.
func (v Value) AsWString() (string, error) {
	if v.kind != KindWString {
		return "", v.mismatch(KindWString)
	}
	return string(v.ws), nil
}

// AsRunes returns a copy of a wide string value's code points.
func (v Value) AsRunes() ([]rune, error) {
	if v.kind != KindWString {
		return nil, v.mismatch(KindWString)
	}
	r := make([]rune, len(v.ws))
	copy(r, v.ws)
	return r, nil
}
