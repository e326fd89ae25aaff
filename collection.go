package dynamic

import "github.com/emirpasic/gods/lists/arraylist"

// Append adds x to a collection: a vector gets x at the end, a map gets x
// as a key with a Null value unless the key is already present.
func (v Value) Append(x any) error {
	item, err := From(x)
	if err != nil {
		return err
	}
	switch v.kind {
	case KindVector:
		v.vec.Add(&item)
	case KindMap:
		v.insert(item, Null())
	default:
		return newErrf(CodeInvalidOperation, "invalid () operation on %s", v.kind)
	}
	return nil
}

// Put adds the pair (k, x) to a map.  An existing key keeps its value; use
// Index to overwrite.
func (v Value) Put(k, x any) error {
	if v.kind != KindMap {
		return newErrf(CodeInvalidOperation, "invalid (,) operation on %s", v.kind)
	}
	key, err := From(k)
	if err != nil {
		return err
	}
	val, err := From(x)
	if err != nil {
		return err
	}
	v.insert(key, val)
	return nil
}

// With is the chainable form of Append.  It returns v, which shares the
// collection, and panics with the *Error Append would return.
func (v Value) With(x any) Value {
	if err := v.Append(x); err != nil {
		panic(err)
	}
	return v
}

// WithPair is the chainable form of Put.
func (v Value) WithPair(k, x any) Value {
	if err := v.Put(k, x); err != nil {
		panic(err)
	}
	return v
}

// insert adds key -> val to a map if key is absent and returns the stored
// value.
func (v Value) insert(key, val Value) *Value {
	if found, ok := v.m.Get(&key); ok {
		return found.(*Value)
	}
	v.m.Put(&key, &val)
	return &val
}

// Count returns the length of a string (bytes for narrow strings, code
// points for wide strings) or the number of items in a collection.
func (v Value) Count() (int, error) {
	switch v.kind {
	case KindString:
		return len(v.s), nil
	case KindWString:
		return len(v.ws), nil
	case KindVector:
		return v.vec.Size(), nil
	case KindMap:
		return v.m.Size(), nil
	default:
		return 0, newErrf(CodeInvalidOperation, "invalid .count() operation on %s", v.kind)
	}
}

// Index returns a writable reference into a collection.
//
// An int key selects a vector element by position (ERR_INDEX_OUT_OF_RANGE
// outside [0, count)) or looks the int up as a map key without inserting
// it (ERR_KEY_NOT_FOUND).  Any other key is only valid on a map, where it
// is looked up and, when absent, inserted with a Null value whose
// reference is returned.  That insertion happens even when the caller only
// reads through the reference.
func (v Value) Index(k any) (*Value, error) {
	key, err := From(k)
	if err != nil {
		return nil, err
	}
	if key.kind == KindInt {
		return v.indexInt(int(key.i))
	}
	return v.indexValue(key)
}

func (v Value) indexInt(n int) (*Value, error) {
	switch v.kind {
	case KindVector:
		if n < 0 || n >= v.vec.Size() {
			return nil, newErrf(CodeIndexOutOfRange, "[%d] out of range in vector of %d", n, v.vec.Size())
		}
		return elementAt(v.vec, n), nil
	case KindMap:
		key := Int(int32(n))
		found, ok := v.m.Get(&key)
		if !ok {
			return nil, newErrf(CodeKeyNotFound, "[%d] not found in map", n)
		}
		return found.(*Value), nil
	default:
		return nil, newErrf(CodeInvalidOperation, "cannot apply [int] to %s", v.kind)
	}
}

func (v Value) indexValue(key Value) (*Value, error) {
	switch v.kind {
	case KindMap:
		return v.insert(key, Null()), nil
	case KindVector:
		return nil, newErrf(CodeInvalidOperation, "vector[] requires int, got %s", key.kind)
	default:
		return nil, newErrf(CodeInvalidOperation, "cannot apply [%s] to %s", key.kind, v.kind)
	}
}

// MustIndex is like Index but panics with the *Error.  It suits chained
// writes into structures whose shape is known:
//
//	*d.MustIndex("map").MustIndex("b") = dynamic.Int(7)
func (v Value) MustIndex(k any) *Value {
	p, err := v.Index(k)
	if err != nil {
		panic(err)
	}
	return p
}

// Lookup reads from a collection without inserting: any key kind on a map,
// an int position on a vector.  ok is false for a missing key, an out of
// range position, or a receiver that is not a collection.
func (v Value) Lookup(k any) (*Value, bool) {
	key, err := From(k)
	if err != nil {
		return nil, false
	}
	switch v.kind {
	case KindMap:
		found, ok := v.m.Get(&key)
		if !ok {
			return nil, false
		}
		return found.(*Value), true
	case KindVector:
		if key.kind != KindInt || key.i < 0 || int(key.i) >= v.vec.Size() {
			return nil, false
		}
		return elementAt(v.vec, int(key.i)), true
	}
	return nil, false
}

// Path applies Index once per key, descending through nested collections.
// d.Path("map", "b") is d["map"]["b"].  Upserts along the way are kept even
// if a later step fails.  With no keys the result points at a copy of v.
func (v Value) Path(keys ...any) (*Value, error) {
	cur := &v
	for _, k := range keys {
		next, err := cur.Index(k)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func elementAt(list *arraylist.List, i int) *Value {
	item, _ := list.Get(i)
	return item.(*Value)
}
