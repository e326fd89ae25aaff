package dynamic

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
)

// position is the shared state of Cursor and ReverseCursor: a collection
// plus an ordinal.  Map positions also carry a tree iterator parked on the
// same entry; pos is tracked alongside it because tree iterators cannot be
// compared.
type position struct {
	vec *arraylist.List
	m   *treemap.Map
	it  treemap.Iterator
	pos int
}

func (p *position) forward() {
	p.pos++
	if p.m != nil {
		p.it.Next()
	}
}

func (p *position) backward() {
	p.pos--
	if p.m != nil {
		p.it.Prev()
	}
}

func (p position) same(o position) bool {
	if p.vec != nil {
		return p.vec == o.vec && p.pos == o.pos
	}
	return p.m != nil && p.m == o.m && p.pos == o.pos
}

func (p position) item() *Value {
	if p.vec != nil {
		return elementAt(p.vec, p.pos)
	}
	return p.it.Key().(*Value)
}

func (p position) pair() (key, val *Value, err error) {
	if p.m == nil {
		return nil, nil, newErr(CodeInvalidOperation, "invalid .pair() operation on vector")
	}
	return p.it.Key().(*Value), p.it.Value().(*Value), nil
}

// at returns a position on v's collection: ordinal 0 (first item) when
// first is set, otherwise one past the last item.
func (v Value) at(op string, first bool) (position, error) {
	switch v.kind {
	case KindVector:
		p := position{vec: v.vec, pos: v.vec.Size()}
		if first {
			p.pos = 0
		}
		return p, nil
	case KindMap:
		p := position{m: v.m, it: v.m.Iterator(), pos: v.m.Size()}
		if first {
			p.it.Begin()
			p.it.Next()
			p.pos = 0
		} else {
			p.it.End()
		}
		return p, nil
	default:
		return position{}, newErrf(CodeInvalidOperation, "invalid .%s() operation on %s", op, v.kind)
	}
}

// ── Forward cursor ──────────────────────────────────────────

// Cursor walks a vector in index order or a map in key order.  Cursors are
// values: copying one snapshots its position.  Moving a cursor before the
// first item or past End is undefined.  Appending to a collection while a
// cursor is open over it invalidates the cursor.
type Cursor struct {
	p position
}

// Begin returns a cursor on the first item of a vector or map.
func (v Value) Begin() (Cursor, error) {
	p, err := v.at("begin", true)
	return Cursor{p}, err
}

// End returns a cursor one past the last item of a vector or map.
func (v Value) End() (Cursor, error) {
	p, err := v.at("end", false)
	return Cursor{p}, err
}

// Next moves c to the following item and returns it.
func (c *Cursor) Next() *Cursor {
	c.p.forward()
	return c
}

// PostNext moves c to the following item and returns its previous state.
func (c *Cursor) PostNext() Cursor {
	old := *c
	c.p.forward()
	return old
}

// Prev moves c to the preceding item and returns it.
func (c *Cursor) Prev() *Cursor {
	c.p.backward()
	return c
}

// PostPrev moves c to the preceding item and returns its previous state.
func (c *Cursor) PostPrev() Cursor {
	old := *c
	c.p.backward()
	return old
}

// Equal reports whether both cursors sit at the same place in the same
// collection.  Cursors over different collections are never equal.
func (c Cursor) Equal(o Cursor) bool { return c.p.same(o.p) }

// Value returns the vector element, or the map key, under the cursor.
func (c Cursor) Value() *Value { return c.p.item() }

// Pair returns the key and value under a map cursor.
func (c Cursor) Pair() (key, val *Value, err error) { return c.p.pair() }

// ── Reverse cursor ──────────────────────────────────────────

// ReverseCursor walks a collection from its last item to its first.  Next
// moves toward the front.
type ReverseCursor struct {
	p position
}

// RBegin returns a reverse cursor on the last item of a vector or map.
func (v Value) RBegin() (ReverseCursor, error) {
	p, err := v.at("rbegin", false)
	if err != nil {
		return ReverseCursor{}, err
	}
	p.backward()
	return ReverseCursor{p}, nil
}

// REnd returns a reverse cursor one before the first item.
func (v Value) REnd() (ReverseCursor, error) {
	p, err := v.at("rend", true)
	if err != nil {
		return ReverseCursor{}, err
	}
	p.backward()
	return ReverseCursor{p}, nil
}

// Next moves r toward the front and returns it.
func (r *ReverseCursor) Next() *ReverseCursor {
	r.p.backward()
	return r
}

// PostNext moves r toward the front and returns its previous state.
func (r *ReverseCursor) PostNext() ReverseCursor {
	old := *r
	r.p.backward()
	return old
}

// Prev moves r toward the back and returns it.
func (r *ReverseCursor) Prev() *ReverseCursor {
	r.p.forward()
	return r
}

// PostPrev moves r toward the back and returns its previous state.
func (r *ReverseCursor) PostPrev() ReverseCursor {
	old := *r
	r.p.forward()
	return old
}

// Equal reports whether both reverse cursors sit at the same place in the
// same collection.
func (r ReverseCursor) Equal(o ReverseCursor) bool { return r.p.same(o.p) }

// Value returns the vector element, or the map key, under the cursor.
func (r ReverseCursor) Value() *Value { return r.p.item() }

// Pair returns the key and value under a map cursor.
func (r ReverseCursor) Pair() (key, val *Value, err error) { return r.p.pair() }

// Each calls fn on every item of a vector, or every key of a map, in cursor
// order until fn returns false.
func (v Value) Each(fn func(item *Value) bool) error {
	it, err := v.Begin()
	if err != nil {
		return err
	}
	end, _ := v.End()
	for ; !it.Equal(end); it.Next() {
		if !fn(it.Value()) {
			break
		}
	}
	return nil
}
