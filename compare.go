package dynamic

import (
	"cmp"
	"slices"
	"strings"

	"github.com/emirpasic/gods/utils"
)

// Compare is the map key order: values of different kinds order by Kind,
// values of the same kind by payload.  Two collections of the same kind
// always compare equal, so a map holds at most one vector key and one map
// key.  Doubles use cmp.Compare, so NaN keys sort before all other doubles
// and equal only each other.  Compare never fails.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	switch a.kind {
	case KindBool:
		switch {
		case a.b == b.b:
			return 0
		case !a.b:
			return -1
		default:
			return 1
		}
	case KindInt:
		return cmp.Compare(a.i, b.i)
	case KindDouble:
		// NaN sorts first and equals only NaN
		return cmp.Compare(a.d, b.d)
	case KindString:
		return strings.Compare(a.s, b.s)
	case KindWString:
		return slices.Compare(a.ws, b.ws)
	default:
		// null, vector, map
		return 0
	}
}

var keyComparator utils.Comparator = func(a, b interface{}) int {
	return Compare(*a.(*Value), *b.(*Value))
}

// ── Equality ────────────────────────────────────────────────

// Equal reports whether v and x (converted with From) have the same kind
// and payload.  Vectors are equal when they have the same length and equal
// elements in order; maps when they have the same size and equal key/value
// pairs in key order.  A literal From rejects is never equal.
func (v Value) Equal(x any) bool {
	w, err := From(x)
	if err != nil {
		return false
	}
	return equal(v, w, 0)
}

// NotEqual is !Equal.
func (v Value) NotEqual(x any) bool {
	return !v.Equal(x)
}

// equal compares structurally.  depth counts enclosing collections; past
// MaxDepth the values are reported unequal.
func equal(a, b Value, depth int) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindDouble:
		return a.d == b.d
	case KindString:
		return a.s == b.s
	case KindWString:
		return slices.Equal(a.ws, b.ws)
	case KindVector:
		if a.vec == b.vec {
			return true
		}
		if depth+1 > MaxDepth || a.vec.Size() != b.vec.Size() {
			return false
		}
		for i := 0; i < a.vec.Size(); i++ {
			if !equal(*elementAt(a.vec, i), *elementAt(b.vec, i), depth+1) {
				return false
			}
		}
		return true
	case KindMap:
		if a.m == b.m {
			return true
		}
		if depth+1 > MaxDepth || a.m.Size() != b.m.Size() {
			return false
		}
		ai, bi := a.m.Iterator(), b.m.Iterator()
		for ai.Next() && bi.Next() {
			if !equal(*ai.Key().(*Value), *bi.Key().(*Value), depth+1) ||
				!equal(*ai.Value().(*Value), *bi.Value().(*Value), depth+1) {
				return false
			}
		}
		return true
	}
	return false
}

// ── Ordering ────────────────────────────────────────────────

// Less reports v < x.  It fails with ERR_INVALID_COMPARISON when the kinds
// differ or either side is null or a collection.
func (v Value) Less(x any) (bool, error) {
	c, ok, err := v.order("<", x)
	return ok && c < 0, err
}

// LessEqual reports v <= x under the same rules as Less.
func (v Value) LessEqual(x any) (bool, error) {
	c, ok, err := v.order("<=", x)
	return ok && c <= 0, err
}

// Greater reports v > x under the same rules as Less.
func (v Value) Greater(x any) (bool, error) {
	c, ok, err := v.order(">", x)
	return ok && c > 0, err
}

// GreaterEqual reports v >= x under the same rules as Less.
func (v Value) GreaterEqual(x any) (bool, error) {
	c, ok, err := v.order(">=", x)
	return ok && c >= 0, err
}

// order compares two orderable values.  ok is false when the pair is
// unordered (a NaN is involved), in which case every operator yields false.
func (v Value) order(op string, x any) (c int, ok bool, err error) {
	w, err := From(x)
	if err != nil {
		return 0, false, err
	}
	if v.kind != w.kind {
		return 0, false, newErrf(CodeInvalidComparison, "invalid %s comparison of %s to %s", op, v.kind, w.kind)
	}
	switch v.kind {
	case KindNull:
		return 0, false, newErrf(CodeInvalidComparison, "invalid %s comparison to none", op)
	case KindVector, KindMap:
		return 0, false, newErrf(CodeInvalidComparison, "%s %s not supported", v.kind, op)
	case KindDouble:
		if v.d != v.d || w.d != w.d {
			return 0, false, nil
		}
	}
	return Compare(v, w), true, nil
}
