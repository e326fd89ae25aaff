package dynamic

import (
	"bytes"
	"io"
	"strconv"
)

// WriteTo writes the text rendering of v to w.  It is a display format;
// nothing in this package parses it back.
//
//	none true 42 5.5 'it\'s' [1 2] {'a':1 'b':[]}
//
// Strings are single-quoted with \b \r \n \f \t \\ \' escapes and \NNN
// octal escapes for the remaining control characters.  Map pairs appear in
// key order.  Nesting deeper than MaxDepth fails with ERR_LIMIT_DEPTH.
func (v Value) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	werr := writeValue(&buf, v, 0)
	n, err := buf.WriteTo(w)
	if werr != nil {
		return n, werr
	}
	return n, err
}

// String returns the text rendering of v.  Past MaxDepth the rendering is
// truncated.
func (v Value) String() string {
	var buf bytes.Buffer
	_ = writeValue(&buf, v, 0)
	return buf.String()
}

// writeValue appends the rendering of v to buf.  depth counts enclosing
// collections; the root starts at 0.
func writeValue(buf *bytes.Buffer, v Value, depth int) error {
	switch v.kind {
	case KindNull:
		buf.WriteString(NullToken)

	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))

	case KindInt:
		buf.WriteString(strconv.FormatInt(int64(v.i), 10))

	case KindDouble:
		buf.WriteString(strconv.FormatFloat(v.d, 'g', -1, 64))

	case KindString:
		buf.WriteByte(quote)
		for i := 0; i < len(v.s); i++ {
			writeChar(buf, rune(v.s[i]), true)
		}
		buf.WriteByte(quote)

	case KindWString:
		buf.WriteByte(quote)
		for _, r := range v.ws {
			writeChar(buf, r, false)
		}
		buf.WriteByte(quote)

	case KindVector:
		if depth+1 > MaxDepth {
			return newErr(CodeLimitDepth, "nesting exceeds MaxDepth")
		}
		buf.WriteByte(vectorOpen)
		for i := 0; i < v.vec.Size(); i++ {
			if i > 0 {
				buf.WriteByte(itemSep)
			}
			if err := writeValue(buf, *elementAt(v.vec, i), depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(vectorClose)

	case KindMap:
		if depth+1 > MaxDepth {
			return newErr(CodeLimitDepth, "nesting exceeds MaxDepth")
		}
		buf.WriteByte(mapOpen)
		it := v.m.Iterator()
		for i := 0; it.Next(); i++ {
			if i > 0 {
				buf.WriteByte(itemSep)
			}
			if err := writeValue(buf, *it.Key().(*Value), depth+1); err != nil {
				return err
			}
			buf.WriteByte(pairSep)
			if err := writeValue(buf, *it.Value().(*Value), depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(mapClose)
	}
	return nil
}

// writeChar writes one string character, escaped.  Narrow strings are
// walked byte by byte, so raw is set and bytes of multi-byte UTF-8
// sequences are copied through untouched.
func writeChar(buf *bytes.Buffer, r rune, raw bool) {
	switch r {
	case '\b':
		buf.WriteString(`\b`)
	case '\r':
		buf.WriteString(`\r`)
	case '\n':
		buf.WriteString(`\n`)
	case '\f':
		buf.WriteString(`\f`)
	case '\t':
		buf.WriteString(`\t`)
	case '\\':
		buf.WriteString(`\\`)
	case '\'':
		buf.WriteString(`\'`)
	default:
		switch {
		case r >= 0 && r < 0x20:
			buf.WriteByte('\\')
			o := strconv.FormatInt(int64(r), 8)
			for i := len(o); i < 3; i++ {
				buf.WriteByte('0')
			}
			buf.WriteString(o)
		case raw:
			buf.WriteByte(byte(r))
		default:
			buf.WriteRune(r)
		}
	}
}
