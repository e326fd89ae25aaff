package dynamic_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dynamic-var/dynamic"
)

func TestRenderScalars(t *testing.T) {
	tests := []struct {
		name string
		v    dynamic.Value
		want string
	}{
		{"null", dynamic.Null(), "none"},
		{"true", dynamic.Bool(true), "true"},
		{"false", dynamic.Bool(false), "false"},
		{"int", dynamic.Int(-42), "-42"},
		{"int_min", dynamic.Int(math.MinInt32), "-2147483648"},
		{"double", dynamic.Double(5.5), "5.5"},
		{"double_whole", dynamic.Double(3), "3"},
		{"double_small", dynamic.Double(1e-7), "1e-07"},
		{"double_inf", dynamic.Double(math.Inf(1)), "+Inf"},
		{"string", dynamic.Str("plover"), "'plover'"},
		{"empty_string", dynamic.Str(""), "''"},
		{"wstring", dynamic.WStr("héllo"), "'héllo'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.String())
		})
	}
}

func TestRenderCollections(t *testing.T) {
	assert.Equal(t, "[]", dynamic.MakeVector().String())
	assert.Equal(t, "{}", dynamic.MakeMap().String())
	assert.Equal(t, "[1 'two' 3.5 none]", dynamic.MakeVector(1, "two", 3.5, nil).String())
	assert.Equal(t, "{'a':4 'b':5.5 'c':'plover'}",
		dynamic.MakeMap("c", "plover", "a", 4, "b", 5.5).String())
	assert.Equal(t, "{1:[true false] 'k':{}}",
		dynamic.MakeMap("k", dynamic.MakeMap(), 1, dynamic.MakeVector(true, false)).String())
}

func TestRenderEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"newline_quote", "a\nb'c", `'a\nb\'c'`},
		{"named", "\b\r\f\t\\", `'\b\r\f\t\\'`},
		{"octal_one", "\x01", `'\001'`},
		{"octal_escape", "\x1b[0m", `'\033[0m'`},
		{"nul", "a\x00b", `'a\000b'`},
		{"utf8", "日本", `'日本'`},
		{"double_quote", `say "hi"`, `'say "hi"'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dynamic.Str(tt.in).String())
			assert.Equal(t, tt.want, dynamic.WStr(tt.in).String())
		})
	}
}

func TestRenderInvalidUTF8PassesThrough(t *testing.T) {
	assert.Equal(t, "'\xff'", dynamic.Str("\xff").String())
}

func TestWriteTo(t *testing.T) {
	v := dynamic.MakeMap("k", dynamic.MakeVector(1, 2))
	var buf bytes.Buffer
	n, err := v.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, "{'k':[1 2]}", buf.String())
	assert.Equal(t, int64(buf.Len()), n)
}

func TestWriteToDepthLimit(t *testing.T) {
	v := dynamic.MakeVector()
	require.NoError(t, v.Append(v))

	var buf bytes.Buffer
	_, err := v.WriteTo(&buf)
	requireCode(t, err, dynamic.CodeLimitDepth)
	assert.True(t, errors.Is(err, dynamic.ErrLimitDepth))

	s := v.String()
	assert.True(t, strings.HasPrefix(s, strings.Repeat("[", dynamic.MaxDepth)))

	_, err = v.Fingerprint()
	requireCode(t, err, dynamic.CodeLimitDepth)
}

func nest(levels int) dynamic.Value {
	v := dynamic.MakeVector()
	for i := 1; i < levels; i++ {
		v = dynamic.MakeVector(v)
	}
	return v
}

func TestEqualDepthLimit(t *testing.T) {
	a := dynamic.MakeVector()
	require.NoError(t, a.Append(a))
	b := dynamic.MakeVector()
	require.NoError(t, b.Append(b))

	assert.False(t, a.Equal(b))
	assert.True(t, a.NotEqual(b))
	assert.True(t, a.Equal(a))

	m := dynamic.MakeMap()
	require.NoError(t, m.Put("self", m))
	n := dynamic.MakeMap()
	require.NoError(t, n.Put("self", n))
	assert.False(t, m.Equal(n))

	assert.True(t, nest(dynamic.MaxDepth).Equal(nest(dynamic.MaxDepth)))
	assert.False(t, nest(dynamic.MaxDepth+1).Equal(nest(dynamic.MaxDepth+1)))
}

func TestDepthLimitBoundary(t *testing.T) {
	var buf bytes.Buffer
	_, err := nest(dynamic.MaxDepth).WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("[", dynamic.MaxDepth)+strings.Repeat("]", dynamic.MaxDepth), buf.String())

	buf.Reset()
	_, err = nest(dynamic.MaxDepth + 1).WriteTo(&buf)
	requireCode(t, err, dynamic.CodeLimitDepth)
}

func TestFingerprint(t *testing.T) {
	build := func() dynamic.Value {
		return dynamic.MakeMap("a", dynamic.MakeVector(1, 2.5), "b", "x")
	}
	f1, err := build().Fingerprint()
	require.NoError(t, err)
	f2, err := build().Fingerprint()
	require.NoError(t, err)
	assert.Equal(t, f1, f2)
	assert.True(t, strings.HasPrefix(f1, "dyn1:"))
	assert.Len(t, f1, 69)

	f3, err := dynamic.MakeMap("a", dynamic.MakeVector(1, 2.5), "b", "y").Fingerprint()
	require.NoError(t, err)
	assert.NotEqual(t, f1, f3)

	// same digits, different kinds
	fi, _ := dynamic.Int(1).Fingerprint()
	fs, _ := dynamic.Str("1").Fingerprint()
	assert.NotEqual(t, fi, fs)
}
