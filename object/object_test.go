package object

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUint64(t *testing.T) {
	i := NewUint64(42)
	require.Equal(t, UINT64, i.Type())
	require.Equal(t, "42", i.Inspect())
	require.Equal(t, uint64(42), i.Value())
	require.Equal(t, uint64(42), i.Interface())

	require.True(t, i.Equals(NewUint64(42)))
	require.False(t, i.Equals(NewUint64(43)))
	require.False(t, i.Equals(NewBytes([]byte{42})))
}

func TestUint64Compare(t *testing.T) {
	cmp, err := NewUint64(1).Compare(NewUint64(2))
	require.Nil(t, err)
	require.Equal(t, -1, cmp)

	cmp, err = NewUint64(2).Compare(NewUint64(1))
	require.Nil(t, err)
	require.Equal(t, 1, cmp)

	cmp, err = NewUint64(2).Compare(NewUint64(2))
	require.Nil(t, err)
	require.Equal(t, 0, cmp)

	_, err = NewUint64(1).Compare(NewBytes(nil))
	require.NotNil(t, err)
}

func TestBytes(t *testing.T) {
	b := NewBytes([]byte("hello"))
	require.Equal(t, BYTES, b.Type())
	require.Equal(t, `bytes("hello")`, b.Inspect())
	require.Equal(t, []byte("hello"), b.Value())
	require.Equal(t, 5, b.Len())

	require.True(t, b.Equals(NewBytes([]byte("hello"))))
	require.False(t, b.Equals(NewBytes([]byte("world"))))
	require.False(t, b.Equals(NewUint64(0)))
}

func TestBytesConstructionCopies(t *testing.T) {
	src := []byte{1, 2, 3}
	b := NewBytes(src)
	src[0] = 99
	require.Equal(t, []byte{1, 2, 3}, b.Value())
}

func TestBytesCompare(t *testing.T) {
	cmp, err := NewBytes([]byte("aaa")).Compare(NewBytes([]byte("bbb")))
	require.Nil(t, err)
	require.True(t, cmp < 0)

	cmp, err = NewBytes([]byte("bbb")).Compare(NewBytes([]byte("aaa")))
	require.Nil(t, err)
	require.True(t, cmp > 0)

	_, err = NewBytes(nil).Compare(NewUint64(1))
	require.NotNil(t, err)
}

func TestLiteralValues(t *testing.T) {
	tests := []struct {
		value   Literal
		typ     Type
		inspect string
	}{
		{NewHexLiteral("0x00ff10"), HEX_LITERAL, "hex_literal(0x00ff10)"},
		{NewB32Literal("MFRGGZDFMY"), B32_LITERAL, "b32_literal(MFRGGZDFMY)"},
		{NewB64Literal("YWJjZGVm"), B64_LITERAL, "b64_literal(YWJjZGVm)"},
		{NewStringLiteral(`"abc"`), STRING_LITERAL, `string_literal("abc")`},
	}
	for _, tt := range tests {
		require.Equal(t, tt.typ, tt.value.Type())
		require.Equal(t, tt.inspect, tt.value.Inspect())
		require.True(t, tt.value.Equals(tt.value))
		require.False(t, tt.value.Equals(NewUint64(0)))
	}
}

func TestAsUint64(t *testing.T) {
	v, err := AsUint64(NewUint64(7))
	require.Nil(t, err)
	require.Equal(t, uint64(7), v)

	_, err = AsUint64(NewBytes(nil))
	require.NotNil(t, err)
}

func TestAsBytes(t *testing.T) {
	b, err := AsBytes(NewBytes([]byte{1}))
	require.Nil(t, err)
	require.Equal(t, []byte{1}, b)

	_, err = AsBytes(NewUint64(1))
	require.NotNil(t, err)
}
