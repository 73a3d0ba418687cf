package teal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tealvm/teal/address"
	"github.com/tealvm/teal/errors"
	"github.com/tealvm/teal/object"
	"github.com/tealvm/teal/token"
)

func TestNormalize(t *testing.T) {
	addrStr, err := address.Encode(make([]byte, address.ByteLen))
	require.Nil(t, err)

	tests := []struct {
		text string
		want []byte
	}{
		{"0x00ff10", []byte{0x00, 0xff, 0x10}},
		{"base64(YWJjZGVm)", []byte("abcdef")},
		{"b32 MFRGGZDFMY", []byte("abcdef")},
		{`"hello world"`, []byte("hello world")},
		{addrStr, make([]byte, address.ByteLen)},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.text)
		require.Nil(t, err, "literal: %s", tt.text)
		require.Equal(t, tt.want, got)
	}
}

func TestNormalizeErrors(t *testing.T) {
	for _, text := range []string{
		"0xabc",
		"base64",
		"0x00 trailing",
		"",
	} {
		_, err := Normalize(text)
		require.NotNil(t, err, "literal: %s", text)
		require.True(t, errors.IsMalformedLiteral(err))
	}
}

func TestRenderRoundTrip(t *testing.T) {
	b := []byte{0x00, 0xff, 0x10}

	s, err := Render(b, token.HEX)
	require.Nil(t, err)
	got, err := Normalize(s)
	require.Nil(t, err)
	require.Equal(t, b, got)

	s, err = Render(b, token.STRING)
	require.Nil(t, err)
	got, err = Normalize(s)
	require.Nil(t, err)
	require.Equal(t, b, got)

	// base32/base64 renderings are bare payloads; spell them the way a
	// program would to scan them back
	s, err = Render(b, token.BASE64)
	require.Nil(t, err)
	got, err = Normalize("base64(" + s + ")")
	require.Nil(t, err)
	require.Equal(t, b, got)

	s, err = Render(b, token.BASE32)
	require.Nil(t, err)
	got, err = Normalize("b32 " + s)
	require.Nil(t, err)
	require.Equal(t, b, got)
}

func TestNormalizeValue(t *testing.T) {
	v, err := NormalizeValue(object.NewHexLiteral("0x616263"))
	require.Nil(t, err)
	require.True(t, v.Equals(object.NewBytes([]byte("abc"))))
}
