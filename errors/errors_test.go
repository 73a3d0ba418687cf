package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "malformed literal", KindMalformedLiteral.String())
	require.Equal(t, "checksum mismatch", KindChecksumMismatch.String())
	require.Equal(t, "index out of range", KindIndexOutOfRange.String())
	require.Equal(t, "type error", KindType.String())
}

func TestErrorMessage(t *testing.T) {
	err := MalformedLiteralf("odd number of hex digits in %q", "0xabc")
	require.Equal(t, `malformed literal: odd number of hex digits in "0xabc"`, err.Error())
	require.Equal(t, KindMalformedLiteral, err.Kind())
}

func TestKindPredicates(t *testing.T) {
	require.True(t, IsMalformedLiteral(MalformedLiteralf("bad")))
	require.True(t, IsChecksumMismatch(ChecksumMismatchf("bad")))
	require.True(t, IsIndexOutOfRange(IndexOutOfRangef("bad")))
	require.True(t, IsType(TypeErrorf("bad")))

	require.False(t, IsChecksumMismatch(MalformedLiteralf("bad")))
	require.False(t, IsMalformedLiteral(nil))
	require.False(t, IsMalformedLiteral(fmt.Errorf("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	inner := ChecksumMismatchf("embedded checksum does not match")
	wrapped := fmt.Errorf("decoding address: %w", inner)
	require.True(t, IsChecksumMismatch(wrapped))
	require.True(t, HasKind(wrapped, KindChecksumMismatch))
	require.False(t, HasKind(wrapped, KindMalformedLiteral))
}
