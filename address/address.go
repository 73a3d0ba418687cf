// Package address converts between 32-byte public keys and the 58-character
// checksummed base32 strings used to spell accounts in program source.
package address

import (
	"bytes"
	"crypto/sha512"
	"encoding/base32"

	"github.com/tealvm/teal/errors"
)

const (
	// ByteLen is the exact length of a decoded public key.
	ByteLen = 32
	// ChecksumLen is the length of the checksum suffix embedded in the
	// encoded string.
	ChecksumLen = 4
	// StrLen is the exact length of an encoded address string.
	StrLen = 58
)

// encoding is the unpadded base32 alphabet addresses are written in.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// Checksummer computes the ChecksumLen-byte checksum embedded in an encoded
// address. Implementations must be pure: the same input always yields the
// same checksum, with no I/O or state.
type Checksummer interface {
	Checksum(pk []byte) []byte
}

// sha512n256 is the production checksum: the trailing ChecksumLen bytes of
// the SHA-512/256 digest of the public key.
type sha512n256 struct{}

func (sha512n256) Checksum(pk []byte) []byte {
	digest := sha512.Sum512_256(pk)
	return digest[len(digest)-ChecksumLen:]
}

// Codec encodes and decodes address strings using an injected Checksummer.
type Codec struct {
	sum Checksummer
}

// NewCodec returns a Codec backed by the given checksum primitive. A nil
// Checksummer selects the production SHA-512/256 checksum.
func NewCodec(sum Checksummer) *Codec {
	if sum == nil {
		sum = sha512n256{}
	}
	return &Codec{sum: sum}
}

// Encode renders a 32-byte public key as a 58-character address string.
// Inputs of any other length are rejected before the checksum primitive
// is invoked.
func (c *Codec) Encode(pk []byte) (string, error) {
	if len(pk) != ByteLen {
		return "", errors.MalformedLiteralf("address must be %d bytes (got %d)", ByteLen, len(pk))
	}
	raw := make([]byte, 0, ByteLen+ChecksumLen)
	raw = append(raw, pk...)
	raw = append(raw, c.sum.Checksum(pk)...)
	return encoding.EncodeToString(raw), nil
}

// Decode parses a 58-character address string back into its 32 public key
// bytes, verifying the embedded checksum. Strings of any other length are
// rejected before the checksum primitive is invoked.
func (c *Codec) Decode(s string) ([]byte, error) {
	if len(s) != StrLen {
		return nil, errors.MalformedLiteralf("address must be %d characters (got %d)", StrLen, len(s))
	}
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return nil, errors.MalformedLiteralf("address %q is not valid base32: %s", s, err)
	}
	if len(raw) != ByteLen+ChecksumLen {
		return nil, errors.MalformedLiteralf("address decodes to %d bytes, want %d", len(raw), ByteLen+ChecksumLen)
	}
	pk := raw[:ByteLen]
	if !bytes.Equal(raw[ByteLen:], c.sum.Checksum(pk)) {
		return nil, errors.ChecksumMismatchf("address %q has an invalid checksum", s)
	}
	out := make([]byte, ByteLen)
	copy(out, pk)
	return out, nil
}

var defaultCodec = NewCodec(nil)

// Encode renders pk with the production checksum.
func Encode(pk []byte) (string, error) {
	return defaultCodec.Encode(pk)
}

// Decode parses s with the production checksum.
func Decode(s string) ([]byte, error) {
	return defaultCodec.Decode(s)
}
