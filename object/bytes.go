package object

import (
	"bytes"
	"fmt"

	"github.com/tealvm/teal/errors"
)

// Bytes is the canonical byte-string value. Construction copies the input so
// no caller can alias the stored bytes; length is unbounded at this layer.
type Bytes struct {
	value []byte
}

func (b *Bytes) Type() Type {
	return BYTES
}

func (b *Bytes) Inspect() string {
	return fmt.Sprintf("bytes(%q)", b.value)
}

// Value returns the underlying bytes. Callers must not modify the result.
func (b *Bytes) Value() []byte {
	return b.value
}

func (b *Bytes) Interface() interface{} {
	return b.value
}

func (b *Bytes) String() string {
	return b.Inspect()
}

func (b *Bytes) Len() int {
	return len(b.value)
}

func (b *Bytes) Equals(other Value) bool {
	o, ok := other.(*Bytes)
	return ok && bytes.Equal(b.value, o.value)
}

func (b *Bytes) Compare(other Value) (int, error) {
	o, ok := other.(*Bytes)
	if !ok {
		return 0, errors.TypeErrorf("unable to compare bytes and %s", other.Type())
	}
	return bytes.Compare(b.value, o.value), nil
}

func NewBytes(value []byte) *Bytes {
	copied := make([]byte, len(value))
	copy(copied, value)
	return &Bytes{value: copied}
}
