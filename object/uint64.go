package object

import (
	"fmt"

	"github.com/tealvm/teal/errors"
)

// Uint64 wraps uint64 and implements the Value interface.
// Uint64 is immutable: the value is set at construction and cannot change.
type Uint64 struct {
	value uint64
}

func (i *Uint64) Type() Type {
	return UINT64
}

func (i *Uint64) Inspect() string {
	return fmt.Sprintf("%d", i.value)
}

func (i *Uint64) Value() uint64 {
	return i.value
}

func (i *Uint64) Interface() interface{} {
	return i.value
}

func (i *Uint64) String() string {
	return i.Inspect()
}

func (i *Uint64) Equals(other Value) bool {
	o, ok := other.(*Uint64)
	return ok && i.value == o.value
}

func (i *Uint64) Compare(other Value) (int, error) {
	o, ok := other.(*Uint64)
	if !ok {
		return 0, errors.TypeErrorf("unable to compare uint64 and %s", other.Type())
	}
	switch {
	case i.value < o.value:
		return -1, nil
	case i.value > o.value:
		return 1, nil
	default:
		return 0, nil
	}
}

func NewUint64(value uint64) *Uint64 {
	return &Uint64{value: value}
}
