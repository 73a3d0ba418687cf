package object

import (
	"github.com/tealvm/teal/errors"
)

// *****************************************************************************
// Type assertion helpers
// *****************************************************************************

func AsUint64(v Value) (uint64, error) {
	i, ok := v.(*Uint64)
	if !ok {
		return 0, errors.TypeErrorf("expected a uint64 (%s given)", v.Type())
	}
	return i.value, nil
}

func AsBytes(v Value) ([]byte, error) {
	b, ok := v.(*Bytes)
	if !ok {
		return nil, errors.TypeErrorf("expected bytes (%s given)", v.Type())
	}
	return b.value, nil
}

func AsList(v Value) (*List, error) {
	l, ok := v.(*List)
	if !ok {
		return nil, errors.TypeErrorf("expected a list (%s given)", v.Type())
	}
	return l, nil
}

func AsPair(v Value) (*Pair, error) {
	p, ok := v.(*Pair)
	if !ok {
		return nil, errors.TypeErrorf("expected a pair (%s given)", v.Type())
	}
	return p, nil
}
