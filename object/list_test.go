package object

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tealvm/teal/errors"
)

func TestListGet(t *testing.T) {
	a := NewUint64(1)
	b := NewBytes([]byte("b"))
	c := NewUint64(3)
	list := NewList([]Value{a, b, c})

	got, err := list.Get(0)
	require.Nil(t, err)
	require.Same(t, Value(a), got)

	got, err = list.Get(2)
	require.Nil(t, err)
	require.Same(t, Value(c), got)

	_, err = list.Get(3)
	require.True(t, errors.IsIndexOutOfRange(err))

	_, err = list.Get(-1)
	require.True(t, errors.IsIndexOutOfRange(err))
}

func TestListReverse(t *testing.T) {
	list := NewList([]Value{NewUint64(1), NewUint64(2), NewUint64(3)})

	rev := list.Reverse()
	require.True(t, rev.Equals(NewList([]Value{NewUint64(3), NewUint64(2), NewUint64(1)})))
	require.Equal(t, list.Size(), rev.Size())

	// involution
	require.True(t, rev.Reverse().Equals(list))

	// the input is untouched
	first, err := list.Get(0)
	require.Nil(t, err)
	require.True(t, first.Equals(NewUint64(1)))
}

func TestListAppend(t *testing.T) {
	list := NewList([]Value{NewUint64(1)})

	grown := list.Append(NewUint64(2))
	require.True(t, grown.Equals(NewList([]Value{NewUint64(1), NewUint64(2)})))

	// the input is untouched
	require.Equal(t, 1, list.Size())
}

func TestListEquals(t *testing.T) {
	l1 := NewList([]Value{NewUint64(1), NewBytes([]byte("x"))})
	l2 := NewList([]Value{NewUint64(1), NewBytes([]byte("x"))})
	require.True(t, l1.Equals(l2))

	require.False(t, l1.Equals(NewList([]Value{NewUint64(1)})))
	require.False(t, l1.Equals(NewUint64(1)))
}

func TestListInspect(t *testing.T) {
	list := NewList([]Value{NewUint64(1), NewBytes([]byte("x"))})
	require.Equal(t, `[1, bytes("x")]`, list.Inspect())
	require.Equal(t, "[]", NewList(nil).Inspect())
}

func TestScalarAsSingleton(t *testing.T) {
	v := NewUint64(9)

	require.Equal(t, 1, Size(v))

	got, err := Get(0, v)
	require.Nil(t, err)
	require.Same(t, Value(v), got)

	_, err = Get(1, v)
	require.True(t, errors.IsIndexOutOfRange(err))

	_, err = Get(-1, v)
	require.True(t, errors.IsIndexOutOfRange(err))
}

func TestSizeOfList(t *testing.T) {
	require.Equal(t, 0, Size(NewList(nil)))
	require.Equal(t, 2, Size(NewList([]Value{NewUint64(1), NewUint64(2)})))
}

func TestMaybe(t *testing.T) {
	none := None()
	require.True(t, none.IsNone())
	require.Equal(t, 0, none.Size())
	_, ok := none.Value()
	require.False(t, ok)

	// "no value" differs from an empty list: only the former has IsNone
	some := Some(NewList(nil))
	require.False(t, some.IsNone())
	require.Equal(t, 0, some.Size())

	scalar := Some(NewUint64(1))
	require.Equal(t, 1, scalar.Size())

	wide := Some(NewList([]Value{NewUint64(1), NewUint64(2), NewUint64(3)}))
	require.Equal(t, 3, wide.Size())
}

func TestPair(t *testing.T) {
	p := NewPair(NewBytes([]byte("key")), NewUint64(7))
	require.Equal(t, PAIR, p.Type())
	require.Equal(t, `(bytes("key"), 7)`, p.Inspect())
	require.True(t, p.First().Equals(NewBytes([]byte("key"))))
	require.True(t, p.Second().Equals(NewUint64(7)))

	require.True(t, p.Equals(NewPair(NewBytes([]byte("key")), NewUint64(7))))
	require.False(t, p.Equals(NewPair(NewBytes([]byte("key")), NewUint64(8))))
	require.False(t, p.Equals(NewUint64(7)))
}

func TestPairListReverseAppend(t *testing.T) {
	p1 := NewPair(NewUint64(1), NewUint64(10))
	p2 := NewPair(NewUint64(2), NewUint64(20))
	p3 := NewPair(NewUint64(3), NewUint64(30))
	list := NewPairList([]*Pair{p1, p2})

	rev := list.Reverse()
	require.True(t, rev.Equals(NewPairList([]*Pair{p2, p1})))
	require.True(t, rev.Reverse().Equals(list))
	require.Equal(t, list.Size(), rev.Size())

	grown := list.Append(p3)
	require.True(t, grown.Equals(NewPairList([]*Pair{p1, p2, p3})))
	require.Equal(t, 2, list.Size())

	got, err := grown.Get(2)
	require.Nil(t, err)
	require.True(t, got.Equals(p3))

	_, err = grown.Get(3)
	require.True(t, errors.IsIndexOutOfRange(err))
}
