package object

import (
	"strings"

	"github.com/tealvm/teal/errors"
)

// List is an ordered sequence of values, used to carry multi-value results
// and argument lists in stack order. Lists are immutable once built: the
// operations below return new lists rather than mutating in place.
type List struct {
	items []Value
}

func (l *List) Type() Type {
	return LIST
}

func (l *List) Inspect() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, item := range l.items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(item.Inspect())
	}
	sb.WriteString("]")
	return sb.String()
}

// Value returns the underlying items. Callers must not modify the result.
func (l *List) Value() []Value {
	return l.items
}

func (l *List) Interface() interface{} {
	out := make([]interface{}, len(l.items))
	for i, item := range l.items {
		out[i] = item.Interface()
	}
	return out
}

func (l *List) String() string {
	return l.Inspect()
}

func (l *List) Equals(other Value) bool {
	o, ok := other.(*List)
	if !ok || len(l.items) != len(o.items) {
		return false
	}
	for i, item := range l.items {
		if !item.Equals(o.items[i]) {
			return false
		}
	}
	return true
}

// Size returns the number of elements in the list.
func (l *List) Size() int {
	return len(l.items)
}

// Get returns the element at 0-based index i.
func (l *List) Get(i int) (Value, error) {
	if i < 0 || i >= len(l.items) {
		return nil, errors.IndexOutOfRangef("index out of range: %d (list size %d)", i, len(l.items))
	}
	return l.items[i], nil
}

// Reverse returns a new list with the element order inverted.
func (l *List) Reverse() *List {
	items := make([]Value, len(l.items))
	for i, item := range l.items {
		items[len(l.items)-1-i] = item
	}
	return &List{items: items}
}

// Append returns a new list with v after the existing elements.
func (l *List) Append(v Value) *List {
	items := make([]Value, 0, len(l.items)+1)
	items = append(items, l.items...)
	items = append(items, v)
	return &List{items: items}
}

// NewList builds a list from the given items. The slice is copied.
func NewList(items []Value) *List {
	copied := make([]Value, len(items))
	copy(copied, items)
	return &List{items: copied}
}

// Size returns the number of values v represents: the element count for a
// list, 1 for a bare scalar.
func Size(v Value) int {
	if l, ok := v.(*List); ok {
		return l.Size()
	}
	return 1
}

// Get returns the value at 0-based index i of v. A bare scalar acts as a
// one-element list: index 0 returns the scalar itself.
func Get(i int, v Value) (Value, error) {
	if l, ok := v.(*List); ok {
		return l.Get(i)
	}
	if i != 0 {
		return nil, errors.IndexOutOfRangef("index out of range: %d (scalar value)", i)
	}
	return v, nil
}

// Maybe is an optional value: the zero Maybe is "no value", which is
// distinct from holding an empty list.
type Maybe struct {
	value Value
	ok    bool
}

// Some wraps a present value.
func Some(v Value) Maybe {
	return Maybe{value: v, ok: true}
}

// None returns the absent value.
func None() Maybe {
	return Maybe{}
}

// IsNone reports whether no value is present.
func (m Maybe) IsNone() bool {
	return !m.ok
}

// Value returns the wrapped value and whether one is present.
func (m Maybe) Value() (Value, bool) {
	return m.value, m.ok
}

// Size returns 0 when no value is present, else the size of the wrapped
// value (1 for a scalar, the element count for a list).
func (m Maybe) Size() int {
	if !m.ok {
		return 0
	}
	return Size(m.value)
}
