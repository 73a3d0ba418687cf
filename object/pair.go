package object

import (
	"fmt"
	"strings"

	"github.com/tealvm/teal/errors"
)

// Pair is a 2-tuple of values, used by operations that yield two correlated
// results, such as key/value outputs.
type Pair struct {
	first  Value
	second Value
}

func (p *Pair) Type() Type {
	return PAIR
}

func (p *Pair) Inspect() string {
	return fmt.Sprintf("(%s, %s)", p.first.Inspect(), p.second.Inspect())
}

func (p *Pair) First() Value {
	return p.first
}

func (p *Pair) Second() Value {
	return p.second
}

func (p *Pair) Interface() interface{} {
	return [2]interface{}{p.first.Interface(), p.second.Interface()}
}

func (p *Pair) Equals(other Value) bool {
	o, ok := other.(*Pair)
	return ok && p.first.Equals(o.first) && p.second.Equals(o.second)
}

func NewPair(first, second Value) *Pair {
	return &Pair{first: first, second: second}
}

// PairList is an ordered sequence of pairs with the same pure reverse and
// append semantics as List.
type PairList struct {
	items []*Pair
}

func (l *PairList) Type() Type {
	return PAIR_LIST
}

func (l *PairList) Inspect() string {
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

// Value returns the underlying pairs. Callers must not modify the result.
func (l *PairList) Value() []*Pair {
	return l.items
}

func (l *PairList) Interface() interface{} {
	out := make([]interface{}, len(l.items))
	for i, item := range l.items {
		out[i] = item.Interface()
	}
	return out
}

func (l *PairList) Equals(other Value) bool {
	o, ok := other.(*PairList)
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

// Size returns the number of pairs in the list.
func (l *PairList) Size() int {
	return len(l.items)
}

// Get returns the pair at 0-based index i.
func (l *PairList) Get(i int) (*Pair, error) {
	if i < 0 || i >= len(l.items) {
		return nil, errors.IndexOutOfRangef("index out of range: %d (pair list size %d)", i, len(l.items))
	}
	return l.items[i], nil
}

// Reverse returns a new pair list with the element order inverted.
func (l *PairList) Reverse() *PairList {
	items := make([]*Pair, len(l.items))
	for i, item := range l.items {
		items[len(l.items)-1-i] = item
	}
	return &PairList{items: items}
}

// Append returns a new pair list with p after the existing elements.
func (l *PairList) Append(p *Pair) *PairList {
	items := make([]*Pair, 0, len(l.items)+1)
	items = append(items, l.items...)
	items = append(items, p)
	return &PairList{items: items}
}

// NewPairList builds a pair list from the given pairs. The slice is copied.
func NewPairList(items []*Pair) *PairList {
	copied := make([]*Pair, len(items))
	copy(copied, items)
	return &PairList{items: copied}
}
