// Package object provides the runtime values the evaluator pushes, pops,
// and inspects by tag.
//
// Exactly two canonical value kinds exist: unsigned 64-bit integers and byte
// strings. The remaining types are transient literal spellings of a byte
// string (hex, base32, base64, quoted string, address) that Normalize
// resolves into canonical bytes, and the ordered lists used to carry
// multi-value results.
//
// Callers will often type assert a Value to a concrete type:
//
//	switch v := v.(type) {
//	case *object.Uint64:
//		// do something with v.Value()
//	case *object.Bytes:
//		// do something with v.Value()
//	}
//
// Everything here is immutable once built; operations return new values and
// are safe to use concurrently without synchronization.
package object

// Type of a value as a string.
type Type string

// Type constants
const (
	UINT64         Type = "uint64"
	BYTES          Type = "bytes"
	HEX_LITERAL    Type = "hex_literal"
	B32_LITERAL    Type = "b32_literal"
	B64_LITERAL    Type = "b64_literal"
	STRING_LITERAL Type = "string_literal"
	ADDR_LITERAL   Type = "addr_literal"
	LIST           Type = "list"
	PAIR           Type = "pair"
	PAIR_LIST      Type = "pair_list"
)

// Value is the interface implemented by every runtime value.
type Value interface {
	// Type of the value.
	Type() Type

	// Inspect returns a string representation of the value.
	Inspect() string

	// Interface converts the value to a native Go value.
	Interface() interface{}

	// Equals returns true if the given value is equal to this value.
	Equals(other Value) bool
}

// Comparable is an interface used to compare two values.
//
//	-1 if this < other
//	 0 if this == other
//	 1 if this > other
type Comparable interface {
	Compare(other Value) (int, error)
}
