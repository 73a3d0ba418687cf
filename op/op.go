// Package op defines the pseudo-opcodes whose arguments are the value
// literals this module normalizes. Nothing here dispatches or executes;
// the catalog tells a caller which literal kind each pseudo-op expects.
package op

// ArgKind describes the kind of literal argument a pseudo-op takes.
type ArgKind uint16

const (
	// ArgUint64 is an unsigned integer constant.
	ArgUint64 ArgKind = iota
	// ArgBytes is any byte literal: hex, base32, base64, or quoted string.
	ArgBytes
	// ArgAddress is a 58-character checksummed address literal.
	ArgAddress
)

// String returns the string representation of the argument kind.
func (k ArgKind) String() string {
	switch k {
	case ArgUint64:
		return "uint64"
	case ArgBytes:
		return "bytes"
	case ArgAddress:
		return "address"
	default:
		return "unknown"
	}
}

// Info contains information about a pseudo-op.
type Info struct {
	Name    string
	ArgKind ArgKind
}

var infos = []Info{
	{Name: "int", ArgKind: ArgUint64},
	{Name: "byte", ArgKind: ArgBytes},
	{Name: "addr", ArgKind: ArgAddress},
}

// Lookup returns information about the named pseudo-op.
func Lookup(name string) (Info, bool) {
	for _, info := range infos {
		if info.Name == name {
			return info, true
		}
	}
	return Info{}, false
}

// Names returns the names of all pseudo-ops in catalog order.
func Names() []string {
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
