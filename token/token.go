// Package token defines the surface literal forms a byte value may be
// spelled in, and a scanner that recognizes them in pseudo-op argument lists.
package token

import (
	"strings"

	"github.com/tealvm/teal/errors"
)

// Form describes the surface syntax of a byte literal as a string.
type Form string

// Literal forms
const (
	HEX    Form = "hex"
	BASE32 Form = "base32"
	BASE64 Form = "base64"
	STRING Form = "string"
	ADDR   Form = "addr"
)

// Token represents one byte literal recognized in the input. Tokens are
// transient: they exist only to be decoded into canonical bytes.
//
// Text holds the payload in the shape the decoder expects: the full
// 0x-prefixed digits for HEX, the bare base32/base64 payload with any
// wrapping parens stripped, the quoted text including both quotes for
// STRING, and the 58-character string for ADDR.
type Token struct {
	Form Form
	Text string
}

// addrTextLen is the exact length of a checksummed address literal.
const addrTextLen = 58

// Scan recognizes the leading byte literal in args and reports how many
// arguments it consumed. The bare "base32"/"b32"/"base64"/"b64" spellings
// take their payload from the following argument and consume two.
func Scan(args []string) (Token, int, error) {
	if len(args) == 0 {
		return Token{}, 0, errors.MalformedLiteralf("empty byte literal")
	}
	arg := args[0]
	switch {
	case strings.HasPrefix(arg, "base32(") || strings.HasPrefix(arg, "b32("):
		payload, err := parenPayload(arg)
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Form: BASE32, Text: payload}, 1, nil
	case strings.HasPrefix(arg, "base64(") || strings.HasPrefix(arg, "b64("):
		payload, err := parenPayload(arg)
		if err != nil {
			return Token{}, 0, err
		}
		return Token{Form: BASE64, Text: payload}, 1, nil
	case strings.HasPrefix(arg, "0x"):
		return Token{Form: HEX, Text: arg}, 1, nil
	case arg == "base32" || arg == "b32":
		if len(args) < 2 {
			return Token{}, 0, errors.MalformedLiteralf("need literal after %q", arg)
		}
		return Token{Form: BASE32, Text: args[1]}, 2, nil
	case arg == "base64" || arg == "b64":
		if len(args) < 2 {
			return Token{}, 0, errors.MalformedLiteralf("need literal after %q", arg)
		}
		return Token{Form: BASE64, Text: args[1]}, 2, nil
	case len(arg) >= 2 && arg[0] == '"':
		return Token{Form: STRING, Text: arg}, 1, nil
	case len(arg) == addrTextLen && isBase32Upper(arg):
		return Token{Form: ADDR, Text: arg}, 1, nil
	default:
		return Token{}, 0, errors.MalformedLiteralf("byte literal did not parse: %q", arg)
	}
}

func parenPayload(arg string) (string, error) {
	open := strings.IndexRune(arg, '(')
	close := strings.IndexRune(arg, ')')
	if close == -1 {
		return "", errors.MalformedLiteralf("byte literal %q lacks close paren", arg)
	}
	return arg[open+1 : close], nil
}

// isBase32Upper reports whether s uses only the RFC 4648 base32 alphabet,
// the charset of address literals.
func isBase32Upper(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < '2' || c > '7') {
			return false
		}
	}
	return true
}
