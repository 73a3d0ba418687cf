// Package teal is the one-call surface for normalizing and rendering the
// byte literals of a stack-based transaction-scripting language. The heavy
// lifting lives in the subpackages: token scans surface syntax, literal
// converts between bytes and each spelling, address handles checksummed
// account strings, object models the runtime values, and uint128 splits wide
// arithmetic results across a 64-bit stack.
package teal

import (
	"strings"

	"github.com/tealvm/teal/errors"
	"github.com/tealvm/teal/literal"
	"github.com/tealvm/teal/object"
	"github.com/tealvm/teal/token"
)

// Normalize scans a single byte literal, in any supported spelling, and
// returns its canonical bytes.
func Normalize(text string) ([]byte, error) {
	args := splitLiteral(text)
	tok, consumed, err := token.Scan(args)
	if err != nil {
		return nil, err
	}
	if consumed != len(args) {
		return nil, errors.MalformedLiteralf("trailing input after byte literal: %q", strings.Join(args[consumed:], " "))
	}
	return literal.Decode(tok)
}

// Render converts canonical bytes into the requested surface form.
func Render(b []byte, form token.Form) (string, error) {
	return literal.Render(b, form)
}

// NormalizeValue resolves a runtime value into canonical form; literal
// values become bytes, canonical values pass through.
func NormalizeValue(v object.Value) (object.Value, error) {
	return object.Normalize(v)
}

// splitLiteral breaks a literal spelling into scanner arguments. Quoted
// strings stay intact so their spaces survive.
func splitLiteral(text string) []string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, `"`) {
		return []string{text}
	}
	return strings.Fields(text)
}
