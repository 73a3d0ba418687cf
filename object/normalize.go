package object

import (
	"github.com/tealvm/teal/errors"
	"github.com/tealvm/teal/literal"
	"github.com/tealvm/teal/token"
)

// Normalize resolves a value into its canonical representation. Uint64 and
// Bytes values pass through unchanged; literal values are decoded into the
// canonical Bytes they denote. Normalize is idempotent and has no side
// effects; it fails only by propagating a decode error.
func Normalize(v Value) (Value, error) {
	switch v := v.(type) {
	case *Uint64, *Bytes:
		return v, nil
	case Literal:
		b, err := literal.Decode(v.Token())
		if err != nil {
			return nil, err
		}
		return NewBytes(b), nil
	default:
		return nil, errors.TypeErrorf("cannot normalize %s", v.Type())
	}
}

// NewLiteral wraps raw token text in the literal value for its form.
func NewLiteral(tok token.Token) (Literal, error) {
	switch tok.Form {
	case token.HEX:
		return NewHexLiteral(tok.Text), nil
	case token.BASE32:
		return NewB32Literal(tok.Text), nil
	case token.BASE64:
		return NewB64Literal(tok.Text), nil
	case token.STRING:
		return NewStringLiteral(tok.Text), nil
	case token.ADDR:
		return NewAddrLiteral(tok.Text), nil
	default:
		return nil, errors.MalformedLiteralf("unknown literal form %q", tok.Form)
	}
}
