package object

import (
	"fmt"

	"github.com/tealvm/teal/token"
)

// Literal is implemented by the transient literal-spelling values. Each one
// carries its raw token text and knows the surface form it was written in.
// Literals never outlive normalization: Normalize replaces them with the
// canonical *Bytes they denote.
type Literal interface {
	Value

	// Token returns the literal as a scanner token, ready for decoding.
	Token() token.Token
}

// HexLiteral is a byte string spelled as 0x-prefixed hex digits.
type HexLiteral struct {
	text string
}

func (h *HexLiteral) Type() Type             { return HEX_LITERAL }
func (h *HexLiteral) Inspect() string        { return fmt.Sprintf("hex_literal(%s)", h.text) }
func (h *HexLiteral) Interface() interface{} { return h.text }
func (h *HexLiteral) Token() token.Token     { return token.Token{Form: token.HEX, Text: h.text} }

func (h *HexLiteral) Equals(other Value) bool {
	o, ok := other.(*HexLiteral)
	return ok && h.text == o.text
}

func NewHexLiteral(text string) *HexLiteral {
	return &HexLiteral{text: text}
}

// B32Literal is a byte string spelled as a base32 token.
type B32Literal struct {
	text string
}

func (b *B32Literal) Type() Type             { return B32_LITERAL }
func (b *B32Literal) Inspect() string        { return fmt.Sprintf("b32_literal(%s)", b.text) }
func (b *B32Literal) Interface() interface{} { return b.text }
func (b *B32Literal) Token() token.Token     { return token.Token{Form: token.BASE32, Text: b.text} }

func (b *B32Literal) Equals(other Value) bool {
	o, ok := other.(*B32Literal)
	return ok && b.text == o.text
}

func NewB32Literal(text string) *B32Literal {
	return &B32Literal{text: text}
}

// B64Literal is a byte string spelled as a base64 token.
type B64Literal struct {
	text string
}

func (b *B64Literal) Type() Type             { return B64_LITERAL }
func (b *B64Literal) Inspect() string        { return fmt.Sprintf("b64_literal(%s)", b.text) }
func (b *B64Literal) Interface() interface{} { return b.text }
func (b *B64Literal) Token() token.Token     { return token.Token{Form: token.BASE64, Text: b.text} }

func (b *B64Literal) Equals(other Value) bool {
	o, ok := other.(*B64Literal)
	return ok && b.text == o.text
}

func NewB64Literal(text string) *B64Literal {
	return &B64Literal{text: text}
}

// StringLiteral is a byte string spelled as a quoted string, quotes included.
type StringLiteral struct {
	text string
}

func (s *StringLiteral) Type() Type             { return STRING_LITERAL }
func (s *StringLiteral) Inspect() string        { return fmt.Sprintf("string_literal(%s)", s.text) }
func (s *StringLiteral) Interface() interface{} { return s.text }
func (s *StringLiteral) Token() token.Token     { return token.Token{Form: token.STRING, Text: s.text} }

func (s *StringLiteral) Equals(other Value) bool {
	o, ok := other.(*StringLiteral)
	return ok && s.text == o.text
}

func NewStringLiteral(text string) *StringLiteral {
	return &StringLiteral{text: text}
}

// AddrLiteral is a byte string spelled as a 58-character checksummed address.
type AddrLiteral struct {
	text string
}

func (a *AddrLiteral) Type() Type             { return ADDR_LITERAL }
func (a *AddrLiteral) Inspect() string        { return fmt.Sprintf("addr_literal(%s)", a.text) }
func (a *AddrLiteral) Interface() interface{} { return a.text }
func (a *AddrLiteral) Token() token.Token     { return token.Token{Form: token.ADDR, Text: a.text} }

func (a *AddrLiteral) Equals(other Value) bool {
	o, ok := other.(*AddrLiteral)
	return ok && a.text == o.text
}

func NewAddrLiteral(text string) *AddrLiteral {
	return &AddrLiteral{text: text}
}
