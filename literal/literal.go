// Package literal converts between canonical byte sequences and every
// surface form a byte value may be written in: hex, base32, base64, quoted
// strings, and checksummed addresses. Decoding is the normalization step
// that turns a scanned token into canonical bytes; Render is the reverse
// direction, used for display and disassembly rather than evaluation.
//
// All conversions are pure and deterministic: the same token always decodes
// to the same bytes, and rendering preserves every byte, including leading
// zeros.
package literal

import (
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/tealvm/teal/address"
	"github.com/tealvm/teal/errors"
	"github.com/tealvm/teal/token"
)

// DecodeHex decodes a 0x-prefixed hex token into bytes, left to right, one
// byte per digit pair. An odd number of digits or a non-hex digit is a
// malformed literal.
func DecodeHex(tok string) ([]byte, error) {
	if !strings.HasPrefix(tok, "0x") {
		return nil, errors.MalformedLiteralf("hex literal %q lacks 0x prefix", tok)
	}
	digits := tok[2:]
	if len(digits) == 0 {
		return nil, errors.MalformedLiteralf("hex literal %q has no digits", tok)
	}
	if len(digits)%2 != 0 {
		return nil, errors.MalformedLiteralf("hex literal %q has an odd number of digits", tok)
	}
	b, err := hex.DecodeString(digits)
	if err != nil {
		return nil, errors.MalformedLiteralf("hex literal %q: %s", tok, err)
	}
	return b, nil
}

// EncodeHex renders bytes as a lowercase 0x-prefixed hex string. The
// rendering is defined over the byte sequence, not its integer value, so
// leading zero bytes survive a decode/encode round trip.
func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// DecodeBase32 decodes a standard-alphabet base32 token, accepting both
// padded and unpadded input.
func DecodeBase32(tok string) ([]byte, error) {
	b, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(tok)
	if err == nil {
		return b, nil
	}
	b, err2 := base32.StdEncoding.DecodeString(tok)
	if err2 != nil {
		return nil, errors.MalformedLiteralf("base32 literal %q: %s", tok, err)
	}
	return b, nil
}

// EncodeBase32 renders bytes as a padded standard-alphabet base32 string.
func EncodeBase32(b []byte) string {
	return base32.StdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes a standard-alphabet base64 token with padding.
func DecodeBase64(tok string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(tok)
	if err != nil {
		return nil, errors.MalformedLiteralf("base64 literal %q: %s", tok, err)
	}
	return b, nil
}

// EncodeBase64 renders bytes as a padded standard-alphabet base64 string.
func EncodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DecodeString decodes a quoted string literal, including both quotes, into
// raw bytes. Supported escapes are \n, \t, \r, \\, \" and \xNN.
func DecodeString(tok string) ([]byte, error) {
	if len(tok) < 2 || tok[0] != '"' || tok[len(tok)-1] != '"' {
		return nil, errors.MalformedLiteralf("string literal %q is not quoted", tok)
	}
	body := tok[1 : len(tok)-1]
	out := make([]byte, 0, len(body))
	for pos := 0; pos < len(body); pos++ {
		c := body[pos]
		if c == '"' {
			return nil, errors.MalformedLiteralf("string literal %q has an unescaped quote", tok)
		}
		if c != '\\' {
			out = append(out, c)
			continue
		}
		pos++
		if pos >= len(body) {
			return nil, errors.MalformedLiteralf("string literal %q ends mid-escape", tok)
		}
		switch body[pos] {
		case 'n':
			out = append(out, '\n')
		case 't':
			out = append(out, '\t')
		case 'r':
			out = append(out, '\r')
		case '\\':
			out = append(out, '\\')
		case '"':
			out = append(out, '"')
		case 'x':
			if pos+2 >= len(body) {
				return nil, errors.MalformedLiteralf("string literal %q ends mid hex escape", tok)
			}
			b, err := hex.DecodeString(body[pos+1 : pos+3])
			if err != nil {
				return nil, errors.MalformedLiteralf("string literal %q has an invalid hex escape", tok)
			}
			out = append(out, b[0])
			pos += 2
		default:
			return nil, errors.MalformedLiteralf("string literal %q has unknown escape \\%c", tok, body[pos])
		}
	}
	return out, nil
}

// EncodeString renders bytes as a quoted string literal, escaping anything
// outside printable ASCII.
func EncodeString(b []byte) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, c := range b {
		switch {
		case c == '"':
			sb.WriteString(`\"`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c >= 0x20 && c < 0x7f:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// Decode normalizes a scanned token of any form into canonical bytes.
func Decode(tok token.Token) ([]byte, error) {
	switch tok.Form {
	case token.HEX:
		return DecodeHex(tok.Text)
	case token.BASE32:
		return DecodeBase32(tok.Text)
	case token.BASE64:
		return DecodeBase64(tok.Text)
	case token.STRING:
		return DecodeString(tok.Text)
	case token.ADDR:
		return address.Decode(tok.Text)
	default:
		return nil, errors.MalformedLiteralf("unknown literal form %q", tok.Form)
	}
}

// Render converts canonical bytes back into the requested surface form.
// The ADDR form requires exactly 32 bytes.
func Render(b []byte, form token.Form) (string, error) {
	switch form {
	case token.HEX:
		return EncodeHex(b), nil
	case token.BASE32:
		return EncodeBase32(b), nil
	case token.BASE64:
		return EncodeBase64(b), nil
	case token.STRING:
		return EncodeString(b), nil
	case token.ADDR:
		return address.Encode(b)
	default:
		return "", errors.MalformedLiteralf("unknown literal form %q", form)
	}
}

// DecodeAll decodes a batch of tokens, collecting every failure rather than
// stopping at the first. The returned slice holds the bytes for each token
// that decoded; positions that failed are nil.
func DecodeAll(toks []token.Token) ([][]byte, error) {
	out := make([][]byte, len(toks))
	var result *multierror.Error
	for i, tok := range toks {
		b, err := Decode(tok)
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		out[i] = b
	}
	return out, result.ErrorOrNil()
}
