package lens

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// UTF8 is the default encoding of text bodies.
var UTF8 encoding.Encoding = unicode.UTF8

// Text converts between encoded bytes and strings. A nil enc means UTF-8.
// Invalid input bytes decode to the replacement character and runes the
// encoding cannot represent are replaced on the way out.
func Text(enc encoding.Encoding) BiDiMapper[[]byte, string] {
	if enc == nil {
		enc = UTF8
	}
	return NewBiDiMapper(
		func(b []byte) (string, error) {
			decoded, err := enc.NewDecoder().Bytes(b)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrTypeConversion, err)
			}
			return string(decoded), nil
		},
		func(s string) []byte {
			encoded, err := encoding.ReplaceUnsupported(enc.NewEncoder()).Bytes([]byte(s))
			if err != nil {
				return []byte(s)
			}
			return encoded
		},
	)
}

// EncodingByName looks up an encoding by its WHATWG label, e.g. "utf-8" or "iso-8859-1".
func EncodingByName(name string) (encoding.Encoding, error) {
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown charset %q", ErrTypeConversion, name)
	}
	return enc, nil
}
