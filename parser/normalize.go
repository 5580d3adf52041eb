package parser

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// Normalize converts foreign byte data to UTF-8 text.
//
// When encodingHint names a charset known to the IANA index, the data is
// decoded with it. If the hint is empty, unknown, or the decode fails,
// the bytes are taken as UTF-8 with invalid sequences replaced by
// U+FFFD. Normalize never fails; calendar feeds in the wild carry enough
// broken encodings that a tolerant fallback beats an error.
func Normalize(data []byte, encodingHint string) string {
	if encodingHint != "" {
		if enc, err := ianaindex.IANA.Encoding(encodingHint); err == nil && enc != nil {
			if out, _, err := transform.Bytes(enc.NewDecoder(), data); err == nil {
				return string(out)
			}
		}
	}
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}
