package parser

import "strings"

// EscapeChar escapes the four characters RFC5545 reserves inside TEXT
// values: backslash, semicolon, comma and newline.
//
// The replacement order matters: the backslash must be doubled first,
// otherwise the backslashes introduced by the later steps would be
// escaped again.
func EscapeChar(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, ";", `\;`)
	text = strings.ReplaceAll(text, ",", `\,`)
	text = strings.ReplaceAll(text, "\r\n", `\n`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return text
}

// UnescapeChar reverses EscapeChar. The order matters here too: `\N` is
// folded into `\n` first (some producers emit the uppercase form), and
// the doubled backslash is resolved last.
func UnescapeChar(text string) string {
	text = strings.ReplaceAll(text, `\N`, `\n`)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, `\n`, "\n")
	text = strings.ReplaceAll(text, `\,`, ",")
	text = strings.ReplaceAll(text, `\;`, ";")
	text = strings.ReplaceAll(text, `\\`, `\`)
	return text
}
