package prop

import (
	"encoding/base64"
	"regexp"
	"strconv"
	"strings"
	"time"

	"icalval/parser"
)

// Binary is a BINARY value: inline binary data, base64 on the wire.
type Binary []byte

func (b Binary) ICal() string {
	return base64.StdEncoding.EncodeToString(b)
}

func (b Binary) Parameters() *parser.Params {
	p := parser.NewParams()
	p.Set("ENCODING", "BASE64")
	p.Set("VALUE", "BINARY")
	return p
}

// DecodeBinary base64-decodes a BINARY value.
func DecodeBinary(text string) (Binary, error) {
	raw, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, invalid("BINARY", text, "not valid base64")
	}
	return Binary(raw), nil
}

// Boolean is a BOOLEAN value, "TRUE" or "FALSE" on the wire.
type Boolean bool

func (b Boolean) ICal() string {
	if b {
		return "TRUE"
	}
	return "FALSE"
}

func (b Boolean) Parameters() *parser.Params { return parser.NewParams() }

// DecodeBoolean accepts "TRUE" and "FALSE" in any case, nothing else.
func DecodeBoolean(text string) (Boolean, error) {
	switch strings.ToUpper(text) {
	case "TRUE":
		return true, nil
	case "FALSE":
		return false, nil
	}
	return false, invalid("BOOLEAN", text, "expected TRUE or FALSE")
}

// Float is a FLOAT value.
type Float float64

func (f Float) ICal() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

func (f Float) Parameters() *parser.Params { return parser.NewParams() }

func DecodeFloat(text string) (Float, error) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, invalid("FLOAT", text, "expected a float")
	}
	return Float(f), nil
}

// Integer is an INTEGER value.
type Integer int

func (i Integer) ICal() string {
	return strconv.Itoa(int(i))
}

func (i Integer) Parameters() *parser.Params { return parser.NewParams() }

func DecodeInteger(text string) (Integer, error) {
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, invalid("INTEGER", text, "expected an integer")
	}
	return Integer(n), nil
}

// very basic mail address shape; full RFC5322 validation is not the
// codec's job
var mailAddrRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+`)

// CalAddress is a CAL-ADDRESS value, e.g. "mailto:jane@example.org".
type CalAddress string

// NewCalAddress normalizes a calendar user address. A bare mail address
// gets a mailto: prefix; anything already carrying a mailto scheme or
// not shaped like local@domain.tld passes through unchanged.
func NewCalAddress(s string) CalAddress {
	if !strings.Contains(strings.ToLower(s), "mailto:") && mailAddrRegex.MatchString(s) {
		return CalAddress("mailto:" + s)
	}
	return CalAddress(s)
}

func (a CalAddress) ICal() string { return string(a) }

func (a CalAddress) Parameters() *parser.Params { return parser.NewParams() }

func DecodeCalAddress(text string) (CalAddress, error) {
	return NewCalAddress(text), nil
}

// URI is a URI value; the codec treats it as opaque text.
type URI string

func (u URI) ICal() string { return string(u) }

func (u URI) Parameters() *parser.Params { return parser.NewParams() }

func DecodeURI(text string) (URI, error) {
	return URI(text), nil
}

// Text is a TEXT value. It is the only type that owns RFC5545
// character escaping: ICal escapes, DecodeText unescapes, and no other
// codec touches escaping.
type Text string

func (t Text) ICal() string { return parser.EscapeChar(string(t)) }

func (t Text) Parameters() *parser.Params { return parser.NewParams() }

func DecodeText(text string) (Text, error) {
	return Text(parser.UnescapeChar(text)), nil
}

// Inline holds raw unparsed text plus parameters. Conversion is left
// to the caller; the codec passes the text through untouched.
type Inline struct {
	Raw    string
	Params *parser.Params
}

func (iv Inline) ICal() string { return iv.Raw }

func (iv Inline) Parameters() *parser.Params {
	p := parser.NewParams()
	if iv.Params != nil {
		for _, k := range iv.Params.Keys() {
			v, _ := iv.Params.Get(k)
			p.Set(k, v)
		}
	}
	return p
}

func DecodeInline(text string) (Inline, error) {
	return Inline{Raw: text}, nil
}

// Geo is a GEO value: a latitude/longitude pair.
type Geo struct {
	Lat float64
	Lon float64
}

func (g Geo) ICal() string {
	return strconv.FormatFloat(g.Lat, 'g', -1, 64) + ";" +
		strconv.FormatFloat(g.Lon, 'g', -1, 64)
}

func (g Geo) Parameters() *parser.Params { return parser.NewParams() }

// DecodeGeo parses "<lat>;<lon>".
func DecodeGeo(text string) (Geo, error) {
	halves := strings.Split(text, ";")
	if len(halves) != 2 {
		return Geo{}, invalid("GEO", text, "expected 'float;float'")
	}
	lat, err := strconv.ParseFloat(halves[0], 64)
	if err != nil {
		return Geo{}, invalid("GEO", text, "expected 'float;float'")
	}
	lon, err := strconv.ParseFloat(halves[1], 64)
	if err != nil {
		return Geo{}, invalid("GEO", text, "expected 'float;float'")
	}
	return Geo{Lat: lat, Lon: lon}, nil
}

var utcOffsetRegex = regexp.MustCompile(`^[+-]\d{4}(\d{2})?$`)

// UTCOffset is a UTC-OFFSET value: a signed offset from UTC strictly
// smaller than 24 hours in magnitude.
type UTCOffset struct {
	offset time.Duration
}

// NewUTCOffset validates the 24 hour bound at construction; ICal can
// then not fail.
func NewUTCOffset(offset time.Duration) (UTCOffset, error) {
	if offset <= -24*time.Hour || offset >= 24*time.Hour {
		return UTCOffset{}, invalid("UTC-OFFSET", offset.String(), "offset must be less than 24 hours")
	}
	return UTCOffset{offset: offset}, nil
}

// Offset returns the native signed duration.
func (o UTCOffset) Offset() time.Duration { return o.offset }

func (o UTCOffset) ICal() string {
	sign := "+"
	v := o.offset
	if v < 0 {
		sign = "-"
		v = -v
	}
	total := int(v / time.Second)
	hours := total / 3600
	minutes := total % 3600 / 60
	seconds := total % 60
	if seconds != 0 {
		return sign + numPad2(hours) + numPad2(minutes) + numPad2(seconds)
	}
	// Google Calendar rejects '0000' but accepts '+0000', so zero keeps
	// the plus sign.
	return sign + numPad2(hours) + numPad2(minutes)
}

func (o UTCOffset) Parameters() *parser.Params { return parser.NewParams() }

// DecodeUTCOffset parses [+-]HHMM or [+-]HHMMSS.
func DecodeUTCOffset(text string) (UTCOffset, error) {
	if !utcOffsetRegex.MatchString(text) {
		return UTCOffset{}, invalid("UTC-OFFSET", text, "expected +HHMM, -HHMM or +HHMMSS")
	}
	hours, _ := strconv.Atoi(text[1:3])
	minutes, _ := strconv.Atoi(text[3:5])
	seconds := 0
	if len(text) == 7 {
		seconds, _ = strconv.Atoi(text[5:7])
	}
	offset := time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second
	if offset >= 24*time.Hour {
		return UTCOffset{}, invalid("UTC-OFFSET", text, "offset must be less than 24 hours")
	}
	if text[0] == '-' {
		offset = -offset
	}
	return UTCOffset{offset: offset}, nil
}

func numPad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
