package prop

import (
	"fmt"
	"strings"
	"time"

	"icalval/parser"
)

const (
	dateLayout     = "20060102"
	timeLayout     = "150405"
	datetimeLayout = "20060102T150405"
)

// Date is a DATE value: a calendar date without a time of day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate takes the calendar date of a moment.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Time returns the date as midnight UTC, for chronological comparison.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) ICal() string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) Parameters() *parser.Params {
	p := parser.NewParams()
	p.Set("VALUE", "DATE")
	return p
}

func (Date) temporal() {}

// DecodeDate parses YYYYMMDD.
func DecodeDate(text string) (Date, error) {
	t, err := time.Parse(dateLayout, text)
	if err != nil {
		return Date{}, invalid("DATE", text, "expected YYYYMMDD")
	}
	return NewDate(t), nil
}

// Time is a TIME value: a bare time of day. A nil Location marks a
// zone-naive value; time.UTC gets the Z suffix on encode, any other
// location a TZID parameter.
type Time struct {
	Hour     int
	Minute   int
	Second   int
	Location *time.Location
}

func (t Time) ICal() string {
	suffix := ""
	if isUTC(t.Location) {
		suffix = "Z"
	}
	return numPad2(t.Hour) + numPad2(t.Minute) + numPad2(t.Second) + suffix
}

func (t Time) Parameters() *parser.Params {
	p := parser.NewParams()
	p.Set("VALUE", "TIME")
	setTZID(p, t.Location)
	return p
}

func (Time) temporal() {}

// DecodeTime parses HHMMSS with an optional trailing Z. A caller
// supplied timezone identifier wins over any suffix; with neither, the
// value is zone-naive.
func DecodeTime(text, tzid string) (Time, error) {
	if len(text) < 6 {
		return Time{}, invalid("TIME", text, "expected HHMMSS")
	}
	parsed, err := time.Parse(timeLayout, text[:6])
	if err != nil {
		return Time{}, invalid("TIME", text, "expected HHMMSS")
	}
	h, m, s := parsed.Clock()
	if tzid != "" {
		if loc, lerr := time.LoadLocation(tzid); lerr == nil {
			return Time{Hour: h, Minute: m, Second: s, Location: loc}, nil
		}
		// unknown zone identifiers degrade to the suffix rules below
	}
	switch text[6:] {
	case "":
		return Time{Hour: h, Minute: m, Second: s}, nil
	case "Z":
		return Time{Hour: h, Minute: m, Second: s, Location: time.UTC}, nil
	}
	return Time{}, invalid("TIME", text, "unsupported zone suffix")
}

// DateTime is a DATE-TIME value: a precise calendar date and time of
// day, optionally zoned. Floating marks a timezone-naive value, in
// which case the Location of Time is meaningless.
type DateTime struct {
	Time     time.Time
	Floating bool
}

// NewDateTime wraps a zoned moment.
func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t}
}

func (dt DateTime) ICal() string {
	suffix := ""
	if !dt.Floating && isUTC(dt.Time.Location()) {
		suffix = "Z"
	}
	return dt.Time.Format(datetimeLayout) + suffix
}

func (dt DateTime) Parameters() *parser.Params {
	p := parser.NewParams()
	p.Set("VALUE", "DATE-TIME")
	if !dt.Floating {
		setTZID(p, dt.Time.Location())
	}
	return p
}

func (DateTime) temporal() {}

// Equal compares two date-times structurally: same instant fields and
// same naive/zoned flavor.
func (dt DateTime) Equal(other DateTime) bool {
	if dt.Floating != other.Floating {
		return false
	}
	if dt.Floating {
		return dt.Time.Format(datetimeLayout) == other.Time.Format(datetimeLayout)
	}
	return dt.Time.Equal(other.Time)
}

// DecodeDateTime parses YYYYMMDDTHHMMSS with an optional trailing Z.
//
// A caller supplied timezone identifier localizes the naive fields into
// that zone and takes precedence over any suffix. Without one, a bare
// value is zone-naive and a Z suffix means UTC. Inline numeric offset
// suffixes like "+0100" are deliberately rejected even though some
// calendar exports emit them; only Z and TZID zones are part of this
// grammar.
func DecodeDateTime(text, tzid string) (DateTime, error) {
	if len(text) < 15 {
		return DateTime{}, invalid("DATE-TIME", text, "expected YYYYMMDDTHHMMSS")
	}
	core, rest := text[:15], text[15:]
	if tzid != "" {
		if loc, lerr := time.LoadLocation(tzid); lerr == nil {
			t, err := time.ParseInLocation(datetimeLayout, core, loc)
			if err != nil {
				return DateTime{}, invalid("DATE-TIME", text, "expected YYYYMMDDTHHMMSS")
			}
			return DateTime{Time: t}, nil
		}
	}
	t, err := time.Parse(datetimeLayout, core)
	if err != nil {
		return DateTime{}, invalid("DATE-TIME", text, "expected YYYYMMDDTHHMMSS")
	}
	switch rest {
	case "":
		return DateTime{Time: t, Floating: true}, nil
	case "Z":
		return DateTime{Time: t.UTC()}, nil
	}
	return DateTime{}, invalid("DATE-TIME", text, "unsupported zone suffix")
}

// NewTemporal selects the value type matching a native temporal
// variant. It accepts the package's own temporal types as well as the
// bare time.Time and time.Duration primitives.
func NewTemporal(native any) (Temporal, error) {
	switch v := native.(type) {
	case DateTime:
		return v, nil
	case Date:
		return v, nil
	case Time:
		return v, nil
	case Duration:
		return v, nil
	case time.Time:
		return NewDateTime(v), nil
	case time.Duration:
		return Duration(v), nil
	}
	return nil, invalid("DATE-TIME", fmt.Sprintf("%v", native),
		fmt.Sprintf("unsupported native type %T", native))
}

// DecodeTemporal decodes text as whichever temporal type it matches:
// a leading P or -P means DURATION, then DATE-TIME, DATE and TIME are
// tried in that order. The individual failures are swallowed; only
// exhaustion of all candidates surfaces an error.
func DecodeTemporal(text, tzid string) (Temporal, error) {
	upper := strings.ToUpper(text)
	if strings.HasPrefix(upper, "P") || strings.HasPrefix(upper, "-P") {
		return DecodeDuration(text)
	}
	if dt, err := DecodeDateTime(text, tzid); err == nil {
		return dt, nil
	}
	if d, err := DecodeDate(text); err == nil {
		return d, nil
	}
	if t, err := DecodeTime(text, tzid); err == nil {
		return t, nil
	}
	return nil, invalid("DATE-TIME", text, "not a date-time, date or time")
}
