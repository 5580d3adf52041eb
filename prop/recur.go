package prop

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/xyedo/rrule"

	"icalval/parser"
)

var weekdayRegex = regexp.MustCompile(`^([+-]?)(\d{0,2})([A-Za-z]{2})$`)

var weekdayCodes = map[string]bool{
	"SU": true, "MO": true, "TU": true, "WE": true,
	"TH": true, "FR": true, "SA": true,
}

// Weekday is a weekday selector as used by BYDAY and WKST: a two-letter
// weekday code with an optional signed ordinal ("2MO" is the second
// Monday, "-1FR" the last Friday).
type Weekday struct {
	text    string // normalized uppercase form, round-trips verbatim
	Day     string // SU..SA
	Ordinal int    // 0 when absent
}

// NewWeekday validates and normalizes a weekday selector.
func NewWeekday(text string) (Weekday, error) {
	upper := strings.ToUpper(text)
	m := weekdayRegex.FindStringSubmatch(upper)
	if m == nil {
		return Weekday{}, invalid("WEEKDAY", text, "expected weekday abbreviation")
	}
	sign, ordinal, day := m[1], m[2], m[3]
	if !weekdayCodes[day] {
		return Weekday{}, invalid("WEEKDAY", text, "expected weekday abbreviation")
	}
	w := Weekday{text: upper, Day: day}
	if ordinal != "" {
		n, _ := strconv.Atoi(ordinal)
		if sign == "-" {
			n = -n
		}
		w.Ordinal = n
	}
	return w, nil
}

func (w Weekday) ICal() string { return w.text }

func (w Weekday) Parameters() *parser.Params { return parser.NewParams() }

func DecodeWeekday(text string) (Weekday, error) {
	return NewWeekday(text)
}

var frequencies = map[string]bool{
	"SECONDLY": true, "MINUTELY": true, "HOURLY": true, "DAILY": true,
	"WEEKLY": true, "MONTHLY": true, "YEARLY": true,
}

// Frequency is a FREQ rule part value, one of the seven RFC5545
// frequency literals, stored uppercase.
type Frequency string

// NewFrequency validates a frequency literal case-insensitively.
func NewFrequency(text string) (Frequency, error) {
	upper := strings.ToUpper(text)
	if !frequencies[upper] {
		return "", invalid("FREQ", text, "expected a recurrence frequency")
	}
	return Frequency(upper), nil
}

func (f Frequency) ICal() string { return string(f) }

func (f Frequency) Parameters() *parser.Params { return parser.NewParams() }

func DecodeFrequency(text string) (Frequency, error) {
	return NewFrequency(text)
}

// Mac iCal ignores RRULEs where FREQ is not the first rule part, so
// encoding always re-serializes in the order RFC 5545 section 3.3.10
// lists the parts in, regardless of insertion order.
var recurCanonicalOrder = []string{
	"FREQ", "UNTIL", "COUNT", "INTERVAL",
	"BYSECOND", "BYMINUTE", "BYHOUR", "BYDAY",
	"BYMONTHDAY", "BYYEARDAY", "BYWEEKNO", "BYMONTH",
	"BYSETPOS", "WKST",
}

// per rule-part sub-codec table; unlisted keys decode as TEXT
var recurDecoders = map[string]func(string) (Value, error){
	"COUNT":      decodeIntegerValue,
	"INTERVAL":   decodeIntegerValue,
	"BYSECOND":   decodeIntegerValue,
	"BYMINUTE":   decodeIntegerValue,
	"BYHOUR":     decodeIntegerValue,
	"BYMONTHDAY": decodeIntegerValue,
	"BYYEARDAY":  decodeIntegerValue,
	"BYWEEKNO":   decodeIntegerValue,
	"BYMONTH":    decodeIntegerValue,
	"BYSETPOS":   decodeIntegerValue,
	"UNTIL":      func(s string) (Value, error) { return DecodeTemporal(s, "") },
	"WKST":       func(s string) (Value, error) { return DecodeWeekday(s) },
	"BYDAY":      func(s string) (Value, error) { return DecodeWeekday(s) },
	"FREQ":       func(s string) (Value, error) { return DecodeFrequency(s) },
}

func decodeIntegerValue(s string) (Value, error) { return DecodeInteger(s) }

func decodeRecurPart(key, token string) (Value, error) {
	dec, ok := recurDecoders[key]
	if !ok {
		dec = func(s string) (Value, error) { return DecodeText(s) }
	}
	return dec(token)
}

// Recur is a RECUR value: a mapping from rule-part name to a non-empty
// list of typed sub-values. Keys compare case-insensitively and are
// stored normalized to upper case; the codec (de)serializes whatever
// parts are present and leaves cross-part rules (such as "exactly one
// FREQ") to its consumers.
type Recur struct {
	order []string
	parts map[string][]Value
}

// NewRecur returns an empty recurrence rule.
func NewRecur() *Recur {
	return &Recur{parts: make(map[string][]Value)}
}

// Set stores the values for one rule part, replacing any previous ones.
func (r *Recur) Set(key string, vals ...Value) {
	upper := strings.ToUpper(key)
	if _, ok := r.parts[upper]; !ok {
		r.order = append(r.order, upper)
	}
	r.parts[upper] = vals
}

// Get returns the values of one rule part, nil when absent.
func (r *Recur) Get(key string) []Value {
	return r.parts[strings.ToUpper(key)]
}

// Keys returns the present rule-part names in insertion order.
func (r *Recur) Keys() []string {
	return append([]string(nil), r.order...)
}

// Len returns the number of rule parts present.
func (r *Recur) Len() int { return len(r.parts) }

func (r *Recur) ICal() string {
	groups := make([]string, 0, len(r.parts))
	for _, key := range r.encodeOrder() {
		vals := r.parts[key]
		encoded := make([]string, 0, len(vals))
		for _, v := range vals {
			encoded = append(encoded, v.ICal())
		}
		groups = append(groups, key+"="+strings.Join(encoded, ","))
	}
	return strings.Join(groups, ";")
}

// encodeOrder lists present keys: canonical ones in RFC order first,
// then anything unlisted in insertion order.
func (r *Recur) encodeOrder() []string {
	keys := make([]string, 0, len(r.parts))
	canonical := make(map[string]bool, len(recurCanonicalOrder))
	for _, key := range recurCanonicalOrder {
		canonical[key] = true
		if _, ok := r.parts[key]; ok {
			keys = append(keys, key)
		}
	}
	for _, key := range r.order {
		if !canonical[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

func (r *Recur) Parameters() *parser.Params { return parser.NewParams() }

// RRuleSet compiles the rule into an executable recurrence set for
// occurrence expansion.
func (r *Recur) RRuleSet() (*rrule.Set, error) {
	// StrToRRuleSet wants full property lines, not bare rule text
	return rrule.StrToRRuleSet("RRULE:" + r.ICal())
}

// DecodeRecur parses KEY=V[,V...];KEY=V... rule text. Each key selects
// its sub-codec; unrecognized keys fall back to TEXT. Malformed pairs
// and sub-decode failures fail the whole rule, naming the offending
// text.
func DecodeRecur(text string) (*Recur, error) {
	r := NewRecur()
	for _, pair := range strings.Split(text, ";") {
		kv := strings.Split(pair, "=")
		if len(kv) != 2 {
			return nil, invalid("RECUR", text, "malformed rule part "+strconv.Quote(pair))
		}
		key := strings.ToUpper(kv[0])
		tokens := strings.Split(kv[1], ",")
		vals := make([]Value, 0, len(tokens))
		for _, token := range tokens {
			v, err := decodeRecurPart(key, token)
			if err != nil {
				return nil, invalid("RECUR", text,
					"bad "+key+" value "+strconv.Quote(token))
			}
			vals = append(vals, v)
		}
		r.Set(key, vals...)
	}
	return r, nil
}
