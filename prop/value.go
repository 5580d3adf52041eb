// Package prop implements the RFC5545 property value types: one codec
// per value type (BINARY, BOOLEAN, DATE-TIME, DURATION, RECUR, ...),
// a polymorphic dispatcher for the temporal types, and a registry that
// maps property and parameter names to their default codec.
//
// Every codec round-trips: for a valid native value v,
// decoding ICal()'s output yields v again. Decoding is strict; text
// that does not match the RFC grammar fails with *InvalidValueError,
// never with a silently substituted default.
package prop

import (
	"strings"
	"time"

	"icalval/parser"
)

// Value is one decoded property value. Exactly one concrete type in
// this package backs each RFC5545 value type.
//
// ICal renders the value in RFC5545 textual form; it cannot fail
// because invariants are checked when the value is constructed.
// Parameters returns the property parameters the value implies
// (e.g. VALUE=DATE, TZID=...). The map is built fresh on every call,
// so callers may mutate it freely.
type Value interface {
	ICal() string
	Parameters() *parser.Params
}

// Temporal is the subset of values the polymorphic temporal dispatcher
// handles: Date, Time, DateTime and Duration.
type Temporal interface {
	Value
	temporal()
}

// tzidOf returns the timezone identifier of a location, or "" when the
// location is nil.
func tzidOf(loc *time.Location) string {
	if loc == nil {
		return ""
	}
	return loc.String()
}

// isUTC reports whether a location identifier means UTC, matching the
// way the Z suffix is chosen on encode.
func isUTC(loc *time.Location) bool {
	return loc != nil && strings.EqualFold(loc.String(), "UTC")
}

// setTZID attaches a TZID parameter for a non-UTC, non-nil location.
// UTC is expressed with the Z suffix instead of a parameter.
func setTZID(p *parser.Params, loc *time.Location) {
	if tzid := tzidOf(loc); tzid != "" && !strings.EqualFold(tzid, "UTC") {
		p.Set("TZID", tzid)
	}
}
