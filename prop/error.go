package prop

import "fmt"

// InvalidValueError is the error every decode and construction failure
// in this package produces. It carries the offending raw text, the
// value type that was attempted and, where one helps, the violated
// constraint.
type InvalidValueError struct {
	Type   string // iCalendar value type name, e.g. "BOOLEAN"
	Text   string // offending raw text
	Reason string // human-readable constraint, may be empty
}

func (e *InvalidValueError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s value %q", e.Type, e.Text)
	}
	return fmt.Sprintf("invalid %s value %q: %s", e.Type, e.Text, e.Reason)
}

func invalid(typ, text, reason string) error {
	return &InvalidValueError{Type: typ, Text: text, Reason: reason}
}
