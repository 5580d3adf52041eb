package prop

import (
	"strings"

	"icalval/parser"
)

// TemporalList is a comma-joined list of one temporal variant, as used
// by EXDATE and RDATE. All elements are expected to share one timezone;
// the codec does not cross-validate that, it just propagates a single
// TZID parameter (the last element's wins if they differ).
type TemporalList struct {
	Values []Temporal
}

// NewTemporalList builds a list from native temporal values through the
// polymorphic constructor.
func NewTemporalList(natives ...any) (TemporalList, error) {
	vals := make([]Temporal, 0, len(natives))
	for _, n := range natives {
		v, err := NewTemporal(n)
		if err != nil {
			return TemporalList{}, err
		}
		vals = append(vals, v)
	}
	return TemporalList{Values: vals}, nil
}

func (l TemporalList) ICal() string {
	parts := make([]string, 0, len(l.Values))
	for _, v := range l.Values {
		parts = append(parts, v.ICal())
	}
	return strings.Join(parts, ",")
}

func (l TemporalList) Parameters() *parser.Params {
	p := parser.NewParams()
	for _, v := range l.Values {
		if tzid, ok := v.Parameters().Get("TZID"); ok {
			p.Set("TZID", tzid)
		}
	}
	return p
}

// DecodeTemporalList splits on commas and decodes every element through
// the temporal dispatcher with a shared timezone hint. Any element
// failing to decode fails the whole list.
func DecodeTemporalList(text, tzid string) (TemporalList, error) {
	segments := strings.Split(text, ",")
	vals := make([]Temporal, 0, len(segments))
	for _, seg := range segments {
		v, err := DecodeTemporal(seg, tzid)
		if err != nil {
			return TemporalList{}, err
		}
		vals = append(vals, v)
	}
	return TemporalList{Values: vals}, nil
}
