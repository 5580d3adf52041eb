package prop

import (
	"strings"
	"time"

	"icalval/parser"
)

// Period is a PERIOD value: a start moment paired with either an end
// moment or a duration. Both representations are normalized at
// construction so start, end and duration are always all derivable;
// byDuration remembers which form the period was built from and drives
// the encoded shape.
type Period struct {
	start      DateTime
	end        DateTime
	duration   Duration
	byDuration bool
}

// NewPeriod builds an explicit start/end period. Start must not be
// chronologically after end.
func NewPeriod(start, end DateTime) (Period, error) {
	if start.Time.After(end.Time) {
		return Period{}, invalid("PERIOD", start.ICal()+"/"+end.ICal(),
			"start time is greater than end time")
	}
	return Period{
		start:    start,
		end:      end,
		duration: Duration(end.Time.Sub(start.Time)),
	}, nil
}

// NewPeriodWithDuration builds a start+duration period. A negative
// duration would place the end before the start and is rejected.
func NewPeriodWithDuration(start DateTime, d Duration) (Period, error) {
	if d < 0 {
		return Period{}, invalid("PERIOD", start.ICal()+"/"+Duration(d).ICal(),
			"start time is greater than end time")
	}
	end := DateTime{Time: start.Time.Add(time.Duration(d)), Floating: start.Floating}
	return Period{
		start:      start,
		end:        end,
		duration:   d,
		byDuration: true,
	}, nil
}

func (p Period) Start() DateTime    { return p.start }
func (p Period) End() DateTime      { return p.end }
func (p Period) Duration() Duration { return p.duration }
func (p Period) ByDuration() bool   { return p.byDuration }

func (p Period) ICal() string {
	if p.byDuration {
		return p.start.ICal() + "/" + p.duration.ICal()
	}
	return p.start.ICal() + "/" + p.end.ICal()
}

func (p Period) Parameters() *parser.Params {
	p2 := parser.NewParams()
	// different timezones for start and end are not supported; the
	// start's zone names the period
	if !p.start.Floating {
		setTZID(p2, p.start.Time.Location())
	}
	return p2
}

// Overlaps reports whether the other period intersects this one. A
// period covers [start, end); touching endpoints do not overlap.
func (p Period) Overlaps(other Period) bool {
	if p.start.Time.After(other.start.Time) {
		return other.Overlaps(p)
	}
	return !other.start.Time.Before(p.start.Time) && other.start.Time.Before(p.end.Time)
}

// DecodePeriod parses "<start>/<end>" or "<start>/<duration>", each
// side decoded through the temporal dispatcher.
func DecodePeriod(text string) (Period, error) {
	halves := strings.SplitN(text, "/", 2)
	if len(halves) != 2 {
		return Period{}, invalid("PERIOD", text, "expected 'start/end' or 'start/duration'")
	}
	startVal, err := DecodeTemporal(halves[0], "")
	if err != nil {
		return Period{}, invalid("PERIOD", text, "bad start: "+halves[0])
	}
	start, err := periodMoment(startVal)
	if err != nil {
		return Period{}, invalid("PERIOD", text, "bad start: "+halves[0])
	}
	secondVal, err := DecodeTemporal(halves[1], "")
	if err != nil {
		return Period{}, invalid("PERIOD", text, "bad end: "+halves[1])
	}
	if d, ok := secondVal.(Duration); ok {
		return NewPeriodWithDuration(start, d)
	}
	end, err := periodMoment(secondVal)
	if err != nil {
		return Period{}, invalid("PERIOD", text, "bad end: "+halves[1])
	}
	return NewPeriod(start, end)
}

// periodMoment narrows a temporal to a moment a period can anchor on.
// Dates become floating midnight date-times.
func periodMoment(v Temporal) (DateTime, error) {
	switch t := v.(type) {
	case DateTime:
		return t, nil
	case Date:
		return DateTime{Time: t.Time(), Floating: true}, nil
	}
	return DateTime{}, invalid("PERIOD", v.ICal(), "operand must be a date or date-time")
}
