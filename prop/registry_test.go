package prop_test

import (
	"testing"
	"time"

	"icalval/prop"
)

func TestRegistryDecodeByName(t *testing.T) {
	cases := []struct {
		name string
		text string
		typ  string
	}{
		{"DTSTART", "20230101T120000Z", "prop.DateTime"},
		{"dtstart", "20230101", "prop.Date"},
		{"RRULE", "FREQ=DAILY", "*prop.Recur"},
		{"GEO", "1.5;2.5", "prop.Geo"},
		{"TZOFFSETTO", "+0100", "prop.UTCOffset"},
		{"TRIGGER", "-PT15M", "prop.Duration"},
		{"FREEBUSY", "20230101T000000Z/P1D", "prop.Period"},
		{"EXDATE", "20230101T120000Z,20230102T120000Z", "prop.TemporalList"},
		{"PRIORITY", "5", "prop.Integer"},
		{"RSVP", "TRUE", "prop.Boolean"},
		{"ATTENDEE", "jane@example.org", "prop.CalAddress"},
		{"SUMMARY", `Board\, meeting`, "prop.Text"},
		{"X-UNKNOWN-PROP", "anything", "prop.Text"},
	}
	for _, c := range cases {
		v, err := prop.Decode(c.name, c.text)
		if err != nil {
			t.Errorf("Decode(%q, %q): %v", c.name, c.text, err)
			continue
		}
		if got := registryTypeName(v); got != c.typ {
			t.Errorf("Decode(%q, %q) = %s, want %s", c.name, c.text, got, c.typ)
		}
	}
}

func registryTypeName(v prop.Value) string {
	switch v.(type) {
	case prop.DateTime:
		return "prop.DateTime"
	case prop.Date:
		return "prop.Date"
	case prop.Duration:
		return "prop.Duration"
	case prop.Time:
		return "prop.Time"
	case *prop.Recur:
		return "*prop.Recur"
	case prop.Geo:
		return "prop.Geo"
	case prop.UTCOffset:
		return "prop.UTCOffset"
	case prop.Period:
		return "prop.Period"
	case prop.TemporalList:
		return "prop.TemporalList"
	case prop.Integer:
		return "prop.Integer"
	case prop.Boolean:
		return "prop.Boolean"
	case prop.CalAddress:
		return "prop.CalAddress"
	case prop.Text:
		return "prop.Text"
	}
	return "unknown"
}

func TestRegistryDecodeInZone(t *testing.T) {
	v, err := prop.DecodeIn("DTSTART", "20230101T120000", "America/New_York")
	if err != nil {
		t.Fatal(err)
	}
	dt, ok := v.(prop.DateTime)
	if !ok {
		t.Fatalf("type = %T", v)
	}
	if got := dt.Time.Location().String(); got != "America/New_York" {
		t.Errorf("location = %q", got)
	}
}

func TestRegistryEncodeByName(t *testing.T) {
	got, err := prop.Encode("PRIORITY", 1)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1" {
		t.Errorf("Encode(PRIORITY, 1) = %q", got)
	}

	got, err = prop.Encode("DTSTAMP", time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if got != "20230101T120000Z" {
		t.Errorf("Encode(DTSTAMP, ...) = %q", got)
	}

	got, err = prop.Encode("SUMMARY", "a;b")
	if err != nil {
		t.Fatal(err)
	}
	if got != `a\;b` {
		t.Errorf("Encode(SUMMARY, ...) = %q", got)
	}

	if _, err := prop.Encode("RSVP", "yes"); err == nil {
		t.Error("Encode(RSVP, string) should reject the native type")
	}
}

func TestRegistryForType(t *testing.T) {
	k := prop.ForType("utc-offset")
	if k.Name != "utc-offset" {
		t.Errorf("ForType(utc-offset).Name = %q", k.Name)
	}
	if k := prop.ForType("no-such-type"); k.Name != "text" {
		t.Errorf("unknown type should fall back to text, got %q", k.Name)
	}
}

func TestRoundTripThroughRegistry(t *testing.T) {
	// decode(encode(x)) == x for a sample of each codec family
	cases := []struct {
		name string
		text string
	}{
		{"SUMMARY", `line one\nline two\, with comma`},
		{"DTSTART", "20230601T080000Z"},
		{"DTSTART", "20230601"},
		{"DURATION", "P15DT5H0M20S"},
		{"FREEBUSY", "20230101T000000Z/P1D"},
		{"RRULE", "FREQ=WEEKLY;COUNT=10;BYDAY=MO,WE,FR"},
		{"GEO", "48.85;2.35"},
		{"TZOFFSETFROM", "-0500"},
		{"RSVP", "TRUE"},
	}
	for _, c := range cases {
		v, err := prop.Decode(c.name, c.text)
		if err != nil {
			t.Errorf("Decode(%q, %q): %v", c.name, c.text, err)
			continue
		}
		if got := v.ICal(); got != c.text {
			t.Errorf("re-encode of %q %q = %q", c.name, c.text, got)
		}
	}
}
