package prop_test

import (
	"testing"

	"icalval/prop"
)

func TestWeekdayDecode(t *testing.T) {
	cases := []struct {
		in      string
		day     string
		ordinal int
	}{
		{"MO", "MO", 0},
		{"2MO", "MO", 2},
		{"-1FR", "FR", -1},
		{"+3su", "SU", 3},
	}
	for _, c := range cases {
		w, err := prop.DecodeWeekday(c.in)
		if err != nil {
			t.Errorf("DecodeWeekday(%q): %v", c.in, err)
			continue
		}
		if w.Day != c.day || w.Ordinal != c.ordinal {
			t.Errorf("DecodeWeekday(%q) = day %q ordinal %d", c.in, w.Day, w.Ordinal)
		}
	}

	// encodes normalized to upper case
	w, _ := prop.DecodeWeekday("-1fr")
	if got := w.ICal(); got != "-1FR" {
		t.Errorf("ICal() = %q", got)
	}

	for _, bad := range []string{"XX", "MOO", "1", "*2MO", "2M0"} {
		if _, err := prop.DecodeWeekday(bad); err == nil {
			t.Errorf("DecodeWeekday(%q) should fail", bad)
		}
	}
}

func TestFrequencyDecode(t *testing.T) {
	for _, in := range []string{"DAILY", "weekly", "Yearly"} {
		f, err := prop.DecodeFrequency(in)
		if err != nil {
			t.Errorf("DecodeFrequency(%q): %v", in, err)
			continue
		}
		if got := f.ICal(); got != "DAILY" && got != "WEEKLY" && got != "YEARLY" {
			t.Errorf("DecodeFrequency(%q).ICal() = %q", in, got)
		}
	}
	if _, err := prop.DecodeFrequency("FORTNIGHTLY"); err == nil {
		t.Error("expected error for unknown frequency")
	}
}

func TestRecurDecode(t *testing.T) {
	r, err := prop.DecodeRecur("FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10")
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d", r.Len())
	}

	freq := r.Get("freq")
	if len(freq) != 1 {
		t.Fatalf("FREQ values = %d", len(freq))
	}
	if f, ok := freq[0].(prop.Frequency); !ok || f != "WEEKLY" {
		t.Errorf("FREQ = %T %v", freq[0], freq[0])
	}

	byday := r.Get("BYDAY")
	if len(byday) != 3 {
		t.Fatalf("BYDAY values = %d", len(byday))
	}
	if w, ok := byday[1].(prop.Weekday); !ok || w.Day != "WE" {
		t.Errorf("BYDAY[1] = %T %v", byday[1], byday[1])
	}

	count := r.Get("COUNT")
	if n, ok := count[0].(prop.Integer); !ok || n != 10 {
		t.Errorf("COUNT = %T %v", count[0], count[0])
	}
}

func TestRecurCanonicalEncodeOrder(t *testing.T) {
	// FREQ must come first on encode no matter where it was parsed
	r, err := prop.DecodeRecur("BYDAY=MO;FREQ=DAILY")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.ICal(); got != "FREQ=DAILY;BYDAY=MO" {
		t.Errorf("ICal() = %q", got)
	}

	r, err = prop.DecodeRecur("FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10")
	if err != nil {
		t.Fatal(err)
	}
	if got := r.ICal(); got != "FREQ=WEEKLY;COUNT=10;BYDAY=MO,WE,FR" {
		t.Errorf("ICal() = %q", got)
	}
}

func TestRecurUnknownKeys(t *testing.T) {
	// unrecognized parts decode as text and serialize after the
	// canonical ones
	r, err := prop.DecodeRecur("X-EXTRA=foo;FREQ=DAILY")
	if err != nil {
		t.Fatal(err)
	}
	extra := r.Get("x-extra")
	if len(extra) != 1 {
		t.Fatalf("X-EXTRA values = %d", len(extra))
	}
	if _, ok := extra[0].(prop.Text); !ok {
		t.Errorf("X-EXTRA = %T", extra[0])
	}
	if got := r.ICal(); got != "FREQ=DAILY;X-EXTRA=foo" {
		t.Errorf("ICal() = %q", got)
	}
}

func TestRecurUntilTemporal(t *testing.T) {
	r, err := prop.DecodeRecur("FREQ=DAILY;UNTIL=20230131T000000Z")
	if err != nil {
		t.Fatal(err)
	}
	until := r.Get("UNTIL")
	if dt, ok := until[0].(prop.DateTime); !ok || dt.Floating {
		t.Errorf("UNTIL = %T %v", until[0], until[0])
	}
	if got := r.ICal(); got != "FREQ=DAILY;UNTIL=20230131T000000Z" {
		t.Errorf("ICal() = %q", got)
	}
}

func TestRecurRejects(t *testing.T) {
	for _, bad := range []string{
		"FREQ",                // no '='
		"FREQ=A=B",            // duplicate '='
		"FREQ=SOMETIMES",      // bad frequency
		"FREQ=DAILY;BYDAY=XX", // bad weekday
		"COUNT=ten",           // bad integer
	} {
		if _, err := prop.DecodeRecur(bad); err == nil {
			t.Errorf("DecodeRecur(%q) should fail", bad)
		}
	}
}

func TestRecurRRuleSetBridge(t *testing.T) {
	r, err := prop.DecodeRecur("FREQ=DAILY;COUNT=3")
	if err != nil {
		t.Fatal(err)
	}
	set, err := r.RRuleSet()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(set.All()); got != 3 {
		t.Errorf("expanded %d occurrences, want 3", got)
	}

	weekly, err := prop.DecodeRecur("FREQ=WEEKLY;BYDAY=MO,WE;COUNT=4")
	if err != nil {
		t.Fatal(err)
	}
	set, err = weekly.RRuleSet()
	if err != nil {
		t.Fatal(err)
	}
	if got := len(set.All()); got != 4 {
		t.Errorf("expanded %d occurrences, want 4", got)
	}
}
