package prop

import (
	"regexp"
	"strconv"
	"time"

	"icalval/parser"
)

// grammar from RFC5545 3.3.6: the weeks form and the days/time form
// are mutually exclusive
var durationRegex = regexp.MustCompile(
	`^([-+]?)P(?:(\d+)W|(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?)$`)

// Duration is a DURATION value: a signed span of time with day and
// second granularity.
type Duration time.Duration

func (d Duration) ICal() string {
	v := time.Duration(d)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	// second granularity; anything finer has no serialized form
	v = v.Truncate(time.Second)
	days := v / (24 * time.Hour)
	rem := v % (24 * time.Hour)
	timepart := ""
	if rem > 0 {
		hours := rem / time.Hour
		minutes := rem % time.Hour / time.Minute
		seconds := rem % time.Minute / time.Second
		timepart = "T"
		if hours > 0 {
			timepart += strconv.Itoa(int(hours)) + "H"
		}
		if minutes > 0 || (hours > 0 && seconds > 0) {
			timepart += strconv.Itoa(int(minutes)) + "M"
		}
		if seconds > 0 {
			timepart += strconv.Itoa(int(seconds)) + "S"
		}
	}
	if days == 0 && timepart != "" {
		return sign + "P" + timepart
	}
	return sign + "P" + strconv.Itoa(int(days)) + "D" + timepart
}

func (d Duration) Parameters() *parser.Params { return parser.NewParams() }

func (Duration) temporal() {}

// DecodeDuration parses [sign]P<weeks>W or
// [sign]P[<days>D][T[<hours>H][<minutes>M][<seconds>S]].
func DecodeDuration(text string) (Duration, error) {
	m := durationRegex.FindStringSubmatch(text)
	if m == nil {
		return 0, invalid("DURATION", text, "")
	}
	sign, weeks, days, hours, minutes, seconds := m[1], m[2], m[3], m[4], m[5], m[6]
	var v time.Duration
	if weeks != "" {
		n, _ := strconv.Atoi(weeks)
		v = time.Duration(n) * 7 * 24 * time.Hour
	} else {
		v = time.Duration(atoiOrZero(days))*24*time.Hour +
			time.Duration(atoiOrZero(hours))*time.Hour +
			time.Duration(atoiOrZero(minutes))*time.Minute +
			time.Duration(atoiOrZero(seconds))*time.Second
	}
	if sign == "-" {
		v = -v
	}
	return Duration(v), nil
}

func atoiOrZero(s string) int {
	if s == "" {
		return 0
	}
	n, _ := strconv.Atoi(s)
	return n
}
