package prop

import (
	"fmt"
	"strings"
	"time"
)

// Kind bundles the codec for one registered value type: a
// pattern-matching constructor from a native Go value and a decoder
// from raw property text. The tzid argument of Decode is the optional
// timezone hint temporal types take; the others ignore it.
type Kind struct {
	Name   string
	New    func(native any) (Value, error)
	Decode func(text, tzid string) (Value, error)
}

func unsupportedNative(kind string, native any) error {
	return invalid(kind, fmt.Sprintf("%v", native),
		fmt.Sprintf("unsupported native type %T", native))
}

// the closed set of value-type codecs, keyed by the lowercase names
// RFC5545 uses in VALUE parameters
var kinds = map[string]Kind{}

func registerKind(k Kind) { kinds[k.Name] = k }

func init() {
	registerKind(Kind{
		Name: "binary",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Binary:
				return v, nil
			case []byte:
				return Binary(v), nil
			case string:
				return Binary(v), nil
			}
			return nil, unsupportedNative("BINARY", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeBinary(text) },
	})
	registerKind(Kind{
		Name: "boolean",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Boolean:
				return v, nil
			case bool:
				return Boolean(v), nil
			}
			return nil, unsupportedNative("BOOLEAN", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeBoolean(text) },
	})
	registerKind(Kind{
		Name: "cal-address",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case CalAddress:
				return v, nil
			case string:
				return NewCalAddress(v), nil
			}
			return nil, unsupportedNative("CAL-ADDRESS", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeCalAddress(text) },
	})
	registerKind(Kind{
		Name: "float",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Float:
				return v, nil
			case float64:
				return Float(v), nil
			case float32:
				return Float(v), nil
			case int:
				return Float(v), nil
			}
			return nil, unsupportedNative("FLOAT", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeFloat(text) },
	})
	registerKind(Kind{
		Name: "integer",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Integer:
				return v, nil
			case int:
				return Integer(v), nil
			case int64:
				return Integer(v), nil
			}
			return nil, unsupportedNative("INTEGER", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeInteger(text) },
	})
	registerKind(Kind{
		Name: "text",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Text:
				return v, nil
			case string:
				return Text(v), nil
			}
			return nil, unsupportedNative("TEXT", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeText(text) },
	})
	registerKind(Kind{
		Name: "uri",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case URI:
				return v, nil
			case string:
				return URI(v), nil
			}
			return nil, unsupportedNative("URI", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeURI(text) },
	})
	registerKind(Kind{
		Name: "inline",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Inline:
				return v, nil
			case string:
				return Inline{Raw: v}, nil
			}
			return nil, unsupportedNative("INLINE", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeInline(text) },
	})
	registerKind(Kind{
		Name: "geo",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case Geo:
				return v, nil
			case [2]float64:
				return Geo{Lat: v[0], Lon: v[1]}, nil
			}
			return nil, unsupportedNative("GEO", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeGeo(text) },
	})
	registerKind(Kind{
		Name: "utc-offset",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case UTCOffset:
				return v, nil
			case time.Duration:
				return NewUTCOffset(v)
			}
			return nil, unsupportedNative("UTC-OFFSET", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeUTCOffset(text) },
	})
	registerKind(Kind{
		Name: "period",
		New: func(native any) (Value, error) {
			if v, ok := native.(Period); ok {
				return v, nil
			}
			return nil, unsupportedNative("PERIOD", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodePeriod(text) },
	})
	registerKind(Kind{
		Name: "recur",
		New: func(native any) (Value, error) {
			if v, ok := native.(*Recur); ok {
				return v, nil
			}
			return nil, unsupportedNative("RECUR", native)
		},
		Decode: func(text, _ string) (Value, error) { return DecodeRecur(text) },
	})
	registerKind(Kind{
		Name: "date-time-list",
		New: func(native any) (Value, error) {
			switch v := native.(type) {
			case TemporalList:
				return v, nil
			case []Temporal:
				return TemporalList{Values: v}, nil
			case []time.Time:
				vals := make([]Temporal, 0, len(v))
				for _, t := range v {
					vals = append(vals, NewDateTime(t))
				}
				return TemporalList{Values: vals}, nil
			}
			return nil, unsupportedNative("DATE-TIME-LIST", native)
		},
		Decode: func(text, tzid string) (Value, error) { return DecodeTemporalList(text, tzid) },
	})

	// the four temporal names share the polymorphic dispatcher, so a
	// DTSTART decodes as DATE-TIME or DATE depending on the text alone
	temporalKind := func(name string) Kind {
		return Kind{
			Name: name,
			New: func(native any) (Value, error) {
				return NewTemporal(native)
			},
			Decode: func(text, tzid string) (Value, error) {
				return DecodeTemporal(text, tzid)
			},
		}
	}
	registerKind(temporalKind("date"))
	registerKind(temporalKind("date-time"))
	registerKind(temporalKind("duration"))
	registerKind(temporalKind("time"))
}

// default value type per property and parameter name, from RFC5545.
// Property and parameter names do not overlap, so one table serves
// both. Unlisted names map to text.
var propertyTypes = map[string]string{
	// calendar properties
	"calscale": "text",
	"method":   "text",
	"prodid":   "text",
	"version":  "text",
	// descriptive component properties
	"attach":           "uri",
	"categories":       "text",
	"class":            "text",
	"comment":          "text",
	"description":      "text",
	"geo":              "geo",
	"location":         "text",
	"percent-complete": "integer",
	"priority":         "integer",
	"resources":        "text",
	"status":           "text",
	"summary":          "text",
	// date and time component properties
	"completed": "date-time",
	"dtend":     "date-time",
	"due":       "date-time",
	"dtstart":   "date-time",
	"duration":  "duration",
	"freebusy":  "period",
	"transp":    "text",
	// time zone component properties
	"tzid":         "text",
	"tzname":       "text",
	"tzoffsetfrom": "utc-offset",
	"tzoffsetto":   "utc-offset",
	"tzurl":        "uri",
	// relationship component properties
	"attendee":      "cal-address",
	"contact":       "text",
	"organizer":     "cal-address",
	"recurrence-id": "date-time",
	"related-to":    "text",
	"url":           "uri",
	"uid":           "text",
	// recurrence component properties
	"exdate": "date-time-list",
	"exrule": "recur",
	"rdate":  "date-time-list",
	"rrule":  "recur",
	// alarm component properties
	"action":  "text",
	"repeat":  "integer",
	"trigger": "duration",
	// change management component properties
	"created":       "date-time",
	"dtstamp":       "date-time",
	"last-modified": "date-time",
	"sequence":      "integer",
	// miscellaneous component properties
	"request-status": "text",
	// parameter types
	"altrep":         "uri",
	"cn":             "text",
	"cutype":         "text",
	"delegated-from": "cal-address",
	"delegated-to":   "cal-address",
	"dir":            "uri",
	"encoding":       "text",
	"fmttype":        "text",
	"fbtype":         "text",
	"language":       "text",
	"member":         "cal-address",
	"partstat":       "text",
	"range":          "text",
	"related":        "text",
	"reltype":        "text",
	"role":           "text",
	"rsvp":           "boolean",
	"sent-by":        "cal-address",
	"value":          "text",
}

// For returns the codec for a property or parameter name,
// case-insensitively, defaulting to the text codec for unknown names.
func For(name string) Kind {
	kindName, ok := propertyTypes[strings.ToLower(name)]
	if !ok {
		kindName = "text"
	}
	return kinds[kindName]
}

// ForType returns a codec by value type name (e.g. "date-time",
// "recur"), defaulting to text.
func ForType(typeName string) Kind {
	if k, ok := kinds[strings.ToLower(typeName)]; ok {
		return k
	}
	return kinds["text"]
}

// Decode decodes raw property text by property name.
func Decode(name, text string) (Value, error) {
	return For(name).Decode(text, "")
}

// DecodeIn decodes raw property text by property name with a timezone
// hint, as extracted from a TZID parameter by the tokenizer.
func DecodeIn(name, text, tzid string) (Value, error) {
	return For(name).Decode(text, tzid)
}

// Encode encodes a native Go value as the text form of the named
// property's default type.
func Encode(name string, native any) (string, error) {
	v, err := For(name).New(native)
	if err != nil {
		return "", err
	}
	return v.ICal(), nil
}
