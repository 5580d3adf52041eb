package parser

import "strings"

// Params is an ordered, case-insensitive mapping from parameter name to
// parameter value, e.g. TZID=Europe/Paris;VALUE=DATE-TIME.
//
// Keys compare case-insensitively; the case used on first Set is kept
// for iteration. Insertion order is preserved so serialization stays
// deterministic, but it does not affect Equal.
type Params struct {
	order  []string          // canonical keys, insertion order
	names  map[string]string // canonical key -> key as first set
	values map[string]string // canonical key -> value
}

// NewParams returns an empty parameter map. Every value owns its own
// Params instance; they are never shared between values.
func NewParams() *Params {
	return &Params{
		names:  make(map[string]string),
		values: make(map[string]string),
	}
}

func canonicalKey(key string) string {
	return strings.ToUpper(key)
}

// Set adds or replaces a parameter. Replacing keeps the original
// position and spelling of the key.
func (p *Params) Set(key, value string) {
	ck := canonicalKey(key)
	if _, ok := p.values[ck]; !ok {
		p.order = append(p.order, ck)
		p.names[ck] = key
	}
	p.values[ck] = value
}

// Get looks up a parameter by name, case-insensitively.
func (p *Params) Get(key string) (string, bool) {
	v, ok := p.values[canonicalKey(key)]
	return v, ok
}

// Has reports whether the parameter is present.
func (p *Params) Has(key string) bool {
	_, ok := p.values[canonicalKey(key)]
	return ok
}

// Del removes a parameter if present.
func (p *Params) Del(key string) {
	ck := canonicalKey(key)
	if _, ok := p.values[ck]; !ok {
		return
	}
	delete(p.values, ck)
	delete(p.names, ck)
	for i, k := range p.order {
		if k == ck {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// Keys returns the parameter names in insertion order, spelled the way
// they were first set.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.order))
	for _, ck := range p.order {
		keys = append(keys, p.names[ck])
	}
	return keys
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	return len(p.values)
}

// Equal reports whether both maps hold the same parameters, ignoring
// key case and insertion order.
func (p *Params) Equal(other *Params) bool {
	if p.Len() != other.Len() {
		return false
	}
	for ck, v := range p.values {
		ov, ok := other.values[ck]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
