package animate

import (
	"encoding/json"
	"slices"

	"github.com/vango-dev/animate/pkg/vdom"
)

// AttributeSet is an ordered list of class tokens plus data attributes in
// insertion order. The zero value is ready to use.
type AttributeSet struct {
	classes []string
	keys    []string
	values  map[string]string
}

// AddClass appends class tokens that are not yet present.
func (s *AttributeSet) AddClass(classes ...string) {
	for _, c := range classes {
		if c != "" && !slices.Contains(s.classes, c) {
			s.classes = append(s.classes, c)
		}
	}
}

// Set stores an attribute, keeping its first insertion position.
func (s *AttributeSet) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the attribute value and whether it is present.
func (s AttributeSet) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Has reports whether the attribute is present.
func (s AttributeSet) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Classes returns the class tokens in order.
func (s AttributeSet) Classes() []string { return slices.Clone(s.classes) }

// Keys returns the attribute names in insertion order.
func (s AttributeSet) Keys() []string { return slices.Clone(s.keys) }

// Len returns the number of attributes, not counting classes.
func (s AttributeSet) Len() int { return len(s.keys) }

// Map returns the attributes as a plain map.
func (s AttributeSet) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// Props converts the set to element props, class included.
func (s AttributeSet) Props() vdom.Props {
	return Merge(nil, s)
}

// Equal reports whether both sets hold the same classes and attributes in
// the same order.
func (s AttributeSet) Equal(o AttributeSet) bool {
	if !slices.Equal(s.classes, o.classes) || !slices.Equal(s.keys, o.keys) {
		return false
	}
	for k, v := range s.values {
		if o.values[k] != v {
			return false
		}
	}
	return true
}

type attributeSetJSON struct {
	Classes    []string          `json:"classes"`
	Attributes map[string]string `json:"attributes"`
	Order      []string          `json:"order"`
}

// MarshalJSON encodes the set as {classes, attributes, order}.
func (s AttributeSet) MarshalJSON() ([]byte, error) {
	out := attributeSetJSON{
		Classes:    s.Classes(),
		Attributes: s.Map(),
		Order:      s.Keys(),
	}
	if out.Classes == nil {
		out.Classes = []string{}
	}
	if out.Order == nil {
		out.Order = []string{}
	}
	return json.Marshal(out)
}
