package vdom

import (
	"sort"
	"strings"
)

// Props holds the attributes of an element.
//
// The "class" entry is kept as a single space separated string so that it
// renders as-is; use Classes and AddClass to work with individual tokens.
type Props map[string]any

// Clone returns a shallow copy of the props.
func (p Props) Clone() Props {
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Classes returns the class tokens in document order.
func (p Props) Classes() []string {
	switch v := p["class"].(type) {
	case string:
		return strings.Fields(v)
	case []string:
		out := make([]string, 0, len(v))
		for _, c := range v {
			out = append(out, strings.Fields(c)...)
		}
		return out
	default:
		return nil
	}
}

// HasClass reports whether the class token is present.
func (p Props) HasClass(class string) bool {
	for _, c := range p.Classes() {
		if c == class {
			return true
		}
	}
	return false
}

// AddClass appends class tokens that are not already present.
func (p Props) AddClass(classes ...string) {
	current := p.Classes()
	seen := make(map[string]bool, len(current)+len(classes))
	for _, c := range current {
		seen[c] = true
	}
	for _, c := range classes {
		for _, token := range strings.Fields(c) {
			if seen[token] {
				continue
			}
			seen[token] = true
			current = append(current, token)
		}
	}
	if len(current) == 0 {
		return
	}
	p["class"] = strings.Join(current, " ")
}

// DataKeys returns the sorted data-* attribute names.
func (p Props) DataKeys() []string {
	keys := make([]string, 0)
	for k := range p {
		if strings.HasPrefix(k, "data-") {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// String returns the attribute value as a string, or "" when it is unset
// or not a string.
func (p Props) String(key string) string {
	s, _ := p[key].(string)
	return s
}
