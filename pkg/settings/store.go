package settings

import (
	"sort"
	"sync/atomic"

	"github.com/vango-dev/animate/internal/errors"
)

// Values is a loosely typed settings map keyed by setting name.
type Values map[string]any

// Clone returns a shallow copy of v.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Store is an immutable snapshot of the configured global settings.
type Store struct {
	values  Values
	ignored []string
}

// New builds a Store from configured values. Keys the client library does
// not know are dropped and reported by Ignored. A value that cannot be
// normalised for its key yields an E131 error naming the key.
func New(configured Values) (*Store, error) {
	s := &Store{values: Defaults()}
	keys := make([]string, 0, len(configured))
	for k := range configured {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !IsKey(k) {
			s.ignored = append(s.ignored, k)
			continue
		}
		nv, err := normalize(k, configured[k])
		if err != nil {
			return nil, errors.New("E131").
				WithField(k, configured[k]).
				WithDetail(err.Error()).
				Wrap(err)
		}
		s.values[k] = nv
	}
	return s, nil
}

// MustNew is New for values known to be valid. It panics on error.
func MustNew(configured Values) *Store {
	s, err := New(configured)
	if err != nil {
		panic(err)
	}
	return s
}

// Default returns a Store holding only library defaults.
func Default() *Store {
	return &Store{values: Defaults()}
}

// CurrentValue returns the active value for key, or nil for unknown keys.
func (s *Store) CurrentValue(key string) any {
	if s == nil {
		return Defaults()[key]
	}
	return s.values[key]
}

// String returns the active value for key as a string.
func (s *Store) String(key string) string {
	str, _ := String(s.CurrentValue(key))
	return str
}

// Int returns the active value for key as an int.
func (s *Store) Int(key string) int {
	i, _ := Int(s.CurrentValue(key))
	return i
}

// Bool returns the active value for key as a bool.
func (s *Store) Bool(key string) bool {
	return Bool(s.CurrentValue(key))
}

// Values returns a copy of every active value.
func (s *Store) Values() Values {
	if s == nil {
		return Defaults()
	}
	return s.values.Clone()
}

// DiffFromDefault returns the keys whose active value differs from the
// library default. The result is never nil.
func (s *Store) DiffFromDefault() map[string]any {
	out := map[string]any{}
	if s == nil {
		return out
	}
	for _, d := range keyDefs {
		if v := s.values[d.key]; !Equal(d.key, v, d.def) {
			out[d.key] = v
		}
	}
	return out
}

// With returns a new Store with overrides layered over s.
func (s *Store) With(overrides Values) (*Store, error) {
	merged := s.Values()
	for k, v := range overrides {
		merged[k] = v
	}
	return New(merged)
}

// Ignored returns the configured keys that were dropped as unknown.
func (s *Store) Ignored() []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s.ignored...)
}

// Holder publishes the current Store to concurrent readers.
type Holder struct {
	p atomic.Pointer[Store]
}

// NewHolder returns a Holder seeded with s, or with defaults when s is nil.
func NewHolder(s *Store) *Holder {
	h := &Holder{}
	if s == nil {
		s = Default()
	}
	h.p.Store(s)
	return h
}

// Load returns the current Store.
func (h *Holder) Load() *Store {
	if s := h.p.Load(); s != nil {
		return s
	}
	return Default()
}

// Swap replaces the current Store and returns the previous one.
func (h *Holder) Swap(s *Store) *Store {
	return h.p.Swap(s)
}
