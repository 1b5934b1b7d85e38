package settings

import (
	"encoding/json"
	"reflect"
	"sync"
	"testing"

	"github.com/vango-dev/animate/internal/errors"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	tests := map[string]any{
		KeyAnimation:       "fade",
		KeyOffset:          120,
		KeyDelay:           0,
		KeyDuration:        400,
		KeyEasing:          "ease",
		KeyOnce:            false,
		KeyMirror:          false,
		KeyAnchorPlacement: "top-bottom",
		KeyDisable:         false,
		KeyInitClassName:   "aos-init",
		KeyDebounceDelay:   50,
		KeyThrottleDelay:   99,
	}
	for key, want := range tests {
		if got := d[key]; got != want {
			t.Errorf("Defaults()[%q] = %v, want %v", key, got, want)
		}
	}
	if len(d) != len(Keys()) {
		t.Errorf("len(Defaults()) = %d, want %d", len(d), len(Keys()))
	}
}

func TestNewNormalizesValues(t *testing.T) {
	s, err := New(Values{
		KeyDelay:    json.Number("150"),
		KeyDuration: 800.0,
		KeyOffset:   "60",
		KeyOnce:     "true",
		KeyMirror:   1,
		KeyDisable:  "",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := s.CurrentValue(KeyDelay); got != 150 {
		t.Errorf("delay = %#v, want 150", got)
	}
	if got := s.CurrentValue(KeyDuration); got != 800 {
		t.Errorf("duration = %#v, want 800", got)
	}
	if got := s.CurrentValue(KeyOffset); got != 60 {
		t.Errorf("offset = %#v, want 60", got)
	}
	if got := s.CurrentValue(KeyOnce); got != true {
		t.Errorf("once = %#v, want true", got)
	}
	if got := s.CurrentValue(KeyMirror); got != true {
		t.Errorf("mirror = %#v, want true", got)
	}
	if got := s.CurrentValue(KeyDisable); got != false {
		t.Errorf("disable = %#v, want false", got)
	}
}

func TestNewIgnoresUnknownKeys(t *testing.T) {
	s, err := New(Values{"sparkle": true, KeyDelay: 10})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := s.CurrentValue("sparkle"); got != nil {
		t.Errorf("unknown key should not be stored, got %v", got)
	}
	if got := s.Ignored(); !reflect.DeepEqual(got, []string{"sparkle"}) {
		t.Errorf("Ignored() = %v", got)
	}
}

func TestNewRejectsBadNumbers(t *testing.T) {
	_, err := New(Values{KeyDelay: "soon"})
	if err == nil {
		t.Fatal("expected error for non-numeric delay")
	}
	if errors.CodeOf(err) != "E131" {
		t.Errorf("CodeOf() = %q, want E131", errors.CodeOf(err))
	}
	var ae *errors.AnimateError
	if !errors.As(err, &ae) || ae.Field != KeyDelay {
		t.Errorf("error should name the delay field, got %v", err)
	}
}

func TestDiffFromDefault(t *testing.T) {
	tests := []struct {
		name       string
		configured Values
		want       map[string]any
	}{
		{"defaults only", nil, map[string]any{}},
		{"configured to default", Values{KeyDelay: 0, KeyAnimation: "fade"}, map[string]any{}},
		{"changed", Values{KeyDelay: 200, KeyEasing: "linear"}, map[string]any{KeyDelay: 200, KeyEasing: "linear"}},
		{"float equals int default", Values{KeyDuration: 400.0}, map[string]any{}},
		{"disable device", Values{KeyDisable: "phone"}, map[string]any{KeyDisable: "phone"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustNew(tt.configured)
			if got := s.DiffFromDefault(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DiffFromDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStoreWith(t *testing.T) {
	base := MustNew(Values{KeyDelay: 100})
	next, err := base.With(Values{KeyOnce: true})
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if next.Int(KeyDelay) != 100 || !next.Bool(KeyOnce) {
		t.Errorf("With() lost values: %v", next.Values())
	}
	if base.Bool(KeyOnce) {
		t.Error("With() should not modify the receiver")
	}
}

func TestNilStore(t *testing.T) {
	var s *Store
	if got := s.String(KeyAnimation); got != "fade" {
		t.Errorf("nil store animation = %q, want fade", got)
	}
	if got := s.DiffFromDefault(); len(got) != 0 {
		t.Errorf("nil store diff = %v", got)
	}
}

func TestHolder(t *testing.T) {
	h := NewHolder(nil)
	if h.Load().Int(KeyDelay) != 0 {
		t.Error("new holder should serve defaults")
	}

	next := MustNew(Values{KeyDelay: 300})
	prev := h.Swap(next)
	if prev == nil || prev.Int(KeyDelay) != 0 {
		t.Error("Swap() should return the previous store")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if d := h.Load().Int(KeyDelay); d != 300 {
				t.Errorf("Load().Int(delay) = %d, want 300", d)
			}
		}()
	}
	wg.Wait()
}

func TestDisableOptions(t *testing.T) {
	opts := DisableOptions()
	if len(opts) != 4 || opts[0].Value != "" || opts[3].Value != "mobile" {
		t.Errorf("DisableOptions() = %v", opts)
	}
}
