package animate

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/vango-dev/animate/pkg/settings"
)

func TestAttributesAlwaysPresent(t *testing.T) {
	d := mustNew(t, settings.Default(), nil)
	attrs := d.Attributes()

	if !reflect.DeepEqual(attrs.Classes(), []string{"use-neo-animation"}) {
		t.Errorf("Classes() = %v", attrs.Classes())
	}
	if got, _ := attrs.Get("data-aos"); got != "fade" {
		t.Errorf("data-aos = %q, want global fade", got)
	}
	if attrs.Len() != 1 {
		t.Errorf("only data-aos expected, got %v", attrs.Keys())
	}
}

func TestAttributesResolveGlobalAnimation(t *testing.T) {
	gs := settings.MustNew(settings.Values{settings.KeyAnimation: "zoom-in"})
	d := mustNew(t, gs, nil)
	// The global diff sets the descriptor's animation too.
	if got, _ := d.Attributes().Get("data-aos"); got != "zoom-in" {
		t.Errorf("data-aos = %q, want zoom-in", got)
	}

	d = mustNew(t, fakeSettings{current: map[string]any{"animation": "slide-up"}}, nil)
	if got, _ := d.Attributes().Get("data-aos"); got != "slide-up" {
		t.Errorf("data-aos = %q, want current value slide-up", got)
	}
}

func TestDelayDiffRule(t *testing.T) {
	gs := settings.Default()

	d := mustNew(t, gs, nil)
	d.SetDelay(0)
	if d.Attributes().Has("data-aos-delay") {
		t.Error("delay equal to global should be omitted")
	}

	d.SetDelay(50)
	if got, ok := d.Attributes().Get("data-aos-delay"); !ok || got != "50" {
		t.Errorf("data-aos-delay = %q, %v; want 50", got, ok)
	}
}

func TestAttributesDiffAgainstCurrentValue(t *testing.T) {
	gs := fakeSettings{current: map[string]any{
		"offset":          200,
		"delay":           100.0,
		"duration":        "800",
		"easing":          "linear",
		"anchorPlacement": "center-center",
		"once":            "1",
		"mirror":          0,
	}}

	tests := []struct {
		name  string
		set   func(d *Descriptor)
		attr  string
		want  string
		found bool
	}{
		{"offset same", func(d *Descriptor) { d.SetOffset(200) }, "data-offset", "", false},
		{"offset differs", func(d *Descriptor) { d.SetOffset(120) }, "data-offset", "120", true},
		{"delay float global", func(d *Descriptor) { d.SetDelay(100) }, "data-aos-delay", "", false},
		{"duration string global", func(d *Descriptor) { d.SetDuration(800) }, "data-aos-duration", "", false},
		{"duration differs", func(d *Descriptor) { d.SetDuration(400) }, "data-aos-duration", "400", true},
		{"easing same", func(d *Descriptor) { _ = d.SetEasing("linear") }, "data-aos-easing", "", false},
		{"easing differs", func(d *Descriptor) { _ = d.SetEasing("ease-in") }, "data-aos-easing", "ease-in", true},
		{"placement same", func(d *Descriptor) { _ = d.SetPlacement("center-center") }, "data-aos-anchor-placement", "", false},
		{"placement differs", func(d *Descriptor) { _ = d.SetPlacement("top-top") }, "data-aos-anchor-placement", "top-top", true},
		{"once same", func(d *Descriptor) { d.SetOnce(true) }, "data-aos-once", "", false},
		{"once differs", func(d *Descriptor) { d.SetOnce(false) }, "data-aos-once", "false", true},
		{"mirror same", func(d *Descriptor) { d.SetMirror(false) }, "data-aos-mirror", "", false},
		{"mirror differs", func(d *Descriptor) { d.SetMirror() }, "data-aos-mirror", "true", true},
		{"anchor always", func(d *Descriptor) { d.SetAnchor(".hero") }, "data-aos-anchor", ".hero", true},
		{"unset is omitted", func(d *Descriptor) {}, "data-aos-easing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mustNew(t, gs, nil)
			tt.set(d)
			got, ok := d.Attributes().Get(tt.attr)
			if ok != tt.found || got != tt.want {
				t.Errorf("%s = %q, %v; want %q, %v", tt.attr, got, ok, tt.want, tt.found)
			}
		})
	}
}

func TestAttributesOrder(t *testing.T) {
	d := mustNew(t, nil, map[string]any{
		"anchorPlacement": "bottom-top",
		"anchor":          "#a",
		"mirror":          true,
		"once":            true,
		"easing":          "linear",
		"duration":        1000,
		"delay":           300,
		"offset":          0,
		"animation":       "flip-left",
	})
	want := []string{
		"data-aos",
		"data-offset",
		"data-aos-delay",
		"data-aos-duration",
		"data-aos-easing",
		"data-aos-once",
		"data-aos-mirror",
		"data-aos-anchor",
		"data-aos-anchor-placement",
	}
	if got := d.Attributes().Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestAttributesIdempotent(t *testing.T) {
	d := mustNew(t, nil, map[string]any{"delay": 150, "once": true, "animation": "fade-up"})
	first := d.Attributes()
	second := d.Attributes()
	if !first.Equal(second) {
		t.Errorf("Attributes() not idempotent: %v vs %v", first.Map(), second.Map())
	}
	if !reflect.DeepEqual(first.Map(), second.Map()) {
		t.Error("attribute maps differ")
	}
}

func TestAttributeSet(t *testing.T) {
	var s AttributeSet
	s.AddClass("a", "b", "a", "")
	s.Set("data-x", "1")
	s.Set("data-y", "2")
	s.Set("data-x", "3")

	if !reflect.DeepEqual(s.Classes(), []string{"a", "b"}) {
		t.Errorf("Classes() = %v", s.Classes())
	}
	if !reflect.DeepEqual(s.Keys(), []string{"data-x", "data-y"}) {
		t.Errorf("Keys() = %v", s.Keys())
	}
	if v, _ := s.Get("data-x"); v != "3" {
		t.Errorf("data-x = %q, want 3", v)
	}

	var other AttributeSet
	other.AddClass("a", "b")
	other.Set("data-x", "3")
	if s.Equal(other) {
		t.Error("sets with different keys should not be equal")
	}
	other.Set("data-y", "2")
	if !s.Equal(other) {
		t.Error("sets should be equal")
	}

	props := s.Props()
	if props["class"] != "a b" || props["data-y"] != "2" {
		t.Errorf("Props() = %v", props)
	}
}

func TestAttributeSetJSON(t *testing.T) {
	d := mustNew(t, nil, map[string]any{"animation": "zoom-in", "delay": 100})
	data, err := json.Marshal(d.Attributes())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var decoded struct {
		Classes    []string          `json:"classes"`
		Attributes map[string]string `json:"attributes"`
		Order      []string          `json:"order"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Attributes["data-aos"] != "zoom-in" || decoded.Attributes["data-aos-delay"] != "100" {
		t.Errorf("attributes = %v", decoded.Attributes)
	}
	if !reflect.DeepEqual(decoded.Order, []string{"data-aos", "data-aos-delay"}) {
		t.Errorf("order = %v", decoded.Order)
	}

	empty, _ := json.Marshal(AttributeSet{})
	if string(empty) != `{"classes":[],"attributes":{},"order":[]}` {
		t.Errorf("empty set JSON = %s", empty)
	}
}
