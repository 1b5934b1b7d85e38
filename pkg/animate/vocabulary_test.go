package animate

import "testing"

func TestVocabularySizes(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want int
	}{
		{"animations", Animations(), 27},
		{"placements", Placements(), 9},
		{"easings", Easings(), 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.opts) != tt.want {
				t.Errorf("len = %d, want %d", len(tt.opts), tt.want)
			}
			seen := map[string]bool{}
			for _, o := range tt.opts {
				if seen[o.Value] {
					t.Errorf("duplicate value %q", o.Value)
				}
				seen[o.Value] = true
				if o.Label == "" {
					t.Errorf("%q has no label", o.Value)
				}
			}
		})
	}
}

func TestVocabularyOrderAndLabels(t *testing.T) {
	a := Animations()
	if a[0] != (Option{"fade", "Fade"}) || a[len(a)-1] != (Option{"zoom-out-right", "Zoom Out Right"}) {
		t.Errorf("animations order: first %v, last %v", a[0], a[len(a)-1])
	}
	p := Placements()
	if p[0].Value != "top-center" || p[8].Value != "bottom-top" {
		t.Errorf("placements order: %v", p)
	}
	e := Easings()
	if e[0] != (Option{"linear", "Linear"}) || e[19] != (Option{"ease-in-out-quart", "Ease In Out Quart"}) {
		t.Errorf("easings order: first %v, last %v", e[0], e[19])
	}
}

func TestMembership(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) bool
		in   string
		want bool
	}{
		{"animation", IsAnimation, "fade-up", true},
		{"animation constant", IsAnimation, string(ZoomOutLeft), true},
		{"animation unknown", IsAnimation, "spin", false},
		{"animation empty", IsAnimation, "", false},
		{"placement", IsPlacement, "center-bottom", true},
		{"placement constant", IsPlacement, string(PlacementBottomTop), true},
		{"placement unknown", IsPlacement, "left-right", false},
		{"easing", IsEasing, "ease-out-back", true},
		{"easing constant", IsEasing, string(EasingEaseInOutSine), true},
		{"easing unknown", IsEasing, "bounce", false},
		{"easing is not an animation", IsAnimation, "ease", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabels(t *testing.T) {
	m := Labels(Placements())
	if len(m) != 9 || m["top-bottom"] != "Top Bottom" {
		t.Errorf("Labels(Placements()) = %v", m)
	}
}

func TestOptionsReturnsCopy(t *testing.T) {
	a := Animations()
	a[0].Value = "changed"
	if Animations()[0].Value != "fade" {
		t.Error("Animations() should return a fresh slice")
	}
}
