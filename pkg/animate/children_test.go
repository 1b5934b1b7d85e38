package animate

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/vango-dev/animate/pkg/settings"
	"github.com/vango-dev/animate/pkg/vdom"
)

func delays(node *vdom.VNode) []string {
	out := make([]string, 0, len(node.Children))
	for _, c := range node.Children {
		if c == nil {
			continue
		}
		v, ok := c.Props["data-aos-delay"].(string)
		if !ok {
			v = "0"
		}
		out = append(out, v)
	}
	return out
}

func TestApplyToChildrenStagger(t *testing.T) {
	list := vdom.Ul(vdom.Li(), vdom.Li(), vdom.Li(), vdom.Li(), vdom.Li())
	if err := ApplyToChildren(list, settings.Default(), "", 3, 200, nil); err != nil {
		t.Fatalf("ApplyToChildren() error = %v", err)
	}

	want := []string{"0", "200", "400", "0", "200"}
	if got := delays(list); !reflect.DeepEqual(got, want) {
		t.Errorf("delays = %v, want %v", got, want)
	}
}

func TestApplyToChildrenZeroStep(t *testing.T) {
	list := vdom.Ul(vdom.Li(), vdom.Li(), vdom.Li())
	if err := ApplyToChildren(list, settings.Default(), "", 3, 0, nil); err != nil {
		t.Fatalf("ApplyToChildren() error = %v", err)
	}
	for i, c := range list.Children {
		if _, ok := c.Props["data-aos-delay"]; ok {
			t.Errorf("child %d data-aos-delay = %v, want none (0 equals the global delay)", i, c.Props["data-aos-delay"])
		}
	}

	gs, err := settings.New(settings.Values{"delay": 300})
	if err != nil {
		t.Fatal(err)
	}
	list = vdom.Ul(vdom.Li(), vdom.Li())
	if err := ApplyToChildren(list, gs, "", 2, 0, nil); err != nil {
		t.Fatalf("ApplyToChildren() error = %v", err)
	}
	if want := []string{"0", "0"}; !reflect.DeepEqual(delays(list), want) {
		t.Errorf("delays = %v, want %v", delays(list), want)
	}
}

func TestApplyBatch(t *testing.T) {
	tests := []struct {
		name string
		opts BatchOptions
		n    int
		want []string
	}{
		{"no stagger", BatchOptions{}, 3, []string{"0", "0", "0"}},
		{"no stagger keeps overrides", BatchOptions{Overrides: map[string]any{"delay": 50}}, 2, []string{"50", "50"}},
		{"default step", BatchOptions{DelayByDelta: 2, DelayStep: DefaultDelayStep}, 4, []string{"0", "200", "0", "200"}},
		{"zero step", BatchOptions{DelayByDelta: 3}, 3, []string{"0", "0", "0"}},
		{"negative step", BatchOptions{DelayByDelta: 2, DelayStep: -100}, 2, []string{"0", "-100"}},
		{"custom step", BatchOptions{DelayByDelta: 4, DelayStep: 50}, 6, []string{"0", "50", "100", "150", "0", "50"}},
		{"one bucket", BatchOptions{DelayByDelta: 1, DelayStep: 300}, 3, []string{"0", "0", "0"}},
		{"stagger beats override", BatchOptions{DelayByDelta: 2, DelayStep: DefaultDelayStep, Overrides: map[string]any{"delay": 999}}, 2, []string{"0", "200"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := vdom.Div(vdom.Repeat(tt.n, func(int) *vdom.VNode { return vdom.Div() }))
			if err := ApplyBatch(node, settings.Default(), tt.opts); err != nil {
				t.Fatalf("ApplyBatch() error = %v", err)
			}
			if got := delays(node); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("delays = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyToChildrenAnimationAndWrapping(t *testing.T) {
	text := vdom.Text("plain")
	node := vdom.Section(vdom.H2(vdom.Text("Title")), text)
	node.Children = append(node.Children, nil)

	if err := ApplyToChildren(node, settings.Default(), "slide-left", 0, DefaultDelayStep, map[string]any{"once": true}); err != nil {
		t.Fatalf("ApplyToChildren() error = %v", err)
	}

	if node.Children[2] != nil {
		t.Error("nil slot should be left alone")
	}
	for i, c := range node.Children[:2] {
		if c.Props["data-aos"] != "slide-left" || c.Props["data-aos-once"] != "true" {
			t.Errorf("child %d props = %v", i, c.Props)
		}
	}
	if node.Children[1].Tag != "div" || node.Children[1].Children[0] != text {
		t.Error("text child should be wrapped in a div")
	}
	if node.Children[0].Tag != "h2" {
		t.Error("element child should keep its tag")
	}
}

func TestApplyToChildrenNoChildren(t *testing.T) {
	node := vdom.Div()
	if err := ApplyToChildren(node, nil, "fade", 3, 200, nil); err != nil {
		t.Errorf("ApplyToChildren() error = %v", err)
	}
	if node.Props != nil && node.Props.HasClass(ClassName) {
		t.Error("container itself should not be animated")
	}
	if err := ApplyToChildren(nil, nil, "fade", 0, 0, nil); err != nil {
		t.Errorf("ApplyToChildren(nil) error = %v", err)
	}
}

func TestApplyToChildrenInvalidAnimation(t *testing.T) {
	node := vdom.Div(vdom.P(), vdom.P())
	err := ApplyToChildren(node, nil, "spin", 0, 0, nil)
	if !stderrors.Is(err, ErrInvalidArgument) {
		t.Fatalf("error = %v, want ErrInvalidArgument", err)
	}
	if node.Children[0].Props != nil && node.Children[0].Props.HasClass(ClassName) {
		t.Error("no child should be animated after a validation failure on the first")
	}
}

func TestApplyToChildrenDoesNotShareOverrides(t *testing.T) {
	overrides := map[string]any{"easing": "linear"}
	node := vdom.Div(vdom.P(), vdom.P())
	if err := ApplyToChildren(node, nil, "", 2, 100, overrides); err != nil {
		t.Fatal(err)
	}
	if _, ok := overrides["delay"]; ok {
		t.Error("caller overrides should not be modified")
	}
}

func TestStagger(t *testing.T) {
	s := NewStagger(3, DefaultDelayStep)
	var got []int
	for i := 0; i < 7; i++ {
		d, ok := s.Next()
		if !ok {
			t.Fatal("stagger should be active")
		}
		got = append(got, d)
	}
	if want := []int{0, 200, 400, 0, 200, 400, 0}; !reflect.DeepEqual(got, want) {
		t.Errorf("delays = %v, want %v", got, want)
	}

	zero := NewStagger(3, 0)
	for i := 0; i < 4; i++ {
		if d, ok := zero.Next(); !ok || d != 0 {
			t.Errorf("zero step Next() = %d, %v, want 0, true", d, ok)
		}
	}

	if _, ok := NewStagger(0, 100).Next(); ok {
		t.Error("zero buckets should be inactive")
	}
	var nilStagger *Stagger
	if _, ok := nilStagger.Next(); ok {
		t.Error("nil stagger should be inactive")
	}
}
