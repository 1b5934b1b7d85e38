package vtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/settings"
	. "github.com/vango-dev/animate/pkg/vdom"
)

// recorder captures failures so assertions can be tested for failing.
type recorder struct {
	testing.TB
	failed []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = append(r.failed, fmt.Sprintf(format, args...))
}

func animated(t *testing.T, overrides map[string]any) *VNode {
	t.Helper()
	d, err := animate.New(settings.Default(), overrides)
	if err != nil {
		t.Fatalf("animate.New() error: %v", err)
	}
	return animate.ApplyTo(Div(Class("card"), "hello"), d)
}

func TestRenderToString(t *testing.T) {
	if got := RenderToString(P("hi")); got != "<p>hi</p>" {
		t.Errorf("RenderToString() = %q", got)
	}
}

func TestRenderAssertions(t *testing.T) {
	node := animated(t, map[string]any{"animation": "fade-up", "anchor": "#hero"})

	ExpectContains(t, node, "hello")
	ExpectNotContains(t, node, "data-aos-once")
	ExpectAttribute(t, node, "data-aos-anchor", "#hero")

	r := &recorder{TB: t}
	ExpectContains(r, node, "missing")
	ExpectNotContains(r, node, "hello")
	ExpectAttribute(r, node, "data-aos", "zoom-in")
	if len(r.failed) != 3 {
		t.Errorf("recorded %d failures, want 3: %v", len(r.failed), r.failed)
	}
}

func TestExpectAnimation(t *testing.T) {
	node := animated(t, map[string]any{"animation": "zoom-in", "duration": 800, "offset": 50})

	ExpectAnimation(t, node, map[string]string{
		"data-aos":          "zoom-in",
		"data-aos-duration": "800",
		"data-offset":       "50",
	})

	r := &recorder{TB: t}
	ExpectAnimation(r, node, map[string]string{
		"data-aos":        "fade",
		"data-aos-easing": "linear",
	})
	if len(r.failed) != 1 {
		t.Fatalf("recorded %d failures, want 1", len(r.failed))
	}
	for _, want := range []string{`data-aos="zoom-in", want "fade"`, "missing data-aos-easing", "unexpected data-aos-duration", "unexpected data-offset"} {
		if !strings.Contains(r.failed[0], want) {
			t.Errorf("failure message missing %q:\n%s", want, r.failed[0])
		}
	}

	ExpectAnimation(t, Div("plain"), nil)
}

func TestFind(t *testing.T) {
	root := Div(
		Div(Class("card primary")),
		Section(Div(Class("card"))),
		Div(Class("cards")),
	)
	if got := len(Find(root, "card")); got != 2 {
		t.Errorf("Find() matched %d, want 2", got)
	}
	if got := Find(nil, "card"); len(got) != 0 {
		t.Errorf("Find(nil) = %v", got)
	}
}
