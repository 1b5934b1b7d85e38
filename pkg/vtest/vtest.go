package vtest

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/vango-dev/animate/pkg/render"
	"github.com/vango-dev/animate/pkg/vdom"
)

// RenderToString renders a VNode and returns the HTML string, or "" when
// the tree cannot be rendered.
//
// Example:
//
//	html := vtest.RenderToString(card)
func RenderToString(node *vdom.VNode) string {
	r := render.NewRenderer(render.RendererConfig{})
	html, err := r.RenderToString(node)
	if err != nil {
		return ""
	}
	return html
}

// ExpectContains asserts that rendered output contains expected substring.
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain substring.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that rendered output contains an attribute value.
//
// Example:
//
//	vtest.ExpectAttribute(t, node, "data-aos-anchor", "#hero")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	html := RenderToString(node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

// AnimationAttrs returns the animation data attributes on node itself
// (data-aos, data-aos-* and data-offset), formatted as they render.
func AnimationAttrs(node *vdom.VNode) map[string]string {
	out := make(map[string]string)
	if node == nil {
		return out
	}
	for k, v := range node.Props {
		if k == "data-aos" || k == "data-offset" || strings.HasPrefix(k, "data-aos-") {
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// ExpectAnimation asserts that node carries exactly the want data-aos
// attributes. A nil or empty want asserts the node is not animated.
func ExpectAnimation(t testing.TB, node *vdom.VNode, want map[string]string) {
	t.Helper()
	got := AnimationAttrs(node)
	var diffs []string
	for k, v := range want {
		if g, ok := got[k]; !ok {
			diffs = append(diffs, fmt.Sprintf("missing %s=%q", k, v))
		} else if g != v {
			diffs = append(diffs, fmt.Sprintf("%s=%q, want %q", k, g, v))
		}
	}
	for k, v := range got {
		if _, ok := want[k]; !ok {
			diffs = append(diffs, fmt.Sprintf("unexpected %s=%q", k, v))
		}
	}
	if len(diffs) > 0 {
		sort.Strings(diffs)
		t.Errorf("<%s> animation attributes:\n  %s", node.Tag, strings.Join(diffs, "\n  "))
	}
}

// Find returns the elements under root, root included, whose class list
// contains class.
func Find(root *vdom.VNode, class string) []*vdom.VNode {
	var out []*vdom.VNode
	var walk func(*vdom.VNode)
	walk = func(n *vdom.VNode) {
		if n == nil {
			return
		}
		if c, ok := n.Props["class"].(string); ok {
			for _, f := range strings.Fields(c) {
				if f == class {
					out = append(out, n)
					break
				}
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
