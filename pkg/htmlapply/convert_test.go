package htmlapply

import (
	"strings"
	"testing"

	"github.com/vango-dev/animate/pkg/vdom"
)

func TestToVNode(t *testing.T) {
	doc := parse(t, `<div class="a"><p>Hi <b>there</b></p>
	<!-- note --></div>`)

	root := ToVNode(doc)
	if root.Kind != vdom.KindFragment {
		t.Fatalf("root kind = %v", root.Kind)
	}

	html := root.Children[0]
	if html.Tag != "html" || len(html.Children) != 2 {
		t.Fatalf("html node = %+v", html)
	}
	body := html.Children[1]
	div := body.Children[0]
	if div.Tag != "div" || div.Props["class"] != "a" {
		t.Errorf("div = %+v", div)
	}
	if len(div.Children) != 1 {
		t.Errorf("comment and whitespace should be dropped, got %d children", len(div.Children))
	}

	dump := vdom.Dump(div)
	for _, want := range []string{"<div .a>", "<p>", `Text "Hi "`, "<b>"} {
		if !strings.Contains(dump, want) {
			t.Errorf("Dump() missing %q\n%s", want, dump)
		}
	}
}
