package vdom

import "testing"

func TestCreateElement(t *testing.T) {
	t.Run("basic element", func(t *testing.T) {
		node := Div()
		if node.Kind != KindElement {
			t.Errorf("Kind = %v, want KindElement", node.Kind)
		}
		if node.Tag != "div" {
			t.Errorf("Tag = %v, want div", node.Tag)
		}
	})

	t.Run("with multiple attributes", func(t *testing.T) {
		node := Div(Class("card"), ID("main"))
		if node.Props["class"] != "card" {
			t.Errorf("class = %v, want card", node.Props["class"])
		}
		if node.Props["id"] != "main" {
			t.Errorf("id = %v, want main", node.Props["id"])
		}
	})

	t.Run("classes accumulate", func(t *testing.T) {
		node := Div(Class("card"), Class("wide card"))
		if node.Props["class"] != "card wide" {
			t.Errorf("class = %v, want %q", node.Props["class"], "card wide")
		}
	})

	t.Run("props and attr slices", func(t *testing.T) {
		node := Div(Props{"data-x": "1"}, []Attr{ID("a"), {}})
		if node.Props["data-x"] != "1" || node.Props["id"] != "a" {
			t.Errorf("Props = %v", node.Props)
		}
	})

	t.Run("key attribute", func(t *testing.T) {
		node := Li(Key(7))
		if node.Key != "7" {
			t.Errorf("Key = %q, want 7", node.Key)
		}
	})

	t.Run("children", func(t *testing.T) {
		node := Div(H1(Text("Title")), []*VNode{P(), nil, Span()}, "tail", nil)
		if len(node.Children) != 4 {
			t.Fatalf("Children len = %v, want 4", len(node.Children))
		}
		if node.Children[3].Kind != KindText || node.Children[3].Text != "tail" {
			t.Errorf("string shorthand child = %+v", node.Children[3])
		}
	})

	t.Run("component child", func(t *testing.T) {
		node := Div(Func(func() *VNode { return P() }))
		if len(node.Children) != 1 || node.Children[0].Kind != KindComponent {
			t.Fatalf("Children = %+v", node.Children)
		}
	})

	t.Run("attachments argument", func(t *testing.T) {
		node := Div(Attachments{Library: []string{"neo_animate/animate"}})
		if node.Attached == nil || !node.Attached.HasLibrary("neo_animate/animate") {
			t.Errorf("Attached = %+v", node.Attached)
		}
	})
}

func TestElementFactories(t *testing.T) {
	tests := []struct {
		node *VNode
		tag  string
	}{
		{Html(), "html"}, {Head(), "head"}, {Body(), "body"}, {Title(), "title"},
		{Meta(), "meta"}, {Link(), "link"}, {Header(), "header"}, {Footer(), "footer"},
		{Main(), "main"}, {Nav(), "nav"}, {Section(), "section"}, {Article(), "article"},
		{Aside(), "aside"}, {H1(), "h1"}, {H2(), "h2"}, {H3(), "h3"}, {P(), "p"},
		{Span(), "span"}, {Pre(), "pre"}, {Ul(), "ul"}, {Ol(), "ol"}, {Li(), "li"},
		{Hr(), "hr"}, {Figure(), "figure"}, {Figcaption(), "figcaption"}, {A(), "a"},
		{Strong(), "strong"}, {Em(), "em"}, {Code(), "code"}, {Br(), "br"},
		{Img(), "img"}, {Script(), "script"}, {Noscript(), "noscript"},
		{Style(), "style"}, {CustomElement("x-card"), "x-card"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if tt.node.Tag != tt.tag {
				t.Errorf("Tag = %q, want %q", tt.node.Tag, tt.tag)
			}
		})
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "link", "meta", "hr"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false", tag)
		}
	}
	for _, tag := range []string{"div", "script", "span"} {
		if IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = true", tag)
		}
	}
}
