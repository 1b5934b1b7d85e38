package vdom

import "testing"

func TestVKindString(t *testing.T) {
	tests := []struct {
		kind VKind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{VKind(255), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("VKind.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVNodeIsBare(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want bool
	}{
		{"nil node", nil, true},
		{"text node", Text("hello"), true},
		{"raw node", Raw("<b>x</b>"), true},
		{"fragment", Fragment(Div()), true},
		{"component", &VNode{Kind: KindComponent, Comp: Func(func() *VNode { return Div() })}, true},
		{"untyped element", Untyped(Text("x")), true},
		{"div", Div(), false},
		{"section", Section(Class("hero")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.IsBare(); got != tt.want {
				t.Errorf("IsBare() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderableChildren(t *testing.T) {
	node := Div(P(), Span())
	node.Children = append(node.Children, nil, Li())

	got := node.RenderableChildren()
	want := []int{0, 1, 3}
	if len(got) != len(want) {
		t.Fatalf("RenderableChildren() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RenderableChildren()[%d] = %d, want %d", i, got[i], want[i])
		}
	}

	var empty *VNode
	if got := empty.RenderableChildren(); got != nil {
		t.Errorf("nil node RenderableChildren() = %v, want nil", got)
	}
	if got := Div().RenderableChildren(); got != nil {
		t.Errorf("childless RenderableChildren() = %v, want nil", got)
	}
}

func TestVNodeAttach(t *testing.T) {
	node := Div()
	node.Attach(Attachments{})
	if node.Attached != nil {
		t.Fatal("attaching nothing should not allocate")
	}

	node.Attach(Attachments{Library: []string{"lib/a"}})
	node.Attach(Attachments{Library: []string{"lib/a", "lib/b"}})
	if got := node.Attached.Library; len(got) != 2 || got[0] != "lib/a" || got[1] != "lib/b" {
		t.Errorf("Library = %v, want [lib/a lib/b]", got)
	}
}

func TestFuncComponent(t *testing.T) {
	comp := Func(func() *VNode { return Div(Class("card")) })
	out := comp.Render()
	if out.Tag != "div" || !out.Props.HasClass("card") {
		t.Errorf("Render() = %+v, want div.card", out)
	}
}
