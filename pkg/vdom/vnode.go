package vdom

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement   VKind = iota // <div>, <section>, etc.
	KindText                   // Plain text node
	KindFragment               // Grouping without wrapper
	KindComponent              // Nested component
	KindRaw                    // Raw HTML markup
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// VNode is a node of a render tree.
type VNode struct {
	Kind     VKind        // Node type
	Tag      string       // Element tag name (e.g., "div")
	Props    Props        // Attributes
	Children []*VNode     // Child nodes
	Key      string       // Stable identity among siblings
	Text     string       // For KindText and KindRaw
	Comp     Component    // For KindComponent
	Attached *Attachments // Resources the node needs on the page
}

// IsBare reports whether the node has no element of its own to carry
// attributes: text, raw markup, fragments, components and untyped elements.
func (v *VNode) IsBare() bool {
	if v == nil {
		return true
	}
	switch v.Kind {
	case KindElement:
		return v.Tag == ""
	default:
		return true
	}
}

// RenderableChildren returns the indexes of the children that render
// output. Nil slots are skipped; order is preserved.
func (v *VNode) RenderableChildren() []int {
	if v == nil || len(v.Children) == 0 {
		return nil
	}
	idx := make([]int, 0, len(v.Children))
	for i, child := range v.Children {
		if child != nil {
			idx = append(idx, i)
		}
	}
	return idx
}

// Attach merges the given attachments into the node's own.
func (v *VNode) Attach(a Attachments) {
	if v == nil || a.IsEmpty() {
		return
	}
	if v.Attached == nil {
		v.Attached = &Attachments{}
	}
	v.Attached.Merge(a)
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Component is anything that can render to a VNode.
type Component interface {
	Render() *VNode
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *VNode
}

// Render implements Component.
func (f *FuncComponent) Render() *VNode {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *VNode) Component {
	return &FuncComponent{render: render}
}
