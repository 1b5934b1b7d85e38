package animate

import (
	"github.com/vango-dev/animate/pkg/vdom"
)

// ApplyTo adds the descriptor's attributes and attachments to node and
// returns the node to use in its place. Nodes without an element of their
// own (text, raw markup, fragments, components and untyped elements) are
// wrapped in a div first, and the div carries the attributes.
func ApplyTo(node *vdom.VNode, d *Descriptor) *vdom.VNode {
	if node.IsBare() {
		node = wrap(node)
	}
	node.Props = Merge(node.Props, d.Attributes())
	node.Attach(d.Attachments())
	return node
}

func wrap(content *vdom.VNode) *vdom.VNode {
	div := &vdom.VNode{Kind: vdom.KindElement, Tag: "div"}
	if content != nil {
		div.Children = []*vdom.VNode{content}
	}
	return div
}

// ApplyToProps merges the descriptor's attributes into an existing
// attribute collection that has no node to carry attachments, and merges
// the descriptor's attachments into into. A nil into drops them, leaving
// the page without the library and settings payload.
func ApplyToProps(props vdom.Props, d *Descriptor, into *vdom.Attachments) vdom.Props {
	if into != nil {
		into.Merge(d.Attachments())
	}
	return Merge(props, d.Attributes())
}

// Merge adds set to props: classes are unioned, existing classes first, and
// set's attributes overwrite on collision. A nil props is allocated.
func Merge(props vdom.Props, set AttributeSet) vdom.Props {
	if props == nil {
		props = make(vdom.Props, set.Len()+1)
	}
	props.AddClass(set.classes...)
	for _, k := range set.keys {
		props[k] = set.values[k]
	}
	return props
}
