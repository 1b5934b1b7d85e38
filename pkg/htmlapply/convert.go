package htmlapply

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/vango-dev/animate/pkg/vdom"
)

// ToVNode converts a parsed HTML subtree into a vdom tree. Comments and
// doctype nodes are dropped and whitespace-only text is skipped.
func ToVNode(n *html.Node) *vdom.VNode {
	switch n.Type {
	case html.DocumentNode:
		frag := vdom.Fragment()
		appendChildren(frag, n)
		return frag
	case html.ElementNode:
		el := &vdom.VNode{Kind: vdom.KindElement, Tag: n.Data, Props: make(vdom.Props, len(n.Attr))}
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			el.Props[key] = a.Val
		}
		appendChildren(el, n)
		return el
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return nil
		}
		return vdom.Text(n.Data)
	default:
		return nil
	}
}

func appendChildren(dst *vdom.VNode, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := ToVNode(c); child != nil {
			dst.Children = append(dst.Children, child)
		}
	}
}
