package vdom

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Dump returns an indented tree view of the node for debugging.
func Dump(node *VNode) string {
	tree := treeprint.New()
	dumpChildren(tree.AddBranch(describe(node)), node)
	return tree.String()
}

func dumpChildren(branch treeprint.Tree, node *VNode) {
	if node == nil {
		return
	}
	for _, child := range node.Children {
		if child == nil {
			continue
		}
		if len(child.Children) == 0 {
			branch.AddNode(describe(child))
			continue
		}
		dumpChildren(branch.AddBranch(describe(child)), child)
	}
}

func describe(node *VNode) string {
	if node == nil {
		return "<nil>"
	}
	switch node.Kind {
	case KindText, KindRaw:
		text := node.Text
		if len(text) > 40 {
			text = text[:37] + "..."
		}
		return fmt.Sprintf("%s %q", node.Kind, text)
	case KindElement:
		if node.Tag == "" {
			return "(untyped)"
		}
		var b strings.Builder
		b.WriteString("<" + node.Tag)
		if classes := node.Props.Classes(); len(classes) > 0 {
			b.WriteString(" ." + strings.Join(classes, "."))
		}
		for _, k := range node.Props.DataKeys() {
			fmt.Fprintf(&b, " %s=%v", k, node.Props[k])
		}
		b.WriteString(">")
		return b.String()
	default:
		return node.Kind.String()
	}
}
