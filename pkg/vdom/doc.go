// Package vdom provides the render tree that animation attributes are
// attached to.
//
// # Core Types
//
// VNode is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Props holds attributes. Attachments
// lists page level resources (asset libraries and client settings) a node
// needs; Collect gathers them from a whole tree.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Class attributes accumulate: Div(Class("a"), Class("b")) has class "a b".
//
// # Debugging
//
// Dump renders a tree view of a node, including classes and data-*
// attributes, which is handy when checking what an animation pass did.
package vdom
