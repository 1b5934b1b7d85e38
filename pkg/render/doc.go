// Package render writes vdom trees as HTML.
//
// Renderer handles single trees; RenderPage writes a whole document and
// resolves what the tree's nodes attached along the way: library
// references become stylesheet and script tags, and the client settings
// are serialised once into a JSON script element that ClientScript reads
// before it calls AOS.init.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	err := r.RenderPage(w, render.PageData{
//	    Title:     "Demo",
//	    Body:      body,
//	    Libraries: render.DefaultLibraries(),
//	})
//
// Text and attribute values are escaped. KindRaw nodes are written as-is
// and must only carry trusted markup.
package render
