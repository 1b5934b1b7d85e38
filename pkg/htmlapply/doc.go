// Package htmlapply animates elements of an existing HTML document.
//
// Rules pick elements with CSS selectors and describe the animation to
// apply; matched elements receive the same classes and data-aos attributes
// a vdom tree would. Inject then adds the settings element and library
// scripts so the document boots the client library on its own.
//
//	doc, _ := html.Parse(r)
//	res, err := htmlapply.Apply(doc, store,
//	    htmlapply.Rule{Selector: ".card", Batch: animate.BatchOptions{Animation: "fade-up", DelayByDelta: 3}},
//	)
//	htmlapply.Inject(doc, res.Attachments, render.DefaultLibraries())
//	html.Render(w, doc)
package htmlapply
