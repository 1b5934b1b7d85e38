package htmlapply

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/vdom"
)

// Rule animates every element matching Selector. Matches are processed in
// document order and Batch's stagger runs across them.
type Rule struct {
	Selector string
	Batch    animate.BatchOptions
}

// Result reports what Apply did.
type Result struct {
	// Matched counts animated elements per selector.
	Matched map[string]int

	// Attachments are the merged attachments of every applied descriptor.
	Attachments vdom.Attachments
}

// Total returns the number of animated elements.
func (r Result) Total() int {
	n := 0
	for _, c := range r.Matched {
		n += c
	}
	return n
}

// Apply runs rules against doc in order. An element matched by several
// rules ends up with the attributes of the last one.
func Apply(doc *html.Node, gs animate.GlobalSettings, rules ...Rule) (Result, error) {
	res := Result{Matched: make(map[string]int, len(rules))}

	for _, rule := range rules {
		sel, err := cascadia.Compile(rule.Selector)
		if err != nil {
			return res, errors.New("E151").WithField("selector", rule.Selector).Wrap(err)
		}

		stagger := animate.NewStagger(rule.Batch.DelayByDelta, rule.Batch.DelayStep)
		for _, n := range sel.MatchAll(doc) {
			d, err := rule.Batch.Descriptor(gs, stagger)
			if err != nil {
				return res, fmt.Errorf("selector %q: %w", rule.Selector, err)
			}
			applyToNode(n, d, &res.Attachments)
			res.Matched[rule.Selector]++
		}
	}
	return res, nil
}

// applyToNode merges d into n's attributes through animate.ApplyToProps:
// classes are unioned onto the existing class attribute, data attributes
// overwrite, and d's attachments go to into.
func applyToNode(n *html.Node, d *animate.Descriptor, into *vdom.Attachments) {
	props := make(vdom.Props, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace == "" {
			props[a.Key] = a.Val
		}
	}
	props = animate.ApplyToProps(props, d, into)

	if classes := props.Classes(); len(classes) > 0 {
		setAttr(n, "class", strings.Join(classes, " "))
	}
	for _, k := range d.Attributes().Keys() {
		if v, ok := props[k].(string); ok {
			setAttr(n, k, v)
		}
	}
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Transform parses src, applies rules, injects the bootstrap elements and
// writes the resulting document to w.
func Transform(w io.Writer, src io.Reader, gs animate.GlobalSettings, libs map[string]LibraryAssets, rules ...Rule) (Result, error) {
	doc, err := html.Parse(src)
	if err != nil {
		return Result{}, errors.New("E150").WithDetail("the input is not parseable HTML").Wrap(err)
	}
	res, err := Apply(doc, gs, rules...)
	if err != nil {
		return res, err
	}
	if res.Total() > 0 {
		if err := Inject(doc, res.Attachments, libs); err != nil {
			return res, err
		}
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return res, errors.New("E150").Wrap(err)
	}
	_, err = buf.WriteTo(w)
	return res, err
}
