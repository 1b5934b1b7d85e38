package htmlapply

import (
	"encoding/json"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/render"
	"github.com/vango-dev/animate/pkg/vdom"
)

// LibraryAssets resolves a library reference to stylesheet and script URLs.
type LibraryAssets = render.Library

var (
	headSel     = cascadia.MustCompile("head")
	bodySel     = cascadia.MustCompile("body")
	settingsSel = cascadia.MustCompile("script#" + render.SettingsElementID)
)

// Inject adds library stylesheets to the head and the settings element plus
// library scripts to the end of the body. A settings element already in the
// document is replaced rather than duplicated.
func Inject(doc *html.Node, attached vdom.Attachments, libs map[string]LibraryAssets) error {
	head := headSel.MatchFirst(doc)
	body := bodySel.MatchFirst(doc)
	if head == nil || body == nil {
		return errors.New("E150").WithDetail("the document has no head or body element")
	}

	settings := attached.Settings
	if settings == nil {
		settings = map[string]any{}
	}
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.New("E150").WithDetail("client settings are not JSON encodable").Wrap(err)
	}

	for _, old := range settingsSel.MatchAll(doc) {
		old.Parent.RemoveChild(old)
	}
	script := element(atom.Script, "type", "application/json", "id", render.SettingsElementID)
	script.AppendChild(&html.Node{Type: html.TextNode, Data: string(data)})
	body.AppendChild(script)

	for _, name := range attached.Library {
		lib := libs[name]
		for _, href := range lib.StyleSheets {
			if !hasAttrValue(head, "link", "href", href) {
				head.AppendChild(element(atom.Link, "rel", "stylesheet", "href", href))
			}
		}
		for _, s := range lib.Scripts {
			if s.Src != "" && hasAttrValue(doc, "script", "src", s.Src) {
				continue
			}
			n := element(atom.Script)
			if s.Src != "" {
				n.Attr = append(n.Attr, html.Attribute{Key: "src", Val: s.Src})
			}
			if s.Inline != "" {
				n.AppendChild(&html.Node{Type: html.TextNode, Data: s.Inline})
			}
			body.AppendChild(n)
		}
	}
	return nil
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func hasAttrValue(root *html.Node, tag, key, val string) bool {
	for _, n := range cascadia.MustCompile(tag).MatchAll(root) {
		for _, a := range n.Attr {
			if a.Key == key && a.Val == val {
				return true
			}
		}
	}
	return false
}
