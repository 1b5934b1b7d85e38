package render

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/assets"
	"github.com/vango-dev/animate/pkg/vdom"
)

// SettingsElementID is the id of the JSON script element holding the
// client settings.
const SettingsElementID = "neo-animate-settings"

// PageData contains everything needed to render a complete document.
type PageData struct {
	// Body is the root node of the page content.
	Body *vdom.VNode

	// Title is the page title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Meta contains extra meta tags.
	Meta []MetaTag

	// StyleSheets are stylesheet URLs added before library assets.
	StyleSheets []string

	// Styles are inline CSS blocks.
	Styles []string

	// Scripts are extra script tags written at the end of the body.
	Scripts []ScriptTag

	// Libraries resolves attached library references to assets. Unknown
	// references are skipped.
	Libraries map[string]Library

	// ReloadURL, when set, is announced to the client script, which then
	// listens for settings updates on that websocket.
	ReloadURL string
}

// Library lists the assets behind a library reference.
type Library struct {
	StyleSheets []string
	Scripts     []ScriptTag
}

// MetaTag represents a meta element in the document head.
type MetaTag struct {
	Name     string
	Property string
	Content  string
}

// ScriptTag represents a script element.
type ScriptTag struct {
	Src    string
	Type   string
	Defer  bool
	Inline string
}

// ClientScriptName is the source name of the client script asset.
const ClientScriptName = "animate.js"

// DefaultLibraries maps the animation library reference to the AOS assets
// and the client script served at /animate.js.
func DefaultLibraries() map[string]Library {
	return LibrariesWith(assets.NewPassthroughResolver("/"))
}

// LibrariesWith is DefaultLibraries with the client script path taken
// from r.
func LibrariesWith(r assets.Resolver) map[string]Library {
	return map[string]Library{
		animate.Library: {
			StyleSheets: []string{"https://unpkg.com/aos@2.3.4/dist/aos.css"},
			Scripts: []ScriptTag{
				{Src: "https://unpkg.com/aos@2.3.4/dist/aos.js"},
				{Src: r.Asset(ClientScriptName)},
			},
		},
	}
}

// RenderPage writes a complete HTML document. Attachments are collected from
// the whole body first so each library is included once and the settings
// payload is written once. When w is an http.Flusher the head is flushed
// before the body is rendered.
func (r *Renderer) RenderPage(w io.Writer, page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}
	attached := vdom.Collect(page.Body)

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(lang)); err != nil {
		return err
	}
	if err := r.renderHead(w, page, attached); err != nil {
		return err
	}
	if f, ok := w.(http.Flusher); ok {
		f.Flush()
	}

	if _, err := io.WriteString(w, "<body>\n"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := writeSettings(w, attached.Settings, page.ReloadURL); err != nil {
		return err
	}

	for _, name := range attached.Library {
		for _, script := range page.Libraries[name].Scripts {
			if err := writeScript(w, script); err != nil {
				return err
			}
		}
	}
	for _, script := range page.Scripts {
		if err := writeScript(w, script); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

func (r *Renderer) renderHead(w io.Writer, page PageData, attached vdom.Attachments) error {
	if _, err := io.WriteString(w, "<head>\n"+
		`  <meta charset="utf-8">`+"\n"+
		`  <meta name="viewport" content="width=device-width, initial-scale=1">`+"\n"); err != nil {
		return err
	}

	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}

	for _, meta := range page.Meta {
		if err := writeMeta(w, meta); err != nil {
			return err
		}
	}

	sheets := append([]string(nil), page.StyleSheets...)
	for _, name := range attached.Library {
		sheets = append(sheets, page.Libraries[name].StyleSheets...)
	}
	for _, href := range sheets {
		if _, err := fmt.Fprintf(w, `  <link rel="stylesheet" href="%s">`+"\n", escapeAttr(href)); err != nil {
			return err
		}
	}

	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}

	_, err := io.WriteString(w, "</head>\n")
	return err
}

func writeMeta(w io.Writer, meta MetaTag) error {
	if _, err := io.WriteString(w, "  <meta"); err != nil {
		return err
	}
	if meta.Name != "" {
		if _, err := fmt.Fprintf(w, ` name="%s"`, escapeAttr(meta.Name)); err != nil {
			return err
		}
	}
	if meta.Property != "" {
		if _, err := fmt.Fprintf(w, ` property="%s"`, escapeAttr(meta.Property)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, ` content="%s">`+"\n", escapeAttr(meta.Content)); err != nil {
		return err
	}
	return nil
}

func writeScript(w io.Writer, script ScriptTag) error {
	if _, err := io.WriteString(w, "<script"); err != nil {
		return err
	}
	if script.Src != "" {
		if _, err := fmt.Fprintf(w, ` src="%s"`, escapeAttr(script.Src)); err != nil {
			return err
		}
	}
	if script.Type != "" {
		if _, err := fmt.Fprintf(w, ` type="%s"`, escapeAttr(script.Type)); err != nil {
			return err
		}
	}
	if script.Defer {
		if _, err := io.WriteString(w, " defer"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, ">%s</script>\n", script.Inline)
	return err
}

// writeSettings writes the client settings as a JSON script element. The
// element is written even when there are no settings so the client script
// always finds it.
func writeSettings(w io.Writer, settings map[string]any, reloadURL string) error {
	if settings == nil {
		settings = map[string]any{}
	}
	// json.Marshal escapes <, > and & so the payload cannot close the
	// script element.
	data, err := json.Marshal(settings)
	if err != nil {
		return errors.New("E150").WithDetail("client settings are not JSON encodable").Wrap(err)
	}

	reload := ""
	if reloadURL != "" {
		reload = fmt.Sprintf(` data-reload="%s"`, escapeAttr(reloadURL))
	}
	_, err = fmt.Fprintf(w, `<script type="application/json" id="%s"%s>%s</script>`+"\n", SettingsElementID, reload, data)
	return err
}

// SettingsJSON returns the JSON written into the settings element for the
// given tree.
func SettingsJSON(body *vdom.VNode) ([]byte, error) {
	settings := vdom.Collect(body).Settings
	if settings == nil {
		settings = map[string]any{}
	}
	return json.Marshal(settings)
}
