package server

import (
	"bytes"
	"net/http"

	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/render"
	. "github.com/vango-dev/animate/pkg/vdom"
)

const demoStyles = `body{font-family:system-ui,sans-serif;margin:0 auto;max-width:960px;padding:2rem}
.hero{min-height:60vh;display:flex;align-items:center}
.cards{display:grid;grid-template-columns:repeat(3,1fr);gap:1rem;margin:40vh 0}
.card{border:1px solid #ddd;border-radius:8px;padding:1.5rem}
.stagger li{padding:.5rem 0}
.anchored{margin:20vh 0;padding:2rem;background:#f4f4f4}`

// demoCards is the number of vocabulary cards on the demo page.
const demoCards = 12

// DemoPage builds the demo body. Each card shows one animation unless
// animation is set, in which case every card uses it.
func DemoPage(gs animate.GlobalSettings, animation string) (*VNode, error) {
	cards := Div(Class("cards"))
	opts := animate.Animations()
	if len(opts) > demoCards {
		opts = opts[:demoCards]
	}
	for _, opt := range opts {
		name := opt.Value
		if animation != "" {
			name = animation
		}
		d, err := animate.New(gs, map[string]any{"animation": name})
		if err != nil {
			return nil, err
		}
		cards.Children = append(cards.Children, animate.ApplyTo(
			Div(Class("card"), H3(opt.Label), Code(opt.Value)), d))
	}

	list := Ul(Class("stagger"), Repeat(6, func(i int) *VNode {
		return Li(Textf("Item %d", i+1))
	}))
	if err := animate.ApplyToChildren(list, gs, animation, 3, animate.DefaultDelayStep, nil); err != nil {
		return nil, err
	}

	wrapped, err := animate.New(gs, map[string]any{"animation": "zoom-in", "duration": 800})
	if err != nil {
		return nil, err
	}
	anchored, err := animate.New(gs, map[string]any{
		"animation":       "fade-left",
		"anchor":          "#hero",
		"anchorPlacement": "top-center",
		"once":            true,
	})
	if err != nil {
		return nil, err
	}

	return Main(
		Section(ID("hero"), Class("hero"), H1("Scroll down")),
		cards,
		list,
		animate.ApplyTo(Text("Bare text is wrapped in a div before it is animated."), wrapped),
		animate.ApplyTo(Div(Class("anchored"), P("Anchored to the hero section.")), anchored),
	), nil
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	animation := r.URL.Query().Get("animation")
	body, err := DemoPage(s.Settings(), animation)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	page := render.PageData{
		Body:      body,
		Title:     s.config.Title,
		Styles:    []string{demoStyles},
		Libraries: render.LibrariesWith(s),
	}
	if s.reload != nil {
		page.ReloadURL = s.config.ReloadPath
	}

	var buf bytes.Buffer
	if err := s.renderer.RenderPage(&buf, page); err != nil {
		s.logger.Error("render failed", "error", err)
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
