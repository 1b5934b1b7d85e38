package server

import (
	"bytes"
	"encoding/json"
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/assets"
	"github.com/vango-dev/animate/pkg/htmlapply"
	"github.com/vango-dev/animate/pkg/render"
	"github.com/vango-dev/animate/pkg/settings"
)

// vocabularyResponse is the body of GET /api/vocabulary.
type vocabularyResponse struct {
	Animations []animate.Option  `json:"animations"`
	Placements []animate.Option  `json:"placements"`
	Easings    []animate.Option  `json:"easings"`
	Disable    []settings.Option `json:"disable"`
}

// settingsResponse is the body of GET /api/settings.
type settingsResponse struct {
	Values  settings.Values `json:"values"`
	Diff    map[string]any  `json:"diff"`
	Ignored []string        `json:"ignored"`
}

func (s *Server) handleVocabulary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, vocabularyResponse{
		Animations: animate.Animations(),
		Placements: animate.Placements(),
		Easings:    animate.Easings(),
		Disable:    settings.DisableOptions(),
	})
}

func (s *Server) handleAttributes(w http.ResponseWriter, r *http.Request) {
	d, err := animate.New(s.Settings(), queryOptions(r))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}
	s.metrics.RecordAnimated(d.ResolvedAnimation(), 1)
	writeJSON(w, http.StatusOK, d.Attributes())
}

func (s *Server) handlePayload(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, animate.Payload(s.Settings()))
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	store := s.Settings()
	ignored := store.Ignored()
	if ignored == nil {
		ignored = []string{}
	}
	writeJSON(w, http.StatusOK, settingsResponse{
		Values:  store.Values(),
		Diff:    store.DiffFromDefault(),
		Ignored: ignored,
	})
}

// handleApply animates the elements of the posted HTML document matching
// ?selector=. Batch options come from ?animation=, ?delayByDelta= and
// ?delayStep= (default DefaultDelayStep); the remaining descriptor options
// are read like /api/attributes.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	selector := q.Get("selector")
	if selector == "" {
		s.writeError(w, r, http.StatusBadRequest,
			errors.New("E151").WithField("selector", "").WithDetail("The selector query parameter is required."))
		return
	}

	batch := animate.BatchOptions{Animation: q.Get("animation")}
	var err error
	if batch.DelayByDelta, err = queryInt(q.Get("delayByDelta")); err != nil {
		s.writeError(w, r, http.StatusBadRequest, errors.New("E004").WithField("delayByDelta", q.Get("delayByDelta")))
		return
	}
	batch.DelayStep = animate.DefaultDelayStep
	if q.Has("delayStep") {
		if batch.DelayStep, err = queryInt(q.Get("delayStep")); err != nil {
			s.writeError(w, r, http.StatusBadRequest, errors.New("E004").WithField("delayStep", q.Get("delayStep")))
			return
		}
	}
	batch.Overrides = queryOptions(r)
	delete(batch.Overrides, settings.KeyAnimation)

	body := http.MaxBytesReader(w, r.Body, s.config.MaxApplyBytes)
	var out bytes.Buffer
	res, err := htmlapply.Transform(&out, body, s.Settings(), render.DefaultLibraries(), htmlapply.Rule{
		Selector: selector,
		Batch:    batch,
	})
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	}

	label := batch.Animation
	if label == "" {
		label = s.Settings().String(settings.KeyAnimation)
	}
	s.metrics.RecordAnimated(label, res.Total())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Animated-Elements", strconv.Itoa(res.Total()))
	out.WriteTo(w)
}

func (s *Server) handleClientScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write([]byte(render.ClientScript))
}

// handleAsset serves fingerprinted files. Their names change with their
// content, so they may be cached indefinitely.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	e, ok := s.assets.Lookup(chi.URLParam(r, "name"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	if ct := mime.TypeByExtension(path.Ext(e.Name)); ct != "" {
		w.Header().Set("Content-Type", ct)
	}
	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	w.Write(e.Content)
}

// Asset returns the fingerprinted path pages link for the named asset.
// Server implements assets.Resolver.
func (s *Server) Asset(source string) string {
	return assets.NewResolver(s.assets, AssetPrefix).Asset(source)
}

// queryOptions collects the descriptor options present in the query.
func queryOptions(r *http.Request) map[string]any {
	q := r.URL.Query()
	options := make(map[string]any)
	for _, key := range animate.OptionKeys() {
		if q.Has(key) {
			options[key] = q.Get(key)
		}
	}
	return options
}

func queryInt(v string) (int, error) {
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

// writeError writes err as coded error JSON and counts validation failures.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	ae := errors.FromError(err, "E150")
	if ae.Category == errors.CategoryValidation {
		s.metrics.RecordValidationError(ae.Code)
	}
	s.logger.Debug("request rejected", "path", r.URL.Path, "code", ae.Code, "error", err)
	writeJSON(w, status, ae.JSON())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
