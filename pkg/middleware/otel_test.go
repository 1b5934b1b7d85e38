package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type recordingSpan struct {
	noop.Span
	name   string
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordingSpan) SetName(name string) { s.name = name }
func (s *recordingSpan) End(...trace.SpanEndOption) { s.ended = true }
func (s *recordingSpan) IsRecording() bool { return true }
func (s *recordingSpan) SetStatus(c codes.Code, _ string) { s.status = c }
func (s *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	s.errs = append(s.errs, err)
}
func (s *recordingSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

type recordingTracer struct {
	noop.Tracer
	spans *[]*recordingSpan
}

func (t recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	s := &recordingSpan{name: name, attrs: map[attribute.Key]attribute.Value{}}
	cfg := trace.NewSpanStartConfig(opts...)
	s.SetAttributes(cfg.Attributes()...)
	*t.spans = append(*t.spans, s)
	return trace.ContextWithSpan(ctx, s), s
}

type recordingProvider struct {
	noop.TracerProvider
	spans []*recordingSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return recordingTracer{spans: &p.spans}
}

func TestTracing(t *testing.T) {
	tp := &recordingProvider{}
	var inHandler trace.Span

	mw := Tracing(
		WithTracerProvider(tp),
		WithSpanRoute(func(*http.Request) string { return "/api/{name}" }),
		WithAttributeExtractor(func(*http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{attribute.String("test.attr", "ok")}
		}),
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inHandler = trace.SpanFromContext(r.Context())
		w.WriteHeader(http.StatusAccepted)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("POST", "/api/x", nil))

	if len(tp.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tp.spans))
	}
	span := tp.spans[0]
	if inHandler != trace.Span(span) {
		t.Error("handler should see the request span")
	}
	if span.name != "POST /api/{name}" {
		t.Errorf("span name = %q", span.name)
	}
	if !span.ended || span.status != codes.Ok {
		t.Errorf("ended = %v, status = %v", span.ended, span.status)
	}
	if got := span.attrs["http.status_code"].AsInt64(); got != 202 {
		t.Errorf("http.status_code = %d", got)
	}
	if got := span.attrs["test.attr"].AsString(); got != "ok" {
		t.Errorf("test.attr = %q", got)
	}
	if got := span.attrs["http.target"].AsString(); got != "/api/x" {
		t.Errorf("http.target = %q", got)
	}
}

func TestTracingServerErrorAndFilter(t *testing.T) {
	tp := &recordingProvider{}
	mw := Tracing(
		WithTracerProvider(tp),
		WithTracerName("test"),
		WithRequestFilter(func(r *http.Request) bool { return r.URL.Path != "/metrics" }),
	)
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			RecordError(r, stderrors.New("exploded"))
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/metrics", nil))
	if len(tp.spans) != 0 {
		t.Fatalf("filtered request should not be traced")
	}

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/boom", nil))
	if len(tp.spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(tp.spans))
	}
	span := tp.spans[0]
	if span.status != codes.Error || len(span.errs) != 1 {
		t.Errorf("status = %v, errs = %v", span.status, span.errs)
	}
}

func TestDefaultOTelConfig(t *testing.T) {
	c := defaultOTelConfig()
	if c.TracerName != "animate" || c.Filter != nil || c.Route == nil {
		t.Errorf("defaultOTelConfig() = %+v", c)
	}
}
