package dev

import (
	"context"
	"log/slog"
	"time"

	"github.com/vango-dev/animate/internal/errors"
	"github.com/vango-dev/animate/pkg/animate"
	"github.com/vango-dev/animate/pkg/middleware"
	"github.com/vango-dev/animate/pkg/settings"
)

// Reloader loads a settings source into a Holder and notifies a hub.
type Reloader struct {
	source  settings.Source
	holder  *settings.Holder
	hub     *ReloadHub
	metrics *middleware.Metrics
	logger  *slog.Logger
}

// NewReloader creates a Reloader. hub may be nil.
func NewReloader(source settings.Source, holder *settings.Holder, hub *ReloadHub) *Reloader {
	return &Reloader{
		source: source,
		holder: holder,
		hub:    hub,
		logger: slog.Default().With("component", "reloader"),
	}
}

// SetMetrics records reload outcomes on m.
func (r *Reloader) SetMetrics(m *middleware.Metrics) {
	r.metrics = m
}

// SetLogger sets the reloader logger.
func (r *Reloader) SetLogger(logger *slog.Logger) {
	if logger != nil {
		r.logger = logger
	}
}

// Reload loads the source once. On failure the current store stays in
// place and connected clients are sent the error.
func (r *Reloader) Reload(ctx context.Context) error {
	store, err := animate.LoadSettings(ctx, r.source)
	r.metrics.RecordReload(err)
	if err != nil {
		r.logger.Error("settings reload failed", "source", r.source.Name(), "error", err)
		if r.hub != nil {
			r.hub.NotifyError(errors.FromError(err, "E130").FormatCompact())
		}
		return err
	}

	r.holder.Swap(store)
	if ignored := store.Ignored(); len(ignored) > 0 {
		r.logger.Warn("ignoring unknown settings", "keys", ignored)
	}
	r.logger.Info("settings reloaded", "source", r.source.Name(), "diff", store.DiffFromDefault())

	if r.hub != nil {
		r.hub.NotifySettings(animate.Payload(store))
	}
	return nil
}

// Run watches the source and reloads on every change until ctx is done.
func (r *Reloader) Run(ctx context.Context, interval time.Duration) error {
	w := NewWatcher(WatcherConfig{Source: r.source, Interval: interval})
	w.SetLogger(r.logger)
	w.OnChange(func(c Change) {
		r.logger.Debug("settings changed", "source", c.Source, "version", c.Version)
		r.Reload(ctx)
	})
	err := w.Start(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
