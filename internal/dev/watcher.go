package dev

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/vango-dev/animate/pkg/settings"
)

// Change describes a new version of a settings source.
type Change struct {
	Source   string
	Version  string
	Previous string
}

// WatcherConfig configures the Watcher.
type WatcherConfig struct {
	// Source is polled for its version.
	Source settings.Source

	// Interval is the polling period. Default: 1s.
	Interval time.Duration
}

// Watcher polls a settings source and reports version changes.
type Watcher struct {
	config   WatcherConfig
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	version  string
	failing  bool
	logger   *slog.Logger
}

// NewWatcher creates a new settings watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval <= 0 {
		config.Interval = time.Second
	}
	return &Watcher{
		config: config,
		logger: slog.Default().With("component", "watcher"),
	}
}

// OnChange sets the callback for version changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// SetLogger sets the watcher logger.
func (w *Watcher) SetLogger(logger *slog.Logger) {
	if logger != nil {
		w.logger = logger
	}
}

// Start polls until ctx is done or Stop is called. The first poll records
// the current version without reporting it.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.mu.Unlock()

	w.version, _ = w.config.Source.Version(ctx)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.poll(ctx)
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// poll reads the version once. Version errors are logged once per outage;
// the source coming back counts as a change.
func (w *Watcher) poll(ctx context.Context) {
	version, err := w.config.Source.Version(ctx)
	if err != nil {
		if !w.failing {
			w.logger.Warn("settings source unavailable", "source", w.config.Source.Name(), "error", err)
			w.failing = true
		}
		w.version = ""
		return
	}
	w.failing = false
	if version == w.version {
		return
	}

	change := Change{
		Source:   w.config.Source.Name(),
		Version:  version,
		Previous: w.version,
	}
	w.version = version

	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()
	if callback != nil {
		callback(change)
	}
}
