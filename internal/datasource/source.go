package datasource

import (
	"context"
	"log/slog"

	"github.com/wesen/forcegraph/internal/config"
	"github.com/wesen/forcegraph/internal/engine"
)

// Source loads a figure file and reloads it on change.
type Source struct {
	path string
	log  *slog.Logger
	w    *Watcher
}

// Open starts watching the figure at path.
func Open(path string, log *slog.Logger) (*Source, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	w, err := NewWatcher(path, log)
	if err != nil {
		return nil, err
	}
	return &Source{path: path, log: log, w: w}, nil
}

// Path returns the watched file.
func (s *Source) Path() string { return s.path }

// Load reads the figure once.
func (s *Source) Load() (engine.Figure, error) {
	return config.LoadFigure(s.path)
}

// Run delivers a freshly loaded figure to fn after every change until ctx
// is done. A file that fails to load is logged and skipped, so a
// half-written save never tears down the viewer.
func (s *Source) Run(ctx context.Context, fn func(engine.Figure)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.w.Changes():
			fig, err := s.Load()
			if err != nil {
				s.log.Warn("reload failed", "path", s.path, "err", err)
				continue
			}
			s.log.Info("reloaded", "path", s.path, "version", string(fig.DataVersion))
			fn(fig)
		}
	}
}

// Close stops watching.
func (s *Source) Close() error {
	return s.w.Close()
}
