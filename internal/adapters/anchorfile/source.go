package anchorfile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"roommind/internal/domain"
	"roommind/internal/ports"
)

const defaultDebounce = 200 * time.Millisecond

var (
	_ ports.AnchorSource = (*FileSource)(nil)
	_ ports.AnchorSource = (*StaticSource)(nil)
)

// FileSource serves anchors from a YAML file
type FileSource struct {
	path     string
	debounce time.Duration
	logger   *zap.Logger
}

// Option configures a FileSource
type Option func(*FileSource)

// WithLogger sets the logger for reload events
func WithLogger(l *zap.Logger) Option {
	return func(s *FileSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDebounce sets how long to wait for writes to settle before reloading
func WithDebounce(d time.Duration) Option {
	return func(s *FileSource) {
		s.debounce = d
	}
}

// NewFileSource creates a FileSource for path
func NewFileSource(path string, opts ...Option) (*FileSource, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchors path: %w", err)
	}

	s := &FileSource{
		path:     abs,
		debounce: defaultDebounce,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the absolute path of the anchors file
func (s *FileSource) Path() string {
	return s.path
}

// Anchors loads the file
func (s *FileSource) Anchors(ctx context.Context) ([]domain.SpatialAnchor, error) {
	return Load(s.path)
}

// Watch emits the new anchor set after each settled change to the file. An
// invalid file is logged and skipped, so consumers keep the previous set.
// The channel is closed when ctx is cancelled.
func (s *FileSource) Watch(ctx context.Context) (<-chan []domain.SpatialAnchor, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory so atomic saves (rename over) are seen.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch anchors directory: %w", err)
	}

	out := make(chan []domain.SpatialAnchor)
	go s.watchLoop(ctx, watcher, out)

	s.logger.Info("anchors watcher started", zap.String("path", s.path))
	return out, nil
}

func (s *FileSource) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, out chan<- []domain.SpatialAnchor) {
	defer close(out)
	defer watcher.Close()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	base := filepath.Base(s.path)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("anchors watcher stopped")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			anchors, err := Load(s.path)
			if err != nil {
				s.logger.Warn("anchors reload failed, keeping previous set", zap.Error(err))
				continue
			}
			s.logger.Info("anchors reloaded", zap.Int("count", len(anchors)))
			select {
			case out <- anchors:
			case <-ctx.Done():
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("anchors watcher error", zap.Error(err))
		}
	}
}

// StaticSource serves a fixed set of anchors
type StaticSource struct {
	anchors []domain.SpatialAnchor
}

// NewStaticSource creates a StaticSource
func NewStaticSource(anchors []domain.SpatialAnchor) *StaticSource {
	return &StaticSource{anchors: anchors}
}

// Anchors returns the fixed set
func (s *StaticSource) Anchors(ctx context.Context) ([]domain.SpatialAnchor, error) {
	return s.anchors, nil
}

// Watch returns a nil channel; the set never changes
func (s *StaticSource) Watch(ctx context.Context) (<-chan []domain.SpatialAnchor, error) {
	return nil, nil
}
