// Package watch follows a single file, typically the host's installed.json,
// and invokes a callback once writes to it settle.
//
// The containing directory is watched rather than the file itself, so the
// watch survives the file being replaced by a rename. Events within the
// debounce window are coalesced into one callback.
package watch

import (
	"context"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/vendorlink/pkg/errors"
)

// DefaultDebounce applies when Config.Debounce is not positive
const DefaultDebounce = 500 * time.Millisecond

// Config holds the parameters for a Watcher
type Config struct {
	// File is the path whose changes trigger OnChange. Its directory must exist.
	File string

	// Debounce is the quiet period after the last event before OnChange fires
	Debounce time.Duration

	// OnChange is called once per settled batch of changes. Errors are
	// logged and do not stop the watcher. A nil callback is a no-op.
	OnChange func(ctx context.Context) error

	Logger zerolog.Logger
}

// Watcher fires a debounced callback when Config.File changes. Run must be
// called exactly once.
type Watcher struct {
	cfg      Config
	fsw      *fsnotify.Watcher
	file     string
	debounce time.Duration
	logger   zerolog.Logger
	started  atomic.Bool
}

// New resolves the watched file and registers its directory with fsnotify
func New(cfg Config) (*Watcher, error) {
	if cfg.File == "" {
		return nil, errors.New(errors.ErrInvalidInput, "watch: no file given")
	}
	file, err := filepath.Abs(cfg.File)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "watch: resolve %s", cfg.File)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "watch: create fsnotify watcher")
	}
	dir := filepath.Dir(file)
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "watch: add directory %s", dir).
			WithDetail("dir", dir)
	}

	return &Watcher{
		cfg:      cfg,
		fsw:      fsw,
		file:     file,
		debounce: debounce,
		logger:   cfg.Logger.With().Str("file", file).Logger(),
	}, nil
}

// Run blocks until ctx is cancelled. It returns nil on cancellation and an
// error when fsnotify fails.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return errors.New(errors.ErrInternal, "watch: Run called more than once")
	}

	var (
		mu      sync.Mutex
		pending bool
		timer   *time.Timer
		running atomic.Bool
	)

	// fire may run after ctx is cancelled because it is scheduled by
	// time.AfterFunc; it also never overlaps itself.
	fire := func() {
		if ctx.Err() != nil {
			return
		}
		if !running.CompareAndSwap(false, true) {
			w.logger.Debug().Msg("Previous change still being handled, retrying")
			mu.Lock()
			if timer != nil {
				timer.Reset(w.debounce)
			}
			mu.Unlock()
			return
		}
		defer running.Store(false)

		mu.Lock()
		if !pending {
			mu.Unlock()
			return
		}
		pending = false
		mu.Unlock()

		w.logger.Debug().Msg("Change settled")
		if w.cfg.OnChange != nil {
			if err := w.cfg.OnChange(ctx); err != nil {
				w.logger.Error().Err(err).Msg("Change handler failed")
			}
		}
	}

	defer func() {
		mu.Lock()
		if timer != nil {
			timer.Stop()
		}
		mu.Unlock()
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn().Err(err).Msg("Failed to close watcher")
		}
	}()

	w.logger.Info().Dur("debounce", w.debounce).Msg("Watching for changes")
	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New(errors.ErrInternal, "watch: fsnotify event channel closed unexpectedly")
			}
			if !w.relevant(evt) {
				continue
			}
			w.logger.Trace().Str("op", evt.Op.String()).Msg("File event")

			mu.Lock()
			pending = true
			if timer == nil {
				timer = time.AfterFunc(w.debounce, fire)
			} else {
				timer.Reset(w.debounce)
			}
			mu.Unlock()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New(errors.ErrInternal, "watch: fsnotify error channel closed unexpectedly")
			}
			w.logger.Warn().Err(err).Msg("fsnotify error")
		}
	}
}

// relevant reports whether evt changed the watched file's content
func (w *Watcher) relevant(evt fsnotify.Event) bool {
	if filepath.Clean(evt.Name) != w.file {
		return false
	}
	return evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create)
}
