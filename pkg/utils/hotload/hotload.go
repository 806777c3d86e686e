// Package hotload watches a single file and runs a hook after its content
// settles. Used to reload configuration without restarting the server.
package hotload

import (
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Func defines the type for the hot-reloading hook function.
type Func func()

// DefaultDebounce is used when a non-positive debounce is given.
const DefaultDebounce = 300 * time.Millisecond

// Watch blocks until ctx is done, calling hook once per debounced change of
// path's content. The parent directory is watched so editors that save by
// rename are still seen. Writes that leave the content unchanged are skipped.
func Watch(ctx context.Context, path string, debounce time.Duration, logger *zerolog.Logger, hook Func) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	l := zerolog.Nop()
	if logger != nil {
		l = logger.With().Str("component", "hotload").Logger()
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		if cerr := watcher.Close(); cerr != nil {
			l.Error().Err(cerr).Msg("close watcher")
		}
	}()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}
	l.Info().Str("file", target).Dur("debounce", debounce).Msg("watching")

	lastHash := fileHash(target)
	fire := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !isContentEvent(event) {
				continue
			}
			l.Trace().Str("op", event.Op.String()).Msg("event")
			if timer == nil {
				timer = time.AfterFunc(debounce, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.Error().Err(err).Msg("watcher error")

		case <-fire:
			hash := fileHash(target)
			if hash == "" || hash == lastHash {
				l.Debug().Str("file", target).Msg("no content change")
				continue
			}
			lastHash = hash
			l.Info().Str("file", target).Msg("change detected")
			hook()
		}
	}
}

func isContentEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}

// fileHash returns the md5 of the file content, or "" if it cannot be read.
func fileHash(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	h := md5.New()
	if _, err := io.Copy(h, f); err != nil {
		return ""
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
