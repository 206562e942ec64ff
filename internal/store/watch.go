package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Change is emitted by Watch whenever the watched key is written or removed.
// Value is the raw stored bytes after the change; a removal delivers nil.
type Change struct {
	Key   string
	Value []byte
}

// Watch streams changes to key until ctx is cancelled. Both this instance's
// own writes and writes by other processes sharing the state directory are
// delivered. Callers should drain the returned channel; events are dropped
// rather than blocking the watcher when the consumer lags. The channel is
// closed once ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context, key string) (<-chan Change, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	changes := make(chan Change, 16)

	go func() {
		defer close(changes)
		defer watcher.Close()

		send := func(c Change) {
			select {
			case changes <- c:
			default:
				// Drop when the consumer is not ready; the next read of the
				// key picks up the final state anyway.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Re-read and resend so consumers converge even when the
				// event stream hiccups.
				value, _ := s.Read(key)
				send(Change{Key: key, Value: value})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != key {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					value, _ := s.Read(key)
					send(Change{Key: key, Value: value})
				}
				if evt.Op&fsnotify.Remove != 0 {
					send(Change{Key: key, Value: nil})
				}
			}
		}
	}()

	return changes, nil
}
