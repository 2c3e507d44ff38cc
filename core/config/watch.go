// File: watch.go
// Title: Configuration File Watching
// Description: Reloads the configuration when its backing file changes,
//              using fsnotify with a short debounce.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation on fsnotify

package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	hxerror "github.com/msto63/helperx/core/error"
	hxlog "github.com/msto63/helperx/core/log"
)

// WatchDebounce is how long Watch waits after the last file event before
// reloading
var WatchDebounce = 100 * time.Millisecond

// ChangeHandler is called after a successful reload
type ChangeHandler func(c *Config)

// Watch starts monitoring the backing file and reloads it after writes.
// The watcher is registered when Watch returns; events are processed in a
// goroutine until ctx is cancelled. Failed reloads are logged and the
// previous data is kept.
func (c *Config) Watch(ctx context.Context, onChange ChangeHandler) error {
	if c.filePath == "" {
		return hxerror.New("file path required for watching").
			WithCode(hxerror.CodeMissingConfig).
			WithOperation("config.Watch")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return hxerror.Wrap(err, "failed to create file watcher").
			WithCode(hxerror.CodeWatchFailed).
			WithOperation("config.Watch")
	}

	// Watch the directory so editors that replace the file are noticed
	target := filepath.Clean(c.filePath)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return hxerror.Wrap(err, "failed to watch config directory").
			WithCode(hxerror.CodeWatchFailed).
			WithOperation("config.Watch").
			WithDetail("filePath", c.filePath)
	}

	go c.processEvents(ctx, watcher, target, onChange)
	return nil
}

func (c *Config) processEvents(ctx context.Context, watcher *fsnotify.Watcher, target string, onChange ChangeHandler) {
	defer watcher.Close()

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				debounce.Reset(WatchDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			c.log().WarnWithErr("config watcher error", err, hxlog.Field("filePath", c.filePath))

		case <-debounce.C:
			if err := c.Reload(); err != nil {
				c.log().WarnWithErr("config reload failed", err, hxlog.Field("filePath", c.filePath))
				continue
			}
			c.log().Debug("config reloaded", hxlog.Field("filePath", c.filePath))
			if onChange != nil {
				onChange(c)
			}
		}
	}
}
