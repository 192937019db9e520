// Package watch re-runs a callback when the commit or configuration a
// generated file depends on changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/insilica/srvcdocs/internal/logfields"
)

// DefaultDebounce collapses the burst of events git produces for a single
// commit or checkout.
const DefaultDebounce = 500 * time.Millisecond

// Watcher monitors a set of files and directory trees and calls onChange
// once per burst of changes.
type Watcher struct {
	files    map[string]struct{}
	roots    map[string]struct{}
	dirs     []string
	debounce time.Duration
	onChange func(ctx context.Context) error
}

// New creates a Watcher. Each file's parent directory is watched, which also
// catches the lock-file renames git uses to update HEAD and refs. Entries
// ending in a path separator are directory trees: every file below them is
// of interest, including files in subdirectories created later.
func New(paths []string, onChange func(ctx context.Context) error) (*Watcher, error) {
	w := &Watcher{
		files:    make(map[string]struct{}),
		roots:    make(map[string]struct{}),
		debounce: DefaultDebounce,
		onChange: onChange,
	}
	seen := make(map[string]bool)
	for _, p := range paths {
		isDir := strings.HasSuffix(p, string(filepath.Separator)) || strings.HasSuffix(p, "/")
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		if isDir {
			w.roots[abs] = struct{}{}
			continue
		}
		w.files[abs] = struct{}{}
		if dir := filepath.Dir(abs); !seen[dir] {
			seen[dir] = true
			w.dirs = append(w.dirs, dir)
		}
	}
	return w, nil
}

// WithDebounce overrides DefaultDebounce.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Run blocks until ctx is done. Errors from onChange are logged, not returned.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() {
		if cerr := fw.Close(); cerr != nil {
			slog.Error("Error closing file watcher", logfields.Error(cerr))
		}
	}()

	for _, dir := range w.dirs {
		if err := fw.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		slog.Debug("Watching directory", logfields.Dir(dir))
	}
	for root := range w.roots {
		if err := addTree(fw, root); err != nil {
			return err
		}
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			if event.Op&fsnotify.Create != 0 && w.underRoot(event.Name) {
				// A new ref directory may already hold a ref written before
				// the directory was added, so it always counts as a change.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addTree(fw, event.Name); err != nil {
						slog.Warn("Failed to watch new directory", logfields.Dir(event.Name), logfields.Error(err))
					}
				}
			}
			slog.Debug("Change detected", logfields.Path(event.Name), "op", event.Op.String())
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			if err := w.onChange(ctx); err != nil {
				slog.Error("Regeneration failed", logfields.Error(err))
			}
		}
	}
}

// addTree watches root and every directory below it.
func addTree(fw *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		if !d.IsDir() {
			return nil
		}
		if err := fw.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		slog.Debug("Watching directory", logfields.Dir(path))
		return nil
	})
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	if strings.HasSuffix(event.Name, ".lock") {
		return false
	}
	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	return w.underRoot(name)
}

// underRoot reports whether path lies strictly inside one of the watched trees.
func (w *Watcher) underRoot(path string) bool {
	path = filepath.Clean(path)
	for root := range w.roots {
		if strings.HasPrefix(path, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
