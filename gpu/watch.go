// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"cogentcore.org/core/base/errors"
	"github.com/fsnotify/fsnotify"
)

// SourceWatcher watches the files of shader sources for changes,
// so that programs can be rebuilt while developing shaders.
// The files they #include are watched too, and the includes are
// scanned again whenever a watched file changes, so that new
// includes are picked up.
// The watching happens on a separate goroutine, which only records
// that something changed: the render loop polls [SourceWatcher.Changed]
// and rebuilds its programs on the graphics thread.
type SourceWatcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	dirs    map[string]bool

	// roots are the files of the sources themselves.
	roots []string

	changed atomic.Bool
	done    sync.WaitGroup
}

// NewSourceWatcher returns a new watcher for the file sources among
// the given sources. Sources given as code are ignored.
// The directories of the files are watched, so that files replaced
// by editors on save are still seen.
func NewSourceWatcher(sources ...ShaderSource) (*SourceWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Log(err)
	}
	sw := &SourceWatcher{watcher: w, files: make(map[string]bool), dirs: make(map[string]bool)}
	for _, ss := range sources {
		if !ss.IsFile() {
			continue
		}
		fn, err := filepath.Abs(ss.Path)
		if err != nil {
			w.Close()
			return nil, errors.Log(err)
		}
		sw.roots = append(sw.roots, fn)
		if err := sw.add(fn); err != nil {
			w.Close()
			return nil, errors.Log(err)
		}
		sw.addIncludes(fn)
	}
	sw.done.Add(1)
	go sw.watch()
	return sw, nil
}

// add watches the given absolute file name through its directory.
func (sw *SourceWatcher) add(fn string) error {
	sw.files[fn] = true
	dir := filepath.Dir(fn)
	if sw.dirs[dir] {
		return nil
	}
	if err := sw.watcher.Add(dir); err != nil {
		return err
	}
	sw.dirs[dir] = true
	return nil
}

// addIncludes watches the files included by the given root file.
// Errors are logged: the root is still watched, and a missing
// include is reported when the program is built.
func (sw *SourceWatcher) addIncludes(root string) {
	dir := filepath.Dir(root)
	incs, err := Includes(os.DirFS(dir), filepath.Base(root))
	if err != nil && Debug {
		slog.Info("gpu.SourceWatcher: scanning includes", "file", root, "err", err)
	}
	for _, inc := range incs {
		errors.Log(sw.add(filepath.Join(dir, filepath.FromSlash(inc))))
	}
}

func (sw *SourceWatcher) watch() {
	defer sw.done.Done()
	for {
		select {
		case ev, ok := <-sw.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if sw.files[filepath.Clean(ev.Name)] {
				if Debug {
					slog.Info("gpu.SourceWatcher: shader source changed", "file", ev.Name)
				}
				sw.changed.Store(true)
				for _, root := range sw.roots {
					sw.addIncludes(root)
				}
			}
		case err, ok := <-sw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("gpu.SourceWatcher", "err", err)
		}
	}
}

// Changed returns whether any of the watched files has changed since
// the last call to Changed.
func (sw *SourceWatcher) Changed() bool {
	return sw.changed.Swap(false)
}

// Close stops watching.
func (sw *SourceWatcher) Close() error {
	err := sw.watcher.Close()
	sw.done.Wait()
	return err
}
