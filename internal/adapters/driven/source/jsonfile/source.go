// Package jsonfile discovers and decodes record files from a content
// directory. Each file holds exactly one EducationalContent-shaped JSON
// object, mirroring the one-export-per-module layout of the authored
// corpus.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
	"github.com/medbank-labs/medbank-cli/internal/logger"
)

// Ensure Source implements the interfaces.
var (
	_ driven.RecordSource          = (*Source)(nil)
	_ driven.WatchableRecordSource = (*Source)(nil)
)

// debounceWindow groups bursts of fsnotify events (editors fire several
// per save) into a single reload.
const debounceWindow = 250 * time.Millisecond

// Source reads candidate records from *.json files under a root directory.
type Source struct {
	root string
}

// New creates a source rooted at dir.
func New(dir string) *Source {
	return &Source{root: dir}
}

// Root returns the content directory this source scans.
func (s *Source) Root() string {
	return s.root
}

// Records walks the content tree and decodes every record file. Hidden
// files and directories are skipped. Undecodable files are reported in the
// error slice without aborting the walk; one broken file must not block
// hundreds of good ones.
func (s *Source) Records(ctx context.Context) ([]driven.RawRecord, []error) {
	var (
		records []driven.RawRecord
		errs    []error
	)

	walkErr := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != s.root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(name, ".json") {
			return nil
		}

		data, err := s.decode(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		records = append(records, driven.RawRecord{Path: s.relative(path), Data: data})
		return nil
	})
	if walkErr != nil {
		errs = append(errs, fmt.Errorf("walking %s: %w", s.root, walkErr))
	}

	// WalkDir visits lexically, but make ordering explicit for reports.
	sort.Slice(records, func(i, j int) bool { return records[i].Path < records[j].Path })

	logger.Debug("Discovered %d record files under %s", len(records), s.root)
	return records, errs
}

// decode reads one record file into an untyped object graph.
func (s *Source) decode(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.relative(path), err)
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.relative(path), err)
	}
	return data, nil
}

// relative shortens an absolute path for issue reports.
func (s *Source) relative(path string) string {
	if rel, err := filepath.Rel(s.root, path); err == nil {
		return rel
	}
	return path
}

// Watch blocks until ctx is cancelled, invoking fn after each settled
// burst of changes under the content tree. New subdirectories are added to
// the watch as they appear.
func (s *Source) Watch(ctx context.Context, fn driven.WatchFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := s.watchTree(watcher); err != nil {
		return err
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fire := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watcher.Add(event.Name)
				}
			}
			logger.Debug("Content change: %s %s", event.Op, event.Name)
			if timer == nil {
				timer = time.AfterFunc(debounceWindow, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounceWindow)
			}

		case <-fire:
			fn()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher: %v", err)
		}
	}
}

// watchTree registers the root and every non-hidden subdirectory.
func (s *Source) watchTree(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") && path != s.root {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}
