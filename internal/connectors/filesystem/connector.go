// Package filesystem reads markdown files from a local folder and watches
// it for changes.
package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Verify interface compliance.
var _ driven.MarkdownSource = (*Connector)(nil)

// ErrClosed is returned by Watch after Close.
var ErrClosed = errors.New("connector closed")

// Extensions lists the file extensions treated as markdown.
var Extensions = []string{".md", ".markdown"}

// Connector is a markdown source rooted at a directory.
type Connector struct {
	rootPath string

	mu      sync.Mutex
	watcher *fsnotify.Watcher
	closed  bool
}

// New creates a connector for rootPath.
func New(rootPath string) *Connector {
	return &Connector{rootPath: rootPath}
}

// RootPath returns the directory the connector reads.
func (c *Connector) RootPath() string {
	return c.rootPath
}

// Validate checks the root path exists and is a directory.
func (c *Connector) Validate() error {
	info, err := os.Stat(c.rootPath)
	if err != nil {
		return fmt.Errorf("root path error: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root path error: %s is not a directory", c.rootPath)
	}
	return nil
}

// Scan walks the root and returns every visible markdown file, sorted by
// path.
func (c *Connector) Scan(ctx context.Context) ([]domain.SourceFile, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var files []domain.SourceFile
	err := filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if path != c.rootPath && isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !IsMarkdown(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Warn("reading %s: %v", path, err)
			return nil
		}
		files = append(files, domain.SourceFile{Path: path, Content: content})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", c.rootPath, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// Watch streams changes to markdown files under the root. The channel is
// closed when ctx is cancelled or the connector is closed.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.FileChange, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, ErrClosed
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := c.addDirs(watcher); err != nil {
		_ = watcher.Close()
		return nil, err
	}
	if c.watcher != nil {
		_ = c.watcher.Close()
	}
	c.watcher = watcher

	changes := make(chan domain.FileChange, 16)
	go c.watchLoop(ctx, watcher, changes)
	return changes, nil
}

// addDirs registers the root and every visible subdirectory.
func (c *Connector) addDirs(watcher *fsnotify.Watcher) error {
	return filepath.WalkDir(c.rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if path != c.rootPath && isHidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}

func (c *Connector) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, changes chan<- domain.FileChange) {
	defer close(changes)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !isHidden(filepath.Base(event.Name)) {
					if err := watcher.Add(event.Name); err != nil {
						logger.Warn("watching %s: %v", event.Name, err)
					}
					continue
				}
			}
			change := c.handleFsEvent(event)
			if change == nil {
				continue
			}
			select {
			case changes <- *change:
			case <-ctx.Done():
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleFsEvent maps a raw event to a file change, or nil when the event
// is irrelevant.
func (c *Connector) handleFsEvent(event fsnotify.Event) *domain.FileChange {
	rel, err := filepath.Rel(c.rootPath, event.Name)
	if err != nil || isHidden(rel) || !IsMarkdown(event.Name) {
		return nil
	}

	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return &domain.FileChange{
			Type: domain.ChangeDeleted,
			File: domain.SourceFile{Path: event.Name},
		}
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		info, err := os.Stat(event.Name)
		if err != nil || info.IsDir() {
			return nil
		}
		content, err := os.ReadFile(event.Name)
		if err != nil {
			logger.Warn("reading %s: %v", event.Name, err)
			return nil
		}
		changeType := domain.ChangeUpdated
		if event.Has(fsnotify.Create) {
			changeType = domain.ChangeCreated
		}
		return &domain.FileChange{
			Type: changeType,
			File: domain.SourceFile{Path: event.Name, Content: content},
		}
	default:
		return nil
	}
}

// Close stops any running watch. It is idempotent.
func (c *Connector) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	if c.watcher == nil {
		return nil
	}
	err := c.watcher.Close()
	c.watcher = nil
	return err
}

// IsMarkdown reports whether path has a markdown extension.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// isHidden reports whether any element of path starts with a dot.
// "." and ".." are not hidden.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "" || part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
