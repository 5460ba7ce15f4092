package assets

import (
	"bytes"
	"io/fs"
	"sync"
	"time"
)

// FileCache is an fs.FS that keeps file contents in memory for a TTL. It
// sits between an Expander and the static root when re-reading critical
// styles on every request is not wanted. Missing files are not cached.
type FileCache struct {
	mu      sync.RWMutex
	fsys    fs.FS
	ttl     time.Duration
	entries map[string]cachedFile
	now     func() time.Time
}

type cachedFile struct {
	data    []byte
	fetched time.Time
}

// NewFileCache creates a FileCache over fsys.
func NewFileCache(fsys fs.FS, ttl time.Duration) *FileCache {
	return &FileCache{
		fsys:    fsys,
		ttl:     ttl,
		entries: make(map[string]cachedFile),
		now:     time.Now,
	}
}

// Open passes through to the underlying filesystem.
func (c *FileCache) Open(name string) (fs.File, error) {
	return c.fsys.Open(name)
}

func (c *FileCache) valid(e cachedFile) bool {
	return c.now().Sub(e.fetched) < c.ttl
}

// ReadFile returns the cached contents of name, reloading them once the
// entry is older than the TTL. It tries a read lock first; only takes a
// write lock if a reload is needed. Callers get their own copy.
func (c *FileCache) ReadFile(name string) ([]byte, error) {
	c.mu.RLock()
	if e, ok := c.entries[name]; ok && c.valid(e) {
		c.mu.RUnlock()
		return bytes.Clone(e.data), nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[name]; ok && c.valid(e) {
		return bytes.Clone(e.data), nil
	}
	data, err := fs.ReadFile(c.fsys, name)
	if err != nil {
		delete(c.entries, name)
		return nil, err
	}
	c.entries[name] = cachedFile{data: data, fetched: c.now()}
	return bytes.Clone(data), nil
}

// Invalidate drops every cached file so the next read goes to disk.
func (c *FileCache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]cachedFile)
	c.mu.Unlock()
}
