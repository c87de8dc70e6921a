// Package fs provides filesystem adapters: memoized probes and the module
// resolver.
package fs

import (
	"os"
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

const probeCacheSize = 8192

// Probes memoizes filesystem existence, mtime and real-path lookups. Module
// resolution probes the same handful of candidate paths over and over; the
// memo keeps repeated resolution from hitting the filesystem each time.
type Probes struct {
	exists   *lru.Cache[string, bool]
	realpath *lru.Cache[string, string]
}

// NewProbes creates a new probe cache.
func NewProbes() *Probes {
	exists, _ := lru.New[string, bool](probeCacheSize)
	realpath, _ := lru.New[string, string](probeCacheSize)
	return &Probes{exists: exists, realpath: realpath}
}

// FileExists reports whether path names an existing regular file.
func (p *Probes) FileExists(path string) bool {
	if v, ok := p.exists.Get(path); ok {
		return v
	}
	info, err := os.Stat(path)
	v := err == nil && !info.IsDir()
	p.exists.Add(path, v)
	return v
}

// ModTime returns the modification time of path in UnixNano. Never
// memoized: cache keys must observe a touch between two calls. The second
// return is false when the file no longer exists on disk; callers treat such
// files as no longer part of the reachable set rather than erroring.
func (p *Probes) ModTime(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.ModTime().UnixNano(), true
}

// RealPath resolves symlinks in path, falling back to the cleaned input when
// resolution fails.
func (p *Probes) RealPath(path string) string {
	if v, ok := p.realpath.Get(path); ok {
		return v
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		resolved = filepath.Clean(path)
	}
	p.realpath.Add(path, resolved)
	return resolved
}

// Invalidate drops memoized probe results for path. The session calls this
// when the overlay observes new content for a file.
func (p *Probes) Invalidate(path string) {
	p.exists.Remove(path)
	p.realpath.Remove(path)
}
