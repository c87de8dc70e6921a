package ports

// FileStat exposes the filesystem probes the engine needs: existence checks
// for filtering stale graph entries and modification times for cache keys.
type FileStat interface {
	// FileExists reports whether path names an existing regular file.
	FileExists(path string) bool
	// ModTime returns the modification time of path in UnixNano; false when
	// the file no longer exists.
	ModTime(path string) (int64, bool)
	// Invalidate drops memoized probe results for path. Called when the
	// overlay observes new content for a file.
	Invalidate(path string)
}
