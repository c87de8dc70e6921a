package ports

// FileCache is the host runner's read-through file cache. The overlay
// consults it before touching the filesystem so files already read by the
// runner are not read twice.
type FileCache interface {
	// Get returns the cached content for path, if present.
	Get(path string) (string, bool)
}
