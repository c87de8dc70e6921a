package session

import (
	"os"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

// scriptRecord is one overlay entry. The version is the language service's
// invalidation signal: it increments only when the text demonstrably
// changes, or when the effective module kind changes. A module-kind switch
// forces reanalysis even for identical content.
type scriptRecord struct {
	version uint64
	text    string
	kind    domain.ModuleKind
}

// overlay is the in-memory {path -> content, version} store standing in
// front of filesystem reads. Records are created on first reference and
// live for the process; the set is bounded by project size.
type overlay struct {
	files    map[string]*scriptRecord
	order    []string
	cache    ports.FileCache
	resolver ports.ModuleResolver
}

var _ ports.ScriptHost = (*overlay)(nil)

func newOverlay(resolver ports.ModuleResolver) *overlay {
	return &overlay{
		files:    make(map[string]*scriptRecord),
		resolver: resolver,
	}
}

// setFileCache installs the host runner's read-through cache for the
// current request.
func (o *overlay) setFileCache(cache ports.FileCache) {
	o.cache = cache
}

// update refreshes the overlay entry for path and reports whether the
// entry's version was bumped.
func (o *overlay) update(path, text string, kind domain.ModuleKind) bool {
	record, ok := o.files[path]
	if !ok {
		o.files[path] = &scriptRecord{version: 1, text: text, kind: kind}
		o.order = append(o.order, path)
		return true
	}
	if record.text == text && record.kind == kind {
		return false
	}
	record.version++
	record.text = text
	record.kind = kind
	return true
}

// ScriptPaths returns every tracked path in first-seen order.
func (o *overlay) ScriptPaths() []string {
	paths := make([]string, len(o.order))
	copy(paths, o.order)
	return paths
}

// ScriptVersion returns the version for path. The second return is false
// for untracked paths: that sentinel must stay distinguishable from
// version zero, or the service mistakes unknown files for unchanged ones.
func (o *overlay) ScriptVersion(path string) (uint64, bool) {
	record, ok := o.files[path]
	if !ok {
		return 0, false
	}
	return record.version, true
}

// ScriptSnapshot reads the current text for path: overlay first, then the
// host runner's file cache, then the filesystem. Reads are memoized into
// the overlay so the service sees a stable version for them.
func (o *overlay) ScriptSnapshot(path string) ([]byte, bool) {
	if record, ok := o.files[path]; ok {
		return []byte(record.text), true
	}

	var (
		text  string
		found bool
	)
	if o.cache != nil {
		text, found = o.cache.Get(path)
	}
	if !found {
		raw, err := os.ReadFile(path) //nolint:gosec // resolved project file
		if err != nil {
			return nil, false
		}
		text = string(raw)
	}

	o.files[path] = &scriptRecord{version: 1, text: text}
	o.order = append(o.order, path)
	return []byte(text), true
}

// ResolveModule resolves an import specifier against its containing file.
func (o *overlay) ResolveModule(specifier, containingFile string) (string, bool) {
	return o.resolver.Resolve(specifier, containingFile)
}
