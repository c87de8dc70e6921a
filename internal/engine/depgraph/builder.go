// Package depgraph derives per-file dependency graphs from syntactic import
// scans.
package depgraph

import (
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

// SnapshotFunc reads the current content of a dependency file, preferring
// the session overlay when it is warm.
type SnapshotFunc func(path string) ([]byte, bool)

// Builder computes the reachable set of a file: the transitive closure of
// its local imports. External package imports are not expanded; their
// content is considered immutable during a run.
type Builder struct {
	toolchain ports.Toolchain
	resolver  ports.ModuleResolver
	stat      ports.FileStat
	snapshot  SnapshotFunc
	entries   map[string]domain.DepGraphEntry
}

// NewBuilder creates a Builder.
func NewBuilder(toolchain ports.Toolchain, resolver ports.ModuleResolver, stat ports.FileStat, snapshot SnapshotFunc) *Builder {
	return &Builder{
		toolchain: toolchain,
		resolver:  resolver,
		stat:      stat,
		snapshot:  snapshot,
		entries:   make(map[string]domain.DepGraphEntry),
	}
}

// ResolvedModules returns the reachable set of path given its current
// content, in discovery order, deduplicated. If the last call for path saw
// byte-identical content the stored set is returned, filtered to files
// that still exist on disk; a dependency deleted between runs silently
// leaves the set rather than erroring.
func (b *Builder) ResolvedModules(content []byte, path string) []string {
	if entry, ok := b.entries[path]; ok && entry.Content == string(content) {
		return b.filterExisting(entry.Resolved)
	}

	resolved := b.closure(content, path)
	b.entries[path] = domain.DepGraphEntry{Content: string(content), Resolved: resolved}
	return resolved
}

// Entry returns the recorded graph entry for path, if any.
func (b *Builder) Entry(path string) (domain.DepGraphEntry, bool) {
	entry, ok := b.entries[path]
	return entry, ok
}

// closure expands the direct imports of the root file into the flat
// reachable set. The worklist is ordered by discovery; a path already
// present is never re-queued, which makes import cycles terminate.
func (b *Builder) closure(content []byte, path string) []string {
	list := b.directImports(content, path)
	present := make(map[string]bool, len(list))
	present[path] = true
	for _, p := range list {
		present[p] = true
	}

	for i := 0; i < len(list); i++ {
		depContent, ok := b.snapshot(list[i])
		if !ok {
			// Unreadable dependency: not part of the reachable set's
			// expansion, but the path itself stays recorded.
			continue
		}
		for _, next := range b.directImports(depContent, list[i]) {
			if !present[next] {
				present[next] = true
				list = append(list, next)
			}
		}
	}
	return list
}

// directImports scans content for import specifiers and resolves them to
// absolute paths. Unresolved specifiers and external packages are dropped:
// cache-key stability wins over completeness.
func (b *Builder) directImports(content []byte, path string) []string {
	specifiers, err := b.toolchain.ScanImports(content, path)
	if err != nil {
		return nil
	}

	var resolved []string
	seen := make(map[string]bool, len(specifiers))
	for _, spec := range specifiers {
		target, ok := b.resolver.Resolve(spec, path)
		if !ok || target == path || seen[target] {
			continue
		}
		seen[target] = true
		resolved = append(resolved, target)
	}
	return resolved
}

func (b *Builder) filterExisting(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if b.stat.FileExists(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
