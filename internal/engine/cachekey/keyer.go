// Package cachekey composes the digest the host runner caches transform
// results under.
package cachekey

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/depgraph"
)

// Options are the per-request flags that participate in the key.
type Options struct {
	// Instrument reports whether coverage instrumentation is active.
	Instrument bool
	// SupportsESM reports whether the host can execute native modules.
	SupportsESM bool
}

// Keyer builds a deterministic digest over configuration fingerprint,
// file content, file path and, in full-service mode, the modification
// times of every file in the dependency graph. Identical inputs always
// yield identical keys; any change to content, path, flags, configuration
// or a transitively-reachable file's mtime changes the key.
type Keyer struct {
	fingerprint string
	rootDir     string
	withDeps    bool
	graphs      *depgraph.Builder
	stat        ports.FileStat
}

// New creates a Keyer. withDeps is set in full-service mode, where
// diagnostics make the output depend on the whole reachable set.
func New(fingerprint, rootDir string, withDeps bool, graphs *depgraph.Builder, stat ports.FileStat) *Keyer {
	return &Keyer{
		fingerprint: fingerprint,
		rootDir:     rootDir,
		withDeps:    withDeps,
		graphs:      graphs,
		stat:        stat,
	}
}

// Key digests one compile request. It is a pure function of its inputs
// plus filesystem state at call time: mtimes are environmental, so the key
// is stable across repeated runs on one checkout, not across machines.
func (k *Keyer) Key(content []byte, path string, opts Options) string {
	// The session cleans paths before touching the dependency graph; the
	// key must address the same graph entry for the same file.
	path = filepath.Clean(path)

	hasher := xxhash.New()

	writeString := func(s string) {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	writeString(k.fingerprint)
	writeString(k.rootDir)
	writeString(strconv.FormatBool(opts.Instrument))
	writeString(strconv.FormatBool(opts.SupportsESM))
	_, _ = hasher.Write(content)
	_, _ = hasher.Write([]byte{0})
	writeString(path)

	if k.withDeps {
		for _, dep := range k.graphs.ResolvedModules(content, path) {
			mtime, ok := k.stat.ModTime(dep)
			if !ok {
				// Deleted dependency: no longer part of the reachable set.
				continue
			}
			writeString(dep)
			writeString(strconv.FormatInt(mtime, 10))
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64())
}
