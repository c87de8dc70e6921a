package fs

import (
	"path/filepath"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/jig/internal/core/ports"
)

var _ ports.ModuleResolver = (*Resolver)(nil)

// extensionProbeOrder is the candidate extension order for extensionless
// specifiers, most specific first.
var extensionProbeOrder = []string{".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs", ".d.ts"}

// indexProbeOrder is the candidate order for directory imports.
var indexProbeOrder = []string{"index.ts", "index.tsx", "index.js", "index.jsx"}

const resolveCacheSize = 16384

// Resolver maps import specifiers to absolute file paths. Only relative
// specifiers resolve to local files; bare specifiers denote external
// packages whose content is considered immutable during a run, so they are
// excluded from dependency graphs.
type Resolver struct {
	probes *Probes
	memo   *lru.Cache[string, resolution]
}

type resolution struct {
	path string
	ok   bool
}

// NewResolver creates a new Resolver over the given probe cache.
func NewResolver(probes *Probes) *Resolver {
	memo, _ := lru.New[string, resolution](resolveCacheSize)
	return &Resolver{probes: probes, memo: memo}
}

// Resolve maps specifier, as written in containingFile, to an absolute path.
func (r *Resolver) Resolve(specifier, containingFile string) (string, bool) {
	if !strings.HasPrefix(specifier, "./") && !strings.HasPrefix(specifier, "../") {
		// Bare specifier: node builtin or an external package.
		return "", false
	}

	dir := filepath.Dir(containingFile)
	key := dir + "\x00" + specifier
	if cached, ok := r.memo.Get(key); ok {
		return cached.path, cached.ok
	}

	path, ok := r.resolve(filepath.Clean(filepath.Join(dir, specifier)))
	if ok && inExternalPackage(path) {
		ok = false
		path = ""
	}
	r.memo.Add(key, resolution{path: path, ok: ok})
	return path, ok
}

func (r *Resolver) resolve(base string) (string, bool) {
	// Exact hit first: specifiers may carry their extension already.
	if hasScriptExtension(base) && r.probes.FileExists(base) {
		return r.probes.RealPath(base), true
	}

	// TypeScript allows importing "./a.js" for an on-disk "./a.ts".
	if ext := filepath.Ext(base); ext == ".js" || ext == ".mjs" || ext == ".cjs" {
		stem := strings.TrimSuffix(base, ext)
		for _, candidate := range []string{stem + ".ts", stem + ".tsx"} {
			if r.probes.FileExists(candidate) {
				return r.probes.RealPath(candidate), true
			}
		}
	}

	for _, ext := range extensionProbeOrder {
		if candidate := base + ext; r.probes.FileExists(candidate) {
			return r.probes.RealPath(candidate), true
		}
	}

	// Directory import.
	for _, index := range indexProbeOrder {
		if candidate := filepath.Join(base, index); r.probes.FileExists(candidate) {
			return r.probes.RealPath(candidate), true
		}
	}

	return "", false
}

func hasScriptExtension(path string) bool {
	switch filepath.Ext(path) {
	case ".ts", ".tsx", ".mts", ".cts", ".js", ".jsx", ".mjs", ".cjs":
		return true
	}
	return false
}

// inExternalPackage reports whether path crosses an external dependency
// boundary.
func inExternalPackage(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "node_modules" {
			return true
		}
	}
	return false
}
