package ports

import "go.trai.ch/jig/internal/core/domain"

// ScriptHost is what a compilation session supplies to a language service.
// It fronts the session's overlay: the in-memory {path -> content, version}
// store standing before filesystem reads.
//
//go:generate mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks
type ScriptHost interface {
	// ScriptPaths returns every tracked path, in first-seen order.
	ScriptPaths() []string
	// ScriptVersion returns the overlay version for path. The second return
	// distinguishes "untracked" from version 0: the service treats a version
	// change as "must reanalyze", so conflating the two causes either false
	// cache hits or false invalidations.
	ScriptVersion(path string) (uint64, bool)
	// ScriptSnapshot returns the current text for path, reading through the
	// overlay, the host runner's file cache, then the filesystem. The read
	// result is memoized into the overlay.
	ScriptSnapshot(path string) ([]byte, bool)
	// ResolveModule resolves an import specifier against the file that
	// contains it and returns the absolute path of the target, if any.
	ResolveModule(specifier, containingFile string) (string, bool)
}

// LanguageService is a persistent, incremental view over a ScriptHost.
// Implementations memoize per-file results keyed by overlay version.
type LanguageService interface {
	// Emit produces the compiled outputs for path.
	Emit(path string) (domain.EmitOutput, error)
	// Diagnostics returns semantic plus syntactic diagnostics for path.
	// Declaration-emit diagnostics are deliberately not part of the contract.
	Diagnostics(path string) ([]domain.Diagnostic, error)
	// Invalidate drops memoized results for path. Called when a dependency
	// of path changed without path's own version changing.
	Invalidate(path string)
}

// Toolchain is the pluggable compiler implementation. The default is the
// tree-sitter toolchain; any drop-in replacement provides equivalent service
// construction, specifier scanning, transpilation and diagnostic shapes.
type Toolchain interface {
	// Accepts reports whether the toolchain can compile files with the
	// extension of path under the given options.
	Accepts(path string, opts domain.CompilerOptions) bool
	// ScanImports extracts the import/require specifiers of content with a
	// syntactic pre-scan, without type binding. Type-only imports are
	// excluded since they never affect runtime output.
	ScanImports(content []byte, path string) ([]string, error)
	// Transpile compiles a single file without cross-file type information.
	Transpile(content []byte, path string, opts domain.CompilerOptions) (domain.CompileResult, error)
	// NewService constructs an incremental language service over host.
	NewService(host ScriptHost, opts domain.CompilerOptions) (LanguageService, error)
}
