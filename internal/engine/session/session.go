// Package session implements the long-lived compilation session: one
// project's compiler state, overlay and dependency bookkeeping.
package session

import (
	"path/filepath"
	"strings"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
	"go.trai.ch/jig/internal/engine/depgraph"
	"go.trai.ch/zerr"
)

// CompileOptions are the per-request flags supplied by the host runner.
type CompileOptions struct {
	// SupportsESM reports whether the host can execute native modules;
	// it selects the effective module kind for this request.
	SupportsESM bool
	// WatchMode enables eager re-diagnosis of dependents when a file
	// changes.
	WatchMode bool
	// FileCache is the host runner's read-through file cache, if any.
	FileCache ports.FileCache
}

// Session wraps the language service with a project view over the overlay.
// A session is selected once per configuration identity and lives for the
// process. All access must be serialized by the caller: the service is not
// safe for concurrent overlay mutation.
type Session struct {
	cfg       *domain.Config
	isolated  bool
	toolchain ports.Toolchain
	service   ports.LanguageService
	stat      ports.FileStat
	logger    ports.Logger
	reporter  ports.Reporter
	overlay   *overlay
	graphs    *depgraph.Builder
	deps      *dependents
	compiled  map[string]bool
}

// New constructs a session for cfg. In full-service mode the language
// service is built immediately over the overlay; isolated mode skips it.
func New(cfg *domain.Config, toolchain ports.Toolchain, resolver ports.ModuleResolver, stat ports.FileStat, logger ports.Logger, reporter ports.Reporter) (*Session, error) {
	s := &Session{
		cfg:       cfg,
		isolated:  cfg.Plugin.Isolated,
		toolchain: toolchain,
		stat:      stat,
		logger:    logger,
		reporter:  reporter,
		overlay:   newOverlay(resolver),
		deps:      newDependents(),
		compiled:  make(map[string]bool),
	}
	s.graphs = depgraph.NewBuilder(toolchain, resolver, stat, s.overlay.ScriptSnapshot)

	if !s.isolated {
		service, err := toolchain.NewService(s.overlay, cfg.Compiler)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to construct language service")
		}
		s.service = service
	}
	return s, nil
}

// Graphs exposes the session's dependency graph cache for cache-key
// computation.
func (s *Session) Graphs() *depgraph.Builder {
	return s.graphs
}

// ResolvedModules returns the reachable set of path, seeded with the
// session overlay when it is warm. Used solely for cache-key computation.
func (s *Session) ResolvedModules(content []byte, path string) []string {
	return s.graphs.ResolvedModules(content, filepath.Clean(path))
}

// Compile converts content at path into executable script form.
func (s *Session) Compile(content []byte, path string, opts CompileOptions) (domain.CompileResult, error) {
	path = filepath.Clean(path)

	if domain.IsDeclarationFile(path) {
		// Declarations are never executed; empty output, no diagnostics.
		return domain.CompileResult{}, nil
	}

	if !s.toolchain.Accepts(path, s.cfg.Compiler) {
		s.logger.Warn("unsupported file extension, returning content unchanged: " + path)
		return domain.CompileResult{Code: string(content)}, nil
	}

	if s.isolated {
		return s.compileIsolated(content, path, opts)
	}
	return s.compileFullService(content, path, opts)
}

// compileIsolated delegates to a single-file transpile with the session's
// compiler settings, with the module kind adjusted by the caller's module
// capability. No persistent overlay, no cross-file type data.
func (s *Session) compileIsolated(content []byte, path string, opts CompileOptions) (domain.CompileResult, error) {
	compiler := s.cfg.Compiler
	compiler.Module = s.effectiveModuleKind(opts.SupportsESM)
	result, err := s.toolchain.Transpile(content, path, compiler)
	if err != nil {
		return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to transpile file"), "path", path)
	}

	if s.reporter.ShouldCheck(path) {
		result.Diagnostics = s.reporter.Filter(result.Diagnostics)
	} else {
		result.Diagnostics = nil
	}
	return result, nil
}

func (s *Session) compileFullService(content []byte, path string, opts CompileOptions) (domain.CompileResult, error) {
	s.overlay.setFileCache(opts.FileCache)

	changed := s.overlay.update(path, string(content), s.effectiveModuleKind(opts.SupportsESM))
	if changed {
		// New content invalidates any memoized filesystem probes for path.
		s.stat.Invalidate(path)
	}

	out, err := s.service.Emit(path)
	if err != nil {
		return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "emit failed"), "path", path)
	}

	if out.Skipped {
		if domain.IsTypedFile(path) {
			// No safe fallback script exists for a typed source file.
			return domain.CompileResult{}, zerr.With(domain.ErrEmitSkipped, "path", path)
		}
		s.logger.Warn("emit skipped, returning content unchanged: " + path)
		return domain.CompileResult{Code: string(content)}, nil
	}

	if len(out.Files) == 0 {
		// Executable output was requested for a file that has none.
		return domain.CompileResult{}, zerr.With(domain.ErrNoEmitOutput, "path", path)
	}

	result := domain.CompileResult{}
	for _, file := range out.Files {
		switch {
		case strings.HasSuffix(file.Name, ".map"):
			if s.cfg.Compiler.SourceMap {
				result.SourceMap = file.Text
			}
		case strings.HasSuffix(file.Name, ".js"):
			result.Code = file.Text
		}
	}

	if s.reporter.ShouldCheck(path) {
		diags, err := s.service.Diagnostics(path)
		if err != nil {
			return domain.CompileResult{}, zerr.With(zerr.Wrap(err, "failed to compute diagnostics"), "path", path)
		}
		result.Diagnostics = s.reporter.Filter(diags)
	}

	s.compiled[path] = true

	if opts.WatchMode {
		s.deps.record(path, s.graphs.ResolvedModules(content, path))
		if changed {
			if err := s.recheckDependents(path); err != nil {
				return domain.CompileResult{}, err
			}
		}
	}

	return result, nil
}

// recheckDependents re-diagnoses every previously compiled file whose
// reachable set contains changed, so a change in a dependency surfaces
// type errors in dependents without the dependent being recompiled.
func (s *Session) recheckDependents(changed string) error {
	for _, dependent := range s.deps.dependentsOf(changed) {
		if dependent == changed || !s.compiled[dependent] {
			continue
		}
		if !s.reporter.ShouldCheck(dependent) {
			continue
		}
		// The dependent's own version is unchanged; drop its memoized
		// result so the service reanalyzes against the new dependency.
		s.service.Invalidate(dependent)
		diags, err := s.service.Diagnostics(dependent)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to compute diagnostics"), "path", dependent)
		}
		if err := s.reporter.Report(s.reporter.Filter(diags)); err != nil {
			return err
		}
	}
	return nil
}

// effectiveModuleKind applies the caller's ESM capability to the configured
// module kind.
func (s *Session) effectiveModuleKind(supportsESM bool) domain.ModuleKind {
	if supportsESM {
		return domain.ModuleESNext
	}
	return s.cfg.Compiler.Module
}
