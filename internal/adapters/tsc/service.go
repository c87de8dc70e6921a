package tsc

import (
	"path/filepath"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

// serviceEntry memoizes per-file results keyed by the overlay version that
// produced them. A version mismatch means the file must be reanalyzed; an
// untracked file is always reanalyzed.
type serviceEntry struct {
	emitVersion  uint64
	emit         domain.EmitOutput
	hasEmit      bool
	diagsVersion uint64
	diags        []domain.Diagnostic
	hasDiags     bool
}

// service is the incremental language service over a ScriptHost. All access
// is serialized by the session; the service keeps no locks of its own.
type service struct {
	host    ports.ScriptHost
	opts    domain.CompilerOptions
	entries map[string]*serviceEntry
}

var _ ports.LanguageService = (*service)(nil)

func newService(host ports.ScriptHost, opts domain.CompilerOptions) *service {
	return &service{
		host:    host,
		opts:    opts,
		entries: make(map[string]*serviceEntry),
	}
}

func (s *service) entry(path string) *serviceEntry {
	e, ok := s.entries[path]
	if !ok {
		e = &serviceEntry{}
		s.entries[path] = e
	}
	return e
}

// Emit produces compiled outputs for path, reusing the memoized result when
// the overlay version is unchanged.
func (s *service) Emit(path string) (domain.EmitOutput, error) {
	version, tracked := s.host.ScriptVersion(path)
	e := s.entry(path)
	if tracked && e.hasEmit && e.emitVersion == version {
		return e.emit, nil
	}

	out, err := s.emit(path)
	if err != nil {
		return domain.EmitOutput{}, err
	}
	if tracked {
		e.emitVersion = version
		e.emit = out
		e.hasEmit = true
	}
	return out, nil
}

func (s *service) emit(path string) (domain.EmitOutput, error) {
	if domain.IsDeclarationFile(path) {
		// Declarations produce no output files.
		return domain.EmitOutput{}, nil
	}
	if domain.IsHybridFile(path) {
		// Hybrid templates need their secondary transform first; the
		// session degrades this to a passthrough.
		return domain.EmitOutput{Skipped: true}, nil
	}

	content, ok := s.host.ScriptSnapshot(path)
	if !ok {
		return domain.EmitOutput{Skipped: true}, nil
	}

	tree, err := parse(content, path)
	if err != nil {
		return domain.EmitOutput{}, err
	}
	defer tree.Close()

	code := strip(tree.RootNode(), content)
	name := outputName(filepath.Base(path))
	out := domain.EmitOutput{Files: []domain.OutputFile{{Name: name, Text: string(code)}}}

	if s.opts.SourceMap {
		out.Files = append(out.Files, domain.OutputFile{
			Name: name + ".map",
			Text: identitySourceMap(path, content),
		})
	}
	return out, nil
}

// Invalidate drops memoized results for path so the next request
// reanalyzes it.
func (s *service) Invalidate(path string) {
	delete(s.entries, path)
}

// Diagnostics returns semantic plus syntactic diagnostics for path, in that
// order. Declaration-emit diagnostics are deliberately omitted: they are
// slower and unnecessary for execution.
func (s *service) Diagnostics(path string) ([]domain.Diagnostic, error) {
	version, tracked := s.host.ScriptVersion(path)
	e := s.entry(path)
	if tracked && e.hasDiags && e.diagsVersion == version {
		return e.diags, nil
	}

	content, ok := s.host.ScriptSnapshot(path)
	if !ok {
		return nil, nil
	}

	tree, err := parse(content, path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	resolve := func(specifier string) bool {
		_, ok := s.host.ResolveModule(specifier, path)
		return ok
	}

	root := tree.RootNode()
	diags := semanticDiagnostics(root, content, path, resolve)
	diags = append(diags, syntacticDiagnostics(root, path)...)

	if tracked {
		e.diagsVersion = version
		e.diags = diags
		e.hasDiags = true
	}
	return diags, nil
}
