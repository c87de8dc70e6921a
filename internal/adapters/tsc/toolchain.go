package tsc

import (
	"path/filepath"

	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/jig/internal/core/ports"
)

var _ ports.Toolchain = (*Toolchain)(nil)

// Toolchain is the default, tree-sitter backed compiler implementation.
// It is stateless; all per-session state lives in the language service.
type Toolchain struct{}

// New creates the default toolchain.
func New() *Toolchain {
	return &Toolchain{}
}

// Accepts reports whether the toolchain compiles files like path. Plain
// JavaScript is accepted only under allowJs; hybrid templates are accepted
// so the service can degrade them explicitly rather than rejecting them
// up front.
func (t *Toolchain) Accepts(path string, opts domain.CompilerOptions) bool {
	switch {
	case domain.IsDeclarationFile(path), domain.IsTypedFile(path), domain.IsHybridFile(path):
		return true
	case domain.IsScriptFile(path):
		return opts.AllowJS
	}
	return false
}

// ScanImports extracts module specifiers with a syntactic pre-scan.
func (t *Toolchain) ScanImports(content []byte, path string) ([]string, error) {
	tree, err := parse(content, path)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return scanImports(tree.RootNode(), content), nil
}

// Transpile compiles a single file without cross-file type information.
// Diagnostics are syntactic only: isolated compilation has no project view
// to type-check against.
func (t *Toolchain) Transpile(content []byte, path string, opts domain.CompilerOptions) (domain.CompileResult, error) {
	tree, err := parse(content, path)
	if err != nil {
		return domain.CompileResult{}, err
	}
	defer tree.Close()

	root := tree.RootNode()
	result := domain.CompileResult{
		Code:        string(strip(root, content)),
		Diagnostics: syntacticDiagnostics(root, filepath.Clean(path)),
	}
	if opts.SourceMap {
		result.SourceMap = identitySourceMap(path, content)
	}
	return result, nil
}

// NewService constructs the incremental language service over host.
func (t *Toolchain) NewService(host ports.ScriptHost, opts domain.CompilerOptions) (ports.LanguageService, error) {
	return newService(host, opts), nil
}
