// Package tsc is the default compiler toolchain, built on tree-sitter.
// It compiles TypeScript by erasing type syntax in place: erased spans are
// blanked with spaces and newlines are kept, so every emitted position
// equals its source position and source maps reduce to the identity
// mapping.
package tsc

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

// language selects the grammar for path. JSX-capable extensions use the tsx
// grammar, everything else plain typescript.
func language(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx":
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}

// parse produces a syntax tree for content. Callers own the returned tree
// and must Close it.
func parse(content []byte, path string) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(language(path))

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrParseFailed.Error()), "path", path)
	}
	return tree, nil
}

// Diagnostic codes reused from the reference compiler so ignoreCodes
// configuration stays portable.
const (
	codeExpressionExpected = 1109
	codeTokenExpected      = 1005
	codeCannotFindModule   = 2307
	codeTypeNotAssignable  = 2322
)

// syntacticDiagnostics walks the tree and reports parse errors and missing
// tokens.
func syntacticDiagnostics(root *sitter.Node, path string) []domain.Diagnostic {
	var diags []domain.Diagnostic

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.IsError() {
			point := n.StartPoint()
			diags = append(diags, domain.Diagnostic{
				File:     path,
				Line:     int(point.Row) + 1,
				Col:      int(point.Column) + 1,
				Code:     codeExpressionExpected,
				Severity: domain.SeverityError,
				Message:  "Expression expected.",
			})
			return
		}
		if n.IsMissing() {
			point := n.StartPoint()
			diags = append(diags, domain.Diagnostic{
				File:     path,
				Line:     int(point.Row) + 1,
				Col:      int(point.Column) + 1,
				Code:     codeTokenExpected,
				Severity: domain.SeverityError,
				Message:  "'" + n.Type() + "' expected.",
			})
			return
		}
		if !n.HasError() {
			// Subtree is clean, skip it.
			return
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return diags
}
