package tsc

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// scanImports extracts the module specifiers of a parsed file in document
// order: import statements, re-exports, require calls and dynamic imports.
// Type-only imports are skipped since they never affect runtime output.
func scanImports(root *sitter.Node, content []byte) []string {
	var specifiers []string
	seen := make(map[string]bool)

	add := func(raw string) {
		cleaned := strings.TrimSpace(strings.Trim(raw, "'\"`"))
		if cleaned == "" || seen[cleaned] {
			return
		}
		seen[cleaned] = true
		specifiers = append(specifiers, cleaned)
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		switch n.Type() {
		case "import_statement", "export_statement":
			if isTypeOnlyStatement(n, content) {
				return
			}
			if source := childOfType(n, "string"); source != nil {
				add(source.Content(content))
			}
		case "call_expression":
			if spec, ok := callImportSource(n, content); ok {
				add(spec)
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return specifiers
}

// callImportSource recognizes require("...") and import("...") calls with a
// single string-literal argument.
func callImportSource(n *sitter.Node, content []byte) (string, bool) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return "", false
	}
	switch {
	case fn.Type() == "identifier" && fn.Content(content) == "require":
	case fn.Type() == "import":
	default:
		return "", false
	}

	args := n.ChildByFieldName("arguments")
	if args == nil {
		return "", false
	}
	if source := childOfType(args, "string"); source != nil {
		return source.Content(content), true
	}
	return "", false
}

// isTypeOnlyStatement reports whether an import/export statement is
// type-only (`import type ...` / `export type ...`). The type keyword sits
// between the import/export keyword and the clause; a `type` inside the
// clause (`import { type A }`) does not make the whole statement type-only.
func isTypeOnlyStatement(n *sitter.Node, content []byte) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_clause", "export_clause", "namespace_export", "string":
			return false
		}
		if child.Content(content) == "type" {
			return true
		}
	}
	return false
}

// childOfType returns the first direct child of n with the given type.
func childOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil && child.Type() == typ {
			return child
		}
	}
	return nil
}
