package tsc

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"go.trai.ch/jig/internal/core/domain"
)

// resolveFunc answers whether an import specifier resolves to a local file.
// A nil resolveFunc disables import checking.
type resolveFunc func(specifier string) bool

// semanticDiagnostics performs the checks the erasure toolchain can do
// without full type binding: literal initializers against primitive
// annotations, and unresolved relative imports.
func semanticDiagnostics(root *sitter.Node, content []byte, path string, resolve resolveFunc) []domain.Diagnostic {
	diags := checkLiteralAssignments(root, content, path)
	diags = append(diags, checkImports(root, content, path, resolve)...)
	return diags
}

// checkLiteralAssignments flags declarations of the form
// `const x: number = 'bad'` where the literal initializer cannot satisfy
// the primitive annotation.
func checkLiteralAssignments(root *sitter.Node, content []byte, path string) []domain.Diagnostic {
	var diags []domain.Diagnostic

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.Type() == "variable_declarator" || n.Type() == "public_field_definition" {
			if d, ok := literalMismatch(n, content, path); ok {
				diags = append(diags, d)
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return diags
}

func literalMismatch(n *sitter.Node, content []byte, path string) (domain.Diagnostic, bool) {
	annotation := n.ChildByFieldName("type")
	value := n.ChildByFieldName("value")
	if annotation == nil || value == nil {
		return domain.Diagnostic{}, false
	}

	declared := primitiveAnnotation(annotation, content)
	if declared == "" {
		return domain.Diagnostic{}, false
	}
	actual := literalType(value)
	if actual == "" || actual == declared {
		return domain.Diagnostic{}, false
	}

	point := value.StartPoint()
	return domain.Diagnostic{
		File:     path,
		Line:     int(point.Row) + 1,
		Col:      int(point.Column) + 1,
		Code:     codeTypeNotAssignable,
		Severity: domain.SeverityError,
		Message:  fmt.Sprintf("Type '%s' is not assignable to type '%s'.", actual, declared),
	}, true
}

// primitiveAnnotation returns the primitive name when the annotation is a
// plain predefined type, empty otherwise.
func primitiveAnnotation(annotation *sitter.Node, content []byte) string {
	node := annotation
	if node.Type() == "type_annotation" {
		if node.NamedChildCount() == 0 {
			return ""
		}
		node = node.NamedChild(0)
	}
	if node == nil || node.Type() != "predefined_type" {
		return ""
	}
	switch name := node.Content(content); name {
	case "number", "string", "boolean":
		return name
	}
	return ""
}

// literalType classifies an initializer that is a plain literal. Anything
// beyond a literal returns empty: without binding, no judgement is made.
func literalType(value *sitter.Node) string {
	switch value.Type() {
	case "number":
		return "number"
	case "string":
		return "string"
	case "template_string":
		// Substitution-free template literals are plain strings.
		if value.NamedChildCount() == 0 {
			return "string"
		}
		return ""
	case "true", "false":
		return "boolean"
	}
	return ""
}

// checkImports flags relative imports that do not resolve to a file.
// Bare specifiers are external packages and stay out of scope here;
// resolution gaps for them never fail a request.
func checkImports(root *sitter.Node, content []byte, path string, resolve resolveFunc) []domain.Diagnostic {
	if resolve == nil {
		return nil
	}

	var diags []domain.Diagnostic

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if typ := n.Type(); typ == "import_statement" || typ == "export_statement" {
			if !isTypeOnlyStatement(n, content) {
				if source := childOfType(n, "string"); source != nil {
					spec := strings.Trim(source.Content(content), "'\"`")
					if (strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../")) && !resolve(spec) {
						point := source.StartPoint()
						diags = append(diags, domain.Diagnostic{
							File:     path,
							Line:     int(point.Row) + 1,
							Col:      int(point.Column) + 1,
							Code:     codeCannotFindModule,
							Severity: domain.SeverityError,
							Message:  fmt.Sprintf("Cannot find module '%s' or its corresponding type declarations.", spec),
						})
					}
				}
			}
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return diags
}
