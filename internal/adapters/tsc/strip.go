package tsc

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// span is a half-open byte range scheduled for erasure.
type span struct {
	start uint32
	end   uint32
}

// eraseWhole lists node types whose full span is type-only syntax.
var eraseWhole = map[string]bool{
	"type_annotation":          true,
	"omitting_type_annotation": true,
	"opting_type_annotation":   true,
	"type_arguments":           true,
	"type_parameters":          true,
	"interface_declaration":    true,
	"type_alias_declaration":   true,
	"ambient_declaration":      true,
	"implements_clause":        true,
	"function_signature":       true,
	"accessibility_modifier":   true,
	"override_modifier":        true,
	"index_signature":          true,
}

// collectErasures walks the tree and gathers every span that must be
// blanked for the source to become executable JavaScript.
func collectErasures(root *sitter.Node, content []byte) []span {
	var spans []span

	erase := func(start, end uint32) {
		if end > start {
			spans = append(spans, span{start: start, end: end})
		}
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}

		typ := n.Type()

		if eraseWhole[typ] {
			erase(n.StartByte(), n.EndByte())
			return
		}

		switch typ {
		case "import_statement", "export_statement":
			// Type-only import/export carries no runtime binding.
			if isTypeOnlyStatement(n, content) {
				erase(n.StartByte(), n.EndByte())
				return
			}
			// An export wrapping a type-only declaration goes entirely.
			if decl := n.ChildByFieldName("declaration"); decl != nil {
				switch decl.Type() {
				case "interface_declaration", "type_alias_declaration":
					erase(n.StartByte(), n.EndByte())
					return
				}
			}
		case "as_expression", "satisfies_expression", "non_null_expression":
			// Keep the expression, blank the tail (` as T`, `!`).
			if expr := n.Child(0); expr != nil {
				erase(expr.EndByte(), n.EndByte())
				walk(expr)
				return
			}
		case "abstract_class_declaration", "abstract_method_signature":
			// Only the abstract keyword is type syntax; the class itself
			// has runtime semantics.
			if kw := childOfType(n, "abstract"); kw != nil {
				erase(kw.StartByte(), kw.EndByte())
			}
		case "optional_parameter", "public_field_definition", "property_definition", "method_definition":
			// The `?` marker is not valid JavaScript once the annotation
			// is gone.
			if mark := childOfType(n, "?"); mark != nil {
				erase(mark.StartByte(), mark.EndByte())
			}
		}

		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)

	return spans
}

// blank replaces every erased byte with a space, keeping line breaks, so
// the remaining code sits at its original positions.
func blank(content []byte, spans []span) []byte {
	out := make([]byte, len(content))
	copy(out, content)
	for _, s := range spans {
		end := min(int(s.end), len(out))
		for i := int(s.start); i < end; i++ {
			if out[i] != '\n' && out[i] != '\r' {
				out[i] = ' '
			}
		}
	}
	return out
}

// strip erases type syntax from content and returns executable source.
func strip(root *sitter.Node, content []byte) []byte {
	return blank(content, collectErasures(root, content))
}
