package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// literalTypeNames maps a literal node kind to the inferred type name
// (spec §4.7.14).
var literalTypeNames = map[string]string{
	"number":          "number",
	"string":          "string",
	"string_fragment": "string",
	"true":            "boolean",
	"false":           "boolean",
	"array":           "array",
	"object":          "object",
	"null":            "null",
}

// InlayHints implements spec §4.7.14: for variable declarations within
// rng, a type hint placed right after the identifier when the
// initializer is a recognized literal kind.
func InlayHints(root *sitter.Node, source []byte, rng protocol.Range) []protocol.InlayHint {
	if root == nil {
		return nil
	}
	var hints []protocol.InlayHint

	syntax.Walk(root, func(n *sitter.Node) bool {
		if n.Kind() != "variable_declarator" {
			return true
		}
		nodeRange := syntax.NodeRange(source, n)
		if !rng.ContainsRange(nodeRange) {
			return true
		}
		name := n.ChildByFieldName("name")
		value := n.ChildByFieldName("value")
		if name == nil || value == nil {
			return true
		}
		typeName, ok := literalTypeNames[value.Kind()]
		if !ok {
			return true
		}
		hints = append(hints, protocol.InlayHint{
			Position: syntax.NodeRange(source, name).End,
			Label:    ": " + typeName,
			Kind:     protocol.InlayHintKindType,
		})
		return true
	})

	return hints
}
