package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// declarationKinds are the node kinds Definition/DocumentSymbol treat as
// name-introducing declarations (spec §4.7.4/§4.7.6).
var declarationKinds = map[string]bool{
	"function_declaration":  true,
	"function_definition":   true,
	"method_definition":     true,
	"variable_declarator":   true,
	"lexical_declaration":   true,
	"variable_declaration":  true,
	"class_declaration":     true,
	"struct_declaration":    true,
	"enum_declaration":      true,
	"interface_declaration": true,
}

// DocSource bundles a document's identity and parsed state for providers
// that search across multiple files (Definition's cross-file variant).
type DocSource struct {
	URI    string
	Root   *sitter.Node
	Source []byte
}

// Definition implements spec §4.7.4's single-file search.
func Definition(root *sitter.Node, source []byte, pos protocol.Position) *protocol.Location {
	return DefinitionAcrossFiles([]DocSource{{Root: root, Source: source}}, pos)
}

// DefinitionAcrossFiles implements the cross-file variant: current file
// first, then the rest in the given order (spec §4.7.4 "current-file-first
// ordering"). docs[0] is treated as the current file; pos is resolved
// against it to find the identifier, then every doc is searched for a
// matching declaration.
func DefinitionAcrossFiles(docs []DocSource, pos protocol.Position) *protocol.Location {
	if len(docs) == 0 || docs[0].Root == nil {
		return nil
	}
	current := docs[0]
	offset := syntax.PositionToByte(current.Source, pos)
	ident := syntax.FindIdentifierAt(current.Root, offset)
	if ident == nil {
		return nil
	}
	name := syntax.NodeText(current.Source, ident)

	for _, d := range docs {
		if d.Root == nil {
			continue
		}
		if decl := findDeclaration(d.Root, d.Source, name); decl != nil {
			rng := syntax.NodeRange(d.Source, decl)
			return &protocol.Location{URI: protocol.DocumentURI(d.URI), Range: rng}
		}
	}
	return nil
}

// findDeclaration returns the nearest declaration node (by pre-order
// traversal) whose name child equals name.
func findDeclaration(root *sitter.Node, source []byte, name string) *sitter.Node {
	var found *sitter.Node
	syntax.Walk(root, func(n *sitter.Node) bool {
		if found != nil {
			return false
		}
		if !declarationKinds[n.Kind()] {
			return true
		}
		if declName(n, source) == name {
			found = n
			return false
		}
		return true
	})
	return found
}

// declName extracts a declaration node's name, preferring a "name" field
// then falling back to the first identifier-kind child (lexical/variable
// declarations nest their declarator under "declarator" rather than
// exposing "name" directly).
func declName(n *sitter.Node, source []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return syntax.NodeText(source, name)
	}
	var result string
	syntax.Walk(n, func(c *sitter.Node) bool {
		if result != "" {
			return false
		}
		if syntax.IsIdentifier(c.Kind()) {
			result = syntax.NodeText(source, c)
			return false
		}
		return true
	})
	return result
}
