package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// References implements spec §4.7.5: every identifier-kind node whose
// text equals the identifier at pos, optionally excluding the
// declaration site (the spec's collection is purely textual — no scope
// resolution — so "declaration" here just means a node whose parent or
// grandparent is one of declarationKinds). Every hit is a Location against uri (spec §3
// "{uri, range}") since this provider is single-document.
func References(uri string, root *sitter.Node, source []byte, pos protocol.Position, includeDeclaration bool) []protocol.Location {
	offset := syntax.PositionToByte(source, pos)
	ident := syntax.FindIdentifierAt(root, offset)
	if ident == nil {
		return nil
	}
	name := syntax.NodeText(source, ident)

	var locations []protocol.Location
	for _, n := range collectOccurrences(root, source, name) {
		if !includeDeclaration && isDeclarationSite(n) {
			continue
		}
		locations = append(locations, protocol.Location{
			URI:   protocol.DocumentURI(uri),
			Range: syntax.NodeRange(source, n),
		})
	}
	return locations
}

// collectOccurrences returns every identifier-kind node whose text
// equals name, in document order.
func collectOccurrences(root *sitter.Node, source []byte, name string) []*sitter.Node {
	var out []*sitter.Node
	syntax.Walk(root, func(n *sitter.Node) bool {
		if syntax.IsIdentifier(n.Kind()) && syntax.NodeText(source, n) == name {
			out = append(out, n)
		}
		return true
	})
	return out
}

// isDeclarationSite reports whether n's parent or grandparent is one of
// declarationKinds. Only the node kind is checked, not whether that
// declaration names n, so an identifier in an initializer
// (`let y = foo`) also counts.
func isDeclarationSite(n *sitter.Node) bool {
	parent := n.Parent()
	if parent != nil && declarationKinds[parent.Kind()] {
		return true
	}
	if parent != nil {
		if grand := parent.Parent(); grand != nil && declarationKinds[grand.Kind()] {
			return true
		}
	}
	return false
}

// isWriteSite reports whether n's parent is an assignment, declaration,
// or update expression (spec §4.7.9 DocumentHighlight labelling).
func isWriteSite(n *sitter.Node) bool {
	if isDeclarationSite(n) {
		return true
	}
	parent := n.Parent()
	if parent == nil {
		return false
	}
	switch parent.Kind() {
	case "assignment_expression", "augmented_assignment_expression", "update_expression":
		return true
	default:
		return false
	}
}
