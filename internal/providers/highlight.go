package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// DocumentHighlight implements spec §4.7.9: same collection as
// References, each hit labelled Write or Read.
func DocumentHighlight(root *sitter.Node, source []byte, pos protocol.Position) []protocol.DocumentHighlight {
	offset := syntax.PositionToByte(source, pos)
	ident := syntax.FindIdentifierAt(root, offset)
	if ident == nil {
		return nil
	}
	name := syntax.NodeText(source, ident)

	var highlights []protocol.DocumentHighlight
	for _, n := range collectOccurrences(root, source, name) {
		kind := protocol.DocumentHighlightKindRead
		if isWriteSite(n) {
			kind = protocol.DocumentHighlightKindWrite
		}
		highlights = append(highlights, protocol.DocumentHighlight{
			Range: syntax.NodeRange(source, n),
			Kind:  kind,
		})
	}
	return highlights
}
