package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// utilityKinds are non-meaningful nodes SelectionRange skips over when
// building its chain (spec §4.7.15 "non-meaningful utility nodes are
// filtered out").
var utilityKinds = map[string]bool{
	"{": true, "}": true, "(": true, ")": true, "[": true, "]": true,
	",": true, ";": true, ":": true,
}

// SelectionRanges implements spec §4.7.15 for each requested position.
func SelectionRanges(root *sitter.Node, source []byte, positions []protocol.Position) []*protocol.SelectionRange {
	out := make([]*protocol.SelectionRange, len(positions))
	for i, pos := range positions {
		out[i] = selectionChain(root, source, pos)
	}
	return out
}

// selectionChain builds the narrowest-to-widest chain for pos: node at
// cursor first (chain[0]), ancestors up to the file root last.
func selectionChain(root *sitter.Node, source []byte, pos protocol.Position) *protocol.SelectionRange {
	if root == nil {
		return nil
	}
	offset := syntax.PositionToByte(source, pos)
	n := syntax.SmallestNodeAt(root, offset)
	if n == nil {
		return nil
	}

	var chain []*sitter.Node
	for cur := n; cur != nil; cur = cur.Parent() {
		if utilityKinds[cur.Kind()] {
			continue
		}
		chain = append(chain, cur)
	}
	if len(chain) == 0 {
		return nil
	}

	// Build outermost-first so each link's Parent points at its
	// already-built (wider) predecessor; the last link built (for
	// chain[0], the narrowest node) is the one returned.
	var link *protocol.SelectionRange
	for i := len(chain) - 1; i >= 0; i-- {
		link = &protocol.SelectionRange{
			Range:  syntax.NodeRange(source, chain[i]),
			Parent: link,
		}
	}
	return link
}
