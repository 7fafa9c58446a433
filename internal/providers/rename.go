package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// PrepareRename implements spec §4.7.11's prepareRename: the range of
// the identifier token under the cursor, or nil if the cursor isn't on
// one.
func PrepareRename(root *sitter.Node, source []byte, pos protocol.Position) *protocol.Range {
	if root == nil {
		return nil
	}
	offset := syntax.PositionToByte(source, pos)
	ident := syntax.FindIdentifierAt(root, offset)
	if ident == nil {
		return nil
	}
	rng := syntax.NodeRange(source, ident)
	return &rng
}

// RenameTarget is one open document available to Rename's cross-document
// search.
type RenameTarget struct {
	URI    string
	Root   *sitter.Node
	Source []byte
}

// Rename implements spec §4.7.11: purely textual, no scope resolution —
// every identifier-kind node across every open document whose text
// equals the identifier at pos is rewritten to newName.
func Rename(targets []RenameTarget, currentURI string, pos protocol.Position, newName string) *protocol.WorkspaceEdit {
	var current *RenameTarget
	for i := range targets {
		if targets[i].URI == currentURI {
			current = &targets[i]
			break
		}
	}
	if current == nil || current.Root == nil {
		return nil
	}

	offset := syntax.PositionToByte(current.Source, pos)
	ident := syntax.FindIdentifierAt(current.Root, offset)
	if ident == nil {
		return nil
	}
	name := syntax.NodeText(current.Source, ident)

	changes := make(map[protocol.DocumentURI][]protocol.TextEdit)
	for _, t := range targets {
		if t.Root == nil {
			continue
		}
		var edits []protocol.TextEdit
		for _, n := range collectOccurrences(t.Root, t.Source, name) {
			edits = append(edits, protocol.TextEdit{
				Range:   syntax.NodeRange(t.Source, n),
				NewText: newName,
			})
		}
		if len(edits) > 0 {
			changes[protocol.DocumentURI(t.URI)] = edits
		}
	}

	if len(changes) == 0 {
		return nil
	}
	return &protocol.WorkspaceEdit{Changes: changes}
}
