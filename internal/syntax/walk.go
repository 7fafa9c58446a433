package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/position"
	"ghostls/internal/protocol"
)

// PointToPosition converts a tree-sitter row/column point into an LSP
// Position, converting the column from the grammar's byte measurement to
// UTF-16 code units as spec §3 requires. source is the full document
// text, used to find the line containing the point.
func PointToPosition(source []byte, pt sitter.Point) protocol.Position {
	lineStart := 0
	row := 0
	for i := 0; i < len(source) && row < int(pt.Row); i++ {
		if source[i] == '\n' {
			row++
			lineStart = i + 1
		}
	}
	lineEnd := lineStart
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	line := string(source[lineStart:lineEnd])
	byteCol := int(pt.Column)
	if byteCol > len(line) {
		byteCol = len(line)
	}
	return protocol.Position{
		Line:      uint32(pt.Row),
		Character: uint32(position.ByteOffsetToUTF16(line, byteCol)),
	}
}

// NodeRange converts a node's point range to an LSP Range.
func NodeRange(source []byte, n *sitter.Node) protocol.Range {
	if n == nil {
		return protocol.Range{}
	}
	return protocol.Range{
		Start: PointToPosition(source, n.StartPosition()),
		End:   PointToPosition(source, n.EndPosition()),
	}
}

// NodeText returns the source slice spanned by n.
func NodeText(source []byte, n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(source[n.StartByte():n.EndByte()])
}

// Walk calls visit for n and every descendant, depth-first pre-order.
// visit returns false to skip n's children.
func Walk(n *sitter.Node, visit func(n *sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		Walk(n.Child(i), visit)
	}
}

// SmallestNodeAt descends from root to find the smallest (most deeply
// nested) node whose byte range contains byteOffset, per spec §4.7.2
// step 1 ("Descend to the smallest node containing the position").
func SmallestNodeAt(root *sitter.Node, byteOffset uint) *sitter.Node {
	if root == nil || byteOffset < root.StartByte() || byteOffset > root.EndByte() {
		return nil
	}
	best := root
	count := root.ChildCount()
	for i := uint(0); i < count; i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		if byteOffset >= child.StartByte() && byteOffset <= child.EndByte() {
			if found := SmallestNodeAt(child, byteOffset); found != nil {
				best = found
			}
		}
	}
	return best
}

// PositionToByte converts an LSP position to a byte offset in source,
// scanning source once; used by request handlers that only need a single
// conversion (no per-document LineStarts cache is worth building for a
// one-shot hover/definition/completion lookup).
func PositionToByte(source []byte, pos protocol.Position) uint {
	line := 0
	i := 0
	for i < len(source) && line < int(pos.Line) {
		if source[i] == '\n' {
			line++
		}
		i++
	}
	lineStart := i
	lineEnd := lineStart
	for lineEnd < len(source) && source[lineEnd] != '\n' {
		lineEnd++
	}
	lineText := string(source[lineStart:lineEnd])
	return uint(lineStart + position.UTF16ToByteOffset(lineText, int(pos.Character)))
}

// IsIdentifier reports whether a node kind names an identifier-like leaf.
// The grammar's exact terminal names vary (identifier, property_identifier,
// shorthand_property_identifier, etc.); providers that need "the
// identifier at the cursor" match against this set rather than a single
// kind string.
func IsIdentifier(kind string) bool {
	switch kind {
	case "identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern":
		return true
	default:
		return false
	}
}

// FindIdentifierAt returns the identifier node at byteOffset, or nil if
// the smallest enclosing node isn't an identifier.
func FindIdentifierAt(root *sitter.Node, byteOffset uint) *sitter.Node {
	n := SmallestNodeAt(root, byteOffset)
	if n != nil && IsIdentifier(n.Kind()) {
		return n
	}
	return nil
}

// HasError reports whether n is itself an ERROR/MISSING node or contains
// one, without allocating a result slice (used by quick-fix code actions
// that only need a yes/no answer).
func HasError(n *sitter.Node) bool {
	found := false
	Walk(n, func(n *sitter.Node) bool {
		if found {
			return false
		}
		if n.IsError() || n.IsMissing() {
			found = true
			return false
		}
		return true
	})
	return found
}
