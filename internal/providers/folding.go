package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// foldableKinds are block-like node kinds that fold as a region (spec
// §4.7.10 "block-like nodes").
var foldableKinds = map[string]bool{
	"function_declaration": true,
	"function_definition":  true,
	"method_definition":    true,
	"statement_block":      true,
	"if_statement":         true,
	"for_statement":        true,
	"while_statement":      true,
	"object":               true,
	"array":                true,
	"class_declaration":    true,
}

// FoldingRanges implements spec §4.7.10.
func FoldingRanges(root *sitter.Node, source []byte) []protocol.FoldingRange {
	if root == nil {
		return nil
	}
	var ranges []protocol.FoldingRange

	syntax.Walk(root, func(n *sitter.Node) bool {
		if foldableKinds[n.Kind()] {
			start := n.StartPosition()
			end := n.EndPosition()
			if end.Row > start.Row {
				ranges = append(ranges, protocol.FoldingRange{
					StartLine: uint32(start.Row),
					EndLine:   uint32(end.Row),
				})
			}
		}
		return true
	})

	ranges = append(ranges, commentRuns(root, source)...)
	ranges = append(ranges, importRuns(root, source)...)
	return ranges
}

// commentRuns groups consecutive top-level comment siblings into a
// single folding range of kind "comment".
func commentRuns(root *sitter.Node, source []byte) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	var runStart *sitter.Node
	var runEnd *sitter.Node

	flush := func() {
		if runStart != nil && runEnd != nil && runEnd.EndPosition().Row > runStart.StartPosition().Row {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: uint32(runStart.StartPosition().Row),
				EndLine:   uint32(runEnd.EndPosition().Row),
				Kind:      protocol.FoldingRangeKindComment,
			})
		}
		runStart, runEnd = nil, nil
	}

	count := root.ChildCount()
	for i := uint(0); i < count; i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		if child.Kind() == "comment" {
			if runStart == nil {
				runStart = child
			}
			runEnd = child
			continue
		}
		flush()
	}
	flush()
	return ranges
}

// importRuns groups consecutive top-level import statements into one
// folding range of kind "imports".
func importRuns(root *sitter.Node, source []byte) []protocol.FoldingRange {
	var ranges []protocol.FoldingRange
	var runStart *sitter.Node
	var runEnd *sitter.Node

	flush := func() {
		if runStart != nil && runEnd != nil && runEnd.EndPosition().Row > runStart.StartPosition().Row {
			ranges = append(ranges, protocol.FoldingRange{
				StartLine: uint32(runStart.StartPosition().Row),
				EndLine:   uint32(runEnd.EndPosition().Row),
				Kind:      protocol.FoldingRangeKindImports,
			})
		}
		runStart, runEnd = nil, nil
	}

	count := root.ChildCount()
	for i := uint(0); i < count; i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		if child.Kind() == "import_statement" {
			if runStart == nil {
				runStart = child
			}
			runEnd = child
			continue
		}
		flush()
	}
	flush()
	return ranges
}
