package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// statementKinds are the node kinds eligible for the missing-semicolon
// quick fix (spec §4.7.12).
var statementKinds = map[string]bool{
	"expression_statement": true,
	"return_statement":     true,
	"variable_declaration": true,
	"lexical_declaration":  true,
	"break_statement":      true,
	"continue_statement":   true,
}

// CodeActions implements spec §4.7.12: a quick-fix for missing
// semicolons on erroring statement nodes within rng, plus two
// always-present refactor stubs with empty edits.
func CodeActions(uri string, root *sitter.Node, source []byte, rng protocol.Range) []protocol.CodeAction {
	var actions []protocol.CodeAction

	if root != nil {
		syntax.Walk(root, func(n *sitter.Node) bool {
			if !statementKinds[n.Kind()] {
				return true
			}
			nodeRange := syntax.NodeRange(source, n)
			if !rng.ContainsRange(nodeRange) && !nodeRange.ContainsRange(rng) {
				return true
			}
			if !syntax.HasError(n) {
				return true
			}
			if endsWithSemicolon(source, n) {
				return true
			}
			actions = append(actions, protocol.CodeAction{
				Title: "Insert missing semicolon",
				Kind:  protocol.CodeActionKindQuickFix,
				Edit: &protocol.WorkspaceEdit{
					Changes: map[protocol.DocumentURI][]protocol.TextEdit{
						protocol.DocumentURI(uri): {{Range: protocol.Range{Start: nodeRange.End, End: nodeRange.End}, NewText: ";"}},
					},
				},
				IsPreferred: true,
			})
			return true
		})
	}

	actions = append(actions,
		protocol.CodeAction{Title: "Extract function", Kind: protocol.CodeActionKindRefactorExtract},
		protocol.CodeAction{Title: "Inline variable", Kind: protocol.CodeActionKindRefactorInline},
	)
	return actions
}

func endsWithSemicolon(source []byte, n *sitter.Node) bool {
	end := n.EndByte()
	if end == 0 || end > uint(len(source)) {
		return false
	}
	return source[end-1] == ';'
}
