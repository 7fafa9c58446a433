package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/contract"
	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// Diagnostics implements spec §4.7.1. For a smart-contract document
// (root == nil), it defers entirely to analyzer plus the lint passes;
// otherwise it walks the tree for ERROR/MISSING nodes.
func Diagnostics(root *sitter.Node, source []byte, isContract bool, analyzer contract.SemanticAnalyzer) []protocol.Diagnostic {
	if isContract {
		return contractDiagnostics(string(source), analyzer)
	}
	return treeDiagnostics(root, source)
}

func treeDiagnostics(root *sitter.Node, source []byte) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if root == nil {
		return diags
	}

	seen := make(map[protocol.Position]bool)
	syntax.Walk(root, func(n *sitter.Node) bool {
		if !n.IsError() && !n.IsMissing() {
			return true
		}
		rng := syntax.NodeRange(source, n)
		if seen[rng.Start] {
			return true
		}
		seen[rng.Start] = true

		message := "syntax error"
		if n.IsMissing() {
			message = "missing " + n.Kind()
		}
		diags = append(diags, protocol.Diagnostic{
			Range:    rng,
			Severity: protocol.SeverityError,
			Source:   "ghostls",
			Message:  message,
		})
		return true
	})
	return diags
}

func contractDiagnostics(text string, analyzer contract.SemanticAnalyzer) []protocol.Diagnostic {
	diags := []protocol.Diagnostic{}
	if analyzer == nil {
		analyzer = contract.DefaultAnalyzer{}
	}

	seen := make(map[protocol.Position]bool)
	add := func(issues []contract.Issue) {
		for _, iss := range issues {
			pos := protocol.Position{Line: uint32(iss.Line), Character: uint32(iss.Column)}
			if seen[pos] {
				continue
			}
			seen[pos] = true
			diags = append(diags, protocol.Diagnostic{
				Range:    protocol.Range{Start: pos, End: pos},
				Severity: iss.Severity,
				Code:     iss.Code,
				Source:   "ghostls",
				Message:  iss.Message,
			})
		}
	}

	add(analyzer.Analyze(text))
	add(contract.Lints(text))
	return diags
}
