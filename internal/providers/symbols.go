package providers

import (
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// symbolKindFor maps a declaration node kind to its SymbolKind (spec
// §4.7.6 "function, variable/let/const, class, struct, enum, interface,
// method").
func symbolKindFor(kind string) (protocol.SymbolKind, bool) {
	switch kind {
	case "function_declaration", "function_definition":
		return protocol.SymbolKindFunction, true
	case "method_definition":
		return protocol.SymbolKindMethod, true
	case "variable_declarator", "lexical_declaration", "variable_declaration":
		return protocol.SymbolKindVariable, true
	case "class_declaration":
		return protocol.SymbolKindClass, true
	case "struct_declaration":
		return protocol.SymbolKindStruct, true
	case "enum_declaration":
		return protocol.SymbolKindEnum, true
	case "interface_declaration":
		return protocol.SymbolKindInterface, true
	default:
		return 0, false
	}
}

// DocumentSymbols implements spec §4.7.6: a tree walk picking declaration
// nodes, nesting children inside their enclosing declaration.
func DocumentSymbols(root *sitter.Node, source []byte) []protocol.DocumentSymbol {
	if root == nil {
		return nil
	}
	return documentSymbolChildren(root, source)
}

// documentSymbolChildren walks n's subtree, collecting declaration nodes
// as DocumentSymbols; it does not descend into an already-collected
// declaration's own subtree when looking for siblings (declarations
// found there become that symbol's Children instead).
func documentSymbolChildren(n *sitter.Node, source []byte) []protocol.DocumentSymbol {
	var out []protocol.DocumentSymbol
	count := n.ChildCount()
	for i := uint(0); i < count; i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if kind, ok := symbolKindFor(child.Kind()); ok {
			name := declName(child, source)
			if name == "" {
				continue
			}
			sym := protocol.DocumentSymbol{
				Name:           name,
				Kind:           kind,
				Range:          syntax.NodeRange(source, child),
				SelectionRange: nameRange(child, source),
				Children:       documentSymbolChildren(child, source),
			}
			out = append(out, sym)
			continue
		}
		out = append(out, documentSymbolChildren(child, source)...)
	}
	return out
}

// nameRange returns the range of a declaration's name node, falling back
// to the whole declaration's range if no name child can be found.
func nameRange(n *sitter.Node, source []byte) protocol.Range {
	if name := n.ChildByFieldName("name"); name != nil {
		return syntax.NodeRange(source, name)
	}
	var found *sitter.Node
	syntax.Walk(n, func(c *sitter.Node) bool {
		if found != nil {
			return false
		}
		if syntax.IsIdentifier(c.Kind()) {
			found = c
			return false
		}
		return true
	})
	if found != nil {
		return syntax.NodeRange(source, found)
	}
	return syntax.NodeRange(source, n)
}

// WorkspaceIndex maintains the URI → symbol-list mapping of spec §4.7.7,
// re-indexed on every didOpen/didChange.
type WorkspaceIndex struct {
	mu      sync.RWMutex
	symbols map[string][]protocol.SymbolInformation
}

// NewWorkspaceIndex creates an empty index.
func NewWorkspaceIndex() *WorkspaceIndex {
	return &WorkspaceIndex{symbols: make(map[string][]protocol.SymbolInformation)}
}

// Reindex replaces uri's entry with symbols extracted from root/source.
func (w *WorkspaceIndex) Reindex(uri string, root *sitter.Node, source []byte) {
	flat := flattenSymbols(uri, DocumentSymbols(root, source))
	w.mu.Lock()
	defer w.mu.Unlock()
	w.symbols[uri] = flat
}

// Remove drops uri's entry (called on didClose).
func (w *WorkspaceIndex) Remove(uri string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.symbols, uri)
}

func flattenSymbols(uri string, symbols []protocol.DocumentSymbol) []protocol.SymbolInformation {
	var out []protocol.SymbolInformation
	var walk func([]protocol.DocumentSymbol)
	walk = func(syms []protocol.DocumentSymbol) {
		for _, s := range syms {
			out = append(out, protocol.SymbolInformation{
				Name: s.Name,
				Kind: s.Kind,
				Location: protocol.Location{
					URI:   protocol.DocumentURI(uri),
					Range: s.Range,
				},
			})
			walk(s.Children)
		}
	}
	walk(symbols)
	return out
}

// Query implements spec §4.7.7's subsequence fuzzy match, case
// insensitive; an empty query matches everything.
func (w *WorkspaceIndex) Query(query string) []protocol.SymbolInformation {
	lowerQuery := strings.ToLower(query)
	w.mu.RLock()
	defer w.mu.RUnlock()

	var out []protocol.SymbolInformation
	for _, syms := range w.symbols {
		for _, s := range syms {
			if isSubsequence(lowerQuery, strings.ToLower(s.Name)) {
				out = append(out, s)
			}
		}
	}
	return out
}

// isSubsequence reports whether every character of query appears in name
// in order (not necessarily contiguous).
func isSubsequence(query, name string) bool {
	if query == "" {
		return true
	}
	qi := 0
	for i := 0; i < len(name) && qi < len(query); i++ {
		if name[i] == query[qi] {
			qi++
		}
	}
	return qi == len(query)
}
