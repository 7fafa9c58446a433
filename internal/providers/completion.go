package providers

import (
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/builtins"
	"ghostls/internal/documents"
	"ghostls/internal/ffi"
	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// isIdentifierByte reports whether b can appear in an identifier, used
// by the textual namespace scan below.
func isIdentifierByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// TriggerCharacters are the completion trigger characters advertised in
// ServerCapabilities (spec §4.7.3).
var TriggerCharacters = []string{".", ":"}

// Completion implements spec §4.7.3. doc may have a nil tree (smart
// contract), in which case only the general keyword/builtin context
// applies.
func Completion(doc *documents.Document, pos protocol.Position, store *ffi.Store) *protocol.CompletionList {
	source := doc.Bytes()
	root := doc.Root()

	if root != nil {
		if ns, ok := memberAccessContext(root, source, pos); ok && store.IsNamespace(ns) {
			return completionForNamespace(store, ns)
		}
	}

	items := generalCompletionItems(store, doc)
	return &protocol.CompletionList{IsIncomplete: false, Items: items}
}

// memberAccessContext reports the namespace identifier when pos
// immediately follows `.`/`:` on a known-shaped member expression (spec
// §4.7.3 "Member access"). Detection is textual (design note "Member
// expression namespace detection is textual") rather than tree-based,
// since the trigger character is often typed before the grammar has
// produced a complete member_expression node.
func memberAccessContext(root *sitter.Node, source []byte, pos protocol.Position) (string, bool) {
	offset := int(syntax.PositionToByte(source, pos))
	if offset == 0 || offset > len(source) {
		return "", false
	}
	i := offset - 1
	if source[i] != '.' && source[i] != ':' {
		return "", false
	}
	end := i
	start := end
	for start > 0 && isIdentifierByte(source[start-1]) {
		start--
	}
	if start == end {
		return "", false
	}
	return string(source[start:end]), true
}

func completionForNamespace(store *ffi.Store, ns string) *protocol.CompletionList {
	fns := store.Functions(ns)
	items := make([]protocol.CompletionItem, 0, len(fns))
	for _, fn := range fns {
		doc := fn.Description
		items = append(items, protocol.CompletionItem{
			Label:         fn.Name,
			Kind:          protocol.CompletionItemKindFunction,
			Detail:        fn.Signature,
			Documentation: &protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: doc},
			InsertText:    fn.Name,
			SortText:      fn.Name,
		})
	}
	return &protocol.CompletionList{IsIncomplete: false, Items: items}
}

// generalCompletionItems implements the "General" context: keywords,
// built-in functions, FFI globals (when the document supports shell
// FFI), and in-scope local identifiers.
func generalCompletionItems(store *ffi.Store, doc *documents.Document) []protocol.CompletionItem {
	var items []protocol.CompletionItem

	for _, kw := range builtins.Keywords {
		items = append(items, protocol.CompletionItem{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw,
			SortText:   "0_" + kw,
		})
	}

	for _, name := range sortedStrings(builtins.Names()) {
		fn := builtins.Lookup(name)
		items = append(items, protocol.CompletionItem{
			Label:      fn.Name,
			Kind:       protocol.CompletionItemKindFunction,
			Detail:     fn.Signature,
			InsertText: fn.Name,
			SortText:   "1_" + fn.Name,
		})
	}

	if isShellDocument(doc) {
		for _, ns := range store.Namespaces() {
			for _, g := range store.Globals(ns) {
				items = append(items, protocol.CompletionItem{
					Label:      g.Name,
					Kind:       protocol.CompletionItemKindVariable,
					Detail:     g.Type,
					InsertText: g.Name,
					SortText:   "2_" + g.Name,
				})
			}
		}
	}

	if root := doc.Root(); root != nil {
		for _, name := range localIdentifiers(root, doc.Bytes()) {
			items = append(items, protocol.CompletionItem{
				Label:      name,
				Kind:       protocol.CompletionItemKindVariable,
				InsertText: name,
				SortText:   "3_" + name,
			})
		}
	}

	return items
}

// localIdentifiers collects the names of variable/let/const declarations
// by walking the whole tree. Deduplicated, sorted. The cursor position is
// not consulted: declarations in every scope of the document are
// returned, not only those in the function bodies enclosing the cursor.
func localIdentifiers(root *sitter.Node, source []byte) []string {
	seen := make(map[string]bool)
	syntax.Walk(root, func(n *sitter.Node) bool {
		switch n.Kind() {
		case "variable_declarator", "lexical_declaration", "variable_declaration":
			name := n.ChildByFieldName("name")
			if name != nil && syntax.IsIdentifier(name.Kind()) {
				seen[syntax.NodeText(source, name)] = true
			}
		}
		return true
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func sortedStrings(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

// isShellDocument reports whether doc supports shell FFI globals
// directly (spec §4.7.3 "include FFI globals when the current document
// supports shell FFI").
func isShellDocument(doc *documents.Document) bool {
	switch doc.LanguageKind() {
	case syntax.LanguageShellScript, syntax.LanguageShellConfig:
		return true
	default:
		return false
	}
}
