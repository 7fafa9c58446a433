package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Tree owns a parsed tree-sitter.Tree plus the parser that produced it,
// so grammar-specific parser state (e.g. queries) can be reused across
// incremental reparses of the same document. A Tree is owned exclusively
// by its Document (spec §3 "Ownership"); providers borrow its RootNode()
// for the duration of one request and must not retain it past a handler
// boundary, since Update/Close replace or free the underlying tree.
type Tree struct {
	parser *sitter.Parser
	tree   *sitter.Tree
	kind   LanguageKind
}

// NewTree parses source fresh (no previous tree to reuse) for a
// tree-bearing language kind. Returns nil, nil for LanguageSmartContract.
func NewTree(kind LanguageKind, source []byte) (*Tree, error) {
	if !kind.HasTree() {
		return nil, nil
	}
	p := NewParser(kind)
	t := p.Parse(source, nil)
	return &Tree{parser: p, tree: t, kind: kind}, nil
}

// Reparse applies edits to the current tree (informing tree-sitter which
// byte ranges changed) and reparses newSource, reusing unaffected
// subtrees. Call once per batch of changes, not once per change, so the
// parser can reuse as much of the old tree as possible.
func (t *Tree) Reparse(edits []sitter.InputEdit, newSource []byte) {
	for _, e := range edits {
		t.tree.Edit(&e)
	}
	old := t.tree
	t.tree = t.parser.Parse(newSource, old)
	old.Close()
}

// RootNode returns the tree's root node. The returned node is a borrow:
// valid only until the next Reparse or Close of this Tree.
func (t *Tree) RootNode() *sitter.Node {
	if t == nil || t.tree == nil {
		return nil
	}
	return t.tree.RootNode()
}

// Close releases the tree and its parser. Safe to call on a nil Tree.
func (t *Tree) Close() {
	if t == nil {
		return
	}
	if t.tree != nil {
		t.tree.Close()
	}
	if t.parser != nil {
		t.parser.Close()
	}
}
