// Package documents implements the document store (spec §4.4, component
// C4): the per-URI record of text, version, language kind and syntax
// tree, kept fresh under open/update/close per invariant D1.
package documents

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/syntax"
)

// Document is one open text document tracked by the server.
type Document struct {
	uri     string
	kind    syntax.LanguageKind
	version int32
	text    string
	tree    *syntax.Tree
	lines   syntax.LineStarts
}

// URI returns the document's unique key.
func (d *Document) URI() string { return d.uri }

// LanguageKind returns the document's language classification.
func (d *Document) LanguageKind() syntax.LanguageKind { return d.kind }

// Version returns the client-assigned version.
func (d *Document) Version() int32 { return d.version }

// Text returns the document's full current text.
func (d *Document) Text() string { return d.text }

// Tree returns the document's current syntax tree, or nil for a
// smart-contract document (which has none, per spec §4.4).
func (d *Document) Tree() *syntax.Tree { return d.tree }

// Root returns the document's root syntax node, or nil.
func (d *Document) Root() *sitter.Node {
	if d.tree == nil {
		return nil
	}
	return d.tree.RootNode()
}

// Bytes returns the document's text as a byte slice for node-range and
// node-text conversions, which operate on []byte.
func (d *Document) Bytes() []byte { return []byte(d.text) }
