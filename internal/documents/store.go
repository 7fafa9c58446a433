package documents

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// Store is the server's exclusive owner of every open Document (spec §3
// "Ownership"). Lookups are O(1) by URI (invariant D2).
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewStore creates an empty document store.
func NewStore() *Store {
	return &Store{docs: make(map[string]*Document)}
}

// Get returns a read-only borrow of the document at uri, or nil.
func (s *Store) Get(uri string) *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri]
}

// All returns every open document. The returned slice is a snapshot;
// mutating the store afterward does not affect it.
func (s *Store) All() []*Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Document, 0, len(s.docs))
	for _, d := range s.docs {
		out = append(out, d)
	}
	return out
}

// Open inserts a new document, parsing its full text. If uri is already
// open, the previous document (and its tree) is replaced and a warning
// is left to the caller to log — Store itself stays silent so it has no
// logging dependency.
func (s *Store) Open(uri, filename string, version int32, text string) (*Document, replaced bool, err error) {
	kind := DetectLanguageKind(filename)
	tree, err := syntax.NewTree(kind, []byte(text))
	if err != nil {
		return nil, false, fmt.Errorf("documents: parsing %s: %w", uri, err)
	}

	doc := &Document{
		uri:     uri,
		kind:    kind,
		version: version,
		text:    text,
		tree:    tree,
		lines:   syntax.ComputeLineStarts(text),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, existed := s.docs[uri]
	if existed {
		prev.tree.Close()
	}
	s.docs[uri] = doc
	return doc, existed, nil
}

// Update applies content changes to the document at uri, preferring an
// incremental reparse when a change carries a Range, and falling back to
// a full reparse otherwise (spec §4.4 operation "update", §4.6). The new
// version is recorded atomically with the new tree so invariant D1 holds
// at exit. Returns an error (InvalidParams at the dispatch boundary) if
// uri is not open.
func (s *Store) Update(uri string, version int32, changes []protocol.TextDocumentContentChangeEvent) (*Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[uri]
	if !ok {
		return nil, fmt.Errorf("documents: update on unknown URI %s", uri)
	}

	fullReparseNeeded := false
	edits := make([]sitter.InputEdit, 0, len(changes))
	text := doc.text
	lines := doc.lines

	for _, change := range changes {
		if change.Range == nil {
			text = change.Text
			fullReparseNeeded = true
			edits = edits[:0]
			lines = syntax.ComputeLineStarts(text)
			continue
		}

		edit := syntax.BuildInputEdit(text, lines, change)
		text = syntax.ApplyTextEdit(text, int(edit.StartByte), int(edit.OldEndByte), change.Text)
		lines = syntax.ComputeLineStarts(text)
		if !fullReparseNeeded {
			edits = append(edits, edit)
		}
	}

	if doc.tree != nil {
		if fullReparseNeeded {
			newTree, err := syntax.NewTree(doc.kind, []byte(text))
			if err != nil {
				return nil, fmt.Errorf("documents: reparsing %s: %w", uri, err)
			}
			doc.tree.Close()
			doc.tree = newTree
		} else {
			doc.tree.Reparse(edits, []byte(text))
		}
	}

	doc.text = text
	doc.lines = lines
	doc.version = version
	return doc, nil
}

// Close drops the document at uri and releases its tree. Closing an
// already-closed (or never-opened) URI is a no-op (invariant I3).
func (s *Store) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.docs[uri]
	if !ok {
		return
	}
	doc.tree.Close()
	delete(s.docs, uri)
}

// Count returns the number of currently open documents.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
