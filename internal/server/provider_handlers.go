package server

import (
	"ghostls/internal/documents"
	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/rpc"
)

// docOrNotFound fetches the document for a TextDocumentIdentifier,
// writing a null result if it isn't open (a request against a document
// the client never opened, or already closed, gets an empty/nil answer
// rather than an error — consistent with "provider failures become
// InternalError" being reserved for actual handler faults).
func (s *Server) docOrNotFound(msg *rpc.Message, uri protocol.DocumentURI) (*documents.Document, bool) {
	doc := s.docs.Get(string(uri))
	if doc == nil {
		s.writeResult(msg.ID, nil)
		return nil, false
	}
	return doc, true
}

func (s *Server) handleHover(msg *rpc.Message) {
	var params protocol.TextDocumentPositionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	hover, err := providers.Hover(doc.Root(), doc.Bytes(), params.Position, s.ffiStore, doc)
	if err != nil {
		s.writeError(msg.ID, rpc.InternalError, "hover: %v", err)
		return
	}
	s.writeResult(msg.ID, hover)
}

func (s *Server) handleDefinition(msg *rpc.Message) {
	var params protocol.TextDocumentPositionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	loc := providers.DefinitionAcrossFiles(s.docSourcesFirst(doc), params.Position)
	s.writeResult(msg.ID, loc)
}

func (s *Server) handleReferences(msg *rpc.Message) {
	var params protocol.ReferenceParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	locs := providers.References(string(params.TextDocument.URI), doc.Root(), doc.Bytes(), params.Position, params.Context.IncludeDeclaration)
	if locs == nil {
		locs = []protocol.Location{}
	}
	s.writeResult(msg.ID, locs)
}

func (s *Server) handleDocumentSymbol(msg *rpc.Message) {
	var params protocol.DocumentSymbolParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	syms := providers.DocumentSymbols(doc.Root(), doc.Bytes())
	if syms == nil {
		syms = []protocol.DocumentSymbol{}
	}
	s.writeResult(msg.ID, syms)
}

func (s *Server) handleCompletion(msg *rpc.Message) {
	var params protocol.TextDocumentPositionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	s.writeResult(msg.ID, providers.Completion(doc, params.Position, s.ffiStore))
}

func (s *Server) handleSemanticTokensFull(msg *rpc.Message) {
	var params protocol.SemanticTokensParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	s.writeResult(msg.ID, providers.SemanticTokensFull(doc.Root(), doc.Bytes()))
}

func (s *Server) handleDocumentHighlight(msg *rpc.Message) {
	var params protocol.TextDocumentPositionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	hl := providers.DocumentHighlight(doc.Root(), doc.Bytes(), params.Position)
	if hl == nil {
		hl = []protocol.DocumentHighlight{}
	}
	s.writeResult(msg.ID, hl)
}

func (s *Server) handleFoldingRange(msg *rpc.Message) {
	var params protocol.FoldingRangeParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	ranges := providers.FoldingRanges(doc.Root(), doc.Bytes())
	if ranges == nil {
		ranges = []protocol.FoldingRange{}
	}
	s.writeResult(msg.ID, ranges)
}

func (s *Server) handlePrepareRename(msg *rpc.Message) {
	var params protocol.TextDocumentPositionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	s.writeResult(msg.ID, providers.PrepareRename(doc.Root(), doc.Bytes(), params.Position))
}

func (s *Server) handleRename(msg *rpc.Message) {
	var params protocol.RenameParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	currentURI := string(params.TextDocument.URI)
	if s.docs.Get(currentURI) == nil {
		s.writeResult(msg.ID, nil)
		return
	}

	var targets []providers.RenameTarget
	for _, d := range s.docs.All() {
		targets = append(targets, providers.RenameTarget{URI: d.URI(), Root: d.Root(), Source: d.Bytes()})
	}
	edit := providers.Rename(targets, currentURI, params.Position, params.NewName)
	s.writeResult(msg.ID, edit)
}

func (s *Server) handleCodeAction(msg *rpc.Message) {
	var params protocol.CodeActionParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	actions := providers.CodeActions(string(params.TextDocument.URI), doc.Root(), doc.Bytes(), params.Range)
	s.writeResult(msg.ID, actions)
}

func (s *Server) handleSignatureHelp(msg *rpc.Message) {
	var params protocol.SignatureHelpParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	s.writeResult(msg.ID, providers.SignatureHelp(doc.Root(), doc.Bytes(), params.Position, s.ffiStore))
}

func (s *Server) handleInlayHint(msg *rpc.Message) {
	var params protocol.InlayHintParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	hints := providers.InlayHints(doc.Root(), doc.Bytes(), params.Range)
	if hints == nil {
		hints = []protocol.InlayHint{}
	}
	s.writeResult(msg.ID, hints)
}

func (s *Server) handleSelectionRange(msg *rpc.Message) {
	var params protocol.SelectionRangeParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	doc, ok := s.docOrNotFound(msg, params.TextDocument.URI)
	if !ok {
		return
	}
	s.writeResult(msg.ID, providers.SelectionRanges(doc.Root(), doc.Bytes(), params.Positions))
}

func (s *Server) handleWorkspaceSymbol(msg *rpc.Message) {
	var params protocol.WorkspaceSymbolParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	results := s.index.Query(params.Query)
	if results == nil {
		results = []protocol.SymbolInformation{}
	}
	s.writeResult(msg.ID, results)
}

// docSourcesFirst builds the []DocSource slice DefinitionAcrossFiles
// expects, with current listed first (spec §4.7.4 "current-file-first
// ordering") followed by every other open document.
func (s *Server) docSourcesFirst(current *documents.Document) []providers.DocSource {
	sources := []providers.DocSource{{URI: current.URI(), Root: current.Root(), Source: current.Bytes()}}
	for _, d := range s.docs.All() {
		if d.URI() == current.URI() {
			continue
		}
		sources = append(sources, providers.DocSource{URI: d.URI(), Root: d.Root(), Source: d.Bytes()})
	}
	return sources
}
