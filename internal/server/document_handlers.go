package server

import (
	"ghostls/internal/contract"
	"ghostls/internal/documents"
	"ghostls/internal/log"
	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/rpc"
	"ghostls/internal/syntax"
	"ghostls/internal/uriutil"
)

// handleDidOpen implements textDocument/didOpen (spec §4.4 "open"): it
// inserts the document, reindexes it for workspace/symbol, marks the
// corresponding workspace file open if one was already scanned, and
// publishes diagnostics (spec §4.8 "after every didOpen and didChange").
func (s *Server) handleDidOpen(msg *rpc.Message) {
	var params protocol.DidOpenTextDocumentParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	uri := string(params.TextDocument.URI)

	doc, replaced, err := s.docs.Open(uri, uri, params.TextDocument.Version, params.TextDocument.Text)
	if err != nil {
		log.Error("didOpen %s: %v", uri, err)
		return
	}
	if replaced {
		log.Warn("didOpen for already-open document %s; replacing", uri)
	}

	if s.ws != nil {
		s.ws.MarkOpen(uri, true)
	} else {
		s.watcher.Register(uri, uriutil.URIToPath(uri))
	}

	s.index.Reindex(uri, doc.Root(), doc.Bytes())
	s.publishDiagnostics(uri, doc)
}

// handleDidChange implements textDocument/didChange (spec §4.4 "update").
func (s *Server) handleDidChange(msg *rpc.Message) {
	var params protocol.DidChangeTextDocumentParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	uri := string(params.TextDocument.URI)

	doc, err := s.docs.Update(uri, params.TextDocument.Version, params.ContentChanges)
	if err != nil {
		// spec §7: update on unknown URI -> InvalidParams. didChange is a
		// notification though, so there is no response to attach the
		// error to; log it instead.
		log.Error("didChange %s: %v", uri, err)
		return
	}

	s.index.Reindex(uri, doc.Root(), doc.Bytes())
	s.publishDiagnostics(uri, doc)
}

// handleDidSave implements textDocument/didSave. The document store is
// already current from didChange; didSave carries no mutation this
// design needs beyond an optional log line.
func (s *Server) handleDidSave(msg *rpc.Message) {
	var params protocol.DidSaveTextDocumentParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	log.Debug("saved %s", params.TextDocument.URI)
}

// handleDidClose implements textDocument/didClose (spec §4.4 "close",
// invariant I3 "Idempotent close" — documents.Store.Close already
// no-ops on an unknown URI).
func (s *Server) handleDidClose(msg *rpc.Message) {
	var params protocol.DidCloseTextDocumentParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	uri := string(params.TextDocument.URI)

	s.docs.Close(uri)
	s.index.Remove(uri)
	if s.ws != nil {
		s.ws.MarkOpen(uri, false)
	} else {
		s.watcher.Unregister(uri)
	}
}

// publishDiagnostics runs Diagnostics against doc's current tree (or the
// smart-contract analyzer when it has none) and emits the
// textDocument/publishDiagnostics notification (spec §4.8).
func (s *Server) publishDiagnostics(uri string, doc *documents.Document) {
	isContract := doc.LanguageKind() == syntax.LanguageSmartContract
	diags := providers.Diagnostics(doc.Root(), doc.Bytes(), isContract, contract.DefaultAnalyzer{})
	if diags == nil {
		diags = []protocol.Diagnostic{}
	}

	notif, err := rpc.NewNotification(protocol.MethodPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: diags,
	})
	if err != nil {
		log.Error("encoding diagnostics for %s: %v", uri, err)
		return
	}
	if err := s.transport.WriteResponse(notif); err != nil {
		log.Error("publishing diagnostics for %s: %v", uri, err)
	}
}
