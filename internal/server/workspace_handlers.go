package server

import (
	"os"

	"ghostls/internal/documents"
	"ghostls/internal/log"
	"ghostls/internal/protocol"
	"ghostls/internal/rpc"
	"ghostls/internal/syntax"
	"ghostls/internal/uriutil"
)

// handleDidChangeConfiguration implements workspace/didChangeConfiguration
// (spec §6 "Logged; config parsed best-effort"). This design keeps all
// configuration in .ghostls.yaml at the workspace root rather than in
// client-pushed settings, so the payload is logged and otherwise dropped.
func (s *Server) handleDidChangeConfiguration(msg *rpc.Message) {
	var params protocol.DidChangeConfigurationParams
	if !s.unmarshalParams(msg, &params) {
		return
	}
	log.Debug("didChangeConfiguration: %s", string(params.Settings))
}

// handleDidChangeWatchedFiles implements workspace/didChangeWatchedFiles
// (spec §6, §4.5). Created/changed files are re-scanned into the
// workspace index when they're not already open (an open document is
// kept current by didChange instead); deleted files are dropped from
// both the workspace and the index.
func (s *Server) handleDidChangeWatchedFiles(msg *rpc.Message) {
	var params protocol.DidChangeWatchedFilesParams
	if !s.unmarshalParams(msg, &params) {
		return
	}

	for _, ev := range params.Changes {
		uri := string(ev.URI)
		if s.docs.Get(uri) != nil {
			// The client keeps open documents current via didChange; a
			// watched-file event for one is redundant at best and stale
			// disk content at worst.
			continue
		}

		switch ev.Type {
		case protocol.FileChangeDeleted:
			s.index.Remove(uri)
			if s.ws != nil {
				delete(s.ws.Files(), uri)
			}
			s.watcher.Unregister(uri)

		case protocol.FileChangeCreated, protocol.FileChangeChanged:
			s.reindexFromDisk(uri)
		}
	}
}

// reindexFromDisk loads uri's content from disk (it is not open in the
// client) and reindexes it for workspace/symbol, used when a watched file
// is created or changed outside the editor.
func (s *Server) reindexFromDisk(uri string) {
	path := uriutil.URIToPath(uri)
	text, err := os.ReadFile(path)
	if err != nil {
		log.Warn("didChangeWatchedFiles: reading %s: %v", uri, err)
		return
	}

	kind := documents.DetectLanguageKind(path)
	tree, err := syntax.NewTree(kind, text)
	if err != nil {
		log.Warn("didChangeWatchedFiles: parsing %s: %v", uri, err)
		return
	}
	defer tree.Close()

	s.index.Reindex(uri, tree.RootNode(), text)
}
