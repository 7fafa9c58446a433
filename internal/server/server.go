// Package server implements the server loop (spec §4.8, component C8):
// the lifecycle state machine, JSON-RPC method dispatch table, and the
// per-method handlers that tie the document store, workspace, FFI store
// and analysis providers together. The loop is single-threaded and
// cooperative (spec §5): one message is read, processed to completion
// (including any publishDiagnostics it triggers), then the next is read.
package server

import (
	"errors"
	"io"

	"ghostls/internal/documents"
	"ghostls/internal/ffi"
	"ghostls/internal/log"
	"ghostls/internal/providers"
	"ghostls/internal/rpc"
	"ghostls/internal/uriutil"
	"ghostls/internal/watcher"
	"ghostls/internal/workspace"
)

// lifecycleState is one of the four states spec §4.8's table names.
type lifecycleState int

const (
	stateStarting lifecycleState = iota
	stateInitialized
	stateShutdownRequested
	stateExited
)

// Server owns every mutable piece of server-side state (spec §3 "Server
// state", §5 "Shared-resource policy"): the loop is the single implicit
// lock, so none of these fields need their own synchronization beyond
// what documents.Store and providers.WorkspaceIndex already provide for
// safety against a future concurrent caller.
type Server struct {
	transport *rpc.Transport
	ffiStore  *ffi.Store

	state    lifecycleState
	exitCode int

	docs    *documents.Store
	ws      *workspace.Workspace
	index   *providers.WorkspaceIndex
	watcher *watcher.Watcher

	rootDir string
}

// New builds a Server ready to run. ffiStore must already be loaded
// (spec §7: a load failure is fatal at startup, before the server even
// exists).
func New(transport *rpc.Transport, ffiStore *ffi.Store) *Server {
	return &Server{
		transport: transport,
		ffiStore:  ffiStore,
		state:     stateStarting,
		docs:      documents.NewStore(),
		index:     providers.NewWorkspaceIndex(),
		watcher:   watcher.New(),
	}
}

// ErrStdinClosed is returned from Run when stdin reaches EOF, one of the
// fatal conditions of spec §7.
var ErrStdinClosed = errors.New("server: stdin closed")

// Run processes messages until the client sends exit or stdin closes.
// It returns the process exit code spec §6 prescribes (0 after a clean
// shutdown, 1 otherwise) and, on a stdin EOF, ErrStdinClosed alongside
// exit code 1.
func (s *Server) Run() (int, error) {
	for {
		body, err := s.transport.ReadMessage()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Error("stdin closed, exiting")
				return 1, ErrStdinClosed
			}
			// Framing errors: log and keep reading (spec §7), except EOF
			// above which is the one fatal framing condition.
			log.Error("transport: %v", err)
			continue
		}

		msg, decodeErr := decodeMessage(body)
		if decodeErr != nil {
			s.writeError(nil, rpc.ParseError, "invalid JSON: %v", decodeErr)
			continue
		}

		s.handle(msg)

		if s.state == stateExited {
			return s.exitCode, nil
		}
	}
}

// RootDir returns the workspace root directory resolved at initialize
// time, or "" if the client sent no rootUri.
func (s *Server) RootDir() string { return s.rootDir }

// resolveRoot converts a client-supplied rootUri into a filesystem path
// and scans it into a Workspace (spec §4.5). Scan failures are logged
// and leave the workspace empty rather than aborting initialize — the
// server can still serve open documents with no project root.
func (s *Server) resolveRoot(rootURI *string) {
	if rootURI == nil || *rootURI == "" {
		return
	}
	s.rootDir = uriutil.URIToPath(*rootURI)
	ws, err := workspace.Scan(s.rootDir)
	if err != nil {
		log.Warn("workspace scan failed: %v", err)
		return
	}
	s.ws = ws
	for _, f := range ws.Files() {
		s.watcher.Register(f.URI, f.Path)
	}
}
