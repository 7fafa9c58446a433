package server

import (
	"encoding/json"
	"fmt"

	"ghostls/internal/log"
	"ghostls/internal/protocol"
	"ghostls/internal/rpc"
)

// decodeMessage unmarshals a raw message body into an rpc.Message. A
// malformed envelope is a ParseError at the JSON-RPC layer (spec §7).
func decodeMessage(body []byte) (*rpc.Message, error) {
	var msg rpc.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// handle routes one decoded message through the lifecycle state machine
// (spec §4.8's table) and writes a response if the message was a
// request. Panics from a handler are recovered and reported as
// InternalError so one bad request never takes the whole server down
// (spec §7 "Provider failures").
func (s *Server) handle(msg *rpc.Message) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("panic handling %s: %v", msg.Method, r)
			if msg.IsRequest() {
				s.writeError(msg.ID, rpc.InternalError, "internal error: %v", r)
			}
		}
	}()

	switch {
	case msg.IsRequest():
		s.handleRequest(msg)
	case msg.IsNotification():
		s.handleNotification(msg)
	default:
		// A message with neither ID+Method (request/notification) nor a
		// bare response shape we sent ourselves; this server never issues
		// client-bound requests, so there is nothing to correlate it to.
		log.Warn("ignoring malformed message")
	}
}

func (s *Server) handleRequest(msg *rpc.Message) {
	switch s.state {
	case stateStarting:
		if msg.Method == protocol.MethodInitialize {
			s.doInitialize(msg)
			return
		}
		s.writeError(msg.ID, rpc.ServerNotInitialized, "server not initialized")

	case stateInitialized:
		if msg.Method == protocol.MethodInitialize {
			s.writeError(msg.ID, rpc.InvalidRequest, "already initialized")
			return
		}
		if msg.Method == protocol.MethodShutdown {
			s.state = stateShutdownRequested
			s.writeResult(msg.ID, struct{}{})
			return
		}
		s.dispatchRequest(msg)

	case stateShutdownRequested:
		if msg.Method == protocol.MethodShutdown {
			s.writeResult(msg.ID, struct{}{})
			return
		}
		s.writeError(msg.ID, rpc.InvalidRequest, "shutdown already requested")

	case stateExited:
		// No further traffic is expected once exited; nothing to reply to.
	}
}

func (s *Server) handleNotification(msg *rpc.Message) {
	switch s.state {
	case stateStarting:
		if msg.Method == protocol.MethodExit {
			s.state = stateExited
			s.exitCode = 1
		}
		// Every other notification is ignored before initialized.

	case stateInitialized:
		switch msg.Method {
		case protocol.MethodInitialized:
			// No-op: request processing was already unlocked by the
			// initialize reply.
		case protocol.MethodExit:
			s.state = stateExited
			s.exitCode = 1
		default:
			s.dispatchNotification(msg)
		}

	case stateShutdownRequested:
		if msg.Method == protocol.MethodExit {
			s.state = stateExited
			s.exitCode = 0
		}

	case stateExited:
	}
}

// writeResult marshals and sends a successful response.
func (s *Server) writeResult(id *rpc.ID, result any) {
	if id == nil {
		return
	}
	resp, err := rpc.NewResponse(*id, result)
	if err != nil {
		s.writeError(id, rpc.InternalError, "encoding result: %v", err)
		return
	}
	if err := s.transport.WriteResponse(resp); err != nil {
		log.Error("writing response: %v", err)
	}
}

// writeError sends a JSON-RPC error response. id may be nil when the
// failure happened before a request ID could be parsed out (e.g. a
// top-level ParseError); such an error has nowhere to go per JSON-RPC
// (an ID-less error is only valid for notification-shaped failures,
// which this server logs instead of writing to stdout).
func (s *Server) writeError(id *rpc.ID, code rpc.ErrorCode, format string, args ...any) {
	message := fmt.Sprintf(format, args...)
	if id == nil {
		log.Error("%s", message)
		return
	}
	resp := rpc.NewErrorResponse(*id, rpc.NewError(code, "%s", message))
	if err := s.transport.WriteResponse(resp); err != nil {
		log.Error("writing error response: %v", err)
	}
}

// dispatchRequest routes a request method to its handler once the server
// is Initialized. Unknown methods are MethodNotFound (spec §7).
func (s *Server) dispatchRequest(msg *rpc.Message) {
	switch msg.Method {
	case protocol.MethodHover:
		s.handleHover(msg)
	case protocol.MethodDefinition:
		s.handleDefinition(msg)
	case protocol.MethodReferences:
		s.handleReferences(msg)
	case protocol.MethodDocumentSymbol:
		s.handleDocumentSymbol(msg)
	case protocol.MethodCompletion:
		s.handleCompletion(msg)
	case protocol.MethodSemanticTokensFull:
		s.handleSemanticTokensFull(msg)
	case protocol.MethodCodeAction:
		s.handleCodeAction(msg)
	case protocol.MethodRename:
		s.handleRename(msg)
	case protocol.MethodPrepareRename:
		s.handlePrepareRename(msg)
	case protocol.MethodSignatureHelp:
		s.handleSignatureHelp(msg)
	case protocol.MethodInlayHint:
		s.handleInlayHint(msg)
	case protocol.MethodSelectionRange:
		s.handleSelectionRange(msg)
	case protocol.MethodDocumentHighlight:
		s.handleDocumentHighlight(msg)
	case protocol.MethodFoldingRange:
		s.handleFoldingRange(msg)
	case protocol.MethodWorkspaceSymbol:
		s.handleWorkspaceSymbol(msg)
	default:
		s.writeError(msg.ID, rpc.MethodNotFound, "unknown method %q", msg.Method)
	}
}

// dispatchNotification routes a notification method once Initialized.
// Unknown methods are logged and ignored, never an error (spec §7).
func (s *Server) dispatchNotification(msg *rpc.Message) {
	switch msg.Method {
	case protocol.MethodDidOpen:
		s.handleDidOpen(msg)
	case protocol.MethodDidChange:
		s.handleDidChange(msg)
	case protocol.MethodDidSave:
		s.handleDidSave(msg)
	case protocol.MethodDidClose:
		s.handleDidClose(msg)
	case protocol.MethodDidChangeConfiguration:
		s.handleDidChangeConfiguration(msg)
	case protocol.MethodDidChangeWatchedFiles:
		s.handleDidChangeWatchedFiles(msg)
	case protocol.MethodSetTrace, protocol.MethodCancelRequest:
		// Logged and ignored: no trace/cancellation semantics in this
		// design (spec §5 "Cancellation / timeouts: none").
		log.Debug("ignoring %s", msg.Method)
	default:
		log.Warn("unknown notification %q", msg.Method)
	}
}

// unmarshalParams decodes msg.Params into dst, reporting InvalidParams on
// the request's response if it fails. Returns false on failure so the
// caller can bail out without double-responding.
func (s *Server) unmarshalParams(msg *rpc.Message, dst any) bool {
	if len(msg.Params) == 0 {
		return true
	}
	if err := json.Unmarshal(msg.Params, dst); err != nil {
		s.writeError(msg.ID, rpc.InvalidParams, "invalid params for %s: %v", msg.Method, err)
		return false
	}
	return true
}
