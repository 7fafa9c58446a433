package server

import (
	"ghostls/internal/log"
	"ghostls/internal/protocol"
	"ghostls/internal/rpc"
	"ghostls/internal/version"
)

// doInitialize handles the initialize request from the Starting state
// (spec §4.8's table row "Starting"): it resolves the workspace root,
// replies with server capabilities, and unlocks Initialized.
func (s *Server) doInitialize(msg *rpc.Message) {
	var params protocol.InitializeParams
	if !s.unmarshalParams(msg, &params) {
		return
	}

	s.resolveRoot(params.RootURI)

	result := protocol.InitializeResult{
		Capabilities: capabilities(),
		ServerInfo:   protocol.ServerInfo{Name: "ghostls", Version: version.GetVersion()},
	}
	s.writeResult(msg.ID, result)
	s.state = stateInitialized
	log.Info("initialized, root=%s", s.rootDir)
}
