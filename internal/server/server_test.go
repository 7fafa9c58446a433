package server_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/ffi"
	"ghostls/internal/protocol"
	"ghostls/internal/rpc"
	"ghostls/internal/server"
)

// scriptedClient frames a sequence of request/notification bodies into an
// in-memory stream, the way a real LSP client would write them to the
// server's stdin.
func scriptedClient(t *testing.T, msgs ...*rpc.Message) *bytes.Buffer {
	t.Helper()
	var in bytes.Buffer
	writer := rpc.NewTransport(nil, &in)
	for _, m := range msgs {
		body, err := json.Marshal(m)
		require.NoError(t, err)
		require.NoError(t, writer.WriteMessage(body))
	}
	return &in
}

func mustRequest(t *testing.T, id int64, method string, params any) *rpc.Message {
	t.Helper()
	msg, err := rpc.NewRequest(rpc.NewNumberID(id), method, params)
	require.NoError(t, err)
	return msg
}

func mustNotification(t *testing.T, method string, params any) *rpc.Message {
	t.Helper()
	msg, err := rpc.NewNotification(method, params)
	require.NoError(t, err)
	return msg
}

// readAllResponses decodes every framed message written to out.
func readAllResponses(t *testing.T, out *bytes.Buffer) []rpc.Message {
	t.Helper()
	reader := rpc.NewTransport(out, nil)
	var msgs []rpc.Message
	for {
		body, err := reader.ReadMessage()
		if err != nil {
			break
		}
		var m rpc.Message
		require.NoError(t, json.Unmarshal(body, &m))
		msgs = append(msgs, m)
	}
	return msgs
}

func newTestServer(t *testing.T, in *bytes.Buffer, out *bytes.Buffer) *server.Server {
	t.Helper()
	store, err := ffi.Load()
	require.NoError(t, err)
	transport := rpc.NewTransport(in, out)
	return server.New(transport, store)
}

// TestInitializeHandshake covers S1: a request before initialize is
// rejected with ServerNotInitialized, then initialize/initialized/shutdown/
// exit walks the full lifecycle to a clean exit code.
func TestInitializeHandshake(t *testing.T) {
	in := scriptedClient(t,
		mustRequest(t, 1, protocol.MethodHover, protocol.TextDocumentPositionParams{}),
		mustRequest(t, 2, protocol.MethodInitialize, protocol.InitializeParams{}),
		mustNotification(t, protocol.MethodInitialized, struct{}{}),
		mustRequest(t, 3, protocol.MethodShutdown, nil),
		mustNotification(t, protocol.MethodExit, struct{}{}),
	)
	var out bytes.Buffer
	srv := newTestServer(t, in, &out)

	code, err := srv.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	responses := readAllResponses(t, &out)
	require.Len(t, responses, 3)

	assert.NotNil(t, responses[0].Error)
	assert.Equal(t, rpc.ServerNotInitialized, responses[0].Error.Code)

	assert.Nil(t, responses[1].Error)
	var result protocol.InitializeResult
	require.NoError(t, json.Unmarshal(responses[1].Result, &result))
	assert.Equal(t, "ghostls", result.ServerInfo.Name)

	assert.Nil(t, responses[2].Error)
}

// TestInitializeTwiceIsInvalidRequest covers the Initialized-state row of
// spec §4.8's table: a second initialize request is rejected.
func TestInitializeTwiceIsInvalidRequest(t *testing.T) {
	in := scriptedClient(t,
		mustRequest(t, 1, protocol.MethodInitialize, protocol.InitializeParams{}),
		mustRequest(t, 2, protocol.MethodInitialize, protocol.InitializeParams{}),
		mustNotification(t, protocol.MethodExit, struct{}{}),
	)
	var out bytes.Buffer
	srv := newTestServer(t, in, &out)

	code, err := srv.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, code) // exit before shutdown -> exit code 1 (spec §6)

	responses := readAllResponses(t, &out)
	require.Len(t, responses, 2)
	require.NotNil(t, responses[1].Error)
	assert.Equal(t, rpc.InvalidRequest, responses[1].Error.Code)
}

// TestDidOpenPublishesDiagnostics covers S2: opening a document with a
// syntax error produces a textDocument/publishDiagnostics notification.
func TestDidOpenPublishesDiagnostics(t *testing.T) {
	in := scriptedClient(t,
		mustRequest(t, 1, protocol.MethodInitialize, protocol.InitializeParams{}),
		mustNotification(t, protocol.MethodInitialized, struct{}{}),
		mustNotification(t, protocol.MethodDidOpen, protocol.DidOpenTextDocumentParams{
			TextDocument: protocol.TextDocumentItem{
				URI:  "file:///test.ghost",
				Text: "let x = (",
			},
		}),
		mustRequest(t, 2, protocol.MethodShutdown, nil),
		mustNotification(t, protocol.MethodExit, struct{}{}),
	)
	var out bytes.Buffer
	srv := newTestServer(t, in, &out)

	code, err := srv.Run()
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	var sawDiagnostics bool
	for _, m := range readAllResponses(t, &out) {
		if m.Method == protocol.MethodPublishDiagnostics {
			sawDiagnostics = true
		}
	}
	assert.True(t, sawDiagnostics, "expected a publishDiagnostics notification after didOpen")
}

// TestUnknownMethodIsMethodNotFound covers spec §7's MethodNotFound path
// once the server is Initialized.
func TestUnknownMethodIsMethodNotFound(t *testing.T) {
	in := scriptedClient(t,
		mustRequest(t, 1, protocol.MethodInitialize, protocol.InitializeParams{}),
		mustNotification(t, protocol.MethodInitialized, struct{}{}),
		mustRequest(t, 2, "textDocument/bogus", struct{}{}),
		mustNotification(t, protocol.MethodExit, struct{}{}),
	)
	var out bytes.Buffer
	srv := newTestServer(t, in, &out)

	code, err := srv.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	responses := readAllResponses(t, &out)
	require.Len(t, responses, 2)
	require.NotNil(t, responses[1].Error)
	assert.Equal(t, rpc.MethodNotFound, responses[1].Error.Code)
}
