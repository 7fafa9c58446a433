package protocol

// Method names for every request/notification this server handles or
// emits (spec §6). Keeping them as constants avoids typos scattered
// across the dispatcher and handler registrations.
const (
	MethodInitialize  = "initialize"
	MethodInitialized = "initialized"
	MethodShutdown    = "shutdown"
	MethodExit        = "exit"

	MethodDidOpen   = "textDocument/didOpen"
	MethodDidChange = "textDocument/didChange"
	MethodDidSave   = "textDocument/didSave"
	MethodDidClose  = "textDocument/didClose"

	MethodHover              = "textDocument/hover"
	MethodDefinition         = "textDocument/definition"
	MethodReferences         = "textDocument/references"
	MethodDocumentSymbol     = "textDocument/documentSymbol"
	MethodCompletion         = "textDocument/completion"
	MethodSemanticTokensFull = "textDocument/semanticTokens/full"
	MethodCodeAction         = "textDocument/codeAction"
	MethodRename             = "textDocument/rename"
	MethodPrepareRename      = "textDocument/prepareRename"
	MethodSignatureHelp      = "textDocument/signatureHelp"
	MethodInlayHint          = "textDocument/inlayHint"
	MethodSelectionRange     = "textDocument/selectionRange"
	MethodDocumentHighlight  = "textDocument/documentHighlight"
	MethodFoldingRange       = "textDocument/foldingRange"

	MethodWorkspaceSymbol              = "workspace/symbol"
	MethodDidChangeConfiguration       = "workspace/didChangeConfiguration"
	MethodDidChangeWatchedFiles        = "workspace/didChangeWatchedFiles"

	MethodPublishDiagnostics = "textDocument/publishDiagnostics"

	MethodSetTrace        = "$/setTrace"
	MethodCancelRequest    = "$/cancelRequest"
)
