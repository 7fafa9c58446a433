package server

import (
	"ghostls/internal/protocol"
	"ghostls/internal/providers"
)

// capabilities builds the result.capabilities payload advertised from
// initialize (spec §6 "Advertised capabilities").
func capabilities() protocol.ServerCapabilities {
	return protocol.ServerCapabilities{
		PositionEncoding: protocol.PositionEncodingUTF16,
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: true,
			Change:    protocol.TextDocumentSyncFull,
			Save:      &protocol.SaveOptions{IncludeText: true},
		},
		HoverProvider:             true,
		CompletionProvider:        protocol.CompletionOptions{TriggerCharacters: providers.TriggerCharacters},
		DefinitionProvider:        true,
		ReferencesProvider:        true,
		DocumentSymbolProvider:    true,
		WorkspaceSymbolProvider:   true,
		SemanticTokensProvider: protocol.SemanticTokensLegend{
			TokenTypes:     protocol.SemanticTokenTypeLegend,
			TokenModifiers: protocol.SemanticTokenModifierLegend,
		},
		DocumentHighlightProvider: true,
		FoldingRangeProvider:      true,
		RenameProvider:            protocol.RenameOptions{PrepareProvider: true},
		CodeActionProvider:        true,
		SignatureHelpProvider:     protocol.SignatureHelpOptions{TriggerCharacters: providers.SignatureHelpTriggerCharacters},
		InlayHintProvider:         true,
		SelectionRangeProvider:    true,
	}
}
