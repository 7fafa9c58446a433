// Package protocol defines typed, serializable representations of the LSP
// 3.17 entities this server exchanges with its client. It mirrors the shape
// of the wire protocol (see the LSP specification) rather than any single
// client SDK; enumerations are numerically stable because editors persist
// them (e.g. in semantic highlighting themes).
package protocol

import "encoding/json"

// Position is a zero-based (line, character) pair. Character offsets use
// UTF-16 code units, matching the encoding this server advertises in its
// capabilities (PositionEncodingUTF16).
type Position struct {
	Line      uint32 `json:"line"`
	Character uint32 `json:"character"`
}

// Less reports whether p sorts strictly before o in document order.
func (p Position) Less(o Position) bool {
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Character < o.Character
}

// Range is a half-open span between two positions; Start <= End
// lexicographically.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Contains reports whether p falls within r, inclusive of both endpoints.
func (r Range) Contains(p Position) bool {
	if p.Less(r.Start) {
		return false
	}
	if r.End.Less(p) {
		return false
	}
	return true
}

// ContainsRange reports whether r fully encloses other.
func (r Range) ContainsRange(other Range) bool {
	return !other.Start.Less(r.Start) && !r.End.Less(other.End)
}

// DocumentURI is a canonical file:// URI identifying a document.
type DocumentURI string

// Location pairs a URI with a range inside that document.
type Location struct {
	URI   DocumentURI `json:"uri"`
	Range Range       `json:"range"`
}

// TextDocumentIdentifier identifies a document by URI alone.
type TextDocumentIdentifier struct {
	URI DocumentURI `json:"uri"`
}

// VersionedTextDocumentIdentifier additionally carries the document's
// client-assigned version.
type VersionedTextDocumentIdentifier struct {
	TextDocumentIdentifier
	Version int32 `json:"version"`
}

// TextDocumentItem is the full payload of a didOpen notification.
type TextDocumentItem struct {
	URI        DocumentURI `json:"uri"`
	LanguageID string      `json:"languageId"`
	Version    int32       `json:"version"`
	Text       string      `json:"text"`
}

// TextDocumentPositionParams locates a cursor inside a document; the base
// shape shared by hover, definition, references, etc.
type TextDocumentPositionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Position     Position               `json:"position"`
}

// TextDocumentContentChangeEvent describes one edit applied to a document.
// When Range is nil the change replaces the document's entire text.
type TextDocumentContentChangeEvent struct {
	Range       *Range  `json:"range,omitempty"`
	RangeLength *uint32 `json:"rangeLength,omitempty"`
	Text        string  `json:"text"`
}

// TextEdit replaces the text in Range with NewText. An empty NewText is a
// deletion; a zero-width Range is a pure insertion.
type TextEdit struct {
	Range   Range  `json:"range"`
	NewText string `json:"newText"`
}

// WorkspaceEdit maps document URIs to the ordered edits that should be
// applied to each. Key order is not significant but the edit slice order
// within a key is: edits must be applied in the order given (or bottom-up
// by range, which is what well-behaved clients do).
type WorkspaceEdit struct {
	Changes map[DocumentURI][]TextEdit `json:"changes,omitempty"`
}

// DiagnosticSeverity ranks a diagnostic's importance.
type DiagnosticSeverity int32

const (
	SeverityError       DiagnosticSeverity = 1
	SeverityWarning     DiagnosticSeverity = 2
	SeverityInformation DiagnosticSeverity = 3
	SeverityHint        DiagnosticSeverity = 4
)

// Diagnostic represents one issue found in a document.
type Diagnostic struct {
	Range    Range              `json:"range"`
	Severity DiagnosticSeverity `json:"severity,omitempty"`
	Code     string             `json:"code,omitempty"`
	Source   string             `json:"source,omitempty"`
	Message  string             `json:"message"`
}

// PublishDiagnosticsParams is the payload of the server-initiated
// textDocument/publishDiagnostics notification.
type PublishDiagnosticsParams struct {
	URI         DocumentURI  `json:"uri"`
	Version     *int32       `json:"version,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// MarkupKind selects how a hover/completion documentation string is
// rendered by the client.
type MarkupKind string

const (
	MarkupKindPlainText MarkupKind = "plaintext"
	MarkupKindMarkdown  MarkupKind = "markdown"
)

// MarkupContent is a documentation payload tagged with its rendering kind.
type MarkupContent struct {
	Kind  MarkupKind `json:"kind"`
	Value string     `json:"value"`
}

// Hover is the result of textDocument/hover.
type Hover struct {
	Contents MarkupContent `json:"contents"`
	Range    *Range        `json:"range,omitempty"`
}

// CompletionItemKind classifies a completion entry for client-side icons.
type CompletionItemKind int32

const (
	CompletionItemKindText CompletionItemKind = iota + 1
	CompletionItemKindMethod
	CompletionItemKindFunction
	CompletionItemKindConstructor
	CompletionItemKindField
	CompletionItemKindVariable
	CompletionItemKindClass
	CompletionItemKindInterface
	CompletionItemKindModule
	CompletionItemKindProperty
	CompletionItemKindUnit
	CompletionItemKindValue
	CompletionItemKindEnum
	CompletionItemKindKeyword
	CompletionItemKindSnippet
	CompletionItemKindColor
	CompletionItemKindFile
	CompletionItemKindReference
	CompletionItemKindFolder
	CompletionItemKindEnumMember
	CompletionItemKindConstant
	CompletionItemKindStruct
	CompletionItemKindEvent
	CompletionItemKindOperator
	CompletionItemKindTypeParameter
)

// CompletionItem is one suggestion returned from textDocument/completion.
type CompletionItem struct {
	Label         string             `json:"label"`
	Kind          CompletionItemKind `json:"kind,omitempty"`
	Detail        string             `json:"detail,omitempty"`
	Documentation *MarkupContent     `json:"documentation,omitempty"`
	InsertText    string             `json:"insertText,omitempty"`
	SortText      string             `json:"sortText,omitempty"`
}

// CompletionList is the result of textDocument/completion.
type CompletionList struct {
	IsIncomplete bool             `json:"isIncomplete"`
	Items        []CompletionItem `json:"items"`
}

// SymbolKind classifies a DocumentSymbol/SymbolInformation entry.
type SymbolKind int32

const (
	SymbolKindFile SymbolKind = iota + 1
	SymbolKindModule
	SymbolKindNamespace
	SymbolKindPackage
	SymbolKindClass
	SymbolKindMethod
	SymbolKindProperty
	SymbolKindField
	SymbolKindConstructor
	SymbolKindEnum
	SymbolKindInterface
	SymbolKindFunction
	SymbolKindVariable
	SymbolKindConstant
	SymbolKindString
	SymbolKindNumber
	SymbolKindBoolean
	SymbolKindArray
	SymbolKindObject
	SymbolKindKey
	SymbolKindNull
	SymbolKindEnumMember
	SymbolKindStruct
	SymbolKindEvent
	SymbolKindOperator
	SymbolKindTypeParameter
)

// DocumentSymbol is a hierarchical symbol tree node for
// textDocument/documentSymbol.
type DocumentSymbol struct {
	Name           string           `json:"name"`
	Detail         string           `json:"detail,omitempty"`
	Kind           SymbolKind       `json:"kind"`
	Range          Range            `json:"range"`
	SelectionRange Range            `json:"selectionRange"`
	Children       []DocumentSymbol `json:"children,omitempty"`
}

// SymbolInformation is the flat form used by workspace/symbol results.
type SymbolInformation struct {
	Name     string     `json:"name"`
	Kind     SymbolKind `json:"kind"`
	Location Location   `json:"location"`
}

// DocumentHighlightKind distinguishes a read occurrence from a write.
type DocumentHighlightKind int32

const (
	DocumentHighlightKindText DocumentHighlightKind = iota + 1
	DocumentHighlightKindRead
	DocumentHighlightKindWrite
)

// DocumentHighlight is one occurrence of the symbol under the cursor.
type DocumentHighlight struct {
	Range Range                 `json:"range"`
	Kind  DocumentHighlightKind `json:"kind,omitempty"`
}

// FoldingRangeKind labels what a folding range represents, for clients
// that render different gutter icons per kind.
type FoldingRangeKind string

const (
	FoldingRangeKindComment FoldingRangeKind = "comment"
	FoldingRangeKindImports FoldingRangeKind = "imports"
	FoldingRangeKindRegion  FoldingRangeKind = "region"
)

// FoldingRange is one collapsible region of a document.
type FoldingRange struct {
	StartLine      uint32           `json:"startLine"`
	StartCharacter *uint32          `json:"startCharacter,omitempty"`
	EndLine        uint32           `json:"endLine"`
	EndCharacter   *uint32          `json:"endCharacter,omitempty"`
	Kind           FoldingRangeKind `json:"kind,omitempty"`
}

// SemanticTokens is the flat delta-encoded result of
// textDocument/semanticTokens/full.
type SemanticTokens struct {
	Data []uint32 `json:"data"`
}

// SemanticTokenType is one entry of the fixed type legend (§4.7.8).
type SemanticTokenType string

// The fixed semantic token type legend, index-stable since clients resolve
// token types by position in this slice.
const (
	TokenTypeNamespace     SemanticTokenType = "namespace"
	TokenTypeType          SemanticTokenType = "type"
	TokenTypeClass         SemanticTokenType = "class"
	TokenTypeEnumMember    SemanticTokenType = "enumMember"
	TokenTypeInterface     SemanticTokenType = "interface"
	TokenTypeStruct        SemanticTokenType = "struct"
	TokenTypeTypeParameter SemanticTokenType = "typeParameter"
	TokenTypeParameter     SemanticTokenType = "parameter"
	TokenTypeVariable      SemanticTokenType = "variable"
	TokenTypeProperty      SemanticTokenType = "property"
	TokenTypeEnum          SemanticTokenType = "enum"
	TokenTypeFunction      SemanticTokenType = "function"
	TokenTypeMethod        SemanticTokenType = "method"
	TokenTypeMacro         SemanticTokenType = "macro"
	TokenTypeKeyword       SemanticTokenType = "keyword"
	TokenTypeModifier      SemanticTokenType = "modifier"
	TokenTypeComment       SemanticTokenType = "comment"
	TokenTypeString        SemanticTokenType = "string"
	TokenTypeNumber        SemanticTokenType = "number"
	TokenTypeRegexp        SemanticTokenType = "regexp"
	TokenTypeOperator      SemanticTokenType = "operator"
)

// SemanticTokenTypeLegend is the ordered list advertised to the client;
// a token's numeric type in SemanticTokens.Data is its index here.
var SemanticTokenTypeLegend = []SemanticTokenType{
	TokenTypeNamespace, TokenTypeType, TokenTypeClass, TokenTypeEnumMember,
	TokenTypeInterface, TokenTypeStruct, TokenTypeTypeParameter, TokenTypeParameter,
	TokenTypeVariable, TokenTypeProperty, TokenTypeEnum, TokenTypeFunction,
	TokenTypeMethod, TokenTypeMacro, TokenTypeKeyword, TokenTypeModifier,
	TokenTypeComment, TokenTypeString, TokenTypeNumber, TokenTypeRegexp,
	TokenTypeOperator,
}

// SemanticTokenModifier is one bit of the modifier bitmask.
type SemanticTokenModifier string

const (
	ModifierDeclaration    SemanticTokenModifier = "declaration"
	ModifierDefinition     SemanticTokenModifier = "definition"
	ModifierReadonly       SemanticTokenModifier = "readonly"
	ModifierStatic         SemanticTokenModifier = "static"
	ModifierDeprecated     SemanticTokenModifier = "deprecated"
	ModifierAbstract       SemanticTokenModifier = "abstract"
	ModifierAsync          SemanticTokenModifier = "async"
	ModifierModification   SemanticTokenModifier = "modification"
	ModifierDocumentation  SemanticTokenModifier = "documentation"
	ModifierDefaultLibrary SemanticTokenModifier = "defaultLibrary"
)

// SemanticTokenModifierLegend is the ordered bitmask legend; bit i
// corresponds to this slice's i-th entry.
var SemanticTokenModifierLegend = []SemanticTokenModifier{
	ModifierDeclaration, ModifierDefinition, ModifierReadonly, ModifierStatic,
	ModifierDeprecated, ModifierAbstract, ModifierAsync, ModifierModification,
	ModifierDocumentation, ModifierDefaultLibrary,
}

// SemanticTokensLegend is the struct shape sent in server capabilities.
type SemanticTokensLegend struct {
	TokenTypes     []SemanticTokenType     `json:"tokenTypes"`
	TokenModifiers []SemanticTokenModifier `json:"tokenModifiers"`
}

// CodeActionKind classifies a CodeAction entry.
type CodeActionKind string

const (
	CodeActionKindQuickFix              CodeActionKind = "quickfix"
	CodeActionKindRefactor              CodeActionKind = "refactor"
	CodeActionKindRefactorExtract       CodeActionKind = "refactor.extract"
	CodeActionKindRefactorInline        CodeActionKind = "refactor.inline"
)

// CodeAction is one entry of a textDocument/codeAction result.
type CodeAction struct {
	Title       string         `json:"title"`
	Kind        CodeActionKind `json:"kind,omitempty"`
	Edit        *WorkspaceEdit `json:"edit,omitempty"`
	IsPreferred bool           `json:"isPreferred,omitempty"`
}

// ParameterInformation documents one parameter of a SignatureInformation.
type ParameterInformation struct {
	Label         string         `json:"label"`
	Documentation *MarkupContent `json:"documentation,omitempty"`
}

// SignatureInformation documents one call signature.
type SignatureInformation struct {
	Label         string                 `json:"label"`
	Documentation *MarkupContent         `json:"documentation,omitempty"`
	Parameters    []ParameterInformation `json:"parameters,omitempty"`
}

// SignatureHelp is the result of textDocument/signatureHelp.
type SignatureHelp struct {
	Signatures      []SignatureInformation `json:"signatures"`
	ActiveSignature uint32                 `json:"activeSignature"`
	ActiveParameter uint32                 `json:"activeParameter"`
}

// InlayHintKind distinguishes type hints from parameter-name hints.
type InlayHintKind int32

const (
	InlayHintKindType      InlayHintKind = 1
	InlayHintKindParameter InlayHintKind = 2
)

// InlayHint is one inline annotation for textDocument/inlayHint.
type InlayHint struct {
	Position Position      `json:"position"`
	Label    string        `json:"label"`
	Kind     InlayHintKind `json:"kind,omitempty"`
}

// SelectionRange is one link in a selection-expansion chain; Parent is nil
// at the outermost (file root) link.
type SelectionRange struct {
	Range  Range            `json:"range"`
	Parent *SelectionRange  `json:"parent,omitempty"`
}

// ServerInfo names the server in the initialize response.
type ServerInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// PositionEncodingKind names the unit used for Position.Character.
type PositionEncodingKind string

const (
	PositionEncodingUTF8  PositionEncodingKind = "utf-8"
	PositionEncodingUTF16 PositionEncodingKind = "utf-16"
	PositionEncodingUTF32 PositionEncodingKind = "utf-32"
)

// TextDocumentSyncKind selects full vs incremental sync; this server
// advertises Full (1) per spec §6 but still reparses incrementally
// internally whenever a change carries a Range.
type TextDocumentSyncKind int32

const (
	TextDocumentSyncNone        TextDocumentSyncKind = 0
	TextDocumentSyncFull        TextDocumentSyncKind = 1
	TextDocumentSyncIncremental TextDocumentSyncKind = 2
)

// TextDocumentSyncOptions advertises the document-sync capabilities.
type TextDocumentSyncOptions struct {
	OpenClose bool                 `json:"openClose"`
	Change    TextDocumentSyncKind `json:"change"`
	Save      *SaveOptions         `json:"save,omitempty"`
}

// SaveOptions controls whether didSave carries the full document text.
type SaveOptions struct {
	IncludeText bool `json:"includeText"`
}

// CompletionOptions advertises completion trigger characters.
type CompletionOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// SignatureHelpOptions advertises signature-help trigger characters.
type SignatureHelpOptions struct {
	TriggerCharacters []string `json:"triggerCharacters,omitempty"`
}

// RenameOptions advertises whether prepareRename is supported.
type RenameOptions struct {
	PrepareProvider bool `json:"prepareProvider"`
}

// ServerCapabilities is the result.capabilities payload of initialize.
type ServerCapabilities struct {
	PositionEncoding           PositionEncodingKind  `json:"positionEncoding"`
	TextDocumentSync           TextDocumentSyncOptions `json:"textDocumentSync"`
	HoverProvider              bool                  `json:"hoverProvider"`
	CompletionProvider         CompletionOptions     `json:"completionProvider"`
	DefinitionProvider         bool                  `json:"definitionProvider"`
	ReferencesProvider         bool                  `json:"referencesProvider"`
	DocumentSymbolProvider     bool                  `json:"documentSymbolProvider"`
	WorkspaceSymbolProvider    bool                  `json:"workspaceSymbolProvider"`
	SemanticTokensProvider     SemanticTokensLegend  `json:"-"`
	DocumentHighlightProvider  bool                  `json:"documentHighlightProvider"`
	FoldingRangeProvider       bool                  `json:"foldingRangeProvider"`
	RenameProvider             RenameOptions         `json:"renameProvider"`
	CodeActionProvider         bool                  `json:"codeActionProvider"`
	SignatureHelpProvider      SignatureHelpOptions  `json:"signatureHelpProvider"`
	InlayHintProvider          bool                  `json:"inlayHintProvider"`
	SelectionRangeProvider     bool                  `json:"selectionRangeProvider"`
}

// MarshalJSON emits semanticTokensProvider.legend explicitly since the
// field above is tagged "-" to keep struct literal construction terse
// while still shipping the nested legend object on the wire.
func (c ServerCapabilities) MarshalJSON() ([]byte, error) {
	type alias ServerCapabilities
	return json.Marshal(struct {
		alias
		SemanticTokensProvider struct {
			Legend SemanticTokensLegend `json:"legend"`
			Full   bool                 `json:"full"`
		} `json:"semanticTokensProvider"`
	}{
		alias: alias(c),
		SemanticTokensProvider: struct {
			Legend SemanticTokensLegend `json:"legend"`
			Full   bool                 `json:"full"`
		}{Legend: c.SemanticTokensProvider, Full: true},
	})
}

// InitializeResult is the result of the initialize request.
type InitializeResult struct {
	Capabilities ServerCapabilities `json:"capabilities"`
	ServerInfo   ServerInfo         `json:"serverInfo"`
}

// InitializeParams is the request payload of initialize. Only the fields
// this server actually consults are modeled; everything else the client
// sends is ignored rather than rejected.
type InitializeParams struct {
	ProcessID *int32  `json:"processId,omitempty"`
	RootURI   *string `json:"rootUri,omitempty"`
}

// DidOpenTextDocumentParams is the payload of textDocument/didOpen.
type DidOpenTextDocumentParams struct {
	TextDocument TextDocumentItem `json:"textDocument"`
}

// DidChangeTextDocumentParams is the payload of textDocument/didChange.
type DidChangeTextDocumentParams struct {
	TextDocument   VersionedTextDocumentIdentifier  `json:"textDocument"`
	ContentChanges []TextDocumentContentChangeEvent `json:"contentChanges"`
}

// DidSaveTextDocumentParams is the payload of textDocument/didSave.
type DidSaveTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Text         *string                `json:"text,omitempty"`
}

// DidCloseTextDocumentParams is the payload of textDocument/didClose.
type DidCloseTextDocumentParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// ReferenceContext toggles whether References includes the declaration
// site itself.
type ReferenceContext struct {
	IncludeDeclaration bool `json:"includeDeclaration"`
}

// ReferenceParams is the payload of textDocument/references.
type ReferenceParams struct {
	TextDocumentPositionParams
	Context ReferenceContext `json:"context"`
}

// DocumentSymbolParams is the payload of textDocument/documentSymbol.
type DocumentSymbolParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// SemanticTokensParams is the payload of textDocument/semanticTokens/full.
type SemanticTokensParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// FoldingRangeParams is the payload of textDocument/foldingRange.
type FoldingRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
}

// RenameParams is the payload of textDocument/rename.
type RenameParams struct {
	TextDocumentPositionParams
	NewName string `json:"newName"`
}

// CodeActionContext carries the diagnostics a code-action request covers;
// unused by this server's quick-fix pass but decoded for completeness.
type CodeActionContext struct {
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`
}

// CodeActionParams is the payload of textDocument/codeAction.
type CodeActionParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
	Context      CodeActionContext      `json:"context"`
}

// SignatureHelpParams is the payload of textDocument/signatureHelp.
type SignatureHelpParams struct {
	TextDocumentPositionParams
}

// InlayHintParams is the payload of textDocument/inlayHint.
type InlayHintParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Range        Range                  `json:"range"`
}

// SelectionRangeParams is the payload of textDocument/selectionRange.
type SelectionRangeParams struct {
	TextDocument TextDocumentIdentifier `json:"textDocument"`
	Positions    []Position             `json:"positions"`
}

// WorkspaceSymbolParams is the payload of workspace/symbol.
type WorkspaceSymbolParams struct {
	Query string `json:"query"`
}

// FileChangeType classifies one entry of DidChangeWatchedFilesParams
// (LSP 3.17 §3.17.22).
type FileChangeType int32

const (
	FileChangeCreated FileChangeType = 1
	FileChangeChanged FileChangeType = 2
	FileChangeDeleted FileChangeType = 3
)

// FileEvent is one changed-file notice within didChangeWatchedFiles.
type FileEvent struct {
	URI  DocumentURI    `json:"uri"`
	Type FileChangeType `json:"type"`
}

// DidChangeWatchedFilesParams is the payload of
// workspace/didChangeWatchedFiles.
type DidChangeWatchedFilesParams struct {
	Changes []FileEvent `json:"changes"`
}

// DidChangeConfigurationParams is the payload of
// workspace/didChangeConfiguration. Settings is decoded best-effort and
// logged; this server has no live-reconfigurable settings today.
type DidChangeConfigurationParams struct {
	Settings json.RawMessage `json:"settings,omitempty"`
}
