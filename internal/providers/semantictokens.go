package providers

import (
	"sort"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// rawToken is one token before delta encoding, indexed into the legends
// by position.
type rawToken struct {
	line, startChar, length uint32
	tokenType               int
	modifiers               uint32
}

// tokenTypeFor classifies a leaf node kind into a legend index, or -1 if
// the node isn't a token this pass emits (spec §4.7.8).
func tokenTypeFor(kind string) int {
	switch kind {
	case "identifier":
		return indexOf(protocol.TokenTypeVariable)
	case "property_identifier", "shorthand_property_identifier":
		return indexOf(protocol.TokenTypeProperty)
	case "string", "string_fragment", "template_string":
		return indexOf(protocol.TokenTypeString)
	case "number":
		return indexOf(protocol.TokenTypeNumber)
	case "comment":
		return indexOf(protocol.TokenTypeComment)
	case "regex":
		return indexOf(protocol.TokenTypeRegexp)
	default:
		if isKeywordKind(kind) {
			return indexOf(protocol.TokenTypeKeyword)
		}
		return -1
	}
}

func indexOf(t protocol.SemanticTokenType) int {
	for i, candidate := range protocol.SemanticTokenTypeLegend {
		if candidate == t {
			return i
		}
	}
	return -1
}

// isKeywordKind reports whether kind names a reserved-word terminal; the
// grammar surfaces keywords as anonymous tokens whose kind equals their
// literal text.
func isKeywordKind(kind string) bool {
	switch kind {
	case "function", "let", "const", "var", "if", "else", "for", "while",
		"return", "break", "continue", "true", "false", "null", "class",
		"new", "this", "import", "export", "from", "typeof", "in", "of":
		return true
	default:
		return false
	}
}

// SemanticTokensFull implements spec §4.7.8: a single traversal
// producing a flat, delta-encoded list sorted by (line, start_char).
func SemanticTokensFull(root *sitter.Node, source []byte) *protocol.SemanticTokens {
	if root == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}
	}

	var tokens []rawToken
	syntax.Walk(root, func(n *sitter.Node) bool {
		if n.ChildCount() > 0 {
			return true
		}
		tt := tokenTypeFor(n.Kind())
		if tt < 0 {
			return true
		}
		start := syntax.PointToPosition(source, n.StartPosition())
		length := n.EndByte() - n.StartByte()
		mods := uint32(0)
		if isDeclarationSite(n) {
			mods |= 1 << modifierIndex(protocol.ModifierDeclaration)
		}
		tokens = append(tokens, rawToken{
			line:      start.Line,
			startChar: start.Character,
			length:    uint32(length),
			tokenType: tt,
			modifiers: mods,
		})
		return true
	})

	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].line != tokens[j].line {
			return tokens[i].line < tokens[j].line
		}
		return tokens[i].startChar < tokens[j].startChar
	})

	return &protocol.SemanticTokens{Data: deltaEncode(tokens)}
}

func modifierIndex(m protocol.SemanticTokenModifier) int {
	for i, candidate := range protocol.SemanticTokenModifierLegend {
		if candidate == m {
			return i
		}
	}
	return 0
}

// deltaEncode implements the standard LSP semantic-tokens delta
// encoding: each token is {deltaLine, deltaStartChar (0 if same line,
// else absolute), length, tokenType, tokenModifiers}.
func deltaEncode(tokens []rawToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	prevLine, prevChar := uint32(0), uint32(0)
	for _, t := range tokens {
		deltaLine := t.line - prevLine
		var deltaChar uint32
		if deltaLine == 0 {
			deltaChar = t.startChar - prevChar
		} else {
			deltaChar = t.startChar
		}
		data = append(data, deltaLine, deltaChar, t.length, uint32(t.tokenType), t.modifiers)
		prevLine, prevChar = t.line, t.startChar
	}
	return data
}
