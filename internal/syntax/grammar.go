// Package syntax wraps the tree-sitter-style parser library behind the
// narrow contract spec §1 assumes is externally available: parse/edit/
// traverse. It owns grammar selection per language kind and the
// InputEdit math that keeps an incremental reparse in sync with a text
// edit (spec §4.6, design note "Incremental parser edit math").
package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
)

// LanguageKind is the document classification from spec §3 ("Data Model"):
// it determines grammar selection and which analysis providers activate.
type LanguageKind int

const (
	LanguagePrimary LanguageKind = iota
	LanguageShellScript
	LanguageShellConfig
	LanguageSmartContract
)

func (k LanguageKind) String() string {
	switch k {
	case LanguagePrimary:
		return "primary"
	case LanguageShellScript:
		return "shell_script"
	case LanguageShellConfig:
		return "shell_config"
	case LanguageSmartContract:
		return "smart_contract"
	default:
		return "unknown"
	}
}

// HasTree reports whether documents of this kind carry a parsed syntax
// tree. The smart-contract dialect has none: its diagnostics come
// entirely from the external SemanticAnalyzer (spec §4.4 edge policies).
func (k LanguageKind) HasTree() bool {
	return k != LanguageSmartContract
}

// jsLang is the single grammar backing every tree-bearing language kind.
// The pack's retrieved grammars are CSS/HTML/JavaScript; of those,
// JavaScript's statement/expression/function shape is the closest
// general-purpose stand-in for a dynamically typed scripting language's
// grammar, so it is reused for LanguagePrimary and the shell dialects
// (see DESIGN.md's "grammar loading" open question).
var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// LanguageFor returns the tree-sitter grammar for a tree-bearing language
// kind, or nil for LanguageSmartContract.
func LanguageFor(kind LanguageKind) *sitter.Language {
	if !kind.HasTree() {
		return nil
	}
	return jsLang
}

// NewParser returns a parser configured for kind, or nil if kind has no
// grammar. Callers should Close() the returned parser when done with it;
// Document pools one parser per open tree-bearing document rather than
// sharing a package-level pool, since grammar switching per document
// (spec §4.4 "Parser grammar switching") must stay serial with parsing.
func NewParser(kind LanguageKind) *sitter.Parser {
	lang := LanguageFor(kind)
	if lang == nil {
		return nil
	}
	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		// The bundled grammar binding is linked into the binary; a
		// failure here means the build is broken, not a runtime
		// condition callers can recover from.
		panic("syntax: failed to set grammar: " + err.Error())
	}
	return p
}
