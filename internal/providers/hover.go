// Package providers implements the analysis providers of spec §4.7
// (component C7): pure functions over (tree, source text, position)
// that never mutate their inputs and return owned result payloads.
package providers

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/builtins"
	"ghostls/internal/contract"
	"ghostls/internal/documents"
	"ghostls/internal/ffi"
	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

var ffiHoverTemplate = template.Must(template.New("ffiHover").Parse(
	"```\n{{.Signature}}\n```\n\n{{.Description}}\n" +
		"{{if .Parameters}}\n**Parameters**\n{{range .Parameters}}- `{{.Name}}` ({{.Type}}): {{.Description}}\n{{end}}{{end}}" +
		"{{if .Return.Type}}\n**Returns** `{{.Return.Type}}`{{if .Return.Description}} — {{.Return.Description}}{{end}}\n{{end}}" +
		"{{if .Examples}}\n**Example**\n```\n{{index .Examples 0}}\n```\n{{end}}"))

var ffiGlobalHoverTemplate = template.Must(template.New("ffiGlobalHover").Parse(
	"```\n{{.Type}}{{if .Readonly}} (readonly){{end}}\n```\n\n{{.Description}}"))

var builtinHoverTemplate = template.Must(template.New("builtinHover").Parse(
	"```\n{{.Signature}}\n```\n\n{{.Description}}"))

var genericHoverTemplate = template.Must(template.New("genericHover").Parse(
	"```\n{{.Kind}}\n```\n\n```\n{{.Text}}\n```{{if .GasCost}}\n\n**Estimated gas cost**: {{.GasCost}} " +
		"(severity `{{.GasSwatch}}`)\n{{end}}"))

// Hover implements spec §4.7.2. root is nil for a smart-contract document
// (spec §4.4 "the smart-contract dialect has no syntax tree"), in which
// case hover falls back to locating the enclosing function textually.
func Hover(root *sitter.Node, source []byte, pos protocol.Position, store *ffi.Store, doc *documents.Document) (*protocol.Hover, error) {
	if root == nil {
		if doc != nil && doc.LanguageKind() == syntax.LanguageSmartContract {
			return contractHover(source, pos)
		}
		return nil, nil
	}
	offset := syntax.PositionToByte(source, pos)
	ident := syntax.FindIdentifierAt(root, offset)
	if ident == nil {
		n := syntax.SmallestNodeAt(root, offset)
		return hoverGeneric(source, n, doc)
	}

	rng := syntax.NodeRange(source, ident)
	name := syntax.NodeText(source, ident)

	if ns, ok := memberNamespace(source, ident); ok && store.IsNamespace(ns) {
		if fn := store.GetFunction(ns, name); fn != nil {
			content, err := render(ffiHoverTemplate, fn)
			if err != nil {
				return nil, fmt.Errorf("providers: rendering FFI hover: %w", err)
			}
			return markdownHover(content, rng), nil
		}
	}

	if g := lookupGlobalAcrossNamespaces(store, name); g != nil {
		content, err := render(ffiGlobalHoverTemplate, g)
		if err != nil {
			return nil, fmt.Errorf("providers: rendering FFI global hover: %w", err)
		}
		return markdownHover(content, rng), nil
	}

	if fn := builtins.Lookup(name); fn != nil {
		content, err := render(builtinHoverTemplate, fn)
		if err != nil {
			return nil, fmt.Errorf("providers: rendering builtin hover: %w", err)
		}
		return markdownHover(content, rng), nil
	}

	return hoverGeneric(source, ident, doc)
}

// hoverGeneric renders spec §4.7.2 step 4: a generic block labelled by
// node kind. doc is unused by a tree-bearing document today but kept for
// symmetry with contractHover's signature.
func hoverGeneric(source []byte, n *sitter.Node, doc *documents.Document) (*protocol.Hover, error) {
	if n == nil {
		return nil, nil
	}
	data := struct {
		Kind      string
		Text      string
		GasCost   int
		GasSwatch string
	}{
		Kind: n.Kind(),
		Text: syntax.NodeText(source, n),
	}
	content, err := render(genericHoverTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("providers: rendering generic hover: %w", err)
	}
	return markdownHover(content, syntax.NodeRange(source, n)), nil
}

// contractHover renders the smart-contract gas-estimate hover (spec
// §4.7.2) for a document with no tree: it locates the function enclosing
// pos by brace depth (contract.EnclosingFunction) rather than walking a
// syntax tree, then estimates gas and its severity swatch. hoverGeneric,
// used for tree-bearing documents, does not estimate gas.
func contractHover(source []byte, pos protocol.Position) (*protocol.Hover, error) {
	text := string(source)
	lines := strings.Split(text, "\n")
	start, end, ok := contract.EnclosingFunction(text, int(pos.Line))
	if !ok {
		return nil, nil
	}

	body := strings.Join(lines[start:end+1], "\n")
	gas := contract.EstimateGas(body)
	data := struct {
		Kind      string
		Text      string
		GasCost   int
		GasSwatch string
	}{
		Kind:    "function",
		Text:    body,
		GasCost: gas,
	}
	if gas > 0 {
		data.GasSwatch = contract.GasSwatchColor(gas)
	}
	content, err := render(genericHoverTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("providers: rendering contract hover: %w", err)
	}

	rng := protocol.Range{
		Start: protocol.Position{Line: uint32(start), Character: 0},
		End:   protocol.Position{Line: uint32(end), Character: uint32(len(lines[end]))},
	}
	return markdownHover(content, rng), nil
}

func markdownHover(content string, rng protocol.Range) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: content},
		Range:    &rng,
	}
}

func render(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// memberNamespace reports the namespace identifier of a member
// expression whose selector is ident (spec's "textual" namespace
// detection, design note "Member-expression namespace detection").
func memberNamespace(source []byte, ident *sitter.Node) (string, bool) {
	parent := ident.Parent()
	if parent == nil {
		return "", false
	}
	switch parent.Kind() {
	case "member_expression", "subscript_expression":
	default:
		return "", false
	}
	obj := parent.ChildByFieldName("object")
	if obj == nil || !syntax.IsIdentifier(obj.Kind()) {
		return "", false
	}
	return syntax.NodeText(source, obj), true
}

func lookupGlobalAcrossNamespaces(store *ffi.Store, name string) *ffi.Global {
	for _, ns := range store.Namespaces() {
		if g := store.GetGlobal(ns, name); g != nil {
			return g
		}
	}
	return nil
}

