package providers

import (
	sitter "github.com/tree-sitter/go-tree-sitter"

	"ghostls/internal/builtins"
	"ghostls/internal/ffi"
	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

// SignatureHelpTriggerCharacters for textDocument/signatureHelp (spec §6).
var SignatureHelpTriggerCharacters = []string{"(", ","}

// SignatureHelp implements spec §4.7.13.
func SignatureHelp(root *sitter.Node, source []byte, pos protocol.Position, store *ffi.Store) *protocol.SignatureHelp {
	if root == nil {
		return nil
	}
	offset := syntax.PositionToByte(source, pos)
	call := enclosingCallExpression(root, offset)
	if call == nil {
		return nil
	}

	callee := call.ChildByFieldName("function")
	if callee == nil {
		return nil
	}
	name := syntax.NodeText(source, callee)

	var sig protocol.SignatureInformation
	switch {
	case callee.Kind() == "member_expression" || callee.Kind() == "subscript_expression":
		obj := callee.ChildByFieldName("object")
		prop := callee.ChildByFieldName("property")
		if obj == nil || prop == nil {
			return nil
		}
		ns := syntax.NodeText(source, obj)
		fnName := syntax.NodeText(source, prop)
		fn := store.GetFunction(ns, fnName)
		if fn == nil {
			return nil
		}
		sig = ffiSignature(fn)
	default:
		fn := builtins.Lookup(name)
		if fn == nil {
			return nil
		}
		sig = builtinSignature(fn)
	}

	args := call.ChildByFieldName("arguments")
	activeParam := uint32(0)
	if args != nil {
		activeParam = countTopLevelCommasBefore(args, offset)
	}

	return &protocol.SignatureHelp{
		Signatures:      []protocol.SignatureInformation{sig},
		ActiveSignature: 0,
		ActiveParameter: activeParam,
	}
}

func ffiSignature(fn *ffi.Function) protocol.SignatureInformation {
	params := make([]protocol.ParameterInformation, 0, len(fn.Parameters))
	for _, p := range fn.Parameters {
		doc := &protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: p.Description}
		params = append(params, protocol.ParameterInformation{Label: p.Name, Documentation: doc})
	}
	return protocol.SignatureInformation{
		Label:         fn.Signature,
		Documentation: &protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: fn.Description},
		Parameters:    params,
	}
}

func builtinSignature(fn *builtins.Function) protocol.SignatureInformation {
	return protocol.SignatureInformation{
		Label:         fn.Signature,
		Documentation: &protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: fn.Description},
	}
}

// enclosingCallExpression walks up from the smallest node at offset and
// returns the nearest call expression ancestor. Where offset lies within
// it is not checked, so a cursor on the callee name also matches.
func enclosingCallExpression(root *sitter.Node, offset uint) *sitter.Node {
	n := syntax.SmallestNodeAt(root, offset)
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur.Kind() == "call_expression" {
			return cur
		}
	}
	return nil
}

// countTopLevelCommasBefore counts commas that are direct children of
// args occurring before offset (spec §4.7.13 "count of top-level
// commas between the open parenthesis and the cursor").
func countTopLevelCommasBefore(args *sitter.Node, offset uint) uint32 {
	count := uint32(0)
	n := args.ChildCount()
	for i := uint(0); i < n; i++ {
		child := args.Child(i)
		if child == nil || child.StartByte() >= offset {
			break
		}
		if child.Kind() == "," {
			count++
		}
	}
	return count
}
