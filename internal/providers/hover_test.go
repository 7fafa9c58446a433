package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/documents"
	"ghostls/internal/ffi"
	"ghostls/internal/providers"
	"ghostls/internal/protocol"
)

func TestHoverOnBuiltin(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	docs := documents.NewStore()
	doc, _, err := docs.Open("file:///t/a.ghost", "a.ghost", 1, "arrayPush(xs, 1)\n")
	require.NoError(t, err)

	hover, err := providers.Hover(doc.Root(), doc.Bytes(), protocol.Position{Line: 0, Character: 2}, store, doc)
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.Value, "arrayPush(array")
	assert.Contains(t, hover.Contents.Value, "array")
}

func TestHoverOnSmartContractFunctionShowsGasSwatch(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	docs := documents.NewStore()
	text := "fn withdraw(amount) {\n" +
		"  storage[balance] = storage[balance] - amount\n" +
		"  target.transfer(amount)\n" +
		"}\n"
	doc, _, err := docs.Open("file:///t/a.gcontract", "a.gcontract", 1, text)
	require.NoError(t, err)
	require.Nil(t, doc.Root()) // the dialect has no syntax tree

	hover, err := providers.Hover(doc.Root(), doc.Bytes(), protocol.Position{Line: 1, Character: 2}, store, doc)
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.Value, "Estimated gas cost")
	assert.Contains(t, hover.Contents.Value, "severity `")
}

func TestHoverOnFFINamespace(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	docs := documents.NewStore()
	doc, _, err := docs.Open("file:///t/a.gsh", "a.gsh", 1, "shell.alias(\"ll\", \"ls -la\")\n")
	require.NoError(t, err)

	hover, err := providers.Hover(doc.Root(), doc.Bytes(), protocol.Position{Line: 0, Character: 7}, store, doc)
	require.NoError(t, err)
	require.NotNil(t, hover)
	assert.Contains(t, hover.Contents.Value, "alias")
}
