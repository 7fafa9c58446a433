package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/ffi"
	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestSignatureHelpForFFICall(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	source := []byte("shell.exec(\"ls\", )\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	help := providers.SignatureHelp(tree.RootNode(), source, protocol.Position{Line: 0, Character: 18}, store)
	require.NotNil(t, help)
	require.Len(t, help.Signatures, 1)
	assert.Equal(t, uint32(1), help.ActiveParameter)
}

func TestSignatureHelpNoEnclosingCall(t *testing.T) {
	source := []byte("let x = 1;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	store, err := ffi.Load()
	require.NoError(t, err)

	help := providers.SignatureHelp(tree.RootNode(), source, protocol.Position{Line: 0, Character: 5}, store)
	assert.Nil(t, help)
}
