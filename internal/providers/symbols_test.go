package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestDocumentSymbolsFindsFunction(t *testing.T) {
	source := []byte("function greet() {\n  return 1;\n}\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	syms := providers.DocumentSymbols(tree.RootNode(), source)
	require.NotEmpty(t, syms)
	assert.Equal(t, "greet", syms[0].Name)
}

func TestWorkspaceIndexSubsequenceMatch(t *testing.T) {
	source := []byte("function greetWorld() {\n  return 1;\n}\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	idx := providers.NewWorkspaceIndex()
	idx.Reindex("file:///t/a.ghost", tree.RootNode(), source)

	results := idx.Query("gw")
	require.NotEmpty(t, results)
	assert.Equal(t, "greetWorld", results[0].Name)

	assert.Empty(t, idx.Query("zzz"))
	assert.NotEmpty(t, idx.Query(""))
}

func TestWorkspaceIndexRemove(t *testing.T) {
	source := []byte("function greet() {}\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	idx := providers.NewWorkspaceIndex()
	idx.Reindex("file:///t/a.ghost", tree.RootNode(), source)
	require.NotEmpty(t, idx.Query(""))

	idx.Remove("file:///t/a.ghost")
	assert.Empty(t, idx.Query(""))
}
