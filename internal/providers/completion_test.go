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

func TestCompletionAfterDotOnNamespace(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	docs := documents.NewStore()
	doc, _, err := docs.Open("file:///t/shell.gshrc", "shell.gshrc", 1, "shell.\n")
	require.NoError(t, err)

	list := providers.Completion(doc, protocol.Position{Line: 0, Character: 6}, store)
	require.NotNil(t, list)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "alias")
}

func TestCompletionGeneralIncludesKeywords(t *testing.T) {
	store, err := ffi.Load()
	require.NoError(t, err)

	docs := documents.NewStore()
	doc, _, err := docs.Open("file:///t/a.ghost", "a.ghost", 1, "\n")
	require.NoError(t, err)

	list := providers.Completion(doc, protocol.Position{Line: 0, Character: 0}, store)
	require.NotNil(t, list)

	var labels []string
	for _, item := range list.Items {
		labels = append(labels, item.Label)
	}
	assert.Contains(t, labels, "fn")
	assert.Contains(t, labels, "arrayPush")
}
