package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestCodeActionsAlwaysIncludesRefactorStubs(t *testing.T) {
	source := []byte("let x = 1;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	rng := protocol.Range{Start: protocol.Position{Line: 0, Character: 0}, End: protocol.Position{Line: 0, Character: 11}}
	actions := providers.CodeActions("file:///t/a.ghost", tree.RootNode(), source, rng)
	require.NotEmpty(t, actions)

	var titles []string
	for _, a := range actions {
		titles = append(titles, a.Title)
	}
	assert.Contains(t, titles, "Extract function")
	assert.Contains(t, titles, "Inline variable")
}

func TestCodeActionsNilRootStillReturnsStubs(t *testing.T) {
	rng := protocol.Range{}
	actions := providers.CodeActions("file:///t/a.ghost", nil, nil, rng)
	require.Len(t, actions, 2)
}
