package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestInlayHintsForLiteralInitializers(t *testing.T) {
	source := []byte("let count = 1;\nlet name = \"hi\";\nlet flag = true;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	rng := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 2, Character: 16},
	}
	hints := providers.InlayHints(tree.RootNode(), source, rng)
	require.NotEmpty(t, hints)

	var labels []string
	for _, h := range hints {
		labels = append(labels, h.Label)
	}
	assert.Contains(t, labels, ": number")
	assert.Contains(t, labels, ": boolean")
}

func TestInlayHintsNilRoot(t *testing.T) {
	assert.Nil(t, providers.InlayHints(nil, nil, protocol.Range{}))
}
