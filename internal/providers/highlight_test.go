package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/protocol"
	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestDocumentHighlightLabelsWriteAndRead(t *testing.T) {
	source := []byte("let foo = 1;\nfoo = 2;\nprint(foo);\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	highlights := providers.DocumentHighlight(tree.RootNode(), source, protocol.Position{Line: 2, Character: 7})
	require.Len(t, highlights, 3)

	var reads, writes int
	for _, h := range highlights {
		switch h.Kind {
		case protocol.DocumentHighlightKindWrite:
			writes++
		case protocol.DocumentHighlightKindRead:
			reads++
		}
	}
	assert.Equal(t, 2, writes) // the `let` declaration and the assignment
	assert.Equal(t, 1, reads)
}

func TestDocumentHighlightNoIdentifierAtPosition(t *testing.T) {
	source := []byte("let foo = 1;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	highlights := providers.DocumentHighlight(tree.RootNode(), source, protocol.Position{Line: 0, Character: 0})
	assert.Nil(t, highlights)
}
