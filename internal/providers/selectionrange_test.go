package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/providers"
	"ghostls/internal/protocol"
	"ghostls/internal/syntax"
)

func TestSelectionRangeNesting(t *testing.T) {
	source := []byte("let foo = bar + 1;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	ranges := providers.SelectionRanges(tree.RootNode(), source, []protocol.Position{{Line: 0, Character: 11}})
	require.Len(t, ranges, 1)
	require.NotNil(t, ranges[0])

	for link := ranges[0]; link.Parent != nil; link = link.Parent {
		assert.True(t, link.Parent.Range.ContainsRange(link.Range))
	}
}
