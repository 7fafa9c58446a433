package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestFoldingRangeOfFunction(t *testing.T) {
	source := []byte("function f() {\n  let a = 1;\n  let b = 2;\n  let c = 3;\n  let d = 4;\n  let e = 5;\n  let g = 6;\n  let h = 7;\n  return a;\n}\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	ranges := providers.FoldingRanges(tree.RootNode(), source)
	require.NotEmpty(t, ranges)
	for _, r := range ranges {
		assert.Greater(t, r.EndLine, r.StartLine)
	}

	var found bool
	for _, r := range ranges {
		if r.StartLine == 0 && r.EndLine == 9 {
			found = true
		}
	}
	assert.True(t, found, "expected a folding range spanning the whole function")
}
