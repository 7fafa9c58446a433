package providers_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/contract"
	"ghostls/internal/providers"
	"ghostls/internal/syntax"
)

func TestDiagnosticsReportsSyntaxError(t *testing.T) {
	source := []byte("fn test() {\n    let x = 42\n}\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	diags := providers.Diagnostics(tree.RootNode(), source, false, nil)
	require.NotEmpty(t, diags)
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
}

func TestDiagnosticsDedupeByStartPosition(t *testing.T) {
	source := []byte("let x = ;\n")
	tree, err := syntax.NewTree(syntax.LanguagePrimary, source)
	require.NoError(t, err)
	defer tree.Close()

	diags := providers.Diagnostics(tree.RootNode(), source, false, nil)
	seen := map[string]bool{}
	for _, d := range diags {
		key := fmt.Sprintf("%d:%d", d.Range.Start.Line, d.Range.Start.Character)
		assert.False(t, seen[key], "duplicate diagnostic at %v", d.Range.Start)
		seen[key] = true
	}
}

func TestDiagnosticsAlwaysNonNilSlice(t *testing.T) {
	diags := providers.Diagnostics(nil, nil, false, nil)
	assert.NotNil(t, diags)
	assert.Empty(t, diags)
}

func TestDiagnosticsSmartContractDefersToAnalyzer(t *testing.T) {
	text := "fn withdraw() {\n    external.call()\n    storage[balance] = 0\n}\n"
	diags := providers.Diagnostics(nil, []byte(text), true, contract.DefaultAnalyzer{})
	var codes []string
	for _, d := range diags {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, "reentrancy")
}
