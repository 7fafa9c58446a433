package workspace_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ghostls/internal/workspace"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestScanFindsRecognizedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.ghost", "print(1)")
	writeFile(t, root, "lib/helper.gza", "return {}")
	writeFile(t, root, "scripts/build.gsh", "shell.exec(\"ls\")")
	writeFile(t, root, "README.md", "# not recognized")
	writeFile(t, root, "node_modules/dep/index.ghost", "ignored")
	writeFile(t, root, ".git/hooks/pre-commit.ghost", "ignored")

	ws, err := workspace.Scan(root)
	require.NoError(t, err)

	assert.Len(t, ws.Files(), 3)
	for uri := range ws.Files() {
		assert.NotContains(t, uri, "node_modules")
		assert.NotContains(t, uri, ".git")
	}
}

func TestScanHonorsExcludeConfig(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.ghost", "print(1)")
	writeFile(t, root, "vendor/pkg.ghost", "vendored")
	writeFile(t, root, ".ghostls.yaml", "exclude:\n  - \"vendor/**\"\n")

	ws, err := workspace.Scan(root)
	require.NoError(t, err)

	assert.Len(t, ws.Files(), 1)
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	root := t.TempDir()
	cfg, err := workspace.LoadConfig(root)
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.WatchPatterns)
	assert.Empty(t, cfg.Exclude)
}

func TestMatchesWatchPattern(t *testing.T) {
	root := t.TempDir()
	ws, err := workspace.Scan(root)
	require.NoError(t, err)

	assert.True(t, ws.MatchesWatchPattern("src/main.ghost"))
	assert.False(t, ws.MatchesWatchPattern("src/main.txt"))
}
