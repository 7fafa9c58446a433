// Package workspace implements the workspace scanner (spec §4.5,
// component C5): a one-shot recursive enumeration of project files at
// startup, reused by workspace/symbol and project-wide diagnostics.
package workspace

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"ghostls/internal/documents"
	"ghostls/internal/uriutil"
)

// skipDirs names directories the scanner never descends into, beyond any
// hidden ("." prefixed) directory.
var skipDirs = map[string]bool{
	"node_modules": true,
	"zig-cache":    true,
	"zig-out":      true,
	".git":         true,
}

// File is one file discovered under the workspace root.
type File struct {
	URI    string
	Path   string
	IsOpen bool
}

// Workspace holds the result of a scan plus the project configuration
// that shaped it.
type Workspace struct {
	RootDir string
	Config  *Config
	files   map[string]*File
}

// Scan walks rootDir, collecting every file whose extension is
// recognized (documents.RecognizedExtensions) and that is not excluded
// by the project config. Symlink loops are not followed; fs.WalkDir
// does not follow symlinks on its own.
func Scan(rootDir string) (*Workspace, error) {
	cfg, err := LoadConfig(rootDir)
	if err != nil {
		return nil, err
	}

	ws := &Workspace{RootDir: rootDir, Config: cfg, files: make(map[string]*File)}
	exts := documents.RecognizedExtensions()

	err = filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // best-effort: skip unreadable entries
		}
		name := d.Name()
		if d.IsDir() {
			if path != rootDir && (strings.HasPrefix(name, ".") || skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !hasRecognizedExtension(name, exts) {
			return nil
		}

		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		if matchesAny(cfg.Exclude, filepath.ToSlash(rel)) {
			return nil
		}

		uri := uriutil.PathToURI(path)
		ws.files[uri] = &File{URI: uri, Path: path}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}

// hasRecognizedExtension reports whether name ends in one of exts
// (longest-suffix semantics match documents.DetectLanguageKind).
func hasRecognizedExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// matchesAny reports whether rel matches any of the doublestar patterns.
// A malformed pattern never matches (and is not itself an error: bad
// config shouldn't halt a scan).
func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, rel)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// Files returns every discovered file, keyed by URI.
func (w *Workspace) Files() map[string]*File {
	return w.files
}

// MarkOpen flags the file at uri as currently open in the client, used
// by providers that prefer the live document text over disk content.
func (w *Workspace) MarkOpen(uri string, open bool) {
	if f, ok := w.files[uri]; ok {
		f.IsOpen = open
	}
}

// MatchesWatchPattern reports whether rel (workspace-relative, slash
// separated) matches one of the configured watch patterns (spec §6).
func (w *Workspace) MatchesWatchPattern(rel string) bool {
	return matchesAny(w.Config.WatchPatterns, rel)
}
