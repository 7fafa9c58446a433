package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the project configuration file the scanner looks for
// at the workspace root.
const ConfigFileName = ".ghostls.yaml"

// Config is the user-editable project configuration (spec §6 "Project
// configuration"). Absence of the file is not an error; LoadConfig then
// returns a Config holding only the default watch patterns.
type Config struct {
	// Exclude lists additional doublestar glob patterns to skip during
	// workspace scanning, on top of the built-in skip list.
	Exclude []string `yaml:"exclude"`

	// WatchPatterns lists glob patterns that should be reported to the
	// client for file-system watching (spec §6 "Watch patterns").
	WatchPatterns []string `yaml:"watchPatterns"`
}

// defaultWatchPatterns is used when a loaded Config has no explicit
// watchPatterns entry.
var defaultWatchPatterns = []string{"**/*.ghost", "**/*.gza", "**/*.gsh", "**/*.gshrc", "**/*.gcontract"}

// LoadConfig reads and parses rootDir's .ghostls.yaml. A missing file
// returns a Config with no excludes and the default watch patterns, and
// no error; a file without watchPatterns also gets the defaults. A
// present-but-malformed file is an error (the caller decides whether
// that's fatal).
func LoadConfig(rootDir string) (*Config, error) {
	path := filepath.Join(rootDir, ConfigFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{WatchPatterns: defaultWatchPatterns}, nil
		}
		return nil, fmt.Errorf("workspace: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("workspace: parsing %s: %w", path, err)
	}
	if len(cfg.WatchPatterns) == 0 {
		cfg.WatchPatterns = defaultWatchPatterns
	}
	return &cfg, nil
}
