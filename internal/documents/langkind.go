package documents

import (
	"strings"

	"ghostls/internal/syntax"
)

// suffixRule pairs a file-name suffix with the language kind it selects.
// Longer suffixes are checked first so e.g. ".gshrc.gza" matches before
// the shorter ".gza", per spec §4.4 ("longest match wins").
type suffixRule struct {
	suffix string
	kind   syntax.LanguageKind
}

// suffixTable is kept sorted longest-first; DetectLanguageKind relies on
// that order rather than re-sorting on every call.
var suffixTable = []suffixRule{
	{".gshrc.gza", syntax.LanguageShellConfig},
	{".gcontract", syntax.LanguageSmartContract},
	{".gshrc", syntax.LanguageShellConfig},
	{".ghost", syntax.LanguagePrimary},
	{".gza", syntax.LanguagePrimary},
	{".gsh", syntax.LanguageShellScript},
}

// RecognizedExtensions lists every suffix the workspace scanner (C5)
// treats as part of the project, longest-first (spec §6 "Recognized file
// extensions").
func RecognizedExtensions() []string {
	exts := make([]string, len(suffixTable))
	for i, r := range suffixTable {
		exts[i] = r.suffix
	}
	return exts
}

// DetectLanguageKind classifies a file by its name suffix. An unknown
// suffix defaults to LanguagePrimary (spec §4.4 edge policy).
func DetectLanguageKind(filename string) syntax.LanguageKind {
	lower := strings.ToLower(filename)
	for _, rule := range suffixTable {
		if strings.HasSuffix(lower, rule.suffix) {
			return rule.kind
		}
	}
	return syntax.LanguagePrimary
}
