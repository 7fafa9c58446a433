// Package builtins holds baked-in documentation for the scripting
// language's standard library — as distinct from the FFI catalog
// (internal/ffi), which documents host-provided namespaced functions.
// Hover and completion fall back to this table for bare identifiers
// that aren't FFI member accesses (spec §4.7.2 step 3).
package builtins

// Function documents one standard-library routine.
type Function struct {
	Name        string
	Signature   string
	Description string
}

// Keywords lists the reserved words offered in completion's "general"
// context (spec §4.7.3).
var Keywords = []string{
	"fn", "let", "const", "var", "if", "else", "for", "while", "return",
	"break", "continue", "true", "false", "nil", "class", "struct",
	"enum", "interface", "import", "export",
}

// catalog is keyed by function name for O(1) lookup.
var catalog = map[string]*Function{
	"arrayPush": {
		Name:        "arrayPush",
		Signature:   "arrayPush(array, value) -> array",
		Description: "Appends `value` to the end of `array` and returns the same array.",
	},
	"arrayPop": {
		Name:        "arrayPop",
		Signature:   "arrayPop(array) -> any",
		Description: "Removes and returns the last element of `array`.",
	},
	"arrayLen": {
		Name:        "arrayLen",
		Signature:   "arrayLen(array) -> number",
		Description: "Returns the number of elements in `array`.",
	},
	"print": {
		Name:        "print",
		Signature:   "print(...values) -> nil",
		Description: "Writes each value to standard output, separated by spaces, followed by a newline.",
	},
	"typeOf": {
		Name:        "typeOf",
		Signature:   "typeOf(value) -> string",
		Description: "Returns the runtime type name of `value`.",
	},
	"stringSplit": {
		Name:        "stringSplit",
		Signature:   "stringSplit(s, sep) -> array",
		Description: "Splits `s` on every occurrence of `sep`, returning an array of substrings.",
	},
	"stringJoin": {
		Name:        "stringJoin",
		Signature:   "stringJoin(array, sep) -> string",
		Description: "Joins the elements of `array` with `sep` between them.",
	},
	"require": {
		Name:        "require",
		Signature:   "require(condition, message?) -> nil",
		Description: "Aborts execution with `message` if `condition` is false.",
	},
	"assert": {
		Name:        "assert",
		Signature:   "assert(condition, message?) -> nil",
		Description: "Equivalent to `require`; raises with `message` if `condition` is false.",
	},
}

// Lookup returns the named built-in, or nil.
func Lookup(name string) *Function {
	return catalog[name]
}

// Names returns every built-in name, used by completion's general
// context.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	return names
}
