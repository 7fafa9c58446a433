// Package ffi implements the FFI definition store (spec §4.3, component
// C3): an embedded JSON catalog of extension-language functions and
// globals, grouped by namespace, answering lookups for hover,
// completion, and signature help.
package ffi

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/tidwall/jsonc"
)

//go:embed data/catalog.jsonc
var embeddedCatalog []byte

// Parameter documents one argument of an FFIFunction.
type Parameter struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Return documents an FFIFunction's result.
type Return struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Function is an immutable (after load) description of one callable
// extension-language routine.
type Function struct {
	Name        string      `json:"-"`
	Namespace   string      `json:"-"`
	Signature   string      `json:"signature"`
	Description string      `json:"description"`
	Parameters  []Parameter `json:"parameters"`
	Return      Return      `json:"return"`
	Examples    []string    `json:"examples"`
}

// Global is an immutable (after load) description of one extension
// global variable.
type Global struct {
	Name        string `json:"-"`
	Namespace   string `json:"-"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Readonly    bool   `json:"readonly"`
}

// namespace groups the functions and globals defined under one name
// (e.g. "shell", "git").
type namespace struct {
	Functions map[string]*Function `json:"functions"`
	Globals   map[string]*Global   `json:"globals"`
}

type catalogFile struct {
	Namespaces map[string]*namespace `json:"namespaces"`
}

// Store answers FFI lookups for hover, completion, and signature help.
// Immutable after Load (spec §3 "FFIFunction/FFIGlobal: immutable after
// load"), so it needs no locking once construction completes.
type Store struct {
	namespaces map[string]*namespace
}

// Load decodes the embedded catalog. A malformed catalog is a fatal
// startup condition per spec §4.3 ("Failure during load ... is fatal at
// startup"): Load returns an error and main() is expected to exit.
func Load() (*Store, error) {
	return loadBytes(embeddedCatalog)
}

func loadBytes(raw []byte) (*Store, error) {
	clean := jsonc.ToJSON(raw)
	var file catalogFile
	if err := json.Unmarshal(clean, &file); err != nil {
		return nil, fmt.Errorf("ffi: malformed catalog: %w", err)
	}

	for nsName, ns := range file.Namespaces {
		for name, fn := range ns.Functions {
			fn.Name = name
			fn.Namespace = nsName
		}
		for name, g := range ns.Globals {
			g.Name = name
			g.Namespace = nsName
		}
	}

	return &Store{namespaces: file.Namespaces}, nil
}

// GetFunction returns the named function in namespace, or nil.
func (s *Store) GetFunction(namespace, name string) *Function {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil
	}
	return ns.Functions[name]
}

// GetGlobal returns the named global in namespace, or nil.
func (s *Store) GetGlobal(namespace, name string) *Global {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil
	}
	return ns.Globals[name]
}

// Functions returns every function in namespace, sorted by name for
// deterministic completion ordering (spec §8 I8-adjacent determinism
// expectations; the spec itself only requires completion ranking be
// "stable across identical queries").
func (s *Store) Functions(namespace string) []*Function {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil
	}
	out := make([]*Function, 0, len(ns.Functions))
	for _, fn := range ns.Functions {
		out = append(out, fn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Globals returns every global in namespace, sorted by name.
func (s *Store) Globals(namespace string) []*Global {
	ns, ok := s.namespaces[namespace]
	if !ok {
		return nil
	}
	out := make([]*Global, 0, len(ns.Globals))
	for _, g := range ns.Globals {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Namespaces returns the set of known namespace names, sorted.
func (s *Store) Namespaces() []string {
	out := make([]string, 0, len(s.namespaces))
	for name := range s.namespaces {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// IsNamespace reports whether name is a known FFI namespace; used by the
// completion and hover providers' textual member-expression detection
// (design note: "Member-expression namespace detection is textual").
func (s *Store) IsNamespace(name string) bool {
	_, ok := s.namespaces[name]
	return ok
}

// shellFileExtensions names the suffixes whose completions should
// include shell FFI globals (spec §4.7.3 "General: include FFI globals
// when the current document supports shell FFI").
var shellFileExtensions = map[string]bool{
	".gsh":       true,
	".gshrc":     true,
	".gshrc.gza": true,
}

// IsShellFile reports whether a file extension belongs to a shell
// dialect that exposes FFI globals directly (unqualified, not behind a
// namespace prefix).
func IsShellFile(extension string) bool {
	return shellFileExtensions[extension]
}
