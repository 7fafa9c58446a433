// Package watcher implements the poll-based filesystem watcher (spec
// §4.9, component C9): mtime comparison over a registry of files,
// emitting synthetic change events when CheckForChanges is called, with
// no background goroutine. The server registers and unregisters files
// here but does not itself call CheckForChanges.
package watcher

import (
	"os"
	"time"
)

// ChangeKind classifies one CheckForChanges result.
type ChangeKind int

const (
	// Unchanged means the file's mtime matches the last recorded value.
	Unchanged ChangeKind = iota
	Changed
	Deleted
)

// record is one registered {uri, path, last_mtime} entry (spec §4.9).
type record struct {
	uri       string
	path      string
	lastMtime time.Time
}

// Event is one synthetic change the watcher detected.
type Event struct {
	URI  string
	Kind ChangeKind
}

// Watcher polls a registry of file paths for mtime changes. Pattern
// matching against workspace.Config.WatchPatterns is informational only
// (spec §4.9): the registry itself decides what gets polled.
type Watcher struct {
	records map[string]*record
}

// New returns an empty watcher.
func New() *Watcher {
	return &Watcher{records: make(map[string]*record)}
}

// Register adds uri/path to the poll registry, stat'ing it once to seed
// last_mtime. A path that doesn't exist yet is registered with a zero
// mtime so the first CheckForChanges call reports it deleted, not
// changed.
func (w *Watcher) Register(uri, path string) {
	mtime := time.Time{}
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}
	w.records[uri] = &record{uri: uri, path: path, lastMtime: mtime}
}

// Unregister drops uri from the poll registry.
func (w *Watcher) Unregister(uri string) {
	delete(w.records, uri)
}

// CheckForChanges stats every registered path once, emitting Deleted
// when the stat fails, Changed when mtime has advanced, and nothing for
// everything else (spec §4.9). Changed records have their stored mtime
// updated so repeated calls don't re-report the same change; a path that
// stays missing is reported Deleted on every call until it is
// unregistered.
func (w *Watcher) CheckForChanges() []Event {
	var events []Event
	for _, rec := range w.records {
		info, err := os.Stat(rec.path)
		if err != nil {
			events = append(events, Event{URI: rec.uri, Kind: Deleted})
			continue
		}
		if info.ModTime().After(rec.lastMtime) {
			rec.lastMtime = info.ModTime()
			events = append(events, Event{URI: rec.uri, Kind: Changed})
		}
	}
	return events
}
