// Package assets fingerprints the files the server hands to browsers.
//
// A Manifest maps a source name to its fingerprinted name, which embeds a
// content hash so the file can be cached forever:
//
//	m := assets.NewManifest()
//	m.Add("animate.js", []byte(render.ClientScript))
//	r := assets.NewResolver(m, "/assets/")
//	r.Asset("animate.js") // "/assets/animate.3f9a1c0e.js"
//
// The Manifest also keeps the content, so one lookup serves both the page
// link and the file request.
package assets

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"sort"
	"strings"
	"sync"
)

// hashLen is the number of hex digits of the content hash kept in names.
const hashLen = 8

// Fingerprint returns name with a content hash inserted before the
// extension: "animate.js" becomes "animate.<hash>.js".
func Fingerprint(name string, content []byte) string {
	sum := sha256.Sum256(content)
	hash := hex.EncodeToString(sum[:])[:hashLen]
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + "." + hash + ext
}

// Entry is one fingerprinted file.
type Entry struct {
	Source  string
	Name    string
	Content []byte
}

// Manifest holds the mapping from source names to fingerprinted entries.
// It is safe for concurrent use.
type Manifest struct {
	mu      sync.RWMutex
	sources map[string]Entry
	names   map[string]string
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{
		sources: make(map[string]Entry),
		names:   make(map[string]string),
	}
}

// Add fingerprints content under source and returns the new name. Adding
// a source again replaces its previous entry.
func (m *Manifest) Add(source string, content []byte) string {
	e := Entry{
		Source:  source,
		Name:    Fingerprint(source, content),
		Content: append([]byte(nil), content...),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if old, ok := m.sources[source]; ok {
		delete(m.names, old.Name)
	}
	m.sources[source] = e
	m.names[e.Name] = source
	return e.Name
}

// Resolve returns the fingerprinted name for source, or source itself when
// it is unknown.
func (m *Manifest) Resolve(source string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.sources[source]; ok {
		return e.Name
	}
	return source
}

// Lookup finds an entry by its fingerprinted name.
func (m *Manifest) Lookup(name string) (Entry, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	source, ok := m.names[name]
	if !ok {
		return Entry{}, false
	}
	return m.sources[source], true
}

// Sources returns the registered source names, sorted.
func (m *Manifest) Sources() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.sources))
	for s := range m.sources {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
