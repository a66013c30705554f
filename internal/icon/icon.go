// Package icon maps category, subcategory and subclass names to display glyphs.
package icon

import (
	"strings"

	"github.com/agentic-research/navtree/internal/graph"
)

// Entry pairs a name with its glyph.
type Entry struct {
	Name  string
	Glyph string
}

const (
	DefaultCategory    = "📁"
	DefaultSubcategory = "📂"
	DefaultSubclass    = "📄"
)

// Resolver looks names up in an ordered table.
// Substring matching walks the table in order and returns the first hit, so
// moving entries around can change which glyph a partial name gets.
type Resolver struct {
	entries []Entry
	exact   map[string]string
}

// NewResolver builds a resolver over the curated table. Overrides are placed
// ahead of the curated entries and win both exact and substring lookups.
func NewResolver(overrides ...Entry) *Resolver {
	entries := make([]Entry, 0, len(overrides)+len(curated))
	entries = append(entries, overrides...)
	entries = append(entries, curated...)

	exact := make(map[string]string, len(entries))
	kept := entries[:0]
	for _, e := range entries {
		if _, dup := exact[e.Name]; dup {
			continue
		}
		exact[e.Name] = e.Glyph
		kept = append(kept, e)
	}
	return &Resolver{entries: kept, exact: exact}
}

// Resolve returns the glyph for name at the given level.
func (r *Resolver) Resolve(name string, level graph.Level) string {
	if name == "" {
		return Default(level)
	}
	if g, ok := r.exact[name]; ok {
		return g
	}
	if level == graph.LevelSubcategory || level == graph.LevelSubclass {
		for _, e := range r.entries {
			if strings.Contains(name, e.Name) || strings.Contains(e.Name, name) {
				return e.Glyph
			}
		}
	}
	return Default(level)
}

// Entries returns the effective table in lookup order.
func (r *Resolver) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Default returns the fallback glyph for a level.
func Default(level graph.Level) string {
	switch level {
	case graph.LevelSubcategory:
		return DefaultSubcategory
	case graph.LevelSubclass:
		return DefaultSubclass
	default:
		return DefaultCategory
	}
}
