package ingest

import "github.com/agentic-research/navtree/internal/graph"

// IconResolver picks a glyph for a newly created node.
// *icon.Resolver is the production implementation; tests can count calls.
type IconResolver interface {
	Resolve(name string, level graph.Level) string
}
