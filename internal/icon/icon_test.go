package icon

import (
	"testing"

	"github.com/agentic-research/navtree/internal/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver()

	tests := []struct {
		name  string
		input string
		level graph.Level
		want  string
	}{
		{"exact category", "影视", graph.LevelCategory, "🎬"},
		{"exact subcategory", "格斗", graph.LevelSubcategory, "👊"},
		{"exact subclass", "mk", graph.LevelSubclass, "🥊"},
		{"exact match beats substring", "火影手游/究极风暴", graph.LevelSubclass, "🥷"},
		{"category never substring matches", "影视杂谈", graph.LevelCategory, DefaultCategory},
		{"key inside name", "格斗游戏", graph.LevelSubcategory, "👊"},
		{"name inside key", "音乐", graph.LevelSubclass, "🎵"},
		{"subcategory default", "qqq", graph.LevelSubcategory, DefaultSubcategory},
		{"subclass default", "qqq", graph.LevelSubclass, DefaultSubclass},
		{"category default", "qqq", graph.LevelCategory, DefaultCategory},
		{"empty name", "", graph.LevelSubclass, DefaultSubclass},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.input, tt.level))
		})
	}
}

func TestResolver_ExactMatchAtEveryLevel(t *testing.T) {
	r := NewResolver()
	for _, e := range r.Entries() {
		for _, level := range []graph.Level{graph.LevelCategory, graph.LevelSubcategory, graph.LevelSubclass} {
			require.Equal(t, e.Glyph, r.Resolve(e.Name, level), "%s at %s", e.Name, level)
		}
	}
}

func TestResolver_Overrides(t *testing.T) {
	r := NewResolver(Entry{Name: "影视", Glyph: "🍿"}, Entry{Name: "播客", Glyph: "🎧"})

	assert.Equal(t, "🍿", r.Resolve("影视", graph.LevelCategory))
	assert.Equal(t, "🎧", r.Resolve("播客", graph.LevelCategory))
	// Overrides come first in the table, so they also win substring lookups.
	assert.Equal(t, "🎧", r.Resolve("深夜播客", graph.LevelSubcategory))

	entries := r.Entries()
	require.NotEmpty(t, entries)
	assert.Equal(t, "影视", entries[0].Name)
	assert.Equal(t, "播客", entries[1].Name)
	for _, e := range entries[2:] {
		assert.NotEqual(t, "影视", e.Name, "duplicate key kept")
	}
}

func TestCuratedTable_NoDuplicates(t *testing.T) {
	seen := make(map[string]bool, len(curated))
	for _, e := range curated {
		assert.False(t, seen[e.Name], "duplicate curated key %q", e.Name)
		seen[e.Name] = true
		assert.NotEmpty(t, e.Glyph)
	}
}
