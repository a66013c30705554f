package ingest

import (
	"log/slog"
	"strings"

	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/graph"
	"github.com/agentic-research/navtree/internal/icon"
)

// Engine folds CSV rows into a navigation tree.
type Engine struct {
	Layout Layout
	Icons  IconResolver
	Logger *slog.Logger
}

func NewEngine(layout Layout, icons IconResolver) *Engine {
	if icons == nil {
		icons = icon.NewResolver()
	}
	return &Engine{
		Layout: layout,
		Icons:  icons,
		Logger: slog.Default(),
	}
}

// Result is the outcome of one build run.
type Result struct {
	Tree     *graph.Tree
	Document *api.Document
	// Items is the number of items created; ids run from 1 to Items.
	Items int
	// Skipped counts rows without a link or category.
	Skipped int
}

// Categories returns the number of built categories, sentinels excluded.
func (r *Result) Categories() int {
	return r.Tree.Len()
}

// Convert parses raw CSV text, builds the tree and renders the document.
func (e *Engine) Convert(raw string) *Result {
	rows := ParseCSV(raw, e.Layout.Columns)
	res := e.Build(rows)
	res.Document = Render(res.Tree, e.Layout)
	return res
}

// Build folds rows into a fresh tree. The item counter belongs to this call.
func (e *Engine) Build(rows []Row) *Result {
	log := e.logger()
	tree := graph.NewTree(DailyRandomID, RawFilmsID, CollectionID)
	res := &Result{Tree: tree}

	if e.Layout.Header && len(rows) > 0 {
		rows = rows[1:]
	}

	icons := e.icons()
	nextID := 1
	for i, r := range rows {
		f := e.Layout.extract(r)

		link := strings.TrimSpace(f.link)
		category := strings.TrimSpace(f.category)
		if link == "" || category == "" {
			log.Debug("skipping row without link or category", "row", i+1)
			res.Skipped++
			continue
		}

		link = strings.TrimSpace(trimQuotes(link))
		text := normalizeText(f.text)
		if text == "" {
			text = link
		}
		name := text
		if e.Layout.FlattenNames {
			name = strings.ReplaceAll(text, "\n", " ")
		}

		item := api.Item{ID: nextID, Name: name, URL: link, Text: text}
		nextID++

		e.place(tree, icons, category, strings.TrimSpace(f.class), strings.TrimSpace(f.subclass)).AddItem(item)
	}

	res.Items = nextID - 1
	return res
}

// place returns the deepest node implied by the populated columns, creating
// the missing levels on the way.
func (e *Engine) place(tree *graph.Tree, icons IconResolver, category, class, subclass string) *graph.Node {
	node, ok := tree.Category(tree.CategorySlug(category))
	if !ok {
		node, _ = tree.EnsureCategory(category, icons.Resolve(category, graph.LevelCategory))
		if slug := graph.Slug("", category); node.ID != slug {
			e.logger().Warn("category id taken by a placeholder, renamed",
				"category", category,
				"id", slug,
				"renamed", node.ID)
		}
	}
	if class == "" {
		return node
	}
	node = ensureChild(node, class, graph.LevelSubcategory, icons)
	if subclass == "" {
		return node
	}
	return ensureChild(node, subclass, graph.LevelSubclass, icons)
}

// ensureChild only consults the resolver when the child does not exist yet.
func ensureChild(parent *graph.Node, name string, level graph.Level, icons IconResolver) *graph.Node {
	if c, ok := parent.Child(graph.Slug(parent.ID, name)); ok {
		return c
	}
	c, _ := parent.EnsureChild(name, icons.Resolve(name, level))
	return c
}

func (e *Engine) icons() IconResolver {
	if e.Icons == nil {
		return icon.NewResolver()
	}
	return e.Icons
}

func (e *Engine) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.Default()
	}
	return e.Logger
}

// trimQuotes strips one leading and one trailing double quote.
func trimQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

// normalizeText keeps line structure but collapses whitespace runs within
// each line to a single space.
func normalizeText(s string) string {
	s = strings.TrimSpace(trimQuotes(s))
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}
