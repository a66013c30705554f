package ingest

import (
	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/graph"
)

// Sentinel ids, stable across runs.
const (
	DailyRandomID = "daily-random"
	RawFilmsID    = "raw-films"
	CollectionID  = "collection"
)

func dailyRandom() api.Node {
	return api.Node{
		ID:       DailyRandomID,
		Name:     "每日随机",
		Icon:     "🌟",
		IsRandom: true,
		MaxItems: 20,
		Items:    []api.Item{},
	}
}

func rawFilms() api.Node {
	return api.Node{
		ID:         RawFilmsID,
		Name:       "原片分类",
		Icon:       "🎬",
		IsTextOnly: true,
		MaxItems:   graph.DefaultMaxItems,
		Items:      []api.Item{},
	}
}

func collection() api.Node {
	return api.Node{
		ID:       CollectionID,
		Name:     "我的合集",
		Icon:     "📚",
		MaxItems: graph.DefaultMaxItems,
		Items:    []api.Item{},
	}
}

// Render flattens the tree into the output document, wrapping the sorted
// categories with the sentinel placeholders.
func Render(tree *graph.Tree, layout Layout) *api.Document {
	cats := tree.Categories()
	doc := &api.Document{Categories: make([]api.Node, 0, len(cats)+3)}

	doc.Categories = append(doc.Categories, dailyRandom())
	for _, c := range cats {
		doc.Categories = append(doc.Categories, renderNode(c))
	}
	if layout.RawFilms {
		doc.Categories = append(doc.Categories, rawFilms())
	}
	doc.Categories = append(doc.Categories, collection())
	return doc
}

func renderNode(n *graph.Node) api.Node {
	out := api.Node{
		ID:       n.ID,
		Name:     n.Name,
		Icon:     n.Icon,
		MaxItems: n.MaxItems,
		Items:    n.Items,
	}
	if out.Items == nil {
		out.Items = []api.Item{}
	}

	var children []api.Node
	for _, c := range n.Children() {
		children = append(children, renderNode(c))
	}
	switch n.Level {
	case graph.LevelCategory:
		out.Subcategories = children
	case graph.LevelSubcategory:
		out.Subclasses = children
	}
	return out
}
