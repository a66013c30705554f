// Package linter checks a rendered navigation document for structural problems.
package linter

import (
	"fmt"
	"math"
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/ingest"
)

type Diagnostic struct {
	// Path locates the node, e.g. "categories[2].subcategories[0]".
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Path, d.Message)
}

// Lint walks doc and reports every violation it finds. A document produced
// by a single conversion run lints clean.
func Lint(doc *api.Document) []Diagnostic {
	l := &linter{seenItems: make(map[int]string), itemIDs: roaring.New()}
	l.sentinels(doc.Categories)

	siblings := make(map[string]string)
	for i, c := range doc.Categories {
		path := fmt.Sprintf("categories[%d]", i)
		l.unique(siblings, c.ID, path)
		l.node(c, "", path, 0)
	}
	l.gaps()
	return l.diags
}

type linter struct {
	diags     []Diagnostic
	seenItems map[int]string
	itemIDs   *roaring.Bitmap
}

func (l *linter) report(path, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{Path: path, Message: fmt.Sprintf(format, args...)})
}

func (l *linter) sentinels(cats []api.Node) {
	if len(cats) < 2 {
		l.report("categories", "expected at least the %s and %s placeholders", ingest.DailyRandomID, ingest.CollectionID)
		return
	}
	if cats[0].ID != ingest.DailyRandomID {
		l.report("categories[0]", "first category is %q, want %q", cats[0].ID, ingest.DailyRandomID)
	} else if !cats[0].IsRandom {
		l.report("categories[0]", "%s must set isRandom", ingest.DailyRandomID)
	}
	last := len(cats) - 1
	if cats[last].ID != ingest.CollectionID {
		l.report(fmt.Sprintf("categories[%d]", last), "last category is %q, want %q", cats[last].ID, ingest.CollectionID)
	}
	for i, c := range cats {
		if c.ID == ingest.RawFilmsID && i != last-1 {
			l.report(fmt.Sprintf("categories[%d]", i), "%s must come right before %s", ingest.RawFilmsID, ingest.CollectionID)
		}
		if c.IsRandom && c.ID != ingest.DailyRandomID {
			l.report(fmt.Sprintf("categories[%d]", i), "only %s may set isRandom", ingest.DailyRandomID)
		}
	}
}

func (l *linter) unique(seen map[string]string, id, path string) {
	if prev, dup := seen[id]; dup {
		l.report(path, "duplicate id %q, first seen at %s", id, prev)
		return
	}
	seen[id] = path
}

// node checks n and its subtree. depth 0 is a category.
func (l *linter) node(n api.Node, parentID, path string, depth int) {
	if n.ID == "" {
		l.report(path, "empty id")
	}
	if strings.TrimSpace(n.Name) == "" {
		l.report(path, "empty name")
	}
	if n.Icon == "" {
		l.report(path, "empty icon")
	}
	if n.MaxItems <= 0 {
		l.report(path, "maxItems must be positive, got %d", n.MaxItems)
	}
	if n.Items == nil {
		l.report(path, "items missing")
	}
	if parentID != "" && !strings.HasPrefix(n.ID, parentID+"-") {
		l.report(path, "id %q does not extend parent id %q", n.ID, parentID)
	}

	for i, it := range n.Items {
		ipath := fmt.Sprintf("%s.items[%d]", path, i)
		switch prev, dup := l.seenItems[it.ID]; {
		case dup:
			l.report(ipath, "duplicate item id %d, first seen at %s", it.ID, prev)
		case it.ID < 1 || int64(it.ID) > math.MaxUint32:
			l.report(ipath, "item id %d is out of range", it.ID)
		default:
			l.seenItems[it.ID] = ipath
			l.itemIDs.Add(uint32(it.ID))
		}
		if strings.TrimSpace(it.URL) == "" {
			l.report(ipath, "empty url")
		}
	}

	switch depth {
	case 0:
		if len(n.Subclasses) > 0 {
			l.report(path, "category carries subclasses directly")
		}
		l.children(n, n.Subcategories, path+".subcategories", depth)
	case 1:
		if len(n.Subcategories) > 0 {
			l.report(path, "subcategory carries subcategories")
		}
		l.children(n, n.Subclasses, path+".subclasses", depth)
	default:
		if len(n.Subcategories) > 0 || len(n.Subclasses) > 0 {
			l.report(path, "subclass has children")
		}
	}
}

func (l *linter) children(parent api.Node, kids []api.Node, prefix string, depth int) {
	seen := make(map[string]string, len(kids))
	for i, c := range kids {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		l.unique(seen, c.ID, path)
		l.node(c, parent.ID, path, depth+1)
	}
}

// gaps requires item ids to run from 1 without holes. Each hole is one
// diagnostic, however many ids it spans.
func (l *linter) gaps() {
	var prev uint32
	it := l.itemIDs.Iterator()
	for it.HasNext() {
		id := it.Next()
		l.missing(prev+1, id-1)
		prev = id
	}
}

func (l *linter) missing(from, to uint32) {
	switch {
	case from > to:
	case from == to:
		l.report("items", "item id %d is missing", from)
	default:
		l.report("items", "item ids %d..%d are missing (%d ids)", from, to, to-from+1)
	}
}
