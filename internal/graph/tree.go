package graph

import (
	"sort"
	"strings"

	"github.com/agentic-research/navtree/api"
)

// Level is the depth of a node in the navigation hierarchy.
type Level int

const (
	LevelCategory Level = iota
	LevelSubcategory
	LevelSubclass
)

// MaxDepth is the number of supported hierarchy levels.
const MaxDepth = 3

// DefaultMaxItems is the advisory item cap written for every built node.
const DefaultMaxItems = 50

func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelSubcategory:
		return "subcategory"
	case LevelSubclass:
		return "subclass"
	default:
		return "unknown"
	}
}

// Node is a mutable tree node used while folding rows.
// Children are keyed by slug; the first row that creates a slug owns the
// node's name and icon.
type Node struct {
	ID       string
	Name     string
	Icon     string
	Level    Level
	MaxItems int
	Items    []api.Item

	children map[string]*Node
}

// Slug lowercases name and replaces spaces and slashes with hyphens,
// prefixed by the parent slug when there is one.
func Slug(parent, name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	if parent == "" {
		return s
	}
	return parent + "-" + s
}

// AddItem appends an item, keeping row order.
func (n *Node) AddItem(it api.Item) {
	n.Items = append(n.Items, it)
}

// Child returns the child with the given slug.
func (n *Node) Child(slug string) (*Node, bool) {
	c, ok := n.children[slug]
	return c, ok
}

// Children returns the children sorted by name.
func (n *Node) Children() []*Node {
	return sortedByName(n.children)
}

// EnsureChild returns the child whose slug derives from name, creating it
// with icon on first sight. The bool reports whether it was created.
func (n *Node) EnsureChild(name, icon string) (*Node, bool) {
	if n.Level+1 >= MaxDepth {
		panic("graph: hierarchy deeper than " + LevelSubclass.String())
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	slug := Slug(n.ID, name)
	return getOrCreate(n.children, slug, func() *Node {
		return newNode(slug, name, icon, n.Level+1)
	})
}

// ReservedSuffix is appended to a category slug that would take a reserved id.
const ReservedSuffix = "-category"

// Tree is the set of category roots built from one run.
type Tree struct {
	roots    map[string]*Node
	reserved map[string]bool
}

// NewTree returns an empty tree. Category slugs listed in reserved belong to
// nodes added outside the tree and are never handed to a built category.
func NewTree(reserved ...string) *Tree {
	t := &Tree{
		roots:    make(map[string]*Node),
		reserved: make(map[string]bool, len(reserved)),
	}
	for _, id := range reserved {
		t.reserved[id] = true
	}
	return t
}

// CategorySlug returns the id a category called name gets in this tree.
func (t *Tree) CategorySlug(name string) string {
	slug := Slug("", name)
	if t.reserved[slug] {
		return slug + ReservedSuffix
	}
	return slug
}

// EnsureCategory returns the category for name, creating it on first sight.
func (t *Tree) EnsureCategory(name, icon string) (*Node, bool) {
	slug := t.CategorySlug(name)
	return getOrCreate(t.roots, slug, func() *Node {
		return newNode(slug, name, icon, LevelCategory)
	})
}

// Category looks up a category by slug.
func (t *Tree) Category(slug string) (*Node, bool) {
	n, ok := t.roots[slug]
	return n, ok
}

// Categories returns the categories sorted by name.
func (t *Tree) Categories() []*Node {
	return sortedByName(t.roots)
}

// Len returns the number of categories.
func (t *Tree) Len() int {
	return len(t.roots)
}

func newNode(id, name, icon string, level Level) *Node {
	return &Node{
		ID:       id,
		Name:     name,
		Icon:     icon,
		Level:    level,
		MaxItems: DefaultMaxItems,
	}
}

func getOrCreate(m map[string]*Node, key string, factory func() *Node) (*Node, bool) {
	if n, ok := m[key]; ok {
		return n, false
	}
	n := factory()
	m[key] = n
	return n, true
}

// sortedByName orders nodes by name, byte-wise. Byte order on UTF-8 equals
// code point order. Names are unique per map since equal names share a slug.
func sortedByName(m map[string]*Node) []*Node {
	out := make([]*Node, 0, len(m))
	for _, n := range m {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
