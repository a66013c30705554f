package ingest

import (
	"fmt"
	"sort"
)

// Layout describes one CSV export variant.
type Layout struct {
	Name string
	// Columns is the fixed row width; 6 means a source column sits at index 3.
	Columns int
	// Header drops the first parsed row without looking at it.
	Header bool
	// FlattenNames replaces line breaks in item names with spaces.
	FlattenNames bool
	// RawFilms appends the text-only raw-films sentinel.
	RawFilms bool
}

var layouts = map[string]Layout{
	"portal": {Name: "portal", Columns: 5, Header: true, RawFilms: true},
	"basic":  {Name: "basic", Columns: 5},
	"legacy": {Name: "legacy", Columns: 6, FlattenNames: true},
}

// DefaultLayout is the layout of the current portal export.
const DefaultLayout = "portal"

// LookupLayout returns the named layout.
func LookupLayout(name string) (Layout, error) {
	l, ok := layouts[name]
	if !ok {
		return Layout{}, fmt.Errorf("unknown layout %q (known: %v)", name, LayoutNames())
	}
	return l, nil
}

// LayoutNames lists registered layouts alphabetically.
func LayoutNames() []string {
	names := make([]string, 0, len(layouts))
	for n := range layouts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// fields is a row split into its meaningful columns.
type fields struct {
	link, category, class, subclass, text string
}

func (l Layout) extract(r Row) fields {
	r = r.fit(l.Columns)
	f := fields{link: r[0], category: r[1], class: r[2]}
	if l.Columns >= 6 {
		// r[3] is the unused source column.
		f.subclass, f.text = r[4], r[5]
	} else {
		f.subclass, f.text = r[3], r[4]
	}
	return f
}
