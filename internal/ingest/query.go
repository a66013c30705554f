package ingest

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// QueryDocument evaluates a JSONPath selector against an encoded document.
func QueryDocument(raw []byte, selector string) ([]any, error) {
	root, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return query(root, selector)
}

func query(root any, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	return x.Get(root), nil
}

// Summary counts what an encoded document holds.
type Summary struct {
	Categories    int
	Sentinels     int
	Subcategories int
	Subclasses    int
	Items         int
}

const (
	pathCategories    = "$.categories[*]"
	pathSubcategories = "$.categories[*].subcategories[*]"
	pathSubclasses    = "$.categories[*].subcategories[*].subclasses[*]"
)

var itemPaths = []string{
	"$.categories[*].items[*]",
	"$.categories[*].subcategories[*].items[*]",
	"$.categories[*].subcategories[*].subclasses[*].items[*]",
}

// Summarize walks an encoded document with JSONPath and counts its nodes.
func Summarize(raw []byte) (*Summary, error) {
	root, err := oj.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	s := &Summary{}
	cats, err := query(root, pathCategories)
	if err != nil {
		return nil, err
	}
	for i := range cats {
		if placeholderAt(cats, i) {
			s.Sentinels++
			continue
		}
		s.Categories++
	}

	subs, err := query(root, pathSubcategories)
	if err != nil {
		return nil, err
	}
	s.Subcategories = len(subs)

	leaves, err := query(root, pathSubclasses)
	if err != nil {
		return nil, err
	}
	s.Subclasses = len(leaves)

	for _, p := range itemPaths {
		items, err := query(root, p)
		if err != nil {
			return nil, err
		}
		s.Items += len(items)
	}
	return s, nil
}

// placeholderAt reports whether cats[i] sits where Render puts a placeholder
// and carries its id and flag. The id alone is not enough for documents that
// were not produced by Render.
func placeholderAt(cats []any, i int) bool {
	n, ok := cats[i].(map[string]any)
	if !ok {
		return false
	}
	id, _ := n["id"].(string)
	last := len(cats) - 1
	switch {
	case i == 0:
		random, _ := n["isRandom"].(bool)
		return id == DailyRandomID && random
	case i == last:
		return id == CollectionID
	case i == last-1:
		textOnly, _ := n["isTextOnly"].(bool)
		return id == RawFilmsID && textOnly
	}
	return false
}
