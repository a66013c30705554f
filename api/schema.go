package api

// Document is the root of the navigation data file consumed by the website.
type Document struct {
	// Categories in display order: sentinels first and last, real categories
	// sorted by name in between.
	Categories []Node `json:"categories"`
}

// Node is a category, subcategory or subclass.
// Only categories carry Subcategories and only subcategories carry Subclasses.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	// IsRandom marks the daily random sentinel.
	IsRandom bool `json:"isRandom,omitempty"`
	// IsTextOnly marks the raw-films sentinel, whose content lives client side.
	IsTextOnly bool `json:"isTextOnly,omitempty"`
	// MaxItems is advisory for the UI; the converter never enforces it.
	MaxItems      int    `json:"maxItems"`
	Items         []Item `json:"items"`
	Subcategories []Node `json:"subcategories,omitempty"`
	Subclasses    []Node `json:"subclasses,omitempty"`
}

// Item is a single link entry.
type Item struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Text string `json:"text"`
}
