package ingest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/agentic-research/navtree/api"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// EncodeDocument serializes doc with two-space indentation and without
// escaping non-ASCII or HTML characters.
func EncodeDocument(doc *api.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteDocument encodes doc fully, writes it next to name and renames it into
// place, so a failed run never leaves a partial file behind.
func WriteDocument(fsys billy.Filesystem, name string, doc *api.Document) error {
	data, err := EncodeDocument(doc)
	if err != nil {
		return err
	}

	tmp := name + ".tmp"
	if err := util.WriteFile(fsys, tmp, data, 0o644); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return fmt.Errorf("rename %s: %w", name, err)
	}
	return nil
}
