// Package source locates and loads the CSV export to convert.
package source

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	billy "github.com/go-git/go-billy/v5"
)

// ErrInputNotFound is returned when no CSV file can be selected.
var ErrInputNotFound = errors.New("input not found")

// Candidate is one CSV file found in the input directory.
type Candidate struct {
	Name    string
	ModTime time.Time
}

// Selection is the outcome of Find.
type Selection struct {
	// Chosen is the newest candidate.
	Chosen Candidate
	// Candidates holds every CSV found, newest first.
	Candidates []Candidate
}

// Ambiguous reports whether more than one CSV was available.
func (s *Selection) Ambiguous() bool {
	return len(s.Candidates) > 1
}

// Find lists the *.csv files at the root of fsys and picks the most recently
// modified one. Equal modification times fall back to name order.
func Find(fsys billy.Filesystem) (*Selection, error) {
	entries, err := fsys.ReadDir("")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: directory %s does not exist", ErrInputNotFound, fsys.Root())
		}
		return nil, fmt.Errorf("list %s: %w", fsys.Root(), err)
	}

	var found []Candidate
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		found = append(found, Candidate{Name: e.Name(), ModTime: e.ModTime()})
	}
	if len(found) == 0 {
		return nil, fmt.Errorf("%w: no .csv file in %s", ErrInputNotFound, fsys.Root())
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].ModTime.Equal(found[j].ModTime) {
			return found[i].ModTime.After(found[j].ModTime)
		}
		return found[i].Name < found[j].Name
	})
	return &Selection{Chosen: found[0], Candidates: found}, nil
}

// Read loads name from fsys in full.
func Read(fsys billy.Filesystem, name string) (string, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputNotFound, fsys.Join(fsys.Root(), name))
		}
		return "", fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
