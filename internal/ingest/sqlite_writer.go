package ingest

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/agentic-research/navtree/api"
	"github.com/agentic-research/navtree/internal/graph"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE runs (
	run_id TEXT PRIMARY KEY,
	layout TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	item_count INTEGER NOT NULL,
	category_count INTEGER NOT NULL
);

CREATE TABLE nodes (
	node_pk INTEGER PRIMARY KEY,
	id TEXT NOT NULL,
	run_id TEXT NOT NULL,
	parent_pk INTEGER REFERENCES nodes(node_pk),
	name TEXT NOT NULL,
	icon TEXT NOT NULL,
	level INTEGER NOT NULL,
	max_items INTEGER NOT NULL,
	position INTEGER NOT NULL,
	is_random INTEGER NOT NULL DEFAULT 0,
	is_text_only INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX idx_nodes_parent ON nodes(parent_pk, position);
CREATE INDEX idx_nodes_id ON nodes(id);

CREATE TABLE items (
	id INTEGER PRIMARY KEY,
	run_id TEXT NOT NULL,
	node_pk INTEGER NOT NULL REFERENCES nodes(node_pk),
	name TEXT NOT NULL,
	url TEXT NOT NULL,
	text TEXT NOT NULL,
	position INTEGER NOT NULL
);
CREATE INDEX idx_items_node ON items(node_pk, position);
`

// SQLiteWriter exports a rendered document into a fresh SQLite database.
type SQLiteWriter struct {
	db    *sql.DB
	tx    *sql.Tx
	runID string

	path    string
	tmpPath string

	stmtNode *sql.Stmt
	stmtItem *sql.Stmt
}

// NewSQLiteWriter builds a fresh database next to dbPath. Close moves it over
// dbPath; until then any existing export stays untouched.
func NewSQLiteWriter(dbPath string) (*SQLiteWriter, error) {
	tmp := dbPath + ".tmp"
	if err := os.Remove(tmp); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("remove stale %s: %w", tmp, err)
	}

	db, err := sql.Open("sqlite", tmp)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", tmp, err)
	}
	fail := func(err error) (*SQLiteWriter, error) {
		_ = db.Close()
		_ = os.Remove(tmp)
		return nil, err
	}
	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		return fail(err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return fail(fmt.Errorf("create schema: %w", err))
	}

	w := &SQLiteWriter{
		db:      db,
		runID:   uuid.Must(uuid.NewV7()).String(),
		path:    dbPath,
		tmpPath: tmp,
	}
	if err := w.beginTx(); err != nil {
		return fail(err)
	}
	return w, nil
}

// RunID identifies this export.
func (w *SQLiteWriter) RunID() string {
	return w.runID
}

func (w *SQLiteWriter) beginTx() error {
	var err error
	w.tx, err = w.db.Begin()
	if err != nil {
		return err
	}
	w.stmtNode, err = w.tx.Prepare(`
		INSERT INTO nodes (id, run_id, parent_pk, name, icon, level, max_items, position, is_random, is_text_only)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	w.stmtItem, err = w.tx.Prepare(`
		INSERT INTO items (id, run_id, node_pk, name, url, text, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	return err
}

// WriteDocument stores every node and item of doc.
func (w *SQLiteWriter) WriteDocument(doc *api.Document, layout string, items, categories int) error {
	if _, err := w.tx.Exec(
		`INSERT INTO runs (run_id, layout, created_at, item_count, category_count) VALUES (?, ?, ?, ?, ?)`,
		w.runID, layout, time.Now().Unix(), items, categories,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	for i, n := range doc.Categories {
		if err := w.writeNode(n, nil, graph.LevelCategory, i); err != nil {
			return err
		}
	}
	return nil
}

// writeNode inserts n and its subtree. Slugs are not unique across levels
// ("a-b" can be a category and the "b" child of "a"), so rows link by key.
func (w *SQLiteWriter) writeNode(n api.Node, parentKey *int64, level graph.Level, pos int) error {
	res, err := w.stmtNode.Exec(
		n.ID, w.runID, parentKey, n.Name, n.Icon, int(level), n.MaxItems, pos, n.IsRandom, n.IsTextOnly,
	)
	if err != nil {
		return fmt.Errorf("insert node %s: %w", n.ID, err)
	}
	key, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("node key %s: %w", n.ID, err)
	}
	for i, it := range n.Items {
		if _, err := w.stmtItem.Exec(it.ID, w.runID, key, it.Name, it.URL, it.Text, i); err != nil {
			return fmt.Errorf("insert item %d: %w", it.ID, err)
		}
	}

	children := n.Subcategories
	if level == graph.LevelSubcategory {
		children = n.Subclasses
	}
	for i, c := range children {
		if err := w.writeNode(c, &key, level+1, i); err != nil {
			return err
		}
	}
	return nil
}

// Close commits the export and renames it into place. Call Abort instead
// when WriteDocument failed.
func (w *SQLiteWriter) Close() error {
	_ = w.stmtNode.Close()
	_ = w.stmtItem.Close()
	if err := w.tx.Commit(); err != nil {
		_ = w.db.Close()
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("commit export: %w", err)
	}
	if err := w.db.Close(); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("rename %s: %w", w.path, err)
	}
	return nil
}

// Abort rolls the export back and discards it. An existing export at the
// target path is left as it was.
func (w *SQLiteWriter) Abort() error {
	_ = w.stmtNode.Close()
	_ = w.stmtItem.Close()
	_ = w.tx.Rollback()
	err := w.db.Close()
	_ = os.Remove(w.tmpPath)
	return err
}

// ExportSQLite writes res into a fresh database at dbPath and returns the run id.
func ExportSQLite(dbPath string, res *Result, layout string) (string, error) {
	w, err := NewSQLiteWriter(dbPath)
	if err != nil {
		return "", err
	}
	if err := w.WriteDocument(res.Document, layout, res.Items, res.Categories()); err != nil {
		_ = w.Abort()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return w.RunID(), nil
}
