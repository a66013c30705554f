package cmd

import (
	"bytes"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agentic-research/navtree/internal/icon"
	"github.com/agentic-research/navtree/internal/ingest"
	"github.com/agentic-research/navtree/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

const portalCSV = "link,category,class,subclass,text\n" +
	"https://b23.tv/a,影视,电影,,\"好看的\n电影\"\n" +
	"https://b23.tv/b,播客,,,节目\n"

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func portal(t *testing.T) ingest.Layout {
	t.Helper()
	l, err := ingest.LookupLayout("portal")
	require.NoError(t, err)
	return l
}

func TestRunConvert_DiscoversNewestCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "csv_input")
	require.NoError(t, os.Mkdir(in, 0o755))

	old := filepath.Join(in, "old.csv")
	require.NoError(t, os.WriteFile(old, []byte("link,category,class,subclass,text\nu,Old,,,x\n"), 0o644))
	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(old, past, past))
	require.NoError(t, os.WriteFile(filepath.Join(in, "new.csv"), []byte(portalCSV), 0o644))

	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, nil))
	out := filepath.Join(dir, "data.json")

	rep, err := runConvert(convertOptions{
		InputDir: in,
		Output:   out,
		Layout:   portal(t),
		Icons:    []icon.Entry{{Name: "播客", Glyph: "🎧"}},
	}, log)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(in, "new.csv"), rep.Input)
	assert.Equal(t, 2, rep.Result.Items)
	assert.Empty(t, rep.RunID)
	assert.Contains(t, logs.String(), "multiple CSV files found")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	ids, err := ingest.QueryDocument(raw, "$.categories[*].id")
	require.NoError(t, err)
	assert.Equal(t, []any{"daily-random", "影视", "播客", "raw-films", "collection"}, ids)

	glyphs, err := ingest.QueryDocument(raw, "$.categories[2].icon")
	require.NoError(t, err)
	assert.Equal(t, []any{"🎧"}, glyphs)

	_, err = os.Stat(out + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRunConvert_ExplicitFileAndSQLite(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "export.csv")
	require.NoError(t, os.WriteFile(file, []byte(portalCSV), 0o644))
	dbPath := filepath.Join(dir, "navtree.db")

	rep, err := runConvert(convertOptions{
		File:     file,
		InputDir: filepath.Join(dir, "unused"),
		Output:   filepath.Join(dir, "data.json"),
		SQLite:   dbPath,
		Layout:   portal(t),
	}, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, file, rep.Input)
	require.NotEmpty(t, rep.RunID)

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	var items int
	require.NoError(t, db.QueryRow("SELECT item_count FROM runs WHERE run_id = ?", rep.RunID).Scan(&items))
	assert.Equal(t, 2, items)
}

func TestRunConvert_InputNotFound(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "data.json")

	_, err := runConvert(convertOptions{
		InputDir: filepath.Join(dir, "csv_input"),
		Output:   out,
		Layout:   portal(t),
	}, quietLogger())
	require.Error(t, err)
	assert.True(t, errors.Is(err, source.ErrInputNotFound), "got %v", err)

	_, statErr := os.Stat(out)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "no document is written on failure")
}

func TestLayoutsCommand(t *testing.T) {
	var out bytes.Buffer
	layoutsCmd.SetOut(&out)
	t.Cleanup(func() { layoutsCmd.SetOut(nil) })

	require.NoError(t, layoutsCmd.RunE(layoutsCmd, nil))
	for _, name := range []string{"basic", "legacy", "portal"} {
		assert.Contains(t, out.String(), name)
	}
}
