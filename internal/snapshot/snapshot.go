// SPDX-License-Identifier: MPL-2.0

// Package snapshot exports the flat record aggregate to a SQLite database.
package snapshot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gamo/vocab/pkg/record"
	"github.com/gamo/vocab/pkg/vocab"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

const schema = `CREATE TABLE IF NOT EXISTS words (
	seq INTEGER PRIMARY KEY,
	folder TEXT NOT NULL,
	type TEXT NOT NULL,
	line INTEGER NOT NULL,
	word TEXT NOT NULL
)`

// Source is anything that yields the flat aggregate, such as *store.Vocabulary.
type Source interface {
	Flatten() []record.Word
}

// Export replaces the rows of the words table in the database at path with
// the records of src, in one transaction. The database and its parent
// directory are created when missing. It returns the number of rows written.
func Export(ctx context.Context, path string, src Source) (n int, retErr error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return 0, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return 0, fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("close sqlite: %w", err)
		}
	}()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return 0, fmt.Errorf("create words table: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM words`); err != nil {
		return 0, fmt.Errorf("clear words: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words (seq, folder, type, line, word) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, w := range src.Flatten() {
		if _, err := stmt.ExecContext(ctx, i+1, w.Folder.String(), w.Type.String(), w.Line, w.Word); err != nil {
			return 0, fmt.Errorf("insert %s/%s:%d: %w", w.Folder, w.Type, w.Line, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	slog.Debug("snapshot exported", "path", path, "rows", n)
	return n, nil
}

// Read returns the exported records in aggregate order.
func Read(ctx context.Context, path string) (_ []record.Word, retErr error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil && retErr == nil {
			retErr = fmt.Errorf("close sqlite: %w", err)
		}
	}()

	rows, err := db.QueryContext(ctx, `SELECT folder, type, line, word FROM words ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("select words: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []record.Word
	for rows.Next() {
		var (
			folder, typ string
			w           record.Word
		)
		if err := rows.Scan(&folder, &typ, &w.Line, &w.Word); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		w.Folder = vocab.FolderName(folder)
		w.Type = vocab.TypeName(typ)
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate words: %w", err)
	}
	return out, nil
}
