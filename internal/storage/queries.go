package storage

import (
	"encoding/json"
	"fmt"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// InsertImport stores one batch of rows under a new import record in a single
// transaction and returns the import id.
func (db *DB) InsertImport(source string, rows []model.Row) (int64, error) {
	tx, err := db.conn.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO imports(source, row_count) VALUES (?, ?)`, source, len(rows))
	if err != nil {
		return 0, fmt.Errorf("insert import: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.Prepare(`INSERT INTO sheet_rows(import_id, seq, row_json) VALUES (?, ?, ?)`)
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for seq, row := range rows {
		blob, err := json.Marshal(row)
		if err != nil {
			return 0, fmt.Errorf("encode row %d: %w", seq, err)
		}
		if _, err := stmt.Exec(id, seq, string(blob)); err != nil {
			return 0, fmt.Errorf("insert row %d: %w", seq, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// LoadAllRows returns every stored row across all imports, in import then
// sheet order.
func (db *DB) LoadAllRows() ([]model.Row, error) {
	return db.loadRows(`SELECT row_json FROM sheet_rows ORDER BY import_id, seq`)
}

// LoadImportRows returns the rows of one import, in sheet order.
func (db *DB) LoadImportRows(importID int64) ([]model.Row, error) {
	return db.loadRows(`SELECT row_json FROM sheet_rows WHERE import_id = ? ORDER BY seq`, importID)
}

func (db *DB) loadRows(query string, args ...any) ([]model.Row, error) {
	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Row
	for rows.Next() {
		var blob string
		if err := rows.Scan(&blob); err != nil {
			return nil, err
		}
		var row model.Row
		if err := json.Unmarshal([]byte(blob), &row); err != nil {
			return nil, fmt.Errorf("decode stored row: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ListImports returns all import records, newest first.
func (db *DB) ListImports() ([]model.ImportSummary, error) {
	rows, err := db.conn.Query(`
		SELECT id, source, imported_at, row_count
		FROM imports ORDER BY imported_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ImportSummary
	for rows.Next() {
		var s model.ImportSummary
		if err := rows.Scan(&s.ID, &s.Source, &s.ImportedAt, &s.RowCount); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteImport removes an import and its rows.
func (db *DB) DeleteImport(importID int64) error {
	if _, err := db.conn.Exec(`DELETE FROM sheet_rows WHERE import_id = ?`, importID); err != nil {
		return err
	}
	_, err := db.conn.Exec(`DELETE FROM imports WHERE id = ?`, importID)
	return err
}
