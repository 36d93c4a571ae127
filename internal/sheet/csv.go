// Package sheet reads match-history spreadsheet exports: CSV decoding, the
// sheet's date conventions, and fetching published exports over HTTP.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// Parse decodes a CSV export into rows keyed by column header. Short records
// are tolerated (missing trailing cells read as blank); rows with no
// non-blank cell are dropped.
func Parse(r io.Reader) ([]model.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // sheet exports are frequently ragged
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []model.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		row := make(model.Row, len(header))
		blank := true
		for i, col := range header {
			if col == "" || i >= len(record) {
				continue
			}
			v := strings.TrimSpace(record[i])
			if v == "" {
				continue
			}
			row[col] = v
			blank = false
		}
		if !blank {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ParseFile reads and decodes a CSV export from disk.
func ParseFile(path string) ([]model.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}
