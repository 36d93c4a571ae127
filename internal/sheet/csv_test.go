package sheet

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		"Player,Match ID,Kills",
		"Alice,M1,5",
		"Bob,M1,2",
	}, "\n")

	rows, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0]["Player"] != "Alice" || rows[0]["Kills"] != "5" {
		t.Errorf("row 0: got %v", rows[0])
	}
}

func TestParseBOMAndWhitespace(t *testing.T) {
	in := "\ufeffPlayer, Match ID \nAlice , M1\n"
	rows, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0]["Player"] != "Alice" {
		t.Errorf("BOM should be stripped from the first header: got %v", rows[0])
	}
	if rows[0]["Match ID"] != "M1" {
		t.Errorf("headers and cells should be trimmed: got %v", rows[0])
	}
}

func TestParseRaggedAndBlankRows(t *testing.T) {
	in := strings.Join([]string{
		"Player,Match ID,Kills",
		"Alice,M1",        // short record: Kills absent, not an error
		",,",              // blank row dropped
		"",                // empty line dropped by the csv reader
		"Bob,M2,3,extra",  // long record: surplus cell ignored
	}, "\n")

	rows, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if _, ok := rows[0]["Kills"]; ok {
		t.Errorf("short record should omit missing cells: got %v", rows[0])
	}
	if rows[1]["Kills"] != "3" {
		t.Errorf("row 1: got %v", rows[1])
	}
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("want no rows, got %v", rows)
	}
}

func TestParseQuotedCells(t *testing.T) {
	in := "Player,Note\n\"Alice, the Mid\",\"says \"\"hi\"\"\"\n"
	rows, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rows[0]["Player"] != "Alice, the Mid" {
		t.Errorf("quoted comma: got %q", rows[0]["Player"])
	}
	if rows[0]["Note"] != `says "hi"` {
		t.Errorf("escaped quote: got %q", rows[0]["Note"])
	}
}
