package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/teamdot/go-lol-impact/internal/model"
	"github.com/teamdot/go-lol-impact/internal/sheet"
	"github.com/teamdot/go-lol-impact/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>...",
	Short: "Import match-history CSV exports into the row store",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	// Files parse in parallel; inserts stay sequential on the one connection.
	parsed := make([][]model.Row, len(args))
	var g errgroup.Group
	for i, path := range args {
		g.Go(func() error {
			rows, err := sheet.ParseFile(path)
			if err != nil {
				return err
			}
			parsed[i] = rows
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := 0
	for i, path := range args {
		id, err := db.InsertImport(path, parsed[i])
		if err != nil {
			return fmt.Errorf("store %s: %w", path, err)
		}
		log.Printf("[INFO] imported %s: %d rows (import %d)", path, len(parsed[i]), id)
		total += len(parsed[i])
	}

	fmt.Fprintf(os.Stdout, "Imported %d rows from %d file(s).\n", total, len(args))
	return nil
}
