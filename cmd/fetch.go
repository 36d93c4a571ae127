package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/teamdot/go-lol-impact/internal/sheet"
	"github.com/teamdot/go-lol-impact/internal/storage"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [url]",
	Short: "Download a published sheet CSV export and store its rows",
	Long: "Download a published spreadsheet CSV export over HTTP and store its rows.\n" +
		"The URL comes from the argument or the SHEET_CSV_URL environment variable\n" +
		"(a .env file in the working directory is honored).",
	Args: cobra.MaximumNArgs(1),
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	url := os.Getenv("SHEET_CSV_URL")
	if len(args) > 0 {
		url = args[0]
	}
	if url == "" {
		return fmt.Errorf("no sheet URL: pass one as an argument or set SHEET_CSV_URL")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	log.Printf("[DEBUG] fetching %s", url)
	rows, err := sheet.NewClient().Fetch(cmd.Context(), url)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		log.Printf("[WARN] sheet at %s contained no rows", url)
	}

	id, err := db.InsertImport(url, rows)
	if err != nil {
		return fmt.Errorf("store rows: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Fetched %d rows (import %d).\n", len(rows), id)
	return nil
}
