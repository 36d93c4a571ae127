package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamdot/go-lol-impact/internal/report"
	"github.com/teamdot/go-lol-impact/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored imports",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	imports, err := db.ListImports()
	if err != nil {
		return fmt.Errorf("list imports: %w", err)
	}
	if len(imports) == 0 {
		fmt.Println("no imports stored")
		return nil
	}

	report.PrintImportList(os.Stdout, imports)
	return nil
}
