package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teamdot/go-lol-impact/internal/impact"
	"github.com/teamdot/go-lol-impact/internal/model"
	"github.com/teamdot/go-lol-impact/internal/report"
	"github.com/teamdot/go-lol-impact/internal/sheet"
	"github.com/teamdot/go-lol-impact/internal/storage"
)

var (
	showPillars bool
	showRoles   bool
)

var impactCmd = &cobra.Command{
	Use:   "impact [file.csv...]",
	Short: "Compute and print the season impact board",
	Long: "Compute per-player impact scores over the stored rows, or directly over\n" +
		"the given CSV exports without touching the row store.",
	RunE: runImpact,
}

func init() {
	registerEngineFlags(impactCmd)
	impactCmd.Flags().BoolVar(&showPillars, "pillars", false, "also print the pillar breakdown")
	impactCmd.Flags().BoolVar(&showRoles, "roles", false, "also print the role mix table")
}

func runImpact(cmd *cobra.Command, args []string) error {
	rows, err := loadRows(args)
	if err != nil {
		return err
	}

	cfg := engineConfig()
	res := impact.Compute(rows, cfg)

	report.PrintRunSummary(os.Stdout, res)
	report.PrintImpactBoard(os.Stdout, res, cfg)
	if showPillars {
		fmt.Fprintln(os.Stdout)
		report.PrintPillarTable(os.Stdout, res)
	}
	if showRoles {
		fmt.Fprintln(os.Stdout)
		report.PrintRoleTable(os.Stdout, res)
	}
	return nil
}

// loadRows reads rows from the given CSV files, or from the row store when no
// files are named.
func loadRows(files []string) ([]model.Row, error) {
	if len(files) > 0 {
		var rows []model.Row
		for _, path := range files {
			r, err := sheet.ParseFile(path)
			if err != nil {
				return nil, err
			}
			rows = append(rows, r...)
		}
		return rows, nil
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	rows, err := db.LoadAllRows()
	if err != nil {
		return nil, fmt.Errorf("load rows: %w", err)
	}
	return rows, nil
}
