package cmd

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/teamdot/go-lol-impact/internal/impact"
	"github.com/teamdot/go-lol-impact/internal/model"
)

var exportInputs []string

var exportCmd = &cobra.Command{
	Use:   "export <out.csv>",
	Short: "Score the stored rows and write the result to CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	registerEngineFlags(exportCmd)
	exportCmd.Flags().StringSliceVar(&exportInputs, "from", nil, "score these CSV exports instead of the row store")
}

func runExport(cmd *cobra.Command, args []string) error {
	rows, err := loadRows(exportInputs)
	if err != nil {
		return err
	}

	res := impact.Compute(rows, engineConfig())

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create %s: %w", args[0], err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{
		"name", "games", "wins", "winrate",
		"indiv", "obj", "vision", "reli",
		"total_raw", "total_shrunk", "impact",
		"is_guest", "delta", "played_last", "trend_ok",
	}); err != nil {
		return err
	}

	for _, p := range res.Players {
		if err := w.Write(scoredRecord(p)); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", args[0], err)
	}

	fmt.Fprintf(os.Stdout, "Wrote %d players to %s.\n", len(res.Players), args[0])
	return nil
}

func scoredRecord(p model.ScoredPlayer) []string {
	delta := ""
	if p.Delta != nil {
		delta = strconv.FormatFloat(*p.Delta, 'f', 2, 64)
	}
	return []string{
		p.Name,
		strconv.Itoa(p.Games),
		strconv.Itoa(p.Wins),
		strconv.FormatFloat(p.Winrate, 'f', 1, 64),
		strconv.FormatFloat(p.Pillar.Individual, 'f', 4, 64),
		strconv.FormatFloat(p.Pillar.Objective, 'f', 4, 64),
		strconv.FormatFloat(p.Pillar.Vision, 'f', 4, 64),
		strconv.FormatFloat(p.Pillar.Reliability, 'f', 4, 64),
		strconv.FormatFloat(p.TotalRaw, 'f', 4, 64),
		strconv.FormatFloat(p.TotalShrunk, 'f', 4, 64),
		strconv.FormatFloat(p.Impact, 'f', 1, 64),
		strconv.FormatBool(p.IsGuest),
		delta,
		strconv.FormatBool(p.PlayedLast),
		strconv.FormatBool(p.TrendOk),
	}
}
