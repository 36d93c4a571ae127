package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/logutils"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/teamdot/go-lol-impact/internal/impact"
)

var (
	dbPath string
	debug  bool
)

var rootCmd = &cobra.Command{
	Use:   "lolimpact",
	Short: "League match-history impact scoring tool",
	Long:  "Ingest League of Legends match-history spreadsheet exports and compute per-player impact scores.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// .env is optional; flags and environment still apply without it.
		_ = godotenv.Load()
		setupLog(debug)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".lolimpact", "rows.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(impactCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
}

func setupLog(dbg bool) {
	filter := &logutils.LevelFilter{
		Levels:   []logutils.LogLevel{"DEBUG", "INFO", "WARN", "ERROR"},
		MinLevel: "INFO",
		Writer:   os.Stderr,
	}
	if dbg {
		filter.MinLevel = "DEBUG"
	}
	log.SetFlags(log.Ldate | log.Ltime)
	log.SetOutput(filter)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// Engine flags shared by the scoring commands.
var (
	flagBase          float64
	flagWinsorP       float64
	flagMinGamesFloor int
	flagShrinkFrac    float64
	flagTrendUp       float64
	flagTrendDown     float64
	flagRoster        string
)

func registerEngineFlags(cmd *cobra.Command) {
	cfg := impact.DefaultConfig()
	cmd.Flags().Float64Var(&flagBase, "base", cfg.Base, "floor of the public impact range")
	cmd.Flags().Float64Var(&flagWinsorP, "winsor-p", cfg.WinsorP, "winsorization percentile")
	cmd.Flags().IntVar(&flagMinGamesFloor, "min-games-floor", cfg.MinGamesFloor, "minimum full-sample games threshold")
	cmd.Flags().Float64Var(&flagShrinkFrac, "shrink-fraction", cfg.ShrinkFractionOfMax, "full-sample threshold as a fraction of the most-played player's games")
	cmd.Flags().Float64Var(&flagTrendUp, "trend-up", cfg.TrendUp, "delta at or above which the trend reads as up")
	cmd.Flags().Float64Var(&flagTrendDown, "trend-down", cfg.TrendDown, "delta at or below which the trend reads as down")
	cmd.Flags().StringVar(&flagRoster, "roster", "", "comma-separated player names; rows for others are excluded")
}

func engineConfig() *impact.Config {
	cfg := impact.DefaultConfig()
	cfg.Base = flagBase
	cfg.WinsorP = flagWinsorP
	cfg.MinGamesFloor = flagMinGamesFloor
	cfg.ShrinkFractionOfMax = flagShrinkFrac
	cfg.TrendUp = flagTrendUp
	cfg.TrendDown = flagTrendDown
	if flagRoster != "" {
		for _, name := range strings.Split(flagRoster, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Roster = append(cfg.Roster, name)
			}
		}
	}
	return cfg
}
