package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/teamdot/go-lol-impact/internal/impact"
	"github.com/teamdot/go-lol-impact/internal/model"
)

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))
}

// PrintRunSummary prints a one-line header for a scoring run.
func PrintRunSummary(w io.Writer, res model.Result) {
	last := res.Meta.LastMatchID
	if last == "" {
		last = "—"
	}
	fmt.Fprintf(w, "\nPlayers: %d  |  Last match: %s  |  Full-sample games: %d\n\n",
		len(res.Players), last, res.Meta.MinGamesFull)
}

// PrintImpactBoard prints the season impact table. Guests (players below the
// full-sample threshold) are marked with "*"; the trend column classifies
// each delta against the configured up/down thresholds.
func PrintImpactBoard(w io.Writer, res model.Result, cfg *impact.Config) {
	table := newTable(w)
	table.Header("#", "PLAYER", "GAMES", "WINRATE", "ROLES", "IMPACT", "TREND", "Δ")

	for i, p := range res.Players {
		marker := ""
		if p.IsGuest {
			marker = "*"
		}
		table.Append(
			strconv.Itoa(i+1),
			p.Name+marker,
			strconv.Itoa(p.Games),
			fmt.Sprintf("%.0f%%", p.Winrate),
			roleMix(p.Roles),
			fmt.Sprintf("%.1f", p.Impact),
			trendArrow(p, cfg),
			deltaCell(p),
		)
	}
	table.Render()

	for _, p := range res.Players {
		if p.IsGuest {
			fmt.Fprintf(w, "\n* guest: fewer than %d games, score shrunk toward the field average\n", res.Meta.MinGamesFull)
			break
		}
	}
}

// PrintPillarTable prints the four pillar scores and raw/shrunk totals.
func PrintPillarTable(w io.Writer, res model.Result) {
	table := newTable(w)
	table.Header("PLAYER", "INDIV", "OBJ", "VISION", "RELI", "RAW", "SHRUNK")

	for _, p := range res.Players {
		table.Append(
			p.Name,
			fmt.Sprintf("%.3f", p.Pillar.Individual),
			fmt.Sprintf("%.3f", p.Pillar.Objective),
			fmt.Sprintf("%.3f", p.Pillar.Vision),
			fmt.Sprintf("%.3f", p.Pillar.Reliability),
			fmt.Sprintf("%.3f", p.TotalRaw),
			fmt.Sprintf("%.3f", p.TotalShrunk),
		)
	}
	table.Render()
}

// PrintRoleTable prints each player's role mix, one row per role occupied.
func PrintRoleTable(w io.Writer, res model.Result) {
	table := newTable(w)
	table.Header("PLAYER", "ROLE", "GAMES", "SHARE")

	for _, p := range res.Players {
		for _, rs := range p.Roles {
			table.Append(
				p.Name,
				rs.Role,
				strconv.Itoa(rs.Count),
				fmt.Sprintf("%.0f%%", rs.Share*100),
			)
		}
	}
	table.Render()
}

// PrintImportList prints the stored imports, newest first.
func PrintImportList(w io.Writer, imports []model.ImportSummary) {
	table := newTable(w)
	table.Header("ID", "SOURCE", "IMPORTED", "ROWS")
	for _, s := range imports {
		table.Append(
			strconv.FormatInt(s.ID, 10),
			s.Source,
			s.ImportedAt,
			strconv.Itoa(s.RowCount),
		)
	}
	table.Render()
}

// roleMix renders a compact "MID 80% / TOP 20%" summary.
func roleMix(roles []model.RoleShare) string {
	parts := make([]string, 0, len(roles))
	for _, rs := range roles {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", rs.Role, rs.Share*100))
	}
	return strings.Join(parts, " / ")
}

func trendArrow(p model.ScoredPlayer, cfg *impact.Config) string {
	if !p.TrendOk || p.Delta == nil {
		if p.PlayedLast {
			return "new"
		}
		return "—"
	}
	switch {
	case *p.Delta >= cfg.TrendUp:
		return "↑"
	case *p.Delta <= cfg.TrendDown:
		return "↓"
	}
	return "→"
}

func deltaCell(p model.ScoredPlayer) string {
	if p.Delta == nil {
		return "—"
	}
	return fmt.Sprintf("%+.1f", *p.Delta)
}
