package model

// Row is one player's stat line for one match as exported by the spreadsheet,
// keyed by column header. Column names vary between sheet revisions, so the
// row is kept as an open map and field resolution happens downstream.
type Row map[string]string

// Get returns the first non-blank value among the given column names.
func (r Row) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

// ---- Scored output ----

// PillarScores holds the four weighted sub-scores composing a player's impact.
// Each is nominally in [0, 1].
type PillarScores struct {
	Individual  float64
	Objective   float64
	Vision      float64
	Reliability float64
}

// RoleShare is one entry of a player's role mix over the scored matches.
type RoleShare struct {
	Role  string
	Count int
	Share float64
}

// ScoredPlayer is the final public record for one player. It is rebuilt from
// scratch on every scoring run and never mutated afterwards.
type ScoredPlayer struct {
	Name    string
	Games   int
	Wins    int
	Winrate float64 // percent

	Roles  []RoleShare
	Pillar PillarScores

	TotalRaw    float64
	TotalShrunk float64
	Impact      float64 // BASE..100
	IsGuest     bool    // below the full-sample games threshold

	// Trend versus the player's own baseline (all matches except the most
	// recent one). Delta is nil when no comparison is possible.
	Delta      *float64
	PlayedLast bool
	TrendOk    bool
}

// Meta carries run-level facts alongside the scored players.
type Meta struct {
	LastMatchID  string
	MinGamesFull int
}

// Result is the output of one scoring run.
type Result struct {
	Players []ScoredPlayer
	Meta    Meta
}

// ImportSummary is a lightweight record for the list command.
type ImportSummary struct {
	ID         int64
	Source     string
	ImportedAt string
	RowCount   int
}
