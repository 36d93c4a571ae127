package impact

import (
	"sort"
	"time"

	"github.com/teamdot/go-lol-impact/internal/model"
	"github.com/teamdot/go-lol-impact/internal/sheet"
)

// Compute scores a season of raw rows. It runs the season pass, then a
// baseline pass (all matches except the most recent) and a last-match pass
// (shrinkage off, baseline normalization context) to attach a trend delta to
// each season score.
//
// The transform is pure and deterministic: identical rows, in any order,
// produce identical output. A nil cfg uses DefaultConfig.
func Compute(rows []model.Row, cfg *Config) model.Result {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	scoped := rows
	if len(cfg.Roster) > 0 {
		roster := make(map[string]struct{}, len(cfg.Roster))
		for _, name := range cfg.Roster {
			roster[name] = struct{}{}
		}
		scoped = make([]model.Row, 0, len(rows))
		for _, r := range rows {
			if _, ok := roster[playerName(r)]; ok {
				scoped = append(scoped, r)
			}
		}
	}
	if len(scoped) == 0 {
		return model.Result{Players: []model.ScoredPlayer{}}
	}

	lastID := latestMatchID(scoped)

	var baselineRows, lastRows []model.Row
	if lastID == "" {
		baselineRows = scoped
	} else {
		for _, r := range scoped {
			if matchID(r) == lastID {
				lastRows = append(lastRows, r)
			} else {
				baselineRows = append(baselineRows, r)
			}
		}
	}

	// Season pass over everything, shrinkage on.
	season, seasonCtx, minGamesFull := scorePlayers(buildSeasonVectors(scoped, cfg), cfg, scoreOptions{applyShrink: true})

	// Baseline pass. Its context is the frozen reference the last-match pass
	// must reuse; with no baseline games the season context stands in and no
	// trend is produced.
	baselineImpact := make(map[string]float64)
	ctxForLast := seasonCtx
	if len(baselineRows) > 0 {
		base, baseCtx, _ := scorePlayers(buildSeasonVectors(baselineRows, cfg), cfg, scoreOptions{applyShrink: true})
		for _, p := range base {
			baselineImpact[p.Name] = p.Impact
		}
		ctxForLast = baseCtx
	}

	// Last-match pass, shrinkage off. A one-match population is no basis for
	// normalization, hence the threaded context.
	lastImpact := make(map[string]float64)
	if len(lastRows) > 0 {
		last, _, _ := scorePlayers(buildLastMatchVectors(lastRows, cfg), cfg, scoreOptions{applyShrink: false, ctx: ctxForLast})
		for _, p := range last {
			lastImpact[p.Name] = p.Impact
		}
	}

	for i := range season {
		p := &season[i]
		last, playedLast := lastImpact[p.Name]
		base, hasBase := baselineImpact[p.Name]
		switch {
		case playedLast && hasBase:
			d := last - base
			p.Delta = &d
			p.PlayedLast = true
			p.TrendOk = true
		case playedLast:
			p.PlayedLast = true
		}
	}

	return model.Result{
		Players: season,
		Meta:    model.Meta{LastMatchID: lastID, MinGamesFull: minGamesFull},
	}
}

// latestMatchID groups rows by match id, takes the max row date per match,
// and returns the id with the most recent date. Ties (and undated matches)
// break toward the lexicographically larger id. Empty when no row has an id.
func latestMatchID(rows []model.Row) string {
	dates := make(map[string]time.Time)
	for _, r := range rows {
		id := matchID(r)
		if id == "" {
			continue
		}
		d, ok := sheet.ParseDate(rowDate(r))
		if !ok {
			d = time.Time{}
		}
		if prev, seen := dates[id]; !seen || d.After(prev) {
			dates[id] = d
		}
	}
	if len(dates) == 0 {
		return ""
	}

	ids := make([]string, 0, len(dates))
	for id := range dates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := dates[ids[i]], dates[ids[j]]
		if !a.Equal(b) {
			return a.After(b)
		}
		return ids[i] > ids[j]
	})
	return ids[0]
}
