package impact

import (
	"math"
	"sort"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// playerVector is one player's per-game-average metric vector plus the
// bookkeeping the scoring stages need.
type playerVector struct {
	Name    string
	Games   int
	Wins    int
	Winrate float64
	Roles   []model.RoleShare
	Raw     map[string]float64
}

// accum holds the running sums for one player during the season fold.
type accum struct {
	name    string
	matches map[string]struct{}
	roles   map[string]int
	wins    int

	kills, deaths, assists float64
	kpSum                  float64
	kpCount                int

	dmgShareSum float64
	dpmSum      float64
	goldMinSum  float64
	csMinSum    float64

	fbMatches map[string]struct{}

	objKillsSum float64
	objPartSum  float64
	platesSum   float64
	objDmgSum   float64

	visionScoreSum float64
	timePlayedSec  float64
	wardsPlacedSum float64
	wardsKilledSum float64
	denialSum      float64
	enemyJungleSum float64
	pinkEffSum     float64

	consistencySum float64
	momentumSum    float64
	macroConsSum   float64
	perfRatingSum  float64
	timeDeadSum    float64
	deathDistSum   float64
}

// buildSeasonVectors folds raw rows into one per-game-average vector per
// player. Rows missing a player name or match id are skipped; a repeated
// (match, player) pair is counted once. This is a pure fold: no I/O, no
// state outside the returned slice.
func buildSeasonVectors(rows []model.Row, cfg *Config) []*playerVector {
	byPlayer := make(map[string]*accum)
	var order []string // first-seen order, for deterministic output

	for _, r := range rows {
		name := playerName(r)
		id := matchID(r)
		if name == "" || id == "" {
			continue
		}

		p, ok := byPlayer[name]
		if !ok {
			p = &accum{
				name:      name,
				matches:   make(map[string]struct{}),
				roles:     make(map[string]int),
				fbMatches: make(map[string]struct{}),
			}
			byPlayer[name] = p
			order = append(order, name)
		}

		// One row per (match, player); duplicated source rows are ignored.
		if _, seen := p.matches[id]; seen {
			continue
		}
		p.matches[id] = struct{}{}

		p.roles[rowRole(r)]++
		if isWin(r) {
			p.wins++
		}

		p.kills += toNum(r.Get(aliasKills...))
		p.deaths += toNum(r.Get(aliasDeaths...))
		p.assists += toNum(r.Get(aliasAssists...))

		if kp := toNum(r.Get(aliasKP...)); kp > 0 {
			p.kpSum += pctScale(kp)
			p.kpCount++
		}

		p.dmgShareSum += pctScale(toNum(r.Get(aliasDmgShare...)))
		p.dpmSum += toNum(r.Get(aliasDPM...))
		p.goldMinSum += toNum(r.Get(aliasGoldMin...))
		p.csMinSum += csPerMinute(r)

		// First-blood involvement gets its own per-match dedup: the flag can
		// be true on more than one raw row of the same match.
		if firstBloodInvolved(r) {
			if _, seen := p.fbMatches[id]; !seen {
				p.fbMatches[id] = struct{}{}
			}
		}

		p.objKillsSum += toNum(r.Get(aliasObjKills...))
		p.objPartSum += objPartComposite(r, cfg.ObjPart)
		p.platesSum += toNum(r.Get(aliasPlates...))
		p.objDmgSum += toNum(r.Get(aliasObjDmg...))

		p.visionScoreSum += toNum(r.Get(aliasVisionScore...))
		if sec := toNum(r.Get(aliasTimePlayed...)); sec > 0 {
			p.timePlayedSec += sec
		}
		p.wardsPlacedSum += toNum(r.Get(aliasWards...))
		p.wardsKilledSum += toNum(r.Get(aliasWardsKilled...))
		p.denialSum += toNum(r.Get(aliasDenial...))
		p.enemyJungleSum += toNum(r.Get(aliasEnemyJungle...))
		p.pinkEffSum += toNum(r.Get(aliasPinkEff...))

		p.consistencySum += toNum(r.Get(aliasConsistency...))
		p.momentumSum += toNum(r.Get(aliasMomentum...))
		p.macroConsSum += toNum(r.Get(aliasMacroCons...))
		p.perfRatingSum += toNum(r.Get(aliasPerfRating...))
		p.timeDeadSum += toNum(r.Get(aliasTimeDead...))
		p.deathDistSum += toNum(r.Get(aliasDeathDist...))
	}

	out := make([]*playerVector, 0, len(order))
	for _, name := range order {
		out = append(out, byPlayer[name].toVector())
	}
	return out
}

// toVector divides the sums by distinct games played. This is the only place
// per-game normalization happens.
func (p *accum) toVector() *playerVector {
	games := len(p.matches)
	if games == 0 {
		games = 1
	}
	g := float64(games)

	kda := (p.kills + p.assists) / math.Max(1, p.deaths)
	kp := 0.0
	if p.kpCount > 0 {
		kp = p.kpSum / float64(p.kpCount)
	}

	// Per-minute vision rates use the average game length, floored at one
	// minute to keep the division defined.
	avgTimeSec := p.timePlayedSec / g
	timeMin := math.Max(1, avgTimeSec/60)

	raw := map[string]float64{
		MetricKDA:            kda,
		MetricKP:             kp,
		MetricDmgShare:       p.dmgShareSum / g,
		MetricDPM:            p.dpmSum / g,
		MetricGoldMin:        p.goldMinSum / g,
		MetricCSMin:          p.csMinSum / g,
		MetricFirstBloodRate: float64(len(p.fbMatches)) / g * 100,

		MetricObjPart:  p.objPartSum / g,
		MetricObjKills: p.objKillsSum / g,
		MetricPlates:   p.platesSum / g,
		MetricObjDmg:   p.objDmgSum / g,

		MetricVSMin:          p.visionScoreSum / g / timeMin,
		MetricWardsMin:       p.wardsPlacedSum / g / timeMin,
		MetricWardsKilledMin: p.wardsKilledSum / g / timeMin,
		MetricDenial:         p.denialSum / g,
		MetricEnemyJungle:    p.enemyJungleSum / g,
		MetricPinkEff:        p.pinkEffSum / g,

		MetricConsistency:  p.consistencySum / g,
		MetricMomentum:     p.momentumSum / g,
		MetricMacroCons:    p.macroConsSum / g,
		MetricPerfRating:   p.perfRatingSum / g,
		MetricTimeDeadRate: p.timeDeadSum / g / math.Max(1, avgTimeSec),
		MetricDeathDist:    p.deathDistSum / g,
	}

	return &playerVector{
		Name:    p.name,
		Games:   games,
		Wins:    p.wins,
		Winrate: float64(p.wins) / g * 100,
		Roles:   roleBreakdown(p.roles),
		Raw:     raw,
	}
}

// buildLastMatchVectors builds single-match vectors for the rows of one match.
// A duplicated row for the same player replaces the earlier one.
func buildLastMatchVectors(rows []model.Row, cfg *Config) []*playerVector {
	byPlayer := make(map[string]*playerVector)
	var order []string

	for _, r := range rows {
		name := playerName(r)
		if name == "" {
			continue
		}

		kills := toNum(r.Get(aliasKills...))
		deaths := toNum(r.Get(aliasDeaths...))
		assists := toNum(r.Get(aliasAssists...))

		tpSec := toNum(r.Get(aliasTimePlayed...))
		timeMin := math.Max(1, timePlayedMinutes(r))

		fbRate := 0.0
		if firstBloodInvolved(r) {
			fbRate = 100
		}

		timeDeadRate := 0.0
		if tpSec > 0 {
			timeDeadRate = toNum(r.Get(aliasTimeDead...)) / tpSec
		}

		wins := 0
		if isWin(r) {
			wins = 1
		}

		v := &playerVector{
			Name:    name,
			Games:   1,
			Wins:    wins,
			Winrate: float64(wins) * 100,
			Roles:   []model.RoleShare{{Role: rowRole(r), Count: 1, Share: 1}},
			Raw: map[string]float64{
				MetricKDA:            (kills + assists) / math.Max(1, deaths),
				MetricKP:             pctScale(toNum(r.Get(aliasKP...))),
				MetricDmgShare:       pctScale(toNum(r.Get(aliasDmgShare...))),
				MetricDPM:            toNum(r.Get(aliasDPM...)),
				MetricGoldMin:        toNum(r.Get(aliasGoldMin...)),
				MetricCSMin:          csPerMinute(r),
				MetricFirstBloodRate: fbRate,

				MetricObjPart:  objPartComposite(r, cfg.ObjPart),
				MetricObjKills: toNum(r.Get(aliasObjKills...)),
				MetricPlates:   toNum(r.Get(aliasPlates...)),
				MetricObjDmg:   toNum(r.Get(aliasObjDmg...)),

				MetricVSMin:          toNum(r.Get(aliasVisionScore...)) / timeMin,
				MetricWardsMin:       toNum(r.Get(aliasWards...)) / timeMin,
				MetricWardsKilledMin: toNum(r.Get(aliasWardsKilled...)) / timeMin,
				MetricDenial:         toNum(r.Get(aliasDenial...)),
				MetricEnemyJungle:    toNum(r.Get(aliasEnemyJungle...)),
				MetricPinkEff:        toNum(r.Get(aliasPinkEff...)),

				MetricConsistency:  toNum(r.Get(aliasConsistency...)),
				MetricMomentum:     toNum(r.Get(aliasMomentum...)),
				MetricMacroCons:    toNum(r.Get(aliasMacroCons...)),
				MetricPerfRating:   toNum(r.Get(aliasPerfRating...)),
				MetricTimeDeadRate: timeDeadRate,
				MetricDeathDist:    toNum(r.Get(aliasDeathDist...)),
			},
		}

		if _, seen := byPlayer[name]; !seen {
			order = append(order, name)
		}
		byPlayer[name] = v
	}

	out := make([]*playerVector, 0, len(order))
	for _, name := range order {
		out = append(out, byPlayer[name])
	}
	return out
}

// roleBreakdown converts a role→count histogram into shares summing to 1,
// largest first (role name breaks count ties).
func roleBreakdown(freq map[string]int) []model.RoleShare {
	var entries []model.RoleShare
	total := 0
	for role, count := range freq {
		if count <= 0 {
			continue
		}
		entries = append(entries, model.RoleShare{Role: role, Count: count})
		total += count
	}
	if len(entries) == 0 {
		return []model.RoleShare{{Role: RoleUnknown, Count: 1, Share: 1}}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Role < entries[j].Role
	})
	for i := range entries {
		entries[i].Share = float64(entries[i].Count) / float64(total)
	}
	return entries
}
