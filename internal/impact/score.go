package impact

import (
	"math"
	"sort"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// scoreOptions selects the scoring variant for one pass.
type scoreOptions struct {
	// applyShrink pulls low-sample scores toward the population mean. It is
	// off for the single-match trend pass.
	applyShrink bool
	// ctx, when non-nil, replaces the pass's own normalization context. The
	// last-match pass threads the baseline's context through here so the two
	// passes cannot silently diverge.
	ctx *normContext
}

// scorePlayers runs normalization, pillar scoring, role blending and
// shrinkage over one population. It returns the scored players ordered for
// display, the normalization context used, and the full-sample games
// threshold (0 when shrinkage is off).
func scorePlayers(players []*playerVector, cfg *Config, opts scoreOptions) ([]model.ScoredPlayer, *normContext, int) {
	if len(players) == 0 {
		return []model.ScoredPlayer{}, nil, 0
	}

	ctx := opts.ctx
	if ctx == nil {
		ctx = buildNormContext(players, cfg.WinsorP)
	}

	scored := make([]model.ScoredPlayer, len(players))
	for i, p := range players {
		pillar := model.PillarScores{
			Individual:  pillarScore(ctx, p.Raw, cfg.Metric.Indiv, nil),
			Objective:   pillarScore(ctx, p.Raw, cfg.Metric.Obj, nil),
			Vision:      pillarScore(ctx, p.Raw, cfg.Metric.Vision, nil),
			Reliability: pillarScore(ctx, p.Raw, cfg.Metric.Reli, invertedMetrics),
		}

		w := blendRoleWeights(p.Roles, cfg)
		totalRaw := w.Indiv*pillar.Individual + w.Obj*pillar.Objective +
			w.Vision*pillar.Vision + w.Reli*pillar.Reliability

		scored[i] = model.ScoredPlayer{
			Name:     p.Name,
			Games:    p.Games,
			Wins:     p.Wins,
			Winrate:  p.Winrate,
			Roles:    p.Roles,
			Pillar:   pillar,
			TotalRaw: totalRaw,
		}
	}

	minGamesFull := 0
	if opts.applyShrink {
		minGamesFull = shrink(scored, cfg)
	} else {
		for i := range scored {
			scored[i].TotalShrunk = scored[i].TotalRaw
			scored[i].Impact = cfg.Base + scored[i].TotalRaw*(100-cfg.Base)
			scored[i].IsGuest = false
		}
	}

	// Non-guests before guests, then impact descending; name ascending keeps
	// equal scores in a stable order across runs.
	sort.Slice(scored, func(i, j int) bool {
		a, b := &scored[i], &scored[j]
		if a.IsGuest != b.IsGuest {
			return !a.IsGuest
		}
		if a.Impact != b.Impact {
			return a.Impact > b.Impact
		}
		return a.Name < b.Name
	})

	return scored, ctx, minGamesFull
}

// invertedMetrics flags lower-is-better metrics whose normalized value is
// flipped before weighting.
var invertedMetrics = map[string]bool{
	MetricTimeDeadRate: true,
	MetricDeathDist:    true,
}

// pillarScore is the weighted sum of the pillar's normalized metrics. Weights
// are expected to sum to 1 within the pillar.
func pillarScore(ctx *normContext, raw map[string]float64, weights map[string]float64, inverted map[string]bool) float64 {
	// Deterministic fold order; float addition is not associative.
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	score := 0.0
	for _, k := range keys {
		score += weights[k] * ctx.Normalize(k, raw[k], inverted[k])
	}
	return score
}

// blendRoleWeights turns a player's role mix into one pillar-weight vector:
// the share-weighted average of the per-role weight rows, re-normalized so
// the four weights sum to exactly 1.
func blendRoleWeights(roles []model.RoleShare, cfg *Config) PillarWeights {
	if len(roles) == 0 {
		roles = []model.RoleShare{{Role: RoleUnknown, Share: 1}}
	}

	var out PillarWeights
	for _, rs := range roles {
		w, ok := cfg.RolePillarWeights[normRole(rs.Role)]
		if !ok {
			w = cfg.RolePillarWeights[RoleUnknown]
		}
		out.Indiv += w.Indiv * rs.Share
		out.Obj += w.Obj * rs.Share
		out.Vision += w.Vision * rs.Share
		out.Reli += w.Reli * rs.Share
	}

	sum := out.Indiv + out.Obj + out.Vision + out.Reli
	if sum == 0 {
		sum = 1
	}
	out.Indiv /= sum
	out.Obj /= sum
	out.Vision /= sum
	out.Reli /= sum
	return out
}

// shrink pulls each player's raw total toward the population mean in
// proportion to how far below the full-sample games threshold they are, then
// maps the result into the public [Base, 100] range. Returns the threshold.
func shrink(scored []model.ScoredPlayer, cfg *Config) int {
	maxGames := 1
	for i := range scored {
		if scored[i].Games > maxGames {
			maxGames = scored[i].Games
		}
	}
	minGamesFull := cfg.MinGamesFloor
	if byFrac := int(math.Round(float64(maxGames) * cfg.ShrinkFractionOfMax)); byFrac > minGamesFull {
		minGamesFull = byFrac
	}
	if minGamesFull < 1 {
		minGamesFull = 1
	}

	mean := 0.0
	for i := range scored {
		mean += scored[i].TotalRaw
	}
	mean /= float64(len(scored))

	for i := range scored {
		p := &scored[i]
		sampleFactor := clamp(float64(p.Games)/float64(minGamesFull), 0, 1)
		p.TotalShrunk = sampleFactor*p.TotalRaw + (1-sampleFactor)*mean
		p.Impact = cfg.Base + p.TotalShrunk*(100-cfg.Base)
		p.IsGuest = p.Games < minGamesFull
	}
	return minGamesFull
}
