package impact

// Metric keys of the per-player raw vector. Every metric is a per-game
// average over the scored population.
const (
	MetricKDA            = "kda"
	MetricKP             = "kp"
	MetricDmgShare       = "dmgShare"
	MetricDPM            = "dpm"
	MetricGoldMin        = "goldMin"
	MetricCSMin          = "csMin"
	MetricFirstBloodRate = "firstBloodRate"
	MetricObjPart        = "objPart"
	MetricObjKills       = "objKills"
	MetricPlates         = "plates"
	MetricObjDmg         = "objDmg"
	MetricVSMin          = "vsMin"
	MetricWardsMin       = "wardsMin"
	MetricWardsKilledMin = "wardsKilledMin"
	MetricDenial         = "denial"
	MetricEnemyJungle    = "enemyJunglePct"
	MetricPinkEff        = "pinkEff"
	MetricConsistency    = "consistency"
	MetricMomentum       = "momentum"
	MetricMacroCons      = "macroCons"
	MetricPerfRating     = "perfRating"
	MetricTimeDeadRate   = "timeDeadRate"
	MetricDeathDist      = "deathDist"
)

// metricKeys is the fixed iteration order for normalization contexts.
var metricKeys = []string{
	MetricKDA, MetricKP, MetricDmgShare, MetricDPM, MetricGoldMin, MetricCSMin, MetricFirstBloodRate,
	MetricObjPart, MetricObjKills, MetricPlates, MetricObjDmg,
	MetricVSMin, MetricWardsMin, MetricWardsKilledMin, MetricDenial, MetricEnemyJungle, MetricPinkEff,
	MetricConsistency, MetricMomentum, MetricMacroCons, MetricPerfRating, MetricTimeDeadRate, MetricDeathDist,
}

// Normalized role names.
const (
	RoleTop     = "TOP"
	RoleJungle  = "JUNGLE"
	RoleMid     = "MID"
	RoleADC     = "ADC"
	RoleSupport = "SUPPORT"
	RoleUnknown = "UNKNOWN"
)

// PillarWeights is one row of the role→pillar weight table. The four fields
// are expected to sum to 1.
type PillarWeights struct {
	Indiv  float64
	Obj    float64
	Vision float64
	Reli   float64
}

// MetricWeights maps each pillar's metrics to their weight inside that pillar.
// Weights within a pillar must sum to 1; this is a configuration invariant and
// is not enforced at runtime.
type MetricWeights struct {
	Indiv  map[string]float64
	Obj    map[string]float64
	Vision map[string]float64
	Reli   map[string]float64
}

// ObjPartWeights weighs each objective type inside the objective-participation
// composite metric.
type ObjPartWeights struct {
	Dragon   float64
	Herald   float64
	Baron    float64
	Tower    float64
	Atakhan  float64
	VoidGrub float64
}

// Config holds every tunable of the scoring engine. Zero or missing pieces
// are not defaulted — use DefaultConfig and override.
type Config struct {
	// Base is the floor of the public impact range [Base, 100].
	Base float64
	// WinsorP is the winsorization percentile applied before min-max scaling.
	WinsorP float64

	// Shrinkage threshold inputs: a player is fully trusted at
	// max(MinGamesFloor, round(maxGames*ShrinkFractionOfMax)) games.
	MinGamesFloor       int
	ShrinkFractionOfMax float64

	ObjPart           ObjPartWeights
	RolePillarWeights map[string]PillarWeights
	Metric            MetricWeights

	// Delta classification thresholds, passed through to the presentation
	// layer; the engine itself does not act on them.
	TrendUp   float64
	TrendDown float64

	// Roster, when non-empty, excludes rows for players outside this set
	// before aggregation.
	Roster []string
}

// DefaultConfig returns the season-26 tuning.
func DefaultConfig() *Config {
	return &Config{
		Base:    40,
		WinsorP: 0.05,

		MinGamesFloor:       3,
		ShrinkFractionOfMax: 0.35,

		ObjPart: ObjPartWeights{
			Dragon:   0.25,
			Herald:   0.10,
			Baron:    0.30,
			Tower:    0.20,
			Atakhan:  0, // tracked but not weighted
			VoidGrub: 0.15,
		},

		RolePillarWeights: map[string]PillarWeights{
			RoleSupport: {Indiv: 0.22, Obj: 0.18, Vision: 0.35, Reli: 0.25},
			RoleJungle:  {Indiv: 0.30, Obj: 0.30, Vision: 0.18, Reli: 0.22},
			RoleTop:     {Indiv: 0.33, Obj: 0.25, Vision: 0.12, Reli: 0.30},
			RoleMid:     {Indiv: 0.38, Obj: 0.25, Vision: 0.12, Reli: 0.25},
			RoleADC:     {Indiv: 0.42, Obj: 0.25, Vision: 0.10, Reli: 0.23},
			RoleUnknown: {Indiv: 0.35, Obj: 0.25, Vision: 0.15, Reli: 0.25},
		},

		Metric: MetricWeights{
			Indiv: map[string]float64{
				MetricKDA: 0.18, MetricKP: 0.18, MetricDmgShare: 0.18, MetricDPM: 0.14,
				MetricGoldMin: 0.14, MetricCSMin: 0.10, MetricFirstBloodRate: 0.08,
			},
			Obj: map[string]float64{
				MetricObjKills: 0.38, MetricObjPart: 0.30, MetricPlates: 0.16, MetricObjDmg: 0.16,
			},
			Vision: map[string]float64{
				MetricVSMin: 0.30, MetricWardsMin: 0.16, MetricWardsKilledMin: 0.20,
				MetricDenial: 0.18, MetricEnemyJungle: 0.10, MetricPinkEff: 0.06,
			},
			Reli: map[string]float64{
				MetricConsistency: 0.22, MetricMomentum: 0.18, MetricMacroCons: 0.18,
				MetricPerfRating: 0.18, MetricTimeDeadRate: 0.14, MetricDeathDist: 0.10,
			},
		},

		TrendUp:   1.0,
		TrendDown: -1.0,
	}
}
