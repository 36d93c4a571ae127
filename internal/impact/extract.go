package impact

import (
	"math"
	"strconv"
	"strings"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// Field-name aliases per raw column, ordered by preference. Sheet revisions
// rename columns; resolution tries each alias until one is non-blank.
var (
	aliasPlayer  = []string{"p.riotIdGameName", "Player", "p.summonerName"}
	aliasMatchID = []string{"Match ID", "MatchID", "Game ID", "Game #", "Date"}
	aliasDate    = []string{"Date", "DATE"}
	aliasRole    = []string{"ROLE", "Team Position", "p.teamPosition", "p.individualPosition", "p.role"}

	aliasKills   = []string{"Kills", "p.kills", "kills"}
	aliasDeaths  = []string{"Deaths", "p.deaths", "deaths"}
	aliasAssists = []string{"Assists", "p.assists", "assists"}

	aliasKP         = []string{"Kill Part %", "p.challenges.killParticipation", "killParticipation"}
	aliasDmgShare   = []string{"Team Damage %", "Damage Share %", "p.challenges.teamDamagePercentage", "teamDamagePercentage"}
	aliasDPM        = []string{"Damage per Minute", "p.challenges.damagePerMinute", "damagePerMinute"}
	aliasGoldMin    = []string{"Gold/min", "p.challenges.goldPerMinute", "goldPerMinute"}
	aliasCSMin      = []string{"CS/min", "csPerMinute"}
	aliasCS         = []string{"CS", "p.totalMinionsKilled", "totalMinionsKilled"}
	aliasTimePlayed = []string{"p.timePlayed", "timePlayed"}
	aliasTimeMin    = []string{"TIME"}

	aliasFBKill   = []string{"p.firstBloodKill", "firstBloodKill"}
	aliasFBAssist = []string{"p.firstBloodAssist", "firstBloodAssist"}

	aliasObjKills    = []string{"Objective Kills", "p.challenges.objectiveKills", "objectiveKills"}
	aliasPartDragon  = []string{"Dragon Participation"}
	aliasPartHerald  = []string{"Herald Participation"}
	aliasPartBaron   = []string{"Baron Participation"}
	aliasPartTower   = []string{"Tower Participation"}
	aliasPartAtakhan = []string{"Atakhan Participation"}
	aliasPartVoid    = []string{"Void Grub Participation"}
	aliasPlates      = []string{"Turret Plates Taken", "p.challenges.turretPlatesTaken", "turretPlatesTaken"}
	aliasObjDmg      = []string{"p.damageDealtToObjectives", "damageDealtToObjectives"}

	aliasVisionScore = []string{"Vision Score", "p.visionScore", "visionScore"}
	aliasWards       = []string{"WARDS", "Wards", "p.wardsPlaced", "wardsPlaced"}
	aliasWardsKilled = []string{"WARDS KILLED", "p.wardsKilled", "wardsKilled"}
	aliasDenial      = []string{"Vision Denial Efficiency"}
	aliasEnemyJungle = []string{"Wards in Enemy Jungle %"}
	aliasPinkEff     = []string{"Pink Efficiency"}

	aliasConsistency = []string{"Consistency Index"}
	aliasMomentum    = []string{"Momentum Stability"}
	aliasMacroCons   = []string{"Macro Consistency"}
	aliasPerfRating  = []string{"Performance Rating", "p.challenges.performanceRating", "performanceRating"}
	aliasTimeDead    = []string{"p.totalTimeSpentDead", "totalTimeSpentDead"}
	aliasDeathDist   = []string{"Average Death Distance"}
)

// toNum coerces a sheet cell to a number. Blank, malformed and non-finite
// values become 0; a trailing "%" and a European decimal comma are accepted.
func toNum(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.Replace(s, "%", "", 1)
	s = strings.Replace(s, ",", ".", 1)
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// boolish interprets the spreadsheet's assorted truthy spellings.
func boolish(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

// pctScale converts fraction-convention values (≤1.01) to percent.
func pctScale(v float64) float64 {
	if v > 0 && v <= 1.01 {
		return v * 100
	}
	return v
}

func playerName(r model.Row) string {
	return strings.TrimSpace(r.Get(aliasPlayer...))
}

func matchID(r model.Row) string {
	return strings.TrimSpace(r.Get(aliasMatchID...))
}

func rowDate(r model.Row) string {
	return strings.TrimSpace(r.Get(aliasDate...))
}

func isWin(r model.Row) bool {
	switch strings.ToLower(strings.TrimSpace(r.Get("Result"))) {
	case "win":
		return true
	case "loss":
		return false
	}
	return boolish(r.Get("p.win"))
}

// normRole folds the many position spellings into the five canonical roles.
func normRole(role string) string {
	r := strings.ToUpper(strings.TrimSpace(role))
	switch {
	case strings.Contains(r, "JUNG"):
		return RoleJungle
	case strings.Contains(r, "SUP"):
		return RoleSupport
	case strings.Contains(r, "BOT"), strings.Contains(r, "ADC"):
		return RoleADC
	case strings.Contains(r, "MID"):
		return RoleMid
	case strings.Contains(r, "TOP"):
		return RoleTop
	}
	return RoleUnknown
}

func rowRole(r model.Row) string {
	return normRole(r.Get(aliasRole...))
}

// timePlayedMinutes resolves the row's game length in minutes: the timePlayed
// seconds column when present, else the sheet's TIME minutes column floored
// at 1 to keep per-minute rates divisible.
func timePlayedMinutes(r model.Row) float64 {
	if sec := toNum(r.Get(aliasTimePlayed...)); sec > 0 {
		return sec / 60
	}
	return math.Max(1, toNum(r.Get(aliasTimeMin...)))
}

// csPerMinute returns the direct CS/min column when present, else derives it
// from total CS and time played.
func csPerMinute(r model.Row) float64 {
	if direct := toNum(r.Get(aliasCSMin...)); direct > 0 {
		return direct
	}
	cs := toNum(r.Get(aliasCS...))
	tMin := timePlayedMinutes(r)
	if tMin <= 0 {
		return 0
	}
	return cs / tMin
}

// firstBloodInvolved reports first-blood kill or assist on this row.
func firstBloodInvolved(r model.Row) bool {
	return boolish(r.Get(aliasFBKill...)) || boolish(r.Get(aliasFBAssist...))
}

// objPartComposite computes the weighted objective-participation composite
// from the per-objective participation columns.
func objPartComposite(r model.Row, w ObjPartWeights) float64 {
	return w.Dragon*toNum(r.Get(aliasPartDragon...)) +
		w.Herald*toNum(r.Get(aliasPartHerald...)) +
		w.Baron*toNum(r.Get(aliasPartBaron...)) +
		w.Tower*toNum(r.Get(aliasPartTower...)) +
		w.Atakhan*toNum(r.Get(aliasPartAtakhan...)) +
		w.VoidGrub*toNum(r.Get(aliasPartVoid...))
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
