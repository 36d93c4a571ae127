package impact

import (
	"testing"

	"github.com/teamdot/go-lol-impact/internal/model"
)

// makeRow builds a raw sheet row for one player in one match.
func makeRow(player, match string, extra map[string]string) model.Row {
	r := model.Row{"Player": player, "Match ID": match}
	for k, v := range extra {
		r[k] = v
	}
	return r
}

func TestBuildSeasonVectorsDedup(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M1", map[string]string{"Kills": "5", "Result": "Win"}),
		makeRow("Alice", "M1", map[string]string{"Kills": "100", "Result": "Win"}), // duplicate, ignored
		makeRow("Alice", "M2", map[string]string{"Kills": "3", "Result": "Loss"}),
	}
	vecs := buildSeasonVectors(rows, cfg)
	if len(vecs) != 1 {
		t.Fatalf("want 1 player, got %d", len(vecs))
	}
	v := vecs[0]
	if v.Games != 2 {
		t.Errorf("games: want 2, got %d", v.Games)
	}
	if v.Wins != 1 {
		t.Errorf("wins: want 1, got %d", v.Wins)
	}
	if v.Winrate != 50 {
		t.Errorf("winrate: want 50, got %v", v.Winrate)
	}
	// KDA over the two kept rows: (5+3+0)/max(1,0) = 8.
	if v.Raw[MetricKDA] != 8 {
		t.Errorf("kda: want 8, got %v", v.Raw[MetricKDA])
	}
}

func TestBuildSeasonVectorsSkipsIncompleteRows(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		{"Player": "Alice"},                  // no match id
		{"Match ID": "M1", "Kills": "4"},     // no player
		makeRow("Bob", "M1", nil),            // complete
	}
	vecs := buildSeasonVectors(rows, cfg)
	if len(vecs) != 1 || vecs[0].Name != "Bob" {
		t.Fatalf("want Bob only, got %v", vecs)
	}
}

func TestBuildSeasonVectorsKPOnlyWhenPresent(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M1", map[string]string{"Kill Part %": "60"}),
		makeRow("Alice", "M2", nil), // missing KP, not averaged in
	}
	v := buildSeasonVectors(rows, cfg)[0]
	if v.Raw[MetricKP] != 60 {
		t.Errorf("kp averages only reported matches: want 60, got %v", v.Raw[MetricKP])
	}
}

func TestBuildSeasonVectorsFirstBloodRate(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M1", map[string]string{"p.firstBloodKill": "true"}),
		makeRow("Alice", "M2", nil),
	}
	v := buildSeasonVectors(rows, cfg)[0]
	if v.Raw[MetricFirstBloodRate] != 50 {
		t.Errorf("fb rate: want 50, got %v", v.Raw[MetricFirstBloodRate])
	}
}

func TestBuildSeasonVectorsMalformedCellsAreZero(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M1", map[string]string{"Kills": "n/a", "Gold/min": "—"}),
	}
	v := buildSeasonVectors(rows, cfg)[0]
	if v.Raw[MetricGoldMin] != 0 {
		t.Errorf("malformed gold/min: want 0, got %v", v.Raw[MetricGoldMin])
	}
	if v.Raw[MetricKDA] != 0 {
		t.Errorf("malformed kills: want kda 0, got %v", v.Raw[MetricKDA])
	}
}

func TestRoleBreakdown(t *testing.T) {
	shares := roleBreakdown(map[string]int{RoleMid: 3, RoleSupport: 1})
	if len(shares) != 2 {
		t.Fatalf("want 2 entries, got %d", len(shares))
	}
	if shares[0].Role != RoleMid || !almost(shares[0].Share, 0.75) {
		t.Errorf("first entry: want MID 0.75, got %s %v", shares[0].Role, shares[0].Share)
	}
	sum := 0.0
	for _, s := range shares {
		sum += s.Share
	}
	if !almost(sum, 1) {
		t.Errorf("shares sum to %v, want 1", sum)
	}

	// Count ties break on role name for stable output.
	tied := roleBreakdown(map[string]int{RoleTop: 2, RoleJungle: 2})
	if tied[0].Role != RoleJungle {
		t.Errorf("tie-break: want JUNGLE first, got %s", tied[0].Role)
	}

	// Empty histogram falls back to UNKNOWN.
	if def := roleBreakdown(nil); len(def) != 1 || def[0].Role != RoleUnknown {
		t.Errorf("empty: want UNKNOWN, got %v", def)
	}
}

func TestBuildLastMatchVectors(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M9", map[string]string{
			"Kills": "4", "Deaths": "2", "Assists": "6",
			"Result": "Win", "p.firstBloodKill": "yes",
			"ROLE": "MID",
		}),
		makeRow("Bob", "M9", map[string]string{"Deaths": "5", "Result": "Loss"}),
	}
	vecs := buildLastMatchVectors(rows, cfg)
	if len(vecs) != 2 {
		t.Fatalf("want 2 players, got %d", len(vecs))
	}

	alice := vecs[0]
	if alice.Games != 1 || alice.Wins != 1 || alice.Winrate != 100 {
		t.Errorf("alice bookkeeping: got games=%d wins=%d winrate=%v", alice.Games, alice.Wins, alice.Winrate)
	}
	if alice.Raw[MetricKDA] != 5 { // (4+6)/2
		t.Errorf("kda: want 5, got %v", alice.Raw[MetricKDA])
	}
	if alice.Raw[MetricFirstBloodRate] != 100 {
		t.Errorf("fb rate: want 100, got %v", alice.Raw[MetricFirstBloodRate])
	}
	if alice.Roles[0].Role != RoleMid || alice.Roles[0].Share != 1 {
		t.Errorf("role: want MID share 1, got %v", alice.Roles)
	}

	bob := vecs[1]
	if bob.Raw[MetricFirstBloodRate] != 0 {
		t.Errorf("bob fb rate: want 0, got %v", bob.Raw[MetricFirstBloodRate])
	}
	if bob.Raw[MetricKDA] != 0 { // (0+0)/5
		t.Errorf("bob kda: want 0, got %v", bob.Raw[MetricKDA])
	}
}

func TestBuildLastMatchVectorsDuplicateReplaces(t *testing.T) {
	cfg := DefaultConfig()
	rows := []model.Row{
		makeRow("Alice", "M9", map[string]string{"Kills": "1"}),
		makeRow("Alice", "M9", map[string]string{"Kills": "7"}),
	}
	vecs := buildLastMatchVectors(rows, cfg)
	if len(vecs) != 1 {
		t.Fatalf("want 1 player, got %d", len(vecs))
	}
	if vecs[0].Raw[MetricKDA] != 7 {
		t.Errorf("later row should replace: want kda 7, got %v", vecs[0].Raw[MetricKDA])
	}
}
