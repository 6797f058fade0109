package gamesim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/generator"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func testTeams(t *testing.T, seed int64) (league.Roster, league.Roster, league.Staff, league.Staff) {
	t.Helper()
	g := generator.New(rng.New(seed))
	return g.Roster("HOME"), g.Roster("AWAY"), g.Staff("HOME"), g.Staff("AWAY")
}

func TestSimulateGameDeterministic(t *testing.T) {
	home, away, hs, as := testTeams(t, 10)
	game := league.Game{ID: "g1", HomeTeam: "HOME", AwayTeam: "AWAY", Week: 1}

	r1 := New(rng.Derive(99, "game", "g1")).SimulateGame(game, home, away, hs, as)
	r2 := New(rng.Derive(99, "game", "g1")).SimulateGame(game, home, away, hs, as)

	assert.Equal(t, r1.Game.HomeScore, r2.Game.HomeScore)
	assert.Equal(t, r1.Game.AwayScore, r2.Game.AwayScore)
	assert.Equal(t, len(r1.PlayByPlay), len(r2.PlayByPlay))
}

func TestSimulateGameInvariants(t *testing.T) {
	home, away, hs, as := testTeams(t, 11)

	for i := int64(0); i < 20; i++ {
		game := league.Game{ID: "g", HomeTeam: "HOME", AwayTeam: "AWAY", Week: 1}
		res := New(rng.New(i)).SimulateGame(game, home, away, hs, as)

		assert.True(t, res.Game.Played)
		assert.GreaterOrEqual(t, res.Game.HomeScore, 0)
		assert.GreaterOrEqual(t, res.Game.AwayScore, 0)
		assert.NotEmpty(t, res.PlayByPlay)

		// Overtime only happens from a regulation tie; a tie after
		// overtime means the sudden-death possession came up empty.
		if res.Game.HomeScore == res.Game.AwayScore {
			assert.True(t, res.Overtime)
		}
	}
}

func TestSimulateGameStats(t *testing.T) {
	home, away, hs, as := testTeams(t, 12)
	game := league.Game{ID: "g", HomeTeam: "HOME", AwayTeam: "AWAY", Week: 1}
	res := New(rng.New(7)).SimulateGame(game, home, away, hs, as)

	require.NotEmpty(t, res.PlayerStats)

	// Every healthy player on both rosters gets an appearance
	for _, p := range home {
		if p.IsHealthy() {
			assert.Equal(t, 1, res.PlayerStats[p.ID].GamesPlayed)
		}
	}

	for id, st := range res.PlayerStats {
		assert.GreaterOrEqual(t, st.PassingTDs, 0, id)
		assert.GreaterOrEqual(t, st.Receptions, 0, id)
	}
}

func TestTeamStrengthNeutralWhenEmpty(t *testing.T) {
	assert.Equal(t, 65.0, TeamStrength(league.Roster{}, league.Staff{}))
}

func TestTeamStrengthSkipsInjured(t *testing.T) {
	roster := league.Roster{
		{ID: "a", Overall: 90},
		{ID: "b", Overall: 50, Injury: &league.Injury{WeeksRemaining: 3}},
	}
	assert.Equal(t, 90.0, TeamStrength(roster, league.Staff{}))
}

func TestStaffImpact(t *testing.T) {
	// No head coach means no adjustment
	assert.Equal(t, 0.0, StaffImpact(league.Staff{}))

	average := league.Staff{
		league.HeadCoach: {Attributes: league.CoachAttributes{Offense: 70, Defense: 70, Motivation: 70}},
	}
	assert.InDelta(t, 0.0, StaffImpact(average), 1e-9)

	elite := league.Staff{
		league.HeadCoach: {Attributes: league.CoachAttributes{Offense: 90, Defense: 90, Motivation: 90}},
	}
	assert.Greater(t, StaffImpact(elite), StaffImpact(average))
}

func TestDriveTerminates(t *testing.T) {
	home, away, hs, as := testTeams(t, 13)
	s := New(rng.New(8))
	h := side{teamID: "HOME", roster: home, strength: TeamStrength(home, hs)}
	a := side{teamID: "AWAY", roster: away, strength: TeamStrength(away, as)}

	for i := 0; i < 50; i++ {
		points, plays := s.drive(1, h, a)
		assert.LessOrEqual(t, len(plays), maxPlaysPerDrive+1)
		assert.Contains(t, []int{0, 3, 6, 7}, points)
	}
}
