package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/generator"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func weekFixture(t *testing.T) (map[string]league.Roster, map[string]league.Staff, map[string]league.Standings) {
	t.Helper()
	g := generator.New(rng.New(50))
	rosters := map[string]league.Roster{}
	staffs := map[string]league.Staff{}
	for _, team := range league.Teams {
		rosters[team.ID] = g.Roster(team.ID)
		staffs[team.ID] = g.Staff(team.ID)
	}
	return rosters, staffs, ResetStandings()
}

func TestSimulateWeek(t *testing.T) {
	rosters, staffs, standings := weekFixture(t)
	games := WeekGames(GenerateSchedule(rng.New(51), 2026), 2026, 1)
	require.Len(t, games, 16)

	summary := SimulateWeek(rng.New(52), games, rosters, staffs, standings, 2026, 1)

	assert.Equal(t, 1, summary.Week)
	require.Len(t, summary.Results, 16)

	// Every game is final and the schedule entries carry the scores
	for _, g := range games {
		assert.True(t, g.Played)
		assert.GreaterOrEqual(t, g.HomeScore, 0)
	}

	// Standings account for every game once
	totalGames := 0
	for _, s := range standings {
		totalGames += s.Wins + s.Losses + s.Ties
	}
	assert.Equal(t, 32, totalGames)

	// Player stats landed on the rosters
	statted := 0
	for _, roster := range rosters {
		for _, p := range roster {
			if p.Stats.GamesPlayed > 0 {
				statted++
			}
		}
	}
	assert.Greater(t, statted, 1000)
}

func TestSimulateWeekInjuriesStamped(t *testing.T) {
	rosters, staffs, standings := weekFixture(t)
	games := WeekGames(GenerateSchedule(rng.New(53), 2026), 2026, 3)

	summary := SimulateWeek(rng.New(54), games, rosters, staffs, standings, 2026, 3)

	for _, ev := range summary.Injuries {
		require.NotNil(t, ev.Injury)
		assert.Equal(t, 3, ev.Injury.OccurredWeek)
		assert.Equal(t, 2026, ev.Injury.OccurredSeason)
		assert.NotEmpty(t, ev.PlayerName)
		// The heal tick at week's end already ran once
		assert.Equal(t, ev.Injury.WeeksOut-1, ev.Injury.WeeksRemaining)
	}
}

func TestApplyStandingsTie(t *testing.T) {
	standings := map[string]league.Standings{}
	applyStandings(standings, &league.Game{
		HomeTeam: "H", AwayTeam: "A", Played: true,
		HomeScore: 17, AwayScore: 17,
	})

	assert.Equal(t, 1, standings["H"].Ties)
	assert.Equal(t, 1, standings["A"].Ties)
	assert.Equal(t, 17, standings["H"].PointsFor)
	assert.Equal(t, 17, standings["A"].PointsAgainst)
}

func TestAutoResolveOnlyUnplayed(t *testing.T) {
	rosters, staffs, standings := weekFixture(t)
	games := WeekGames(GenerateSchedule(rng.New(55), 2026), 2026, 1)

	games[0].Played = true
	games[0].HomeScore = 99

	summary := AutoResolve(rng.New(56), games, rosters, staffs, standings, 2026, 1)
	assert.Len(t, summary.Results, 15)
	assert.Equal(t, 99, games[0].HomeScore)

	// Nothing left resolves to an empty summary
	again := AutoResolve(rng.New(57), games, rosters, staffs, standings, 2026, 1)
	assert.Empty(t, again.Results)
}
