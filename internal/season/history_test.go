package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

func TestMVP(t *testing.T) {
	rosters := map[string]league.Roster{
		"GOOD": {
			{ID: "qb-good", Position: league.QB, FirstName: "Star", LastName: "Passer",
				Stats: league.SeasonStats{PassingYards: 4500, PassingTDs: 35}},
			{ID: "wr-good", Position: league.WR,
				Stats: league.SeasonStats{ReceivingYards: 1800}},
		},
		"ALSO": {
			{ID: "qb-also", Position: league.QB,
				Stats: league.SeasonStats{PassingYards: 5000, PassingTDs: 20}},
		},
		"BAD": {
			{ID: "qb-bad", Position: league.QB,
				Stats: league.SeasonStats{PassingYards: 6000, PassingTDs: 50}},
		},
	}
	standings := map[string]league.Standings{
		"GOOD": {Wins: 13, Losses: 4},
		"ALSO": {Wins: 10, Losses: 7},
		"BAD":  {Wins: 4, Losses: 13}, // gaudy numbers, losing team
	}

	award := MVP(rosters, standings)
	require.NotNil(t, award)
	// 4500+3500 beats 5000+2000; the losing QB never qualifies
	assert.Equal(t, "qb-good", award.PlayerID)
	assert.Equal(t, "GOOD", award.TeamID)
	assert.Equal(t, "MVP", award.Type)
	assert.Equal(t, "Star Passer", award.PlayerName)
}

func TestMVPNilWithoutTenWinTeam(t *testing.T) {
	rosters := map[string]league.Roster{
		"A": {{ID: "qb", Position: league.QB, Stats: league.SeasonStats{PassingYards: 5000}}},
	}
	standings := map[string]league.Standings{"A": {Wins: 9, Losses: 8}}
	assert.Nil(t, MVP(rosters, standings))
}

func TestSnapshot(t *testing.T) {
	standings := rankedStandings()
	b := NewBracket(standings, 2026)
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	b.SettleRound()

	champion := b.Champion
	awards := []Award{{Type: "MVP", PlayerID: "qb", PlayerName: "Some QB", TeamID: champion}}

	records := Snapshot(2026, standings, b, awards)
	require.Len(t, records, len(league.Teams))

	byTeam := map[string]Record{}
	for _, rec := range records {
		assert.Equal(t, 2026, rec.Season)
		byTeam[rec.TeamID] = rec
	}

	champRec := byTeam[champion]
	assert.Equal(t, "Super Bowl Champion", champRec.PlayoffResult)
	assert.Equal(t, 1, champRec.PlayoffSeed)
	require.Len(t, champRec.Awards, 1)
	assert.Equal(t, "MVP", champRec.Awards[0].Type)

	missed := byTeam[league.ConferenceTeams("AFC")[12]]
	assert.Equal(t, "Did not qualify", missed.PlayoffResult)
	assert.Zero(t, missed.PlayoffSeed)
	assert.Empty(t, missed.Awards)
}

func TestSnapshotNilBracket(t *testing.T) {
	records := Snapshot(2026, rankedStandings(), nil, nil)
	for _, rec := range records {
		assert.Equal(t, "Did not qualify", rec.PlayoffResult)
	}
}

func TestLeaders(t *testing.T) {
	rosters := map[string]league.Roster{
		"A": {
			{ID: "p1", FirstName: "Big", LastName: "Arm", Position: league.QB,
				Stats: league.SeasonStats{PassingYards: 4000}},
			{ID: "p2", Position: league.QB, Stats: league.SeasonStats{PassingYards: 3000}},
			{ID: "p3", Position: league.RB, Stats: league.SeasonStats{RushingYards: 1500}},
		},
		"B": {
			{ID: "p4", Position: league.QB, Stats: league.SeasonStats{PassingYards: 4200}},
			{ID: "p5", Position: league.WR}, // zero stats are excluded
		},
	}

	leaders := Leaders(rosters, "passing_yards", 2)
	require.Len(t, leaders, 2)
	assert.Equal(t, "p4", leaders[0].PlayerID)
	assert.Equal(t, "p1", leaders[1].PlayerID)
	assert.Equal(t, "Big Arm", leaders[1].PlayerName)
	assert.Equal(t, 4000, leaders[1].Value)
	assert.Equal(t, "A", leaders[1].TeamID)

	assert.Nil(t, Leaders(rosters, "bogus", 5))
	assert.True(t, ValidCategory("rushing_tds"))
	assert.False(t, ValidCategory("bogus"))
}
