package league

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamsTable(t *testing.T) {
	require.Len(t, Teams, 32)

	seen := map[string]bool{}
	byConf := map[string]int{}
	for _, team := range Teams {
		assert.False(t, seen[team.ID], team.ID)
		seen[team.ID] = true
		byConf[team.Conference]++
	}
	assert.Equal(t, 16, byConf["AFC"])
	assert.Equal(t, 16, byConf["NFC"])

	buf, ok := TeamByID("BUF")
	require.True(t, ok)
	assert.Equal(t, "Buffalo Bills", buf.Name)

	_, ok = TeamByID("XXX")
	assert.False(t, ok)

	assert.Len(t, ConferenceTeams("AFC"), 16)
}

func TestStandingsWinPct(t *testing.T) {
	assert.Zero(t, Standings{}.WinPct())
	assert.Equal(t, 0.5, Standings{Wins: 8, Losses: 8}.WinPct())
	// Ties count half
	assert.Equal(t, 0.5, Standings{Wins: 4, Losses: 4, Ties: 8}.WinPct())
	assert.Equal(t, 10, Standings{PointsFor: 30, PointsAgainst: 20}.PointDiff())
}

func TestGameWinner(t *testing.T) {
	assert.Empty(t, (&Game{HomeTeam: "H", AwayTeam: "A"}).Winner())

	home := &Game{HomeTeam: "H", AwayTeam: "A", Played: true, HomeScore: 21, AwayScore: 14}
	assert.Equal(t, "H", home.Winner())

	tie := &Game{HomeTeam: "H", AwayTeam: "A", Played: true, HomeScore: 14, AwayScore: 14}
	assert.Empty(t, tie.Winner())
}

func TestPlayerHealth(t *testing.T) {
	healthy := &Player{}
	assert.True(t, healthy.IsHealthy())

	hurt := &Player{Injury: &Injury{WeeksRemaining: 2}}
	assert.False(t, hurt.IsHealthy())

	recovered := &Player{Injury: &Injury{WeeksRemaining: 0}}
	assert.True(t, recovered.IsHealthy())
}

func TestPlayerCloneIsDeep(t *testing.T) {
	p := &Player{
		ID:         "p1",
		Attributes: map[string]int{"speed": 80},
		Contract: &Contract{
			Salary:  1_000_000,
			Clauses: &Clauses{NoTrade: true},
			Bonuses: &Bonuses{Performance: map[string]int64{"roster": 50_000}},
		},
		Injury: &Injury{WeeksRemaining: 2},
		Stats:  SeasonStats{PassingYards: 100},
	}

	cp := p.Clone()
	cp.Attributes["speed"] = 1
	cp.Contract.Salary = 2
	cp.Contract.Clauses.NoTrade = false
	cp.Contract.Bonuses.Performance["roster"] = 3
	cp.Injury.WeeksRemaining = 9
	cp.Stats.PassingYards = 4

	assert.Equal(t, 80, p.Attributes["speed"])
	assert.Equal(t, int64(1_000_000), p.Contract.Salary)
	assert.True(t, p.Contract.Clauses.NoTrade)
	assert.Equal(t, int64(50_000), p.Contract.Bonuses.Performance["roster"])
	assert.Equal(t, 2, p.Injury.WeeksRemaining)
	assert.Equal(t, 100, p.Stats.PassingYards)
}

func TestRosterHelpers(t *testing.T) {
	roster := Roster{
		{ID: "a", Contract: &Contract{Salary: 1_000_000}},
		{ID: "b", Contract: &Contract{Salary: 2_000_000}},
	}

	assert.Equal(t, int64(3_000_000), roster.TotalSalary())
	assert.NotNil(t, roster.Find("a"))
	assert.Nil(t, roster.Find("z"))

	remaining, removed := roster.Remove("a")
	require.NotNil(t, removed)
	assert.Equal(t, "a", removed.ID)
	assert.Len(t, remaining, 1)
	assert.Nil(t, remaining.Find("a"))

	same, none := remaining.Remove("z")
	assert.Nil(t, none)
	assert.Len(t, same, 1)
}

func TestSeasonStatsAdd(t *testing.T) {
	total := SeasonStats{PassingYards: 100, GamesPlayed: 1}
	total.Add(SeasonStats{PassingYards: 250, PassingTDs: 2, GamesPlayed: 1})

	assert.Equal(t, 350, total.PassingYards)
	assert.Equal(t, 2, total.PassingTDs)
	assert.Equal(t, 2, total.GamesPlayed)
}

func TestBonusesTotal(t *testing.T) {
	var nilBonuses *Bonuses
	assert.Zero(t, nilBonuses.Total())

	b := &Bonuses{
		Performance: map[string]int64{"roster": 100, "playing_time": 200},
		Milestones:  map[string]int64{"pro_bowl": 300},
	}
	assert.Equal(t, int64(600), b.Total())
}
