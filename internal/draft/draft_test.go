package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

func TestOrderWorstFirst(t *testing.T) {
	standings := map[string]league.Standings{
		"BAD":  {Wins: 2, Losses: 15, PointsFor: 200, PointsAgainst: 450},
		"MID":  {Wins: 9, Losses: 8, PointsFor: 380, PointsAgainst: 360},
		"GOOD": {Wins: 14, Losses: 3, PointsFor: 500, PointsAgainst: 280},
	}

	picks := Order(standings)
	require.Len(t, picks, Rounds*3)

	assert.Equal(t, "BAD", picks[0].TeamID)
	assert.Equal(t, "MID", picks[1].TeamID)
	assert.Equal(t, "GOOD", picks[2].TeamID)

	// Same order repeats every round
	assert.Equal(t, "BAD", picks[3].TeamID)
	assert.Equal(t, 2, picks[3].Round)
	assert.Equal(t, 4, picks[3].OverallPick)
	assert.Equal(t, 1, picks[3].Pick)
}

func TestOrderTiebreakers(t *testing.T) {
	standings := map[string]league.Standings{
		"ZED": {Wins: 5, Losses: 12, PointsFor: 300, PointsAgainst: 400},
		"ABE": {Wins: 5, Losses: 12, PointsFor: 300, PointsAgainst: 400},
		"DIF": {Wins: 5, Losses: 12, PointsFor: 250, PointsAgainst: 400},
	}

	picks := Order(standings)
	// Worse point differential first, then team ID for identical records
	assert.Equal(t, "DIF", picks[0].TeamID)
	assert.Equal(t, "ABE", picks[1].TeamID)
	assert.Equal(t, "ZED", picks[2].TeamID)
}

func TestOrderDeterministic(t *testing.T) {
	standings := map[string]league.Standings{
		"A": {Wins: 3, Losses: 14}, "B": {Wins: 3, Losses: 14},
		"C": {Wins: 8, Losses: 9}, "D": {Wins: 12, Losses: 5},
	}
	first := Order(standings)
	second := Order(standings)
	for i := range first {
		assert.Equal(t, first[i].TeamID, second[i].TeamID)
	}
}

func TestRookieSalary(t *testing.T) {
	assert.Equal(t, int64(3_600_000), RookieSalary(1))
	assert.Equal(t, int64(600_000), RookieSalary(31))
	assert.Equal(t, int64(500_000), RookieSalary(32))
	assert.Equal(t, int64(500_000), RookieSalary(200))
}

func TestSelect(t *testing.T) {
	pick := &league.DraftPick{ID: "pick-1", Round: 1, Pick: 1, OverallPick: 1, TeamID: "BUF"}
	prospect := &league.Prospect{
		ID: "pr-1", FirstName: "Test", LastName: "Prospect",
		Position: league.QB, Age: 21, College: "State",
		Overall: 82, Potential: 95,
		Attributes: map[string]int{"throwing": 85},
	}

	player, err := Select(pick, prospect, "BUF")
	require.NoError(t, err)

	assert.Equal(t, "pr-1", player.ID)
	assert.Equal(t, "BUF", player.TeamID)
	assert.Equal(t, "BUF", player.DraftedBy)
	assert.Equal(t, 1, player.DraftPick)
	assert.Equal(t, 0, player.Experience)
	require.NotNil(t, player.Contract)
	assert.Equal(t, league.ContractRookie, player.Contract.Type)
	assert.Equal(t, RookieSalary(1), player.Contract.Salary)
	assert.Equal(t, RookieSalary(1)*4, player.Contract.GuaranteedMoney)

	assert.True(t, prospect.Drafted)
	assert.Equal(t, "pr-1", pick.ProspectID)

	// Attribute map is copied, not shared
	player.Attributes["throwing"] = 1
	assert.Equal(t, 85, prospect.Attributes["throwing"])
}

func TestSelectGuards(t *testing.T) {
	taken := &league.Prospect{ID: "pr-2", Drafted: true}
	pick := &league.DraftPick{ID: "pick-2", OverallPick: 2}
	_, err := Select(pick, taken, "MIA")
	assert.ErrorIs(t, err, ErrProspectDrafted)

	spent := &league.DraftPick{ID: "pick-3", OverallPick: 3, ProspectID: "someone"}
	fresh := &league.Prospect{ID: "pr-3"}
	_, err = Select(spent, fresh, "MIA")
	assert.ErrorIs(t, err, ErrPickUsed)
}

func TestBestAvailable(t *testing.T) {
	pool := []*league.Prospect{
		{ID: "a", Overall: 75},
		{ID: "b", Overall: 88, Drafted: true},
		{ID: "c", Overall: 82},
	}
	best := BestAvailable(pool)
	require.NotNil(t, best)
	assert.Equal(t, "c", best.ID)

	assert.Nil(t, BestAvailable([]*league.Prospect{{ID: "x", Drafted: true}}))
}
