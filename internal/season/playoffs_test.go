package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

// rankedStandings gives every club a distinct record, ordered by position
// within its conference list so seeding is fully predictable.
func rankedStandings() map[string]league.Standings {
	standings := map[string]league.Standings{}
	for _, conf := range []string{"AFC", "NFC"} {
		for i, id := range league.ConferenceTeams(conf) {
			wins := 16 - i
			standings[id] = league.Standings{
				Wins: wins, Losses: 17 - wins,
				PointsFor: 400, PointsAgainst: 300,
			}
		}
	}
	return standings
}

func TestSeedConference(t *testing.T) {
	standings := rankedStandings()
	seeds := SeedConference("AFC", standings)

	require.Len(t, seeds, 7)
	afc := league.ConferenceTeams("AFC")
	for i, s := range seeds {
		assert.Equal(t, i+1, s.Seed)
		assert.Equal(t, afc[i], s.TeamID)
		assert.Equal(t, i < 4, s.DivisionWinner)
	}
	assert.Equal(t, 16, seeds[0].Wins)
}

func TestNewBracketWildCardPairings(t *testing.T) {
	b := NewBracket(rankedStandings(), 2026)

	require.Len(t, b.WildCard, 6)
	require.Len(t, b.Seeds["AFC"], 7)
	require.Len(t, b.Seeds["NFC"], 7)

	afc := b.Seeds["AFC"]
	// 2v7, 3v6, 4v5 with the better seed at home; the one seed rests
	assert.Equal(t, afc[1].TeamID, b.WildCard[0].HomeTeam)
	assert.Equal(t, afc[6].TeamID, b.WildCard[0].AwayTeam)
	assert.Equal(t, afc[2].TeamID, b.WildCard[1].HomeTeam)
	assert.Equal(t, afc[5].TeamID, b.WildCard[1].AwayTeam)
	assert.Equal(t, afc[3].TeamID, b.WildCard[2].HomeTeam)
	assert.Equal(t, afc[4].TeamID, b.WildCard[2].AwayTeam)

	for _, g := range b.WildCard {
		assert.Equal(t, RoundWildCard, g.Round)
		assert.Equal(t, 1, g.Week)
	}
	assert.Equal(t, RoundWildCard, b.CurrentRound())
}

// playHomeWins marks every given game as a home-team win.
func playHomeWins(games []*league.Game) {
	for _, g := range games {
		g.Played = true
		g.HomeScore = 21
		g.AwayScore = 10
	}
}

func TestBracketFullRun(t *testing.T) {
	b := NewBracket(rankedStandings(), 2026)

	wc := b.NextGames(2026)
	require.Len(t, wc, 6)
	playHomeWins(wc)
	b.SettleRound()

	// Home teams were the 2, 3, 4 seeds: divisional is 1v4 and 2v3
	div := b.NextGames(2026)
	require.Len(t, div, 4)
	assert.Equal(t, RoundDivisional, b.CurrentRound())
	afc := b.Seeds["AFC"]
	assert.Equal(t, afc[0].TeamID, div[0].HomeTeam)
	assert.Equal(t, afc[3].TeamID, div[0].AwayTeam)
	assert.Equal(t, afc[1].TeamID, div[1].HomeTeam)
	assert.Equal(t, afc[2].TeamID, div[1].AwayTeam)
	playHomeWins(div)
	b.SettleRound()

	conf := b.NextGames(2026)
	require.Len(t, conf, 2)
	assert.Equal(t, afc[0].TeamID, conf[0].HomeTeam)
	assert.Equal(t, afc[1].TeamID, conf[0].AwayTeam)
	playHomeWins(conf)
	b.SettleRound()

	sb := b.NextGames(2026)
	require.Len(t, sb, 1)
	// The NFC champion hosts
	nfc := b.Seeds["NFC"]
	assert.Equal(t, nfc[0].TeamID, sb[0].HomeTeam)
	assert.Equal(t, afc[0].TeamID, sb[0].AwayTeam)
	playHomeWins(sb)
	b.SettleRound()

	assert.Equal(t, nfc[0].TeamID, b.Champion)
	assert.Empty(t, b.CurrentRound())
	assert.Nil(t, b.NextGames(2026))
}

func TestGameWinnerTieGoesHome(t *testing.T) {
	g := &league.Game{HomeTeam: "H", AwayTeam: "A", Played: true, HomeScore: 14, AwayScore: 14}
	assert.Equal(t, "H", gameWinner(g))
}

func TestBracketResult(t *testing.T) {
	b := NewBracket(rankedStandings(), 2026)
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	playHomeWins(b.NextGames(2026))
	b.SettleRound()

	afc := b.Seeds["AFC"]
	nfc := b.Seeds["NFC"]
	assert.Equal(t, "Super Bowl Champion", b.Result(nfc[0].TeamID))
	assert.Equal(t, "Lost Super Bowl", b.Result(afc[0].TeamID))
	assert.Equal(t, "Lost Conference Championship", b.Result(afc[1].TeamID))
	assert.Equal(t, "Lost Wild Card Round", b.Result(afc[6].TeamID))
	assert.Equal(t, "Did not qualify", b.Result(league.ConferenceTeams("AFC")[10]))

	assert.Equal(t, 1, b.SeedOf(afc[0].TeamID))
	assert.Equal(t, 0, b.SeedOf(league.ConferenceTeams("AFC")[10]))
}
