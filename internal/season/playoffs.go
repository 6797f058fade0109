package season

import (
	"fmt"
	"sort"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

// Playoff round names, in order.
const (
	RoundWildCard   = "Wild Card"
	RoundDivisional = "Divisional"
	RoundConference = "Conference"
	RoundSuperBowl  = "Super Bowl"
)

// Seed is one playoff qualifier within a conference.
type Seed struct {
	Seed           int    `json:"seed"`
	TeamID         string `json:"team_id"`
	Wins           int    `json:"wins"`
	Losses         int    `json:"losses"`
	Ties           int    `json:"ties"`
	DivisionWinner bool   `json:"division_winner"`
}

// Bracket tracks the postseason from the wild-card round through the Super
// Bowl. Rounds are built lazily as the previous round completes.
type Bracket struct {
	Seeds      map[string][]Seed `json:"seeds"`
	WildCard   []*league.Game    `json:"wild_card"`
	Divisional []*league.Game    `json:"divisional"`
	Conference []*league.Game    `json:"conference"`
	SuperBowl  *league.Game      `json:"super_bowl,omitempty"`
	Champion   string            `json:"champion,omitempty"`
}

// SeedConference ranks a conference's teams by win percentage with a
// point-differential tiebreak and returns the top seven, the top four
// flagged as division winners.
func SeedConference(conference string, standings map[string]league.Standings) []Seed {
	teamIDs := league.ConferenceTeams(conference)

	sort.Slice(teamIDs, func(i, j int) bool {
		a, b := standings[teamIDs[i]], standings[teamIDs[j]]
		if a.WinPct() != b.WinPct() {
			return a.WinPct() > b.WinPct()
		}
		if a.PointDiff() != b.PointDiff() {
			return a.PointDiff() > b.PointDiff()
		}
		return teamIDs[i] < teamIDs[j]
	})

	seeds := make([]Seed, 0, 7)
	for i, id := range teamIDs[:7] {
		s := standings[id]
		seeds = append(seeds, Seed{
			Seed:           i + 1,
			TeamID:         id,
			Wins:           s.Wins,
			Losses:         s.Losses,
			Ties:           s.Ties,
			DivisionWinner: i < 4,
		})
	}
	return seeds
}

// NewBracket seeds both conferences and lays out the wild-card round:
// 2v7, 3v6, 4v5, with the one seed on a bye.
func NewBracket(standings map[string]league.Standings, seasonYear int) *Bracket {
	b := &Bracket{Seeds: map[string][]Seed{}}

	for _, conf := range []string{"AFC", "NFC"} {
		seeds := SeedConference(conf, standings)
		b.Seeds[conf] = seeds

		for i, pairing := range [][2]int{{2, 7}, {3, 6}, {4, 5}} {
			b.WildCard = append(b.WildCard, &league.Game{
				ID:         fmt.Sprintf("wc-%s-%d", conf, i+1),
				Season:     seasonYear,
				Week:       1,
				Round:      RoundWildCard,
				Conference: conf,
				HomeTeam:   seeds[pairing[0]-1].TeamID,
				AwayTeam:   seeds[pairing[1]-1].TeamID,
			})
		}
	}
	return b
}

// CurrentRound names the round whose games are up next, or "" once a
// champion is decided.
func (b *Bracket) CurrentRound() string {
	switch {
	case b.Champion != "":
		return ""
	case !allPlayed(b.WildCard):
		return RoundWildCard
	case len(b.Divisional) == 0 || !allPlayed(b.Divisional):
		return RoundDivisional
	case len(b.Conference) == 0 || !allPlayed(b.Conference):
		return RoundConference
	default:
		return RoundSuperBowl
	}
}

// NextGames returns the unplayed games of the current round, building the
// round's pairings from the previous round's winners when needed.
func (b *Bracket) NextGames(seasonYear int) []*league.Game {
	switch b.CurrentRound() {
	case RoundWildCard:
		return unplayed(b.WildCard)
	case RoundDivisional:
		if len(b.Divisional) == 0 {
			b.buildDivisional(seasonYear)
		}
		return unplayed(b.Divisional)
	case RoundConference:
		if len(b.Conference) == 0 {
			b.buildConference(seasonYear)
		}
		return unplayed(b.Conference)
	case RoundSuperBowl:
		if b.SuperBowl == nil {
			b.buildSuperBowl(seasonYear)
		}
		if b.SuperBowl.Played {
			b.Champion = gameWinner(b.SuperBowl)
			return nil
		}
		return []*league.Game{b.SuperBowl}
	default:
		return nil
	}
}

// SettleRound records the champion once the Super Bowl is in the books.
// Other rounds need no settlement; their winners are read when the next
// round is built.
func (b *Bracket) SettleRound() {
	if b.SuperBowl != nil && b.SuperBowl.Played && b.Champion == "" {
		b.Champion = gameWinner(b.SuperBowl)
	}
}

// buildDivisional pairs the one seed (off its bye) with the lowest
// surviving wild-card winner; the other two winners meet, better seed home.
func (b *Bracket) buildDivisional(seasonYear int) {
	for _, conf := range []string{"AFC", "NFC"} {
		winners := b.roundWinners(b.WildCard, conf)

		b.Divisional = append(b.Divisional,
			&league.Game{
				ID:         fmt.Sprintf("div-%s-1", conf),
				Season:     seasonYear,
				Week:       2,
				Round:      RoundDivisional,
				Conference: conf,
				HomeTeam:   b.Seeds[conf][0].TeamID,
				AwayTeam:   winners[len(winners)-1],
			},
			&league.Game{
				ID:         fmt.Sprintf("div-%s-2", conf),
				Season:     seasonYear,
				Week:       2,
				Round:      RoundDivisional,
				Conference: conf,
				HomeTeam:   winners[0],
				AwayTeam:   winners[1],
			},
		)
	}
}

func (b *Bracket) buildConference(seasonYear int) {
	for _, conf := range []string{"AFC", "NFC"} {
		winners := b.roundWinners(b.Divisional, conf)
		b.Conference = append(b.Conference, &league.Game{
			ID:         fmt.Sprintf("conf-%s", conf),
			Season:     seasonYear,
			Week:       3,
			Round:      RoundConference,
			Conference: conf,
			HomeTeam:   winners[0],
			AwayTeam:   winners[1],
		})
	}
}

func (b *Bracket) buildSuperBowl(seasonYear int) {
	var afcChamp, nfcChamp string
	for _, g := range b.Conference {
		if g.Conference == "AFC" {
			afcChamp = gameWinner(g)
		} else {
			nfcChamp = gameWinner(g)
		}
	}
	b.SuperBowl = &league.Game{
		ID:       "superbowl",
		Season:   seasonYear,
		Week:     4,
		Round:    RoundSuperBowl,
		HomeTeam: nfcChamp,
		AwayTeam: afcChamp,
	}
}

// roundWinners collects a conference's winners from a completed round,
// ordered best seed first.
func (b *Bracket) roundWinners(games []*league.Game, conference string) []string {
	var winners []string
	for _, g := range games {
		if g.Conference == conference {
			winners = append(winners, gameWinner(g))
		}
	}
	sort.Slice(winners, func(i, j int) bool {
		return b.seedOf(winners[i], conference) < b.seedOf(winners[j], conference)
	})
	return winners
}

func (b *Bracket) seedOf(teamID, conference string) int {
	for _, s := range b.Seeds[conference] {
		if s.TeamID == teamID {
			return s.Seed
		}
	}
	return 99
}

// gameWinner is Winner with a playoff tiebreak: the home team (the better
// seed) advances when sudden death ends scoreless.
func gameWinner(g *league.Game) string {
	if w := g.Winner(); w != "" {
		return w
	}
	return g.HomeTeam
}

// InPlayoffs reports whether a team qualified.
func (b *Bracket) InPlayoffs(teamID string) bool {
	for _, seeds := range b.Seeds {
		for _, s := range seeds {
			if s.TeamID == teamID {
				return true
			}
		}
	}
	return false
}

// Result describes how far a team got, for the season history snapshot.
func (b *Bracket) Result(teamID string) string {
	if !b.InPlayoffs(teamID) {
		return "Did not qualify"
	}
	switch {
	case b.Champion == teamID:
		return "Super Bowl Champion"
	case b.SuperBowl != nil && (b.SuperBowl.HomeTeam == teamID || b.SuperBowl.AwayTeam == teamID):
		return "Lost Super Bowl"
	case lostIn(b.Conference, teamID):
		return "Lost Conference Championship"
	case lostIn(b.Divisional, teamID):
		return "Lost Divisional Round"
	case lostIn(b.WildCard, teamID):
		return "Lost Wild Card Round"
	default:
		return "Made Playoffs"
	}
}

// SeedOf returns a team's seed, or 0 if it missed the playoffs.
func (b *Bracket) SeedOf(teamID string) int {
	for _, seeds := range b.Seeds {
		for _, s := range seeds {
			if s.TeamID == teamID {
				return s.Seed
			}
		}
	}
	return 0
}

func lostIn(games []*league.Game, teamID string) bool {
	for _, g := range games {
		if !g.Played {
			continue
		}
		if (g.HomeTeam == teamID || g.AwayTeam == teamID) && gameWinner(g) != teamID {
			return true
		}
	}
	return false
}

func allPlayed(games []*league.Game) bool {
	if len(games) == 0 {
		return false
	}
	for _, g := range games {
		if !g.Played {
			return false
		}
	}
	return true
}

func unplayed(games []*league.Game) []*league.Game {
	var out []*league.Game
	for _, g := range games {
		if !g.Played {
			out = append(out, g)
		}
	}
	return out
}
