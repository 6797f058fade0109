// Package trades values players and draft picks for trade negotiation and
// applies accepted trades atomically across rosters and the pick sheet.
package trades

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

var (
	// ErrSameTeam rejects proposals where both sides are the same club.
	ErrSameTeam = errors.New("cannot trade with own team")

	// ErrNotOnRoster is returned when a named player is not on the side
	// offering them.
	ErrNotOnRoster = errors.New("player not on offering team's roster")

	// ErrPickNotOwned is returned when a named pick belongs to neither side.
	ErrPickNotOwned = errors.New("draft pick not owned by offering team")

	// ErrNoTradeClause rejects proposals that include a player whose
	// contract forbids trades.
	ErrNoTradeClause = errors.New("player has a no-trade clause")
)

// positionValues weights trade value by positional scarcity.
var positionValues = map[league.Position]float64{
	league.QB: 2.5,
	league.LT: 1.5,
	league.DE: 1.4,
	league.CB: 1.4,
	league.WR: 1.3,
	league.RT: 1.3,
	league.DT: 1.2,
	league.LB: 1.1,
	league.S:  1.0,
	league.TE: 1.0,
	league.RB: 0.9,
	league.C:  0.9,
	league.LG: 0.85,
	league.RG: 0.85,
	league.FB: 0.7,
	league.K:  0.5,
	league.P:  0.5,
}

// pickRoundValues is the base chart value for a pick in each round.
var pickRoundValues = map[int]float64{
	1: 10_000,
	2: 5_000,
	3: 3_000,
	4: 2_000,
	5: 1_500,
	6: 1_000,
	7: 500,
}

// Proposal is one side offering assets for the other side's assets.
type Proposal struct {
	ID               string   `json:"id"`
	FromTeamID       string   `json:"from_team_id"`
	ToTeamID         string   `json:"to_team_id"`
	OfferedPlayers   []string `json:"offered_players"`
	OfferedPicks     []string `json:"offered_picks"`
	RequestedPlayers []string `json:"requested_players"`
	RequestedPicks   []string `json:"requested_picks"`
	Week             int      `json:"week"`
	Season           int      `json:"season"`
}

// NewProposal builds a proposal with a fresh id.
func NewProposal(from, to string, offeredPlayers, offeredPicks, requestedPlayers, requestedPicks []string) *Proposal {
	return &Proposal{
		ID:               uuid.NewString(),
		FromTeamID:       from,
		ToTeamID:         to,
		OfferedPlayers:   offeredPlayers,
		OfferedPicks:     offeredPicks,
		RequestedPlayers: requestedPlayers,
		RequestedPicks:   requestedPicks,
	}
}

// PlayerValue scores one player for trade purposes: rating base, youth
// premium, age discount with a floor, expensive-contract haircut, and the
// positional weight.
func PlayerValue(p *league.Player) int {
	value := float64(p.Overall) * 100

	if p.Age < 26 {
		value *= 1.3
	} else if p.Age > 30 {
		value *= math.Max(0.5, 1-float64(p.Age-30)*0.1)
	}

	if p.Contract != nil && p.Contract.Salary > 10_000_000 {
		value *= 0.9
	}

	mult, ok := positionValues[p.Position]
	if !ok {
		mult = 1.0
	}
	return int(math.Round(value * mult))
}

// PickValue scores one draft pick. Later picks within a round shed 2% of the
// round's base value each, never dropping under 100.
func PickValue(pick *league.DraftPick) int {
	base, ok := pickRoundValues[pick.Round]
	if !ok {
		base = 500
	}
	value := base - float64(pick.Pick-1)*base*0.02
	return int(math.Max(100, value))
}

// SideValue totals one side of a proposal. Unknown ids contribute nothing; a
// proposal with dangling ids fails validation before evaluation matters.
func SideValue(playerIDs, pickIDs []string, rosters map[string]league.Roster, picks []*league.DraftPick) int {
	total := 0
	for _, id := range playerIDs {
		if p := findPlayer(id, rosters); p != nil {
			total += PlayerValue(p)
		}
	}
	for _, id := range pickIDs {
		if pk := findPick(id, picks); pk != nil {
			total += PickValue(pk)
		}
	}
	return total
}

// Evaluate decides whether the receiving team's AI accepts. Below 90% of the
// requested value it always declines; above it the acceptance chance grows
// from 60% with the surplus.
func Evaluate(r *rng.Rand, proposal *Proposal, rosters map[string]league.Roster, picks []*league.DraftPick) bool {
	offered := SideValue(proposal.OfferedPlayers, proposal.OfferedPicks, rosters, picks)
	requested := SideValue(proposal.RequestedPlayers, proposal.RequestedPicks, rosters, picks)
	if requested == 0 {
		requested = 1
	}

	ratio := float64(offered) / float64(requested)
	if ratio < 0.9 {
		return false
	}
	return r.Float64() < 0.6+(ratio-0.9)*2
}

// Validate checks every id in the proposal against the current rosters and
// pick sheet without mutating anything. Execution only proceeds on a clean
// validation, so a trade either fully applies or not at all.
func Validate(proposal *Proposal, rosters map[string]league.Roster, picks []*league.DraftPick) error {
	if proposal.FromTeamID == proposal.ToTeamID {
		return ErrSameTeam
	}
	if err := validateSide(proposal.OfferedPlayers, proposal.OfferedPicks, proposal.FromTeamID, rosters, picks); err != nil {
		return err
	}
	return validateSide(proposal.RequestedPlayers, proposal.RequestedPicks, proposal.ToTeamID, rosters, picks)
}

func validateSide(playerIDs, pickIDs []string, teamID string, rosters map[string]league.Roster, picks []*league.DraftPick) error {
	roster := rosters[teamID]
	for _, id := range playerIDs {
		p := roster.Find(id)
		if p == nil {
			return fmt.Errorf("%w: %s (team %s)", ErrNotOnRoster, id, teamID)
		}
		if p.Contract != nil && p.Contract.Clauses != nil && p.Contract.Clauses.NoTrade {
			return fmt.Errorf("%w: %s", ErrNoTradeClause, p.FullName())
		}
	}
	for _, id := range pickIDs {
		pk := findPick(id, picks)
		if pk == nil || pk.TeamID != teamID {
			return fmt.Errorf("%w: %s (team %s)", ErrPickNotOwned, id, teamID)
		}
	}
	return nil
}

// Execute applies an accepted proposal, moving players between rosters and
// reassigning picks. Inputs are mutated in place; callers pass cloned state
// and swap it in only on success.
func Execute(proposal *Proposal, rosters map[string]league.Roster, picks []*league.DraftPick) error {
	if err := Validate(proposal, rosters, picks); err != nil {
		return err
	}

	movePlayers(proposal.OfferedPlayers, proposal.FromTeamID, proposal.ToTeamID, rosters)
	movePlayers(proposal.RequestedPlayers, proposal.ToTeamID, proposal.FromTeamID, rosters)
	movePicks(proposal.OfferedPicks, proposal.ToTeamID, picks)
	movePicks(proposal.RequestedPicks, proposal.FromTeamID, picks)
	return nil
}

func movePlayers(playerIDs []string, from, to string, rosters map[string]league.Roster) {
	for _, id := range playerIDs {
		remaining, player := rosters[from].Remove(id)
		if player == nil {
			continue
		}
		rosters[from] = remaining
		player.TeamID = to
		rosters[to] = append(rosters[to], player)
	}
}

func movePicks(pickIDs []string, to string, picks []*league.DraftPick) {
	for _, id := range pickIDs {
		if pk := findPick(id, picks); pk != nil {
			pk.TeamID = to
			pk.Traded = true
		}
	}
}

func findPlayer(id string, rosters map[string]league.Roster) *league.Player {
	for _, roster := range rosters {
		if p := roster.Find(id); p != nil {
			return p
		}
	}
	return nil
}

func findPick(id string, picks []*league.DraftPick) *league.DraftPick {
	for _, pk := range picks {
		if pk.ID == id {
			return pk
		}
	}
	return nil
}
