// Package draft builds the annual draft order from final standings and
// converts selected prospects into rookie-contract players.
package draft

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

const (
	// Rounds is the number of draft rounds held each year.
	Rounds = 7

	rookieBaseSalary = int64(500_000)
	rookiePickBonus  = int64(100_000)
)

var (
	// ErrProspectDrafted is returned when a prospect has already been
	// selected by another team.
	ErrProspectDrafted = errors.New("prospect already drafted")

	// ErrPickUsed is returned when a draft pick has already been spent.
	ErrPickUsed = errors.New("draft pick already used")
)

// Order produces the full seven-round pick sheet, worst record first.
// Ties on win percentage break on point differential, then team ID so the
// order is stable for identical records.
func Order(standings map[string]league.Standings) []*league.DraftPick {
	teamIDs := make([]string, 0, len(standings))
	for id := range standings {
		teamIDs = append(teamIDs, id)
	}

	sort.Slice(teamIDs, func(i, j int) bool {
		a, b := standings[teamIDs[i]], standings[teamIDs[j]]
		if a.WinPct() != b.WinPct() {
			return a.WinPct() < b.WinPct()
		}
		if a.PointDiff() != b.PointDiff() {
			return a.PointDiff() < b.PointDiff()
		}
		return teamIDs[i] < teamIDs[j]
	})

	picks := make([]*league.DraftPick, 0, Rounds*len(teamIDs))
	for round := 1; round <= Rounds; round++ {
		for i, teamID := range teamIDs {
			overall := (round-1)*len(teamIDs) + i + 1
			picks = append(picks, &league.DraftPick{
				ID:             fmt.Sprintf("pick-%d", overall),
				Round:          round,
				Pick:           i + 1,
				OverallPick:    overall,
				TeamID:         teamID,
				OriginalTeamID: teamID,
			})
		}
	}
	return picks
}

// RookieSalary scales with draft position: the first overall pick earns the
// largest fixed rookie deal and everything past pick 32 earns the base.
func RookieSalary(overallPick int) int64 {
	bonus := int64(32-overallPick) * rookiePickBonus
	if bonus < 0 {
		bonus = 0
	}
	return rookieBaseSalary + bonus
}

// Select spends a draft pick on a prospect and returns the resulting rookie
// player, signed to a fixed four-year deal. The pick and prospect are
// mutated in place; callers working on cloned state pass the clones.
func Select(pick *league.DraftPick, prospect *league.Prospect, teamID string) (*league.Player, error) {
	if prospect.Drafted {
		return nil, ErrProspectDrafted
	}
	if pick.ProspectID != "" {
		return nil, ErrPickUsed
	}

	salary := RookieSalary(pick.OverallPick)
	player := &league.Player{
		ID:         prospect.ID,
		FirstName:  prospect.FirstName,
		LastName:   prospect.LastName,
		Position:   prospect.Position,
		TeamID:     teamID,
		Age:        prospect.Age,
		Experience: 0,
		Overall:    prospect.Overall,
		Potential:  prospect.Potential,
		Attributes: cloneAttributes(prospect.Attributes),
		College:    prospect.College,
		DraftPick:  pick.OverallPick,
		DraftedBy:  teamID,
		Contract: &league.Contract{
			Years:           4,
			YearsLeft:       4,
			Salary:          salary,
			GuaranteedMoney: salary * 4,
			Type:            league.ContractRookie,
		},
	}

	prospect.Drafted = true
	prospect.DraftedBy = teamID
	pick.ProspectID = prospect.ID
	return player, nil
}

// BestAvailable returns the undrafted prospect with the highest overall,
// or nil when the pool is exhausted. Used by AI teams on the clock.
func BestAvailable(pool []*league.Prospect) *league.Prospect {
	var best *league.Prospect
	for _, p := range pool {
		if p.Drafted {
			continue
		}
		if best == nil || p.Overall > best.Overall {
			best = p
		}
	}
	return best
}

func cloneAttributes(attrs map[string]int) map[string]int {
	if attrs == nil {
		return nil
	}
	out := make(map[string]int, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
