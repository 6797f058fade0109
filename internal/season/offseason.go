package season

import (
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/gridiron-gm/internal/contracts"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/progression"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// ProgressRosters runs end-of-season development on every rostered player:
// career totals are folded in, season stats reset, the player ages through
// the progression model, and retirees come off the roster. Returns the
// retired players. Mutates rosters in place.
func ProgressRosters(r *rng.Rand, rosters map[string]league.Roster) []*league.Player {
	var retired []*league.Player

	for teamID, roster := range rosters {
		kept := make(league.Roster, 0, len(roster))
		for _, p := range roster {
			p.CareerStats.AddSeason(p.Stats)
			p.Stats = league.SeasonStats{}
			progression.ProgressPlayer(r, p)

			if progression.ShouldRetire(r, p) {
				retired = append(retired, p)
				continue
			}
			kept = append(kept, p)
		}
		rosters[teamID] = kept
	}

	if len(retired) > 0 {
		logrus.WithField("count", len(retired)).Info("players retired")
	}
	return retired
}

// ProgressStaffs advances every coach one year.
func ProgressStaffs(r *rng.Rand, staffs map[string]league.Staff) {
	for _, staff := range staffs {
		for _, coach := range staff {
			progression.ProgressCoach(r, coach)
		}
	}
}

// ExpireContracts ticks every player contract down one year and moves
// players whose deals ran out into the free-agent pool. Mutates rosters and
// returns the new free agents.
func ExpireContracts(rosters map[string]league.Roster) []*league.Player {
	var freeAgents []*league.Player

	for teamID, roster := range rosters {
		kept := make(league.Roster, 0, len(roster))
		for _, p := range roster {
			if p.Contract != nil && p.Contract.YearsLeft > 0 {
				p.Contract.YearsLeft--
			}
			if p.Contract == nil || p.Contract.YearsLeft > 0 {
				kept = append(kept, p)
				continue
			}
			p.TeamID = ""
			freeAgents = append(freeAgents, p)
		}
		rosters[teamID] = kept
	}
	return freeAgents
}

// RunAIFreeAgency has every AI club work the open market: each team bids on
// agents it needs, best available first, until it passes on everyone or
// runs out of cap room. The user's club is skipped so the player makes
// their own signings. Returns the players still unsigned.
func RunAIFreeAgency(r *rng.Rand, freeAgents []*league.Player, rosters map[string]league.Roster, userTeamID string) []*league.Player {
	remaining := freeAgents

	for _, team := range league.Teams {
		if team.ID == userTeamID {
			continue
		}
		roster := rosters[team.ID]

		var unsigned []*league.Player
		for _, fa := range remaining {
			capSpace := contracts.CapSpace(roster)
			offer := contracts.GenerateFreeAgentOffer(fa, team.ID, capSpace, r)
			if offer == nil || !contracts.ShouldAISign(fa, offer, roster, capSpace, r) {
				unsigned = append(unsigned, fa)
				continue
			}

			fa.TeamID = team.ID
			fa.Contract = &league.Contract{
				Years:           offer.Years,
				YearsLeft:       offer.Years,
				Salary:          offer.AnnualValue,
				GuaranteedMoney: offer.Guaranteed,
				Type:            league.ContractFreeAgent,
			}
			roster = append(roster, fa)
		}
		rosters[team.ID] = roster
		remaining = unsigned
	}
	return remaining
}

// ResetStandings zeroes every club's record for a fresh season.
func ResetStandings() map[string]league.Standings {
	standings := make(map[string]league.Standings, len(league.Teams))
	for _, t := range league.Teams {
		standings[t.ID] = league.Standings{}
	}
	return standings
}
