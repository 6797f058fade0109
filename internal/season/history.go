package season

import (
	"sort"

	"github.com/jstittsworth/gridiron-gm/internal/league"
)

// Award is a season honor pinned to a player.
type Award struct {
	Type       string `json:"type"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
}

// Record is one team's season, frozen at year end.
type Record struct {
	Season        int              `json:"season"`
	TeamID        string           `json:"team_id"`
	Standings     league.Standings `json:"standings"`
	PlayoffResult string           `json:"playoff_result"`
	PlayoffSeed   int              `json:"playoff_seed,omitempty"`
	Awards        []Award          `json:"awards,omitempty"`
}

// Snapshot freezes every team's season into history records. The bracket
// may be nil when a season somehow ends without playoffs.
func Snapshot(seasonYear int, standings map[string]league.Standings, bracket *Bracket, awards []Award) []Record {
	records := make([]Record, 0, len(league.Teams))
	for _, team := range league.Teams {
		rec := Record{
			Season:        seasonYear,
			TeamID:        team.ID,
			Standings:     standings[team.ID],
			PlayoffResult: "Did not qualify",
		}
		if bracket != nil {
			rec.PlayoffResult = bracket.Result(team.ID)
			rec.PlayoffSeed = bracket.SeedOf(team.ID)
		}
		for _, a := range awards {
			if a.TeamID == team.ID {
				rec.Awards = append(rec.Awards, a)
			}
		}
		records = append(records, rec)
	}
	return records
}

// MVP picks the most valuable player: the quarterback on a 10-win team with
// the best passing line (yards plus 100 per touchdown). Nil when no team
// won 10 games.
func MVP(rosters map[string]league.Roster, standings map[string]league.Standings) *Award {
	var best *league.Player
	var bestTeam string
	var bestScore int

	for teamID, roster := range rosters {
		if standings[teamID].Wins < 10 {
			continue
		}
		for _, p := range roster {
			if p.Position != league.QB {
				continue
			}
			score := p.Stats.PassingYards + p.Stats.PassingTDs*100
			if best == nil || score > bestScore {
				best, bestTeam, bestScore = p, teamID, score
			}
		}
	}

	if best == nil {
		return nil
	}
	return &Award{Type: "MVP", PlayerID: best.ID, PlayerName: best.FullName(), TeamID: bestTeam}
}

// LeaderEntry is one line of a statistical leaderboard.
type LeaderEntry struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	TeamID     string `json:"team_id"`
	Position   string `json:"position"`
	Value      int    `json:"value"`
}

// statExtractors maps leaderboard category names to stat fields.
var statExtractors = map[string]func(league.SeasonStats) int{
	"passing_yards":   func(s league.SeasonStats) int { return s.PassingYards },
	"passing_tds":     func(s league.SeasonStats) int { return s.PassingTDs },
	"rushing_yards":   func(s league.SeasonStats) int { return s.RushingYards },
	"rushing_tds":     func(s league.SeasonStats) int { return s.RushingTDs },
	"receiving_yards": func(s league.SeasonStats) int { return s.ReceivingYards },
	"receiving_tds":   func(s league.SeasonStats) int { return s.ReceivingTDs },
	"receptions":      func(s league.SeasonStats) int { return s.Receptions },
	"tackles":         func(s league.SeasonStats) int { return s.Tackles },
	"sacks":           func(s league.SeasonStats) int { return s.Sacks },
	"interceptions":   func(s league.SeasonStats) int { return s.Picked },
}

// ValidCategory reports whether Leaders knows the stat category.
func ValidCategory(category string) bool {
	_, ok := statExtractors[category]
	return ok
}

// Leaders returns the top players league-wide in a stat category. Unknown
// categories return nil.
func Leaders(rosters map[string]league.Roster, category string, limit int) []LeaderEntry {
	extract, ok := statExtractors[category]
	if !ok {
		return nil
	}

	var entries []LeaderEntry
	for teamID, roster := range rosters {
		for _, p := range roster {
			value := extract(p.Stats)
			if value == 0 {
				continue
			}
			entries = append(entries, LeaderEntry{
				PlayerID:   p.ID,
				PlayerName: p.FullName(),
				TeamID:     teamID,
				Position:   string(p.Position),
				Value:      value,
			})
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
