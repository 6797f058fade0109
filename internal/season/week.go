package season

import (
	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/gridiron-gm/internal/gamesim"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// InjuryEvent records one player going down during a week.
type InjuryEvent struct {
	PlayerID   string         `json:"player_id"`
	PlayerName string         `json:"player_name"`
	TeamID     string         `json:"team_id"`
	Injury     *league.Injury `json:"injury"`
}

// WeekSummary is what one simulated week produced.
type WeekSummary struct {
	Week     int               `json:"week"`
	Results  []*gamesim.Result `json:"results"`
	Injuries []InjuryEvent     `json:"injuries"`
}

// SimulateWeek plays every listed game, folds player stats into the rosters,
// rolls injury checks for everyone who took the field, ticks healing, and
// updates standings. Games, rosters, and standings are mutated in place;
// callers pass cloned state.
//
// A fault inside a single game is recovered: that game is recorded as a 0-0
// errored result and the rest of the week continues.
func SimulateWeek(r *rng.Rand, games []*league.Game, rosters map[string]league.Roster, staffs map[string]league.Staff, standings map[string]league.Standings, seasonYear, week int) *WeekSummary {
	summary := &WeekSummary{Week: week}

	for _, game := range games {
		result := simulateOne(r, game, rosters, staffs)
		summary.Results = append(summary.Results, result)

		*game = result.Game

		mergeStats(result, rosters)
		summary.Injuries = append(summary.Injuries, rollInjuries(r, result, rosters, seasonYear, week)...)
		applyStandings(standings, game)
	}

	for _, roster := range rosters {
		HealRoster(roster)
	}
	return summary
}

// simulateOne runs a single game, converting a panic into the neutral
// errored result so one bad game never sinks the week.
func simulateOne(r *rng.Rand, game *league.Game, rosters map[string]league.Roster, staffs map[string]league.Staff) (result *gamesim.Result) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"game":  game.ID,
				"panic": rec,
			}).Error("game simulation fault, recording 0-0 errored result")

			errored := *game
			errored.Played = true
			errored.Errored = true
			errored.HomeScore = 0
			errored.AwayScore = 0
			result = &gamesim.Result{Game: errored}
		}
	}()

	sim := gamesim.New(r)
	return sim.SimulateGame(*game, rosters[game.HomeTeam], rosters[game.AwayTeam], staffs[game.HomeTeam], staffs[game.AwayTeam])
}

func mergeStats(result *gamesim.Result, rosters map[string]league.Roster) {
	for _, teamID := range []string{result.Game.HomeTeam, result.Game.AwayTeam} {
		for _, p := range rosters[teamID] {
			if delta, ok := result.PlayerStats[p.ID]; ok {
				p.Stats.Add(delta)
			}
		}
	}
}

// rollInjuries checks every player who appeared in the game. Newly injured
// players get an entry drawn from the injury table stamped with when it
// happened.
func rollInjuries(r *rng.Rand, result *gamesim.Result, rosters map[string]league.Roster, seasonYear, week int) []InjuryEvent {
	var events []InjuryEvent
	for _, teamID := range []string{result.Game.HomeTeam, result.Game.AwayTeam} {
		for _, p := range rosters[teamID] {
			delta, played := result.PlayerStats[p.ID]
			if !played || delta.GamesPlayed == 0 || !p.IsHealthy() {
				continue
			}
			if !CheckInjury(r, p) {
				continue
			}
			p.Injury = NewInjury(r, week, seasonYear)
			events = append(events, InjuryEvent{
				PlayerID:   p.ID,
				PlayerName: p.FullName(),
				TeamID:     teamID,
				Injury:     p.Injury,
			})
		}
	}
	return events
}

func applyStandings(standings map[string]league.Standings, g *league.Game) {
	home := standings[g.HomeTeam]
	away := standings[g.AwayTeam]

	switch {
	case g.HomeScore > g.AwayScore:
		home.Wins++
		away.Losses++
	case g.AwayScore > g.HomeScore:
		away.Wins++
		home.Losses++
	default:
		home.Ties++
		away.Ties++
	}

	home.PointsFor += g.HomeScore
	home.PointsAgainst += g.AwayScore
	away.PointsFor += g.AwayScore
	away.PointsAgainst += g.HomeScore

	standings[g.HomeTeam] = home
	standings[g.AwayTeam] = away
}

// AutoResolve plays out any still-unplayed games in the given list. Used
// before the playoff transition so no regular-season game is left dangling.
func AutoResolve(r *rng.Rand, games []*league.Game, rosters map[string]league.Roster, staffs map[string]league.Staff, standings map[string]league.Standings, seasonYear, week int) *WeekSummary {
	var unplayed []*league.Game
	for _, g := range games {
		if !g.Played {
			unplayed = append(unplayed, g)
		}
	}
	if len(unplayed) == 0 {
		return &WeekSummary{Week: week}
	}
	return SimulateWeek(r, unplayed, rosters, staffs, standings, seasonYear, week)
}
