// Package season sequences the league through its weekly and yearly cycle:
// schedule generation, weekly simulation with injuries and standings, the
// playoff bracket, and end-of-season history.
package season

import (
	"fmt"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// GenerateSchedule pairs all 32 teams randomly each week for the full
// regular season, 16 games a week. Every team plays every week.
func GenerateSchedule(r *rng.Rand, seasonYear int) []*league.Game {
	var schedule []*league.Game

	for week := 1; week <= league.RegularSeasonWeeks; week++ {
		pool := make([]string, len(league.Teams))
		for i, t := range league.Teams {
			pool[i] = t.ID
		}

		for len(pool) >= 2 {
			home := r.Intn(len(pool))
			homeTeam := pool[home]
			pool = append(pool[:home], pool[home+1:]...)

			away := r.Intn(len(pool))
			awayTeam := pool[away]
			pool = append(pool[:away], pool[away+1:]...)

			schedule = append(schedule, &league.Game{
				ID:       fmt.Sprintf("%d-W%d-%s-%s", seasonYear, week, homeTeam, awayTeam),
				Season:   seasonYear,
				Week:     week,
				HomeTeam: homeTeam,
				AwayTeam: awayTeam,
			})
		}
	}
	return schedule
}

// WeekGames returns the unplayed games scheduled for the given week.
func WeekGames(schedule []*league.Game, seasonYear, week int) []*league.Game {
	var games []*league.Game
	for _, g := range schedule {
		if g.Season == seasonYear && g.Week == week && !g.Played {
			games = append(games, g)
		}
	}
	return games
}
