package season

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func TestGenerateScheduleShape(t *testing.T) {
	schedule := GenerateSchedule(rng.New(1), 2026)

	require.Len(t, schedule, league.RegularSeasonWeeks*16)

	// Every team plays exactly once per week
	for week := 1; week <= league.RegularSeasonWeeks; week++ {
		seen := map[string]bool{}
		for _, g := range WeekGames(schedule, 2026, week) {
			assert.False(t, seen[g.HomeTeam], g.HomeTeam)
			assert.False(t, seen[g.AwayTeam], g.AwayTeam)
			assert.NotEqual(t, g.HomeTeam, g.AwayTeam)
			seen[g.HomeTeam] = true
			seen[g.AwayTeam] = true
			assert.Equal(t, 2026, g.Season)
			assert.False(t, g.Played)
		}
		assert.Len(t, seen, len(league.Teams))
	}
}

func TestGenerateScheduleDeterministic(t *testing.T) {
	a := GenerateSchedule(rng.New(5), 2026)
	b := GenerateSchedule(rng.New(5), 2026)
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
	}
}

func TestWeekGamesSkipsPlayed(t *testing.T) {
	schedule := GenerateSchedule(rng.New(2), 2026)
	week1 := WeekGames(schedule, 2026, 1)
	require.NotEmpty(t, week1)

	week1[0].Played = true
	assert.Len(t, WeekGames(schedule, 2026, 1), len(week1)-1)
}
