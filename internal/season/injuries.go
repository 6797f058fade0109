package season

import (
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

const baseInjuryChance = 0.03

// CheckInjury rolls whether a player got hurt in a game he played. A higher
// injury attribute means more durable: 50 is the neutral point where the
// base 3% applies unchanged.
func CheckInjury(r *rng.Rand, p *league.Player) bool {
	resistance := 70.0
	if v, ok := p.Attributes["injury"]; ok {
		resistance = float64(v)
	}
	chance := baseInjuryChance * (1 - (resistance/100 - 0.5))
	return r.Chance(chance)
}

// NewInjury draws an injury from the table with a recovery time inside the
// type's window.
func NewInjury(r *rng.Rand, week, seasonYear int) *league.Injury {
	key := rng.Pick(r, league.InjuryKeys)
	info := league.InjuryTypes[key]
	weeksOut := r.Range(info.MinWeeks, info.MaxWeeks)

	return &league.Injury{
		Type:           key,
		Name:           info.Name,
		Severity:       info.Severity,
		WeeksOut:       weeksOut,
		WeeksRemaining: weeksOut,
		OccurredWeek:   week,
		OccurredSeason: seasonYear,
	}
}

// HealRoster ticks every outstanding injury timer down one week, clearing
// injuries that reach zero. Mutates the roster's players.
func HealRoster(roster league.Roster) {
	for _, p := range roster {
		if p.Injury == nil {
			continue
		}
		p.Injury.WeeksRemaining--
		if p.Injury.WeeksRemaining <= 0 {
			p.Injury = nil
		}
	}
}

// InjuryReport lists a roster's currently injured players.
func InjuryReport(roster league.Roster) []*league.Player {
	var out []*league.Player
	for _, p := range roster {
		if !p.IsHealthy() {
			out = append(out, p)
		}
	}
	return out
}
