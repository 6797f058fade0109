// Package progression applies end-of-season development, training effects,
// and retirement decisions to players and coaches.
package progression

import (
	"math"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// Development stage rates by age band. Positive rates grow, negative decay.
const (
	youngMaxAge   = 24
	primeMaxAge   = 29
	veteranMaxAge = 33

	youngRate   = 1.5
	primeRate   = 0.3
	veteranRate = -0.8
	oldRate     = -2.0
)

// stageRate returns the base yearly rating change for a player's age.
func stageRate(age int) float64 {
	switch {
	case age <= youngMaxAge:
		return youngRate
	case age <= primeMaxAge:
		return primeRate
	case age <= veteranMaxAge:
		return veteranRate
	default:
		return oldRate
	}
}

// ProgressPlayer ages the player one year and moves the overall by the stage
// rate. Growth accelerates 1.5x while below potential (never overshooting
// the gap) and halves once potential is reached. Attributes rescale with the
// overall so the profile keeps its shape. Mutates in place.
func ProgressPlayer(r *rng.Rand, p *league.Player) {
	change := stageRate(p.Age)

	if change > 0 {
		if p.Overall < p.Potential {
			gap := float64(p.Potential - p.Overall)
			change = math.Min(change*1.5, gap)
		} else {
			change *= 0.5
		}
	}

	change += r.Float64()*2 - 1

	oldOverall := p.Overall
	newOverall := int(math.Round(float64(p.Overall) + change))
	newOverall = max(40, min(99, newOverall))

	factor := float64(newOverall) / float64(oldOverall)
	for key, value := range p.Attributes {
		v := int(math.Round(float64(value)*factor + (r.Float64()*2 - 1)))
		p.Attributes[key] = max(30, min(99, v))
	}

	p.Overall = newOverall
	p.Age++
	p.Experience++
}

// ShouldRetire decides whether a player hangs it up after the season. Nobody
// retires before 32; past 35 the odds climb 15% a year, with another 10% for
// players rated under 60.
func ShouldRetire(r *rng.Rand, p *league.Player) bool {
	if p.Age < 32 {
		return false
	}
	chance := math.Max(0, float64(p.Age-35)*0.15)
	if p.Overall < 60 {
		chance += 0.1
	}
	return r.Float64() < chance
}

// ProgressCoach ages a coach one year, decrements the contract, and gives a
// 30% shot at a one-point bump to a random attribute. Mutates in place.
func ProgressCoach(r *rng.Rand, c *league.Coach) {
	c.Experience++
	c.Age++

	if r.Float64() < 0.3 {
		switch r.Intn(4) {
		case 0:
			c.Attributes.Offense = min(99, c.Attributes.Offense+1)
		case 1:
			c.Attributes.Defense = min(99, c.Attributes.Defense+1)
		case 2:
			c.Attributes.Motivation = min(99, c.Attributes.Motivation+1)
		default:
			c.Attributes.PlayerDevelopment = min(99, c.Attributes.PlayerDevelopment+1)
		}
	}

	if c.Contract.YearsLeft > 0 {
		c.Contract.YearsLeft--
	}
}
