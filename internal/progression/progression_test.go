package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func devPlayer(age, overall, potential int) *league.Player {
	return &league.Player{
		ID: "p", Age: age, Overall: overall, Potential: potential,
		Attributes: map[string]int{"speed": overall, "strength": overall, "awareness": overall},
	}
}

func TestProgressPlayerAges(t *testing.T) {
	p := devPlayer(23, 70, 85)
	ProgressPlayer(rng.New(1), p)

	assert.Equal(t, 24, p.Age)
	assert.Equal(t, 1, p.Experience)
}

func TestProgressPlayerYoungGrows(t *testing.T) {
	grew := 0
	for i := int64(0); i < 50; i++ {
		p := devPlayer(22, 65, 90)
		ProgressPlayer(rng.New(i), p)
		assert.GreaterOrEqual(t, p.Overall, 40)
		assert.LessOrEqual(t, p.Overall, 99)
		if p.Overall > 65 {
			grew++
		}
	}
	// Young players below potential grow nearly every year
	assert.Greater(t, grew, 40)
}

func TestProgressPlayerNeverOvershootsPotential(t *testing.T) {
	for i := int64(0); i < 50; i++ {
		p := devPlayer(22, 84, 85)
		ProgressPlayer(rng.New(i), p)
		// Growth caps at the gap; only the +/-1 noise can poke past
		assert.LessOrEqual(t, p.Overall, 86)
	}
}

func TestProgressPlayerOldDeclines(t *testing.T) {
	declined := 0
	for i := int64(0); i < 50; i++ {
		p := devPlayer(35, 80, 85)
		ProgressPlayer(rng.New(i), p)
		if p.Overall < 80 {
			declined++
		}
	}
	assert.Greater(t, declined, 40)
}

func TestProgressPlayerAttributesFollowOverall(t *testing.T) {
	p := devPlayer(22, 60, 90)
	ProgressPlayer(rng.New(3), p)

	for name, v := range p.Attributes {
		assert.GreaterOrEqual(t, v, 30, name)
		assert.LessOrEqual(t, v, 99, name)
		// Attributes track the overall within rescale noise
		assert.InDelta(t, p.Overall, v, 6, name)
	}
}

func TestShouldRetire(t *testing.T) {
	r := rng.New(4)

	// Never before 32
	for i := 0; i < 100; i++ {
		assert.False(t, ShouldRetire(r, devPlayer(31, 50, 50)))
	}

	// A 42-year-old is past certain odds
	assert.True(t, ShouldRetire(r, devPlayer(42, 70, 70)))

	// A solid 33-year-old has zero base chance
	for i := 0; i < 100; i++ {
		assert.False(t, ShouldRetire(r, devPlayer(33, 75, 75)))
	}
}

func TestProgressCoach(t *testing.T) {
	c := &league.Coach{
		Age: 50, Experience: 10,
		Attributes: league.CoachAttributes{Offense: 70, Defense: 70, Motivation: 70, PlayerDevelopment: 70},
		Contract:   league.CoachContract{Years: 3, YearsLeft: 2, Salary: 4_000_000},
	}
	ProgressCoach(rng.New(5), c)

	assert.Equal(t, 51, c.Age)
	assert.Equal(t, 11, c.Experience)
	assert.Equal(t, 1, c.Contract.YearsLeft)

	// Attribute bumps are at most one point total
	total := c.Attributes.Offense + c.Attributes.Defense + c.Attributes.Motivation + c.Attributes.PlayerDevelopment
	assert.LessOrEqual(t, total, 281)
}

func TestProgressCoachExpiredContractStaysAtZero(t *testing.T) {
	c := &league.Coach{Contract: league.CoachContract{YearsLeft: 0}}
	ProgressCoach(rng.New(6), c)
	assert.Equal(t, 0, c.Contract.YearsLeft)
}
