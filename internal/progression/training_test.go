package progression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func trainee() *league.Player {
	return &league.Player{
		ID: "p", Overall: 70,
		Attributes: map[string]int{
			"speed": 70, "strength": 70, "awareness": 70,
			"agility": 70, "catching": 70,
		},
	}
}

func TestNewProgramDefaultsToFourWeeks(t *testing.T) {
	pr := NewProgram("p", TrainingSpeed, IntensityModerate, 0)
	assert.Equal(t, 4, pr.WeeksTotal)
	assert.Equal(t, 4, pr.WeeksRemaining)
	assert.False(t, pr.Completed)
	assert.NotEmpty(t, pr.ID)
}

func TestApplyWeekTicksAndCompletes(t *testing.T) {
	p := trainee()
	pr := NewProgram("p", TrainingStrength, IntensityIntense, 2)
	r := rng.New(1)

	ApplyWeek(r, p, pr)
	assert.Equal(t, 1, pr.WeeksRemaining)
	assert.False(t, pr.Completed)
	assert.GreaterOrEqual(t, p.Attributes["strength"], 70)

	ApplyWeek(r, p, pr)
	assert.Equal(t, 0, pr.WeeksRemaining)
	assert.True(t, pr.Completed)

	// Completed programs are inert
	before := p.Attributes["strength"]
	ApplyWeek(r, p, pr)
	assert.Equal(t, before, p.Attributes["strength"])
}

func TestApplyWeekOnlyTouchesFocus(t *testing.T) {
	p := trainee()
	pr := NewProgram("p", TrainingSpeed, IntensityIntense, 4)
	ApplyWeek(rng.New(2), p, pr)

	assert.Equal(t, 70, p.Attributes["strength"])
	assert.Equal(t, 70, p.Attributes["awareness"])
}

func TestApplyTrainingQualityScales(t *testing.T) {
	weak := trainee()
	strong := trainee()

	ApplyTraining(weak, TrainingStrength, 1)
	ApplyTraining(strong, TrainingStrength, 10)

	assert.Equal(t, 71, weak.Attributes["strength"])
	assert.Equal(t, 75, strong.Attributes["strength"])
	assert.GreaterOrEqual(t, strong.Overall, weak.Overall)
}

func TestApplyTrainingSkillSkipsPhysical(t *testing.T) {
	p := trainee()
	ApplyTraining(p, TrainingSkill, 10)

	assert.Equal(t, 70, p.Attributes["speed"])
	assert.Equal(t, 70, p.Attributes["strength"])
	assert.Equal(t, 70, p.Attributes["awareness"])
	assert.Greater(t, p.Attributes["catching"], 70)
}

func TestApplyTrainingCapsAt99(t *testing.T) {
	p := trainee()
	p.Attributes["strength"] = 98
	ApplyTraining(p, TrainingStrength, 10)
	assert.Equal(t, 99, p.Attributes["strength"])
}

func TestRecommendTargetsWeakness(t *testing.T) {
	slow := trainee()
	slow.Attributes["speed"] = 40
	slow.Attributes["agility"] = 40
	assert.Equal(t, TrainingSpeed, Recommend(slow))

	frail := trainee()
	frail.Attributes["strength"] = 35
	assert.Equal(t, TrainingStrength, Recommend(frail))

	require.Equal(t, TrainingSkill, Recommend(&league.Player{Attributes: map[string]int{}}))
}

func TestCatalogShape(t *testing.T) {
	require.Len(t, TrainingTypes, 4)
	require.Len(t, Intensities, 3)
	assert.Equal(t, int64(75_000), TrainingTypes[TrainingSkill].Cost)
	assert.Equal(t, 1.5, Intensities[IntensityIntense].ImprovementMultiplier)
}
