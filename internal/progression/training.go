package progression

import (
	"math"

	"github.com/google/uuid"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// TrainingType selects which attribute group a program targets.
type TrainingType string

const (
	TrainingStrength TrainingType = "STRENGTH"
	TrainingSpeed    TrainingType = "SPEED"
	TrainingSkill    TrainingType = "SKILL"
	TrainingMental   TrainingType = "MENTAL"
)

// Intensity controls how hard a program pushes: harder practice improves
// faster but carries more injury risk.
type Intensity string

const (
	IntensityLight    Intensity = "LIGHT"
	IntensityModerate Intensity = "MODERATE"
	IntensityIntense  Intensity = "INTENSE"
)

// TrainingInfo describes one training type for the UI and cost accounting.
type TrainingInfo struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FocusAttributes []string `json:"focus_attributes"`
	Cost            int64    `json:"cost"`
}

// IntensityInfo describes one practice intensity level.
type IntensityInfo struct {
	Name                  string  `json:"name"`
	InjuryRisk            float64 `json:"injury_risk"`
	ImprovementMultiplier float64 `json:"improvement_multiplier"`
}

// TrainingTypes lists the available programs.
var TrainingTypes = map[TrainingType]TrainingInfo{
	TrainingStrength: {
		Name:            "Strength Training",
		Description:     "Improve strength and power",
		FocusAttributes: []string{"strength"},
		Cost:            50_000,
	},
	TrainingSpeed: {
		Name:            "Speed & Agility",
		Description:     "Improve speed and agility",
		FocusAttributes: []string{"speed", "agility"},
		Cost:            50_000,
	},
	TrainingSkill: {
		Name:            "Position Skills",
		Description:     "Improve position-specific skills",
		FocusAttributes: []string{"route", "catching", "coverage", "tackle", "throwing", "accuracy"},
		Cost:            75_000,
	},
	TrainingMental: {
		Name:            "Film Study",
		Description:     "Improve awareness and decision making",
		FocusAttributes: []string{"awareness", "decision_making"},
		Cost:            25_000,
	},
}

// Intensities lists the practice intensity levels.
var Intensities = map[Intensity]IntensityInfo{
	IntensityLight:    {Name: "Light Practice", InjuryRisk: 0.01, ImprovementMultiplier: 0.5},
	IntensityModerate: {Name: "Moderate Practice", InjuryRisk: 0.02, ImprovementMultiplier: 1.0},
	IntensityIntense:  {Name: "Intense Practice", InjuryRisk: 0.04, ImprovementMultiplier: 1.5},
}

// Program is one player's multi-week training assignment.
type Program struct {
	ID             string       `json:"id"`
	PlayerID       string       `json:"player_id"`
	Type           TrainingType `json:"type"`
	Intensity      Intensity    `json:"intensity"`
	StartWeek      int          `json:"start_week"`
	WeeksTotal     int          `json:"weeks_total"`
	WeeksRemaining int          `json:"weeks_remaining"`
	Completed      bool         `json:"completed"`
}

// NewProgram creates a training program for a player, four weeks by default.
func NewProgram(playerID string, trainingType TrainingType, intensity Intensity, weeks int) *Program {
	if weeks <= 0 {
		weeks = 4
	}
	return &Program{
		ID:             uuid.NewString(),
		PlayerID:       playerID,
		Type:           trainingType,
		Intensity:      intensity,
		WeeksTotal:     weeks,
		WeeksRemaining: weeks,
	}
}

// ApplyWeek runs one week of the program against the player, improving the
// focus attributes and recalculating the overall from the attribute mean.
// Completed programs are a no-op. Mutates both in place.
func ApplyWeek(r *rng.Rand, p *league.Player, program *Program) {
	if program == nil || program.Completed {
		return
	}

	info, ok := TrainingTypes[program.Type]
	intensity, ok2 := Intensities[program.Intensity]
	if !ok || !ok2 {
		return
	}

	base := 0.3 * intensity.ImprovementMultiplier
	for _, attr := range info.FocusAttributes {
		value, present := p.Attributes[attr]
		if !present {
			continue
		}
		improvement := base + r.Float64()*0.3
		p.Attributes[attr] = min(99, int(math.Round(float64(value)+improvement)))
	}
	recalcOverall(p)

	program.WeeksRemaining--
	if program.WeeksRemaining <= 0 {
		program.WeeksRemaining = 0
		program.Completed = true
	}
}

// ApplyTraining is the one-shot variant used by the offseason training
// operation: a quality score of 1-10 translates directly into attribute
// gains for the chosen focus.
func ApplyTraining(p *league.Player, trainingType TrainingType, quality int) {
	base := float64(quality) * 0.5

	switch trainingType {
	case TrainingStrength:
		bumpAttr(p, "strength", base)
	case TrainingSpeed:
		bumpAttr(p, "speed", base)
		bumpAttr(p, "agility", base*0.5)
	case TrainingSkill:
		for key, value := range p.Attributes {
			switch key {
			case "speed", "strength", "awareness", "injury":
				continue
			}
			p.Attributes[key] = min(99, int(math.Round(float64(value)+base*0.7)))
		}
	case TrainingMental:
		bumpAttr(p, "awareness", base)
	}
	recalcOverall(p)
}

// Recommend picks the training type that targets the player's weakest area.
func Recommend(p *league.Player) TrainingType {
	if len(p.Attributes) == 0 {
		return TrainingSkill
	}

	strength := attrOr(p, "strength", 70)
	speed := attrOr(p, "speed", 70) + attrOr(p, "agility", 70)/2
	awareness := attrOr(p, "awareness", 70)

	weakest, lowest := TrainingSkill, 70
	if strength < lowest {
		weakest, lowest = TrainingStrength, strength
	}
	if speed < lowest {
		weakest, lowest = TrainingSpeed, speed
	}
	if awareness < lowest {
		weakest = TrainingMental
	}
	return weakest
}

func bumpAttr(p *league.Player, key string, amount float64) {
	if value, ok := p.Attributes[key]; ok {
		p.Attributes[key] = min(99, int(math.Round(float64(value)+amount)))
	}
}

func attrOr(p *league.Player, key string, fallback int) int {
	if value, ok := p.Attributes[key]; ok {
		return value
	}
	return fallback
}

func recalcOverall(p *league.Player) {
	if len(p.Attributes) == 0 {
		return
	}
	sum := 0
	for _, value := range p.Attributes {
		sum += value
	}
	p.Overall = min(99, int(math.Round(float64(sum)/float64(len(p.Attributes)))))
}
