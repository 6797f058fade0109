// Package generator produces players, coaches, and draft prospects with
// rating-consistent randomized attributes and contracts.
package generator

import (
	"math"

	"github.com/google/uuid"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// Generator creates league entities from a seeded random source.
type Generator struct {
	rand *rng.Rand
}

func New(r *rng.Rand) *Generator {
	return &Generator{rand: r}
}

// Player generates one player at the given position. Rookies (experience 0)
// get a fixed four-year rookie deal; veterans get a market-style contract
// scaled off their base rating.
func (g *Generator) Player(position league.Position, teamID string, experience int) *league.Player {
	age := 22
	if experience > 0 {
		age = 22 + experience + g.rand.Intn(3)
	}

	baseRating := 50 + g.rand.Intn(30)
	potential := min(99, baseRating+g.rand.Intn(20))
	overall := min(99, baseRating+experience*2)

	var contract *league.Contract
	if experience == 0 {
		contract = g.rookieDeal()
	} else {
		contract = g.veteranDeal(baseRating)
	}

	return &league.Player{
		ID:         uuid.NewString(),
		FirstName:  rng.Pick(g.rand, firstNames),
		LastName:   rng.Pick(g.rand, lastNames),
		Position:   position,
		TeamID:     teamID,
		Age:        age,
		Experience: experience,
		Overall:    overall,
		Potential:  potential,
		Attributes: g.attributes(position, baseRating),
		Contract:   contract,
		Stats:      league.SeasonStats{GamesPlayed: experience * 16, GamesStarted: experience * 12},
	}
}

func (g *Generator) rookieDeal() *league.Contract {
	baseSalary := int64(500_000 + g.rand.Intn(500_000))
	signingBonus := baseSalary / 2
	return &league.Contract{
		Years:           4,
		YearsLeft:       4,
		Salary:          baseSalary,
		SigningBonus:    signingBonus,
		GuaranteedMoney: baseSalary*4 + signingBonus,
		Type:            league.ContractRookie,
		Bonuses: &league.Bonuses{
			Performance: map[string]int64{
				"playing_time": baseSalary / 10,
				"pro_roster":   baseSalary / 20,
			},
			Milestones: map[string]int64{},
		},
		Clauses: &league.Clauses{},
	}
}

func (g *Generator) veteranDeal(overall int) *league.Contract {
	baseValue := int64(overall-50)*100_000 + 1_000_000
	years := 1 + g.rand.Intn(4)
	salary := baseValue + int64(g.rand.Intn(2_000_000))
	signingBonus := salary * int64(years) * 30 / 100
	guaranteedYears := min(int(math.Ceil(float64(years)*0.6)), years)

	milestones := map[string]int64{}
	if overall >= 75 {
		milestones["pro_bowl"] = salary * 15 / 100
	}
	if overall >= 80 {
		milestones["all_pro"] = salary * 25 / 100
	}

	return &league.Contract{
		Years:           years,
		YearsLeft:       years,
		Salary:          salary,
		SigningBonus:    signingBonus,
		GuaranteedMoney: salary*int64(guaranteedYears) + signingBonus,
		Type:            league.ContractStandard,
		Bonuses: &league.Bonuses{
			Performance: map[string]int64{
				"roster":       salary * 5 / 100,
				"playing_time": salary * 8 / 100,
			},
			Milestones: milestones,
		},
		Clauses: &league.Clauses{
			NoTrade:        overall >= 85,
			NoFranchiseTag: overall >= 90,
		},
	}
}

// attributes derives the position's attribute set from the base rating with
// roughly +/-7.5 variance, each clamped to [30,99].
func (g *Generator) attributes(position league.Position, base int) map[string]int {
	attr := func(b int) int {
		return clampAttr(b + g.rand.Intn(15) - 7)
	}

	attrs := map[string]int{
		"speed":     attr(base),
		"strength":  attr(base),
		"awareness": attr(base),
		"injury":    attr(base),
	}

	switch position {
	case league.QB:
		attrs["throwing"] = attr(base + 5)
		attrs["accuracy"] = attr(base + 5)
		attrs["decision_making"] = attr(base)
	case league.RB, league.FB:
		attrs["carrying"] = attr(base)
		attrs["agility"] = attr(base + 5)
		attrs["vision"] = attr(base)
	case league.WR:
		attrs["catching"] = attr(base + 5)
		attrs["route"] = attr(base)
		attrs["agility"] = attr(base + 5)
	case league.TE:
		attrs["catching"] = attr(base)
		attrs["blocking"] = attr(base)
		attrs["route"] = attr(base - 5)
	case league.LT, league.LG, league.C, league.RG, league.RT:
		attrs["blocking"] = attr(base + 5)
		attrs["pass_block"] = attr(base)
		attrs["run_block"] = attr(base)
	case league.DE, league.DT:
		attrs["tackle"] = attr(base)
		attrs["pass_rush"] = attr(base + 5)
		attrs["finesse"] = attr(base - 5)
	case league.LB:
		attrs["tackle"] = attr(base + 5)
		attrs["coverage"] = attr(base - 5)
		attrs["pass_rush"] = attr(base)
	case league.CB:
		attrs["coverage"] = attr(base + 5)
		attrs["agility"] = attr(base + 5)
		attrs["tackle"] = attr(base - 10)
	case league.S:
		attrs["coverage"] = attr(base)
		attrs["tackle"] = attr(base)
		attrs["zone"] = attr(base)
	case league.K, league.P:
		attrs["power"] = attr(base + 5)
		attrs["accuracy"] = attr(base + 5)
	}

	return attrs
}

// rosterCensus is the fixed 53-man positional breakdown: count and the
// maximum experience drawn for each slot.
var rosterCensus = []struct {
	position league.Position
	count    int
	maxExp   int
}{
	{league.QB, 3, 8},
	{league.RB, 4, 6},
	{league.FB, 1, 5},
	{league.WR, 6, 7},
	{league.TE, 3, 6},
	{league.LT, 2, 8},
	{league.LG, 2, 8},
	{league.C, 2, 8},
	{league.RG, 2, 8},
	{league.RT, 2, 8},
	{league.DE, 4, 7},
	{league.DT, 4, 7},
	{league.LB, 6, 7},
	{league.CB, 5, 7},
	{league.S, 4, 7},
	{league.K, 1, 5},
	{league.P, 1, 5},
}

// Roster generates a full 53-man roster for a team.
func (g *Generator) Roster(teamID string) league.Roster {
	roster := make(league.Roster, 0, 53)
	for _, slot := range rosterCensus {
		for i := 0; i < slot.count; i++ {
			roster = append(roster, g.Player(slot.position, teamID, g.rand.Intn(slot.maxExp)))
		}
	}
	return roster
}

// prospectsPerRound sizes each draft-class round.
var prospectsPerRound = []int{32, 32, 32, 32, 32, 45, 45}

// Prospects generates the seven-round draft class for a year. Ratings fall
// off by round; potential always clears the base rating.
func (g *Generator) Prospects(year int) []*league.Prospect {
	var prospects []*league.Prospect
	for roundIdx, count := range prospectsPerRound {
		round := roundIdx + 1
		for i := 0; i < count; i++ {
			base := 85 - (round-1)*5 + g.rand.Intn(10) - 5
			base = max(50, min(85, base))
			potential := min(99, base+10+g.rand.Intn(15))
			position := rng.Pick(g.rand, league.AllPositions)

			prospects = append(prospects, &league.Prospect{
				ID:             uuid.NewString(),
				FirstName:      rng.Pick(g.rand, firstNames),
				LastName:       rng.Pick(g.rand, lastNames),
				Position:       position,
				Age:            21 + g.rand.Intn(2),
				College:        rng.Pick(g.rand, colleges),
				Overall:        base,
				Potential:      potential,
				ProjectedRound: round,
				DraftYear:      year,
				Attributes:     g.attributes(position, base),
			})
		}
	}
	return prospects
}

// Coach generates one coach for the given staff role.
func (g *Generator) Coach(teamID string, role league.CoachRole) *league.Coach {
	experience := g.rand.Intn(20)
	var salary int64
	if role == league.HeadCoach {
		salary = int64(3_000_000 + g.rand.Intn(7_000_000))
	} else {
		salary = int64(500_000 + g.rand.Intn(1_500_000))
	}
	years := 3 + g.rand.Intn(3)

	return &league.Coach{
		ID:              uuid.NewString(),
		FirstName:       rng.Pick(g.rand, firstNames),
		LastName:        rng.Pick(g.rand, lastNames),
		TeamID:          teamID,
		Role:            role,
		Experience:      experience,
		Age:             35 + experience,
		OffensiveScheme: rng.Pick(g.rand, offensiveSchemes),
		DefensiveScheme: rng.Pick(g.rand, defensiveSchemes),
		Attributes: league.CoachAttributes{
			Offense:           50 + g.rand.Intn(40),
			Defense:           50 + g.rand.Intn(40),
			Motivation:        50 + g.rand.Intn(40),
			PlayerDevelopment: 50 + g.rand.Intn(40),
		},
		Contract: league.CoachContract{
			Years:     years,
			YearsLeft: years,
			Salary:    salary,
		},
	}
}

// Staff generates a complete coaching staff.
func (g *Generator) Staff(teamID string) league.Staff {
	return league.Staff{
		league.HeadCoach:            g.Coach(teamID, league.HeadCoach),
		league.OffensiveCoordinator: g.Coach(teamID, league.OffensiveCoordinator),
		league.DefensiveCoordinator: g.Coach(teamID, league.DefensiveCoordinator),
		league.SpecialTeamsCoord:    g.Coach(teamID, league.SpecialTeamsCoord),
	}
}

// AvailableCoaches generates a hiring pool for a role, best average rating
// first.
func (g *Generator) AvailableCoaches(role league.CoachRole, count int) []*league.Coach {
	coaches := make([]*league.Coach, count)
	for i := range coaches {
		coaches[i] = g.Coach("", role)
	}
	for i := 1; i < len(coaches); i++ {
		for j := i; j > 0 && coachAvg(coaches[j]) > coachAvg(coaches[j-1]); j-- {
			coaches[j], coaches[j-1] = coaches[j-1], coaches[j]
		}
	}
	return coaches
}

func coachAvg(c *league.Coach) float64 {
	return float64(c.Attributes.Offense+c.Attributes.Defense+c.Attributes.Motivation) / 3
}

func clampAttr(v int) int {
	return max(30, min(99, v))
}
