// Package contracts implements market-value pricing, guaranteed-money math,
// salary-cap accounting, and the offer-acceptance decision.
package contracts

import (
	"errors"
	"math"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

// ErrOverCap is returned when an offer would push team salary past the cap.
var ErrOverCap = errors.New("offer exceeds available cap space")

// positionMultipliers scale market value by positional scarcity.
var positionMultipliers = map[league.Position]float64{
	league.QB: 2.0,
	league.LT: 1.4,
	league.RT: 1.3,
	league.DE: 1.3,
	league.CB: 1.3,
	league.WR: 1.2,
	league.DT: 1.1,
	league.LB: 1.0,
	league.S:  0.95,
	league.TE: 0.95,
	league.RB: 0.85,
	league.C:  0.9,
	league.LG: 0.85,
	league.RG: 0.85,
	league.FB: 0.7,
	league.K:  0.6,
	league.P:  0.6,
}

// MarketValue prices a player's annual salary from overall rating, age, and
// position. This is the single canonical formula: rating above 50 is worth
// 150k per point over a 1M floor, young players get a 10% premium, players
// over 30 are discounted 10% per year past 30 with a 0.6x floor.
func MarketValue(p *league.Player) int64 {
	base := float64(p.Overall-50)*150_000 + 1_000_000

	if p.Age < 25 {
		base *= 1.1
	} else if p.Age > 30 {
		base *= math.Max(0.6, 1-float64(p.Age-30)*0.1)
	}

	mult, ok := positionMultipliers[p.Position]
	if !ok {
		mult = 1.0
	}
	return int64(math.Round(base * mult))
}

// GuaranteedMoney computes total guarantees for a deal: the guaranteed share
// of the term (rounded up to whole years) in salary, plus the full signing
// bonus. The result never exceeds salary*years + signingBonus.
func GuaranteedMoney(salary int64, years int, signingBonus int64, guaranteedPct int) int64 {
	guaranteedYears := int(math.Ceil(float64(years) * float64(guaranteedPct) / 100))
	if guaranteedYears > years {
		guaranteedYears = years
	}
	return salary*int64(guaranteedYears) + signingBonus
}

// TeamSalary sums active contract salaries on a roster.
func TeamSalary(roster league.Roster) int64 {
	return roster.TotalSalary()
}

// CapSpace is the salary cap minus active salaries. Negative when a roster
// is over the cap (possible after trades).
func CapSpace(roster league.Roster) int64 {
	return league.SalaryCap - TeamSalary(roster)
}

// Offer is a proposed contract presented to a player.
type Offer struct {
	Salary            int64           `json:"salary"`
	Years             int             `json:"years"`
	SigningBonusPct   int             `json:"signing_bonus_pct"`
	GuaranteedPct     int             `json:"guaranteed_pct"`
	NoTrade           bool            `json:"no_trade"`
	NoFranchiseTag    bool            `json:"no_franchise_tag"`
	Bonuses           *league.Bonuses `json:"bonuses,omitempty"`
}

// SigningBonus is the up-front bonus implied by the offer terms.
func (o Offer) SigningBonus() int64 {
	return o.Salary * int64(o.Years) * int64(o.SigningBonusPct) / 100
}

// Evaluation is the outcome of presenting an offer.
type Evaluation struct {
	Accepted      bool    `json:"accepted"`
	OfferRatio    float64 `json:"offer_ratio"`
	AdjustedRatio float64 `json:"adjusted_ratio"`
	MarketValue   int64   `json:"market_value"`
	Roll          int     `json:"roll"`
}

// Evaluate decides whether a player accepts an offer. The decision is
// deterministic: the roll is a pure hash of the player id and the offer
// terms (rng.OfferSeed), so presenting the same offer twice resolves the
// same way. Guarantees above 50%, either clause, and any non-zero bonus all
// sweeten the effective ratio. Callers must verify cap space first; Evaluate
// itself never inspects the roster.
func Evaluate(p *league.Player, offer Offer) Evaluation {
	market := MarketValue(p)
	ratio := float64(offer.Salary) / float64(market)

	guaranteeBonus := float64(offer.GuaranteedPct-50) / 100
	clauseBonus := 0.0
	if offer.NoTrade {
		clauseBonus += 0.05
	}
	if offer.NoFranchiseTag {
		clauseBonus += 0.05
	}
	bonusBonus := 0.0
	if offer.Bonuses.Total() > 0 {
		bonusBonus = 0.05
	}

	adjusted := ratio + guaranteeBonus + clauseBonus + bonusBonus
	roll := rng.OfferSeed(p.ID, offer.Salary, offer.Years)

	var accepted bool
	switch {
	case adjusted >= 1.1:
		accepted = true
	case adjusted >= 0.9:
		accepted = roll > 30 // 70% of rolls
	case adjusted >= 0.75:
		accepted = roll > 60 // 40% of rolls
	default:
		accepted = roll > 90 // 10% of rolls
	}

	return Evaluation{
		Accepted:      accepted,
		OfferRatio:    ratio,
		AdjustedRatio: adjusted,
		MarketValue:   market,
		Roll:          roll,
	}
}

// Build converts an accepted offer into a contract of the given type.
func Build(offer Offer, contractType league.ContractType) *league.Contract {
	signingBonus := offer.SigningBonus()
	return &league.Contract{
		Years:           offer.Years,
		YearsLeft:       offer.Years,
		Salary:          offer.Salary,
		SigningBonus:    signingBonus,
		GuaranteedMoney: GuaranteedMoney(offer.Salary, offer.Years, signingBonus, offer.GuaranteedPct),
		Type:            contractType,
		Bonuses:         offer.Bonuses,
		Clauses: &league.Clauses{
			NoTrade:        offer.NoTrade,
			NoFranchiseTag: offer.NoFranchiseTag,
		},
	}
}

// ContractLength picks an AI offer term from the player's age: younger
// players command longer deals.
func ContractLength(age int, r *rng.Rand) int {
	switch {
	case age < 26:
		return 3 + r.Intn(3)
	case age < 30:
		return 2 + r.Intn(3)
	default:
		return 1 + r.Intn(2)
	}
}

// FreeAgentOffer is an AI team's bid on a free agent.
type FreeAgentOffer struct {
	TeamID      string `json:"team_id"`
	PlayerID    string `json:"player_id"`
	Years       int    `json:"years"`
	AnnualValue int64  `json:"annual_value"`
	TotalValue  int64  `json:"total_value"`
	Guaranteed  int64  `json:"guaranteed"`
}

// GenerateFreeAgentOffer builds an AI bid at 90-120% of market value, or nil
// when the bidding team cannot fit the salary under its cap.
func GenerateFreeAgentOffer(p *league.Player, teamID string, capSpace int64, r *rng.Rand) *FreeAgentOffer {
	market := MarketValue(p)
	variance := 0.9 + r.Float64()*0.3
	annual := int64(math.Round(float64(market) * variance))

	if annual > capSpace {
		return nil
	}

	years := ContractLength(p.Age, r)
	return &FreeAgentOffer{
		TeamID:      teamID,
		PlayerID:    p.ID,
		Years:       years,
		AnnualValue: annual,
		TotalValue:  annual * int64(years),
		Guaranteed:  int64(math.Round(float64(annual*int64(years)) * 0.6)),
	}
}

// ShouldAISign decides whether an AI team signs a free agent: always when
// thin at the position, with a 70% roll when the player is a clear upgrade
// over the second-best incumbent, never otherwise. Cap space gates first.
func ShouldAISign(p *league.Player, offer *FreeAgentOffer, roster league.Roster, capSpace int64, r *rng.Rand) bool {
	if offer.AnnualValue > capSpace {
		return false
	}

	var atPosition []*league.Player
	for _, rp := range roster {
		if rp.Position == p.Position {
			atPosition = append(atPosition, rp)
		}
	}
	if len(atPosition) < 2 {
		return true
	}

	best, second := 0, 0
	for _, rp := range atPosition {
		if rp.Overall > best {
			best, second = rp.Overall, best
		} else if rp.Overall > second {
			second = rp.Overall
		}
	}
	if p.Overall > second+5 {
		return r.Chance(0.7)
	}
	return false
}
