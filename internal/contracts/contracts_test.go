package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

func player(pos league.Position, overall, age int) *league.Player {
	return &league.Player{
		ID:       "test-player",
		Position: pos,
		Overall:  overall,
		Age:      age,
	}
}

func TestMarketValue(t *testing.T) {
	// 80 overall QB in his prime: (30*150k + 1M) * 2.0
	assert.Equal(t, int64(11_000_000), MarketValue(player(league.QB, 80, 27)))

	// Young player premium
	assert.Equal(t, int64(12_100_000), MarketValue(player(league.QB, 80, 24)))

	// Age 33 discount: 1 - 3*0.1 = 0.7
	assert.Equal(t, int64(7_700_000), MarketValue(player(league.QB, 80, 33)))

	// Discount floors at 0.6 no matter how old
	assert.Equal(t, MarketValue(player(league.QB, 80, 36)), MarketValue(player(league.QB, 80, 40)))

	// Kickers earn the scarcity discount
	assert.Equal(t, int64(3_300_000), MarketValue(player(league.K, 80, 27)))
}

func TestGuaranteedMoney(t *testing.T) {
	// 50% of 4 years rounds to 2 guaranteed years
	assert.Equal(t, int64(5_000_000), GuaranteedMoney(2_000_000, 4, 1_000_000, 50))

	// Partial years round up: 50% of 3 years is 2
	assert.Equal(t, int64(5_000_000), GuaranteedMoney(2_000_000, 3, 1_000_000, 50))

	// Fully guaranteed
	assert.Equal(t, int64(9_000_000), GuaranteedMoney(2_000_000, 4, 1_000_000, 100))

	// Guarantees never exceed the deal
	assert.Equal(t, int64(9_000_000), GuaranteedMoney(2_000_000, 4, 1_000_000, 150))
}

func TestCapSpace(t *testing.T) {
	roster := league.Roster{
		{ID: "a", Contract: &league.Contract{Salary: 50_000_000}},
		{ID: "b", Contract: &league.Contract{Salary: 30_000_000}},
		{ID: "c"}, // no contract
	}
	assert.Equal(t, int64(80_000_000), TeamSalary(roster))
	assert.Equal(t, league.SalaryCap-80_000_000, CapSpace(roster))
}

func TestEvaluateDeterministic(t *testing.T) {
	p := player(league.WR, 78, 26)
	offer := Offer{Salary: 5_000_000, Years: 3, GuaranteedPct: 50}

	first := Evaluate(p, offer)
	second := Evaluate(p, offer)
	assert.Equal(t, first, second)
}

func TestEvaluateGenerousOfferAccepted(t *testing.T) {
	p := player(league.WR, 78, 26)
	market := MarketValue(p)

	// 120% of market with neutral guarantees clears the always-accept bar
	eval := Evaluate(p, Offer{Salary: market * 12 / 10, Years: 3, GuaranteedPct: 50})
	assert.True(t, eval.Accepted)
	assert.GreaterOrEqual(t, eval.AdjustedRatio, 1.1)
}

func TestEvaluateLowballRarelyAccepted(t *testing.T) {
	p := player(league.WR, 78, 26)
	market := MarketValue(p)

	eval := Evaluate(p, Offer{Salary: market * 3 / 10, Years: 2, GuaranteedPct: 50})
	assert.Equal(t, eval.Roll > 90, eval.Accepted)
	assert.Less(t, eval.AdjustedRatio, 0.75)
}

func TestEvaluateSweeteners(t *testing.T) {
	p := player(league.WR, 78, 26)
	market := MarketValue(p)
	base := Offer{Salary: market, Years: 3, GuaranteedPct: 50}

	sweet := base
	sweet.NoTrade = true
	sweet.NoFranchiseTag = true
	sweet.GuaranteedPct = 70
	sweet.Bonuses = &league.Bonuses{Performance: map[string]int64{"roster": 100_000}}

	plain := Evaluate(p, base)
	rich := Evaluate(p, sweet)
	assert.InDelta(t, plain.AdjustedRatio+0.35, rich.AdjustedRatio, 1e-9)
	assert.True(t, rich.Accepted)
}

func TestBuild(t *testing.T) {
	offer := Offer{
		Salary:          4_000_000,
		Years:           3,
		SigningBonusPct: 25,
		GuaranteedPct:   67,
		NoTrade:         true,
	}
	c := Build(offer, league.ContractFreeAgent)

	assert.Equal(t, league.ContractFreeAgent, c.Type)
	assert.Equal(t, 3, c.YearsLeft)
	assert.Equal(t, int64(3_000_000), c.SigningBonus)
	// ceil(3 * 0.67) = 3 guaranteed years plus the bonus
	assert.Equal(t, int64(15_000_000), c.GuaranteedMoney)
	require.NotNil(t, c.Clauses)
	assert.True(t, c.Clauses.NoTrade)
	assert.False(t, c.Clauses.NoFranchiseTag)
}

func TestContractLengthByAge(t *testing.T) {
	r := rng.New(1)
	for i := 0; i < 100; i++ {
		young := ContractLength(23, r)
		assert.GreaterOrEqual(t, young, 3)
		assert.LessOrEqual(t, young, 5)

		old := ContractLength(33, r)
		assert.GreaterOrEqual(t, old, 1)
		assert.LessOrEqual(t, old, 2)
	}
}

func TestGenerateFreeAgentOfferRespectsCap(t *testing.T) {
	r := rng.New(2)
	p := player(league.QB, 85, 27)

	// Plenty of room: offer lands within 90-120% of market
	offer := GenerateFreeAgentOffer(p, "BUF", league.SalaryCap, r)
	require.NotNil(t, offer)
	market := MarketValue(p)
	assert.GreaterOrEqual(t, offer.AnnualValue, market*9/10)
	assert.LessOrEqual(t, offer.AnnualValue, market*12/10)
	assert.Equal(t, offer.AnnualValue*int64(offer.Years), offer.TotalValue)

	// No room: no offer
	assert.Nil(t, GenerateFreeAgentOffer(p, "BUF", 1_000_000, r))
}

func TestShouldAISign(t *testing.T) {
	r := rng.New(3)
	fa := player(league.QB, 80, 27)
	offer := &FreeAgentOffer{AnnualValue: 5_000_000}

	// Thin at the position: always sign
	thin := league.Roster{{ID: "x", Position: league.QB, Overall: 70}}
	assert.True(t, ShouldAISign(fa, offer, thin, league.SalaryCap, r))

	// Cap gates regardless of need
	assert.False(t, ShouldAISign(fa, offer, thin, 1_000_000, r))

	// Well stocked and no upgrade: never sign
	stocked := league.Roster{
		{ID: "a", Position: league.QB, Overall: 85},
		{ID: "b", Position: league.QB, Overall: 82},
		{ID: "c", Position: league.QB, Overall: 75},
	}
	assert.False(t, ShouldAISign(fa, offer, stocked, league.SalaryCap, r))
}
