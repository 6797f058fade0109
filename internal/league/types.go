// Package league defines the entities shared by every part of the franchise
// simulation: players, contracts, coaches, teams, games, standings, picks.
// Everything here is JSON-serializable with no object cycles; entities refer
// to teams by id only.
package league

import "fmt"

// Phase is the season state-machine position.
type Phase string

const (
	PhaseRegular    Phase = "regular"
	PhasePlayoffs   Phase = "playoffs"
	PhaseOffseason  Phase = "offseason"
	PhaseDraft      Phase = "draft"
	PhaseFreeAgency Phase = "freeAgency"
)

// RegularSeasonWeeks is the number of scheduled weeks before playoffs.
const RegularSeasonWeeks = 18

// SalaryCap is the per-team cap on the sum of active contract salaries.
const SalaryCap int64 = 200_000_000

// Position is a roster slot abbreviation (QB, RB, ...).
type Position string

const (
	QB Position = "QB"
	RB Position = "RB"
	FB Position = "FB"
	WR Position = "WR"
	TE Position = "TE"
	LT Position = "LT"
	LG Position = "LG"
	C  Position = "C"
	RG Position = "RG"
	RT Position = "RT"
	DE Position = "DE"
	DT Position = "DT"
	LB Position = "LB"
	CB Position = "CB"
	S  Position = "S"
	K  Position = "K"
	P  Position = "P"
)

// Player is a single roster member or free agent. TeamID is empty for free
// agents. Injury is nil when healthy.
type Player struct {
	ID         string         `json:"id"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Position   Position       `json:"position"`
	TeamID     string         `json:"team_id,omitempty"`
	Age        int            `json:"age"`
	Experience int            `json:"experience"`
	Overall    int            `json:"overall"`
	Potential  int            `json:"potential"`
	Attributes map[string]int `json:"attributes"`
	Contract   *Contract      `json:"contract,omitempty"`
	Injury     *Injury        `json:"injury,omitempty"`
	Stats      SeasonStats    `json:"stats"`
	CareerStats CareerStats   `json:"career_stats"`

	College     string `json:"college,omitempty"`
	DraftPick   int    `json:"draft_pick,omitempty"`
	DraftedBy   string `json:"drafted_by,omitempty"`
}

// FullName returns "First Last".
func (p *Player) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// IsHealthy reports whether the player can dress for a game.
func (p *Player) IsHealthy() bool {
	return p.Injury == nil || p.Injury.WeeksRemaining <= 0
}

// Clone returns a deep copy. The engine treats state as immutable, so every
// mutation path copies before writing.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Attributes = make(map[string]int, len(p.Attributes))
	for k, v := range p.Attributes {
		cp.Attributes[k] = v
	}
	if p.Contract != nil {
		cp.Contract = p.Contract.Clone()
	}
	if p.Injury != nil {
		inj := *p.Injury
		cp.Injury = &inj
	}
	return &cp
}

// ContractType distinguishes how a deal was signed.
type ContractType string

const (
	ContractRookie    ContractType = "Rookie"
	ContractStandard  ContractType = "Standard"
	ContractExtension ContractType = "Extension"
	ContractFreeAgent ContractType = "Free Agent"
)

// Contract is owned by exactly one player. YearsLeft decrements once per
// season; at zero the player becomes a pending free agent.
type Contract struct {
	Years           int          `json:"years"`
	YearsLeft       int          `json:"years_left"`
	Salary          int64        `json:"salary"`
	SigningBonus    int64        `json:"signing_bonus"`
	GuaranteedMoney int64        `json:"guaranteed_money"`
	Type            ContractType `json:"type"`
	Bonuses         *Bonuses     `json:"bonuses,omitempty"`
	Clauses         *Clauses     `json:"clauses,omitempty"`
}

// TotalValue is the maximum the contract can pay out excluding bonuses.
func (c *Contract) TotalValue() int64 {
	return c.Salary*int64(c.Years) + c.SigningBonus
}

func (c *Contract) Clone() *Contract {
	cp := *c
	if c.Bonuses != nil {
		b := Bonuses{
			Performance: make(map[string]int64, len(c.Bonuses.Performance)),
			Milestones:  make(map[string]int64, len(c.Bonuses.Milestones)),
		}
		for k, v := range c.Bonuses.Performance {
			b.Performance[k] = v
		}
		for k, v := range c.Bonuses.Milestones {
			b.Milestones[k] = v
		}
		cp.Bonuses = &b
	}
	if c.Clauses != nil {
		cl := *c.Clauses
		cp.Clauses = &cl
	}
	return &cp
}

// Bonuses are optional incentive payments on top of salary.
type Bonuses struct {
	Performance map[string]int64 `json:"performance,omitempty"`
	Milestones  map[string]int64 `json:"milestones,omitempty"`
}

// Total sums every bonus on the deal.
func (b *Bonuses) Total() int64 {
	if b == nil {
		return 0
	}
	var t int64
	for _, v := range b.Performance {
		t += v
	}
	for _, v := range b.Milestones {
		t += v
	}
	return t
}

// Clauses are optional contract protections.
type Clauses struct {
	NoTrade        bool `json:"no_trade"`
	NoFranchiseTag bool `json:"no_franchise_tag"`
}

// Severity buckets injuries by how serious they are.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeverityMajor    Severity = "Major"
)

// Injury is attached to a player while they are out. WeeksRemaining ticks
// down once per advanced week; the injury is cleared at zero.
type Injury struct {
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Severity       Severity `json:"severity"`
	WeeksOut       int      `json:"weeks_out"`
	WeeksRemaining int      `json:"weeks_remaining"`
	OccurredWeek   int      `json:"occurred_week"`
	OccurredSeason int      `json:"occurred_season"`
}

// CoachRole identifies a coaching-staff slot.
type CoachRole string

const (
	HeadCoach            CoachRole = "HC"
	OffensiveCoordinator CoachRole = "OC"
	DefensiveCoordinator CoachRole = "DC"
	SpecialTeamsCoord    CoachRole = "STC"
)

// CoachAttributes are the four 50-99 coaching ratings.
type CoachAttributes struct {
	Offense           int `json:"offense"`
	Defense           int `json:"defense"`
	Motivation        int `json:"motivation"`
	PlayerDevelopment int `json:"player_development"`
}

// CoachContract is simpler than a player deal: no bonuses or clauses.
type CoachContract struct {
	Years     int   `json:"years"`
	YearsLeft int   `json:"years_left"`
	Salary    int64 `json:"salary"`
}

// Coach is a member of a team's staff.
type Coach struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	TeamID          string          `json:"team_id,omitempty"`
	Role            CoachRole       `json:"role"`
	Experience      int             `json:"experience"`
	Age             int             `json:"age"`
	OffensiveScheme string          `json:"offensive_scheme"`
	DefensiveScheme string          `json:"defensive_scheme"`
	Attributes      CoachAttributes `json:"attributes"`
	Contract        CoachContract   `json:"contract"`
}

// FullName returns "First Last".
func (c *Coach) FullName() string {
	return fmt.Sprintf("%s %s", c.FirstName, c.LastName)
}

// Clone returns a copy (Coach has no reference fields beyond value types).
func (c *Coach) Clone() *Coach {
	cp := *c
	return &cp
}

// Staff is a team's coaching staff keyed by role.
type Staff map[CoachRole]*Coach

func (s Staff) Clone() Staff {
	cp := make(Staff, len(s))
	for role, coach := range s {
		cp[role] = coach.Clone()
	}
	return cp
}

// Team is static league metadata. The 32-team table never changes during a
// franchise.
type Team struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	City       string `json:"city"`
	Conference string `json:"conference"`
	Division   string `json:"division"`
}

// Standings is one team's record, reset each season and mutated only by the
// season orchestrator.
type Standings struct {
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`
	Ties          int `json:"ties"`
	PointsFor     int `json:"points_for"`
	PointsAgainst int `json:"points_against"`
}

// WinPct counts ties as half a win. Returns 0 before any game is played.
func (s Standings) WinPct() float64 {
	total := s.Wins + s.Losses + s.Ties
	if total == 0 {
		return 0
	}
	return (float64(s.Wins) + 0.5*float64(s.Ties)) / float64(total)
}

// PointDiff is points for minus points against.
func (s Standings) PointDiff() int {
	return s.PointsFor - s.PointsAgainst
}

// Game is one schedule entry. Immutable once generated; after simulation it
// is marked played with a final score and never re-simulated. Errored flags
// the neutral 0-0 result substituted when a simulation fault was recovered.
type Game struct {
	ID         string `json:"id"`
	Season     int    `json:"season"`
	Week       int    `json:"week"`
	HomeTeam   string `json:"home_team"`
	AwayTeam   string `json:"away_team"`
	Played     bool   `json:"played"`
	HomeScore  int    `json:"home_score"`
	AwayScore  int    `json:"away_score"`
	Round      string `json:"round,omitempty"`
	Conference string `json:"conference,omitempty"`
	Errored    bool   `json:"errored,omitempty"`
}

// Winner returns the winning team id, or "" for a tie.
func (g *Game) Winner() string {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeTeam
	case g.AwayScore > g.HomeScore:
		return g.AwayTeam
	default:
		return ""
	}
}

// DraftPick is one selection slot. Trading reassigns TeamID and sets Traded;
// OriginalTeamID is kept for audit and has no effect on resolution order.
type DraftPick struct {
	ID             string `json:"id"`
	Round          int    `json:"round"`
	Pick           int    `json:"pick"`
	OverallPick    int    `json:"overall_pick"`
	TeamID         string `json:"team_id"`
	OriginalTeamID string `json:"original_team_id"`
	ProspectID     string `json:"prospect_id,omitempty"`
	Traded         bool   `json:"traded"`
}

// Prospect is a draft-eligible player before conversion to a roster player.
type Prospect struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Position       Position       `json:"position"`
	Age            int            `json:"age"`
	College        string         `json:"college"`
	Overall        int            `json:"overall"`
	Potential      int            `json:"potential"`
	ProjectedRound int            `json:"projected_round"`
	DraftYear      int            `json:"draft_year"`
	Drafted        bool           `json:"drafted"`
	DraftedBy      string         `json:"drafted_by,omitempty"`
	Attributes     map[string]int `json:"attributes,omitempty"`
}

// FullName returns "First Last".
func (p *Prospect) FullName() string {
	return fmt.Sprintf("%s %s", p.FirstName, p.LastName)
}

// SeasonStats accumulates one player's counting stats over a season.
type SeasonStats struct {
	GamesPlayed    int `json:"games_played"`
	GamesStarted   int `json:"games_started"`
	PassingYards   int `json:"passing_yards"`
	PassingTDs     int `json:"passing_tds"`
	Interceptions  int `json:"interceptions"`
	RushingYards   int `json:"rushing_yards"`
	RushingTDs     int `json:"rushing_tds"`
	ReceivingYards int `json:"receiving_yards"`
	ReceivingTDs   int `json:"receiving_tds"`
	Receptions     int `json:"receptions"`
	Tackles        int `json:"tackles"`
	Sacks          int `json:"sacks"`
	Picked         int `json:"ints_made"`
	FieldGoalsMade int `json:"field_goals_made"`
	FieldGoalsAtt  int `json:"field_goals_attempted"`
}

// Add folds g into s.
func (s *SeasonStats) Add(g SeasonStats) {
	s.GamesPlayed += g.GamesPlayed
	s.GamesStarted += g.GamesStarted
	s.PassingYards += g.PassingYards
	s.PassingTDs += g.PassingTDs
	s.Interceptions += g.Interceptions
	s.RushingYards += g.RushingYards
	s.RushingTDs += g.RushingTDs
	s.ReceivingYards += g.ReceivingYards
	s.ReceivingTDs += g.ReceivingTDs
	s.Receptions += g.Receptions
	s.Tackles += g.Tackles
	s.Sacks += g.Sacks
	s.Picked += g.Picked
	s.FieldGoalsMade += g.FieldGoalsMade
	s.FieldGoalsAtt += g.FieldGoalsAtt
}

// CareerStats are lifetime totals, updated once per completed season.
type CareerStats struct {
	SeasonsPlayed       int `json:"seasons_played"`
	TotalGames          int `json:"total_games"`
	TotalPassingYards   int `json:"total_passing_yards"`
	TotalRushingYards   int `json:"total_rushing_yards"`
	TotalReceivingYards int `json:"total_receiving_yards"`
	TotalTouchdowns     int `json:"total_touchdowns"`
	TotalTackles        int `json:"total_tackles"`
	TotalSacks          int `json:"total_sacks"`
	TotalInterceptions  int `json:"total_interceptions"`
}

// AddSeason folds a completed season into the career line.
func (c *CareerStats) AddSeason(s SeasonStats) {
	c.SeasonsPlayed++
	c.TotalGames += s.GamesPlayed
	c.TotalPassingYards += s.PassingYards
	c.TotalRushingYards += s.RushingYards
	c.TotalReceivingYards += s.ReceivingYards
	c.TotalTouchdowns += s.PassingTDs + s.RushingTDs + s.ReceivingTDs
	c.TotalTackles += s.Tackles
	c.TotalSacks += s.Sacks
	c.TotalInterceptions += s.Picked
}

// Roster is an unordered collection of players with unique ids.
type Roster []*Player

func (r Roster) Clone() Roster {
	cp := make(Roster, len(r))
	for i, p := range r {
		cp[i] = p.Clone()
	}
	return cp
}

// Find returns the player with the given id, or nil.
func (r Roster) Find(id string) *Player {
	for _, p := range r {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Remove returns the roster without the given player, plus the removed
// player. The original slice is not modified.
func (r Roster) Remove(id string) (Roster, *Player) {
	out := make(Roster, 0, len(r))
	var removed *Player
	for _, p := range r {
		if p.ID == id {
			removed = p
			continue
		}
		out = append(out, p)
	}
	return out, removed
}

// TotalSalary sums active contract salaries.
func (r Roster) TotalSalary() int64 {
	var total int64
	for _, p := range r {
		if p.Contract != nil {
			total += p.Contract.Salary
		}
	}
	return total
}
