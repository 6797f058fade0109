// Package engine is the pure facade over the franchise simulation: a
// JSON-serializable State plus state-in/state-out operations. Nothing in
// here touches transport or storage; every operation clones the incoming
// state, mutates the clone, and returns it.
package engine

import (
	"errors"
	"fmt"

	"github.com/jstittsworth/gridiron-gm/internal/generator"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/progression"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
	"github.com/jstittsworth/gridiron-gm/internal/season"
	"github.com/jstittsworth/gridiron-gm/internal/trades"
)

var (
	// ErrNotInitialized is returned when an operation runs before
	// Initialize.
	ErrNotInitialized = errors.New("game not initialized")

	// ErrWrongPhase rejects an operation outside its legal season phase.
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrPlayerNotFound is returned when a named player id resolves to
	// nobody.
	ErrPlayerNotFound = errors.New("player not found")

	// ErrUnknownTeam is returned for team ids outside the 32-team table.
	ErrUnknownTeam = errors.New("unknown team")
)

// State is the complete franchise snapshot. It is serialized as-is into
// save slots; everything references by id, never by pointer across
// collections, so the JSON round-trips cleanly.
type State struct {
	Initialized   bool         `json:"initialized"`
	Seed          int64        `json:"seed"`
	Tick          int64        `json:"tick"`
	UserTeamID    string       `json:"user_team_id"`
	CurrentSeason int          `json:"current_season"`
	CurrentWeek   int          `json:"current_week"`
	Phase         league.Phase `json:"phase"`

	Rosters    map[string]league.Roster    `json:"rosters"`
	FreeAgents league.Roster               `json:"free_agents"`
	Staffs     map[string]league.Staff     `json:"staffs"`
	CoachPool  []*league.Coach             `json:"coach_pool,omitempty"`
	Schedule   []*league.Game              `json:"schedule"`
	Standings  map[string]league.Standings `json:"standings"`

	Prospects  []*league.Prospect  `json:"prospects,omitempty"`
	DraftPicks []*league.DraftPick `json:"draft_picks,omitempty"`
	NextPick   int                 `json:"next_pick"`

	Bracket *season.Bracket `json:"bracket,omitempty"`

	History      []season.Record                 `json:"history,omitempty"`
	Awards       []season.Award                  `json:"awards,omitempty"`
	TradeHistory []*trades.Proposal              `json:"trade_history,omitempty"`
	Training     map[string]*progression.Program `json:"training,omitempty"`
}

// Initialize builds a fresh franchise: 53-man rosters and full staffs for
// all 32 clubs, a random schedule, zeroed standings. The seed fixes every
// random draw that follows, so two franchises started from the same seed
// and played with the same inputs replay identically.
func Initialize(seed int64, userTeamID string) (*State, error) {
	if _, ok := league.TeamByID(userTeamID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, userTeamID)
	}

	r := rng.Derive(seed, "init")
	gen := generator.New(r)

	s := &State{
		Initialized:   true,
		Seed:          seed,
		UserTeamID:    userTeamID,
		CurrentSeason: 2026,
		CurrentWeek:   1,
		Phase:         league.PhaseRegular,
		Rosters:       make(map[string]league.Roster, len(league.Teams)),
		Staffs:        make(map[string]league.Staff, len(league.Teams)),
		Standings:     season.ResetStandings(),
		Training:      map[string]*progression.Program{},
	}

	for _, team := range league.Teams {
		s.Rosters[team.ID] = gen.Roster(team.ID)
		s.Staffs[team.ID] = gen.Staff(team.ID)
	}
	s.CoachPool = generateCoachPool(gen)
	s.Schedule = season.GenerateSchedule(r, s.CurrentSeason)

	return s, nil
}

// Clone deep-copies the state. Every operation works on a clone so a failed
// operation leaves the caller's state untouched.
func (s *State) Clone() *State {
	cp := *s

	cp.Rosters = make(map[string]league.Roster, len(s.Rosters))
	for id, roster := range s.Rosters {
		cp.Rosters[id] = roster.Clone()
	}
	cp.FreeAgents = s.FreeAgents.Clone()

	cp.Staffs = make(map[string]league.Staff, len(s.Staffs))
	for id, staff := range s.Staffs {
		cp.Staffs[id] = staff.Clone()
	}

	cp.CoachPool = make([]*league.Coach, len(s.CoachPool))
	for i, c := range s.CoachPool {
		cp.CoachPool[i] = c.Clone()
	}

	cp.Schedule = cloneGames(s.Schedule)

	cp.Standings = make(map[string]league.Standings, len(s.Standings))
	for id, st := range s.Standings {
		cp.Standings[id] = st
	}

	cp.Prospects = make([]*league.Prospect, len(s.Prospects))
	for i, p := range s.Prospects {
		pc := *p
		if p.Attributes != nil {
			pc.Attributes = make(map[string]int, len(p.Attributes))
			for k, v := range p.Attributes {
				pc.Attributes[k] = v
			}
		}
		cp.Prospects[i] = &pc
	}

	cp.DraftPicks = make([]*league.DraftPick, len(s.DraftPicks))
	for i, pk := range s.DraftPicks {
		pkc := *pk
		cp.DraftPicks[i] = &pkc
	}

	if s.Bracket != nil {
		cp.Bracket = cloneBracket(s.Bracket)
	}

	cp.History = append([]season.Record(nil), s.History...)
	cp.Awards = append([]season.Award(nil), s.Awards...)
	cp.TradeHistory = append([]*trades.Proposal(nil), s.TradeHistory...)

	cp.Training = make(map[string]*progression.Program, len(s.Training))
	for id, prog := range s.Training {
		pc := *prog
		cp.Training[id] = &pc
	}

	return &cp
}

func cloneGames(games []*league.Game) []*league.Game {
	out := make([]*league.Game, len(games))
	for i, g := range games {
		gc := *g
		out[i] = &gc
	}
	return out
}

func cloneBracket(b *season.Bracket) *season.Bracket {
	cp := &season.Bracket{
		Seeds:      make(map[string][]season.Seed, len(b.Seeds)),
		WildCard:   cloneGames(b.WildCard),
		Divisional: cloneGames(b.Divisional),
		Conference: cloneGames(b.Conference),
		Champion:   b.Champion,
	}
	for conf, seeds := range b.Seeds {
		cp.Seeds[conf] = append([]season.Seed(nil), seeds...)
	}
	if b.SuperBowl != nil {
		sb := *b.SuperBowl
		cp.SuperBowl = &sb
	}
	return cp
}

// rand derives the random stream for the next operation. Tick advances once
// per randomness-consuming operation, so replaying the same operations in
// the same order reproduces the same draws.
func (s *State) rand(label string) *rng.Rand {
	r := rng.Derive(s.Seed, label, fmt.Sprint(s.Tick))
	s.Tick++
	return r
}

// findPlayer looks a player up across all rosters.
func (s *State) findPlayer(playerID string) (*league.Player, string) {
	for teamID, roster := range s.Rosters {
		if p := roster.Find(playerID); p != nil {
			return p, teamID
		}
	}
	return nil, ""
}

func (s *State) check() error {
	if s == nil || !s.Initialized {
		return ErrNotInitialized
	}
	return nil
}
