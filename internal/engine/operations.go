package engine

import (
	"errors"
	"fmt"

	"github.com/jstittsworth/gridiron-gm/internal/contracts"
	"github.com/jstittsworth/gridiron-gm/internal/draft"
	"github.com/jstittsworth/gridiron-gm/internal/generator"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/progression"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
	"github.com/jstittsworth/gridiron-gm/internal/season"
	"github.com/jstittsworth/gridiron-gm/internal/trades"
)

var (
	// ErrNotOnClock is returned when a team drafts out of turn.
	ErrNotOnClock = errors.New("team is not on the clock")

	// ErrProspectNotFound is returned for unknown prospect ids.
	ErrProspectNotFound = errors.New("prospect not found")

	// ErrDraftComplete is returned once every pick has been spent.
	ErrDraftComplete = errors.New("draft is complete")
)

// AdvanceWeek moves the franchise forward one step of whatever phase it is
// in: a regular-season or playoff week of games, the remainder of the
// draft, or the AI free-agency period. Returns the new state and, for game
// weeks, the week's results.
func (s *State) AdvanceWeek() (*State, *season.WeekSummary, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	cp := s.Clone()

	switch cp.Phase {
	case league.PhaseRegular:
		return cp.advanceRegularWeek()
	case league.PhasePlayoffs:
		return cp.advancePlayoffWeek()
	case league.PhaseDraft:
		if err := cp.finishDraft(); err != nil {
			return nil, nil, err
		}
		return cp, nil, nil
	case league.PhaseFreeAgency:
		cp.finishFreeAgency()
		return cp, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", ErrWrongPhase, cp.Phase)
	}
}

func (s *State) advanceRegularWeek() (*State, *season.WeekSummary, error) {
	r := s.rand("week")

	games := season.WeekGames(s.Schedule, s.CurrentSeason, s.CurrentWeek)
	summary := season.SimulateWeek(r, games, s.Rosters, s.Staffs, s.Standings, s.CurrentSeason, s.CurrentWeek)
	s.tickTraining(r)
	s.CurrentWeek++

	if s.CurrentWeek > league.RegularSeasonWeeks {
		// Any game left unplayed from earlier weeks is resolved before
		// seeding, so the standings the bracket is built from are final.
		leftover := season.AutoResolve(r, s.Schedule, s.Rosters, s.Staffs, s.Standings, s.CurrentSeason, league.RegularSeasonWeeks)
		summary.Results = append(summary.Results, leftover.Results...)
		summary.Injuries = append(summary.Injuries, leftover.Injuries...)

		s.Phase = league.PhasePlayoffs
		s.Bracket = season.NewBracket(s.Standings, s.CurrentSeason)
		s.CurrentWeek = 1
	}
	return s, summary, nil
}

func (s *State) advancePlayoffWeek() (*State, *season.WeekSummary, error) {
	r := s.rand("playoffs")

	games := s.Bracket.NextGames(s.CurrentSeason)
	if len(games) == 0 {
		s.Bracket.SettleRound()
		if s.Bracket.Champion != "" {
			s.Phase = league.PhaseOffseason
		}
		return s, &season.WeekSummary{Week: s.CurrentWeek}, nil
	}

	// Playoff results never touch the regular-season standings.
	scratch := season.ResetStandings()
	summary := season.SimulateWeek(r, games, s.Rosters, s.Staffs, scratch, s.CurrentSeason, s.CurrentWeek)
	s.CurrentWeek++

	s.Bracket.SettleRound()
	if s.Bracket.Champion != "" {
		s.Phase = league.PhaseOffseason
	}
	return s, summary, nil
}

// tickTraining runs one week of every active training program.
func (s *State) tickTraining(r *rng.Rand) {
	for playerID, program := range s.Training {
		p, _ := s.findPlayer(playerID)
		if p == nil || !p.IsHealthy() {
			continue
		}
		progression.ApplyWeek(r, p, program)
		if program.Completed {
			delete(s.Training, playerID)
		}
	}
}

// OffseasonSummary reports what changed rolling into the new year.
type OffseasonSummary struct {
	Season     int              `json:"season"`
	Champion   string           `json:"champion,omitempty"`
	MVP        *season.Award    `json:"mvp,omitempty"`
	Retired    []*league.Player `json:"retired,omitempty"`
	FreeAgents int              `json:"new_free_agents"`
}

// AdvanceToNextSeason closes the books on the finished year and opens the
// next: awards and history are recorded while the stats still stand, then
// progression, retirement, coach development, and contract expiry run, and
// finally next year's prospects, coaching candidates, draft order, and
// schedule are generated.
// The new state lands in the draft phase.
func (s *State) AdvanceToNextSeason() (*State, *OffseasonSummary, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	if s.Phase != league.PhaseOffseason {
		return nil, nil, fmt.Errorf("%w: %s (want %s)", ErrWrongPhase, s.Phase, league.PhaseOffseason)
	}

	cp := s.Clone()
	r := cp.rand("offseason")

	summary := &OffseasonSummary{Season: cp.CurrentSeason}
	if cp.Bracket != nil {
		summary.Champion = cp.Bracket.Champion
	}

	var yearAwards []season.Award
	if mvp := season.MVP(cp.Rosters, cp.Standings); mvp != nil {
		yearAwards = append(yearAwards, *mvp)
		cp.Awards = append(cp.Awards, *mvp)
		summary.MVP = mvp
	}
	cp.History = append(cp.History, season.Snapshot(cp.CurrentSeason, cp.Standings, cp.Bracket, yearAwards)...)

	summary.Retired = season.ProgressRosters(r, cp.Rosters)
	season.ProgressStaffs(r, cp.Staffs)

	expired := season.ExpireContracts(cp.Rosters)
	cp.FreeAgents = append(cp.FreeAgents, expired...)
	summary.FreeAgents = len(expired)

	gen := generator.New(r)
	cp.CurrentSeason++
	cp.CoachPool = generateCoachPool(gen)
	cp.Prospects = gen.Prospects(cp.CurrentSeason)
	cp.DraftPicks = draft.Order(cp.Standings)
	cp.NextPick = 0
	cp.Schedule = season.GenerateSchedule(r, cp.CurrentSeason)
	cp.Standings = season.ResetStandings()
	cp.Bracket = nil
	cp.CurrentWeek = 1
	cp.Training = map[string]*progression.Program{}
	cp.Phase = league.PhaseDraft

	return cp, summary, nil
}

// SignFreeAgent presents an offer to a free agent on behalf of a team. The
// cap is checked before the player ever considers the deal; an offer the
// team cannot fit is refused with no roll.
func (s *State) SignFreeAgent(teamID, playerID string, offer contracts.Offer) (*State, *contracts.Evaluation, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	if _, ok := league.TeamByID(teamID); !ok {
		return nil, nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}

	cp := s.Clone()
	player := cp.FreeAgents.Find(playerID)
	if player == nil {
		return nil, nil, fmt.Errorf("%w: %s is not a free agent", ErrPlayerNotFound, playerID)
	}

	if offer.Salary > contracts.CapSpace(cp.Rosters[teamID]) {
		return nil, nil, fmt.Errorf("%w: offer %d exceeds cap space", contracts.ErrOverCap, offer.Salary)
	}

	eval := contracts.Evaluate(player, offer)
	if !eval.Accepted {
		return cp, &eval, nil
	}

	remaining, signed := cp.FreeAgents.Remove(playerID)
	cp.FreeAgents = remaining
	signed.TeamID = teamID
	signed.Contract = contracts.Build(offer, league.ContractFreeAgent)
	cp.Rosters[teamID] = append(cp.Rosters[teamID], signed)

	return cp, &eval, nil
}

// ReleasePlayer cuts a player, voiding the remaining contract years and
// placing him in the free-agent pool.
func (s *State) ReleasePlayer(teamID, playerID string) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	cp := s.Clone()
	remaining, released := cp.Rosters[teamID].Remove(playerID)
	if released == nil {
		return nil, fmt.Errorf("%w: %s on team %s", ErrPlayerNotFound, playerID, teamID)
	}
	cp.Rosters[teamID] = remaining

	released.TeamID = ""
	if released.Contract != nil {
		released.Contract.YearsLeft = 0
	}
	cp.FreeAgents = append(cp.FreeAgents, released)
	return cp, nil
}

// DraftPlayer spends the team's current pick on a prospect. Only legal in
// the draft phase and only when the named team is on the clock.
func (s *State) DraftPlayer(teamID, prospectID string) (*State, *league.Player, error) {
	if err := s.check(); err != nil {
		return nil, nil, err
	}
	if s.Phase != league.PhaseDraft {
		return nil, nil, fmt.Errorf("%w: %s (want %s)", ErrWrongPhase, s.Phase, league.PhaseDraft)
	}

	cp := s.Clone()
	if cp.NextPick >= len(cp.DraftPicks) {
		return nil, nil, ErrDraftComplete
	}

	pick := cp.DraftPicks[cp.NextPick]
	if pick.TeamID != teamID {
		return nil, nil, fmt.Errorf("%w: pick %d belongs to %s", ErrNotOnClock, pick.OverallPick, pick.TeamID)
	}

	prospect := cp.findProspect(prospectID)
	if prospect == nil {
		return nil, nil, fmt.Errorf("%w: %s", ErrProspectNotFound, prospectID)
	}

	player, err := draft.Select(pick, prospect, teamID)
	if err != nil {
		return nil, nil, err
	}
	cp.Rosters[teamID] = append(cp.Rosters[teamID], player)
	cp.NextPick++

	cp.runAIPicks()
	return cp, player, nil
}

// finishDraft auto-picks every remaining selection, the user's included,
// and moves on to free agency.
func (s *State) finishDraft() error {
	for s.NextPick < len(s.DraftPicks) {
		if err := s.aiPick(s.DraftPicks[s.NextPick]); err != nil {
			return err
		}
	}
	s.Phase = league.PhaseFreeAgency
	return nil
}

// runAIPicks advances AI selections until the user is back on the clock or
// the draft ends.
func (s *State) runAIPicks() {
	for s.NextPick < len(s.DraftPicks) {
		pick := s.DraftPicks[s.NextPick]
		if pick.TeamID == s.UserTeamID {
			return
		}
		if err := s.aiPick(pick); err != nil {
			return
		}
	}
	s.Phase = league.PhaseFreeAgency
}

func (s *State) aiPick(pick *league.DraftPick) error {
	prospect := draft.BestAvailable(s.Prospects)
	if prospect == nil {
		s.NextPick = len(s.DraftPicks)
		return nil
	}
	player, err := draft.Select(pick, prospect, pick.TeamID)
	if err != nil {
		return err
	}
	s.Rosters[pick.TeamID] = append(s.Rosters[pick.TeamID], player)
	s.NextPick++
	return nil
}

// finishFreeAgency lets every AI club shop the open market, then starts the
// regular season.
func (s *State) finishFreeAgency() {
	r := s.rand("freeagency")
	s.FreeAgents = season.RunAIFreeAgency(r, s.FreeAgents, s.Rosters, s.UserTeamID)
	s.Phase = league.PhaseRegular
	s.CurrentWeek = 1
}

// ProposeTrade submits a proposal to the receiving team's AI. The proposal
// is validated before evaluation; an invalid proposal never mutates state.
// When the AI accepts, the trade applies atomically.
func (s *State) ProposeTrade(proposal *trades.Proposal) (*State, bool, error) {
	if err := s.check(); err != nil {
		return nil, false, err
	}
	if err := trades.Validate(proposal, s.Rosters, s.DraftPicks); err != nil {
		return nil, false, err
	}

	cp := s.Clone()
	r := cp.rand("trade")
	if !trades.Evaluate(r, proposal, cp.Rosters, cp.DraftPicks) {
		return cp, false, nil
	}

	if err := trades.Execute(proposal, cp.Rosters, cp.DraftPicks); err != nil {
		return nil, false, err
	}
	proposal.Week = cp.CurrentWeek
	proposal.Season = cp.CurrentSeason
	cp.TradeHistory = append(cp.TradeHistory, proposal)
	return cp, true, nil
}

// ExecuteTrade applies an already-agreed trade without an AI evaluation,
// for deals the user accepted.
func (s *State) ExecuteTrade(proposal *trades.Proposal) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	cp := s.Clone()
	if err := trades.Execute(proposal, cp.Rosters, cp.DraftPicks); err != nil {
		return nil, err
	}
	proposal.Week = cp.CurrentWeek
	proposal.Season = cp.CurrentSeason
	cp.TradeHistory = append(cp.TradeHistory, proposal)
	return cp, nil
}

// ApplyTraining runs a one-shot training session on a rostered player.
// Quality runs 1-10.
func (s *State) ApplyTraining(playerID string, trainingType progression.TrainingType, quality int) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	cp := s.Clone()
	player, _ := cp.findPlayer(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	progression.ApplyTraining(player, trainingType, quality)
	return cp, nil
}

// AssignTraining starts a multi-week training program for a player, ticked
// each regular-season week.
func (s *State) AssignTraining(playerID string, trainingType progression.TrainingType, intensity progression.Intensity, weeks int) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}

	cp := s.Clone()
	player, _ := cp.findPlayer(playerID)
	if player == nil {
		return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerID)
	}
	cp.Training[playerID] = progression.NewProgram(playerID, trainingType, intensity, weeks)
	return cp, nil
}

func (s *State) findProspect(id string) *league.Prospect {
	for _, p := range s.Prospects {
		if p.ID == id {
			return p
		}
	}
	return nil
}
