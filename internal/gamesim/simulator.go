// Package gamesim resolves single plays, chains them into drives, and chains
// drives into a full four-quarter game between two rosters.
//
// The field is an abstract 0-100 yard line where 0 is the offense's own goal
// line and 100 the opponent endzone. Drives start at the 25 and end on a
// score, turnover, punt, or the 15-play ceiling, so every game terminates.
package gamesim

import (
	"fmt"
	"math"

	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/rng"
)

const (
	driveStartYardLine = 25
	maxPlaysPerDrive   = 15
	quarters           = 4
)

// Result is a fully resolved game: final score, play-by-play, and per-player
// stat lines for the orchestrator to merge into season totals.
type Result struct {
	Game        league.Game                   `json:"game"`
	PlayByPlay  []Play                        `json:"play_by_play"`
	PlayerStats map[string]league.SeasonStats `json:"player_stats"`
	Overtime    bool                          `json:"overtime"`
}

// Simulator resolves games from a seeded random source. One Simulator
// resolves one game; it is not safe for concurrent use.
type Simulator struct {
	rand  *rng.Rand
	stats map[string]*league.SeasonStats

	// last actors on the current snap, so a touchdown credits the same
	// players named in the play description
	lastCarrier  *league.Player
	lastQB       *league.Player
	lastReceiver *league.Player
}

func New(r *rng.Rand) *Simulator {
	return &Simulator{rand: r, stats: make(map[string]*league.SeasonStats)}
}

// side bundles everything the simulator needs about one team.
type side struct {
	teamID   string
	roster   league.Roster
	strength float64
}

// TeamStrength is the mean overall of healthy roster members plus the
// coaching adjustment. An empty or fully injured roster rates a neutral 65.
func TeamStrength(roster league.Roster, staff league.Staff) float64 {
	total, healthy := 0, 0
	for _, p := range roster {
		if p.IsHealthy() {
			total += p.Overall
			healthy++
		}
	}
	base := 65.0
	if healthy > 0 {
		base = float64(total) / float64(healthy)
	}
	return base + StaffImpact(staff)
}

// StaffImpact converts a coaching staff into a strength adjustment: the head
// coach carries 60% of the weight, coordinators 40%, centered on a rating of
// 70 and scaled down by 10.
func StaffImpact(staff league.Staff) float64 {
	hc := staff[league.HeadCoach]
	if hc == nil {
		return 0
	}
	hcAvg := float64(hc.Attributes.Offense+hc.Attributes.Defense+hc.Attributes.Motivation) / 3

	coordTotal, coordCount := 0.0, 0
	if oc := staff[league.OffensiveCoordinator]; oc != nil {
		coordTotal += float64(oc.Attributes.Offense)
		coordCount++
	}
	if dc := staff[league.DefensiveCoordinator]; dc != nil {
		coordTotal += float64(dc.Attributes.Defense)
		coordCount++
	}
	if stc := staff[league.SpecialTeamsCoord]; stc != nil {
		coordTotal += float64(stc.Attributes.Offense+stc.Attributes.Defense) / 2
		coordCount++
	}
	coordAvg := 70.0
	if coordCount > 0 {
		coordAvg = coordTotal / float64(coordCount)
	}
	return (hcAvg*0.6 + coordAvg*0.4 - 70) / 10
}

// SimulateGame resolves the given schedule entry to a final score. If the
// score is level after four quarters exactly one sudden-death overtime
// possession is played; a defensive stop there leaves the game a tie.
func (s *Simulator) SimulateGame(game league.Game, home, away league.Roster, homeStaff, awayStaff league.Staff) *Result {
	h := side{teamID: game.HomeTeam, roster: home, strength: TeamStrength(home, homeStaff)}
	a := side{teamID: game.AwayTeam, roster: away, strength: TeamStrength(away, awayStaff)}

	res := &Result{Game: game}

	homeScore, awayScore := 0, 0
	for q := 1; q <= quarters; q++ {
		possessions := 4 + s.rand.Intn(3)
		for i := 0; i < possessions; i++ {
			off, def := h, a
			if i%2 == 1 {
				off, def = a, h
			}
			points, plays := s.drive(q, off, def)
			res.PlayByPlay = append(res.PlayByPlay, plays...)
			if off.teamID == h.teamID {
				homeScore += points
			} else {
				awayScore += points
			}
		}
	}

	if homeScore == awayScore {
		res.Overtime = true
		off, def := h, a
		if s.rand.Chance(0.5) {
			off, def = a, h
		}
		points, plays := s.drive(quarters+1, off, def)
		res.PlayByPlay = append(res.PlayByPlay, plays...)
		if off.teamID == h.teamID {
			homeScore += points
		} else {
			awayScore += points
		}
	}

	s.creditAppearances(home)
	s.creditAppearances(away)

	res.Game.HomeScore = homeScore
	res.Game.AwayScore = awayScore
	res.Game.Played = true
	res.PlayerStats = make(map[string]league.SeasonStats, len(s.stats))
	for id, st := range s.stats {
		res.PlayerStats[id] = *st
	}
	return res
}

// drive runs one possession to its terminal state and returns points scored.
func (s *Simulator) drive(quarter int, off, def side) (int, []Play) {
	var plays []Play
	yardLine := driveStartYardLine
	down, yardsToGo := 1, 10
	points := 0

	for playCount := 0; playCount < maxPlaysPerDrive && yardLine < 100 && down <= 4; playCount++ {
		play := s.play(quarter, down, yardsToGo, yardLine, off, def)
		plays = append(plays, play)

		switch play.Result {
		case ResultTouchdown:
			points += 6
			xp := s.rand.Chance(0.95)
			xpPlay := Play{Quarter: quarter, Offense: off.teamID, Type: PlayExtraPoint, Description: "Extra point is good!"}
			if xp {
				points++
			} else {
				xpPlay.Type = PlayMissedXP
				xpPlay.Description = "Extra point is NO GOOD!"
			}
			plays = append(plays, xpPlay)
			return points, plays
		case ResultFieldGoal:
			distance := 100 - yardLine + 17
			chance := math.Max(0.3, math.Min(0.99, 1-float64(distance-30)/80))
			kicker := s.pickHealthy(off.roster, league.K)
			if kicker != nil {
				s.stat(kicker.ID).FieldGoalsAtt++
			}
			if s.rand.Chance(chance) {
				points += 3
				plays[len(plays)-1].Description += fmt.Sprintf(" %d yards - GOOD!", distance)
				if kicker != nil {
					s.stat(kicker.ID).FieldGoalsMade++
				}
			} else {
				plays[len(plays)-1].Description += fmt.Sprintf(" %d yards - NO GOOD!", distance)
			}
			return points, plays
		case ResultTurnover, ResultPunt:
			return points, plays
		default:
			yardLine += play.Yards
			yardsToGo -= play.Yards
			if yardsToGo <= 0 {
				down, yardsToGo = 1, 10
			} else {
				down++
			}
			if down > 4 {
				// Turnover on downs.
				return points, plays
			}
		}
	}
	return points, plays
}

// play resolves one snap given down, distance, and field position.
func (s *Simulator) play(quarter, down, yardsToGo, yardLine int, off, def side) Play {
	strengthDiff := off.strength - def.strength

	play := Play{
		Quarter:   quarter,
		Down:      down,
		YardsToGo: yardsToGo,
		YardLine:  yardLine,
		Offense:   off.teamID,
	}

	if down == 4 {
		if yardLine > 60 && yardLine < 97 {
			play.Type = PlayFieldGoal
			play.Result = ResultFieldGoal
			play.Description = "Field goal attempt"
		} else {
			play.Type = PlayPunt
			play.Result = ResultPunt
			play.Description = "Punt"
		}
		return play
	}

	if s.rand.Chance(0.4) {
		s.resolveRun(&play, yardsToGo, strengthDiff, off, def)
	} else {
		s.resolvePass(&play, yardsToGo, strengthDiff, off, def)
	}

	if yardLine+play.Yards >= 100 {
		play.Yards = 100 - yardLine
		play.Result = ResultTouchdown
		s.creditTouchdown(&play, off)
	}
	return play
}

func (s *Simulator) resolveRun(play *Play, yardsToGo int, strengthDiff float64, off, def side) {
	carrier := s.pickHealthy(off.roster, league.RB, league.FB)
	s.lastCarrier = carrier

	if s.rand.Chance(0.02) {
		play.Type = PlayFumble
		play.Result = ResultTurnover
		play.Description = fmt.Sprintf("%s fumbles! Recovered by defense", lastName(carrier, "RB"))
		return
	}

	base := 3 + strengthDiff/10
	yards := int(math.Round(base + s.rand.Uniform(-4, 4)))
	if yards < -3 {
		yards = -3
	}

	play.Type = PlayRun
	play.Yards = yards
	if yards >= yardsToGo {
		play.Result = ResultFirstDown
	} else {
		play.Result = ResultGain
	}
	play.Description = fmt.Sprintf("%s runs for %+d yards", lastName(carrier, "RB"), yards)

	if carrier != nil {
		s.stat(carrier.ID).RushingYards += yards
	}
	s.creditTackle(def)
}

func (s *Simulator) resolvePass(play *Play, yardsToGo int, strengthDiff float64, off, def side) {
	qb := s.pickHealthy(off.roster, league.QB)
	s.lastQB = qb
	short := s.rand.Chance(0.5)

	if s.rand.Chance(0.08) {
		play.Type = PlaySack
		play.Result = ResultSack
		play.Yards = -5 - s.rand.Intn(5)
		play.Description = fmt.Sprintf("%s sacked for %d yards", lastName(qb, "QB"), play.Yards)
		if sacker := s.pickHealthy(def.roster, league.DE, league.LB, league.DT); sacker != nil {
			s.stat(sacker.ID).Sacks++
		}
		return
	}
	if s.rand.Chance(0.03) {
		play.Type = PlayInterception
		play.Result = ResultTurnover
		play.Description = fmt.Sprintf("%s intercepted!", lastName(qb, "QB"))
		if qb != nil {
			s.stat(qb.ID).Interceptions++
		}
		if defender := s.pickHealthy(def.roster, league.CB, league.S, league.LB); defender != nil {
			s.stat(defender.ID).Picked++
		}
		return
	}

	if short {
		play.Type = PlayShortPass
	} else {
		play.Type = PlayMediumPass
	}

	receiver := s.pickHealthy(off.roster, league.WR, league.TE)
	s.lastReceiver = receiver
	completion := 0.6 + strengthDiff/100
	if !s.rand.Chance(completion) {
		play.Result = ResultIncomplete
		play.Description = fmt.Sprintf("%s pass incomplete to %s", lastName(qb, "QB"), lastName(receiver, "WR"))
		return
	}

	base := 7.0
	if !short {
		base = 15.0
	}
	yards := int(math.Round(math.Max(0, base+s.rand.Uniform(-5, 5))))

	play.Yards = yards
	if yards >= yardsToGo {
		play.Result = ResultFirstDown
	} else {
		play.Result = ResultGain
	}
	play.Description = fmt.Sprintf("%s pass to %s for %d yards", lastName(qb, "QB"), lastName(receiver, "WR"), yards)

	if qb != nil {
		s.stat(qb.ID).PassingYards += yards
	}
	if receiver != nil {
		rs := s.stat(receiver.ID)
		rs.ReceivingYards += yards
		rs.Receptions++
	}
	s.creditTackle(def)
}

func (s *Simulator) creditTouchdown(play *Play, off side) {
	play.Description += " - TOUCHDOWN!"
	switch play.Type {
	case PlayRun:
		if s.lastCarrier != nil {
			s.stat(s.lastCarrier.ID).RushingTDs++
		}
	case PlayShortPass, PlayMediumPass:
		if s.lastQB != nil {
			s.stat(s.lastQB.ID).PassingTDs++
		}
		if s.lastReceiver != nil {
			s.stat(s.lastReceiver.ID).ReceivingTDs++
		}
	}
}

func (s *Simulator) creditTackle(def side) {
	if tackler := s.pickHealthy(def.roster, league.DefensivePositions...); tackler != nil {
		s.stat(tackler.ID).Tackles++
	}
}

func (s *Simulator) creditAppearances(roster league.Roster) {
	for _, p := range roster {
		if p.IsHealthy() {
			s.stat(p.ID).GamesPlayed = 1
		}
	}
}

// pickHealthy returns a random healthy player at any of the given
// positions, preferring earlier positions; nil if none dressed.
func (s *Simulator) pickHealthy(roster league.Roster, positions ...league.Position) *league.Player {
	for _, pos := range positions {
		var candidates []*league.Player
		for _, p := range roster {
			if p.Position == pos && p.IsHealthy() {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) > 0 {
			return candidates[s.rand.Intn(len(candidates))]
		}
	}
	return nil
}

func (s *Simulator) stat(playerID string) *league.SeasonStats {
	st, ok := s.stats[playerID]
	if !ok {
		st = &league.SeasonStats{}
		s.stats[playerID] = st
	}
	return st
}

func lastName(p *league.Player, fallback string) string {
	if p == nil {
		return fallback
	}
	return p.LastName
}
