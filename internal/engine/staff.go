package engine

import (
	"errors"
	"fmt"

	"github.com/jstittsworth/gridiron-gm/internal/generator"
	"github.com/jstittsworth/gridiron-gm/internal/league"
)

var (
	// ErrCoachNotFound is returned when a coach id is not in the hiring
	// pool or a staff slot is already vacant.
	ErrCoachNotFound = errors.New("coach not found")

	// ErrUnknownRole is returned for role strings outside HC/OC/DC/STC.
	ErrUnknownRole = errors.New("unknown coach role")
)

const coachPoolPerRole = 5

var coachRoles = []league.CoachRole{
	league.HeadCoach,
	league.OffensiveCoordinator,
	league.DefensiveCoordinator,
	league.SpecialTeamsCoord,
}

func validCoachRole(role league.CoachRole) bool {
	for _, r := range coachRoles {
		if r == role {
			return true
		}
	}
	return false
}

// generateCoachPool builds the league-wide hiring pool, a handful of
// unattached candidates per role. Hired coaches leave the pool; it refills
// each offseason.
func generateCoachPool(gen *generator.Generator) []*league.Coach {
	var pool []*league.Coach
	for _, role := range coachRoles {
		pool = append(pool, gen.AvailableCoaches(role, coachPoolPerRole)...)
	}
	return pool
}

// CoachMarket returns the unattached candidates for one role.
func (s *State) CoachMarket(role league.CoachRole) ([]*league.Coach, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if !validCoachRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	var out []*league.Coach
	for _, c := range s.CoachPool {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out, nil
}

// HireCoach fills a staff slot from the hiring pool, replacing any
// incumbent. The hired coach leaves the pool; the incumbent leaves the
// league.
func (s *State) HireCoach(teamID string, role league.CoachRole, coachID string) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if _, ok := league.TeamByID(teamID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	if !validCoachRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}

	cp := s.Clone()
	var hired *league.Coach
	for i, c := range cp.CoachPool {
		if c.ID == coachID && c.Role == role {
			hired = c
			cp.CoachPool = append(cp.CoachPool[:i], cp.CoachPool[i+1:]...)
			break
		}
	}
	if hired == nil {
		return nil, fmt.Errorf("%w: %s", ErrCoachNotFound, coachID)
	}

	hired.TeamID = teamID
	cp.Staffs[teamID][role] = hired
	return cp, nil
}

// FireCoach vacates a staff slot. The team plays without that coach's
// bonus until a replacement is hired.
func (s *State) FireCoach(teamID string, role league.CoachRole) (*State, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	if _, ok := league.TeamByID(teamID); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, teamID)
	}
	if !validCoachRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRole, role)
	}
	if s.Staffs[teamID][role] == nil {
		return nil, fmt.Errorf("%w: no %s on staff", ErrCoachNotFound, role)
	}

	cp := s.Clone()
	delete(cp.Staffs[teamID], role)
	return cp, nil
}
