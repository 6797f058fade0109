package services

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jstittsworth/gridiron-gm/internal/contracts"
	"github.com/jstittsworth/gridiron-gm/internal/engine"
	"github.com/jstittsworth/gridiron-gm/internal/league"
	"github.com/jstittsworth/gridiron-gm/internal/models"
	"github.com/jstittsworth/gridiron-gm/internal/progression"
	"github.com/jstittsworth/gridiron-gm/internal/season"
	"github.com/jstittsworth/gridiron-gm/internal/trades"
)

const stateCacheTTL = 10 * time.Minute

// FranchiseService runs engine operations against persisted saves. The
// engine itself is pure; this layer owns loading state, swapping in the
// successor state, caching the snapshot, and broadcasting what happened.
// The mutex serializes writes per process: operations are fast and the
// engine's immutability makes retries safe, so one lock is enough.
type FranchiseService struct {
	store *SaveStore
	cache *CacheService
	hub   *WebSocketHub
	mu    sync.Mutex
}

func NewFranchiseService(store *SaveStore, cache *CacheService, hub *WebSocketHub) *FranchiseService {
	return &FranchiseService{store: store, cache: cache, hub: hub}
}

// CreateSave starts a new franchise and persists it as a fresh save slot.
func (s *FranchiseService) CreateSave(ctx context.Context, name, teamID string, seed int64) (*models.Save, *engine.State, error) {
	state, err := engine.Initialize(seed, teamID)
	if err != nil {
		return nil, nil, err
	}

	save, err := s.store.Create(name, state)
	if err != nil {
		return nil, nil, err
	}
	s.cacheState(ctx, save.ID, state)

	logrus.WithFields(logrus.Fields{
		"save": save.ID,
		"team": teamID,
	}).Info("new franchise started")
	return save, state, nil
}

// State loads a save's current state, preferring the cache.
func (s *FranchiseService) State(ctx context.Context, saveID uint) (*engine.State, error) {
	var cached engine.State
	if err := s.cache.Get(ctx, StateCacheKey(saveID), &cached); err == nil && cached.Initialized {
		return &cached, nil
	}
	return s.store.Load(saveID)
}

// Saves lists all save slots.
func (s *FranchiseService) Saves() ([]models.Save, error) {
	return s.store.List()
}

// DeleteSave removes a slot and its cached snapshot.
func (s *FranchiseService) DeleteSave(ctx context.Context, saveID uint) error {
	if err := s.store.Delete(saveID); err != nil {
		return err
	}
	return s.cache.Delete(ctx, StateCacheKey(saveID))
}

// AdvanceWeek advances a save one step and publishes the results.
func (s *FranchiseService) AdvanceWeek(ctx context.Context, saveID uint) (*engine.State, *season.WeekSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, nil, err
	}

	next, summary, err := state.AdvanceWeek()
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, nil, err
	}

	if summary != nil && len(summary.Results) > 0 {
		s.cache.Set(ctx, WeekResultsCacheKey(saveID, next.CurrentSeason, summary.Week), summary, stateCacheTTL)
		s.hub.Broadcast(Event{Type: "week_results", SaveID: saveID, Payload: summary})
	}
	return next, summary, nil
}

// AdvanceSeason rolls a save into the next season.
func (s *FranchiseService) AdvanceSeason(ctx context.Context, saveID uint) (*engine.State, *engine.OffseasonSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, nil, err
	}

	next, summary, err := state.AdvanceToNextSeason()
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, nil, err
	}

	s.hub.Broadcast(Event{Type: "new_season", SaveID: saveID, Payload: summary})
	return next, summary, nil
}

// SignFreeAgent presents an offer; the state only changes when the player
// accepts.
func (s *FranchiseService) SignFreeAgent(ctx context.Context, saveID uint, teamID, playerID string, offer contracts.Offer) (*engine.State, *contracts.Evaluation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, nil, err
	}

	next, eval, err := state.SignFreeAgent(teamID, playerID, offer)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, nil, err
	}
	return next, eval, nil
}

// ReleasePlayer cuts a player into free agency.
func (s *FranchiseService) ReleasePlayer(ctx context.Context, saveID uint, teamID, playerID string) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.ReleasePlayer(teamID, playerID)
	})
}

// DraftPlayer spends the save's current pick.
func (s *FranchiseService) DraftPlayer(ctx context.Context, saveID uint, teamID, prospectID string) (*engine.State, *league.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, nil, err
	}

	next, player, err := state.DraftPlayer(teamID, prospectID)
	if err != nil {
		return nil, nil, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, nil, err
	}
	return next, player, nil
}

// ProposeTrade submits a proposal to the AI and applies it when accepted.
func (s *FranchiseService) ProposeTrade(ctx context.Context, saveID uint, proposal *trades.Proposal) (*engine.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, false, err
	}

	next, accepted, err := state.ProposeTrade(proposal)
	if err != nil {
		return nil, false, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, false, err
	}

	if accepted {
		s.hub.Broadcast(Event{Type: "trade", SaveID: saveID, Payload: proposal})
	}
	return next, accepted, nil
}

// ExecuteTrade applies a deal the user already agreed to.
func (s *FranchiseService) ExecuteTrade(ctx context.Context, saveID uint, proposal *trades.Proposal) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.ExecuteTrade(proposal)
	})
}

// ApplyTraining runs a one-shot training session.
func (s *FranchiseService) ApplyTraining(ctx context.Context, saveID uint, playerID string, trainingType progression.TrainingType, quality int) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.ApplyTraining(playerID, trainingType, quality)
	})
}

// AssignTraining starts a multi-week program for a player.
func (s *FranchiseService) AssignTraining(ctx context.Context, saveID uint, playerID string, trainingType progression.TrainingType, intensity progression.Intensity, weeks int) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.AssignTraining(playerID, trainingType, intensity, weeks)
	})
}

// CoachMarket returns the current hiring pool for a staff role.
func (s *FranchiseService) CoachMarket(ctx context.Context, saveID uint, role league.CoachRole) ([]*league.Coach, error) {
	state, err := s.State(ctx, saveID)
	if err != nil {
		return nil, err
	}
	return state.CoachMarket(role)
}

// HireCoach fills a staff slot from the hiring pool.
func (s *FranchiseService) HireCoach(ctx context.Context, saveID uint, teamID string, role league.CoachRole, coachID string) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.HireCoach(teamID, role, coachID)
	})
}

// FireCoach vacates a staff slot.
func (s *FranchiseService) FireCoach(ctx context.Context, saveID uint, teamID string, role league.CoachRole) (*engine.State, error) {
	return s.mutate(ctx, saveID, func(state *engine.State) (*engine.State, error) {
		return state.FireCoach(teamID, role)
	})
}

// mutate is the common load-transform-persist path for simple operations.
func (s *FranchiseService) mutate(ctx context.Context, saveID uint, op func(*engine.State) (*engine.State, error)) (*engine.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.store.Load(saveID)
	if err != nil {
		return nil, err
	}

	next, err := op(state)
	if err != nil {
		return nil, err
	}
	if err := s.persist(ctx, saveID, next); err != nil {
		return nil, err
	}
	return next, nil
}

func (s *FranchiseService) persist(ctx context.Context, saveID uint, state *engine.State) error {
	if err := s.store.Update(saveID, state); err != nil {
		return err
	}
	s.cacheState(ctx, saveID, state)
	return nil
}

func (s *FranchiseService) cacheState(ctx context.Context, saveID uint, state *engine.State) {
	if err := s.cache.Set(ctx, StateCacheKey(saveID), state, stateCacheTTL); err != nil {
		logrus.WithError(err).Warn("failed to cache state snapshot")
	}
}
