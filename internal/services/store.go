package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jstittsworth/gridiron-gm/internal/engine"
	"github.com/jstittsworth/gridiron-gm/internal/models"
	"github.com/jstittsworth/gridiron-gm/pkg/database"
)

// ErrNoSave is returned when a save slot does not exist or its state blob
// cannot be decoded. A corrupted blob is deliberately indistinguishable
// from a missing save: the caller starts fresh instead of crashing.
var ErrNoSave = errors.New("no usable save")

// SaveStore persists engine state into save slots.
type SaveStore struct {
	db *database.DB
}

func NewSaveStore(db *database.DB) (*SaveStore, error) {
	if err := db.AutoMigrate(&models.Save{}); err != nil {
		return nil, fmt.Errorf("failed to migrate saves table: %w", err)
	}
	return &SaveStore{db: db}, nil
}

// Create opens a new save slot for the given state.
func (s *SaveStore) Create(name string, state *engine.State) (*models.Save, error) {
	blob, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize state: %w", err)
	}

	save := &models.Save{
		Name:       name,
		UserTeamID: state.UserTeamID,
		Season:     state.CurrentSeason,
		Week:       state.CurrentWeek,
		Phase:      string(state.Phase),
		State:      blob,
	}
	if err := s.db.Create(save).Error; err != nil {
		return nil, fmt.Errorf("failed to create save: %w", err)
	}
	return save, nil
}

// Load reads a save slot's state. A missing row or an undecodable blob
// both come back as ErrNoSave.
func (s *SaveStore) Load(id uint) (*engine.State, error) {
	var save models.Save
	if err := s.db.First(&save, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoSave
		}
		return nil, fmt.Errorf("failed to load save %d: %w", id, err)
	}

	var state engine.State
	if err := json.Unmarshal(save.State, &state); err != nil {
		logrus.WithError(err).WithField("save", id).Warn("corrupted save state, treating as no save")
		return nil, ErrNoSave
	}
	if !state.Initialized {
		return nil, ErrNoSave
	}
	return &state, nil
}

// Update writes the new state back into an existing slot.
func (s *SaveStore) Update(id uint, state *engine.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	updates := map[string]any{
		"state":  blob,
		"season": state.CurrentSeason,
		"week":   state.CurrentWeek,
		"phase":  string(state.Phase),
	}
	result := s.db.Model(&models.Save{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update save %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNoSave
	}
	return nil
}

// List returns every save slot, newest first, without decoding state blobs.
func (s *SaveStore) List() ([]models.Save, error) {
	var saves []models.Save
	if err := s.db.Order("updated_at desc").Find(&saves).Error; err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}
	// The blob stays on the row; strip it from listings.
	for i := range saves {
		saves[i].State = nil
	}
	return saves, nil
}

// Delete removes a save slot.
func (s *SaveStore) Delete(id uint) error {
	if err := s.db.Delete(&models.Save{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete save %d: %w", id, err)
	}
	return nil
}
