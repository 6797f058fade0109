package models

import (
	"time"

	"gorm.io/datatypes"
)

// Save is one franchise save slot. The full engine state is stored as a
// JSON blob; the summary columns exist so save lists don't have to decode
// every blob.
type Save struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	UserTeamID string         `gorm:"not null;index" json:"user_team_id"`
	Season     int            `json:"season"`
	Week       int            `json:"week"`
	Phase      string         `json:"phase"`
	State      datatypes.JSON `gorm:"not null" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Save) TableName() string {
	return "saves"
}
