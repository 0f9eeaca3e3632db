package models

import (
	"time"

	"github.com/google/uuid"
)

// PosConfigModel stores one POS configuration document per owner as a
// JSON blob, replacing the browser-side finopenpos_config storage.
type PosConfigModel struct {
	OwnerID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Document  string    `gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PosConfigModel) TableName() string {
	return "pos_configs"
}
