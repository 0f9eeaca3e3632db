package settings

import (
	"context"
	"encoding/json"
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PosConfig is the per-owner point-of-sale configuration document.
// The document is schemaless JSON so the frontend can evolve its
// settings shape without server migrations.
type PosConfig struct {
	OwnerID   uuid.UUID
	Document  json.RawMessage
	UpdatedAt time.Time
}

// DefaultDocument is what an owner sees before saving any settings
const DefaultDocument = `{}`

// NewPosConfig creates an empty configuration for the owner
func NewPosConfig(ownerID uuid.UUID) *PosConfig {
	return &PosConfig{
		OwnerID:   ownerID,
		Document:  json.RawMessage(DefaultDocument),
		UpdatedAt: time.Now(),
	}
}

// Replace swaps the document after checking it is valid JSON
func (c *PosConfig) Replace(document json.RawMessage) error {
	if !json.Valid(document) {
		return shared.NewValidationError("Configuration document is not valid JSON")
	}
	c.Document = document
	c.UpdatedAt = time.Now()
	return nil
}

// PosConfigRepository defines the persistence operations for POS
// configuration documents
type PosConfigRepository interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*PosConfig, error)
	Save(ctx context.Context, config *PosConfig) error
}
