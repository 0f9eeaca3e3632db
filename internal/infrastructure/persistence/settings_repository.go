package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/finopenpos/backend/internal/domain/settings"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPosConfigRepository implements settings.PosConfigRepository using GORM
type GormPosConfigRepository struct {
	db *gorm.DB
}

// NewGormPosConfigRepository creates a new GormPosConfigRepository
func NewGormPosConfigRepository(db *gorm.DB) *GormPosConfigRepository {
	return &GormPosConfigRepository{db: db}
}

// FindByOwner loads the configuration document for one owner
func (r *GormPosConfigRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*settings.PosConfig, error) {
	var model models.PosConfigModel
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &settings.PosConfig{
		OwnerID:   model.OwnerID,
		Document:  json.RawMessage(model.Document),
		UpdatedAt: model.UpdatedAt,
	}, nil
}

// Save upserts the configuration document for one owner
func (r *GormPosConfigRepository) Save(ctx context.Context, config *settings.PosConfig) error {
	model := &models.PosConfigModel{
		OwnerID:   config.OwnerID,
		Document:  string(config.Document),
		UpdatedAt: config.UpdatedAt,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_at"}),
		}).
		Create(model).Error
}
