package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRepository implements finance.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindByIDForOwner finds a ledger row by ID
func (r *GormTransactionRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Transaction, error) {
	var model models.TransactionModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForOwner lists ledger rows for an owner with pagination
func (r *GormTransactionRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	var txModels []models.TransactionModel
	query := r.applyFilter(r.db.WithContext(ctx), ownerID, filter).
		Order(orderClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.PageSize)

	if err := query.Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, len(txModels))
	for i, model := range txModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

// CountForOwner counts ledger rows matching the filter
func (r *GormTransactionRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.TransactionModel{}), ownerID, filter).
		Count(&count).Error
	return count, err
}

// Save inserts a ledger row. The ledger is append-only.
func (r *GormTransactionRepository) Save(ctx context.Context, tx *finance.Transaction) error {
	model := models.TransactionModelFromDomain(tx)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindInRangeForOwner lists ledger rows in [from, to), oldest first
func (r *GormTransactionRepository) FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time, filter finance.TransactionFilter, excludeOrderLinked bool) ([]finance.Transaction, error) {
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to)

	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if excludeOrderLinked {
		query = query.Where("order_id IS NULL")
	}

	var txModels []models.TransactionModel
	if err := query.Order("created_at ASC").Find(&txModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]finance.Transaction, len(txModels))
	for i, model := range txModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, nil
}

func (r *GormTransactionRepository) applyFilter(query *gorm.DB, ownerID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("owner_id = ?", ownerID)

	if filter.Search != "" {
		query = query.Where("description LIKE ?", "%"+filter.Search+"%")
	}
	if txType, ok := filter.Filters["type"].(string); ok && txType != "" {
		query = query.Where("type = ?", txType)
	}
	if category, ok := filter.Filters["category"].(string); ok && category != "" {
		query = query.Where("category = ?", category)
	}
	return query
}
