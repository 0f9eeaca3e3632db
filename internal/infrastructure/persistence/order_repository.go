package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormOrderRepository implements sales.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByIDForOwner finds an order with its line items
func (r *GormOrderRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*sales.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
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

// FindAllForOwner lists orders for an owner with pagination
func (r *GormOrderRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]sales.Order, error) {
	var orderModels []models.OrderModel
	query := r.applyFilter(r.db.WithContext(ctx), ownerID, filter).
		Preload("Items").
		Order(orderClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.PageSize)

	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]sales.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// CountForOwner counts orders matching the filter
func (r *GormOrderRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	err := r.applyFilter(r.db.WithContext(ctx).Model(&models.OrderModel{}), ownerID, filter).
		Count(&count).Error
	return count, err
}

// FindInRangeForOwner returns orders created in [from, to), oldest first.
// Used by the reporting aggregators.
func (r *GormOrderRepository) FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]sales.Order, error) {
	var orderModels []models.OrderModel
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND created_at >= ? AND created_at < ?", ownerID, from, to).
		Order("created_at ASC").
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}

	orders := make([]sales.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = *model.ToDomain()
	}
	return orders, nil
}

// Create inserts the order header and its line items in one transaction
func (r *GormOrderRepository) Create(ctx context.Context, order *sales.Order) error {
	model := models.OrderModelFromDomain(order)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}

// CreateWithTransaction inserts the order header, its line items and the
// cash-sale ledger row together. Any insert failing rolls back all of
// them, so an order can never exist without its income record.
func (r *GormOrderRepository) CreateWithTransaction(ctx context.Context, order *sales.Order, transaction *finance.Transaction) error {
	orderModel := models.OrderModelFromDomain(order)
	txModel := models.TransactionModelFromDomain(transaction)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(orderModel).Error; err != nil {
			return err
		}
		return tx.Create(txModel).Error
	})
}

func (r *GormOrderRepository) applyFilter(query *gorm.DB, ownerID uuid.UUID, filter shared.Filter) *gorm.DB {
	query = query.Where("owner_id = ?", ownerID)

	if method, ok := filter.Filters["payment_method"].(string); ok && method != "" {
		query = query.Where("payment_method = ?", method)
	}
	if credit, ok := filter.Filters["credit"].(bool); ok {
		query = query.Where("is_credit_sale = ?", credit)
	}
	if customerID, ok := filter.Filters["customer_id"].(string); ok && customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	return query
}
