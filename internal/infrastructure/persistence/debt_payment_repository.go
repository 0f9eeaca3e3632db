package persistence

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/finopenpos/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDebtPaymentRepository implements partner.DebtPaymentRepository using GORM
type GormDebtPaymentRepository struct {
	db *gorm.DB
}

// NewGormDebtPaymentRepository creates a new GormDebtPaymentRepository
func NewGormDebtPaymentRepository(db *gorm.DB) *GormDebtPaymentRepository {
	return &GormDebtPaymentRepository{db: db}
}

// FindAllForCustomer lists payments for one customer, newest first
func (r *GormDebtPaymentRepository) FindAllForCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]partner.DebtPayment, error) {
	var paymentModels []models.DebtPaymentModel
	query := r.db.WithContext(ctx).
		Where("owner_id = ? AND customer_id = ?", ownerID, customerID).
		Order(orderClause(filter)).
		Offset(filter.Offset()).
		Limit(filter.PageSize)

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]partner.DebtPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save inserts a payment record
func (r *GormDebtPaymentRepository) Save(ctx context.Context, payment *partner.DebtPayment) error {
	model := models.DebtPaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Create(model).Error
}

// SaveWithDebtUpdate inserts the payment row and writes the reduced
// debt back to the customer in one database transaction, so a crash
// between the two writes cannot leave a payment without its debt
// reduction.
func (r *GormDebtPaymentRepository) SaveWithDebtUpdate(ctx context.Context, payment *partner.DebtPayment, newDebt decimal.Decimal) error {
	if newDebt.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Debt cannot go negative")
	}

	model := models.DebtPaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		result := tx.Model(&models.CustomerModel{}).
			Where("owner_id = ? AND id = ?", payment.OwnerID, payment.CustomerID).
			Updates(map[string]interface{}{"debt": newDebt})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}
