package partner

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRepository defines the persistence operations for customers
type CustomerRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Customer, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Customer, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, customer *Customer) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	// AccrueDebt adds a credit-sale total to the customer's debt as one
	// atomic statement, the ledger-update half of a credit sale.
	AccrueDebt(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) error
}

// DebtPaymentRepository defines the persistence operations for debt payments
type DebtPaymentRepository interface {
	FindAllForCustomer(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]DebtPayment, error)
	Save(ctx context.Context, payment *DebtPayment) error

	// SaveWithDebtUpdate inserts the payment row and applies the debt
	// reduction to the customer in a single database transaction.
	SaveWithDebtUpdate(ctx context.Context, payment *DebtPayment, newDebt decimal.Decimal) error
}
