package partner

import (
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtPayment is the append-only record of a reduction in a customer's
// debt. It is never mutated or deleted after creation; the payment rows
// form the financial audit trail for "fiado" repayments.
type DebtPayment struct {
	shared.OwnedAggregateRoot
	CustomerID  uuid.UUID
	Amount      decimal.Decimal
	Description string
}

// NewDebtPayment creates a new debt payment record
func NewDebtPayment(ownerID, customerID uuid.UUID, amount decimal.Decimal, description string) (*DebtPayment, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("Payment amount must be positive")
	}

	return &DebtPayment{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		CustomerID:         customerID,
		Amount:             amount,
		Description:        description,
	}, nil
}
