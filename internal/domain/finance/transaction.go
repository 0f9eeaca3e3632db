package finance

import (
	"strings"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType is the direction of a cash-flow event. Amounts are
// always non-negative; the sign is carried by the type, not the number.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// IsValid checks if the type is one of the two enumerated values
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Well-known ledger categories written by the sale and debt-payment workflows
const (
	CategorySales       = "Ventas"
	CategoryDebtPayment = "Pago de Deuda"
)

// TransactionStatus represents the status of a ledger row
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
)

// Transaction is one append-only row of the money-movement ledger used
// for revenue, expense and profit reporting. Rows tied to an order via
// OrderID mirror cash sales; manual rows record everything else.
type Transaction struct {
	shared.OwnedAggregateRoot
	Description   string
	Type          TransactionType
	Category      string
	Amount        decimal.Decimal
	Status        TransactionStatus
	OrderID       *uuid.UUID
	PaymentMethod string
}

// NewTransaction creates a new ledger row
func NewTransaction(ownerID uuid.UUID, txType TransactionType, category, description string, amount decimal.Decimal) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewValidationError("Transaction type must be income or expense")
	}
	if amount.IsNegative() {
		return nil, shared.NewValidationError("Transaction amount cannot be negative")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewValidationError("Transaction description cannot be empty")
	}

	return &Transaction{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Description:        strings.TrimSpace(description),
		Type:               txType,
		Category:           category,
		Amount:             amount,
		Status:             TransactionStatusCompleted,
	}, nil
}

// NewSaleTransaction creates the income row mirroring a completed cash sale
func NewSaleTransaction(ownerID, orderID uuid.UUID, amount decimal.Decimal) (*Transaction, error) {
	tx, err := NewTransaction(ownerID, TransactionTypeIncome, CategorySales, "Venta POS", amount)
	if err != nil {
		return nil, err
	}
	tx.OrderID = &orderID
	return tx, nil
}

// NewDebtPaymentTransaction creates the income row mirroring a debt payment
func NewDebtPaymentTransaction(ownerID uuid.UUID, customerName string, amount decimal.Decimal) (*Transaction, error) {
	description := "Pago de deuda"
	if customerName != "" {
		description = "Pago de deuda - " + customerName
	}
	return NewTransaction(ownerID, TransactionTypeIncome, CategoryDebtPayment, description, amount)
}

// IsOrderLinked returns true if the row mirrors a sale order
func (t *Transaction) IsOrderLinked() bool {
	return t.OrderID != nil
}
