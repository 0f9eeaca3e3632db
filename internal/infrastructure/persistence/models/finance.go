package models

import (
	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel is the persistence model for the Transaction ledger.
// Rows are append-only; there are no update paths.
type TransactionModel struct {
	OwnedAggregateModel
	Description   string                    `gorm:"type:text;not null"`
	Type          finance.TransactionType   `gorm:"type:varchar(10);not null;index"`
	Category      string                    `gorm:"type:varchar(100);index"`
	Amount        decimal.Decimal           `gorm:"type:decimal(18,4);not null;check:amount >= 0"`
	Status        finance.TransactionStatus `gorm:"type:varchar(20);not null;default:'completed'"`
	OrderID       *uuid.UUID                `gorm:"type:uuid;index"`
	PaymentMethod string                    `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction
func (m *TransactionModel) ToDomain() *finance.Transaction {
	return &finance.Transaction{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Description:        m.Description,
		Type:               m.Type,
		Category:           m.Category,
		Amount:             m.Amount,
		Status:             m.Status,
		OrderID:            m.OrderID,
		PaymentMethod:      m.PaymentMethod,
	}
}

// TransactionModelFromDomain creates a new persistence model from a domain Transaction
func TransactionModelFromDomain(t *finance.Transaction) *TransactionModel {
	m := &TransactionModel{}
	m.FromDomainOwnedAggregateRoot(t.OwnedAggregateRoot)
	m.Description = t.Description
	m.Type = t.Type
	m.Category = t.Category
	m.Amount = t.Amount
	m.Status = t.Status
	m.OrderID = t.OrderID
	m.PaymentMethod = t.PaymentMethod
	return m
}
