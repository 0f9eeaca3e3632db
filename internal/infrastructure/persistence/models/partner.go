package models

import (
	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity
type CustomerModel struct {
	OwnedAggregateModel
	Name    string                 `gorm:"type:varchar(200);not null"`
	Phone   string                 `gorm:"type:varchar(50);index"`
	Email   string                 `gorm:"type:varchar(200);index"`
	Address string                 `gorm:"type:text"`
	Status  partner.CustomerStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Debt    decimal.Decimal        `gorm:"type:decimal(18,4);not null;default:0;check:debt >= 0"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
		Phone:              m.Phone,
		Email:              m.Email,
		Address:            m.Address,
		Status:             m.Status,
		Debt:               m.Debt,
	}
}

// FromDomain populates the persistence model from a domain Customer
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainOwnedAggregateRoot(c.OwnedAggregateRoot)
	m.Name = c.Name
	m.Phone = c.Phone
	m.Email = c.Email
	m.Address = c.Address
	m.Status = c.Status
	m.Debt = c.Debt
}

// CustomerModelFromDomain creates a new persistence model from a domain Customer
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// DebtPaymentModel is the persistence model for the DebtPayment entity.
// Rows are append-only; there are no update paths.
type DebtPaymentModel struct {
	OwnedAggregateModel
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Description string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (DebtPaymentModel) TableName() string {
	return "debt_payments"
}

// ToDomain converts the persistence model to a domain DebtPayment
func (m *DebtPaymentModel) ToDomain() *partner.DebtPayment {
	return &partner.DebtPayment{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		CustomerID:         m.CustomerID,
		Amount:             m.Amount,
		Description:        m.Description,
	}
}

// DebtPaymentModelFromDomain creates a new persistence model from a domain DebtPayment
func DebtPaymentModelFromDomain(p *partner.DebtPayment) *DebtPaymentModel {
	m := &DebtPaymentModel{}
	m.FromDomainOwnedAggregateRoot(p.OwnedAggregateRoot)
	m.CustomerID = p.CustomerID
	m.Amount = p.Amount
	m.Description = p.Description
	return m
}
