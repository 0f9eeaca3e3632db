package partner

import (
	"strings"
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerStatus represents the status of a customer
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
)

// IsValid checks if the status is a valid CustomerStatus
func (s CustomerStatus) IsValid() bool {
	return s == CustomerStatusActive || s == CustomerStatusInactive
}

// Customer represents a known buyer who may carry "fiado" credit debt.
// Debt is the outstanding balance of unpaid credit sales and can never
// be negative: a payment is rejected before it would overdraw it.
type Customer struct {
	shared.OwnedAggregateRoot
	Name    string
	Phone   string
	Email   string
	Address string
	Status  CustomerStatus
	Debt    decimal.Decimal
}

// NewCustomer creates a new active customer with zero debt
func NewCustomer(ownerID uuid.UUID, name, phone, email, address string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	return &Customer{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               strings.TrimSpace(name),
		Phone:              phone,
		Email:              email,
		Address:            address,
		Status:             CustomerStatusActive,
		Debt:               decimal.Zero,
	}, nil
}

// Update updates the customer's contact information
func (c *Customer) Update(name, phone, email, address string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}

	c.Name = strings.TrimSpace(name)
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.UpdatedAt = time.Now()
	return nil
}

// AccrueDebt adds a credit-sale total to the outstanding debt
func (c *Customer) AccrueDebt(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Debt accrual amount must be positive")
	}
	c.Debt = c.Debt.Add(amount)
	c.UpdatedAt = time.Now()
	return nil
}

// SettleDebt reduces the outstanding debt by a payment amount.
// A payment larger than the outstanding debt is rejected.
func (c *Customer) SettleDebt(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if amount.GreaterThan(c.Debt) {
		return shared.NewValidationError("Payment amount exceeds outstanding debt")
	}
	c.Debt = c.Debt.Sub(amount)
	c.UpdatedAt = time.Now()
	return nil
}

// Activate marks the customer as active
func (c *Customer) Activate() {
	c.Status = CustomerStatusActive
	c.UpdatedAt = time.Now()
}

// Deactivate marks the customer as inactive
func (c *Customer) Deactivate() {
	c.Status = CustomerStatusInactive
	c.UpdatedAt = time.Now()
}

// HasDebt returns true if the customer owes anything
func (c *Customer) HasDebt() bool {
	return c.Debt.GreaterThan(decimal.Zero)
}
