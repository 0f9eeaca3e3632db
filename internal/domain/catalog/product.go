package catalog

import (
	"strings"
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus represents the status of a product
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// IsValid checks if the status is a valid ProductStatus
func (s ProductStatus) IsValid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product represents a catalog entry sold at the point of sale.
// It is the aggregate root for catalog operations and carries the
// in-stock quantity used by the sale workflow's stock ledger.
type Product struct {
	shared.OwnedAggregateRoot
	Name     string
	Category string
	Price    decimal.Decimal
	Stock    int
	Status   ProductStatus
}

// NewProduct creates a new product
func NewProduct(ownerID uuid.UUID, name, category string, price decimal.Decimal, stock int) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}

	return &Product{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		Name:               strings.TrimSpace(name),
		Category:           strings.TrimSpace(category),
		Price:              price,
		Stock:              stock,
		Status:             ProductStatusActive,
	}, nil
}

// Update updates the product's catalog information
func (p *Product) Update(name, category string, price decimal.Decimal) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Product price cannot be negative")
	}

	p.Name = strings.TrimSpace(name)
	p.Category = strings.TrimSpace(category)
	p.Price = price
	p.UpdatedAt = time.Now()
	return nil
}

// DecrementStock reduces the in-stock quantity by the sold amount.
// Stock never goes negative: a decrement past zero clamps at zero.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	newStock := p.Stock - quantity
	if newStock < 0 {
		newStock = 0
	}
	p.Stock = newStock
	p.UpdatedAt = time.Now()
	return nil
}

// Restock increases the in-stock quantity
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock += quantity
	p.UpdatedAt = time.Now()
	return nil
}

// SetStock replaces the in-stock quantity with an absolute count
func (p *Product) SetStock(quantity int) error {
	if quantity < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Product stock cannot be negative")
	}
	p.Stock = quantity
	p.UpdatedAt = time.Now()
	return nil
}

// Activate marks the product as sellable
func (p *Product) Activate() {
	p.Status = ProductStatusActive
	p.UpdatedAt = time.Now()
}

// Deactivate hides the product from the point of sale
func (p *Product) Deactivate() {
	p.Status = ProductStatusInactive
	p.UpdatedAt = time.Now()
}

// IsActive returns true if the product is sellable
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}
