package models

import (
	"github.com/finopenpos/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity
type ProductModel struct {
	OwnedAggregateModel
	Name     string                `gorm:"type:varchar(200);not null"`
	Category string                `gorm:"type:varchar(100);index"`
	Price    decimal.Decimal       `gorm:"type:decimal(18,4);not null;default:0"`
	Stock    int                   `gorm:"not null;default:0;check:stock >= 0"`
	Status   catalog.ProductStatus `gorm:"type:varchar(20);not null;default:'active'"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		Name:               m.Name,
		Category:           m.Category,
		Price:              m.Price,
		Stock:              m.Stock,
		Status:             m.Status,
	}
}

// FromDomain populates the persistence model from a domain Product
func (m *ProductModel) FromDomain(p *catalog.Product) {
	m.FromDomainOwnedAggregateRoot(p.OwnedAggregateRoot)
	m.Name = p.Name
	m.Category = p.Category
	m.Price = p.Price
	m.Stock = p.Stock
	m.Status = p.Status
}

// ProductModelFromDomain creates a new persistence model from a domain Product
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{}
	m.FromDomain(p)
	return m
}
