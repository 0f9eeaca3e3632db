package models

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the persistence model for the Order domain entity
type OrderModel struct {
	OwnedAggregateModel
	CustomerID    *uuid.UUID        `gorm:"type:uuid;index"`
	PaymentMethod string            `gorm:"type:varchar(50)"`
	Total         decimal.Decimal   `gorm:"type:decimal(18,4);not null"`
	Status        sales.OrderStatus `gorm:"type:varchar(20);not null;default:'completed'"`
	IsCreditSale  bool              `gorm:"not null"`
	Items         []OrderItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the persistence model for one order line
type OrderItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null;check:quantity > 0"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (OrderItemModel) TableName() string {
	return "order_items"
}

// ToDomain converts the persistence model to a domain Order with items
func (m *OrderModel) ToDomain() *sales.Order {
	items := make([]sales.OrderItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = sales.OrderItem{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: item.CreatedAt,
		}
	}
	return &sales.Order{
		OwnedAggregateRoot: m.ToDomainOwnedAggregateRoot(),
		CustomerID:         m.CustomerID,
		PaymentMethod:      m.PaymentMethod,
		Total:              m.Total,
		Status:             m.Status,
		IsCreditSale:       m.IsCreditSale,
		Items:              items,
	}
}

// OrderModelFromDomain creates a new persistence model from a domain Order
func OrderModelFromDomain(o *sales.Order) *OrderModel {
	m := &OrderModel{}
	m.FromDomainOwnedAggregateRoot(o.OwnedAggregateRoot)
	m.CustomerID = o.CustomerID
	m.PaymentMethod = o.PaymentMethod
	m.Total = o.Total
	m.Status = o.Status
	m.IsCreditSale = o.IsCreditSale
	m.Items = make([]OrderItemModel, len(o.Items))
	for i, item := range o.Items {
		m.Items[i] = OrderItemModel{
			ID:        item.ID,
			OrderID:   item.OrderID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			CreatedAt: item.CreatedAt,
		}
	}
	return m
}
