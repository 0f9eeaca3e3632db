package sales

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the status of an order.
// Sales are recorded live at the register: every persisted order is
// already completed and there is no edit or cancel path afterwards.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
)

// OrderItem represents one product line within an order. The unit price
// is captured at sale time and never re-read from the catalog.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
	CreatedAt time.Time
}

// Subtotal returns quantity * captured unit price
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order identifies one sale transaction together with its line items.
// CustomerID is nil for walk-in cash sales; credit ("fiado") sales must
// reference the customer whose debt the total accrues to.
type Order struct {
	shared.OwnedAggregateRoot
	CustomerID    *uuid.UUID
	PaymentMethod string
	Total         decimal.Decimal
	Status        OrderStatus
	IsCreditSale  bool
	Items         []OrderItem
}

// NewOrder creates a completed order with its line items.
// Validation happens before any write is attempted: a credit sale
// requires a customer, and an empty sale is rejected outright since no
// business flow legitimately produces one.
func NewOrder(ownerID uuid.UUID, customerID *uuid.UUID, paymentMethod string, total decimal.Decimal, isCreditSale bool) (*Order, error) {
	if isCreditSale && (customerID == nil || *customerID == uuid.Nil) {
		return nil, shared.NewValidationError("Customer required for credit sale")
	}
	if total.IsNegative() {
		return nil, shared.NewValidationError("Order total cannot be negative")
	}

	return &Order{
		OwnedAggregateRoot: shared.NewOwnedAggregateRoot(ownerID),
		CustomerID:         customerID,
		PaymentMethod:      paymentMethod,
		Total:              total,
		Status:             OrderStatusCompleted,
		IsCreditSale:       isCreditSale,
		Items:              make([]OrderItem, 0),
	}, nil
}

// AddItem appends a product line to the order. Quantities and prices
// are trusted as submitted by the register; there is no re-validation
// against the current catalog price.
func (o *Order) AddItem(productID uuid.UUID, quantity int, unitPrice decimal.Decimal) error {
	if productID == uuid.Nil {
		return shared.NewValidationError("Order item requires a product")
	}
	if quantity <= 0 {
		return shared.NewValidationError("Order item quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewValidationError("Order item price cannot be negative")
	}

	now := time.Now()
	o.Items = append(o.Items, OrderItem{
		ID:        uuid.New(),
		OrderID:   o.ID,
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		CreatedAt: now,
	})
	o.UpdatedAt = now
	return nil
}

// Validate checks order-level invariants before persisting
func (o *Order) Validate() error {
	if len(o.Items) == 0 {
		return shared.NewValidationError("Order requires at least one item")
	}
	return nil
}

// ItemCount returns the number of product lines
func (o *Order) ItemCount() int {
	return len(o.Items)
}
