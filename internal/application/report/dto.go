package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DaySales is the per-day sales aggregate
type DaySales struct {
	Date         string          `json:"date"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalOrders  int             `json:"total_orders"`
	CashAmount   decimal.Decimal `json:"cash_amount"`
	CashOrders   int             `json:"cash_orders"`
	CreditAmount decimal.Decimal `json:"credit_amount"`
	CreditOrders int             `json:"credit_orders"`
}

// MovementRow is one non-order ledger row in a movements report
type MovementRow struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// DayMovementSummary is the per-day income/expense summary of a
// movements report
type DayMovementSummary struct {
	Date    string          `json:"date"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// MovementsReport combines the filtered rows with their daily summary
type MovementsReport struct {
	Movements []MovementRow        `json:"items"`
	Summary   []DayMovementSummary `json:"summary"`
}

// OrderDetailItem is one product line in a day-orders report
type OrderDetailItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderDetail is one order with nested items and the resolved customer
// name for a day-orders report
type OrderDetail struct {
	ID            uuid.UUID         `json:"id"`
	CustomerID    *uuid.UUID        `json:"customer_id,omitempty"`
	CustomerName  string            `json:"customer_name,omitempty"`
	PaymentMethod string            `json:"payment_method"`
	Total         decimal.Decimal   `json:"total"`
	IsCreditSale  bool              `json:"is_credit_sale"`
	Items         []OrderDetailItem `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
}
