package sales

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItemRequest represents one product line of a sale
type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"gte=0"`
}

// CreateOrderRequest represents a completed sale submitted by the register
type CreateOrderRequest struct {
	CustomerID    *uuid.UUID         `json:"customer_id"`
	PaymentMethod string             `json:"payment_method" binding:"required,max=50"`
	Total         decimal.Decimal    `json:"total" binding:"gte=0"`
	IsCreditSale  bool               `json:"is_credit_sale"`
	Items         []OrderItemRequest `json:"items" binding:"required,dive"`
}

// OrderItemResponse represents one order line in API responses
type OrderItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse represents an order in API responses
type OrderResponse struct {
	ID            uuid.UUID           `json:"id"`
	CustomerID    *uuid.UUID          `json:"customer_id,omitempty"`
	PaymentMethod string              `json:"payment_method"`
	Total         decimal.Decimal     `json:"total"`
	Status        string              `json:"status"`
	IsCreditSale  bool                `json:"is_credit_sale"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"created_at"`
}

// OrderListFilter represents filter options for the order list
type OrderListFilter struct {
	Page          int    `form:"page"`
	PageSize      int    `form:"page_size"`
	PaymentMethod string `form:"payment_method"`
	CustomerID    string `form:"customer_id"`
	Credit        *bool  `form:"credit"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir"`
}

// ToSharedFilter converts the list filter to a repository filter
func (f OrderListFilter) ToSharedFilter() shared.Filter {
	filter := shared.DefaultFilter()
	if f.Page > 0 {
		filter.Page = f.Page
	}
	if f.PageSize > 0 && f.PageSize <= 100 {
		filter.PageSize = f.PageSize
	}
	if f.OrderBy != "" {
		filter.OrderBy = f.OrderBy
	}
	if f.OrderDir != "" {
		filter.OrderDir = f.OrderDir
	}
	if f.PaymentMethod != "" {
		filter.Filters["payment_method"] = f.PaymentMethod
	}
	if f.CustomerID != "" {
		filter.Filters["customer_id"] = f.CustomerID
	}
	if f.Credit != nil {
		filter.Filters["credit"] = *f.Credit
	}
	return filter
}

// ToOrderResponse converts a domain order to a response DTO
func ToOrderResponse(o *sales.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		}
	}
	return OrderResponse{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		PaymentMethod: o.PaymentMethod,
		Total:         o.Total,
		Status:        string(o.Status),
		IsCreditSale:  o.IsCreditSale,
		Items:         items,
		CreatedAt:     o.CreatedAt,
	}
}
