package finance

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest represents a manual ledger entry
type CreateTransactionRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=500"`
	Type        string          `json:"type" binding:"required,oneof=income expense"`
	Category    string          `json:"category" binding:"max=100"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
}

// TransactionResponse represents a ledger row in API responses
type TransactionResponse struct {
	ID            uuid.UUID       `json:"id"`
	Description   string          `json:"description"`
	Type          string          `json:"type"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	OrderID       *uuid.UUID      `json:"order_id,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// TransactionListFilter represents filter options for the ledger list
type TransactionListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Type     string `form:"type"`
	Category string `form:"category"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// ToSharedFilter converts the list filter to a repository filter
func (f TransactionListFilter) ToSharedFilter() shared.Filter {
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
	filter.Search = f.Search
	if f.Type != "" {
		filter.Filters["type"] = f.Type
	}
	if f.Category != "" {
		filter.Filters["category"] = f.Category
	}
	return filter
}

// ToTransactionResponse converts a domain transaction to a response DTO
func ToTransactionResponse(t *finance.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:            t.ID,
		Description:   t.Description,
		Type:          string(t.Type),
		Category:      t.Category,
		Amount:        t.Amount,
		Status:        string(t.Status),
		OrderID:       t.OrderID,
		PaymentMethod: t.PaymentMethod,
		CreatedAt:     t.CreatedAt,
	}
}
