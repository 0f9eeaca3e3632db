package partner

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Phone   string `json:"phone" binding:"max=50"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Address string `json:"address" binding:"max=500"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Email   *string `json:"email" binding:"omitempty,email,max=200"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Status  *string `json:"status" binding:"omitempty,oneof=active inactive"`
}

// RecordDebtPaymentRequest represents a request to record a debt payment
type RecordDebtPaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Description string          `json:"description" binding:"max=500"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Address   string          `json:"address"`
	Status    string          `json:"status"`
	Debt      decimal.Decimal `json:"debt"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// DebtPaymentResponse represents a recorded debt payment
type DebtPaymentResponse struct {
	ID            uuid.UUID       `json:"id"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	RemainingDebt decimal.Decimal `json:"remaining_debt"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CustomerListFilter represents filter options for the customer list
type CustomerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Status   string `form:"status"`
	WithDebt bool   `form:"with_debt"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// ToSharedFilter converts the list filter to a repository filter
func (f CustomerListFilter) ToSharedFilter() shared.Filter {
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
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	if f.WithDebt {
		filter.Filters["with_debt"] = true
	}
	return filter
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		Status:    string(c.Status),
		Debt:      c.Debt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToDebtPaymentResponse converts a domain payment to a response DTO
func ToDebtPaymentResponse(p *partner.DebtPayment, remainingDebt decimal.Decimal) DebtPaymentResponse {
	return DebtPaymentResponse{
		ID:            p.ID,
		CustomerID:    p.CustomerID,
		Amount:        p.Amount,
		Description:   p.Description,
		RemainingDebt: remainingDebt,
		CreatedAt:     p.CreatedAt,
	}
}
