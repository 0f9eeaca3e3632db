package catalog

import (
	"time"

	"github.com/finopenpos/backend/internal/domain/catalog"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required,min=1,max=200"`
	Category string          `json:"category" binding:"max=100"`
	Price    decimal.Decimal `json:"price" binding:"gte=0"`
	Stock    int             `json:"stock" binding:"min=0"`
}

// UpdateProductRequest represents a request to update a product
type UpdateProductRequest struct {
	Name     *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category *string          `json:"category" binding:"omitempty,max=100"`
	Price    *decimal.Decimal `json:"price" binding:"omitempty,gte=0"`
	Stock    *int             `json:"stock" binding:"omitempty,min=0"`
	Status   *string          `json:"status" binding:"omitempty,oneof=active inactive"`
}

// RestockRequest represents a request to add stock to a product
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ProductListFilter represents filter options for the product list
type ProductListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Category string `form:"category"`
	Status   string `form:"status"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
}

// ToSharedFilter converts the list filter to a repository filter
func (f ProductListFilter) ToSharedFilter() shared.Filter {
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
	if f.Category != "" {
		filter.Filters["category"] = f.Category
	}
	if f.Status != "" {
		filter.Filters["status"] = f.Status
	}
	return filter
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Category:  p.Category,
		Price:     p.Price,
		Stock:     p.Stock,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
