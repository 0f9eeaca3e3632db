package catalog

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence operations for products
type ProductRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Product, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Product, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, product *Product) error
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error

	// DecrementStockClamped applies the sale-time stock decrement as one
	// atomic statement clamping at zero, so concurrent sales of the same
	// product cannot drive stock negative or lose updates.
	DecrementStockClamped(ctx context.Context, ownerID, id uuid.UUID, quantity int) error
}
