package sales

import (
	"context"
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrderRepository defines the persistence operations for orders.
// Orders are written once and never updated; there is no Save-for-update
// or Delete in normal flow.
type OrderRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Order, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Order, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
	FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]Order, error)

	// Create inserts the order header and all its line items in one
	// database transaction.
	Create(ctx context.Context, order *Order) error

	// CreateWithTransaction additionally inserts the cash-sale income
	// ledger row inside the same transaction, so a failed ledger insert
	// rolls the whole sale back.
	CreateWithTransaction(ctx context.Context, order *Order, tx *finance.Transaction) error
}
