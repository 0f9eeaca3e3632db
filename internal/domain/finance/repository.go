package finance

import (
	"context"
	"time"

	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionFilter narrows movement queries. Zero values mean "any".
type TransactionFilter struct {
	Type     TransactionType
	Category string
}

// TransactionRepository defines the persistence operations for the
// append-only transaction ledger. There is no update or delete.
type TransactionRepository interface {
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Transaction, error)
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Transaction, error)
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, tx *Transaction) error

	// FindInRangeForOwner lists ledger rows in [from, to), optionally
	// filtered by type and category. Order-linked rows are excluded
	// when excludeOrderLinked is set, since sales are reported from the
	// order records themselves.
	FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time, filter TransactionFilter, excludeOrderLinked bool) ([]Transaction, error)
}
