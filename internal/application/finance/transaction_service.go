package finance

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TransactionService handles manual ledger entries. Order-linked rows
// are written by the sale workflow, never through this service.
type TransactionService struct {
	transactionRepo finance.TransactionRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo finance.TransactionRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// Create records a manual income or expense row
func (s *TransactionService) Create(ctx context.Context, ownerID uuid.UUID, req CreateTransactionRequest) (*TransactionResponse, error) {
	transaction, err := finance.NewTransaction(ownerID, finance.TransactionType(req.Type), req.Category, req.Description, req.Amount)
	if err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Save(ctx, transaction); err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// GetByID retrieves a ledger row by ID
func (s *TransactionService) GetByID(ctx context.Context, ownerID, transactionID uuid.UUID) (*TransactionResponse, error) {
	transaction, err := s.transactionRepo.FindByIDForOwner(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	response := ToTransactionResponse(transaction)
	return &response, nil
}

// List retrieves ledger rows with filtering and pagination
func (s *TransactionService) List(ctx context.Context, ownerID uuid.UUID, filter TransactionListFilter) (*shared.Paginated[TransactionResponse], error) {
	repoFilter := filter.ToSharedFilter()

	transactions, err := s.transactionRepo.FindAllForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.transactionRepo.CountForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}

	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}
