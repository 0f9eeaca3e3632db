package sales

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/catalog"
	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderService runs the sale workflow. The order header, its line
// items and the mirroring cash-sale ledger row are committed in one
// database transaction; stock decrements and credit-debt accrual run
// afterwards on a best-effort basis, so a failure there is logged but
// never unwinds the already-recorded sale.
type OrderService struct {
	orderRepo       sales.OrderRepository
	productRepo     catalog.ProductRepository
	customerRepo    partner.CustomerRepository
	transactionRepo finance.TransactionRepository
	logger          *zap.Logger
}

// NewOrderService creates a new OrderService
func NewOrderService(
	orderRepo sales.OrderRepository,
	productRepo catalog.ProductRepository,
	customerRepo partner.CustomerRepository,
	transactionRepo finance.TransactionRepository,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		customerRepo:    customerRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// Create records a completed sale. All validation happens before the
// first write: a credit sale without a customer or an order without
// items is rejected outright. The register is trusted on quantities
// and prices, and a sale is never blocked by insufficient stock.
func (s *OrderService) Create(ctx context.Context, ownerID uuid.UUID, req CreateOrderRequest) (*OrderResponse, error) {
	order, err := sales.NewOrder(ownerID, req.CustomerID, req.PaymentMethod, req.Total, req.IsCreditSale)
	if err != nil {
		return nil, err
	}
	for _, item := range req.Items {
		if err := order.AddItem(item.ProductID, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if req.IsCreditSale {
		// The customer must exist before any write; the accrual itself
		// happens after the commit
		if _, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, *req.CustomerID); err != nil {
			return nil, err
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return nil, shared.NewPersistenceError("create credit order", err)
		}
	} else {
		ledger, err := finance.NewSaleTransaction(ownerID, order.ID, order.Total)
		if err != nil {
			return nil, err
		}
		if err := s.orderRepo.CreateWithTransaction(ctx, order, ledger); err != nil {
			return nil, shared.NewPersistenceError("create cash order", err)
		}
	}

	s.applySideEffects(ctx, order)

	response := ToOrderResponse(order)
	return &response, nil
}

// GetByID retrieves an order with its line items
func (s *OrderService) GetByID(ctx context.Context, ownerID, orderID uuid.UUID) (*OrderResponse, error) {
	order, err := s.orderRepo.FindByIDForOwner(ctx, ownerID, orderID)
	if err != nil {
		return nil, err
	}

	response := ToOrderResponse(order)
	return &response, nil
}

// List retrieves orders with filtering and pagination
func (s *OrderService) List(ctx context.Context, ownerID uuid.UUID, filter OrderListFilter) (*shared.Paginated[OrderResponse], error) {
	repoFilter := filter.ToSharedFilter()

	orders, err := s.orderRepo.FindAllForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	total, err := s.orderRepo.CountForOwner(ctx, ownerID, repoFilter)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToOrderResponse(&orders[i])
	}

	result := shared.NewPaginated(responses, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// applySideEffects performs the post-commit bookkeeping of a sale:
// per-line stock decrements and, for credit sales, the debt accrual.
// The sale itself is already committed, so failures are logged only.
func (s *OrderService) applySideEffects(ctx context.Context, order *sales.Order) {
	for _, item := range order.Items {
		if err := s.productRepo.DecrementStockClamped(ctx, order.OwnerID, item.ProductID, item.Quantity); err != nil {
			s.logger.Error("failed to decrement stock after sale",
				zap.String("order_id", order.ID.String()),
				zap.String("product_id", item.ProductID.String()),
				zap.Int("quantity", item.Quantity),
				zap.Error(err))
		}
	}

	if order.IsCreditSale && order.CustomerID != nil && order.Total.IsPositive() {
		if err := s.customerRepo.AccrueDebt(ctx, order.OwnerID, *order.CustomerID, order.Total); err != nil {
			s.logger.Error("failed to accrue customer debt after credit sale",
				zap.String("order_id", order.ID.String()),
				zap.String("customer_id", order.CustomerID.String()),
				zap.String("amount", order.Total.String()),
				zap.Error(err))
		}
	}
}
