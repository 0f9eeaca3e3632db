package partner

import (
	"context"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DebtPaymentService records repayments against a customer's "fiado"
// debt. The payment row and the debt reduction are committed together;
// the mirroring income ledger row is written afterwards on a
// best-effort basis, so a ledger failure never blocks or reverts an
// already-recorded payment.
type DebtPaymentService struct {
	customerRepo    partner.CustomerRepository
	debtPaymentRepo partner.DebtPaymentRepository
	transactionRepo finance.TransactionRepository
	logger          *zap.Logger
}

// NewDebtPaymentService creates a new DebtPaymentService
func NewDebtPaymentService(
	customerRepo partner.CustomerRepository,
	debtPaymentRepo partner.DebtPaymentRepository,
	transactionRepo finance.TransactionRepository,
	logger *zap.Logger,
) *DebtPaymentService {
	return &DebtPaymentService{
		customerRepo:    customerRepo,
		debtPaymentRepo: debtPaymentRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
	}
}

// RecordPayment validates and persists a payment against the
// customer's outstanding debt
func (s *DebtPaymentService) RecordPayment(ctx context.Context, ownerID, customerID uuid.UUID, req RecordDebtPaymentRequest) (*DebtPaymentResponse, error) {
	customer, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, customerID)
	if err != nil {
		return nil, err
	}

	// SettleDebt rejects non-positive amounts and overpayments before
	// any write happens
	if err := customer.SettleDebt(req.Amount); err != nil {
		return nil, err
	}

	payment, err := partner.NewDebtPayment(ownerID, customerID, req.Amount, req.Description)
	if err != nil {
		return nil, err
	}

	if err := s.debtPaymentRepo.SaveWithDebtUpdate(ctx, payment, customer.Debt); err != nil {
		return nil, err
	}

	s.recordLedgerRow(ctx, ownerID, customer.Name, payment)

	response := ToDebtPaymentResponse(payment, customer.Debt)
	return &response, nil
}

// ListPayments lists recorded payments for one customer
func (s *DebtPaymentService) ListPayments(ctx context.Context, ownerID, customerID uuid.UUID, filter shared.Filter) ([]DebtPaymentResponse, error) {
	if _, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, customerID); err != nil {
		return nil, err
	}

	payments, err := s.debtPaymentRepo.FindAllForCustomer(ctx, ownerID, customerID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]DebtPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = DebtPaymentResponse{
			ID:          payments[i].ID,
			CustomerID:  payments[i].CustomerID,
			Amount:      payments[i].Amount,
			Description: payments[i].Description,
			CreatedAt:   payments[i].CreatedAt,
		}
	}
	return responses, nil
}

// recordLedgerRow mirrors the payment into the income ledger. The
// payment itself is already committed, so a failure here is only
// logged.
func (s *DebtPaymentService) recordLedgerRow(ctx context.Context, ownerID uuid.UUID, customerName string, payment *partner.DebtPayment) {
	ledger, err := finance.NewDebtPaymentTransaction(ownerID, customerName, payment.Amount)
	if err != nil {
		s.logger.Error("failed to build debt payment ledger row",
			zap.String("payment_id", payment.ID.String()),
			zap.Error(err))
		return
	}
	if err := s.transactionRepo.Save(ctx, ledger); err != nil {
		s.logger.Error("failed to record debt payment in ledger",
			zap.String("payment_id", payment.ID.String()),
			zap.String("customer_id", payment.CustomerID.String()),
			zap.Error(err))
	}
}
