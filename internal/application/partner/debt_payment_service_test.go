package partner

import (
	"context"
	"testing"

	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newDebtPaymentService(customerRepo *MockCustomerRepository, paymentRepo *MockDebtPaymentRepository, txRepo *MockTransactionRepository) *DebtPaymentService {
	return NewDebtPaymentService(customerRepo, paymentRepo, txRepo, zap.NewNop())
}

func TestDebtPaymentService_RecordPayment(t *testing.T) {
	t.Run("settles full debt and mirrors payment into the ledger", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customer := newTestCustomer(t, ownerID, decimal.NewFromInt(35))

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customer.ID).Return(customer, nil)
		paymentRepo.On("SaveWithDebtUpdate", mock.Anything, mock.AnythingOfType("*partner.DebtPayment"), mock.MatchedBy(func(d decimal.Decimal) bool { return d.IsZero() })).Return(nil)
		txRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Transaction")).Return(nil)

		resp, err := service.RecordPayment(context.Background(), ownerID, customer.ID, RecordDebtPaymentRequest{
			Amount: decimal.NewFromInt(35),
		})

		require.NoError(t, err)
		assert.True(t, resp.RemainingDebt.IsZero())
		assert.True(t, resp.Amount.Equal(decimal.NewFromInt(35)))
		customerRepo.AssertExpectations(t)
		paymentRepo.AssertExpectations(t)
		txRepo.AssertExpectations(t)
	})

	t.Run("rejects payment larger than outstanding debt", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customer := newTestCustomer(t, ownerID, decimal.NewFromInt(35))

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customer.ID).Return(customer, nil)

		resp, err := service.RecordPayment(context.Background(), ownerID, customer.ID, RecordDebtPaymentRequest{
			Amount: decimal.NewFromInt(50),
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "VALIDATION", domainErr.Code)
		paymentRepo.AssertNotCalled(t, "SaveWithDebtUpdate")
		txRepo.AssertNotCalled(t, "Save")
	})

	t.Run("returns not found for unknown customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customerID := uuid.New()

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customerID).Return(nil, shared.ErrNotFound)

		resp, err := service.RecordPayment(context.Background(), ownerID, customerID, RecordDebtPaymentRequest{
			Amount: decimal.NewFromInt(10),
		})

		assert.Nil(t, resp)
		assert.Equal(t, shared.ErrNotFound, err)
		paymentRepo.AssertNotCalled(t, "SaveWithDebtUpdate")
	})

	t.Run("succeeds even when the ledger mirror fails", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customer := newTestCustomer(t, ownerID, decimal.NewFromInt(100))

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customer.ID).Return(customer, nil)
		paymentRepo.On("SaveWithDebtUpdate", mock.Anything, mock.AnythingOfType("*partner.DebtPayment"), mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(60)) })).Return(nil)
		txRepo.On("Save", mock.Anything, mock.AnythingOfType("*finance.Transaction")).Return(assert.AnError)

		resp, err := service.RecordPayment(context.Background(), ownerID, customer.ID, RecordDebtPaymentRequest{
			Amount: decimal.NewFromInt(40),
		})

		require.NoError(t, err)
		assert.True(t, resp.RemainingDebt.Equal(decimal.NewFromInt(60)))
		txRepo.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customer := newTestCustomer(t, ownerID, decimal.NewFromInt(35))

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customer.ID).Return(customer, nil)

		resp, err := service.RecordPayment(context.Background(), ownerID, customer.ID, RecordDebtPaymentRequest{
			Amount: decimal.Zero,
		})

		assert.Error(t, err)
		assert.Nil(t, resp)
		paymentRepo.AssertNotCalled(t, "SaveWithDebtUpdate")
	})
}

func TestDebtPaymentService_ListPayments(t *testing.T) {
	t.Run("lists payments for an existing customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customer := newTestCustomer(t, ownerID, decimal.NewFromInt(35))
		payment, err := partner.NewDebtPayment(ownerID, customer.ID, decimal.NewFromInt(20), "")
		require.NoError(t, err)

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customer.ID).Return(customer, nil)
		paymentRepo.On("FindAllForCustomer", mock.Anything, ownerID, customer.ID, mock.AnythingOfType("shared.Filter")).
			Return([]partner.DebtPayment{*payment}, nil)

		responses, err := service.ListPayments(context.Background(), ownerID, customer.ID, shared.DefaultFilter())

		assert.NoError(t, err)
		assert.Len(t, responses, 1)
		assert.Equal(t, customer.ID, responses[0].CustomerID)
	})

	t.Run("returns not found for unknown customer", func(t *testing.T) {
		customerRepo := new(MockCustomerRepository)
		paymentRepo := new(MockDebtPaymentRepository)
		txRepo := new(MockTransactionRepository)
		service := newDebtPaymentService(customerRepo, paymentRepo, txRepo)

		ownerID := uuid.New()
		customerID := uuid.New()

		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customerID).Return(nil, shared.ErrNotFound)

		responses, err := service.ListPayments(context.Background(), ownerID, customerID, shared.DefaultFilter())

		assert.Nil(t, responses)
		assert.Equal(t, shared.ErrNotFound, err)
		paymentRepo.AssertNotCalled(t, "FindAllForCustomer")
	})
}
