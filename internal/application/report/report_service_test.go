package report

import (
	"context"
	"testing"
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/finopenpos/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockOrderRepository is a mock implementation of sales.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*sales.Order, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Order), args.Error(1)
}

func (m *MockOrderRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]sales.Order, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]sales.Order, error) {
	args := m.Called(ctx, ownerID, from, to)
	return args.Get(0).([]sales.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *sales.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) CreateWithTransaction(ctx context.Context, order *sales.Order, tx *finance.Transaction) error {
	args := m.Called(ctx, order, tx)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of finance.TransactionRepository
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*finance.Transaction, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]finance.Transaction, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *finance.Transaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindInRangeForOwner(ctx context.Context, ownerID uuid.UUID, from, to time.Time, filter finance.TransactionFilter, excludeOrderLinked bool) ([]finance.Transaction, error) {
	args := m.Called(ctx, ownerID, from, to, filter, excludeOrderLinked)
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

// MockCustomerRepository is a mock implementation of partner.CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) AccrueDebt(ctx context.Context, ownerID, id uuid.UUID, amount decimal.Decimal) error {
	args := m.Called(ctx, ownerID, id, amount)
	return args.Error(0)
}

func newReportService() (*ReportService, *MockOrderRepository, *MockTransactionRepository, *MockCustomerRepository) {
	orderRepo := new(MockOrderRepository)
	txRepo := new(MockTransactionRepository)
	customerRepo := new(MockCustomerRepository)
	return NewReportService(orderRepo, txRepo, customerRepo), orderRepo, txRepo, customerRepo
}

func orderOn(t *testing.T, ownerID uuid.UUID, createdAt time.Time, total int64, credit bool, customerID *uuid.UUID) sales.Order {
	t.Helper()
	order, err := sales.NewOrder(ownerID, customerID, "cash", decimal.NewFromInt(total), credit)
	require.NoError(t, err)
	require.NoError(t, order.AddItem(uuid.New(), 1, decimal.NewFromInt(total)))
	order.CreatedAt = createdAt
	return *order
}

func TestReportService_SalesByDay(t *testing.T) {
	t.Run("buckets orders by UTC day split by cash and credit", func(t *testing.T) {
		service, orderRepo, _, _ := newReportService()
		ownerID := uuid.New()
		customerID := uuid.New()

		day1 := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		day2 := time.Date(2026, 3, 11, 17, 5, 0, 0, time.UTC)

		orders := []sales.Order{
			orderOn(t, ownerID, day1, 100, false, nil),
			orderOn(t, ownerID, day1, 50, true, &customerID),
			orderOn(t, ownerID, day2, 80, false, nil),
		}

		from := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
		orderRepo.On("FindInRangeForOwner", mock.Anything, ownerID,
			time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)).Return(orders, nil)

		days, err := service.SalesByDay(context.Background(), ownerID, from, to)

		require.NoError(t, err)
		require.Len(t, days, 2)

		assert.Equal(t, "2026-03-10", days[0].Date)
		assert.Equal(t, 2, days[0].TotalOrders)
		assert.True(t, days[0].TotalAmount.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, 1, days[0].CashOrders)
		assert.True(t, days[0].CashAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, 1, days[0].CreditOrders)
		assert.True(t, days[0].CreditAmount.Equal(decimal.NewFromInt(50)))

		assert.Equal(t, "2026-03-11", days[1].Date)
		assert.Equal(t, 1, days[1].TotalOrders)
		assert.True(t, days[1].TotalAmount.Equal(decimal.NewFromInt(80)))
	})

	t.Run("is idempotent over the same range", func(t *testing.T) {
		service, orderRepo, _, _ := newReportService()
		ownerID := uuid.New()

		day := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		orders := []sales.Order{orderOn(t, ownerID, day, 100, false, nil)}
		orderRepo.On("FindInRangeForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(orders, nil)

		first, err := service.SalesByDay(context.Background(), ownerID, day, day)
		require.NoError(t, err)
		second, err := service.SalesByDay(context.Background(), ownerID, day, day)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("returns empty slice for empty range", func(t *testing.T) {
		service, orderRepo, _, _ := newReportService()
		ownerID := uuid.New()

		orderRepo.On("FindInRangeForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return([]sales.Order{}, nil)

		days, err := service.SalesByDay(context.Background(), ownerID, time.Now(), time.Now())

		require.NoError(t, err)
		assert.Empty(t, days)
	})
}

func TestReportService_Movements(t *testing.T) {
	t.Run("summarizes non-order rows per day and excludes order-linked ones", func(t *testing.T) {
		service, _, txRepo, _ := newReportService()
		ownerID := uuid.New()

		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		income, err := finance.NewTransaction(ownerID, finance.TransactionTypeIncome, "Otros", "Venta de garrafones", decimal.NewFromInt(200))
		require.NoError(t, err)
		income.CreatedAt = day.Add(9 * time.Hour)
		expense, err := finance.NewTransaction(ownerID, finance.TransactionTypeExpense, "Renta", "Renta del local", decimal.NewFromInt(150))
		require.NoError(t, err)
		expense.CreatedAt = day.Add(15 * time.Hour)

		txRepo.On("FindInRangeForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything,
			finance.TransactionFilter{}, true).
			Return([]finance.Transaction{*income, *expense}, nil)

		report, err := service.Movements(context.Background(), ownerID, day, day, finance.TransactionFilter{})

		require.NoError(t, err)
		assert.Len(t, report.Movements, 2)
		require.Len(t, report.Summary, 1)
		assert.Equal(t, "2026-03-10", report.Summary[0].Date)
		assert.True(t, report.Summary[0].Income.Equal(decimal.NewFromInt(200)))
		assert.True(t, report.Summary[0].Expense.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, 2, report.Summary[0].Count)
		txRepo.AssertExpectations(t)
	})
}

func TestReportService_OrdersByDay(t *testing.T) {
	t.Run("resolves customer names for credit sales", func(t *testing.T) {
		service, orderRepo, _, customerRepo := newReportService()
		ownerID := uuid.New()
		customer, err := partner.NewCustomer(ownerID, "Maria Lopez", "", "", "")
		require.NoError(t, err)
		customerID := customer.ID

		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		orders := []sales.Order{
			orderOn(t, ownerID, day.Add(10*time.Hour), 55, true, &customerID),
			orderOn(t, ownerID, day.Add(11*time.Hour), 30, false, nil),
		}

		orderRepo.On("FindInRangeForOwner", mock.Anything, ownerID,
			day, day.AddDate(0, 0, 1)).Return(orders, nil)
		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customerID).Return(customer, nil).Once()

		details, err := service.OrdersByDay(context.Background(), ownerID, day)

		require.NoError(t, err)
		require.Len(t, details, 2)
		assert.Equal(t, "Maria Lopez", details[0].CustomerName)
		assert.Empty(t, details[1].CustomerName)
		require.Len(t, details[0].Items, 1)
		assert.True(t, details[0].Items[0].Subtotal.Equal(decimal.NewFromInt(55)))
		customerRepo.AssertExpectations(t)
	})

	t.Run("keeps orders whose customer was deleted", func(t *testing.T) {
		service, orderRepo, _, customerRepo := newReportService()
		ownerID := uuid.New()
		customerID := uuid.New()

		day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		orders := []sales.Order{
			orderOn(t, ownerID, day.Add(10*time.Hour), 55, true, &customerID),
		}

		orderRepo.On("FindInRangeForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(orders, nil)
		customerRepo.On("FindByIDForOwner", mock.Anything, ownerID, customerID).Return(nil, shared.ErrNotFound)

		details, err := service.OrdersByDay(context.Background(), ownerID, day)

		require.NoError(t, err)
		require.Len(t, details, 1)
		assert.Empty(t, details[0].CustomerName)
	})
}
