package report

import (
	"context"
	"sort"
	"time"

	"github.com/finopenpos/backend/internal/domain/finance"
	"github.com/finopenpos/backend/internal/domain/partner"
	"github.com/finopenpos/backend/internal/domain/sales"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dayFormat = "2006-01-02"

// ReportService aggregates orders and ledger rows into per-day
// reports. It is stateless and read-only: buckets are UTC calendar
// days, and running a report twice over the same range yields the
// same result.
type ReportService struct {
	orderRepo       sales.OrderRepository
	transactionRepo finance.TransactionRepository
	customerRepo    partner.CustomerRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	orderRepo sales.OrderRepository,
	transactionRepo finance.TransactionRepository,
	customerRepo partner.CustomerRepository,
) *ReportService {
	return &ReportService{
		orderRepo:       orderRepo,
		transactionRepo: transactionRepo,
		customerRepo:    customerRepo,
	}
}

// dayRange normalizes [from, to] to UTC day boundaries: the range
// starts at from 00:00 UTC and ends just before the day after to.
func dayRange(from, to time.Time) (time.Time, time.Time) {
	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return start, end
}

// SalesByDay aggregates completed orders into one bucket per UTC
// calendar day, split by cash and credit
func (s *ReportService) SalesByDay(ctx context.Context, ownerID uuid.UUID, from, to time.Time) ([]DaySales, error) {
	start, end := dayRange(from, to)

	orders, err := s.orderRepo.FindInRangeForOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]*DaySales)
	for i := range orders {
		order := &orders[i]
		day := order.CreatedAt.UTC().Format(dayFormat)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DaySales{
				Date:         day,
				TotalAmount:  decimal.Zero,
				CashAmount:   decimal.Zero,
				CreditAmount: decimal.Zero,
			}
			buckets[day] = bucket
		}
		bucket.TotalAmount = bucket.TotalAmount.Add(order.Total)
		bucket.TotalOrders++
		if order.IsCreditSale {
			bucket.CreditAmount = bucket.CreditAmount.Add(order.Total)
			bucket.CreditOrders++
		} else {
			bucket.CashAmount = bucket.CashAmount.Add(order.Total)
			bucket.CashOrders++
		}
	}

	days := make([]DaySales, 0, len(buckets))
	for _, bucket := range buckets {
		days = append(days, *bucket)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days, nil
}

// Movements lists manual ledger rows in the range with a per-day
// income/expense summary. Order-linked rows are excluded: sales are
// already reported from the orders themselves.
func (s *ReportService) Movements(ctx context.Context, ownerID uuid.UUID, from, to time.Time, filter finance.TransactionFilter) (*MovementsReport, error) {
	start, end := dayRange(from, to)

	transactions, err := s.transactionRepo.FindInRangeForOwner(ctx, ownerID, start, end, filter, true)
	if err != nil {
		return nil, err
	}

	rows := make([]MovementRow, len(transactions))
	buckets := make(map[string]*DayMovementSummary)
	for i := range transactions {
		tx := &transactions[i]
		rows[i] = MovementRow{
			ID:          tx.ID,
			Description: tx.Description,
			Type:        string(tx.Type),
			Category:    tx.Category,
			Amount:      tx.Amount,
			CreatedAt:   tx.CreatedAt,
		}

		day := tx.CreatedAt.UTC().Format(dayFormat)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &DayMovementSummary{
				Date:    day,
				Income:  decimal.Zero,
				Expense: decimal.Zero,
			}
			buckets[day] = bucket
		}
		switch tx.Type {
		case finance.TransactionTypeIncome:
			bucket.Income = bucket.Income.Add(tx.Amount)
		case finance.TransactionTypeExpense:
			bucket.Expense = bucket.Expense.Add(tx.Amount)
		}
		bucket.Count++
	}

	summary := make([]DayMovementSummary, 0, len(buckets))
	for _, bucket := range buckets {
		summary = append(summary, *bucket)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].Date < summary[j].Date })

	return &MovementsReport{Movements: rows, Summary: summary}, nil
}

// OrdersByDay returns full order detail for one UTC calendar day,
// with customer names resolved for credit sales
func (s *ReportService) OrdersByDay(ctx context.Context, ownerID uuid.UUID, date time.Time) ([]OrderDetail, error) {
	start, end := dayRange(date, date)

	orders, err := s.orderRepo.FindInRangeForOwner(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	// Resolve each referenced customer once
	names := make(map[uuid.UUID]string)
	for i := range orders {
		if orders[i].CustomerID == nil {
			continue
		}
		id := *orders[i].CustomerID
		if _, ok := names[id]; ok {
			continue
		}
		customer, err := s.customerRepo.FindByIDForOwner(ctx, ownerID, id)
		if err != nil {
			// A deleted customer does not invalidate the order history
			names[id] = ""
			continue
		}
		names[id] = customer.Name
	}

	details := make([]OrderDetail, len(orders))
	for i := range orders {
		order := &orders[i]
		items := make([]OrderDetailItem, len(order.Items))
		for j, item := range order.Items {
			items[j] = OrderDetailItem{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				UnitPrice: item.UnitPrice,
				Subtotal:  item.Subtotal(),
			}
		}
		detail := OrderDetail{
			ID:            order.ID,
			CustomerID:    order.CustomerID,
			PaymentMethod: order.PaymentMethod,
			Total:         order.Total,
			IsCreditSale:  order.IsCreditSale,
			Items:         items,
			CreatedAt:     order.CreatedAt,
		}
		if order.CustomerID != nil {
			detail.CustomerName = names[*order.CustomerID]
		}
		details[i] = detail
	}
	return details, nil
}
