package finance

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates completed ledger row", func(t *testing.T) {
		tx, err := NewTransaction(ownerID, TransactionTypeExpense, "Servicios", "Pago de luz", decimal.NewFromFloat(42.75))
		require.NoError(t, err)
		assert.Equal(t, TransactionStatusCompleted, tx.Status)
		assert.False(t, tx.IsOrderLinked())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewTransaction(ownerID, TransactionType("transfer"), "x", "y", decimal.NewFromInt(1))
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewTransaction(ownerID, TransactionTypeIncome, "x", "y", decimal.NewFromInt(-1))
		assert.Error(t, err)
	})

	t.Run("rejects blank description", func(t *testing.T) {
		_, err := NewTransaction(ownerID, TransactionTypeIncome, "x", "   ", decimal.NewFromInt(1))
		assert.Error(t, err)
	})
}

func TestNewSaleTransaction(t *testing.T) {
	ownerID := uuid.New()
	orderID := uuid.New()

	tx, err := NewSaleTransaction(ownerID, orderID, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.Equal(t, TransactionTypeIncome, tx.Type)
	assert.Equal(t, CategorySales, tx.Category)
	require.NotNil(t, tx.OrderID)
	assert.Equal(t, orderID, *tx.OrderID)
	assert.True(t, tx.IsOrderLinked())
}

func TestNewDebtPaymentTransaction(t *testing.T) {
	tx, err := NewDebtPaymentTransaction(uuid.New(), "Maria Lopez", decimal.NewFromInt(35))
	require.NoError(t, err)
	assert.Equal(t, CategoryDebtPayment, tx.Category)
	assert.Contains(t, tx.Description, "Maria Lopez")
	assert.False(t, tx.IsOrderLinked())
}
