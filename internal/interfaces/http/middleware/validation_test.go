package middleware

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentForm struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

type priceForm struct {
	Price decimal.Decimal `json:"price" binding:"gte=0"`
}

func TestDecimalRangeBinding(t *testing.T) {
	SetupValidator()

	t.Run("negative amount fails gt", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&paymentForm{Amount: decimal.NewFromInt(-3)})
		require.Error(t, err)
		assert.Contains(t, ValidationErrorMessage(err), "amount: must be greater than 0")
	})

	t.Run("zero amount fails", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&paymentForm{Amount: decimal.Zero})
		assert.Error(t, err)
	})

	t.Run("positive amount passes", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&paymentForm{Amount: decimal.RequireFromString("12.50")})
		assert.NoError(t, err)
	})

	t.Run("negative price fails gte", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&priceForm{Price: decimal.RequireFromString("-5.00")})
		require.Error(t, err)
		assert.Contains(t, ValidationErrorMessage(err), "price: must be at least 0")
	})

	t.Run("zero price passes", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&priceForm{Price: decimal.Zero})
		assert.NoError(t, err)
	})
}
