package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal_ExactDecimal(t *testing.T) {
	// 4.99 × 3 must be exactly 14.97 — no binary float drift
	price := decimal.RequireFromString("4.99")
	assert.Equal(t, "14.97", LineTotal(price, 3).String())
}

func TestLineTotal_QuantityOne(t *testing.T) {
	price := decimal.RequireFromString("2.50")
	assert.True(t, LineTotal(price, 1).Equal(price))
}

func TestSum(t *testing.T) {
	total := Sum(
		decimal.RequireFromString("24.00"),
		decimal.RequireFromString("2.50"),
	)
	assert.Equal(t, "26.5", total.String())

	assert.True(t, Sum().IsZero())
}

func TestChange(t *testing.T) {
	change := Change(decimal.RequireFromString("30.00"), decimal.RequireFromString("26.50"))
	assert.Equal(t, "3.5", change.String())
}

func TestChange_Negative(t *testing.T) {
	// Underpayment is not clamped here; the service layer flags it.
	change := Change(decimal.RequireFromString("20.00"), decimal.RequireFromString("26.50"))
	assert.True(t, change.IsNegative())
	assert.Equal(t, "-6.5", change.String())
}
