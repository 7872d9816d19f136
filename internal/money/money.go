// Package money holds the fixed-point arithmetic shared by the ledger
// and ordering services. All amounts are shopspring decimals with two
// fractional digits; binary floats are never used for currency.
package money

import "github.com/shopspring/decimal"

// LineTotal returns unitPrice × quantity as an exact decimal.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds any number of amounts, starting from zero.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Change returns cashReceived − total. The result may be negative when
// the cash tendered does not cover the total; callers decide how to
// surface that.
func Change(cashReceived, total decimal.Decimal) decimal.Decimal {
	return cashReceived.Sub(total)
}
