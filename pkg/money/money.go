// Package money does currency arithmetic on the float64 amounts stored in
// the collections, routing every operation through decimal so sums and
// averages come out exact to the cent.
package money

import "github.com/shopspring/decimal"

const places = 2

// Sub returns a-b rounded to cents.
func Sub(a, b float64) float64 {
	return decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(places).InexactFloat64()
}

// LineTotal returns price*quantity as a decimal.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds amounts exactly.
func Sum(amounts ...float64) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total
}

// Avg returns total/count rounded to cents, or zero when count is zero.
func Avg(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), places)
}

// Float rounds d to cents and converts it for storage.
func Float(d decimal.Decimal) float64 {
	return d.Round(places).InexactFloat64()
}
