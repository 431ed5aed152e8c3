package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda meio para longe do zero a partir da representação decimal,
// então 1.005 vira 1.01 (math.Round sobre o float daria 1.00)
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
