package utils

import (
	"fmt"
	"math"
)

// FormatMoney keeps consistent decimal formatting for currency fields.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// SameAmount compares two decimal amounts with a cent tolerance, so JSON
// float round-trips do not reject a matching booking price.
func SameAmount(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}
