package kernel

import "github.com/shopspring/decimal"

// MoneyScale is the number of decimal places every persisted monetary amount carries.
const MoneyScale = 2

// RoundMoney rounds an amount to two decimal places using round-half-up.
// Every derived total in the system (order totals, delivery-note values) goes
// through this function so rounding is applied in exactly one place.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}
