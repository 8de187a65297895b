package models

import "github.com/shopspring/decimal"

// MaxMoney is the exclusive magnitude bound for money columns.
// numeric(20,8) holds 12 integer digits.
var MaxMoney = decimal.New(1, 12)

func init() {
	// Clients expect balances and amounts as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}
