package domain

import "github.com/shopspring/decimal"

// Account is a ledger account owned by exactly one User.
//
// Balance is an independently managed field: it is set on create and replaced
// on update, and posting a Transaction against the account never recomputes
// it. TransactionIDs mirrors the postings made against the account; an
// account update replaces the whole set with what the payload supplies.
type Account struct {
	ID             int64           `json:"id"`
	AccountNumber  string          `json:"accountNumber"`
	Balance        decimal.Decimal `json:"balance"`
	UserID         int64           `json:"userId"`
	TransactionIDs []int64         `json:"-"`
}
