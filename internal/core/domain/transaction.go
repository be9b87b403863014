package domain

import "github.com/shopspring/decimal"

const (
	TransactionDeposit    = "Deposit"
	TransactionWithdrawal = "Withdrawal"
)

// Transaction is a posting against a single Account. The account reference is
// required at creation; deleting the account later leaves the posting in
// place with a dangling AccountID.
type Transaction struct {
	ID              int64           `json:"id"`
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	AccountID       int64           `json:"accountId"`
}
