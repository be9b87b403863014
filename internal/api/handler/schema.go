package handler

import "github.com/shopspring/decimal"

// errorResponse is the standard error envelope returned on 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the success envelope for add/update/delete operations.
type messageResponse struct {
	Message string `json:"message"`
}

// --- User ---

// userRequest is shared by add and update. On update, empty email, password
// and role mean "keep the current value"; accountIds replaces the
// association in full.
type userRequest struct {
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	Role       string  `json:"role"`
	AccountIDs []int64 `json:"accountIds"`
}

// --- Account ---

type accountRequest struct {
	AccountNumber  string          `json:"accountNumber"`
	Balance        decimal.Decimal `json:"balance"`
	UserID         int64           `json:"userId"`
	TransactionIDs []int64         `json:"transactionIds"`
}

// --- Transaction ---

// transactionRequest uses a pointer for accountId so an absent reference is
// distinguishable from account id 0.
type transactionRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	TransactionType string          `json:"transactionType"`
	AccountID       *int64          `json:"accountId"`
}

// --- Auth ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
