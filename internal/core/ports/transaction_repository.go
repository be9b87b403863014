package ports

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	FindAll(ctx context.Context) ([]*domain.Transaction, error)
	FindByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// FindByAccountID returns the postings against an account, empty slice
	// when there are none.
	FindByAccountID(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
	Insert(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id int64) error
}
