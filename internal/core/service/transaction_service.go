package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// TransactionService implements transaction record operations. Postings
// reference an account that must exist at write time, but they never touch
// the account's balance: balance changes only through explicit account
// create/update.
type TransactionService struct {
	repo     ports.TransactionRepository
	accounts ports.AccountRepository
	log      zerolog.Logger
}

func NewTransactionService(repo ports.TransactionRepository, accounts ports.AccountRepository, log zerolog.Logger) *TransactionService {
	return &TransactionService{repo: repo, accounts: accounts, log: log}
}

func (s *TransactionService) List(ctx context.Context) ([]*domain.Transaction, error) {
	return s.repo.FindAll(ctx)
}

func (s *TransactionService) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.repo.FindByID(ctx, id)
}

// Create posts a transaction against an existing account. A missing account
// reference fails validation before any repository lookup; an unknown
// account fails with AccountNotFound before anything is written.
func (s *TransactionService) Create(ctx context.Context, input ports.TransactionInput) (*domain.Transaction, error) {
	if input.AccountID == nil {
		return nil, domain.ErrMissingAccountID
	}

	account, err := s.accounts.FindByID(ctx, *input.AccountID)
	if err != nil {
		return nil, err
	}

	tx := &domain.Transaction{
		Amount:          input.Amount,
		TransactionType: input.TransactionType,
		AccountID:       account.ID,
	}

	created, err := s.repo.Insert(ctx, tx)
	if err != nil {
		s.log.Error().Err(err).Int64("account_id", account.ID).Msg("failed to create transaction")
		return nil, err
	}

	s.log.Info().Int64("transaction_id", created.ID).Int64("account_id", account.ID).Str("type", created.TransactionType).Msg("transaction posted")
	return created, nil
}

// Update overwrites amount, type and the account reference with exactly what
// the payload specifies. The transaction must exist, and the new account
// reference must resolve.
func (s *TransactionService) Update(ctx context.Context, id int64, input ports.TransactionInput) error {
	tx, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.AccountID == nil {
		return domain.ErrMissingAccountID
	}
	account, err := s.accounts.FindByID(ctx, *input.AccountID)
	if err != nil {
		return err
	}

	tx.Amount = input.Amount
	tx.TransactionType = input.TransactionType
	tx.AccountID = account.ID

	if err := s.repo.Update(ctx, tx); err != nil {
		return err
	}

	s.log.Info().Int64("transaction_id", id).Msg("transaction updated")
	return nil
}

func (s *TransactionService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("transaction_id", id).Msg("transaction deleted")
	return nil
}

func (s *TransactionService) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	return s.repo.FindByAccountID(ctx, accountID)
}
