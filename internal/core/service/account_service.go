package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// AccountService implements account record operations.
type AccountService struct {
	repo ports.AccountRepository
	log  zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, log zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, log: log}
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.FindAll(ctx)
}

func (s *AccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

// Create stores the account with the balance exactly as supplied. The owning
// user reference is taken on trust; it is not resolved against the user
// store.
func (s *AccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	account := &domain.Account{
		AccountNumber: input.AccountNumber,
		Balance:       input.Balance,
		UserID:        input.UserID,
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		s.log.Error().Err(err).Str("account_number", input.AccountNumber).Msg("failed to create account")
		return nil, err
	}

	s.log.Info().Int64("account_id", created.ID).Str("account_number", created.AccountNumber).Msg("account created")
	return created, nil
}

// Update overwrites every mutable field, including the owning user and the
// full transaction set reference. Callers supply complete objects.
func (s *AccountService) Update(ctx context.Context, id int64, input ports.UpdateAccountInput) error {
	account, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	account.AccountNumber = input.AccountNumber
	account.Balance = input.Balance
	account.UserID = input.UserID
	account.TransactionIDs = input.TransactionIDs

	if err := s.repo.Update(ctx, account); err != nil {
		return err
	}

	s.log.Info().Int64("account_id", id).Msg("account updated")
	return nil
}

// Delete removes the account only. Postings against it are left in place
// with a dangling account reference.
func (s *AccountService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("account_id", id).Msg("account deleted")
	return nil
}

func (s *AccountService) ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error) {
	return s.repo.FindByUserID(ctx, userID)
}
