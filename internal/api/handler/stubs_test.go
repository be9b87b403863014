package handler

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// Function-backed service stubs. A nil field means the test does not expect
// that call; reaching it panics and fails the test loudly.

type stubUserService struct {
	ListFn   func(ctx context.Context) ([]*domain.User, error)
	GetFn    func(ctx context.Context, id int64) (*domain.User, error)
	CreateFn func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	UpdateFn func(ctx context.Context, id int64, input ports.UpdateUserInput) error
	DeleteFn func(ctx context.Context, id int64) error
}

func (s *stubUserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.ListFn(ctx)
}

func (s *stubUserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.GetFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.CreateFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) error {
	return s.UpdateFn(ctx, id, input)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.DeleteFn(ctx, id)
}

type stubAccountService struct {
	ListFn       func(ctx context.Context) ([]*domain.Account, error)
	GetFn        func(ctx context.Context, id int64) (*domain.Account, error)
	CreateFn     func(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error)
	UpdateFn     func(ctx context.Context, id int64, input ports.UpdateAccountInput) error
	DeleteFn     func(ctx context.Context, id int64) error
	ListByUserFn func(ctx context.Context, userID int64) ([]*domain.Account, error)
}

func (s *stubAccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.ListFn(ctx)
}

func (s *stubAccountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	return s.GetFn(ctx, id)
}

func (s *stubAccountService) Create(ctx context.Context, input ports.CreateAccountInput) (*domain.Account, error) {
	return s.CreateFn(ctx, input)
}

func (s *stubAccountService) Update(ctx context.Context, id int64, input ports.UpdateAccountInput) error {
	return s.UpdateFn(ctx, id, input)
}

func (s *stubAccountService) Delete(ctx context.Context, id int64) error {
	return s.DeleteFn(ctx, id)
}

func (s *stubAccountService) ListByUser(ctx context.Context, userID int64) ([]*domain.Account, error) {
	return s.ListByUserFn(ctx, userID)
}

type stubTransactionService struct {
	ListFn          func(ctx context.Context) ([]*domain.Transaction, error)
	GetFn           func(ctx context.Context, id int64) (*domain.Transaction, error)
	CreateFn        func(ctx context.Context, input ports.TransactionInput) (*domain.Transaction, error)
	UpdateFn        func(ctx context.Context, id int64, input ports.TransactionInput) error
	DeleteFn        func(ctx context.Context, id int64) error
	ListByAccountFn func(ctx context.Context, accountID int64) ([]*domain.Transaction, error)
}

func (s *stubTransactionService) List(ctx context.Context) ([]*domain.Transaction, error) {
	return s.ListFn(ctx)
}

func (s *stubTransactionService) Get(ctx context.Context, id int64) (*domain.Transaction, error) {
	return s.GetFn(ctx, id)
}

func (s *stubTransactionService) Create(ctx context.Context, input ports.TransactionInput) (*domain.Transaction, error) {
	return s.CreateFn(ctx, input)
}

func (s *stubTransactionService) Update(ctx context.Context, id int64, input ports.TransactionInput) error {
	return s.UpdateFn(ctx, id, input)
}

func (s *stubTransactionService) Delete(ctx context.Context, id int64) error {
	return s.DeleteFn(ctx, id)
}

func (s *stubTransactionService) ListByAccount(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	return s.ListByAccountFn(ctx, accountID)
}

type stubAuthService struct {
	LoginFn func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.LoginFn(ctx, email, password)
}

type stubGuard struct {
	seen  map[string]bool
	marks []string
}

func newStubGuard() *stubGuard {
	return &stubGuard{seen: make(map[string]bool)}
}

func (g *stubGuard) Seen(_ context.Context, key string) (bool, error) {
	return g.seen[key], nil
}

func (g *stubGuard) Mark(_ context.Context, key string) error {
	g.seen[key] = true
	g.marks = append(g.marks, key)
	return nil
}
