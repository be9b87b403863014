package service

import (
	"context"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// In-memory repository stubs shared by the service tests.

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrUserNotFound, id)
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrUserNotFound, user.ID)
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.NotFoundWithID(domain.ErrUserNotFound, id)
	}
	delete(r.users, id)
	return nil
}

type stubAccountRepo struct {
	accounts  map[int64]*domain.Account
	nextID    int64
	findCalls int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func cloneAccount(a *domain.Account) *domain.Account {
	clone := *a
	return &clone
}

func (r *stubAccountRepo) FindAll(_ context.Context) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, cloneAccount(a))
	}
	return out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	r.findCalls++
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrAccountNotFound, id)
	}
	return cloneAccount(a), nil
}

func (r *stubAccountRepo) FindByUserID(_ context.Context, userID int64) ([]*domain.Account, error) {
	out := make([]*domain.Account, 0)
	for _, a := range r.accounts {
		if a.UserID == userID {
			out = append(out, cloneAccount(a))
		}
	}
	return out, nil
}

func (r *stubAccountRepo) Insert(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.nextID++
	clone := cloneAccount(account)
	clone.ID = r.nextID
	r.accounts[clone.ID] = cloneAccount(clone)
	return clone, nil
}

func (r *stubAccountRepo) Update(_ context.Context, account *domain.Account) error {
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, account.ID)
	}
	r.accounts[account.ID] = cloneAccount(account)
	return nil
}

func (r *stubAccountRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.accounts[id]; !ok {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, id)
	}
	delete(r.accounts, id)
	return nil
}

type stubTransactionRepo struct {
	transactions map[int64]*domain.Transaction
	nextID       int64
	inserts      int
}

func newStubTransactionRepo() *stubTransactionRepo {
	return &stubTransactionRepo{transactions: make(map[int64]*domain.Transaction)}
}

func cloneTransaction(t *domain.Transaction) *domain.Transaction {
	clone := *t
	return &clone
}

func (r *stubTransactionRepo) FindAll(_ context.Context) ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		out = append(out, cloneTransaction(tx))
	}
	return out, nil
}

func (r *stubTransactionRepo) FindByID(_ context.Context, id int64) (*domain.Transaction, error) {
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
	}
	return cloneTransaction(tx), nil
}

func (r *stubTransactionRepo) FindByAccountID(_ context.Context, accountID int64) ([]*domain.Transaction, error) {
	out := make([]*domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.AccountID == accountID {
			out = append(out, cloneTransaction(tx))
		}
	}
	return out, nil
}

func (r *stubTransactionRepo) Insert(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.inserts++
	r.nextID++
	clone := cloneTransaction(tx)
	clone.ID = r.nextID
	r.transactions[clone.ID] = cloneTransaction(clone)
	return clone, nil
}

func (r *stubTransactionRepo) Update(_ context.Context, tx *domain.Transaction) error {
	if _, ok := r.transactions[tx.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, tx.ID)
	}
	r.transactions[tx.ID] = cloneTransaction(tx)
	return nil
}

func (r *stubTransactionRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.transactions[id]; !ok {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
	}
	delete(r.transactions, id)
	return nil
}
