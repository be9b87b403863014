package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/coreledger/banking-api/internal/core/domain"
)

// In-memory repositories backing the full router under test.

type memUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*domain.User
	nextID int64
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[int64]*domain.User)}
}

func (r *memUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		clone := *u
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrUserNotFound, id)
	}
	clone := *u
	return &clone, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = r.nextID
	stored := clone
	r.users[clone.ID] = &stored
	return &clone, nil
}

func (r *memUserRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrUserNotFound, user.ID)
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return domain.NotFoundWithID(domain.ErrUserNotFound, id)
	}
	delete(r.users, id)
	return nil
}

type memAccountRepo struct {
	mu       sync.Mutex
	accounts map[int64]*domain.Account
	nextID   int64
}

func newMemAccountRepo() *memAccountRepo {
	return &memAccountRepo{accounts: make(map[int64]*domain.Account)}
}

func (r *memAccountRepo) FindAll(_ context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memAccountRepo) FindByID(_ context.Context, id int64) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrAccountNotFound, id)
	}
	clone := *a
	return &clone, nil
}

func (r *memAccountRepo) FindByUserID(_ context.Context, userID int64) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Account, 0)
	for _, a := range r.accounts {
		if a.UserID == userID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memAccountRepo) Insert(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *account
	clone.ID = r.nextID
	stored := clone
	r.accounts[clone.ID] = &stored
	return &clone, nil
}

func (r *memAccountRepo) Update(_ context.Context, account *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[account.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, account.ID)
	}
	clone := *account
	r.accounts[account.ID] = &clone
	return nil
}

func (r *memAccountRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.accounts[id]; !ok {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, id)
	}
	delete(r.accounts, id)
	return nil
}

type memTransactionRepo struct {
	mu           sync.Mutex
	transactions map[int64]*domain.Transaction
	nextID       int64
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{transactions: make(map[int64]*domain.Transaction)}
}

func (r *memTransactionRepo) FindAll(_ context.Context) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		clone := *tx
		out = append(out, &clone)
	}
	return out, nil
}

func (r *memTransactionRepo) FindByID(_ context.Context, id int64) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[id]
	if !ok {
		return nil, domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
	}
	clone := *tx
	return &clone, nil
}

func (r *memTransactionRepo) FindByAccountID(_ context.Context, accountID int64) ([]*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.AccountID == accountID {
			clone := *tx
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *memTransactionRepo) Insert(_ context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	clone := *tx
	clone.ID = r.nextID
	stored := clone
	r.transactions[clone.ID] = &stored
	return &clone, nil
}

func (r *memTransactionRepo) Update(_ context.Context, tx *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[tx.ID]; !ok {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, tx.ID)
	}
	clone := *tx
	r.transactions[tx.ID] = &clone
	return nil
}

func (r *memTransactionRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.transactions[id]; !ok {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
	}
	delete(r.transactions, id)
	return nil
}

// The router registers Prometheus collectors with the default registry, so
// the test binary builds it exactly once and every test shares it.
var (
	routerOnce sync.Once
	testRouter *echo.Echo
	testUsers  *memUserRepo
)

const testSigningKey = "0123456789abcdef0123456789abcdef"

func router(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		testUsers = newMemUserRepo()
		testRouter = NewRouter(RouterConfig{
			Users:        testUsers,
			Accounts:     newMemAccountRepo(),
			Transactions: newMemTransactionRepo(),
			TokenKey:     []byte(testSigningKey),
			Logger:       zerolog.Nop(),
		})

		seed := func(email, password, role string) {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
			if err != nil {
				panic(err)
			}
			_, err = testUsers.Insert(context.Background(), &domain.User{
				FirstName: "Seed",
				LastName:  "User",
				Email:     email,
				Password:  string(hash),
				Role:      role,
			})
			if err != nil {
				panic(err)
			}
		}
		seed("a@b.com", "s3cret", domain.RoleUser)
		seed("root@b.com", "s3cret", domain.RoleAdmin)
	})
	return testRouter
}

func do(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router(t).ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, email, password string) string {
	t.Helper()
	rec := do(t, http.MethodPost, "/auth/login",
		`{"email":"`+email+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}
	return resp.Token
}

func TestRouterLogin(t *testing.T) {
	login(t, "a@b.com", "s3cret")

	rec := do(t, http.MethodPost, "/auth/login",
		`{"email":"a@b.com","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("bad password: expected 401, got %d", rec.Code)
	}

	rec = do(t, http.MethodPost, "/auth/login",
		`{"email":"ghost@b.com","password":"s3cret"}`, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown email: expected 404, got %d", rec.Code)
	}
}

func TestRouterUserRolePolicy(t *testing.T) {
	userToken := login(t, "a@b.com", "s3cret")

	// A USER token reads a single user but may not list all of them.
	rec := do(t, http.MethodGet, "/user/fetch/1", "", userToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch single as USER: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	rec = do(t, http.MethodGet, "/user/fetch", "", userToken)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("list as USER: expected 403, got %d", rec.Code)
	}

	adminToken := login(t, "root@b.com", "s3cret")
	rec = do(t, http.MethodGet, "/user/fetch", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list as ADMIN: expected 200, got %d", rec.Code)
	}

	// No token at all on a protected route.
	rec = do(t, http.MethodGet, "/user/fetch/1", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}
}

func TestRouterUserResponsesOmitPassword(t *testing.T) {
	adminToken := login(t, "root@b.com", "s3cret")

	rec := do(t, http.MethodGet, "/user/fetch", "", adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatal("password serialized in user listing")
	}
}

func TestRouterPublicRegistration(t *testing.T) {
	rec := do(t, http.MethodPost, "/user/add",
		`{"firstName":"New","lastName":"User","email":"new@b.com","password":"pw","role":"USER"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, http.MethodPost, "/user/add",
		`{"firstName":"New","lastName":"User","email":"new@b.com","password":"pw","role":"USER"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate email: expected 409, got %d", rec.Code)
	}
}

func TestRouterAccountFlow(t *testing.T) {
	// Account routes do not require a token.
	rec := do(t, http.MethodPost, "/account/add",
		`{"accountNumber":"ACC-100","balance":"250.75","userId":77}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, http.MethodGet, "/account/fetch/user/77", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list by user: expected 200, got %d", rec.Code)
	}

	// User without accounts answers 404 with a message body.
	rec = do(t, http.MethodGet, "/account/fetch/user/12345", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty list by user: expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No accounts found for user with ID 12345") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	rec = do(t, http.MethodGet, "/account/fetch/99999", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown account: expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "99999") {
		t.Fatalf("error does not echo the id: %q", rec.Body.String())
	}
}

func TestRouterTransactionFlow(t *testing.T) {
	rec := do(t, http.MethodPost, "/account/add",
		`{"accountNumber":"ACC-200","balance":"100","userId":88}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("add account: expected 201, got %d", rec.Code)
	}

	var listed []struct {
		ID int64 `json:"id"`
	}
	rec = do(t, http.MethodGet, "/account/fetch/user/88", "", "")
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil || len(listed) != 1 {
		t.Fatalf("list accounts: %v body=%s", err, rec.Body.String())
	}
	accountID := listed[0].ID

	// Account without postings answers a bare 404.
	rec = do(t, http.MethodGet, "/transaction/fetch/account/"+itoa(accountID), "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("empty postings: expected 404, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "" {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}

	// Missing account reference fails validation.
	rec = do(t, http.MethodPost, "/transaction/add",
		`{"amount":"40","transactionType":"Deposit"}`, "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing account id: expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Account ID must be provided") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}

	// Unknown account reference fails with 404 and writes nothing.
	rec = do(t, http.MethodPost, "/transaction/add",
		`{"amount":"40","transactionType":"Deposit","accountId":424242}`, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown account: expected 404, got %d", rec.Code)
	}

	rec = do(t, http.MethodPost, "/transaction/add",
		`{"amount":"40","transactionType":"Deposit","accountId":`+itoa(accountID)+`}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("post: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// The posting never adjusts the referenced account's balance.
	rec = do(t, http.MethodGet, "/account/fetch/"+itoa(accountID), "", "")
	var account struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &account); err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if !account.Balance.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("balance changed by posting: %s", account.Balance)
	}
}

func TestRouterHealthAndMetrics(t *testing.T) {
	rec := do(t, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}

	rec = do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "bank_") {
		t.Fatal("metrics output missing namespace")
	}
}

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}
