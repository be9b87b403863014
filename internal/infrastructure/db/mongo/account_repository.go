package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/coreledger/banking-api/internal/core/domain"
)

const accountsCollection = "accounts"

// AccountRepository persists account records. Balances are stored as decimal
// strings so no precision is lost in BSON.
type AccountRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{db: db, coll: db.Collection(accountsCollection)}
}

type accountDoc struct {
	ID             int64   `bson:"_id"`
	AccountNumber  string  `bson:"account_number"`
	Balance        string  `bson:"balance"`
	UserID         int64   `bson:"user_id"`
	TransactionIDs []int64 `bson:"transaction_ids,omitempty"`
}

func toAccountDoc(a *domain.Account) accountDoc {
	return accountDoc{
		ID:             a.ID,
		AccountNumber:  a.AccountNumber,
		Balance:        a.Balance.String(),
		UserID:         a.UserID,
		TransactionIDs: a.TransactionIDs,
	}
}

func (d accountDoc) toDomain() (*domain.Account, error) {
	balance, err := decimal.NewFromString(d.Balance)
	if err != nil {
		return nil, fmt.Errorf("account %d: bad stored balance %q: %w", d.ID, d.Balance, err)
	}
	return &domain.Account{
		ID:             d.ID,
		AccountNumber:  d.AccountNumber,
		Balance:        balance,
		UserID:         d.UserID,
		TransactionIDs: d.TransactionIDs,
	}, nil
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *AccountRepository) FindByUserID(ctx context.Context, userID int64) ([]*domain.Account, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *AccountRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer cur.Close(ctx)

	accounts := make([]*domain.Account, 0)
	for cur.Next(ctx) {
		var d accountDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		account, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, cur.Err()
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d accountDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFoundWithID(domain.ErrAccountNotFound, id)
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return d.toDomain()
}

func (r *AccountRepository) Insert(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	id, err := nextSequence(ctx, r.db, accountsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toAccountDoc(account)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert account: %w", err)
	}
	return doc.toDomain()
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": account.ID}, toAccountDoc(account))
	if err != nil {
		return fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, account.ID)
	}
	return nil
}

// Delete removes the account document only; transaction documents keep
// their account_id untouched.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundWithID(domain.ErrAccountNotFound, id)
	}
	return nil
}

// EnsureIndexes creates the owner index backing user-scoped listings.
func (r *AccountRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}},
	})
	return err
}
