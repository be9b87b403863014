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

const transactionsCollection = "transactions"

// TransactionRepository persists transaction records. Amounts are stored as
// decimal strings, like account balances.
type TransactionRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewTransactionRepository(db *mongo.Database) *TransactionRepository {
	return &TransactionRepository{db: db, coll: db.Collection(transactionsCollection)}
}

type transactionDoc struct {
	ID              int64  `bson:"_id"`
	Amount          string `bson:"amount"`
	TransactionType string `bson:"transaction_type"`
	AccountID       int64  `bson:"account_id"`
}

func toTransactionDoc(t *domain.Transaction) transactionDoc {
	return transactionDoc{
		ID:              t.ID,
		Amount:          t.Amount.String(),
		TransactionType: t.TransactionType,
		AccountID:       t.AccountID,
	}
}

func (d transactionDoc) toDomain() (*domain.Transaction, error) {
	amount, err := decimal.NewFromString(d.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %d: bad stored amount %q: %w", d.ID, d.Amount, err)
	}
	return &domain.Transaction{
		ID:              d.ID,
		Amount:          amount,
		TransactionType: d.TransactionType,
		AccountID:       d.AccountID,
	}, nil
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]*domain.Transaction, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *TransactionRepository) FindByAccountID(ctx context.Context, accountID int64) ([]*domain.Transaction, error) {
	return r.findMany(ctx, bson.M{"account_id": accountID})
}

func (r *TransactionRepository) findMany(ctx context.Context, filter bson.M) ([]*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer cur.Close(ctx)

	transactions := make([]*domain.Transaction, 0)
	for cur.Next(ctx) {
		var d transactionDoc
		if err := cur.Decode(&d); err != nil {
			return nil, fmt.Errorf("decode transaction: %w", err)
		}
		tx, err := d.toDomain()
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, cur.Err()
}

func (r *TransactionRepository) FindByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d transactionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
		}
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return d.toDomain()
}

func (r *TransactionRepository) Insert(ctx context.Context, tx *domain.Transaction) (*domain.Transaction, error) {
	id, err := nextSequence(ctx, r.db, transactionsCollection)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := toTransactionDoc(tx)
	doc.ID = id
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return doc.toDomain()
}

func (r *TransactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": tx.ID}, toTransactionDoc(tx))
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, tx.ID)
	}
	return nil
}

func (r *TransactionRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.NotFoundWithID(domain.ErrTransactionNotFound, id)
	}
	return nil
}

// EnsureIndexes creates the account index backing account-scoped listings.
func (r *TransactionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}},
	})
	return err
}
