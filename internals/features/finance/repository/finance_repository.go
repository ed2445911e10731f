package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/finance/model"
	helper "ams_backend/internals/helpers"
)

type FinanceRepository interface {
	FindTransactions(ctx context.Context, academyID string) ([]model.TransactionModel, error)
	InsertTransaction(ctx context.Context, t *model.TransactionModel) error
	DeleteTransaction(ctx context.Context, id string) error
	Summary(ctx context.Context, academyID string) (*model.Summary, error)

	FindDocuments(ctx context.Context, academyID string) ([]model.DocumentModel, error)
	FindDocumentByID(ctx context.Context, id string) (*model.DocumentModel, error)
	InsertDocument(ctx context.Context, d *model.DocumentModel) error
	DeleteDocument(ctx context.Context, id string) error
}

type financeRepository struct {
	tx   *mongo.Collection
	docs *mongo.Collection
}

func NewFinanceRepository(db *mongo.Database) FinanceRepository {
	return &financeRepository{
		tx:   db.Collection(database.CollTransactions),
		docs: db.Collection(database.CollDocuments),
	}
}

func (r *financeRepository) FindTransactions(ctx context.Context, academyID string) ([]model.TransactionModel, error) {
	cur, err := r.tx.Find(ctx, bson.M{"academyId": academyID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	txs := []model.TransactionModel{}
	if err := cur.All(ctx, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *financeRepository) InsertTransaction(ctx context.Context, t *model.TransactionModel) error {
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now
	_, err := r.tx.InsertOne(ctx, t)
	return err
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, id string) error {
	res, err := r.tx.DeleteOne(ctx, helper.IDFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Summary groups the academy's ledger by type and sums the amounts.
func (r *financeRepository) Summary(ctx context.Context, academyID string) (*model.Summary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"academyId": academyID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$type",
			"total": bson.M{"$sum": "$amount"},
		}}},
	}
	cur, err := r.tx.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		Type  string  `bson:"_id"`
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}

	s := &model.Summary{}
	for _, row := range rows {
		switch row.Type {
		case "income":
			s.TotalIncome = row.Total
		case "expense":
			s.TotalExpense = row.Total
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpense
	return s, nil
}

func (r *financeRepository) FindDocuments(ctx context.Context, academyID string) ([]model.DocumentModel, error) {
	// Listings omit the payload; it can be megabytes per document.
	cur, err := r.docs.Find(ctx, bson.M{"academyId": academyID},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: -1}}).
			SetProjection(bson.M{"data": 0}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	docs := []model.DocumentModel{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *financeRepository) FindDocumentByID(ctx context.Context, id string) (*model.DocumentModel, error) {
	var d model.DocumentModel
	err := r.docs.FindOne(ctx, helper.IDFilter(id)).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *financeRepository) InsertDocument(ctx context.Context, d *model.DocumentModel) error {
	d.CreatedAt = time.Now()
	_, err := r.docs.InsertOne(ctx, d)
	return err
}

func (r *financeRepository) DeleteDocument(ctx context.Context, id string) error {
	res, err := r.docs.DeleteOne(ctx, helper.IDFilter(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
