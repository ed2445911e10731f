package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/batches/model"
	helper "ams_backend/internals/helpers"
)

type BatchRepository interface {
	FindByID(ctx context.Context, id string) (*model.BatchModel, error)
	FindByAcademy(ctx context.Context, academyID string) ([]model.BatchModel, error)
	Insert(ctx context.Context, b *model.BatchModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.BatchModel, error)
	AddPlayer(ctx context.Context, id, playerID string) error
	RemovePlayer(ctx context.Context, id, playerID string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

type batchRepository struct {
	coll *mongo.Collection
}

func NewBatchRepository(db *mongo.Database) BatchRepository {
	return &batchRepository{coll: db.Collection(database.CollBatches)}
}

func (r *batchRepository) FindByID(ctx context.Context, id string) (*model.BatchModel, error) {
	var b model.BatchModel
	err := r.coll.FindOne(ctx, helper.IDFilter(id)).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepository) FindByAcademy(ctx context.Context, academyID string) ([]model.BatchModel, error) {
	cur, err := r.coll.Find(ctx, bson.M{"academyId": academyID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	batches := []model.BatchModel{}
	if err := cur.All(ctx, &batches); err != nil {
		return nil, err
	}
	return batches, nil
}

func (r *batchRepository) Insert(ctx context.Context, b *model.BatchModel) error {
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, b)
	return err
}

func (r *batchRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.BatchModel, error) {
	set["updatedAt"] = time.Now()

	var b model.BatchModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		helper.IDFilter(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&b)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *batchRepository) AddPlayer(ctx context.Context, id, playerID string) error {
	// $addToSet keeps roster membership idempotent.
	res, err := r.coll.UpdateOne(ctx, helper.IDFilter(id), bson.M{
		"$addToSet": bson.M{"players": playerID},
		"$set":      bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *batchRepository) RemovePlayer(ctx context.Context, id, playerID string) error {
	res, err := r.coll.UpdateOne(ctx, helper.IDFilter(id), bson.M{
		"$pull": bson.M{"players": playerID},
		"$set":  bson.M{"updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteByIDs removes the matching batches permanently and reports how
// many documents actually went away.
func (r *batchRepository) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ors := make([]bson.M, 0, len(ids))
	for _, id := range ids {
		ors = append(ors, helper.IDFilter(id))
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"$or": ors})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
