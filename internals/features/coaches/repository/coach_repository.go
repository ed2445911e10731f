package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/coaches/model"
	helper "ams_backend/internals/helpers"
)

type CoachRepository interface {
	FindByID(ctx context.Context, id string) (*model.CoachModel, error)
	FindByAcademy(ctx context.Context, academyID string) ([]model.CoachModel, error)
	Insert(ctx context.Context, m *model.CoachModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.CoachModel, error)
	AppendRating(ctx context.Context, id string, r model.RatingEntry) error
	SessionCount(ctx context.Context, coachID string) (int64, error)
	SoftDelete(ctx context.Context, id string) error
}

type coachRepository struct {
	coll     *mongo.Collection
	sessions *mongo.Collection
}

func NewCoachRepository(db *mongo.Database) CoachRepository {
	return &coachRepository{
		coll:     db.Collection(database.CollCoaches),
		sessions: db.Collection(database.CollSessions),
	}
}

// Coaches created from user accounts may be looked up by userId.
func idFilter(id string) bson.M {
	return helper.IDFilter(id, "userId", "coachId")
}

func (r *coachRepository) FindByID(ctx context.Context, id string) (*model.CoachModel, error) {
	var m model.CoachModel
	err := r.coll.FindOne(ctx, helper.NotDeleted(idFilter(id))).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *coachRepository) FindByAcademy(ctx context.Context, academyID string) ([]model.CoachModel, error) {
	cur, err := r.coll.Find(ctx,
		helper.NotDeleted(bson.M{"academyId": academyID}),
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	coaches := []model.CoachModel{}
	if err := cur.All(ctx, &coaches); err != nil {
		return nil, err
	}
	return coaches, nil
}

func (r *coachRepository) Insert(ctx context.Context, m *model.CoachModel) error {
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, m)
	return err
}

func (r *coachRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.CoachModel, error) {
	set["updatedAt"] = time.Now()

	var m model.CoachModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		helper.NotDeleted(idFilter(id)),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *coachRepository) AppendRating(ctx context.Context, id string, rating model.RatingEntry) error {
	res, err := r.coll.UpdateOne(ctx, helper.NotDeleted(idFilter(id)), bson.M{
		"$push": bson.M{"ratings": rating},
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

// SessionCount aggregates the coach's non-deleted sessions.
func (r *coachRepository) SessionCount(ctx context.Context, coachID string) (int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"coachId":   coachID,
			"isDeleted": bson.M{"$ne": true},
		}}},
		{{Key: "$count", Value: "count"}},
	}
	cur, err := r.sessions.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var out []struct {
		Count int64 `bson:"count"`
	}
	if err := cur.All(ctx, &out); err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}
	return out[0].Count, nil
}

func (r *coachRepository) SoftDelete(ctx context.Context, id string) error {
	now := time.Now()
	res, err := r.coll.UpdateOne(ctx, idFilter(id), bson.M{
		"$set": bson.M{"isDeleted": true, "deletedAt": now, "updatedAt": now},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
