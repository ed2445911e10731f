package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/players/model"
	helper "ams_backend/internals/helpers"
)

// PlayerRepository is the players-collection access contract. Controllers
// depend on this interface; tests substitute an in-memory implementation.
type PlayerRepository interface {
	FindByID(ctx context.Context, id string) (*model.PlayerModel, error)
	FindByAcademy(ctx context.Context, academyID string) ([]model.PlayerModel, error)
	Insert(ctx context.Context, p *model.PlayerModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.PlayerModel, error)
	ReplaceAttributes(ctx context.Context, id string, attrs map[string]float64) (*model.PlayerModel, error)
	AppendPerformance(ctx context.Context, id string, entry model.PerformanceEntry) error
	SoftDelete(ctx context.Context, id string) error
	HardDelete(ctx context.Context, ids []string) (int64, error)
}

type playerRepository struct {
	coll *mongo.Collection
}

func NewPlayerRepository(db *mongo.Database) PlayerRepository {
	return &playerRepository{coll: db.Collection(database.CollPlayers)}
}

// idFilter accepts the native _id, the string id, and the legacy playerId
// field in one disjunctive match.
func idFilter(id string) bson.M {
	return helper.IDFilter(id, "playerId")
}

func (r *playerRepository) FindByID(ctx context.Context, id string) (*model.PlayerModel, error) {
	var p model.PlayerModel
	err := r.coll.FindOne(ctx, helper.NotDeleted(idFilter(id))).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) FindByAcademy(ctx context.Context, academyID string) ([]model.PlayerModel, error) {
	filter := helper.NotDeleted(bson.M{"academyId": academyID})
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	players := []model.PlayerModel{}
	if err := cur.All(ctx, &players); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *playerRepository) Insert(ctx context.Context, p *model.PlayerModel) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ObjectID = oid
	}
	return nil
}

func (r *playerRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.PlayerModel, error) {
	set["updatedAt"] = time.Now()

	var p model.PlayerModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		helper.NotDeleted(idFilter(id)),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *playerRepository) ReplaceAttributes(ctx context.Context, id string, attrs map[string]float64) (*model.PlayerModel, error) {
	// Wholesale replacement is the contract of the metric-update endpoint.
	return r.UpdateFields(ctx, id, bson.M{"attributes": attrs})
}

func (r *playerRepository) AppendPerformance(ctx context.Context, id string, entry model.PerformanceEntry) error {
	update := bson.M{
		"$push": bson.M{"performanceHistory": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	// Counters accumulate; $inc keeps concurrent appends additive instead
	// of last-write-wins.
	if len(entry.Stats) > 0 {
		inc := bson.M{}
		for k, v := range entry.Stats {
			inc["stats."+k] = v
		}
		update["$inc"] = inc
	}

	res, err := r.coll.UpdateOne(ctx, helper.NotDeleted(idFilter(id)), update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *playerRepository) SoftDelete(ctx context.Context, id string) error {
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

func (r *playerRepository) HardDelete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	ors := make([]bson.M, 0, len(ids))
	for _, id := range ids {
		ors = append(ors, idFilter(id))
	}
	res, err := r.coll.DeleteMany(ctx, bson.M{"$or": ors})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
