package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/sessions/model"
	helper "ams_backend/internals/helpers"
)

// SessionFilter is the exact-match conjunction the list endpoint supports.
type SessionFilter struct {
	AcademyID string
	CoachID   string
	Status    string
	PlayerID  string
}

type SessionRepository interface {
	FindByID(ctx context.Context, id string) (*model.SessionModel, error)
	FindByFilter(ctx context.Context, f SessionFilter) ([]model.SessionModel, error)
	FindOccurrences(ctx context.Context, parentID string) ([]model.SessionModel, error)
	Insert(ctx context.Context, s *model.SessionModel) error
	InsertMany(ctx context.Context, sessions []model.SessionModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.SessionModel, error)
	SetAttendance(ctx context.Context, id, playerID string, rec model.AttendanceRecord) error
	SetPlayerMetrics(ctx context.Context, id, playerID string, metrics map[string]float64) error
	SoftDelete(ctx context.Context, id string) error
	HardDeleteOccurrences(ctx context.Context, parentID string) (int64, error)
}

type sessionRepository struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) SessionRepository {
	return &sessionRepository{coll: db.Collection(database.CollSessions)}
}

func idFilter(id string) bson.M {
	return helper.IDFilter(id, "sessionId")
}

func (r *sessionRepository) FindByID(ctx context.Context, id string) (*model.SessionModel, error) {
	var s model.SessionModel
	err := r.coll.FindOne(ctx, helper.NotDeleted(idFilter(id))).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepository) FindByFilter(ctx context.Context, f SessionFilter) ([]model.SessionModel, error) {
	filter := bson.M{"academyId": f.AcademyID}
	if f.CoachID != "" {
		filter["coachId"] = f.CoachID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	if f.PlayerID != "" {
		filter["assignedPlayers"] = f.PlayerID
	}

	cur, err := r.coll.Find(ctx, helper.NotDeleted(filter),
		options.Find().SetSort(bson.D{{Key: "start", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := []model.SessionModel{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) FindOccurrences(ctx context.Context, parentID string) ([]model.SessionModel, error) {
	cur, err := r.coll.Find(ctx,
		helper.NotDeleted(bson.M{"parentSessionId": parentID}),
		options.Find().SetSort(bson.D{{Key: "start", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	sessions := []model.SessionModel{}
	if err := cur.All(ctx, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepository) Insert(ctx context.Context, s *model.SessionModel) error {
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, s)
	return err
}

func (r *sessionRepository) InsertMany(ctx context.Context, sessions []model.SessionModel) error {
	if len(sessions) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(sessions))
	for i := range sessions {
		sessions[i].CreatedAt = now
		sessions[i].UpdatedAt = now
		docs = append(docs, sessions[i])
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *sessionRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.SessionModel, error) {
	set["updatedAt"] = time.Now()

	var s model.SessionModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		helper.NotDeleted(idFilter(id)),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// SetAttendance writes one player's record on a dotted path, so two staff
// marking different players concurrently never clobber each other.
func (r *sessionRepository) SetAttendance(ctx context.Context, id, playerID string, rec model.AttendanceRecord) error {
	res, err := r.coll.UpdateOne(ctx, helper.NotDeleted(idFilter(id)), bson.M{
		"$set": bson.M{
			"attendance." + playerID: rec,
			"updatedAt":              time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *sessionRepository) SetPlayerMetrics(ctx context.Context, id, playerID string, metrics map[string]float64) error {
	res, err := r.coll.UpdateOne(ctx, helper.NotDeleted(idFilter(id)), bson.M{
		"$set": bson.M{
			"playerMetrics." + playerID: metrics,
			"updatedAt":                 time.Now(),
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *sessionRepository) SoftDelete(ctx context.Context, id string) error {
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

// HardDeleteOccurrences removes a recurring series' children permanently.
func (r *sessionRepository) HardDeleteOccurrences(ctx context.Context, parentID string) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"parentSessionId": parentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
