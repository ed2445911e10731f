package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/users/model"
	helper "ams_backend/internals/helpers"
)

type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.UserModel, error)
	FindByUsername(ctx context.Context, username string) (*model.UserModel, error)
	FindByAcademy(ctx context.Context, academyID string) ([]model.UserModel, error)
	Insert(ctx context.Context, u *model.UserModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.UserModel, error)

	UpsertInfo(ctx context.Context, userID, academyID string, set bson.M) (*model.UserInfoModel, error)
	FindInfo(ctx context.Context, userID, academyID string) (*model.UserInfoModel, error)
}

type userRepository struct {
	coll *mongo.Collection
	info *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		coll: db.Collection(database.CollUsers),
		info: db.Collection(database.CollUserInfo),
	}
}

// Account lookups accept _id, the string id, the legacy userId field, and
// the username itself.
func idFilter(id string) bson.M {
	return helper.IDFilter(id, "userId", "username")
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.coll.FindOne(ctx, idFilter(id)).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*model.UserModel, error) {
	var u model.UserModel
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByAcademy(ctx context.Context, academyID string) ([]model.UserModel, error) {
	cur, err := r.coll.Find(ctx, bson.M{"academyId": academyID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	users := []model.UserModel{}
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Insert(ctx context.Context, u *model.UserModel) error {
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, u)
	return err
}

func (r *userRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.UserModel, error) {
	set["updatedAt"] = time.Now()

	var u model.UserModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		idFilter(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// UpsertInfo writes the (userId, academyId) profile record. The first call
// creates the document and stamps createdAt via $setOnInsert; later calls
// only touch the patched fields and updatedAt, so createdAt never moves and
// the pair stays unique.
func (r *userRepository) UpsertInfo(ctx context.Context, userID, academyID string, set bson.M) (*model.UserInfoModel, error) {
	now := time.Now()
	set["updatedAt"] = now

	var info model.UserInfoModel
	err := r.info.FindOneAndUpdate(
		ctx,
		bson.M{"userId": userID, "academyId": academyID},
		bson.M{
			"$set": set,
			"$setOnInsert": bson.M{
				"userId":    userID,
				"academyId": academyID,
				"createdAt": now,
			},
		},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&info)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (r *userRepository) FindInfo(ctx context.Context, userID, academyID string) (*model.UserInfoModel, error) {
	var info model.UserInfoModel
	err := r.info.FindOne(ctx, bson.M{"userId": userID, "academyId": academyID}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}
