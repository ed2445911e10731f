package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "ams_backend/internals/databases"
	"ams_backend/internals/features/academies/model"
	helper "ams_backend/internals/helpers"
)

type AcademyRepository interface {
	FindByID(ctx context.Context, id string) (*model.AcademyModel, error)
	FindAll(ctx context.Context) ([]model.AcademyModel, error)
	Insert(ctx context.Context, a *model.AcademyModel) error
	UpdateFields(ctx context.Context, id string, set bson.M) (*model.AcademyModel, error)
}

type academyRepository struct {
	coll *mongo.Collection
}

func NewAcademyRepository(db *mongo.Database) AcademyRepository {
	return &academyRepository{coll: db.Collection(database.CollAcademies)}
}

func (r *academyRepository) FindByID(ctx context.Context, id string) (*model.AcademyModel, error) {
	var a model.AcademyModel
	err := r.coll.FindOne(ctx, helper.IDFilter(id)).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *academyRepository) FindAll(ctx context.Context) ([]model.AcademyModel, error) {
	cur, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	academies := []model.AcademyModel{}
	if err := cur.All(ctx, &academies); err != nil {
		return nil, err
	}
	return academies, nil
}

func (r *academyRepository) Insert(ctx context.Context, a *model.AcademyModel) error {
	now := time.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *academyRepository) UpdateFields(ctx context.Context, id string, set bson.M) (*model.AcademyModel, error) {
	set["updatedAt"] = time.Now()

	var a model.AcademyModel
	err := r.coll.FindOneAndUpdate(
		ctx,
		helper.IDFilter(id),
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}
