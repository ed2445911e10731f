package seeds

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"ams_backend/internals/configs"
	"ams_backend/internals/constants"
	database "ams_backend/internals/databases"
)

// SeedOwner provisions the bootstrap owner account from env credentials.
// Upsert keyed by username, so restarts never duplicate the account and a
// changed OWNER_PASSWORD takes effect on the next boot.
func SeedOwner(ctx context.Context, db *mongo.Database) {
	if configs.OwnerUsername == "" || configs.OwnerPassword == "" {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(configs.OwnerPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] owner seed: hash failed: %v", err)
		return
	}

	now := time.Now()
	_, err = db.Collection(database.CollUsers).UpdateOne(ctx,
		bson.M{"username": configs.OwnerUsername},
		bson.M{
			"$set": bson.M{
				"password":  string(hash),
				"role":      constants.RoleOwner,
				"isActive":  true,
				"updatedAt": now,
			},
			"$setOnInsert": bson.M{
				"id":        uuid.NewString(),
				"username":  configs.OwnerUsername,
				"createdAt": now,
			},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Printf("[ERROR] owner seed: %v", err)
		return
	}
	log.Printf("✅ Owner account %q ready", configs.OwnerUsername)
}
