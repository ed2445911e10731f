package database

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"ams_backend/internals/configs"
)

// Collection names, one per entity type.
const (
	CollAcademies    = "academies"
	CollUsers        = "users"
	CollUserInfo     = "user_info"
	CollPlayers      = "players"
	CollCoaches      = "coaches"
	CollSessions     = "sessions"
	CollBatches      = "batches"
	CollTransactions = "transactions"
	CollDocuments    = "finance_documents"
)

var (
	client *mongo.Client
	db     *mongo.Database
	once   sync.Once
)

// ConnectDB opens the process-wide Mongo connection. Idempotent: calling it
// again returns the handle established by the first call. There is no
// reconnect/backoff here; a dropped connection surfaces as a request error.
func ConnectDB() *mongo.Database {
	once.Do(func() {
		log.Println("🔌 Connecting to MongoDB...")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		opts := options.Client().
			ApplyURI(configs.MongoURI).
			SetMaxPoolSize(20).
			SetMaxConnIdleTime(60 * time.Second)

		c, err := mongo.Connect(ctx, opts)
		if err != nil {
			log.Fatalf("❌ Mongo connect failed: %v", err)
		}
		if err := c.Ping(ctx, readpref.Primary()); err != nil {
			log.Fatalf("❌ Mongo ping failed: %v", err)
		}

		client = c
		db = c.Database(configs.MongoDBName)
		log.Println("✅ MongoDB connected.")
	})
	return db
}

// GetDB returns the singleton database handle. ConnectDB must have run.
func GetDB() *mongo.Database {
	if db == nil {
		log.Fatal("❌ GetDB called before ConnectDB")
	}
	return db
}

// Disconnect closes the client pool on shutdown.
func Disconnect(ctx context.Context) {
	if client != nil {
		_ = client.Disconnect(ctx)
	}
}

// EnsureIndexes creates the secondary indexes the list endpoints filter on.
// Safe to run on every startup; Mongo treats existing indexes as no-ops.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	specs := map[string][]mongo.IndexModel{
		CollUsers: {
			{Keys: bson.D{{Key: "username", Value: 1}}},
			{Keys: bson.D{{Key: "academyId", Value: 1}}},
		},
		CollUserInfo: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "academyId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
		},
		CollPlayers: {
			{Keys: bson.D{{Key: "academyId", Value: 1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}},
		},
		CollCoaches: {
			{Keys: bson.D{{Key: "academyId", Value: 1}}},
			{Keys: bson.D{{Key: "id", Value: 1}}},
		},
		CollSessions: {
			{Keys: bson.D{{Key: "academyId", Value: 1}, {Key: "date", Value: -1}}},
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "parentSessionId", Value: 1}}},
		},
		CollBatches: {
			{Keys: bson.D{{Key: "academyId", Value: 1}}},
		},
		CollTransactions: {
			{Keys: bson.D{{Key: "academyId", Value: 1}, {Key: "date", Value: -1}}},
		},
		CollDocuments: {
			{Keys: bson.D{{Key: "academyId", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := d.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}
