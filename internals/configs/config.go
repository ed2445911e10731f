package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	MongoURI      string
	MongoDBName   string
	JWTSecret     string
	OwnerUsername string
	OwnerPassword string
	CacheTTL      time.Duration
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running on Railway, using system ENV")
	}

	MongoURI = GetEnv("MONGODB_URI")
	MongoDBName = GetEnv("MONGODB_DB")
	JWTSecret = GetEnv("JWT_SECRET")
	OwnerUsername = GetEnv("OWNER_USERNAME")
	OwnerPassword = GetEnv("OWNER_PASSWORD")
	CacheTTL = time.Duration(GetEnvInt("CACHE_TTL_SECONDS", 30)) * time.Second

	// Missing connection config is fatal: every subsystem needs the store.
	if MongoURI == "" {
		log.Fatal("❌ MONGODB_URI is not set")
	}
	if MongoDBName == "" {
		log.Fatal("❌ MONGODB_DB is not set")
	}
	if JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}
	if OwnerUsername == "" || OwnerPassword == "" {
		log.Println("⚠️ OWNER_USERNAME/OWNER_PASSWORD not set, owner bootstrap skipped")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[WARN] %s=%q is not a number, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
