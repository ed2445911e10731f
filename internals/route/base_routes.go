// file: internals/route/base_routes.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"ams_backend/internals/cache"
	"ams_backend/internals/configs"

	academyRepo "ams_backend/internals/features/academies/repository"
	academyRoute "ams_backend/internals/features/academies/route"
	batchRepo "ams_backend/internals/features/batches/repository"
	batchRoute "ams_backend/internals/features/batches/route"
	coachRepo "ams_backend/internals/features/coaches/repository"
	coachRoute "ams_backend/internals/features/coaches/route"
	financeRepo "ams_backend/internals/features/finance/repository"
	financeRoute "ams_backend/internals/features/finance/route"
	playerRepo "ams_backend/internals/features/players/repository"
	playerRoute "ams_backend/internals/features/players/route"
	sessionRepo "ams_backend/internals/features/sessions/repository"
	sessionRoute "ams_backend/internals/features/sessions/route"
	userRepo "ams_backend/internals/features/users/repository"
	userRoute "ams_backend/internals/features/users/route"

	authMw "ams_backend/internals/middlewares/auth"
)

// SetupRoutes wires repositories against the shared database handle and
// registers every feature's routes. The public /api/auth group stays
// outside the JWT guard; everything else sits behind it.
func SetupRoutes(app *fiber.App, db *mongo.Database) {
	players := playerRepo.NewPlayerRepository(db)
	coaches := coachRepo.NewCoachRepository(db)
	sessions := sessionRepo.NewSessionRepository(db)
	batches := batchRepo.NewBatchRepository(db)
	academies := academyRepo.NewAcademyRepository(db)
	finance := financeRepo.NewFinanceRepository(db)
	users := userRepo.NewUserRepository(db)

	playerCache := cache.New(configs.CacheTTL)

	log.Println("[INFO] Setting up AuthRoutes...")
	userRoute.AuthRoutes(app, users)

	log.Println("[INFO] Setting up API group...")
	api := app.Group("/api", authMw.AuthMiddleware())

	userRoute.UserRoutes(api, users)
	academyRoute.AcademyRoutes(api, academies)
	playerRoute.PlayerRoutes(api, players, playerCache)
	coachRoute.CoachRoutes(api, coaches)
	sessionRoute.SessionRoutes(api, sessions, players)
	batchRoute.BatchRoutes(api, batches)
	financeRoute.FinanceRoutes(api, finance)
}
