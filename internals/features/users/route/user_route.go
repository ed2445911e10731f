package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	userCtrl "ams_backend/internals/features/users/controller"
	"ams_backend/internals/features/users/repository"
	"ams_backend/internals/middlewares"
	authMw "ams_backend/internals/middlewares/auth"
)

// AuthRoutes are public (login behind the stricter limiter).
func AuthRoutes(app *fiber.App, repo repository.UserRepository) {
	ctrl := userCtrl.NewAuthController(repo)

	g := app.Group("/api/auth")
	g.Post("/register", ctrl.Register)
	g.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	g.Post("/logout", ctrl.Logout)
	g.Get("/me", authMw.AuthMiddleware(), ctrl.Me)
}

func UserRoutes(r fiber.Router, repo repository.UserRepository) {
	ctrl := userCtrl.NewUserController(repo)

	g := r.Group("/users")
	g.Get("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.List)
	g.Get("/info", ctrl.GetInfo)
	g.Put("/info", ctrl.UpsertInfo)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", authMw.RequireRoles(constants.AdminRoles...), ctrl.Update)
}
