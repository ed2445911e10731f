package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/cache"
	"ams_backend/internals/constants"
	playerCtrl "ams_backend/internals/features/players/controller"
	"ams_backend/internals/features/players/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func PlayerRoutes(r fiber.Router, repo repository.PlayerRepository, c *cache.Cache) {
	ctrl := playerCtrl.NewPlayerController(repo, c)

	g := r.Group("/players")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/performance", ctrl.Performance)
	g.Post("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.Create)
	g.Patch("/:id", authMw.RequireRoles(constants.StaffRoles...), ctrl.Update)
	g.Put("/:id/attributes", authMw.RequireRoles(constants.StaffRoles...), ctrl.ReplaceAttributes)
	g.Post("/:id/performance", authMw.RequireRoles(constants.StaffRoles...), ctrl.AppendPerformance)
	g.Delete("/:id", authMw.RequireRoles(constants.AdminRoles...), ctrl.SoftDelete)
	g.Delete("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.HardDelete)
}
