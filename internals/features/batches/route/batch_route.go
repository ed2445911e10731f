package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	batchCtrl "ams_backend/internals/features/batches/controller"
	"ams_backend/internals/features/batches/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func BatchRoutes(r fiber.Router, repo repository.BatchRepository) {
	ctrl := batchCtrl.NewBatchController(repo)

	g := r.Group("/batches")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.Create)
	g.Patch("/:id", authMw.RequireRoles(constants.StaffRoles...), ctrl.Update)
	g.Post("/:id/players", authMw.RequireRoles(constants.StaffRoles...), ctrl.AddPlayer)
	g.Delete("/:id/players/:playerId", authMw.RequireRoles(constants.StaffRoles...), ctrl.RemovePlayer)
	g.Delete("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.DeleteByIDs)
}
