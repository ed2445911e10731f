package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	coachCtrl "ams_backend/internals/features/coaches/controller"
	"ams_backend/internals/features/coaches/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func CoachRoutes(r fiber.Router, repo repository.CoachRepository) {
	ctrl := coachCtrl.NewCoachController(repo)

	g := r.Group("/coaches")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.AdminRoles...), ctrl.Create)
	g.Patch("/:id", authMw.RequireRoles(constants.StaffRoles...), ctrl.Update)
	g.Post("/:id/ratings", ctrl.Rate) // students submit feedback
	g.Delete("/:id", authMw.RequireRoles(constants.AdminRoles...), ctrl.SoftDelete)
}
