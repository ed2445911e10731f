package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	academyCtrl "ams_backend/internals/features/academies/controller"
	"ams_backend/internals/features/academies/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func AcademyRoutes(r fiber.Router, repo repository.AcademyRepository) {
	ctrl := academyCtrl.NewAcademyController(repo)

	g := r.Group("/academies")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Post("/", authMw.RequireRoles(constants.RoleOwner, constants.RoleAdmin), ctrl.Create)
	g.Patch("/:id", authMw.RequireRoles(constants.RoleOwner, constants.RoleAdmin), ctrl.Update)
}
