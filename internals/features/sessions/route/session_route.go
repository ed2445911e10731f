package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	playerRepo "ams_backend/internals/features/players/repository"
	sessionCtrl "ams_backend/internals/features/sessions/controller"
	"ams_backend/internals/features/sessions/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func SessionRoutes(r fiber.Router, repo repository.SessionRepository, players playerRepo.PlayerRepository) {
	ctrl := sessionCtrl.NewSessionController(repo, players)

	g := r.Group("/sessions")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Get("/:id/occurrences", ctrl.Occurrences)
	g.Post("/", authMw.RequireRoles(constants.StaffRoles...), ctrl.Create)
	g.Patch("/:id", authMw.RequireRoles(constants.StaffRoles...), ctrl.Update)
	g.Patch("/:id/attendance", authMw.RequireRoles(constants.StaffRoles...), ctrl.MarkAttendance)
	g.Patch("/:id/metrics", authMw.RequireRoles(constants.StaffRoles...), ctrl.RecordPlayerMetrics)
	g.Delete("/:id", authMw.RequireRoles(constants.AdminRoles...), ctrl.SoftDelete)
	g.Delete("/:id/occurrences", authMw.RequireRoles(constants.AdminRoles...), ctrl.DeleteOccurrences)
}
