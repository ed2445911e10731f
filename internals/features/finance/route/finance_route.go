package route

import (
	"github.com/gofiber/fiber/v2"

	"ams_backend/internals/constants"
	financeCtrl "ams_backend/internals/features/finance/controller"
	"ams_backend/internals/features/finance/repository"
	authMw "ams_backend/internals/middlewares/auth"
)

func FinanceRoutes(r fiber.Router, repo repository.FinanceRepository) {
	ctrl := financeCtrl.NewFinanceController(repo)

	g := r.Group("/finance", authMw.RequireRoles(constants.AdminRoles...))
	g.Get("/transactions", ctrl.ListTransactions)
	g.Post("/transactions", ctrl.CreateTransaction)
	g.Delete("/transactions/:id", ctrl.DeleteTransaction)
	g.Get("/summary", ctrl.Summary)

	g.Get("/documents", ctrl.ListDocuments)
	g.Post("/documents", ctrl.UploadDocument)
	g.Get("/documents/:id/file", ctrl.File)
	g.Delete("/documents/:id", ctrl.DeleteDocument)
}
