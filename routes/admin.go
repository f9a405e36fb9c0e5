package routes

import (
	"github.com/gofiber/fiber/v2"

	"anma.link/middlewares"
)

func registerAdminRoutes(api fiber.Router, deps Deps) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(middlewares.AuthMiddleware(deps.Tokens))
	adminGroup.Use(middlewares.AdminMiddleware(deps.Config))

	adminGroup.Get("/submissions", deps.Admin.ListSubmissions)
	adminGroup.Put("/remembrances/:id/approve", deps.Admin.ApproveRemembrance)
	adminGroup.Put("/contributions/:id/approve", deps.Admin.ApproveContribution)
	adminGroup.Put("/contributions/:id/reject", deps.Admin.RejectContribution)
}
