package routes

import (
	"github.com/gofiber/fiber/v2"
)

func registerSearchRoutes(api fiber.Router, deps Deps) {
	searchGroup := api.Group("/search")
	searchGroup.Use(rateLimiter(searchRateLimit, searchRateWindow))

	searchGroup.Get("/persons", deps.Search.Search)
}
