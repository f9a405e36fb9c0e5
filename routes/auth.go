package routes

import (
	"github.com/gofiber/fiber/v2"

	"anma.link/middlewares"
)

func registerAuthRoutes(api fiber.Router, deps Deps) {
	authGroup := api.Group("/auth")
	authGroup.Use(rateLimiter(authRateLimit, authRateWindow))

	authGroup.Post("/register", deps.Auth.Register)
	authGroup.Post("/login", deps.Auth.Login)
	authGroup.Get("/me", middlewares.AuthMiddleware(deps.Tokens), deps.Auth.Me)
}
