package routes

import (
	"github.com/gofiber/fiber/v2"

	"anma.link/middlewares"
)

func registerPersonRoutes(api fiber.Router, deps Deps) {
	requireAuth := middlewares.AuthMiddleware(deps.Tokens)
	uploadLimiter := rateLimiter(uploadRateLimit, uploadRateWindow)

	// Konum referans verisi.
	locationGroup := api.Group("/locations")
	locationGroup.Get("/", deps.Location.List)
	locationGroup.Post("/", requireAuth, deps.Location.Create)

	personGroup := api.Group("/persons")
	personGroup.Get("/", deps.Person.List)
	personGroup.Post("/", requireAuth, deps.Person.Create)
	personGroup.Get("/:id", deps.Person.Get)
	personGroup.Put("/:id", requireAuth, deps.Person.Update)
	personGroup.Delete("/:id", requireAuth, deps.Person.Delete)

	// Kişiye bağlı memorial içeriği.
	memorialGroup := api.Group("/memorials")
	memorialGroup.Get("/:personId/remembrances", deps.Memorial.ListRemembrances)
	memorialGroup.Post("/:personId/remembrances", deps.Memorial.SubmitRemembrance)
	memorialGroup.Get("/:personId/offerings", deps.Memorial.OfferingSummary)
	memorialGroup.Post("/:personId/offerings", deps.Memorial.SubmitOffering)
	memorialGroup.Get("/:personId/reminders", requireAuth, deps.Memorial.ListReminders)
	memorialGroup.Post("/:personId/reminders", requireAuth, deps.Memorial.CreateReminder)
	memorialGroup.Delete("/reminders/:id", requireAuth, deps.Memorial.DeleteReminder)

	photoGroup := api.Group("/photos")
	photoGroup.Get("/:personId", deps.Photo.List)
	photoGroup.Post("/:personId", requireAuth, uploadLimiter, deps.Photo.Upload)
	photoGroup.Put("/:photoId/primary", requireAuth, deps.Photo.SetPrimary)

	familyGroup := api.Group("/family")
	familyGroup.Get("/:personId", deps.Family.List)
	familyGroup.Post("/:personId", requireAuth, deps.Family.Create)
}
