package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"

	"anma.link/configs"
	handlers "anma.link/handlers/api"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// Deps router'ın ihtiyaç duyduğu bağımlılıkları taşır; main.go kurar.
type Deps struct {
	Config   *configs.Config
	Tokens   services.ITokenService
	Auth     *handlers.AuthHandler
	Person   *handlers.PersonHandler
	Search   *handlers.SearchHandler
	Memorial *handlers.MemorialHandler
	Admin    *handlers.AdminHandler
	Photo    *handlers.PhotoHandler
	Family   *handlers.FamilyHandler
	Location *handlers.LocationHandler
}

// İstek hızı sınırları. Arama ve yükleme uçlarının ayrı bütçeleri vardır.
const (
	globalRateLimit  = 1000
	globalRateWindow = 15 * time.Minute
	authRateLimit    = 10
	authRateWindow   = 15 * time.Minute
	searchRateLimit  = 60
	searchRateWindow = time.Minute
	uploadRateLimit  = 50
	uploadRateWindow = time.Hour
)

// SetupRoutes genel middleware'leri ve tüm API rotalarını ayarlar.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(cors.New())
	app.Use(rateLimiter(globalRateLimit, globalRateWindow))

	// Yüklenen fotoğraflar doğrudan servis edilir.
	app.Static("/uploads", deps.Config.UploadDir)

	app.Get("/health", healthHandler)

	api := app.Group("/api/v1")
	api.Get("/", apiInfoHandler)

	registerAuthRoutes(api, deps)
	registerSearchRoutes(api, deps)
	registerPersonRoutes(api, deps)
	registerAdminRoutes(api, deps)

	// En sonda, eşleşmeyen tüm rotaları yakalar.
	app.Use(notFoundHandler)
}

// rateLimiter verilen pencere için IP bazlı limiter üretir.
func rateLimiter(max int, window time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		LimitReached: func(c *fiber.Ctx) error {
			return apiresponse.Fail(c, fiber.StatusTooManyRequests, apiresponse.CodeRateLimited,
				"Too many requests, please try again later")
		},
	})
}

func healthHandler(c *fiber.Ctx) error {
	return apiresponse.Success(c, fiber.Map{"status": "ok"})
}

func apiInfoHandler(c *fiber.Ctx) error {
	return apiresponse.Success(c, fiber.Map{
		"name":    "anma.link API",
		"version": "v1",
	})
}

func notFoundHandler(c *fiber.Ctx) error {
	return apiresponse.NotFound(c, "Resource not found")
}
