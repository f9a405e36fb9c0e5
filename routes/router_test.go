package routes

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"anma.link/configs"
	handlers "anma.link/handlers/api"
	"anma.link/services"
)

// testDeps yalnızca rota kaydı için yeterli bağımlılıkları kurar; handler'lar
// bu testte hiç çağrılmadığından servisleri nil bırakmak güvenlidir.
func testDeps(t *testing.T) Deps {
	t.Helper()
	return Deps{
		Config:   &configs.Config{UploadDir: t.TempDir()},
		Tokens:   services.NewTokenService("test-secret"),
		Auth:     handlers.NewAuthHandler(nil),
		Person:   handlers.NewPersonHandler(nil),
		Search:   handlers.NewSearchHandler(nil),
		Memorial: handlers.NewMemorialHandler(nil, nil),
		Admin:    handlers.NewAdminHandler(nil),
		Photo:    handlers.NewPhotoHandler(nil, nil),
		Family:   handlers.NewFamilyHandler(nil, nil),
		Location: handlers.NewLocationHandler(nil),
	}
}

func registeredRoutes(app *fiber.App) map[string]struct{} {
	routes := make(map[string]struct{})
	for _, r := range app.GetRoutes(true) {
		routes[r.Method+" "+r.Path] = struct{}{}
	}
	return routes
}

func TestSetupRoutesRegistersPublicAPIPaths(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, testDeps(t))

	routes := registeredRoutes(app)

	expected := []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"GET /api/v1/auth/me",
		"GET /api/v1/search/persons",
		"GET /api/v1/persons/:id",
		"PUT /api/v1/persons/:id",
		"DELETE /api/v1/persons/:id",
		"GET /api/v1/memorials/:personId/remembrances",
		"POST /api/v1/memorials/:personId/remembrances",
		"GET /api/v1/memorials/:personId/offerings",
		"POST /api/v1/memorials/:personId/offerings",
		"GET /api/v1/memorials/:personId/reminders",
		"POST /api/v1/memorials/:personId/reminders",
		"DELETE /api/v1/memorials/reminders/:id",
		"GET /api/v1/photos/:personId",
		"POST /api/v1/photos/:personId",
		"PUT /api/v1/photos/:photoId/primary",
		"GET /api/v1/family/:personId",
		"POST /api/v1/family/:personId",
		"GET /api/v1/admin/submissions",
		"PUT /api/v1/admin/remembrances/:id/approve",
		"PUT /api/v1/admin/contributions/:id/approve",
		"PUT /api/v1/admin/contributions/:id/reject",
		"GET /health",
	}
	for _, route := range expected {
		_, ok := routes[route]
		assert.True(t, ok, "rota kayıtlı olmalı: %s", route)
	}
}

func TestSetupRoutesDoesNotNestMemorialContentUnderPersons(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, testDeps(t))

	routes := registeredRoutes(app)

	// Memorial içeriği kendi kök gruplarında yaşar; /persons altına alınmaz.
	// Yönetici onay/ret uçları da idempotent PUT'tur, POST değil.
	unexpected := []string{
		"GET /api/v1/persons/:id/remembrances",
		"POST /api/v1/persons/:id/remembrances",
		"GET /api/v1/persons/:id/offerings",
		"GET /api/v1/persons/:id/photos",
		"GET /api/v1/persons/:id/family",
		"POST /api/v1/admin/remembrances/:id/approve",
		"POST /api/v1/admin/contributions/:id/approve",
		"POST /api/v1/admin/contributions/:id/reject",
	}
	for _, route := range unexpected {
		_, ok := routes[route]
		assert.False(t, ok, "rota kayıtlı olmamalı: %s", route)
	}
}
