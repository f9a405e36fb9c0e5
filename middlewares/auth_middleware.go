package middlewares

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"anma.link/configs"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// Locals anahtarları; handler'lar kimlik bilgisine bunlarla erişir.
const (
	LocalsUserID    = "userID"
	LocalsUserEmail = "userEmail"
)

// AuthMiddleware Bearer token'ı doğrular ve kimliği locals'a koyar.
func AuthMiddleware(tokens services.ITokenService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeNoToken, "Missing authorization token")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeInvalidToken, "Invalid token format")
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			msg := "Invalid or expired token"
			if errors.Is(err, services.ErrTokenExpired) {
				msg = "Token has expired"
			}
			return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeInvalidToken, msg)
		}

		c.Locals(LocalsUserID, claims.UserID)
		c.Locals(LocalsUserEmail, claims.Email)
		return c.Next()
	}
}

// AdminMiddleware kimliği doğrulanmış kullanıcının e-postasını yapılandırmadaki
// yönetici listesine karşı kontrol eder. AuthMiddleware'den sonra çalışmalıdır.
func AdminMiddleware(cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals(LocalsUserEmail).(string)
		if !ok || email == "" {
			return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeUnauthorized, "Authentication required")
		}
		if !cfg.IsAdminEmail(email) {
			return apiresponse.Fail(c, fiber.StatusForbidden, apiresponse.CodeForbidden, "Admin access required")
		}
		return c.Next()
	}
}

// CurrentUserID locals'tan kimliği doğrulanmış kullanıcının ID'sini okur.
func CurrentUserID(c *fiber.Ctx) (uint, bool) {
	userID, ok := c.Locals(LocalsUserID).(uint)
	return userID, ok && userID != 0
}
