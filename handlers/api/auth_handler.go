package handlers

import (
	"errors"
	"net/mail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"anma.link/configs/configslog"
	"anma.link/middlewares"
	"anma.link/pkg/apiresponse"
	"anma.link/services"
)

// AuthHandler kayıt/giriş/kimlik uçları için handler.
type AuthHandler struct {
	authService services.IAuthService
}

// NewAuthHandler yeni bir AuthHandler örneği oluşturur.
func NewAuthHandler(authService services.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userPayload yanıtta yalnızca güvenli kullanıcı alanlarını taşır.
type userPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

type authPayload struct {
	User  userPayload `json:"user"`
	Token string      `json:"token"`
}

// Register yeni kullanıcı kaydı yapar. POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return apiresponse.ValidationError(c, "A valid email is required")
	}
	if len(req.Password) < 8 {
		return apiresponse.ValidationError(c, "Password must be at least 8 characters")
	}

	result, err := h.authService.Register(c.UserContext(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailInUse):
			return apiresponse.Fail(c, fiber.StatusConflict, apiresponse.CodeEmailInUse, "Email already registered")
		case errors.Is(err, services.ErrAuthInvalidInput):
			return apiresponse.ValidationError(c, "Invalid email or password input")
		default:
			configslog.Log.Error("Register handler: beklenmeyen hata", zap.Error(err))
			return apiresponse.InternalError(c)
		}
	}

	return apiresponse.Created(c, authPayload{
		User:  userPayload{ID: result.User.ID, Email: result.User.Email},
		Token: result.Token,
	})
}

// Login kimlik doğrulayıp token döner. POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return apiresponse.ValidationError(c, "Invalid request body")
	}

	result, err := h.authService.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			// Bilinmeyen e-posta ile yanlış şifre aynı yanıtı alır.
			return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeInvalidCredentials, "Invalid email or password")
		}
		configslog.Log.Error("Login handler: beklenmeyen hata", zap.Error(err))
		return apiresponse.InternalError(c)
	}

	return apiresponse.Success(c, authPayload{
		User:  userPayload{ID: result.User.ID, Email: result.User.Email},
		Token: result.Token,
	})
}

// Me token'dan çözülen kimliği döner. GET /api/v1/auth/me (AuthMiddleware arkasında)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := middlewares.CurrentUserID(c)
	email, _ := c.Locals(middlewares.LocalsUserEmail).(string)
	if !ok {
		return apiresponse.Fail(c, fiber.StatusUnauthorized, apiresponse.CodeUnauthorized, "Authentication required")
	}
	return apiresponse.Success(c, userPayload{ID: userID, Email: email})
}
