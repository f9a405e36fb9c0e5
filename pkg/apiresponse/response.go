package apiresponse

import (
	"github.com/gofiber/fiber/v2"

	"anma.link/pkg/queryparams"
)

// API hata kodları. İstemci sözleşmesinin parçasıdır, değiştirilmemelidir.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNoToken             = "NO_TOKEN"
	CodeInvalidToken        = "INVALID_TOKEN"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeNotFound            = "NOT_FOUND"
	CodeEmailInUse          = "EMAIL_IN_USE"
	CodeInvalidCredentials  = "INVALID_CREDENTIALS"
	CodeNoFile              = "NO_FILE"
	CodeRateLimited         = "RATE_LIMITED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// ErrorBody zarf içindeki error alanının şeklidir.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Envelope tüm API yanıtlarının ortak zarfıdır:
// {success, data?, error?, pagination?}
type Envelope struct {
	Success    bool                        `json:"success"`
	Data       interface{}                 `json:"data,omitempty"`
	Error      *ErrorBody                  `json:"error,omitempty"`
	Pagination *queryparams.PaginationMeta `json:"pagination,omitempty"`
}

// Success 200 ile başarılı yanıt döner.
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Envelope{Success: true, Data: data})
}

// Created 201 ile başarılı yanıt döner.
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(Envelope{Success: true, Data: data})
}

// SuccessPaginated sayfalama metasıyla birlikte başarılı yanıt döner.
func SuccessPaginated(c *fiber.Ctx, data interface{}, meta queryparams.PaginationMeta) error {
	return c.JSON(Envelope{Success: true, Data: data, Pagination: &meta})
}

// Fail verilen HTTP durumu, hata kodu ve mesajıyla hata zarfı döner.
func Fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(Envelope{
		Success: false,
		Error:   &ErrorBody{Code: code, Message: message},
	})
}

// ValidationError 400 VALIDATION_ERROR kısayolu.
func ValidationError(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusBadRequest, CodeValidationError, message)
}

// NotFound 404 NOT_FOUND kısayolu.
func NotFound(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusNotFound, CodeNotFound, message)
}

// InternalError 500 kısayolu. İç hata detayı istemciye sızdırılmaz.
func InternalError(c *fiber.Ctx) error {
	return Fail(c, fiber.StatusInternalServerError, CodeInternalServerError, "Unexpected server error")
}
