package http

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/domain"
)

// writeError traduce errores de dominio a status + dto.ErrorResponse.
// Un 401 del backend en una ruta protegida cierra la sesión del navegador.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrSessionExpired):
		status, code = fiber.StatusUnauthorized, "SESSION_EXPIRED"
		clearAuthCookie(c)
	case errors.Is(err, domain.ErrUnauthorized):
		status, code = fiber.StatusUnauthorized, "UNAUTHORIZED"
		if c.Locals(LocalToken) != nil {
			code = "SESSION_EXPIRED"
			clearAuthCookie(c)
		}
	case errors.Is(err, domain.ErrForbidden):
		status, code = fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrRenderFailure):
		status, code = fiber.StatusInternalServerError, "RENDER_FAILURE"
	case errors.Is(err, domain.ErrBackendUnavailable):
		status, code = fiber.StatusBadGateway, "BACKEND_UNAVAILABLE"
	case errors.Is(err, context.DeadlineExceeded):
		status, code = fiber.StatusGatewayTimeout, "TIMEOUT"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
