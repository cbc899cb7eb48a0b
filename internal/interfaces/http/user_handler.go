package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/usecase"
)

// UserHandler usuario autenticado y listado de operadores.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Usuario autenticado
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	u, err := h.uc.Me(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(u)
}

// List godoc
// @Summary      Operadores
// @Tags         users
// @Produce      json
// @Success      200  {array}   dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(users)
}
