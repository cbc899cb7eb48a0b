package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/auth"
	"github.com/jhoicas/customer-portal/internal/application/dto"
)

// AuthHandler maneja login y logout.
type AuthHandler struct {
	uc     *auth.AuthUseCase
	cookie string
	secure bool
}

// NewAuthHandler construye el handler de auth. secure marca la cookie como Secure.
func NewAuthHandler(uc *auth.AuthUseCase, cookie string, secure bool) *AuthHandler {
	if cookie == "" {
		cookie = DefaultCookieName
	}
	return &AuthHandler{uc: uc, cookie: cookie, secure: secure}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Cookie(&fiber.Cookie{
		Name:     h.cookie,
		Value:    out.AccessToken,
		Path:     "/",
		Expires:  out.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Locals(localCookie, h.cookie)
	clearAuthCookie(c)
	return c.SendStatus(fiber.StatusNoContent)
}
