package http

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/infrastructure/backend"
	"github.com/jhoicas/customer-portal/pkg/jwt"
)

// Locals keys que deja AuthMiddleware en Fiber.
const (
	LocalToken     = "access_token"
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalExpiresAt = "expires_at"
	localCookie    = "auth_cookie"
	localRoles     = "role_source"
)

// DefaultCookieName cookie donde viaja el token si no se usa el header.
const DefaultCookieName = "access_token"

// RoleSource consulta el usuario autenticado (GET /me del backend).
type RoleSource interface {
	Me(ctx context.Context) (*dto.UserResponse, error)
}

// AuthConfig configuración de AuthMiddleware.
type AuthConfig struct {
	Secret     string // vacío = no verificar firma (la valida el backend)
	CookieName string
	Now        func() time.Time
	Roles      RoleSource // nil = solo el claim role del token
}

func (a AuthConfig) cookieName() string {
	if a.CookieName == "" {
		return DefaultCookieName
	}
	return a.CookieName
}

func (a AuthConfig) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

// AuthMiddleware exige un token con exp vigente, tomado del header
// Authorization: Bearer o de la cookie de sesión. Deja el token en el
// UserContext para que el cliente del backend lo reenvíe.
func AuthMiddleware(cfg AuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(localCookie, cfg.cookieName())

		tokenString, err := bearerOrCookie(c, cfg.cookieName())
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: err.Error()})
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header o cookie requeridos"})
		}

		exp, err := jwt.Expiry(cfg.Secret, tokenString, cfg.now())
		if errors.Is(err, jwt.ErrExpired) || errors.Is(err, jwt.ErrNoExpiry) {
			clearAuthCookie(c)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicie sesión de nuevo"})
		}
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}

		claims, err := jwt.Parse(cfg.Secret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido"})
		}

		c.Locals(LocalToken, tokenString)
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		c.Locals(LocalExpiresAt, exp)
		if cfg.Roles != nil {
			c.Locals(localRoles, cfg.Roles)
		}
		c.SetUserContext(backend.WithToken(c.UserContext(), tokenString))
		return c.Next()
	}
}

func bearerOrCookie(c *fiber.Ctx, cookie string) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return strings.TrimSpace(c.Cookies(cookie)), nil
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("formato: Bearer <token>")
	}
	return strings.TrimSpace(parts[1]), nil
}

// RequireRole permite el paso solo a los roles indicados. Debe usarse
// DESPUÉS de AuthMiddleware.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := ResolveRole(c)
		if err != nil {
			return writeError(c, err)
		}
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no trae rol"})
		}
		for _, r := range roles {
			if strings.EqualFold(r, role) {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetUserID devuelve el subject del token (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}

// ResolveRole rol del usuario: el claim del token o, si no lo trae, el que
// devuelve /me. El resultado queda en Locals para el resto de la petición.
func ResolveRole(c *fiber.Ctx) (string, error) {
	if role := GetRole(c); role != "" {
		return role, nil
	}
	src, _ := c.Locals(localRoles).(RoleSource)
	if src == nil {
		return "", nil
	}
	me, err := src.Me(c.UserContext())
	if err != nil {
		return "", err
	}
	c.Locals(LocalRole, me.Role)
	return me.Role, nil
}

// GetRole devuelve el rol del token (o el ya resuelto), "" si no lo hay.
func GetRole(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRole).(string)
	return s
}

func clearAuthCookie(c *fiber.Ctx) {
	name, _ := c.Locals(localCookie).(string)
	if name == "" {
		name = DefaultCookieName
	}
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
