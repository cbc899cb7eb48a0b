package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
	"github.com/jhoicas/customer-portal/pkg/jwt"
)

// AuthUseCase login contra el backend y lectura de la expiración del token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	secret   string
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth. secret vacío = no verificar firma.
func NewAuthUseCase(userRepo repository.UserRepository, secret string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, secret: secret, now: time.Now}
}

// Login reenvía las credenciales y valida que el token recibido tenga exp futuro.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: email y password son obligatorios", domain.ErrInvalidInput)
	}

	token, err := uc.userRepo.Login(ctx, email, in.Password)
	if err != nil {
		return nil, err
	}

	exp, err := uc.Expiry(token)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: token, ExpiresAt: exp}, nil
}

// Expiry exp del token. Token sin exp, ilegible o vencido → ErrSessionExpired.
func (uc *AuthUseCase) Expiry(token string) (time.Time, error) {
	exp, err := jwt.Expiry(uc.secret, token, uc.now())
	switch {
	case err == nil:
		return exp, nil
	case errors.Is(err, jwt.ErrExpired), errors.Is(err, jwt.ErrNoExpiry):
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrSessionExpired, err)
	}
	return time.Time{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
}

// Role rol del token, "" si no lo trae.
func (uc *AuthUseCase) Role(token string) string {
	claims, err := jwt.Parse(uc.secret, token)
	if err != nil {
		return ""
	}
	return claims.Role
}
