package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/application/auth"
	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/pkg/jwt"
)

const secret = "auth-secret"

type stubUsers struct {
	token string
	err   error
}

func (s stubUsers) Login(context.Context, string, string) (string, error) { return s.token, s.err }
func (s stubUsers) Me(context.Context) (*entity.User, error)              { return nil, s.err }
func (s stubUsers) List(context.Context) ([]entity.User, error)           { return nil, s.err }

func TestLogin_OK(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", entity.RoleAdmin, time.Hour)
	require.NoError(t, err)
	uc := auth.NewAuthUseCase(stubUsers{token: tok}, secret)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, tok, resp.AccessToken)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, 2*time.Second)
	assert.Equal(t, entity.RoleAdmin, uc.Role(tok))
}

func TestLogin_TokenVencido(t *testing.T) {
	tok, err := jwt.Generate(secret, "u1", entity.RoleUser, -time.Minute)
	require.NoError(t, err)

	_, err = auth.NewAuthUseCase(stubUsers{token: tok}, secret).
		Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrSessionExpired)
}

func TestLogin_SinCredenciales(t *testing.T) {
	_, err := auth.NewAuthUseCase(stubUsers{}, secret).
		Login(context.Background(), dto.LoginRequest{Email: " "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_BackendRechaza(t *testing.T) {
	_, err := auth.NewAuthUseCase(stubUsers{err: domain.ErrUnauthorized}, secret).
		Login(context.Background(), dto.LoginRequest{Email: "a@x.com", Password: "mal"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestExpiry_TokenIlegible(t *testing.T) {
	_, err := auth.NewAuthUseCase(stubUsers{}, "").Expiry("basura")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
