package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
)

var _ repository.UserRepository = (*Client)(nil)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
}

// Login POST /login. Devuelve el access_token emitido por el backend.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, loginRequest{Email: email, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("backend: login sin access_token")
	}
	return resp.AccessToken, nil
}

// Me GET /me.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var u entity.User
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// List GET /users.
func (c *Client) List(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
