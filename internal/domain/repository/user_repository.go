package repository

import (
	"context"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// UserRepository usuarios y autenticación (delegados al backend).
type UserRepository interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Me(ctx context.Context) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}
