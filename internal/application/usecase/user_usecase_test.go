package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

func TestUserUseCase_MeYList(t *testing.T) {
	repo := &fakeUserRepo{users: []entity.User{
		{ID: "u1", Name: "Admin", Email: "a@x.com", Role: entity.RoleAdmin},
		{ID: "u2", Name: "Op", Email: "o@x.com", Role: entity.RoleUser},
	}}
	uc := usecase.NewUserUseCase(repo)

	me, err := uc.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", me.Role)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "u2", list[1].ID)
}

func TestUserUseCase_PropagaError(t *testing.T) {
	uc := usecase.NewUserUseCase(&fakeUserRepo{err: domain.ErrUnauthorized})

	_, err := uc.Me(context.Background())
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
