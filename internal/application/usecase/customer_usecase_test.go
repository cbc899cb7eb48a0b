package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

func validCreate() dto.CreateCustomerRequest {
	return dto.CreateCustomerRequest{
		Fullname: " Asha Rao ",
		Address:  "12 MG Road",
		RegDate:  "2025-01-02",
		Mobile:   "9876543210",
	}
}

func TestRegister_Valido(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := usecase.NewCustomerUseCase(repo)

	c, err := uc.Register(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, "ARC100", c.CustomerID)
	assert.Equal(t, "Asha Rao", repo.created.Fullname)
}

func TestRegister_Validaciones(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateCustomerRequest)
	}{
		{"sin nombre", func(r *dto.CreateCustomerRequest) { r.Fullname = "  " }},
		{"sin dirección", func(r *dto.CreateCustomerRequest) { r.Address = "" }},
		{"sin fecha", func(r *dto.CreateCustomerRequest) { r.RegDate = "" }},
		{"fecha mal formada", func(r *dto.CreateCustomerRequest) { r.RegDate = "02/01/2025" }},
		{"móvil corto", func(r *dto.CreateCustomerRequest) { r.Mobile = "98765" }},
		{"móvil con letras", func(r *dto.CreateCustomerRequest) { r.Mobile = "98765abcde" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &fakeCustomerRepo{}
			in := validCreate()
			tc.mutate(&in)

			_, err := usecase.NewCustomerUseCase(repo).Register(context.Background(), in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, repo.created)
		})
	}
}

func TestValidMobile(t *testing.T) {
	assert.True(t, usecase.ValidMobile(""))
	assert.True(t, usecase.ValidMobile("0123456789"))
	assert.False(t, usecase.ValidMobile("012345678"))
	assert.False(t, usecase.ValidMobile("01234567890"))
	assert.False(t, usecase.ValidMobile("+123456789"))
}

func TestUpdate_HoldFijaFechaYFiltraNotas(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := usecase.NewCustomerUseCase(repo).
		WithClock(func() time.Time { return time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC) })

	_, err := uc.Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname: "Asha",
		Address:  "MG Road",
		RegDate:  "2025-01-02",
		Status:   "hold",
		Notes: []entity.CustomerNote{
			{Date: "2025-01-01", Note: " llamar "},
			{Note: "volver a llamar"},
			{Date: "2025-02-01", Note: "  "},
		},
	}, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "ARC1", repo.patchedID)
	assert.Equal(t, "HOLD", repo.patch["status"])
	assert.Equal(t, "2025-06-30", repo.patch["hold_since"])
	assert.Equal(t, "2025-01-02", repo.patch["reg_date"])
	assert.Equal(t, []entity.CustomerNote{
		{Date: "2025-01-01", Note: "llamar"},
		{Date: "2025-06-30", Note: "volver a llamar"},
	}, repo.patch["notes"])
	assert.Nil(t, repo.patch["mobile"])
}

func TestUpdate_EstadoVacioViajaComoNull(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname: "Asha", Address: "MG Road",
	}, entity.RoleAdmin)
	require.NoError(t, err)

	require.Contains(t, repo.patch, "status")
	assert.Nil(t, repo.patch["status"])
	assert.Nil(t, repo.patch["reg_date"])
	assert.Equal(t, []entity.CustomerNote{}, repo.patch["notes"])
}

func TestUpdate_UserConservaDatosPersonales(t *testing.T) {
	repo := &fakeCustomerRepo{customers: map[string]entity.Customer{
		"ARC1": {
			CustomerID: "ARC1",
			Fullname:   "Asha Rao",
			Address:    "12 MG Road",
			RegDate:    "2024-11-05",
			Mobile:     "9876543210",
		},
	}}

	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname:   "Otro Nombre",
		Address:    "",
		RegDate:    "2025-01-01",
		Mobile:     "123",
		Email:      "otro@x.com",
		Status:     entity.StatusActive,
		AssignedTo: "u2",
	}, entity.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", repo.patch["fullname"])
	assert.Equal(t, "12 MG Road", repo.patch["address"])
	assert.Equal(t, "2024-11-05", repo.patch["reg_date"])
	assert.Equal(t, "9876543210", repo.patch["mobile"])
	assert.Nil(t, repo.patch["email"])
	assert.Equal(t, "ACTIVE", repo.patch["status"])
	assert.NotContains(t, repo.patch, "assigned_to")
}

func TestUpdate_UserClienteInexistente(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "NOPE", dto.UpdateCustomerRequest{
		Status: entity.StatusActive,
	}, entity.RoleUser)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, repo.patch)
}

func TestUpdate_AdminFechaMalFormada(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname: "Asha", Address: "MG Road", RegDate: "02/01/2025",
	}, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, repo.patch)
}

func TestUpdate_AdminReasigna(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname:   "Asha",
		Address:    "MG Road",
		Status:     entity.StatusActive,
		AssignedTo: "u2",
	}, entity.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, "u2", repo.patch["assigned_to"])
	assert.Equal(t, "", repo.patch["hold_since"])
}

func TestUpdate_EstadoDesconocido(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Update(context.Background(), "ARC1", dto.UpdateCustomerRequest{
		Fullname: "Asha", Address: "MG Road", Status: "PAUSED",
	}, entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Nil(t, repo.patch)
}

func TestSearch_Vacia(t *testing.T) {
	repo := &fakeCustomerRepo{}
	uc := usecase.NewCustomerUseCase(repo)

	_, err := uc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Search(context.Background(), " ARC1 ")
	require.NoError(t, err)
	assert.Equal(t, "ARC1", repo.searched)
}

func TestFilter_NormalizaEstado(t *testing.T) {
	repo := &fakeCustomerRepo{}
	_, err := usecase.NewCustomerUseCase(repo).Filter(context.Background(), dto.CustomerFilterRequest{
		Status:   "closed",
		DateFrom: "2025-01-01",
		DateTo:   "2025-01-31",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLOSED", repo.filter.Status)
	assert.Equal(t, "2025-01-31", repo.filter.DateTo)
}

func TestFilter_RangoInvertido(t *testing.T) {
	_, err := usecase.ToFilter(dto.CustomerFilterRequest{DateFrom: "2025-02-01", DateTo: "2025-01-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
