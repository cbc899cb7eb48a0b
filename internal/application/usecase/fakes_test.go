package usecase_test

import (
	"context"
	"time"

	"github.com/jhoicas/customer-portal/internal/domain"
	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
)

// fakeCustomerRepo repositorio en memoria que registra la última llamada.
type fakeCustomerRepo struct {
	customers map[string]entity.Customer
	filtered  []entity.Customer
	err       error

	created   *entity.Customer
	patchedID string
	patch     map[string]any
	filter    repository.CustomerFilter
	searched  string
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.created = c
	out := *c
	out.CustomerID = "ARC100"
	return &out, nil
}

func (r *fakeCustomerRepo) Find(_ context.Context, id string) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (r *fakeCustomerRepo) Search(_ context.Context, q string) ([]entity.Customer, error) {
	r.searched = q
	return nil, r.err
}

func (r *fakeCustomerRepo) Update(_ context.Context, id string, patch map[string]any) (*entity.Customer, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.patchedID = id
	r.patch = patch
	return &entity.Customer{CustomerID: id}, nil
}

func (r *fakeCustomerRepo) Filter(_ context.Context, f repository.CustomerFilter) ([]entity.Customer, error) {
	r.filter = f
	return r.filtered, r.err
}

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (r *fakeUserRepo) Login(context.Context, string, string) (string, error) { return "", r.err }

func (r *fakeUserRepo) Me(context.Context) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &r.users[0], nil
}

func (r *fakeUserRepo) List(context.Context) ([]entity.User, error) { return r.users, r.err }

// recordingMetrics registra las observaciones de reportes.
type recordingMetrics struct {
	outcomes []string
}

func (m *recordingMetrics) ObserveReport(kind, outcome string, _ time.Duration) {
	m.outcomes = append(m.outcomes, kind+":"+outcome)
}
