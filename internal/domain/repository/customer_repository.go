package repository

import (
	"context"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// CustomerFilter criterios de GET /customers/filter. Los campos vacíos no se envían.
type CustomerFilter struct {
	DateFrom       string
	DateTo         string
	Status         string
	AssignedToName string
}

// CustomerRepository puerto hacia el backend dueño de los clientes.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) (*entity.Customer, error)
	Find(ctx context.Context, customerID string) (*entity.Customer, error)
	Search(ctx context.Context, query string) ([]entity.Customer, error)
	Update(ctx context.Context, customerID string, patch map[string]any) (*entity.Customer, error)
	Filter(ctx context.Context, f CustomerFilter) ([]entity.Customer, error)
}
