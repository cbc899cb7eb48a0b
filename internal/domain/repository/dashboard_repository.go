package repository

import (
	"context"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
)

// DashboardRepository contadores y gráficos de la página de inicio.
type DashboardRepository interface {
	CountAndGraph(ctx context.Context) (*entity.Dashboard, error)
}
