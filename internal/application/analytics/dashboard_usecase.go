// Package analytics contiene el caso de uso del tablero de inicio.
package analytics

import (
	"context"
	"fmt"

	"github.com/jhoicas/customer-portal/internal/domain/entity"
	"github.com/jhoicas/customer-portal/internal/domain/repository"
)

// DashboardUseCase contadores por estado y series para los gráficos.
//
// Fuente de datos: DashboardRepository (GET /customers/count_and_graph).
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary devuelve el tablero. Si el backend no envía total, se calcula
// como la suma de los estados.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*entity.Dashboard, error) {
	d, err := uc.repo.CountAndGraph(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	if d.Count.Total == 0 {
		d.Count.Total = d.Count.Active + d.Count.Hold + d.Count.Closed
	}
	if d.Graph == nil {
		d.Graph = map[string][]entity.GraphPoint{}
	}
	return d, nil
}
