package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/analytics"
)

// DashboardHandler tablero de inicio.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Get godoc
// @Summary      Contadores por estado y gráficos
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  entity.Dashboard
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/dashboard [get]
func (h *DashboardHandler) Get(c *fiber.Ctx) error {
	d, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(d)
}
