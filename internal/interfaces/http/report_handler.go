package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/application/report"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
	"github.com/jhoicas/customer-portal/internal/infrastructure/output"
)

// ReportHandler descarga o previsualiza los reportes PDF.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// CustomerPDF godoc
// @Summary      Reporte PDF de un cliente
// @Tags         reports
// @Produce      application/pdf
// @Param        id       path   string  true   "customer_id"
// @Param        preview  query  bool    false  "true = inline"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/pdf [get]
func (h *ReportHandler) CustomerPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	capture := &output.Capture{}
	if err := h.uc.PrintCustomer(c.UserContext(), id, capture, c.QueryBool("preview")); err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, capture, report.CustomerFilename(id))
}

// FilterPDF godoc
// @Summary      Reporte PDF del listado filtrado
// @Tags         reports
// @Produce      application/pdf
// @Param        date_from         query  string  false  "YYYY-MM-DD"
// @Param        date_to           query  string  false  "YYYY-MM-DD"
// @Param        status            query  string  false  "ACTIVE | HOLD | CLOSED"
// @Param        assigned_to_name  query  string  false  "nombre del asignado"
// @Param        preview           query  bool    false  "true = inline"
// @Success      200  {file}    file
// @Failure      404  {object}  dto.ErrorResponse  "NO_DATA"
// @Router       /api/customers/filter/pdf [get]
func (h *ReportHandler) FilterPDF(c *fiber.Ctx) error {
	var in dto.CustomerFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	capture := &output.Capture{}
	res, err := h.uc.PrintFilter(c.UserContext(), in, capture, c.QueryBool("preview"))
	if err != nil {
		return writeError(c, err)
	}
	if res.NoData {
		return c.Status(fiber.StatusNotFound).JSON(dto.WarningResponse{Code: "NO_DATA", Message: res.Message})
	}
	return sendPDF(c, capture, report.ListFilename)
}

func sendPDF(c *fiber.Ctx, capture *output.Capture, fallback string) error {
	name := capture.Filename
	if name == "" {
		name = fallback
	}
	disposition := "attachment"
	if capture.Inline {
		disposition = "inline"
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("%s; filename=%q", disposition, name))
	return c.Send(capture.Data)
}
