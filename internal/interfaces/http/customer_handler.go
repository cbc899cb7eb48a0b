package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customer-portal/internal/application/dto"
	"github.com/jhoicas/customer-portal/internal/application/usecase"
)

// CustomerHandler maneja las peticiones HTTP de clientes (protegido).
type CustomerHandler struct {
	uc *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "fullname, address, reg_date"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	customer, err := h.uc.Register(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(customer)
}

// GetByID godoc
// @Summary      Cliente por id
// @Tags         customers
// @Produce      json
// @Param        id   path  string  true  "customer_id"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Search godoc
// @Summary      Buscar por id de cliente o móvil
// @Tags         customers
// @Produce      json
// @Param        q    query  string  true  "customer_id o móvil de 10 dígitos"
// @Success      200  {array}   entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/search [get]
func (h *CustomerHandler) Search(c *fiber.Ctx) error {
	list, err := h.uc.Search(c.UserContext(), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Update godoc
// @Summary      Editar cliente
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "customer_id"
// @Param        body  body  dto.UpdateCustomerRequest  true  "campos editables"
// @Success      200   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [patch]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	role, err := ResolveRole(c)
	if err != nil {
		return writeError(c, err)
	}
	customer, err := h.uc.Update(c.UserContext(), c.Params("id"), in, role)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(customer)
}

// Filter godoc
// @Summary      Listado filtrado
// @Tags         customers
// @Produce      json
// @Param        date_from         query  string  false  "YYYY-MM-DD"
// @Param        date_to           query  string  false  "YYYY-MM-DD"
// @Param        status            query  string  false  "ACTIVE | HOLD | CLOSED"
// @Param        assigned_to_name  query  string  false  "nombre del asignado"
// @Success      200  {array}   entity.Customer
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers/filter [get]
func (h *CustomerHandler) Filter(c *fiber.Ctx) error {
	var in dto.CustomerFilterRequest
	if err := c.QueryParser(&in); err != nil {
		return badBody(c)
	}
	list, err := h.uc.Filter(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}
