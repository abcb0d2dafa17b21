package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/application/usecase"
)

// PurchaseHandler maneja las peticiones HTTP para compras.
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler inyectando el caso de uso.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// List godoc
// @Summary      Listar compras visibles para el actor
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchase/all [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListOutside godoc
// @Summary      Listar solo compras marcadas como externas
// @Tags         purchases
// @Produce      json
// @Success      200  {array}  dto.PurchaseResponse
// @Router       /api/purchase/outside [get]
func (h *PurchaseHandler) ListOutside(c *fiber.Ctx) error {
	out, err := h.uc.ListOutside(actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar una compra (proveedor por nombre, find-or-create)
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Datos de la compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase/add [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar una compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePurchaseRequest  true  "Datos de la compra"
// @Success      200   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase/update [patch]
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar definitivamente una compra
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PurchaseIDRequest  true  "ID de la compra"
// @Success      200   {object}  map[string]bool
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/purchase/delete [put]
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	var in dto.PurchaseIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Delete(actorFrom(c), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
