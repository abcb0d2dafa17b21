package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/application/usecase"
)

// DrawHandler maneja las peticiones HTTP para arqueos de caja.
type DrawHandler struct {
	uc    *usecase.DrawUseCase
	recon *usecase.ReconciliationUseCase
}

// NewDrawHandler construye el handler inyectando los casos de uso.
func NewDrawHandler(uc *usecase.DrawUseCase, recon *usecase.ReconciliationUseCase) *DrawHandler {
	return &DrawHandler{uc: uc, recon: recon}
}

// List godoc
// @Summary      Listar arqueos visibles para el actor
// @Tags         draws
// @Produce      json
// @Success      200  {array}  dto.DrawResponse
// @Router       /api/draw/all [get]
func (h *DrawHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Infos godoc
// @Summary      Conciliación del día: compras y arqueos de una tienda
// @Tags         draws
// @Produce      json
// @Param        date     query  string  false  "Fecha objetivo (por defecto hoy)"
// @Param        shop_id  query  string  false  "Tienda (solo superadmin)"
// @Success      200  {object}  dto.DayInfosResponse
// @Router       /api/draw/infos [get]
func (h *DrawHandler) Infos(c *fiber.Ctx) error {
	out, err := h.recon.DayInfos(actorFrom(c), c.Query("date"), c.Query("shop_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar un arqueo
// @Tags         draws
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDrawRequest  true  "Datos del arqueo"
// @Success      201   {object}  dto.DrawResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draw/add [post]
func (h *DrawHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDrawRequest
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
// @Summary      Editar un arqueo
// @Tags         draws
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateDrawRequest  true  "Datos del arqueo"
// @Success      200   {object}  dto.DrawResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/draw/update [patch]
func (h *DrawHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDrawRequest
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
// @Summary      Eliminar definitivamente un arqueo
// @Tags         draws
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DrawIDRequest  true  "ID del arqueo"
// @Success      200   {object}  map[string]bool
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/draw/delete [put]
func (h *DrawHandler) Delete(c *fiber.Ctx) error {
	var in dto.DrawIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Delete(actorFrom(c), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
