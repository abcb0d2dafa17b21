package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/application/usecase"
)

// ShopHandler maneja las peticiones HTTP para tiendas (solo superadmin;
// el router aplica RequireRole y el caso de uso vuelve a verificar).
type ShopHandler struct {
	uc *usecase.ShopUseCase
}

// NewShopHandler construye el handler inyectando el caso de uso.
func NewShopHandler(uc *usecase.ShopUseCase) *ShopHandler {
	return &ShopHandler{uc: uc}
}

// List godoc
// @Summary      Listar tiendas
// @Tags         shops
// @Produce      json
// @Param        with_deleted  query  bool  false  "Incluir tiendas desactivadas"
// @Success      200  {array}  dto.ShopResponse
// @Router       /api/shop/all [get]
func (h *ShopHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(actorFrom(c), c.QueryBool("with_deleted", false))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear tienda
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateShopRequest  true  "Datos de la tienda"
// @Success      201   {object}  dto.ShopResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/shop/add [post]
func (h *ShopHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateShopRequest
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
// @Summary      Renombrar tienda
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateShopRequest  true  "Datos de la tienda"
// @Success      200   {object}  dto.ShopResponse
// @Router       /api/shop/update [patch]
func (h *ShopHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateShopRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar tienda (cascada: desactiva también a sus usuarios)
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShopIDRequest  true  "ID de la tienda"
// @Success      200   {object}  dto.ShopResponse
// @Router       /api/shop/deactivate [put]
func (h *ShopHandler) Deactivate(c *fiber.Ctx) error {
	var in dto.ShopIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Deactivate(actorFrom(c), in.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar tienda (no reactiva a sus usuarios)
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShopIDRequest  true  "ID de la tienda"
// @Success      200   {object}  dto.ShopResponse
// @Router       /api/shop/restore [put]
func (h *ShopHandler) Restore(c *fiber.Ctx) error {
	var in dto.ShopIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Restore(actorFrom(c), in.ID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Purgar definitivamente una tienda
// @Tags         shops
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ShopIDRequest  true  "ID de la tienda"
// @Success      200   {object}  map[string]bool
// @Router       /api/shop/delete [put]
func (h *ShopHandler) Delete(c *fiber.Ctx) error {
	var in dto.ShopIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Delete(actorFrom(c), in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}
