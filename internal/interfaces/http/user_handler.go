package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/application/usecase"
)

// UserHandler maneja la administración de usuarios y las operaciones de
// perfil propio.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// List godoc
// @Summary      Listar usuarios visibles para el actor
// @Tags         users
// @Produce      json
// @Success      200  {array}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/user/all [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(actorFrom(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/user/add [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
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
// @Summary      Editar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateUserRequest  true  "Datos del usuario"
// @Success      200   {object}  dto.UserResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/user/update [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Marcar usuario como verificado
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "ID del usuario"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/user/verify [put]
func (h *UserHandler) Verify(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Verify(actorFrom(c), in.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "ID del usuario"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/user/deactivate [put]
func (h *UserHandler) Deactivate(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Deactivate(actorFrom(c), in.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Restore godoc
// @Summary      Restaurar usuario (no reactiva su tienda)
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "ID del usuario"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/user/restore [put]
func (h *UserHandler) Restore(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Restore(actorFrom(c), in.UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Purgar definitivamente un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UserIDRequest  true  "ID del usuario"
// @Success      200   {object}  map[string]bool
// @Router       /api/user/delete [put]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.UserIDRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Delete(actorFrom(c), in.UserID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// UpdateProfile godoc
// @Summary      Editar el perfil propio
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateProfileRequest  true  "Datos de perfil"
// @Success      200   {object}  dto.UserResponse
// @Router       /api/user/profile [patch]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var in dto.UpdateProfileRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateProfile(actorFrom(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangePassword godoc
// @Summary      Cambiar la contraseña propia
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ChangePasswordRequest  true  "Contraseña actual y nueva"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/user/password [put]
func (h *UserHandler) ChangePassword(c *fiber.Ctx) error {
	var in dto.ChangePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.ChangePassword(actorFrom(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"updated": true})
}
