package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andresfq/caja-api/internal/application/dto"
	"github.com/andresfq/caja-api/internal/domain"
)

// respondError traduce los errores de dominio al envelope HTTP uniforme.
// Un id inexistente responde el mensaje genérico en lugar de confirmar la
// no-existencia, y los errores internos nunca exponen detalle al cliente.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code: "NOT_AUTHORIZED", Message: "validations.not-authorized",
		})
	case errors.Is(err, domain.ErrInvalidCredentials):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "INVALID_CREDENTIALS", Message: "validations.wrong-credentials",
		})
	}
	if ve, ok := domain.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "validations.wrong", Details: ve.Fields,
		})
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "SOMETHING_WRONG", Message: "validations.something-wrong",
	})
}

// badBody respuesta estándar para un cuerpo JSON que no se pudo parsear.
func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Code: "INVALID_BODY", Message: "validations.something-wrong",
	})
}
