package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Stand-api/internal/application/dto"
	"github.com/jhoicas/Stand-api/internal/domain"
)

// writeError traduce un error de dominio a status HTTP y cuerpo dto.ErrorResponse.
func writeError(c *fiber.Ctx, err error) error {
	var (
		invalidItem *domain.InvalidSalesItemError
		missingItem *domain.ItemNotFoundError
		outOfRange  *domain.IndexOutOfRangeError
	)
	switch {
	case errors.As(err, &invalidItem):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code: "INVALID_SALES_ITEM", Message: "la planilla incluye un artículo que no está en el menú", Item: invalidItem.Item,
		})
	case errors.As(err, &missingItem):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "ITEM_NOT_FOUND", Message: "el artículo no está en el menú", Item: missingItem.Item,
		})
	case errors.As(err, &outOfRange):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "DAY_OUT_OF_RANGE", Message: outOfRange.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "puesto no encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "ya existe un puesto con ese nombre"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func badBody(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: msg})
}
