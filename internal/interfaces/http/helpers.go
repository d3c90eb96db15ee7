package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/domain"
)

// respondError traduce errores de dominio a códigos HTTP. Errores no
// clasificados responden 500 genérico y se registran (nunca se tragan).
func respondError(c *fiber.Ctx, err error) error {
	var insufficient *domain.InsufficientStockError
	if errors.As(err, &insufficient) {
		lines := make([]fiber.Map, 0, len(insufficient.Lines))
		for _, l := range insufficient.Lines {
			lines = append(lines, fiber.Map{
				"product_id":   l.ProductID,
				"product_name": l.ProductName,
				"requested":    l.Requested,
				"available":    l.Available,
			})
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"code":    "INSUFFICIENT_STOCK",
			"message": insufficient.Error(),
			"lines":   lines,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	}
	log.Error().Err(err).Str("path", c.Path()).Msg("error no clasificado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
