package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/application/usecase"
)

// StoreHandler identidad de la tienda para recibos (protegido).
type StoreHandler struct {
	uc *usecase.StoreUseCase
}

// NewStoreHandler construye el handler.
func NewStoreHandler(uc *usecase.StoreUseCase) *StoreHandler {
	return &StoreHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener configuración de la tienda
// @Description  Retorna nombre y CNPJ; si nunca se configuró, crea y retorna
// @Description  los valores por defecto.
// @Tags         store
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StoreSettingsResponse
// @Router       /api/store [get]
func (h *StoreHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar configuración de la tienda
// @Tags         store
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StoreSettingsRequest  true  "Nombre y CNPJ"
// @Success      200  {object}  dto.StoreSettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/store [put]
func (h *StoreHandler) Update(c *fiber.Ctx) error {
	var in dto.StoreSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
