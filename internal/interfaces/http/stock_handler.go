package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/pos-api/internal/application/dto"
	"github.com/invorya/pos-api/internal/application/stock"
	"github.com/invorya/pos-api/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del stock ledger (protegido).
type StockHandler struct {
	ledger *stock.Ledger
}

// NewStockHandler construye el handler.
func NewStockHandler(ledger *stock.Ledger) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// RecordMovement godoc
// @Summary      Registrar movimiento de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordMovementRequest  true  "product_id, type (INCOMING|OUTGOING|LOSS|ADJUST_INCOMING|ADJUST_OUTGOING), quantity, reason"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/movements [post]
func (h *StockHandler) RecordMovement(c *fiber.Ctx) error {
	var in dto.RecordMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	err := h.ledger.RecordMovement(c.Context(), stock.MovementInput{
		ProductID: in.ProductID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Reason:    in.Reason,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "movimiento registrado"})
}

// CorrectStock godoc
// @Summary      Corregir stock a un valor absoluto observado
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CorrectStockRequest  true  "product_id, target_stock, reason"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/correction [post]
func (h *StockHandler) CorrectStock(c *fiber.Ctx) error {
	var in dto.CorrectStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	reason := in.Reason
	if reason == "" {
		reason = "Ajuste manual"
	}
	if err := h.ledger.CorrectStock(c.Context(), in.ProductID, in.TargetStock, reason); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "stock corregido"})
}

// ListMovements godoc
// @Summary      Historial general de movimientos (todos los productos)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Máximo de movimientos"  default(100)
// @Success      200    {array}  dto.MovementResponse
// @Router       /api/stock/movements [get]
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 100)
	list, err := h.ledger.ListAll(c.Context(), limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponses(list))
}

// History godoc
// @Summary      Historial de movimientos de un producto
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {array}  dto.MovementResponse
// @Router       /api/stock/movements/{productId} [get]
func (h *StockHandler) History(c *fiber.Ctx) error {
	productID := c.Params("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "productId es requerido"})
	}
	list, err := h.ledger.History(c.Context(), productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponses(list))
}

func toMovementResponses(list []*entity.MovementWithProduct) []dto.MovementResponse {
	out := make([]dto.MovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			Reason:      m.Reason,
			CreatedAt:   m.CreatedAt,
		})
	}
	return out
}
