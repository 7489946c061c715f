package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/application/inventario"
)

// InventarioHandler maneja entradas, salidas y consultas del ledger (protegido).
type InventarioHandler struct {
	uc *inventario.InventarioUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.InventarioUseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// RegistrarEntrada godoc
// @Summary      Registrar entrada de inventario
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la refacción"
// @Param        body  body  dto.MovimientoRequest  true  "cantidad, motivo, referencia, fecha"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id}/entrada [post]
func (h *InventarioHandler) RegistrarEntrada(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarEntrada(c.Context(), id, GetUsername(c), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// RegistrarSalida godoc
// @Summary      Registrar salida de inventario
// @Description  Verifica stock suficiente bajo bloqueo de fila; nunca deja stock negativo.
// @Tags         inventario
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la refacción"
// @Param        body  body  dto.MovimientoRequest  true  "cantidad, motivo, referencia, fecha"
// @Success      200   {object}  dto.StockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id}/salida [post]
func (h *InventarioHandler) RegistrarSalida(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.MovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarSalida(c.Context(), id, GetUsername(c), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Movimientos godoc
// @Summary      Historial de movimientos de una refacción
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la refacción"
// @Success      200  {array}   dto.MovimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id}/movimientos [get]
func (h *InventarioHandler) Movimientos(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.Movimientos(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// StockBajo godoc
// @Summary      Refacciones en o bajo su stock mínimo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RefaccionResponse
// @Router       /api/refacciones/stock-bajo [get]
func (h *InventarioHandler) StockBajo(c *fiber.Ctx) error {
	out, err := h.uc.StockBajo()
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}
