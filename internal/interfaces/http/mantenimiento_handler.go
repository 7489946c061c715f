package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
)

// MantenimientoHandler maneja las órdenes de servicio (protegido).
type MantenimientoHandler struct {
	uc *mantenimiento.MantenimientoUseCase
}

// NewMantenimientoHandler construye el handler.
func NewMantenimientoHandler(uc *mantenimiento.MantenimientoUseCase) *MantenimientoHandler {
	return &MantenimientoHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir orden de mantenimiento
// @Description  Crea la orden, consume las refacciones indicadas y pone el trailer
//
//	en estado "mantenimiento", todo en una transacción: si una refacción
//	no alcanza, nada queda aplicado.
//
// @Tags         mantenimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMantenimientoRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.IDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mantenimientos [post]
func (h *MantenimientoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMantenimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), GetUsername(c), in)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar órdenes de mantenimiento
// @Tags         mantenimientos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.MantenimientoResponse
// @Router       /api/mantenimientos [get]
func (h *MantenimientoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden con sus refacciones usadas
// @Tags         mantenimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.MantenimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mantenimientos/{id} [get]
func (h *MantenimientoHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "mantenimiento no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar orden de mantenimiento
// @Description  Si estado pasa a "completado" el trailer regresa a "activo" en la
//
//	misma transacción. Una orden completada ya no admite cambios de estado.
//
// @Tags         mantenimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.UpdateMantenimientoRequest  true  "Campos a actualizar"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/mantenimientos/{id} [put]
func (h *MantenimientoHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateMantenimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Update(c.Context(), id, in); err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "mantenimiento actualizado"})
}

// Completar godoc
// @Summary      Completar orden de mantenimiento
// @Description  Marca la orden como completada y reactiva el trailer. Repetir la
//
//	operación sobre una orden ya completada devuelve 409.
//
// @Tags         mantenimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/mantenimientos/{id}/completar [put]
func (h *MantenimientoHandler) Completar(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Completar(c.Context(), id); err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(fiber.Map{"message": "mantenimiento completado"})
}

// CostoTotal godoc
// @Summary      Desglose de costo de una orden
// @Tags         mantenimientos
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {object}  dto.CostoTotalResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mantenimientos/{id}/costo-total [get]
func (h *MantenimientoHandler) CostoTotal(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.CostoTotal(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Hoja imprimible de la orden de servicio
// @Tags         mantenimientos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID de la orden"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/mantenimientos/{id}/pdf [get]
func (h *MantenimientoHandler) PDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.GenerarPDF(c.Context(), id)
	if err != nil {
		return errorToResponse(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="orden-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}
