package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/application/usecase"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
)

// TrailerHandler maneja las peticiones HTTP de la flotilla (protegido).
type TrailerHandler struct {
	uc     *usecase.TrailerUseCase
	mantUC *mantenimiento.MantenimientoUseCase
}

// NewTrailerHandler construye el handler.
func NewTrailerHandler(uc *usecase.TrailerUseCase, mantUC *mantenimiento.MantenimientoUseCase) *TrailerHandler {
	return &TrailerHandler{uc: uc, mantUC: mantUC}
}

// Create godoc
// @Summary      Dar de alta un trailer
// @Tags         trailers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTrailerRequest  true  "Datos del trailer"
// @Success      201   {object}  dto.TrailerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trailers [post]
func (h *TrailerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.NumeroEconomico == "" || in.Placas == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "numero_economico y placas son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el número económico ya existe"})
		}
		return errorToResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener trailer por ID
// @Tags         trailers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del trailer"
// @Success      200  {object}  dto.TrailerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trailers/{id} [get]
func (h *TrailerHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trailer no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar la flotilla
// @Tags         trailers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.TrailerResponse
// @Router       /api/trailers [get]
func (h *TrailerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar trailer
// @Description  Estado solo admite activo/inactivo por esta vía; con la unidad en
//
//	mantenimiento el cambio de estado devuelve 409.
//
// @Tags         trailers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del trailer"
// @Param        body  body  dto.UpdateTrailerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TrailerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trailers/{id} [put]
func (h *TrailerHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateTrailerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorToResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "trailer no encontrado"})
	}
	return c.JSON(out)
}

// Mantenimientos godoc
// @Summary      Historial de mantenimiento de un trailer
// @Tags         trailers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del trailer"
// @Success      200  {array}   dto.MantenimientoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/trailers/{id}/mantenimientos [get]
func (h *TrailerHandler) Mantenimientos(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.mantUC.ListByTrailer(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}
