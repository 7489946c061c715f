package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/application/usecase"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
)

// RefaccionHandler maneja las peticiones HTTP del catálogo de refacciones (protegido).
type RefaccionHandler struct {
	uc *usecase.RefaccionUseCase
}

// NewRefaccionHandler construye el handler.
func NewRefaccionHandler(uc *usecase.RefaccionUseCase) *RefaccionHandler {
	return &RefaccionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear refacción
// @Tags         refacciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRefaccionRequest  true  "Datos de la refacción"
// @Success      201   {object}  dto.RefaccionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/refacciones [post]
func (h *RefaccionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRefaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" || in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo y nombre son requeridos"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el código ya existe"})
		}
		return errorToResponse(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener refacción por ID
// @Tags         refacciones
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la refacción"
// @Success      200  {object}  dto.RefaccionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id} [get]
func (h *RefaccionHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return errorToResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción no encontrada"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar refacciones
// @Tags         refacciones
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RefaccionResponse
// @Router       /api/refacciones [get]
func (h *RefaccionHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return errorToResponse(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar refacción (no toca stock_actual)
// @Tags         refacciones
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la refacción"
// @Param        body  body  dto.UpdateRefaccionRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.RefaccionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/refacciones/{id} [put]
func (h *RefaccionHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateRefaccionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return errorToResponse(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "refacción no encontrada"})
	}
	return c.JSON(out)
}
