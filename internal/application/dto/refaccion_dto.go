package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRefaccionRequest body para POST /api/refacciones.
// StockActual solo se acepta aquí (stock inicial); después únicamente cambia
// vía movimientos de inventario.
type CreateRefaccionRequest struct {
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	StockActual    int             `json:"stock_actual"`
	StockMinimo    int             `json:"stock_minimo"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Ubicacion      string          `json:"ubicacion,omitempty"`
}

// UpdateRefaccionRequest body para PUT /api/refacciones/{id}.
// Campos enumerados explícitamente: stock_actual no es actualizable por esta vía.
type UpdateRefaccionRequest struct {
	Nombre         *string          `json:"nombre,omitempty"`
	Descripcion    *string          `json:"descripcion,omitempty"`
	Categoria      *string          `json:"categoria,omitempty"`
	StockMinimo    *int             `json:"stock_minimo,omitempty"`
	PrecioUnitario *decimal.Decimal `json:"precio_unitario,omitempty"`
	Ubicacion      *string          `json:"ubicacion,omitempty"`
}

// RefaccionResponse representación HTTP de una refacción.
type RefaccionResponse struct {
	ID             string          `json:"id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	Categoria      string          `json:"categoria,omitempty"`
	StockActual    int             `json:"stock_actual"`
	StockMinimo    int             `json:"stock_minimo"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Ubicacion      string          `json:"ubicacion,omitempty"`
	CreadoEn       time.Time       `json:"creado_en"`
	ActualizadoEn  time.Time       `json:"actualizado_en"`
}
