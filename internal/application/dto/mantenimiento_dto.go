package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RefaccionUsadaRequest una refacción a consumir al crear la orden.
// PrecioUnitario se persiste tal cual (snapshot), no se vuelve a leer del catálogo.
type RefaccionUsadaRequest struct {
	RefaccionID    string          `json:"refaccion_id"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// CreateMantenimientoRequest body para POST /api/mantenimientos.
type CreateMantenimientoRequest struct {
	TrailerID     string                  `json:"trailer_id"`
	Fecha         string                  `json:"fecha"` // YYYY-MM-DD
	Tipo          string                  `json:"tipo"`  // preventivo | correctivo | emergencia
	Descripcion   string                  `json:"descripcion"`
	Kilometraje   *int                    `json:"kilometraje,omitempty"`
	CostoManoObra decimal.Decimal         `json:"costo_mano_obra"`
	Taller        string                  `json:"taller,omitempty"`
	Refacciones   []RefaccionUsadaRequest `json:"refacciones,omitempty"`
}

// UpdateMantenimientoRequest body para PUT /api/mantenimientos/{id}.
// Campos enumerados explícitamente (nada de mapas libres hacia SQL SET).
// Si Estado pasa a "completado" el trailer regresa a "activo" en la misma tx.
type UpdateMantenimientoRequest struct {
	Fecha         *string          `json:"fecha,omitempty"`
	Tipo          *string          `json:"tipo,omitempty"`
	Descripcion   *string          `json:"descripcion,omitempty"`
	Kilometraje   *int             `json:"kilometraje,omitempty"`
	CostoManoObra *decimal.Decimal `json:"costo_mano_obra,omitempty"`
	Taller        *string          `json:"taller,omitempty"`
	Estado        *string          `json:"estado,omitempty"`
}

// RefaccionUsadaResponse refacción consumida por una orden.
type RefaccionUsadaResponse struct {
	RefaccionID    string          `json:"refaccion_id"`
	Codigo         string          `json:"codigo"`
	Nombre         string          `json:"nombre"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
}

// MantenimientoResponse representación HTTP de una orden de mantenimiento.
type MantenimientoResponse struct {
	ID              string                   `json:"id"`
	TrailerID       string                   `json:"trailer_id"`
	NumeroEconomico string                   `json:"numero_economico,omitempty"`
	Placas          string                   `json:"placas,omitempty"`
	Fecha           time.Time                `json:"fecha"`
	Tipo            string                   `json:"tipo"`
	Descripcion     string                   `json:"descripcion"`
	Kilometraje     *int                     `json:"kilometraje,omitempty"`
	CostoManoObra   decimal.Decimal          `json:"costo_mano_obra"`
	Taller          string                   `json:"taller,omitempty"`
	Estado          string                   `json:"estado"`
	Refacciones     []RefaccionUsadaResponse `json:"refacciones,omitempty"`
	CreadoEn        time.Time                `json:"creado_en"`
}

// CostoTotalResponse desglose de costo de una orden.
type CostoTotalResponse struct {
	CostoManoObra    decimal.Decimal `json:"costo_mano_obra"`
	CostoRefacciones decimal.Decimal `json:"costo_refacciones"`
	CostoTotal       decimal.Decimal `json:"costo_total"`
}
