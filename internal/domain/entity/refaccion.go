package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Refaccion representa una refacción del almacén (pieza de repuesto para la flotilla).
// StockActual nunca puede ser negativo y solo cambia vía movimientos de inventario;
// el valor en la tabla es una caché materializada del ledger.
type Refaccion struct {
	ID             string
	Codigo         string // código único legible (ej. "FLT-001")
	Nombre         string
	Descripcion    string
	Categoria      string
	StockActual    int
	StockMinimo    int // punto de reorden
	PrecioUnitario decimal.Decimal
	Ubicacion      string
	CreadoEn       time.Time
	ActualizadoEn  time.Time
}
