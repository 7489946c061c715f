package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de mantenimiento.
const (
	MantenimientoPreventivo = "preventivo"
	MantenimientoCorrectivo = "correctivo"
	MantenimientoEmergencia = "emergencia"
)

// Estados de una orden de mantenimiento. "completado" es terminal: no existe reapertura.
const (
	EstadoProgramado = "programado"
	EstadoEnProceso  = "en_proceso"
	EstadoCompletado = "completado"
)

// Mantenimiento es una orden de servicio contra un trailer (tractocamión).
// Su ciclo de vida gobierna el estado del trailer: al crearla el trailer pasa a
// "mantenimiento" y al completarla regresa a "activo".
type Mantenimiento struct {
	ID            string
	TrailerID     string
	Fecha         time.Time
	Tipo          string // preventivo | correctivo | emergencia
	Descripcion   string
	Kilometraje   *int
	CostoManoObra decimal.Decimal
	Taller        string
	Estado        string
	CreadoEn      time.Time
	ActualizadoEn time.Time

	// Denormalizados del trailer para listados (JOIN, no persistidos aquí).
	NumeroEconomico string
	Placas          string
}

// MantenimientoRefaccion es una refacción consumida por una orden.
// PrecioUnitario se copia al momento del uso y no se vuelve a leer, para que
// los reportes históricos de costo no cambien con ajustes de precio posteriores.
type MantenimientoRefaccion struct {
	ID              string
	MantenimientoID string
	RefaccionID     string
	Cantidad        int
	PrecioUnitario  decimal.Decimal

	// Denormalizados de la refacción para detalle (JOIN).
	Codigo string
	Nombre string
}
