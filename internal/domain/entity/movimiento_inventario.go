package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovimientoEntrada = "entrada"
	MovimientoSalida  = "salida"
)

// MovimientoInventario es un registro inmutable del ledger de inventario.
// Cantidad siempre es positiva; el signo lo determina Tipo. La suma con signo
// de los movimientos de una refacción, en orden de creación, es igual a su
// StockActual en todo momento.
type MovimientoInventario struct {
	ID          string
	RefaccionID string
	Tipo        string // entrada | salida
	Cantidad    int
	Fecha       time.Time
	Motivo      string
	Referencia  string // correlación, ej. "MANT-<id de orden>"
	CreadoPor   string
	CreadoEn    time.Time
}
