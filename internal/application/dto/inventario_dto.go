package dto

import "time"

// MovimientoRequest body para POST /api/refacciones/{id}/entrada y /salida.
type MovimientoRequest struct {
	Cantidad   int    `json:"cantidad"`
	Motivo     string `json:"motivo,omitempty"`
	Referencia string `json:"referencia,omitempty"`
	Fecha      string `json:"fecha,omitempty"` // YYYY-MM-DD; vacío = hoy
}

// StockResponse nivel de stock resultante tras aplicar un movimiento.
type StockResponse struct {
	RefaccionID string `json:"refaccion_id"`
	StockActual int    `json:"stock_actual"`
	Message     string `json:"message"`
}

// MovimientoResponse un registro del ledger de inventario.
type MovimientoResponse struct {
	ID          string    `json:"id"`
	RefaccionID string    `json:"refaccion_id"`
	Tipo        string    `json:"tipo"`
	Cantidad    int       `json:"cantidad"`
	Fecha       time.Time `json:"fecha"`
	Motivo      string    `json:"motivo,omitempty"`
	Referencia  string    `json:"referencia,omitempty"`
	CreadoPor   string    `json:"creado_por,omitempty"`
	CreadoEn    time.Time `json:"creado_en"`
}
