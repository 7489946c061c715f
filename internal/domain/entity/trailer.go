package entity

import "time"

// Estados de un trailer. Las transiciones hacia/desde "mantenimiento" son
// exclusivas del flujo de mantenimiento; escribirlas por otro camino arriesga
// updates perdidos.
const (
	TrailerActivo        = "activo"
	TrailerMantenimiento = "mantenimiento"
	TrailerInactivo      = "inactivo"
)

// Trailer representa un tractocamión de la flotilla (distinto de Remolque,
// la caja arrastrada, que no pertenece a este núcleo).
type Trailer struct {
	ID              string
	NumeroEconomico string // identificador único de unidad (ej. "TR-014")
	Placas          string
	Marca           string
	Modelo          string
	Anio            int
	Kilometraje     int
	Estado          string
	CreadoEn        time.Time
	ActualizadoEn   time.Time
}
