package dto

import "time"

// CreateTrailerRequest body para POST /api/trailers.
type CreateTrailerRequest struct {
	NumeroEconomico string `json:"numero_economico"`
	Placas          string `json:"placas"`
	Marca           string `json:"marca,omitempty"`
	Modelo          string `json:"modelo,omitempty"`
	Anio            int    `json:"anio,omitempty"`
	Kilometraje     int    `json:"kilometraje,omitempty"`
}

// UpdateTrailerRequest body para PUT /api/trailers/{id}.
// Estado solo admite "activo" ↔ "inactivo" por esta vía; las transiciones de
// mantenimiento son exclusivas del flujo de órdenes de servicio.
type UpdateTrailerRequest struct {
	NumeroEconomico *string `json:"numero_economico,omitempty"`
	Placas          *string `json:"placas,omitempty"`
	Marca           *string `json:"marca,omitempty"`
	Modelo          *string `json:"modelo,omitempty"`
	Anio            *int    `json:"anio,omitempty"`
	Kilometraje     *int    `json:"kilometraje,omitempty"`
	Estado          *string `json:"estado,omitempty"`
}

// TrailerResponse representación HTTP de un trailer.
type TrailerResponse struct {
	ID              string    `json:"id"`
	NumeroEconomico string    `json:"numero_economico"`
	Placas          string    `json:"placas"`
	Marca           string    `json:"marca,omitempty"`
	Modelo          string    `json:"modelo,omitempty"`
	Anio            int       `json:"anio,omitempty"`
	Kilometraje     int       `json:"kilometraje"`
	Estado          string    `json:"estado"`
	CreadoEn        time.Time `json:"creado_en"`
}
