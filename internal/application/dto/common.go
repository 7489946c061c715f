package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// IDResponse respuesta de creación: id del recurso + mensaje.
type IDResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
