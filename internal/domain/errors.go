package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// ErrStoreUnavailable clasifica fallas transitorias del almacén (conexión,
// timeout): el caller puede reintentar; el núcleo nunca reintenta solo.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrStoreUnavailable  = errors.New("base de datos no disponible, reintente")
)
