package repository

import "github.com/blues182/sistema-transporte-admin/internal/domain/entity"

// TrailerRepository define el puerto de persistencia para trailers.
// UpdateEstado hacia "mantenimiento"/"activo" pertenece al flujo de
// mantenimiento; ningún otro componente debe escribir esas transiciones.
type TrailerRepository interface {
	Create(t *entity.Trailer) error
	GetByID(id string) (*entity.Trailer, error)
	// GetForUpdate bloquea la fila del trailer; usar solo dentro de una tx.
	GetForUpdate(id string) (*entity.Trailer, error)
	Update(t *entity.Trailer) error
	UpdateEstado(id, estado string) error
	List() ([]*entity.Trailer, error)
}
