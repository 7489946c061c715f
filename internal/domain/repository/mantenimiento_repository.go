package repository

import "github.com/blues182/sistema-transporte-admin/internal/domain/entity"

// MantenimientoRepository define el puerto de persistencia para órdenes de mantenimiento.
type MantenimientoRepository interface {
	Create(m *entity.Mantenimiento) error
	GetByID(id string) (*entity.Mantenimiento, error)
	Update(m *entity.Mantenimiento) error
	// List devuelve órdenes con numero_economico y placas del trailer, fecha descendente.
	List() ([]*entity.Mantenimiento, error)
	ListByTrailer(trailerID string) ([]*entity.Mantenimiento, error)
	CreateRefaccionUsage(u *entity.MantenimientoRefaccion) error
	ListRefaccionUsage(mantenimientoID string) ([]*entity.MantenimientoRefaccion, error)
}
