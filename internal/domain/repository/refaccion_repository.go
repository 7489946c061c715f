package repository

import "github.com/blues182/sistema-transporte-admin/internal/domain/entity"

// RefaccionRepository define el puerto de persistencia para Refaccion (DIP).
// StockActual solo se modifica vía UpdateStock dentro de una transacción que
// también inserte el movimiento correspondiente en el ledger.
type RefaccionRepository interface {
	Create(r *entity.Refaccion) error
	GetByID(id string) (*entity.Refaccion, error)
	GetByCodigo(codigo string) (*entity.Refaccion, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE); usar solo dentro de una tx.
	GetForUpdate(id string) (*entity.Refaccion, error)
	Update(r *entity.Refaccion) error
	UpdateStock(id string, stock int) error
	List() ([]*entity.Refaccion, error)
	// ListLowStock devuelve refacciones con stock_actual <= stock_minimo,
	// ascendente por stock_actual (las más agotadas primero).
	ListLowStock() ([]*entity.Refaccion, error)
}
