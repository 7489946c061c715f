package postgres

import (
	"context"

	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

var _ repository.MovimientoInventarioRepository = (*MovimientoInventarioRepo)(nil)

// MovimientoInventarioRepo implementación del ledger sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el ledger es append-only.
type MovimientoInventarioRepo struct {
	q Querier
}

// NewMovimientoInventarioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoInventarioRepository(q Querier) *MovimientoInventarioRepo {
	return &MovimientoInventarioRepo{q: q}
}

// Create persiste un movimiento del ledger.
func (r *MovimientoInventarioRepo) Create(m *entity.MovimientoInventario) error {
	query := `
		INSERT INTO movimientos_inventario (id, refaccion_id, tipo, cantidad, fecha, motivo, referencia, creado_por, creado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	creadoPor := (*string)(nil)
	if m.CreadoPor != "" {
		creadoPor = &m.CreadoPor
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.RefaccionID, m.Tipo, m.Cantidad, m.Fecha, m.Motivo, m.Referencia,
		creadoPor, m.CreadoEn,
	)
	if err != nil {
		return wrapStoreErr("insert movimiento", err)
	}
	return nil
}

// ListByRefaccion lista movimientos de una refacción, más recientes primero.
func (r *MovimientoInventarioRepo) ListByRefaccion(refaccionID string) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, refaccion_id, tipo, cantidad, fecha, motivo, referencia, creado_por, creado_en
		FROM movimientos_inventario
		WHERE refaccion_id = $1
		ORDER BY fecha DESC, creado_en DESC`
	rows, err := r.q.Query(context.Background(), query, refaccionID)
	if err != nil {
		return nil, wrapStoreErr("list movimientos", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		var creadoPor *string
		if err := rows.Scan(&m.ID, &m.RefaccionID, &m.Tipo, &m.Cantidad, &m.Fecha,
			&m.Motivo, &m.Referencia, &creadoPor, &m.CreadoEn); err != nil {
			return nil, wrapStoreErr("scan movimiento", err)
		}
		if creadoPor != nil {
			m.CreadoPor = *creadoPor
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
