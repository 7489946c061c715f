package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

var _ repository.MantenimientoRepository = (*MantenimientoRepo)(nil)

// MantenimientoRepo implementación de MantenimientoRepository sobre PostgreSQL
// (usable con pool o tx).
type MantenimientoRepo struct {
	q Querier
}

// NewMantenimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMantenimientoRepository(q Querier) *MantenimientoRepo {
	return &MantenimientoRepo{q: q}
}

// Create persiste una orden de mantenimiento.
func (r *MantenimientoRepo) Create(m *entity.Mantenimiento) error {
	query := `
		INSERT INTO mantenimiento (id, trailer_id, fecha, tipo, descripcion, kilometraje, costo_mano_obra, taller, estado, creado_en, actualizado_en)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	taller := (*string)(nil)
	if m.Taller != "" {
		taller = &m.Taller
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.TrailerID, m.Fecha, m.Tipo, m.Descripcion, m.Kilometraje,
		m.CostoManoObra, taller, m.Estado, m.CreadoEn, m.ActualizadoEn,
	)
	if err != nil {
		return wrapStoreErr("insert mantenimiento", err)
	}
	return nil
}

// GetByID obtiene una orden con los datos de su trailer; nil si no existe.
func (r *MantenimientoRepo) GetByID(id string) (*entity.Mantenimiento, error) {
	query := `
		SELECT m.id, m.trailer_id, m.fecha, m.tipo, m.descripcion, m.kilometraje,
		       m.costo_mano_obra, m.taller, m.estado, m.creado_en, m.actualizado_en,
		       t.numero_economico, t.placas
		FROM mantenimiento m
		JOIN trailers t ON m.trailer_id = t.id
		WHERE m.id = $1`
	m, err := scanMantenimiento(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		return nil, wrapStoreErr("get mantenimiento", err)
	}
	return m, nil
}

// Update persiste los campos mutables de la orden.
func (r *MantenimientoRepo) Update(m *entity.Mantenimiento) error {
	query := `
		UPDATE mantenimiento
		SET fecha = $2, tipo = $3, descripcion = $4, kilometraje = $5,
		    costo_mano_obra = $6, taller = $7, estado = $8, actualizado_en = $9
		WHERE id = $1`
	taller := (*string)(nil)
	if m.Taller != "" {
		taller = &m.Taller
	}
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Fecha, m.Tipo, m.Descripcion, m.Kilometraje,
		m.CostoManoObra, taller, m.Estado, m.ActualizadoEn,
	)
	if err != nil {
		return wrapStoreErr("update mantenimiento", err)
	}
	return nil
}

// List devuelve órdenes con unidad y placas del trailer, fecha descendente.
func (r *MantenimientoRepo) List() ([]*entity.Mantenimiento, error) {
	query := `
		SELECT m.id, m.trailer_id, m.fecha, m.tipo, m.descripcion, m.kilometraje,
		       m.costo_mano_obra, m.taller, m.estado, m.creado_en, m.actualizado_en,
		       t.numero_economico, t.placas
		FROM mantenimiento m
		JOIN trailers t ON m.trailer_id = t.id
		ORDER BY m.fecha DESC`
	return r.list(query)
}

// ListByTrailer historial de una unidad, fecha descendente.
func (r *MantenimientoRepo) ListByTrailer(trailerID string) ([]*entity.Mantenimiento, error) {
	query := `
		SELECT m.id, m.trailer_id, m.fecha, m.tipo, m.descripcion, m.kilometraje,
		       m.costo_mano_obra, m.taller, m.estado, m.creado_en, m.actualizado_en,
		       t.numero_economico, t.placas
		FROM mantenimiento m
		JOIN trailers t ON m.trailer_id = t.id
		WHERE m.trailer_id = $1
		ORDER BY m.fecha DESC`
	return r.list(query, trailerID)
}

// CreateRefaccionUsage persiste el consumo de una refacción por la orden,
// con el precio unitario copiado al momento del uso.
func (r *MantenimientoRepo) CreateRefaccionUsage(u *entity.MantenimientoRefaccion) error {
	query := `
		INSERT INTO mantenimiento_refacciones (id, mantenimiento_id, refaccion_id, cantidad, precio_unitario)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.MantenimientoID, u.RefaccionID, u.Cantidad, u.PrecioUnitario,
	)
	if err != nil {
		return wrapStoreErr("insert mantenimiento_refaccion", err)
	}
	return nil
}

// ListRefaccionUsage lista las refacciones consumidas por una orden.
func (r *MantenimientoRepo) ListRefaccionUsage(mantenimientoID string) ([]*entity.MantenimientoRefaccion, error) {
	query := `
		SELECT mr.id, mr.mantenimiento_id, mr.refaccion_id, mr.cantidad, mr.precio_unitario,
		       rf.codigo, rf.nombre
		FROM mantenimiento_refacciones mr
		JOIN refacciones rf ON mr.refaccion_id = rf.id
		WHERE mr.mantenimiento_id = $1`
	rows, err := r.q.Query(context.Background(), query, mantenimientoID)
	if err != nil {
		return nil, wrapStoreErr("list mantenimiento_refacciones", err)
	}
	defer rows.Close()
	var list []*entity.MantenimientoRefaccion
	for rows.Next() {
		var u entity.MantenimientoRefaccion
		if err := rows.Scan(&u.ID, &u.MantenimientoID, &u.RefaccionID, &u.Cantidad,
			&u.PrecioUnitario, &u.Codigo, &u.Nombre); err != nil {
			return nil, wrapStoreErr("scan mantenimiento_refaccion", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

func scanMantenimiento(row pgx.Row) (*entity.Mantenimiento, error) {
	var m entity.Mantenimiento
	var taller *string
	err := row.Scan(
		&m.ID, &m.TrailerID, &m.Fecha, &m.Tipo, &m.Descripcion, &m.Kilometraje,
		&m.CostoManoObra, &taller, &m.Estado, &m.CreadoEn, &m.ActualizadoEn,
		&m.NumeroEconomico, &m.Placas,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if taller != nil {
		m.Taller = *taller
	}
	return &m, nil
}

func (r *MantenimientoRepo) list(query string, args ...any) ([]*entity.Mantenimiento, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, wrapStoreErr("list mantenimientos", err)
	}
	defer rows.Close()
	var list []*entity.Mantenimiento
	for rows.Next() {
		var m entity.Mantenimiento
		var taller *string
		if err := rows.Scan(
			&m.ID, &m.TrailerID, &m.Fecha, &m.Tipo, &m.Descripcion, &m.Kilometraje,
			&m.CostoManoObra, &taller, &m.Estado, &m.CreadoEn, &m.ActualizadoEn,
			&m.NumeroEconomico, &m.Placas,
		); err != nil {
			return nil, wrapStoreErr("scan mantenimiento", err)
		}
		if taller != nil {
			m.Taller = *taller
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
