package mantenimiento_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blues182/sistema-transporte-admin/internal/application/dto"
	"github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/domain"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeStore simula el estado compartido de la base para el flujo completo.
type fakeStore struct {
	refacciones map[string]*entity.Refaccion
	trailers    map[string]*entity.Trailer
	ordenes     map[string]*entity.Mantenimiento
	usos        []*entity.MantenimientoRefaccion
	movimientos []*entity.MovimientoInventario
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		refacciones: map[string]*entity.Refaccion{},
		trailers:    map[string]*entity.Trailer{},
		ordenes:     map[string]*entity.Mantenimiento{},
	}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, r := range s.refacciones {
		c := *r
		cp.refacciones[id] = &c
	}
	for id, t := range s.trailers {
		c := *t
		cp.trailers[id] = &c
	}
	for id, o := range s.ordenes {
		c := *o
		cp.ordenes[id] = &c
	}
	cp.usos = append([]*entity.MantenimientoRefaccion(nil), s.usos...)
	cp.movimientos = append([]*entity.MovimientoInventario(nil), s.movimientos...)
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.refacciones = snap.refacciones
	s.trailers = snap.trailers
	s.ordenes = snap.ordenes
	s.usos = snap.usos
	s.movimientos = snap.movimientos
}

type fakeRefaccionRepo struct{ s *fakeStore }

func (f *fakeRefaccionRepo) Create(r *entity.Refaccion) error { f.s.refacciones[r.ID] = r; return nil }
func (f *fakeRefaccionRepo) GetByID(id string) (*entity.Refaccion, error) {
	r, ok := f.s.refacciones[id]
	if !ok {
		return nil, nil
	}
	c := *r
	return &c, nil
}
func (f *fakeRefaccionRepo) GetByCodigo(string) (*entity.Refaccion, error) { return nil, nil }
func (f *fakeRefaccionRepo) GetForUpdate(id string) (*entity.Refaccion, error) {
	return f.GetByID(id)
}
func (f *fakeRefaccionRepo) Update(r *entity.Refaccion) error { f.s.refacciones[r.ID] = r; return nil }
func (f *fakeRefaccionRepo) UpdateStock(id string, stock int) error {
	r, ok := f.s.refacciones[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.StockActual = stock
	return nil
}
func (f *fakeRefaccionRepo) List() ([]*entity.Refaccion, error)         { return nil, nil }
func (f *fakeRefaccionRepo) ListLowStock() ([]*entity.Refaccion, error) { return nil, nil }

type fakeMovimientoRepo struct{ s *fakeStore }

func (f *fakeMovimientoRepo) Create(m *entity.MovimientoInventario) error {
	f.s.movimientos = append(f.s.movimientos, m)
	return nil
}
func (f *fakeMovimientoRepo) ListByRefaccion(refaccionID string) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range f.s.movimientos {
		if m.RefaccionID == refaccionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeTrailerRepo struct{ s *fakeStore }

func (f *fakeTrailerRepo) Create(t *entity.Trailer) error { f.s.trailers[t.ID] = t; return nil }
func (f *fakeTrailerRepo) GetByID(id string) (*entity.Trailer, error) {
	t, ok := f.s.trailers[id]
	if !ok {
		return nil, nil
	}
	c := *t
	return &c, nil
}
func (f *fakeTrailerRepo) GetForUpdate(id string) (*entity.Trailer, error) { return f.GetByID(id) }
func (f *fakeTrailerRepo) Update(t *entity.Trailer) error                  { f.s.trailers[t.ID] = t; return nil }
func (f *fakeTrailerRepo) UpdateEstado(id, estado string) error {
	t, ok := f.s.trailers[id]
	if !ok {
		return domain.ErrNotFound
	}
	t.Estado = estado
	return nil
}
func (f *fakeTrailerRepo) List() ([]*entity.Trailer, error) { return nil, nil }

type fakeMantenimientoRepo struct{ s *fakeStore }

func (f *fakeMantenimientoRepo) Create(m *entity.Mantenimiento) error {
	f.s.ordenes[m.ID] = m
	return nil
}
func (f *fakeMantenimientoRepo) GetByID(id string) (*entity.Mantenimiento, error) {
	o, ok := f.s.ordenes[id]
	if !ok {
		return nil, nil
	}
	c := *o
	return &c, nil
}
func (f *fakeMantenimientoRepo) Update(m *entity.Mantenimiento) error {
	f.s.ordenes[m.ID] = m
	return nil
}
func (f *fakeMantenimientoRepo) List() ([]*entity.Mantenimiento, error) {
	var out []*entity.Mantenimiento
	for _, o := range f.s.ordenes {
		out = append(out, o)
	}
	return out, nil
}
func (f *fakeMantenimientoRepo) ListByTrailer(trailerID string) ([]*entity.Mantenimiento, error) {
	var out []*entity.Mantenimiento
	for _, o := range f.s.ordenes {
		if o.TrailerID == trailerID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (f *fakeMantenimientoRepo) CreateRefaccionUsage(u *entity.MantenimientoRefaccion) error {
	f.s.usos = append(f.s.usos, u)
	return nil
}
func (f *fakeMantenimientoRepo) ListRefaccionUsage(mantenimientoID string) ([]*entity.MantenimientoRefaccion, error) {
	var out []*entity.MantenimientoRefaccion
	for _, u := range f.s.usos {
		if u.MantenimientoID == mantenimientoID {
			out = append(out, u)
		}
	}
	return out, nil
}

// fakeTxRunner toma un snapshot antes del callback y lo restaura si falla:
// mismo contrato todo-o-nada que la transacción real.
type fakeTxRunner struct{ s *fakeStore }

func (f *fakeTxRunner) RunMantenimiento(_ context.Context, fn func(
	mantRepo repository.MantenimientoRepository,
	refaccionRepo repository.RefaccionRepository,
	movRepo repository.MovimientoInventarioRepository,
	trailerRepo repository.TrailerRepository,
) error) error {
	snap := f.s.snapshot()
	err := fn(
		&fakeMantenimientoRepo{s: f.s},
		&fakeRefaccionRepo{s: f.s},
		&fakeMovimientoRepo{s: f.s},
		&fakeTrailerRepo{s: f.s},
	)
	if err != nil {
		f.s.restore(snap)
		return err
	}
	return nil
}

type fakePDFGenerator struct{ called bool }

func (f *fakePDFGenerator) GenerateOrdenPDF(
	_ context.Context,
	_ *entity.Mantenimiento,
	_ *entity.Trailer,
	_ []*entity.MantenimientoRefaccion,
) ([]byte, error) {
	f.called = true
	return []byte("%PDF-fake"), nil
}

func newUseCase(s *fakeStore) *mantenimiento.MantenimientoUseCase {
	return mantenimiento.NewMantenimientoUseCase(
		&fakeTxRunner{s: s},
		&fakeMantenimientoRepo{s: s},
		&fakeTrailerRepo{s: s},
		&fakePDFGenerator{},
	)
}

func seedStore() *fakeStore {
	s := newFakeStore()
	s.trailers["t1"] = &entity.Trailer{
		ID:              "t1",
		NumeroEconomico: "TR-014",
		Placas:          "ABC-123-D",
		Estado:          entity.TrailerActivo,
	}
	s.refacciones["r1"] = &entity.Refaccion{
		ID:             "r1",
		Codigo:         "FLT-001",
		Nombre:         "Filtro de aceite",
		StockActual:    7,
		StockMinimo:    2,
		PrecioUnitario: decimal.NewFromInt(50),
	}
	s.refacciones["r2"] = &entity.Refaccion{
		ID:             "r2",
		Codigo:         "BAL-010",
		Nombre:         "Balatas traseras",
		StockActual:    3,
		StockMinimo:    1,
		PrecioUnitario: decimal.NewFromInt(200),
	}
	return s
}

func createRequest() dto.CreateMantenimientoRequest {
	return dto.CreateMantenimientoRequest{
		TrailerID:     "t1",
		Fecha:         "2026-08-15",
		Tipo:          entity.MantenimientoPreventivo,
		Descripcion:   "Servicio de 50,000 km",
		CostoManoObra: decimal.NewFromInt(1500),
		Taller:        "Taller propio",
		Refacciones: []dto.RefaccionUsadaRequest{
			{RefaccionID: "r1", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(50)},
			{RefaccionID: "r2", Cantidad: 1, PrecioUnitario: decimal.NewFromInt(200)},
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de creación
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AplicaOrdenConsumosYTrailerJuntos(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)

	// Orden creada en estado en_proceso
	orden := s.ordenes[out.ID]
	require.NotNil(t, orden)
	assert.Equal(t, entity.EstadoEnProceso, orden.Estado)

	// Trailer fuera de servicio desde la apertura
	assert.Equal(t, entity.TrailerMantenimiento, s.trailers["t1"].Estado)

	// Stock descontado: 7-2=5 y 3-1=2
	assert.Equal(t, 5, s.refacciones["r1"].StockActual)
	assert.Equal(t, 2, s.refacciones["r2"].StockActual)

	// Un uso y un movimiento de salida por refacción, con referencia a la orden
	require.Len(t, s.usos, 2)
	require.Len(t, s.movimientos, 2)
	for _, m := range s.movimientos {
		assert.Equal(t, entity.MovimientoSalida, m.Tipo)
		assert.Equal(t, "Mantenimiento", m.Motivo)
		assert.Equal(t, "MANT-"+out.ID, m.Referencia)
		assert.Equal(t, "jperez", m.CreadoPor)
	}
}

func TestCreate_StockInsuficiente_NoDejaEfectos(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	in := createRequest()
	in.Refacciones = []dto.RefaccionUsadaRequest{
		{RefaccionID: "r1", Cantidad: 2, PrecioUnitario: decimal.NewFromInt(50)},
		{RefaccionID: "r2", Cantidad: 99, PrecioUnitario: decimal.NewFromInt(200)},
	}

	_, err := uc.Create(context.Background(), "jperez", in)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Nada quedó aplicado: ni orden, ni usos, ni ledger, ni cambio de trailer,
	// ni el descuento de la primera refacción que sí alcanzaba.
	assert.Empty(t, s.ordenes)
	assert.Empty(t, s.usos)
	assert.Empty(t, s.movimientos)
	assert.Equal(t, entity.TrailerActivo, s.trailers["t1"].Estado)
	assert.Equal(t, 7, s.refacciones["r1"].StockActual)
	assert.Equal(t, 3, s.refacciones["r2"].StockActual)
}

func TestCreate_TrailerInexistente(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	in := createRequest()
	in.TrailerID = "nope"

	_, err := uc.Create(context.Background(), "jperez", in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, s.ordenes)
}

func TestCreate_ValidacionDeEntrada(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	cases := map[string]func(*dto.CreateMantenimientoRequest){
		"sin trailer":        func(in *dto.CreateMantenimientoRequest) { in.TrailerID = "" },
		"sin descripcion":    func(in *dto.CreateMantenimientoRequest) { in.Descripcion = "" },
		"tipo desconocido":   func(in *dto.CreateMantenimientoRequest) { in.Tipo = "cosmetico" },
		"fecha invalida":     func(in *dto.CreateMantenimientoRequest) { in.Fecha = "15/08/2026" },
		"costo negativo":     func(in *dto.CreateMantenimientoRequest) { in.CostoManoObra = decimal.NewFromInt(-1) },
		"cantidad cero":      func(in *dto.CreateMantenimientoRequest) { in.Refacciones[0].Cantidad = 0 },
		"precio negativo":    func(in *dto.CreateMantenimientoRequest) { in.Refacciones[0].PrecioUnitario = decimal.NewFromInt(-5) },
		"refaccion sin id":   func(in *dto.CreateMantenimientoRequest) { in.Refacciones[0].RefaccionID = "" },
	}
	for name, mutate := range cases {
		in := createRequest()
		mutate(&in)
		_, err := uc.Create(context.Background(), "jperez", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "caso %q", name)
	}
	assert.Empty(t, s.ordenes)
}

func TestCreate_SinRefacciones_EsValido(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	in := createRequest()
	in.Refacciones = nil

	out, err := uc.Create(context.Background(), "jperez", in)
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Empty(t, s.movimientos)
	assert.Equal(t, entity.TrailerMantenimiento, s.trailers["t1"].Estado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de ciclo de vida
// ──────────────────────────────────────────────────────────────────────────────

func TestCompletar_ReactivaTrailer(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)

	require.NoError(t, uc.Completar(context.Background(), out.ID))
	assert.Equal(t, entity.EstadoCompletado, s.ordenes[out.ID].Estado)
	assert.Equal(t, entity.TrailerActivo, s.trailers["t1"].Estado)
}

func TestCompletar_OrdenYaCompletada_Conflicto(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Completar(context.Background(), out.ID))

	err = uc.Completar(context.Background(), out.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "completado es terminal")
}

func TestUpdate_EstadoCompletado_ReactivaTrailer(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)

	estado := entity.EstadoCompletado
	err = uc.Update(context.Background(), out.ID, dto.UpdateMantenimientoRequest{Estado: &estado})
	require.NoError(t, err)

	assert.Equal(t, entity.EstadoCompletado, s.ordenes[out.ID].Estado)
	assert.Equal(t, entity.TrailerActivo, s.trailers["t1"].Estado)
}

func TestUpdate_EstadoSobreOrdenCompletada_Conflicto(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Completar(context.Background(), out.ID))

	estado := entity.EstadoEnProceso
	err = uc.Update(context.Background(), out.ID, dto.UpdateMantenimientoRequest{Estado: &estado})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdate_CamposSinEstado_SobreOrdenCompletada_Permitido(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)
	require.NoError(t, uc.Completar(context.Background(), out.ID))

	// Corregir la descripción de una orden cerrada no toca su estado.
	desc := "Servicio de 50,000 km (corregido)"
	err = uc.Update(context.Background(), out.ID, dto.UpdateMantenimientoRequest{Descripcion: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, s.ordenes[out.ID].Descripcion)
	assert.Equal(t, entity.EstadoCompletado, s.ordenes[out.ID].Estado)
}

func TestUpdate_OrdenInexistente(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	desc := "x"
	err := uc.Update(context.Background(), "nope", dto.UpdateMantenimientoRequest{Descripcion: &desc})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de consultas y costo
// ──────────────────────────────────────────────────────────────────────────────

func TestCostoTotal_ManoObraMasRefacciones(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)

	// 1500 + 2*50 + 1*200 = 1800
	costo, err := uc.CostoTotal(out.ID)
	require.NoError(t, err)
	assert.True(t, costo.CostoManoObra.Equal(decimal.NewFromInt(1500)))
	assert.True(t, costo.CostoRefacciones.Equal(decimal.NewFromInt(300)))
	assert.True(t, costo.CostoTotal.Equal(decimal.NewFromInt(1800)))
}

func TestGetByID_IncluyeRefaccionesUsadas(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)

	orden, err := uc.GetByID(out.ID)
	require.NoError(t, err)
	require.NotNil(t, orden)
	assert.Len(t, orden.Refacciones, 2)
}

func TestListByTrailer_TrailerInexistente(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.ListByTrailer("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerarPDF_OrdenInexistente(t *testing.T) {
	s := seedStore()
	uc := newUseCase(s)

	_, err := uc.GenerarPDF(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerarPDF_DevuelveBytes(t *testing.T) {
	s := seedStore()
	gen := &fakePDFGenerator{}
	uc := mantenimiento.NewMantenimientoUseCase(
		&fakeTxRunner{s: s},
		&fakeMantenimientoRepo{s: s},
		&fakeTrailerRepo{s: s},
		gen,
	)

	out, err := uc.Create(context.Background(), "jperez", createRequest())
	require.NoError(t, err)

	pdfBytes, err := uc.GenerarPDF(context.Background(), out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdfBytes)
	assert.True(t, gen.called)
}
