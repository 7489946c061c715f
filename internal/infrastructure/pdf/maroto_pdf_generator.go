// Package pdf implementa la hoja imprimible de una orden de servicio de
// mantenimiento usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Orden de servicio + folio  │  Fecha + Estado       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  UNIDAD: número económico / placas / marca-modelo / km      │
//	│  SERVICIO: tipo / taller / descripción                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Código | Refacción | P.Unit | Importe        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Mano de obra / Refacciones / COSTO TOTAL          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appmant "github.com/blues182/sistema-transporte-admin/internal/application/mantenimiento"
	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	domainmant "github.com/blues182/sistema-transporte-admin/internal/domain/mantenimiento"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appmant.OrdenPDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa mantenimiento.OrdenPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateOrdenPDF genera la hoja de la orden y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateOrdenPDF(
	_ context.Context,
	orden *entity.Mantenimiento,
	trailer *entity.Trailer,
	usos []*entity.MantenimientoRefaccion,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Orden de Servicio", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(unidadRow(trailer))
	m.AddRows(servicioRow(orden))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableUsoRows(usos) {
		m.AddRows(r)
	}
	if len(usos) == 0 {
		m.AddRows(row.New(7).Add(col.New(12).Add(
			text.New("Sin refacciones consumidas", props.Text{
				Size: 8, Align: align.Center, Color: colorGray, Top: 1,
			}),
		)))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(orden, usos))

	m.AddRows(line.NewRow(3))
	m.AddRows(firmasRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + folio (izq) y fecha + estado (der).
func headerRow(orden *entity.Mantenimiento) core.Row {
	fecha := orden.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORDEN DE SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Folio: "+orden.ID, props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("MANTENIMIENTO "+upperTipo(orden.Tipo), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New("Estado: "+orden.Estado, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// unidadRow: datos del trailer atendido.
func unidadRow(trailer *entity.Trailer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("UNIDAD", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(trailer.NumeroEconomico+"   "+trailer.Placas, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("%s %s %d   |   Kilometraje: %d km",
				nonEmpty(trailer.Marca, "—"),
				nonEmpty(trailer.Modelo, "—"),
				trailer.Anio, trailer.Kilometraje,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// servicioRow: taller y descripción del trabajo.
func servicioRow(orden *entity.Mantenimiento) core.Row {
	km := "—"
	if orden.Kilometraje != nil {
		km = fmt.Sprintf("%d km", *orden.Kilometraje)
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("SERVICIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Taller: %s   |   Kilometraje al servicio: %s",
				nonEmpty(orden.Taller, "—"), km,
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
			text.New(orden.Descripcion, props.Text{Size: 9, Top: 11}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de refacciones.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Refacción", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Importe", 3, align.Right),
	)
}

// tableUsoRows: una fila por refacción consumida.
func tableUsoRows(usos []*entity.MantenimientoRefaccion) []core.Row {
	result := make([]core.Row, 0, len(usos))
	for _, u := range usos {
		importe := u.PrecioUnitario.Mul(decimal.NewFromInt(int64(u.Cantidad)))
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", u.Cantidad),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				u.Codigo,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(4).Add(text.New(
				u.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"$"+u.PrecioUnitario.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"$"+importe.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(orden *entity.Mantenimiento, usos []*entity.MantenimientoRefaccion) core.Row {
	costoRef := domainmant.CostoRefacciones(usos)
	costoTotal := domainmant.CostoTotal(orden.CostoManoObra, usos)

	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Mano de obra:"),
			label("Refacciones:"),
			grandLabel("COSTO TOTAL:"),
		),
		col.New(3).Add(
			value("$"+orden.CostoManoObra.StringFixed(2)),
			value("$"+costoRef.StringFixed(2)),
			grandValue("$"+costoTotal.StringFixed(2)),
		),
		col.New(2),
	)
}

// firmasRow: líneas de firma para mecánico y supervisor.
func firmasRow() core.Row {
	firma := func(titulo string) core.Col {
		return col.New(6).Add(
			text.New("____________________________", props.Text{
				Size: 9, Align: align.Center, Top: 12, Color: colorGray,
			}),
			text.New(titulo, props.Text{
				Size: 8, Align: align.Center, Top: 17, Color: colorGray,
			}),
		)
	}
	return row.New(24).Add(
		firma("Mecánico responsable"),
		firma("Supervisor de flotilla"),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func upperTipo(tipo string) string {
	switch tipo {
	case entity.MantenimientoPreventivo:
		return "PREVENTIVO"
	case entity.MantenimientoCorrectivo:
		return "CORRECTIVO"
	case entity.MantenimientoEmergencia:
		return "DE EMERGENCIA"
	}
	return tipo
}
