package mantenimiento_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
	"github.com/blues182/sistema-transporte-admin/internal/domain/mantenimiento"
)

func uso(cantidad int, precio float64) *entity.MantenimientoRefaccion {
	return &entity.MantenimientoRefaccion{
		Cantidad:       cantidad,
		PrecioUnitario: decimal.NewFromFloat(precio),
	}
}

func TestCostoTotal_ManoObraMasRefacciones(t *testing.T) {
	// 1500.00 de mano de obra + (2 x 50.00) + (1 x 200.00) = 1800.00
	usos := []*entity.MantenimientoRefaccion{
		uso(2, 50.00),
		uso(1, 200.00),
	}
	total := mantenimiento.CostoTotal(decimal.NewFromFloat(1500.00), usos)
	assert.True(t, total.Equal(decimal.NewFromFloat(1800.00)),
		"costo total esperado 1800.00, obtenido %s", total)
}

func TestCostoTotal_SinRefacciones(t *testing.T) {
	total := mantenimiento.CostoTotal(decimal.NewFromFloat(950.50), nil)
	assert.True(t, total.Equal(decimal.NewFromFloat(950.50)))
}

func TestCostoRefacciones_TablaDeCasos(t *testing.T) {
	cases := []struct {
		name     string
		usos     []*entity.MantenimientoRefaccion
		expected string
	}{
		{"vacio", nil, "0"},
		{"una refaccion", []*entity.MantenimientoRefaccion{uso(3, 120.00)}, "360"},
		{"varias refacciones", []*entity.MantenimientoRefaccion{uso(2, 50), uso(1, 200), uso(4, 12.5)}, "350"},
		{"precio con centavos", []*entity.MantenimientoRefaccion{uso(3, 33.33)}, "99.99"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mantenimiento.CostoRefacciones(tc.usos)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.expected)),
				"esperado %s, obtenido %s", tc.expected, got)
		})
	}
}
