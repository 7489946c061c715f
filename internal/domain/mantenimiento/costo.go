package mantenimiento

import (
	"github.com/shopspring/decimal"

	"github.com/blues182/sistema-transporte-admin/internal/domain/entity"
)

// CostoRefacciones suma cantidad * precio_unitario sobre las refacciones usadas
// por una orden (servicio de dominio, sin efectos).
func CostoRefacciones(usos []*entity.MantenimientoRefaccion) decimal.Decimal {
	total := decimal.Zero
	for _, u := range usos {
		total = total.Add(u.PrecioUnitario.Mul(decimal.NewFromInt(int64(u.Cantidad))))
	}
	return total
}

// CostoTotal devuelve costo_mano_obra + costo de refacciones de una orden.
// Los precios usados son los copiados al momento del consumo, no los vigentes.
func CostoTotal(costoManoObra decimal.Decimal, usos []*entity.MantenimientoRefaccion) decimal.Decimal {
	return costoManoObra.Add(CostoRefacciones(usos))
}
