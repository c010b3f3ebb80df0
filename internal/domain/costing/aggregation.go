package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// AggregateInput insumos del agregador: líneas de costo directo ya resueltas
// (costo promedio del plan en variante A, precio con choque en variante B),
// perfil de gastos indirectos ya combinado con los overrides, y los parámetros
// comerciales del producto.
type AggregateInput struct {
	ProductID    string
	Mode         string
	Lines        []entity.CostLine
	Overhead     entity.OverheadProfile
	ListPrice    decimal.Decimal
	TargetMargin decimal.Decimal
}

// Aggregate combina costos directos y gastos indirectos en el costo total
// unitario, margen y precio de venta recomendado (función pura).
//
//	labor   = costo directo × LaborPctOfMaterial
//	energy  = costo directo × EnergyPctOfMaterial
//	freight = monto fijo por unidad (no escala con el material)
//	warranty = precio de lista × WarrantyPctOfList
//
// marginPct se define 0 cuando el precio de lista es 0, y el precio
// recomendado cae al costo total cuando el margen objetivo es >= 1 (ambas son
// condiciones de borde con fallback, nunca errores). Sin redondeo interno.
func Aggregate(in AggregateInput) entity.SimulationResult {
	one := decimal.NewFromInt(1)

	direct := decimal.Zero
	lines := make([]entity.CostLine, len(in.Lines))
	for i, l := range in.Lines {
		l.LineCost = l.Quantity.Mul(l.UnitCost)
		lines[i] = l
		direct = direct.Add(l.LineCost)
	}

	labor := direct.Mul(in.Overhead.LaborPctOfMaterial)
	energy := direct.Mul(in.Overhead.EnergyPctOfMaterial)
	freight := in.Overhead.FreightPerUnit
	warranty := in.ListPrice.Mul(in.Overhead.WarrantyPctOfList)

	totalCost := direct.Add(labor).Add(energy).Add(freight).Add(warranty)

	marginAmount := in.ListPrice.Sub(totalCost)
	marginPct := decimal.Zero
	if in.ListPrice.GreaterThan(decimal.Zero) {
		marginPct = marginAmount.Div(in.ListPrice)
	}

	recommended := totalCost
	if in.TargetMargin.LessThan(one) {
		recommended = totalCost.Div(one.Sub(in.TargetMargin))
	}

	return entity.SimulationResult{
		ProductID:               in.ProductID,
		Mode:                    in.Mode,
		DirectMaterialCost:      direct,
		Labor:                   labor,
		Energy:                  energy,
		Freight:                 freight,
		Warranty:                warranty,
		TotalCost:               totalCost,
		ListPrice:               in.ListPrice,
		MarginAmount:            marginAmount,
		MarginPct:               marginPct,
		TargetMargin:            in.TargetMargin,
		RecommendedSellingPrice: recommended,
		Lines:                   lines,
	}
}
