package costing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// AverageCost implementa la lógica de costo promedio ponderado.
// NuevoCosto = ((Existencia * CostoAnterior) + (Compra * PrecioCotizado)) / (Existencia + Compra)
// Cuando existencia y compra son cero no hay base para ponderar: se define el
// precio cotizado como fallback (evita la división por cero).
func AverageCost(onHand, oldCost, procureQty, newPrice decimal.Decimal) decimal.Decimal {
	endQty := onHand.Add(procureQty)
	if endQty.LessThanOrEqual(decimal.Zero) {
		return newPrice
	}
	num := onHand.Mul(oldCost).Add(procureQty.Mul(newPrice))
	return num.Div(endQty)
}

// BuildPlan calcula el plan de compras de un horizonte de simulación: una
// entrada por línea BOM, con requerimiento bruto (cantidad × pronóstico),
// cantidad a comprar recortada en cero (el excedente en bodega nunca produce
// compra negativa) y costo promedio móvil de un solo periodo. forecastUnits
// admite fracciones; no se redondea.
//
// Una línea que referencia un material fuera del catálogo es un error de
// referencia (domain.ErrMaterialNotFound).
func BuildPlan(
	lines []entity.BOMLine,
	materials map[string]entity.Material,
	forecastUnits decimal.Decimal,
) ([]entity.PlanEntry, error) {
	plan := make([]entity.PlanEntry, 0, len(lines))
	for _, line := range lines {
		m, ok := materials[line.MaterialID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, line.MaterialID)
		}

		grossReq := line.Quantity.Mul(forecastUnits)
		procureQty := grossReq.Sub(m.OnHand)
		if procureQty.IsNegative() {
			procureQty = decimal.Zero
		}

		plan = append(plan, entity.PlanEntry{
			MaterialID:       m.ID,
			MaterialName:     m.Name,
			UnitMeasure:      line.UnitMeasure,
			GrossRequirement: grossReq,
			OnHand:           m.OnHand,
			ProcureQuantity:  procureQty,
			Spend:            procureQty.Mul(m.NewPrice),
			EndQuantity:      m.OnHand.Add(procureQty),
			AverageCost:      AverageCost(m.OnHand, m.OldCost, procureQty, m.NewPrice),
		})
	}
	return plan, nil
}
