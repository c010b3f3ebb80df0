package entity

import "github.com/shopspring/decimal"

// PlanEntry entrada del plan de compras para un material: requerimiento bruto
// contra existencia, cantidad a comprar y costo promedio móvil resultante.
// Derivado: se recalcula en cada simulación, nunca se persiste.
type PlanEntry struct {
	MaterialID       string
	MaterialName     string
	UnitMeasure      string
	GrossRequirement decimal.Decimal // cantidad BOM × unidades pronosticadas
	OnHand           decimal.Decimal
	ProcureQuantity  decimal.Decimal // max(0, requerimiento − existencia)
	Spend            decimal.Decimal // compra × precio cotizado
	EndQuantity      decimal.Decimal // existencia + compra
	AverageCost      decimal.Decimal // promedio ponderado stock/compra
}
