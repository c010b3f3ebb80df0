package entity

import "github.com/shopspring/decimal"

// CostLine costo directo de un material dentro de una simulación.
// UnitCost es el costo promedio del plan de compras (variante A) o el precio
// con choque aplicado (variante B).
type CostLine struct {
	MaterialID string
	Quantity   decimal.Decimal
	UnitCost   decimal.Decimal
	LineCost   decimal.Decimal // Quantity × UnitCost
}

// SimulationResult resultado agregado de una simulación de costeo.
// Efímero: se produce por llamada; una copia puede retenerse como Scenario.
// Sin redondeo interno; el redondeo es asunto de la capa de presentación.
type SimulationResult struct {
	ProductID               string
	Mode                    string
	DirectMaterialCost      decimal.Decimal
	Labor                   decimal.Decimal
	Energy                  decimal.Decimal
	Freight                 decimal.Decimal
	Warranty                decimal.Decimal
	TotalCost               decimal.Decimal
	ListPrice               decimal.Decimal
	MarginAmount            decimal.Decimal
	MarginPct               decimal.Decimal // fracción; 0 si ListPrice = 0
	TargetMargin            decimal.Decimal
	RecommendedSellingPrice decimal.Decimal
	Lines                   []CostLine  // costos directos usados
	Plan                    []PlanEntry // solo variante A (plan de compras)
	BOMLines                []BOMLine   // solo variante B (BOM tras sustitución)
}

// Clone devuelve una copia profunda del resultado. decimal.Decimal es
// inmutable por valor, así que basta con copiar los slices.
func (r SimulationResult) Clone() SimulationResult {
	out := r
	if r.Lines != nil {
		out.Lines = make([]CostLine, len(r.Lines))
		copy(out.Lines, r.Lines)
	}
	if r.Plan != nil {
		out.Plan = make([]PlanEntry, len(r.Plan))
		copy(out.Plan, r.Plan)
	}
	if r.BOMLines != nil {
		out.BOMLines = make([]BOMLine, len(r.BOMLines))
		copy(out.BOMLines, r.BOMLines)
	}
	return out
}
