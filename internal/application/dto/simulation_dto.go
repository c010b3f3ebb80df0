package dto

import "github.com/shopspring/decimal"

// MaterialOverride edición por simulación de un material del catálogo.
// Solo los campos presentes se aplican; el catálogo nunca se muta.
type MaterialOverride struct {
	NewPrice *decimal.Decimal `json:"new_price,omitempty"`
	OldCost  *decimal.Decimal `json:"old_cost,omitempty"`
	OnHand   *decimal.Decimal `json:"on_hand,omitempty"`
}

// OverheadOverrides sobre-escrituras puntuales del perfil de la planta.
type OverheadOverrides struct {
	LaborPct       *decimal.Decimal `json:"labor_pct,omitempty"`
	EnergyPct      *decimal.Decimal `json:"energy_pct,omitempty"`
	FreightPerUnit *decimal.Decimal `json:"freight_per_unit,omitempty"`
	WarrantyPct    *decimal.Decimal `json:"warranty_pct,omitempty"`
}

// SimulationRequest body para POST /api/simulations y POST /api/scenarios.
// Mode "procurement" (variante A: pronóstico + plan de compras a costo
// promedio) o "price_shock" (variante B: choques de precio + sustitución).
type SimulationRequest struct {
	ProductID            string                      `json:"product_id"`
	Mode                 string                      `json:"mode,omitempty"`
	ForecastUnits        *decimal.Decimal            `json:"forecast_units,omitempty"`
	SubstitutionFraction *decimal.Decimal            `json:"substitution_fraction,omitempty"`
	PriceShocks          map[string]decimal.Decimal  `json:"price_shocks,omitempty"`
	MaterialOverrides    map[string]MaterialOverride `json:"material_overrides,omitempty"`
	OverheadOverrides    *OverheadOverrides          `json:"overhead_overrides,omitempty"`
	ListPrice            *decimal.Decimal            `json:"list_price,omitempty"`
	TargetMargin         *decimal.Decimal            `json:"target_margin,omitempty"`
}

// CostLineDTO costo directo de un material dentro del resultado.
type CostLineDTO struct {
	MaterialID string          `json:"material_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	UnitCost   decimal.Decimal `json:"unit_cost"`
	LineCost   decimal.Decimal `json:"line_cost"`
}

// PlanEntryDTO entrada del plan de compras (solo variante A).
type PlanEntryDTO struct {
	MaterialID       string          `json:"material_id"`
	MaterialName     string          `json:"material_name"`
	UnitMeasure      string          `json:"unit_measure"`
	GrossRequirement decimal.Decimal `json:"gross_requirement"`
	OnHand           decimal.Decimal `json:"on_hand"`
	ProcureQuantity  decimal.Decimal `json:"procure_quantity"`
	Spend            decimal.Decimal `json:"spend"`
	EndQuantity      decimal.Decimal `json:"end_quantity"`
	AverageCost      decimal.Decimal `json:"average_cost"`
}

// BOMLineDTO línea BOM efectiva (tras sustitución, solo variante B).
type BOMLineDTO struct {
	MaterialID  string          `json:"material_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitMeasure string          `json:"unit_measure"`
}

// SimulationResponse resultado agregado de la simulación. Sin redondeo: el
// redondeo para pantalla es asunto de la capa de presentación.
type SimulationResponse struct {
	ProductID               string          `json:"product_id"`
	Mode                    string          `json:"mode"`
	DirectMaterialCost      decimal.Decimal `json:"direct_material_cost"`
	Labor                   decimal.Decimal `json:"labor"`
	Energy                  decimal.Decimal `json:"energy"`
	Freight                 decimal.Decimal `json:"freight"`
	Warranty                decimal.Decimal `json:"warranty"`
	TotalCost               decimal.Decimal `json:"total_cost"`
	ListPrice               decimal.Decimal `json:"list_price"`
	MarginAmount            decimal.Decimal `json:"margin_amount"`
	MarginPct               decimal.Decimal `json:"margin_pct"`
	TargetMargin            decimal.Decimal `json:"target_margin"`
	RecommendedSellingPrice decimal.Decimal `json:"recommended_selling_price"`
	Lines                   []CostLineDTO   `json:"lines"`
	Plan                    []PlanEntryDTO  `json:"plan,omitempty"`
	BOMLines                []BOMLineDTO    `json:"bom_lines,omitempty"`
}
