package entity

import "github.com/shopspring/decimal"

// OverheadProfile parámetros de gastos indirectos por planta.
// Labor y Energy son fracciones del costo directo de material; Freight es un
// monto fijo por unidad; Warranty es fracción del precio de lista.
type OverheadProfile struct {
	Plant               string
	LaborPctOfMaterial  decimal.Decimal
	EnergyPctOfMaterial decimal.Decimal
	FreightPerUnit      decimal.Decimal
	WarrantyPctOfList   decimal.Decimal
}
