package entity

import "github.com/shopspring/decimal"

// PriceTrendPoint punto de la serie de precios de referencia de un material.
// Son datos de muestra estáticos sembrados con el catálogo; no hay consulta
// de históricos reales.
type PriceTrendPoint struct {
	MaterialID string
	Period     string // ej. "2026-01"
	Price      decimal.Decimal
}
