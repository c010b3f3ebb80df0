package entity

import "github.com/shopspring/decimal"

// SubstitutionRule regla de sustitución de material base por sustituto
// (cobre → aluminio). Ratio es la cantidad de sustituto por unidad de base
// reemplazada; CapFraction es el tope de la fracción sustituible.
type SubstitutionRule struct {
	BaseMaterialID       string
	SubstituteMaterialID string
	Ratio                decimal.Decimal
	CapFraction          decimal.Decimal
}
