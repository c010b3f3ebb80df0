package costing

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// ApplySubstitution aplica la sustitución cobre→aluminio sobre un conjunto de
// líneas BOM (servicio de dominio, puro).
//
// La fracción efectiva es min(requested, rule.CapFraction): pedir más del tope
// se recorta en silencio, sin error. Con fracción efectiva <= 0 las líneas se
// devuelven numéricamente idénticas. Si la BOM no contiene el material base,
// el conjunto queda sin cambios (tampoco se agrega línea de sustituto).
//
// La cantidad de sustituto es baseOriginal × fracción × rule.Ratio; se suma a
// la línea existente del sustituto o se agrega una línea nueva con
// substituteUnit como unidad de medida.
func ApplySubstitution(
	lines []entity.BOMLine,
	rule entity.SubstitutionRule,
	requested decimal.Decimal,
	substituteUnit string,
) []entity.BOMLine {
	out := make([]entity.BOMLine, len(lines))
	copy(out, lines)

	effective := requested
	if effective.GreaterThan(rule.CapFraction) {
		effective = rule.CapFraction
	}
	if effective.LessThanOrEqual(decimal.Zero) {
		return out
	}

	// Reducir la(s) línea(s) del material base por (1 − fracción) y acumular
	// la cantidad original desplazada.
	baseOriginal := decimal.Zero
	found := false
	keep := decimal.NewFromInt(1).Sub(effective)
	for i := range out {
		if out[i].MaterialID != rule.BaseMaterialID {
			continue
		}
		found = true
		baseOriginal = baseOriginal.Add(out[i].Quantity)
		out[i].Quantity = out[i].Quantity.Mul(keep)
	}
	if !found {
		return out
	}

	substituteQty := baseOriginal.Mul(effective).Mul(rule.Ratio)
	for i := range out {
		if out[i].MaterialID == rule.SubstituteMaterialID {
			out[i].Quantity = out[i].Quantity.Add(substituteQty)
			return out
		}
	}
	return append(out, entity.BOMLine{
		MaterialID:  rule.SubstituteMaterialID,
		Quantity:    substituteQty,
		UnitMeasure: substituteUnit,
	})
}
