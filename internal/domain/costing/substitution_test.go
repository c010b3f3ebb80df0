package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// Regla de referencia: cobre → aluminio, ratio 1.6, tope 40%.
func copperRule() entity.SubstitutionRule {
	return entity.SubstitutionRule{
		BaseMaterialID:       "CU-01",
		SubstituteMaterialID: "AL-01",
		Ratio:                decimal.NewFromFloat(1.6),
		CapFraction:          decimal.NewFromFloat(0.4),
	}
}

func copperBOM() []entity.BOMLine {
	return []entity.BOMLine{
		{MaterialID: "CU-01", Quantity: decimal.NewFromFloat(2.5), UnitMeasure: "kg"},
		{MaterialID: "ST-01", Quantity: decimal.NewFromInt(18), UnitMeasure: "kg"},
	}
}

// Vector exacto: p=0.6 sobre tope 0.4 → efectivo 0.4; la línea de cobre queda
// en 2.5×0.6 = 1.5 y el aluminio gana 2.5×0.4×1.6 = 1.6.
func TestApplySubstitution_VectorExacto(t *testing.T) {
	out := costing.ApplySubstitution(copperBOM(), copperRule(), decimal.NewFromFloat(0.6), "kg")

	require.Len(t, out, 3, "debe agregarse la línea de aluminio")
	assert.True(t, out[0].Quantity.Equal(decimal.NewFromFloat(1.5)),
		"línea de cobre esperada 1.5, obtenida %s", out[0].Quantity)
	assert.Equal(t, "AL-01", out[2].MaterialID)
	assert.True(t, out[2].Quantity.Equal(decimal.NewFromFloat(1.6)),
		"línea de aluminio esperada 1.6, obtenida %s", out[2].Quantity)
	assert.Equal(t, "kg", out[2].UnitMeasure, "la línea nueva lleva la unidad del sustituto")
}

// TestApplySubstitution_RecorteIdempotente: pedir más del tope produce el mismo
// resultado que pedir exactamente el tope (recorte silencioso, sin error).
func TestApplySubstitution_RecorteIdempotente(t *testing.T) {
	rule := copperRule()
	atCap := costing.ApplySubstitution(copperBOM(), rule, rule.CapFraction, "kg")
	overCap := costing.ApplySubstitution(copperBOM(), rule, decimal.NewFromInt(3), "kg")

	require.Equal(t, len(atCap), len(overCap))
	for i := range atCap {
		assert.True(t, atCap[i].Quantity.Equal(overCap[i].Quantity),
			"línea %d: tope %s vs exceso %s", i, atCap[i].Quantity, overCap[i].Quantity)
	}
}

// TestApplySubstitution_FraccionCero: con p=0 las líneas deben ser
// numéricamente idénticas a la entrada.
func TestApplySubstitution_FraccionCero(t *testing.T) {
	in := copperBOM()
	out := costing.ApplySubstitution(in, copperRule(), decimal.Zero, "kg")

	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].MaterialID, out[i].MaterialID)
		assert.True(t, in[i].Quantity.Equal(out[i].Quantity))
	}
}

// TestApplySubstitution_SinMaterialBase: una BOM sin cobre queda intacta y no
// gana línea de sustituto.
func TestApplySubstitution_SinMaterialBase(t *testing.T) {
	in := []entity.BOMLine{
		{MaterialID: "ST-01", Quantity: decimal.NewFromInt(18), UnitMeasure: "kg"},
	}
	out := costing.ApplySubstitution(in, copperRule(), decimal.NewFromFloat(0.3), "kg")

	require.Len(t, out, 1, "no debe agregarse línea de aluminio sin línea base")
	assert.True(t, out[0].Quantity.Equal(decimal.NewFromInt(18)))
}

// TestApplySubstitution_SustitutoExistente: si la BOM ya trae aluminio, la
// cantidad sustituida se suma a esa línea en lugar de duplicarla.
func TestApplySubstitution_SustitutoExistente(t *testing.T) {
	in := append(copperBOM(), entity.BOMLine{
		MaterialID: "AL-01", Quantity: decimal.NewFromInt(1), UnitMeasure: "kg",
	})
	out := costing.ApplySubstitution(in, copperRule(), decimal.NewFromFloat(0.4), "kg")

	require.Len(t, out, 3, "no debe duplicarse la línea de aluminio")
	assert.True(t, out[2].Quantity.Equal(decimal.NewFromFloat(2.6)),
		"1 existente + 1.6 sustituido, obtenido %s", out[2].Quantity)
}

// TestApplySubstitution_NoMutaEntrada: la función es pura; el slice de entrada
// no debe modificarse.
func TestApplySubstitution_NoMutaEntrada(t *testing.T) {
	in := copperBOM()
	_ = costing.ApplySubstitution(in, copperRule(), decimal.NewFromFloat(0.4), "kg")

	assert.True(t, in[0].Quantity.Equal(decimal.NewFromFloat(2.5)),
		"la línea de cobre original no debe mutarse")
	assert.Len(t, in, 2)
}
