package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// tolerancia para divisiones no terminantes (precisión por defecto de decimal).
var epsilon = decimal.NewFromFloat(0.0000001)

func assertDecimalInDelta(t *testing.T, expected, actual decimal.Decimal, msg string) {
	t.Helper()
	diff := expected.Sub(actual).Abs()
	assert.True(t, diff.LessThanOrEqual(epsilon),
		"%s: esperado %s, obtenido %s (dif %s)", msg, expected, actual, diff)
}

func overheadFixture() entity.OverheadProfile {
	return entity.OverheadProfile{
		Plant:               "PL-NORTE",
		LaborPctOfMaterial:  decimal.NewFromFloat(0.12),
		EnergyPctOfMaterial: decimal.NewFromFloat(0.05),
		FreightPerUnit:      decimal.NewFromInt(45),
		WarrantyPctOfList:   decimal.NewFromFloat(0.02),
	}
}

// Vector exacto de inversión de margen: lista 6500, costo total 5000, margen
// objetivo 25% → precio recomendado 5000/0.75 = 6666.67; margen 1500;
// margen % = 1500/6500 ≈ 23.08%.
func TestAggregate_VectorInversionMargen(t *testing.T) {
	// Gastos indirectos en cero y flete fijo para fijar el costo total en 5000.
	res := costing.Aggregate(costing.AggregateInput{
		ProductID: "STB-5K",
		Mode:      "procurement",
		Lines: []entity.CostLine{
			{MaterialID: "CU-01", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(4900)},
		},
		Overhead: entity.OverheadProfile{
			FreightPerUnit: decimal.NewFromInt(100),
		},
		ListPrice:    decimal.NewFromInt(6500),
		TargetMargin: decimal.NewFromFloat(0.25),
	})

	require.True(t, res.TotalCost.Equal(decimal.NewFromInt(5000)), "costo total %s", res.TotalCost)
	assert.True(t, res.MarginAmount.Equal(decimal.NewFromInt(1500)), "margen %s", res.MarginAmount)
	assertDecimalInDelta(t, decimal.NewFromFloat(6666.666666666667), res.RecommendedSellingPrice, "precio recomendado")
	assertDecimalInDelta(t, decimal.NewFromInt(1500).Div(decimal.NewFromInt(6500)), res.MarginPct, "margen %")
}

// TestAggregate_DesgloseIndirectos valida cada componente del costo con el
// perfil de la planta norte.
func TestAggregate_DesgloseIndirectos(t *testing.T) {
	res := costing.Aggregate(costing.AggregateInput{
		ProductID: "STB-5K",
		Lines: []entity.CostLine{
			{MaterialID: "CU-01", Quantity: decimal.NewFromFloat(2.5), UnitCost: decimal.NewFromInt(800)},
			{MaterialID: "ST-01", Quantity: decimal.NewFromInt(18), UnitCost: decimal.NewFromInt(95)},
		},
		Overhead:     overheadFixture(),
		ListPrice:    decimal.NewFromInt(6500),
		TargetMargin: decimal.NewFromFloat(0.25),
	})

	// directo = 2.5×800 + 18×95 = 2000 + 1710 = 3710
	direct := decimal.NewFromInt(3710)
	assert.True(t, res.DirectMaterialCost.Equal(direct), "directo %s", res.DirectMaterialCost)
	assert.True(t, res.Labor.Equal(direct.Mul(decimal.NewFromFloat(0.12))), "mano de obra %s", res.Labor)
	assert.True(t, res.Energy.Equal(direct.Mul(decimal.NewFromFloat(0.05))), "energía %s", res.Energy)
	assert.True(t, res.Freight.Equal(decimal.NewFromInt(45)), "el flete no escala con el material")
	assert.True(t, res.Warranty.Equal(decimal.NewFromInt(130)), "garantía = 2% de 6500")

	// Identidad de margen: margen + costo total = precio de lista, siempre.
	assertDecimalInDelta(t, res.ListPrice, res.MarginAmount.Add(res.TotalCost), "identidad de margen")

	// Costos por línea materializados en el resultado.
	require.Len(t, res.Lines, 2)
	assert.True(t, res.Lines[0].LineCost.Equal(decimal.NewFromInt(2000)))
	assert.True(t, res.Lines[1].LineCost.Equal(decimal.NewFromInt(1710)))
}

// TestAggregate_InversionRoundTrip: recomendado × (1 − margen objetivo) debe
// devolver el costo total para cualquier margen < 1.
func TestAggregate_InversionRoundTrip(t *testing.T) {
	one := decimal.NewFromInt(1)
	for _, tm := range []float64{0, 0.1, 0.25, 0.5, 0.8, 0.99} {
		margin := decimal.NewFromFloat(tm)
		res := costing.Aggregate(costing.AggregateInput{
			Lines: []entity.CostLine{
				{MaterialID: "CU-01", Quantity: decimal.NewFromInt(3), UnitCost: decimal.NewFromFloat(876.8)},
			},
			Overhead:     overheadFixture(),
			ListPrice:    decimal.NewFromInt(6500),
			TargetMargin: margin,
		})
		roundTrip := res.RecommendedSellingPrice.Mul(one.Sub(margin))
		assertDecimalInDelta(t, res.TotalCost, roundTrip, "round-trip de inversión")
	}
}

// TestAggregate_MargenObjetivoUnoOMas: con margen objetivo >= 100% el
// denominador se anula o invierte; el precio recomendado cae al costo total.
func TestAggregate_MargenObjetivoUnoOMas(t *testing.T) {
	for _, tm := range []int64{1, 2} {
		res := costing.Aggregate(costing.AggregateInput{
			Lines: []entity.CostLine{
				{MaterialID: "CU-01", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(1000)},
			},
			Overhead:     entity.OverheadProfile{},
			ListPrice:    decimal.NewFromInt(2000),
			TargetMargin: decimal.NewFromInt(tm),
		})
		assert.True(t, res.RecommendedSellingPrice.Equal(res.TotalCost),
			"con margen objetivo %d el recomendado debe ser el costo total", tm)
	}
}

// TestAggregate_PrecioListaCero: sin precio de lista el margen porcentual se
// define 0 (no divide por cero); la garantía también queda en 0.
func TestAggregate_PrecioListaCero(t *testing.T) {
	res := costing.Aggregate(costing.AggregateInput{
		Lines: []entity.CostLine{
			{MaterialID: "CU-01", Quantity: decimal.NewFromInt(1), UnitCost: decimal.NewFromInt(500)},
		},
		Overhead:     overheadFixture(),
		ListPrice:    decimal.Zero,
		TargetMargin: decimal.NewFromFloat(0.25),
	})

	assert.True(t, res.MarginPct.IsZero(), "margen %% definido 0 con lista 0")
	assert.True(t, res.Warranty.IsZero())
	assert.True(t, res.MarginAmount.Equal(res.TotalCost.Neg()),
		"identidad: margen = lista − costo, también con lista 0")
}

// TestAggregate_SinLineas: una BOM vacía produce costo directo 0 y solo deja
// flete y garantía en el costo total.
func TestAggregate_SinLineas(t *testing.T) {
	res := costing.Aggregate(costing.AggregateInput{
		Lines:        nil,
		Overhead:     overheadFixture(),
		ListPrice:    decimal.NewFromInt(6500),
		TargetMargin: decimal.NewFromFloat(0.25),
	})

	assert.True(t, res.DirectMaterialCost.IsZero())
	assert.True(t, res.TotalCost.Equal(decimal.NewFromInt(45).Add(decimal.NewFromInt(130))),
		"total = flete + garantía, obtenido %s", res.TotalCost)
}
