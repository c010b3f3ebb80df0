package memory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/domain/entity"
)

// Datos de referencia del catálogo de estabilizadores. NewPrice es la última
// cotización de compras; OldCost el costo promedio del stock en bodega.
func seedMaterials() []entity.Material {
	return []entity.Material{
		{
			ID: "CU-01", Name: "Cobre electrolítico", UnitMeasure: "kg",
			NewPrice: decimal.NewFromInt(880),
			OldCost:  decimal.NewFromInt(800),
			OnHand:   decimal.NewFromInt(1000),
		},
		{
			ID: "AL-01", Name: "Aluminio grado eléctrico", UnitMeasure: "kg",
			NewPrice: decimal.NewFromInt(310),
			OldCost:  decimal.NewFromInt(295),
			OnHand:   decimal.NewFromInt(500),
		},
		{
			ID: "ST-01", Name: "Lámina de acero al silicio", UnitMeasure: "kg",
			NewPrice: decimal.NewFromInt(95),
			OldCost:  decimal.NewFromInt(92),
			OnHand:   decimal.NewFromInt(12000),
		},
		{
			ID: "PCB-01", Name: "Tarjeta de control AVR", UnitMeasure: "und",
			NewPrice: decimal.NewFromInt(420),
			OldCost:  decimal.NewFromInt(405),
			OnHand:   decimal.NewFromInt(800),
		},
		{
			ID: "GAB-01", Name: "Gabinete metálico con pintura electrostática", UnitMeasure: "und",
			NewPrice: decimal.NewFromInt(260),
			OldCost:  decimal.NewFromInt(250),
			OnHand:   decimal.NewFromInt(350),
		},
	}
}

func seedProducts() []entity.Product {
	return []entity.Product{
		{
			ID: "STB-5K", Name: "Estabilizador trifásico 5 kVA",
			ListPrice:    decimal.NewFromInt(6500),
			TargetMargin: decimal.NewFromFloat(0.25),
			Plant:        "PL-NORTE",
			BOM: []entity.BOMLine{
				{MaterialID: "CU-01", Quantity: decimal.NewFromFloat(2.5), UnitMeasure: "kg"},
				{MaterialID: "ST-01", Quantity: decimal.NewFromInt(18), UnitMeasure: "kg"},
				{MaterialID: "PCB-01", Quantity: decimal.NewFromInt(1), UnitMeasure: "und"},
				{MaterialID: "GAB-01", Quantity: decimal.NewFromInt(1), UnitMeasure: "und"},
			},
		},
		{
			ID: "STB-10K", Name: "Estabilizador trifásico 10 kVA",
			ListPrice:    decimal.NewFromInt(11800),
			TargetMargin: decimal.NewFromFloat(0.28),
			Plant:        "PL-SUR",
			BOM: []entity.BOMLine{
				{MaterialID: "CU-01", Quantity: decimal.NewFromFloat(4.2), UnitMeasure: "kg"},
				{MaterialID: "ST-01", Quantity: decimal.NewFromInt(31), UnitMeasure: "kg"},
				{MaterialID: "PCB-01", Quantity: decimal.NewFromInt(2), UnitMeasure: "und"},
				{MaterialID: "GAB-01", Quantity: decimal.NewFromInt(1), UnitMeasure: "und"},
			},
		},
	}
}

func seedOverheads() []entity.OverheadProfile {
	return []entity.OverheadProfile{
		{
			Plant:               "PL-NORTE",
			LaborPctOfMaterial:  decimal.NewFromFloat(0.12),
			EnergyPctOfMaterial: decimal.NewFromFloat(0.05),
			FreightPerUnit:      decimal.NewFromInt(45),
			WarrantyPctOfList:   decimal.NewFromFloat(0.02),
		},
		{
			Plant:               "PL-SUR",
			LaborPctOfMaterial:  decimal.NewFromFloat(0.15),
			EnergyPctOfMaterial: decimal.NewFromFloat(0.06),
			FreightPerUnit:      decimal.NewFromInt(60),
			WarrantyPctOfList:   decimal.NewFromFloat(0.025),
		},
	}
}

// Sustitución cobre→aluminio: 1.6 kg de aluminio por kg de cobre desplazado,
// con tope del 40% de la cantidad base.
func seedSubstitutionRule() entity.SubstitutionRule {
	return entity.SubstitutionRule{
		BaseMaterialID:       "CU-01",
		SubstituteMaterialID: "AL-01",
		Ratio:                decimal.NewFromFloat(1.6),
		CapFraction:          decimal.NewFromFloat(0.4),
	}
}

// Serie de muestra para la vista de tendencia de precios (datos estáticos; no
// hay consulta de históricos reales).
func seedPriceTrend() []entity.PriceTrendPoint {
	cu := func(period string, price int64) entity.PriceTrendPoint {
		return entity.PriceTrendPoint{MaterialID: "CU-01", Period: period, Price: decimal.NewFromInt(price)}
	}
	al := func(period string, price int64) entity.PriceTrendPoint {
		return entity.PriceTrendPoint{MaterialID: "AL-01", Period: period, Price: decimal.NewFromInt(price)}
	}
	return []entity.PriceTrendPoint{
		cu("2026-02", 790), cu("2026-03", 805), cu("2026-04", 812),
		cu("2026-05", 838), cu("2026-06", 861), cu("2026-07", 880),
		al("2026-02", 298), al("2026-03", 301), al("2026-04", 299),
		al("2026-05", 304), al("2026-06", 308), al("2026-07", 310),
	}
}
