package simulation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain"
	"github.com/jhoicas/Costeo-api/internal/domain/costing"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// Modos de simulación: variante A (pronóstico → plan de compras a costo
// promedio móvil) y variante B (choques de precio + sustitución sobre la BOM).
const (
	ModeProcurement = "procurement"
	ModePriceShock  = "price_shock"
)

// UseCase orquesta una simulación de costeo: resuelve catálogo y overrides,
// invoca los motores de dominio y arma el resultado. Sin estado entre
// llamadas; el único estado de sesión vive en el almacén de escenarios.
type UseCase struct {
	productRepo     repository.ProductRepository
	materialRepo    repository.MaterialRepository
	overheadRepo    repository.OverheadRepository
	defaultForecast decimal.Decimal
}

// NewUseCase construye el caso de uso. defaultForecast se usa cuando la
// petición de la variante A no trae forecast_units.
func NewUseCase(
	productRepo repository.ProductRepository,
	materialRepo repository.MaterialRepository,
	overheadRepo repository.OverheadRepository,
	defaultForecast decimal.Decimal,
) *UseCase {
	return &UseCase{
		productRepo:     productRepo,
		materialRepo:    materialRepo,
		overheadRepo:    overheadRepo,
		defaultForecast: defaultForecast,
	}
}

// Compute ejecuta la simulación y devuelve el resultado como DTO.
func (uc *UseCase) Compute(in dto.SimulationRequest) (*dto.SimulationResponse, error) {
	result, err := uc.ComputeResult(in)
	if err != nil {
		return nil, err
	}
	out := ToResponse(*result)
	return &out, nil
}

// ComputeResult ejecuta la simulación y devuelve el resultado de dominio.
// Falla solo por referencias desconocidas (producto, material, planta) o
// valores malformados; las condiciones numéricas de borde tienen fallback en
// los motores y nunca se propagan como error.
func (uc *UseCase) ComputeResult(in dto.SimulationRequest) (*entity.SimulationResult, error) {
	if in.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id requerido", domain.ErrInvalidInput)
	}
	mode := in.Mode
	if mode == "" {
		mode = ModeProcurement
	}
	if mode != ModeProcurement && mode != ModePriceShock {
		return nil, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, in.Mode)
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}

	materials, err := uc.materialRepo.AsMap()
	if err != nil {
		return nil, err
	}
	if err := applyMaterialOverrides(materials, in.MaterialOverrides); err != nil {
		return nil, err
	}

	overhead, err := uc.overheadRepo.GetByPlant(product.Plant)
	if err != nil {
		return nil, err
	}
	if err := applyOverheadOverrides(overhead, in.OverheadOverrides); err != nil {
		return nil, err
	}

	listPrice := product.ListPrice
	if in.ListPrice != nil {
		if in.ListPrice.IsNegative() {
			return nil, fmt.Errorf("%w: list_price negativo", domain.ErrInvalidInput)
		}
		listPrice = *in.ListPrice
	}
	targetMargin := product.TargetMargin
	if in.TargetMargin != nil {
		one := decimal.NewFromInt(1)
		if in.TargetMargin.IsNegative() || in.TargetMargin.GreaterThanOrEqual(one) {
			return nil, fmt.Errorf("%w: target_margin fuera de [0, 1)", domain.ErrInvalidInput)
		}
		targetMargin = *in.TargetMargin
	}

	agg := costing.AggregateInput{
		ProductID:    product.ID,
		Mode:         mode,
		Overhead:     *overhead,
		ListPrice:    listPrice,
		TargetMargin: targetMargin,
	}

	switch mode {
	case ModeProcurement:
		return uc.computeProcurement(product, materials, in, agg)
	default:
		return uc.computePriceShock(product, materials, in, agg)
	}
}

// computeProcurement variante A: plan de compras y costos directos al promedio
// móvil de cada material.
func (uc *UseCase) computeProcurement(
	product *entity.Product,
	materials map[string]entity.Material,
	in dto.SimulationRequest,
	agg costing.AggregateInput,
) (*entity.SimulationResult, error) {
	forecast := uc.defaultForecast
	if in.ForecastUnits != nil {
		if in.ForecastUnits.IsNegative() {
			return nil, fmt.Errorf("%w: forecast_units negativo", domain.ErrInvalidInput)
		}
		forecast = *in.ForecastUnits
	}

	plan, err := costing.BuildPlan(product.BOM, materials, forecast)
	if err != nil {
		return nil, err
	}

	lines := make([]entity.CostLine, len(plan))
	for i, e := range plan {
		lines[i] = entity.CostLine{
			MaterialID: e.MaterialID,
			Quantity:   product.BOM[i].Quantity,
			UnitCost:   e.AverageCost,
		}
	}
	agg.Lines = lines

	result := costing.Aggregate(agg)
	result.Plan = plan
	return &result, nil
}

// computePriceShock variante B: sustitución cobre→aluminio sobre la BOM y
// precios cotizados con choque aplicado.
func (uc *UseCase) computePriceShock(
	product *entity.Product,
	materials map[string]entity.Material,
	in dto.SimulationRequest,
	agg costing.AggregateInput,
) (*entity.SimulationResult, error) {
	// Un choque sobre un material fuera del catálogo es un error de
	// referencia, no un no-op silencioso.
	minusOne := decimal.NewFromInt(-1)
	for id, shock := range in.PriceShocks {
		if _, ok := materials[id]; !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, id)
		}
		if shock.LessThan(minusOne) {
			return nil, fmt.Errorf("%w: choque de precio bajo -100%% para %s", domain.ErrInvalidInput, id)
		}
	}

	bomLines := product.BOM
	if in.SubstitutionFraction != nil && in.SubstitutionFraction.GreaterThan(decimal.Zero) {
		rule, err := uc.materialRepo.SubstitutionRule()
		if err != nil {
			return nil, err
		}
		substitute, ok := materials[rule.SubstituteMaterialID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, rule.SubstituteMaterialID)
		}
		bomLines = costing.ApplySubstitution(bomLines, rule, *in.SubstitutionFraction, substitute.UnitMeasure)
	}

	one := decimal.NewFromInt(1)
	lines := make([]entity.CostLine, len(bomLines))
	for i, line := range bomLines {
		m, ok := materials[line.MaterialID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, line.MaterialID)
		}
		price := m.NewPrice
		if shock, ok := in.PriceShocks[line.MaterialID]; ok {
			price = price.Mul(one.Add(shock))
		}
		lines[i] = entity.CostLine{
			MaterialID: line.MaterialID,
			Quantity:   line.Quantity,
			UnitCost:   price,
		}
	}
	agg.Lines = lines

	result := costing.Aggregate(agg)
	result.BOMLines = bomLines
	return &result, nil
}

func applyMaterialOverrides(materials map[string]entity.Material, overrides map[string]dto.MaterialOverride) error {
	for id, ov := range overrides {
		m, ok := materials[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrMaterialNotFound, id)
		}
		if ov.NewPrice != nil {
			if ov.NewPrice.IsNegative() {
				return fmt.Errorf("%w: new_price negativo para %s", domain.ErrInvalidInput, id)
			}
			m.NewPrice = *ov.NewPrice
		}
		if ov.OldCost != nil {
			if ov.OldCost.IsNegative() {
				return fmt.Errorf("%w: old_cost negativo para %s", domain.ErrInvalidInput, id)
			}
			m.OldCost = *ov.OldCost
		}
		if ov.OnHand != nil {
			if ov.OnHand.IsNegative() {
				return fmt.Errorf("%w: on_hand negativo para %s", domain.ErrInvalidInput, id)
			}
			m.OnHand = *ov.OnHand
		}
		materials[id] = m
	}
	return nil
}

func applyOverheadOverrides(profile *entity.OverheadProfile, ov *dto.OverheadOverrides) error {
	if ov == nil {
		return nil
	}
	fields := []struct {
		name  string
		value *decimal.Decimal
		dst   *decimal.Decimal
	}{
		{"labor_pct", ov.LaborPct, &profile.LaborPctOfMaterial},
		{"energy_pct", ov.EnergyPct, &profile.EnergyPctOfMaterial},
		{"freight_per_unit", ov.FreightPerUnit, &profile.FreightPerUnit},
		{"warranty_pct", ov.WarrantyPct, &profile.WarrantyPctOfList},
	}
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s negativo", domain.ErrInvalidInput, f.name)
		}
		*f.dst = *f.value
	}
	return nil
}

// ToResponse mapea el resultado de dominio al DTO de respuesta.
func ToResponse(r entity.SimulationResult) dto.SimulationResponse {
	out := dto.SimulationResponse{
		ProductID:               r.ProductID,
		Mode:                    r.Mode,
		DirectMaterialCost:      r.DirectMaterialCost,
		Labor:                   r.Labor,
		Energy:                  r.Energy,
		Freight:                 r.Freight,
		Warranty:                r.Warranty,
		TotalCost:               r.TotalCost,
		ListPrice:               r.ListPrice,
		MarginAmount:            r.MarginAmount,
		MarginPct:               r.MarginPct,
		TargetMargin:            r.TargetMargin,
		RecommendedSellingPrice: r.RecommendedSellingPrice,
		Lines:                   make([]dto.CostLineDTO, 0, len(r.Lines)),
	}
	for _, l := range r.Lines {
		out.Lines = append(out.Lines, dto.CostLineDTO{
			MaterialID: l.MaterialID,
			Quantity:   l.Quantity,
			UnitCost:   l.UnitCost,
			LineCost:   l.LineCost,
		})
	}
	for _, e := range r.Plan {
		out.Plan = append(out.Plan, dto.PlanEntryDTO{
			MaterialID:       e.MaterialID,
			MaterialName:     e.MaterialName,
			UnitMeasure:      e.UnitMeasure,
			GrossRequirement: e.GrossRequirement,
			OnHand:           e.OnHand,
			ProcureQuantity:  e.ProcureQuantity,
			Spend:            e.Spend,
			EndQuantity:      e.EndQuantity,
			AverageCost:      e.AverageCost,
		})
	}
	for _, l := range r.BOMLines {
		out.BOMLines = append(out.BOMLines, dto.BOMLineDTO{
			MaterialID:  l.MaterialID,
			Quantity:    l.Quantity,
			UnitMeasure: l.UnitMeasure,
		})
	}
	return out
}
