package catalog

import (
	"github.com/jhoicas/Costeo-api/internal/application/dto"
	"github.com/jhoicas/Costeo-api/internal/domain/entity"
	"github.com/jhoicas/Costeo-api/internal/domain/repository"
)

// UseCase lecturas del catálogo de referencia para poblar la capa de
// presentación (selects de producto, tabla editable de materiales, tendencia).
type UseCase struct {
	materialRepo repository.MaterialRepository
	productRepo  repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(materialRepo repository.MaterialRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{materialRepo: materialRepo, productRepo: productRepo}
}

// ListMaterials devuelve los materiales del catálogo.
func (uc *UseCase) ListMaterials() ([]dto.MaterialResponse, error) {
	list, err := uc.materialRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.MaterialResponse{
			ID:          m.ID,
			Name:        m.Name,
			UnitMeasure: m.UnitMeasure,
			NewPrice:    m.NewPrice,
			OldCost:     m.OldCost,
			OnHand:      m.OnHand,
		})
	}
	return out, nil
}

// ListProducts devuelve los productos con su BOM.
func (uc *UseCase) ListProducts() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// GetProduct devuelve un producto por ID (domain.ErrProductNotFound si no existe).
func (uc *UseCase) GetProduct(id string) (*dto.ProductResponse, error) {
	p, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := toProductResponse(*p)
	return &out, nil
}

// PriceTrend devuelve la serie estática de precios de muestra.
func (uc *UseCase) PriceTrend() ([]dto.PriceTrendPointDTO, error) {
	trend, err := uc.materialRepo.PriceTrend()
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceTrendPointDTO, 0, len(trend))
	for _, p := range trend {
		out = append(out, dto.PriceTrendPointDTO{
			MaterialID: p.MaterialID,
			Period:     p.Period,
			Price:      p.Price,
		})
	}
	return out, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	bom := make([]dto.BOMLineDTO, 0, len(p.BOM))
	for _, l := range p.BOM {
		bom = append(bom, dto.BOMLineDTO{
			MaterialID:  l.MaterialID,
			Quantity:    l.Quantity,
			UnitMeasure: l.UnitMeasure,
		})
	}
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		ListPrice:    p.ListPrice,
		TargetMargin: p.TargetMargin,
		Plant:        p.Plant,
		BOM:          bom,
	}
}
